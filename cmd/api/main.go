package main

import (
	"time"

	"elegance/internal/config"
	"elegance/internal/domain/model"
	"elegance/internal/handler"
	"elegance/internal/infra/db"
	infraRepo "elegance/internal/infra/repository"
	"elegance/internal/logger"
	"elegance/internal/mail"
	"elegance/internal/server"
	"elegance/internal/usecase"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

type uuidGenerator struct{}

func (g *uuidGenerator) NewID() string {
	return uuid.NewString()
}

type realClock struct{}

func (c *realClock) Now() time.Time {
	return time.Now()
}

func main() {
	// .envは無くてもよい（本番は環境変数で渡す）
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}

	log, err := logger.New(cfg.GoEnv)
	if err != nil {
		panic(err)
	}
	defer func() { _ = log.Sync() }()

	//DB接続
	gormDB, err := db.Connect()
	if err != nil {
		log.Fatal("db connect failed", zap.Error(err))
	}
	if err := gormDB.AutoMigrate(
		&model.Category{},
		&model.Product{},
		&model.ProductImage{},
		&model.CartItem{},
		&model.WishlistItem{},
		&model.Order{},
		&model.OrderItem{},
	); err != nil {
		log.Fatal("migrate failed", zap.Error(err))
	}

	//Repository（GORM実装）生成
	productRepo := infraRepo.NewProductGormRepository(gormDB)
	categoryRepo := infraRepo.NewCategoryGormRepository(gormDB)
	cartRepo := infraRepo.NewCartGormRepository(gormDB)
	wishlistRepo := infraRepo.NewWishlistGormRepository(gormDB)
	orderRepo := infraRepo.NewOrderGormRepository(gormDB)
	txManager := infraRepo.NewTxManagerGorm(gormDB)

	//メール送信。SMTP未設定ならnilのままソフト成功で動く。
	var sender mail.Sender
	if cfg.MailConfigured() {
		smtpSender, err := mail.NewSMTPSender(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUser, cfg.SMTPPass, cfg.MailFrom)
		if err != nil {
			log.Fatal("smtp config invalid", zap.Error(err))
		}
		sender = smtpSender
	} else {
		log.Warn("SMTP not configured; emails will be logged only")
	}

	//usecaseに渡す部品
	idGen := &uuidGenerator{}
	clock := &realClock{}

	//Usecase生成
	notifyUC := usecase.NewNotificationUsecase(sender, log)
	catalogUC := usecase.NewCatalogUsecase(productRepo, categoryRepo)
	cartUC := usecase.NewCartUsecase(cartRepo, productRepo, cfg.FreeShippingThreshold, cfg.ShippingFee)
	wishlistUC := usecase.NewWishlistUsecase(wishlistRepo, productRepo)
	orderUC := usecase.NewOrderUsecase(txManager, orderRepo, notifyUC, clock, idGen)

	//Handler生成
	productH := handler.NewProductHandler(catalogUC)
	cartH := handler.NewCartHandler(cartUC)
	wishlistH := handler.NewWishlistHandler(wishlistUC)
	orderH := handler.NewOrderHandler(orderUC)
	emailH := handler.NewEmailHandler(notifyUC)

	//Server起動
	e := server.New(log)
	server.RegisterRoutes(e, productH, cartH, wishlistH, orderH, emailH)

	addr := ":" + cfg.Port
	log.Info("listening", zap.String("addr", addr))
	if err := e.Start(addr); err != nil {
		log.Fatal("server stopped", zap.Error(err))
	}
}
