package repository

import (
	"context"
	"errors"

	"elegance/internal/domain/model"
	repo "elegance/internal/repository"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type CartGormRepository struct {
	db *gorm.DB
}

// DI
func NewCartGormRepository(db *gorm.DB) *CartGormRepository {
	return &CartGormRepository{db: db}
}

// 同一 (session, product) は数量加算。
// SELECTしてからUPDATEすると同時追加で片方が消えるので、
// INSERT .. ON CONFLICT .. DO UPDATE の1文で行う。
func (r *CartGormRepository) AddOrIncrement(ctx context.Context, sessionID string, productID int64, qty int64) (model.CartItem, error) {
	if qty <= 0 {
		return model.CartItem{}, errors.New("invalid quantity")
	}

	item := model.CartItem{
		SessionID: sessionID,
		ProductID: productID,
		Quantity:  qty,
	}

	err := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "session_id"}, {Name: "product_id"}},
			DoUpdates: clause.Assignments(map[string]interface{}{
				"quantity":   gorm.Expr("cart_items.quantity + EXCLUDED.quantity"),
				"updated_at": gorm.Expr("CURRENT_TIMESTAMP"),
			}),
		}).
		Create(&item).Error
	if err != nil {
		return model.CartItem{}, err
	}

	// 加算後の行をProduct付きで返す
	var out model.CartItem
	err = r.db.WithContext(ctx).
		Preload("Product").
		Preload("Product.Images", func(db *gorm.DB) *gorm.DB {
			return db.Order("display_order asc")
		}).
		Where("session_id = ? AND product_id = ?", sessionID, productID).
		First(&out).Error
	if err != nil {
		return model.CartItem{}, err
	}
	return out, nil
}

// 数量を上書き（クランプしない。qty>=1は呼び出し側の責務）。
func (r *CartGormRepository) UpdateQuantity(ctx context.Context, sessionID string, productID int64, qty int64) error {
	res := r.db.WithContext(ctx).
		Model(&model.CartItem{}).
		Where("session_id = ? AND product_id = ?", sessionID, productID).
		Update("quantity", qty)

	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return repo.ErrNotFound
	}
	return nil
}

// 冪等削除。0行でもエラーにしない。
func (r *CartGormRepository) Remove(ctx context.Context, sessionID string, productID int64) error {
	return r.db.WithContext(ctx).
		Where("session_id = ? AND product_id = ?", sessionID, productID).
		Delete(&model.CartItem{}).Error
}

func (r *CartGormRepository) ListBySession(ctx context.Context, sessionID string) ([]model.CartItem, error) {
	var items []model.CartItem
	err := r.db.WithContext(ctx).
		Preload("Product").
		Preload("Product.Images", func(db *gorm.DB) *gorm.DB {
			return db.Order("display_order asc")
		}).
		Where("session_id = ?", sessionID).
		Order("id asc").
		Find(&items).Error
	if err != nil {
		return []model.CartItem{}, err
	}
	return items, nil
}

// セッションの明細を全削除（注文確定時に呼ぶ）。
func (r *CartGormRepository) ClearBySession(ctx context.Context, sessionID string) error {
	return r.db.WithContext(ctx).
		Where("session_id = ?", sessionID).
		Delete(&model.CartItem{}).Error
}
