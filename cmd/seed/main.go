package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"elegance/internal/domain/model"
	"elegance/internal/infra/db"

	"github.com/joho/godotenv"
	"github.com/olekukonko/tablewriter"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// カタログの初期データ投入。slugで冪等（再実行しても増殖しない）。
func main() {
	skipMigrate := flag.Bool("skip-migrate", false, "skip schema migration")
	flag.Parse()

	_ = godotenv.Load()

	gdb, err := db.Connect()
	if err != nil {
		log.Fatalf("failed to connect: %v", err)
	}

	if !*skipMigrate {
		if err := gdb.AutoMigrate(
			&model.Category{},
			&model.Product{},
			&model.ProductImage{},
			&model.CartItem{},
			&model.WishlistItem{},
			&model.Order{},
			&model.OrderItem{},
		); err != nil {
			log.Fatalf("failed to migrate: %v", err)
		}
	}

	categories := seedCategories(gdb)
	products := seedProducts(gdb, categories)

	printSummary(products, categories)
}

func seedCategories(gdb *gorm.DB) map[string]int64 {
	seed := []model.Category{
		{Name: "Studs", Slug: "studs", Description: "Everyday studs in silver and gold tones", ImageURL: "https://images.eleganceearrings.com/categories/studs.jpg"},
		{Name: "Hoops", Slug: "hoops", Description: "Classic and chunky hoops", ImageURL: "https://images.eleganceearrings.com/categories/hoops.jpg"},
		{Name: "Jhumkas", Slug: "jhumkas", Description: "Traditional jhumkas for festive wear", ImageURL: "https://images.eleganceearrings.com/categories/jhumkas.jpg"},
		{Name: "Danglers", Slug: "danglers", Description: "Statement danglers and drops", ImageURL: "https://images.eleganceearrings.com/categories/danglers.jpg"},
	}

	ids := make(map[string]int64, len(seed))
	for _, c := range seed {
		if err := gdb.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "slug"}},
			DoNothing: true,
		}).Create(&c).Error; err != nil {
			log.Fatalf("failed to seed category %s: %v", c.Slug, err)
		}

		var got model.Category
		if err := gdb.Where("slug = ?", c.Slug).First(&got).Error; err != nil {
			log.Fatalf("failed to read back category %s: %v", c.Slug, err)
		}
		ids[got.Slug] = got.ID
	}
	return ids
}

func seedProducts(gdb *gorm.DB, categories map[string]int64) []model.Product {
	discount := func(v float64) *float64 { return &v }
	catID := func(slug string) *int64 {
		id := categories[slug]
		return &id
	}

	seed := []model.Product{
		{
			Name: "Pearl Cluster Studs", Slug: "pearl-cluster-studs",
			Description: "Freshwater pearls clustered on sterling silver posts",
			Price:       1299, DiscountPrice: discount(999),
			Material: "Sterling Silver, Freshwater Pearl", Size: "12mm", Weight: "4g",
			CategoryID: catID("studs"), IsFeatured: true, StockQuantity: 40,
		},
		{
			Name: "Gold Bead Hoops", Slug: "gold-bead-hoops",
			Description: "18k gold plated hoops with beaded rim",
			Price:       899,
			Material:    "Brass, 18k Gold Plating", Size: "28mm", Weight: "6g",
			CategoryID: catID("hoops"), IsBestseller: true, StockQuantity: 65,
		},
		{
			Name: "Antique Temple Jhumkas", Slug: "antique-temple-jhumkas",
			Description: "Temple motif jhumkas with hanging pearls",
			Price:       1899, DiscountPrice: discount(1499),
			Material: "Oxidised Silver", Size: "45mm drop", Weight: "14g",
			CategoryID: catID("jhumkas"), IsFeatured: true, IsBestseller: true, StockQuantity: 25,
		},
		{
			Name: "Crystal Waterfall Danglers", Slug: "crystal-waterfall-danglers",
			Description: "Cascading crystals on a silver frame",
			Price:       1599,
			Material:    "Alloy, Crystal", Size: "60mm drop", Weight: "10g",
			CategoryID: catID("danglers"), StockQuantity: 30,
		},
		{
			Name: "Minimal Bar Studs", Slug: "minimal-bar-studs",
			Description: "Slim bar studs for daily wear",
			Price:       499,
			Material:    "Sterling Silver", Size: "10mm", Weight: "2g",
			CategoryID: catID("studs"), IsBestseller: true, StockQuantity: 120,
		},
	}

	out := make([]model.Product, 0, len(seed))
	for _, p := range seed {
		if err := gdb.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "slug"}},
			DoNothing: true,
		}).Create(&p).Error; err != nil {
			log.Fatalf("failed to seed product %s: %v", p.Slug, err)
		}

		var got model.Product
		if err := gdb.Where("slug = ?", p.Slug).First(&got).Error; err != nil {
			log.Fatalf("failed to read back product %s: %v", p.Slug, err)
		}

		// 画像は商品ごとに2枚（無ければ）
		var imgCount int64
		if err := gdb.Model(&model.ProductImage{}).Where("product_id = ?", got.ID).Count(&imgCount).Error; err != nil {
			log.Fatalf("failed to count images for %s: %v", p.Slug, err)
		}
		if imgCount == 0 {
			images := []model.ProductImage{
				{ProductID: got.ID, ImageURL: fmt.Sprintf("https://images.eleganceearrings.com/products/%s-1.jpg", got.Slug), DisplayOrder: 0},
				{ProductID: got.ID, ImageURL: fmt.Sprintf("https://images.eleganceearrings.com/products/%s-2.jpg", got.Slug), DisplayOrder: 1},
			}
			if err := gdb.Create(&images).Error; err != nil {
				log.Fatalf("failed to seed images for %s: %v", p.Slug, err)
			}
		}

		out = append(out, got)
	}
	return out
}

func printSummary(products []model.Product, categories map[string]int64) {
	fmt.Printf("seeded %d categories, %d products\n\n", len(categories), len(products))

	table := tablewriter.NewWriter(os.Stdout)
	table.Header("ID", "Slug", "Price", "Discount", "Featured", "Bestseller", "Stock")

	for _, p := range products {
		discount := "-"
		if p.DiscountPrice != nil {
			discount = fmt.Sprintf("%.0f", *p.DiscountPrice)
		}
		_ = table.Append([]string{
			fmt.Sprintf("%d", p.ID),
			p.Slug,
			fmt.Sprintf("%.0f", p.Price),
			discount,
			fmt.Sprintf("%t", p.IsFeatured),
			fmt.Sprintf("%t", p.IsBestseller),
			fmt.Sprintf("%d", p.StockQuantity),
		})
	}

	_ = table.Render()
}
