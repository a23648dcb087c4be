package model

import "time"

// DiscountPriceがあればPriceより優先。
// StockQuantityは表示用（注文時に減算・チェックしない）。
type Product struct {
	ID            int64          `gorm:"primaryKey;autoIncrement" json:"id"`
	Name          string         `gorm:"type:varchar(255);not null" json:"name"`
	Slug          string         `gorm:"type:varchar(255);not null;uniqueIndex" json:"slug"`
	Description   string         `gorm:"type:text" json:"description"`
	Price         float64        `gorm:"not null" json:"price"`
	DiscountPrice *float64       `json:"discount_price,omitempty"`
	Material      string         `gorm:"type:varchar(255)" json:"material"`
	Size          string         `gorm:"type:varchar(100)" json:"size"`
	Weight        string         `gorm:"type:varchar(100)" json:"weight"`
	CategoryID    *int64         `gorm:"index" json:"category_id"`
	IsFeatured    bool           `gorm:"not null;default:false" json:"is_featured"`
	IsBestseller  bool           `gorm:"not null;default:false" json:"is_bestseller"`
	StockQuantity int64          `gorm:"not null;default:0" json:"stock_quantity"`
	CreatedAt     time.Time      `gorm:"not null;autoCreateTime" json:"created_at"`
	UpdatedAt     time.Time      `gorm:"not null;autoUpdateTime" json:"updated_at"`
	Images        []ProductImage `gorm:"foreignKey:ProductID" json:"images,omitempty"`
	Category      *Category      `gorm:"foreignKey:CategoryID" json:"category,omitempty"`
}

// EffectivePrice は今この商品に払う価格（割引があれば割引価格）。
func (p Product) EffectivePrice() float64 {
	if p.DiscountPrice != nil {
		return *p.DiscountPrice
	}
	return p.Price
}
