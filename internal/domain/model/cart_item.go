package model

import "time"

// 1行 = (session_id, product_id)。同じ組は必ず1行に保つ。
// ユニークインデックスが加算Upsertの前提。
type CartItem struct {
	ID        int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	SessionID string    `gorm:"type:varchar(255);not null;uniqueIndex:idx_cart_session_product" json:"session_id"`
	ProductID int64     `gorm:"not null;uniqueIndex:idx_cart_session_product;index" json:"product_id"`
	Quantity  int64     `gorm:"not null" json:"quantity"`
	CreatedAt time.Time `gorm:"not null;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"not null;autoUpdateTime" json:"updated_at"`
	Product   *Product  `gorm:"foreignKey:ProductID" json:"product,omitempty"`
}
