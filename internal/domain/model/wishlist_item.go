package model

import "time"

// 存在のみ（数量なし）。(session_id, product_id) はユニーク。
type WishlistItem struct {
	ID        int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	SessionID string    `gorm:"type:varchar(255);not null;uniqueIndex:idx_wishlist_session_product" json:"session_id"`
	ProductID int64     `gorm:"not null;uniqueIndex:idx_wishlist_session_product;index" json:"product_id"`
	CreatedAt time.Time `gorm:"not null;autoCreateTime" json:"created_at"`
	Product   *Product  `gorm:"foreignKey:ProductID" json:"product,omitempty"`
}
