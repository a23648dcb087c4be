package model

import "time"

type ProductImage struct {
	ID           int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	ProductID    int64     `gorm:"not null;index" json:"product_id"`
	ImageURL     string    `gorm:"type:text;not null" json:"image_url"`
	DisplayOrder int       `gorm:"not null;default:0" json:"display_order"`
	CreatedAt    time.Time `gorm:"not null;autoCreateTime" json:"created_at"`
}
