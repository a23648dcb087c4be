package model

import "time"

// 注文明細。商品名・価格・数量は注文時点のスナップショット。
// 後からproductsが変わっても過去の注文には影響しない。
type OrderItem struct {
	ID          int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	OrderID     int64     `gorm:"not null;index" json:"order_id"`
	ProductID   int64     `gorm:"not null;index" json:"product_id"`
	ProductName string    `gorm:"type:varchar(255);not null" json:"product_name"`
	Quantity    int64     `gorm:"not null" json:"quantity"`
	Price       float64   `gorm:"not null" json:"price"`
	CreatedAt   time.Time `gorm:"not null;autoCreateTime" json:"created_at"`
}
