package model

import "time"

type OrderStatus string

const (
	OrderStatusPending    OrderStatus = "pending"
	OrderStatusProcessing OrderStatus = "processing"
	OrderStatusShipped    OrderStatus = "shipped"
	OrderStatusDelivered  OrderStatus = "delivered"
	OrderStatusCancelled  OrderStatus = "cancelled"
)

// ValidStatus は既知のステータスかどうか。
func ValidStatus(s OrderStatus) bool {
	switch s {
	case OrderStatusPending, OrderStatusProcessing, OrderStatusShipped,
		OrderStatusDelivered, OrderStatusCancelled:
		return true
	}
	return false
}

// CanTransition はステータス遷移の可否。
// pending → processing → shipped → delivered。
// cancelled は delivered/cancelled 以外のどこからでも可。
func CanTransition(from OrderStatus, to OrderStatus) bool {
	if from == OrderStatusDelivered || from == OrderStatusCancelled {
		return false
	}
	if to == OrderStatusCancelled {
		return true
	}
	switch from {
	case OrderStatusPending:
		return to == OrderStatusProcessing || to == OrderStatusShipped
	case OrderStatusProcessing:
		return to == OrderStatusShipped
	case OrderStatusShipped:
		return to == OrderStatusDelivered
	}
	return false
}

// 注文ヘッダ。連絡先・住所・金額は注文時点のスナップショットで不変。
// Status だけが後から変わる。
type Order struct {
	ID            int64       `gorm:"primaryKey;autoIncrement" json:"id"`
	OrderNumber   string      `gorm:"type:varchar(64);not null;uniqueIndex" json:"order_number"`
	CustomerName  string      `gorm:"type:varchar(255);not null" json:"customer_name"`
	CustomerEmail string      `gorm:"type:varchar(255);not null;index" json:"customer_email"`
	CustomerPhone string      `gorm:"type:varchar(30);not null" json:"customer_phone"`
	AddressLine1  string      `gorm:"type:varchar(255);not null" json:"-"`
	AddressLine2  string      `gorm:"type:varchar(255)" json:"-"`
	City          string      `gorm:"type:varchar(255);not null" json:"-"`
	State         string      `gorm:"type:varchar(255);not null" json:"-"`
	Pincode       string      `gorm:"type:varchar(20);not null" json:"-"`
	TotalAmount   float64     `gorm:"not null" json:"total_amount"`
	PaymentMethod string      `gorm:"type:varchar(50);not null" json:"payment_method"`
	Status        OrderStatus `gorm:"type:varchar(20);not null;index" json:"status"`
	CreatedAt     time.Time   `gorm:"not null;autoCreateTime" json:"created_at"`
	UpdatedAt     time.Time   `gorm:"not null;autoUpdateTime" json:"updated_at"`
	Items         []OrderItem `gorm:"foreignKey:OrderID" json:"order_items,omitempty"`
}

// ShippingAddress はワイヤ上のネスト形。DB上はordersのカラムに展開。
type ShippingAddress struct {
	AddressLine1 string `json:"address_line1"`
	AddressLine2 string `json:"address_line2,omitempty"`
	City         string `json:"city"`
	State        string `json:"state"`
	Pincode      string `json:"pincode"`
}

func (o Order) Shipping() ShippingAddress {
	return ShippingAddress{
		AddressLine1: o.AddressLine1,
		AddressLine2: o.AddressLine2,
		City:         o.City,
		State:        o.State,
		Pincode:      o.Pincode,
	}
}
