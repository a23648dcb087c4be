package usecase

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"elegance/internal/domain/model"
	repo "elegance/internal/repository"
)

type Clock interface {
	Now() time.Time
}

type IDGenerator interface {
	NewID() string
}

// OrderUsecase は注文の確定と参照。
// 確定はヘッダ＋明細＋カート全削除を1トランザクションで行う。
type OrderUsecase struct {
	tx       repo.TransactionManager
	orders   repo.OrderRepository
	notifier *NotificationUsecase
	clock    Clock
	idGen    IDGenerator
}

// DI
func NewOrderUsecase(
	tx repo.TransactionManager,
	orders repo.OrderRepository,
	notifier *NotificationUsecase,
	clock Clock,
	idGen IDGenerator,
) *OrderUsecase {
	return &OrderUsecase{
		tx:       tx,
		orders:   orders,
		notifier: notifier,
		clock:    clock,
		idGen:    idGen,
	}
}

// 注文確定の入力。価格はチェックアウト時点で凍結されたスナップショットで、
// ここでは再照会しない。
type PlaceOrderInput struct {
	CustomerName    string
	CustomerEmail   string
	CustomerPhone   string
	ShippingAddress model.ShippingAddress
	Items           []OrderItemInput
	PaymentMethod   string
	SessionID       string
}

type OrderItemInput struct {
	ProductID   int64
	ProductName string
	Quantity    int64
	Price       float64
}

type OrderOutput struct {
	ID              int64                 `json:"id"`
	OrderNumber     string                `json:"order_number"`
	CustomerName    string                `json:"customer_name"`
	CustomerEmail   string                `json:"customer_email"`
	CustomerPhone   string                `json:"customer_phone"`
	ShippingAddress model.ShippingAddress `json:"shipping_address"`
	TotalAmount     float64               `json:"total_amount"`
	PaymentMethod   string                `json:"payment_method"`
	Status          model.OrderStatus     `json:"status"`
	CreatedAt       time.Time             `json:"created_at"`
	Items           []model.OrderItem     `json:"order_items"`
}

// PlaceOrder は検証→合計→番号採番→（Tx内で）ヘッダ作成・明細一括作成・
// カート全削除→確定メール（非同期・ベストエフォート）。
// どの書き込みが失敗してもロールバックされ、明細ゼロの注文は残らない。
func (u *OrderUsecase) PlaceOrder(ctx context.Context, in PlaceOrderInput) (OrderOutput, error) {
	if err := validatePlaceOrder(in); err != nil {
		return OrderOutput{}, err
	}

	// 合計は凍結価格の Σ price × quantity
	var total float64 = 0
	items := make([]model.OrderItem, 0, len(in.Items))
	for _, it := range in.Items {
		total += it.Price * float64(it.Quantity)
		items = append(items, model.OrderItem{
			ProductID:   it.ProductID,
			ProductName: it.ProductName,
			Quantity:    it.Quantity,
			Price:       it.Price,
		})
	}

	var created model.Order
	var createdItems []model.OrderItem

	err := u.tx.WithinTx(ctx, func(r repo.TxRepos) error {
		order := model.Order{
			OrderNumber:   u.newOrderNumber(),
			CustomerName:  in.CustomerName,
			CustomerEmail: in.CustomerEmail,
			CustomerPhone: in.CustomerPhone,
			AddressLine1:  in.ShippingAddress.AddressLine1,
			AddressLine2:  in.ShippingAddress.AddressLine2,
			City:          in.ShippingAddress.City,
			State:         in.ShippingAddress.State,
			Pincode:       in.ShippingAddress.Pincode,
			TotalAmount:   total,
			PaymentMethod: in.PaymentMethod,
			Status:        model.OrderStatusPending,
		}

		var err error
		created, err = r.Orders().Create(ctx, order)
		if err == repo.ErrConflict {
			// 同一ミリ秒の衝突。番号を振り直して1回だけリトライ。
			order.OrderNumber = u.newOrderNumber()
			created, err = r.Orders().Create(ctx, order)
		}
		if err != nil {
			return NewHTTPError(http.StatusInternalServerError, "db error")
		}

		createdItems, err = r.OrderItems().CreateBulk(ctx, created.ID, items)
		if err != nil {
			return NewHTTPError(http.StatusInternalServerError, "db error")
		}

		// カートはセッション単位で全削除（注文分だけではない）
		if err := r.Cart().ClearBySession(ctx, in.SessionID); err != nil {
			return NewHTTPError(http.StatusInternalServerError, "db error")
		}

		return nil
	})
	if err != nil {
		return OrderOutput{}, err
	}

	// 確定メールは注文フローを止めない
	go u.notifier.OrderConfirmed(created)

	return toOrderOutput(created, createdItems), nil
}

// GetOrders は注文番号またはメールで検索。見つからなければ空リスト。
func (u *OrderUsecase) GetOrders(ctx context.Context, orderNumber string, email string) ([]OrderOutput, error) {
	if orderNumber != "" {
		o, err := u.orders.FindByOrderNumber(ctx, orderNumber)
		if err == repo.ErrNotFound {
			return []OrderOutput{}, nil
		}
		if err != nil {
			return nil, NewHTTPError(http.StatusInternalServerError, "db error")
		}
		return []OrderOutput{toOrderOutput(o, o.Items)}, nil
	}

	if email != "" {
		orders, err := u.orders.ListByEmail(ctx, email)
		if err != nil {
			return nil, NewHTTPError(http.StatusInternalServerError, "db error")
		}
		outs := make([]OrderOutput, 0, len(orders))
		for _, o := range orders {
			outs = append(outs, toOrderOutput(o, o.Items))
		}
		return outs, nil
	}

	return nil, NewHTTPError(http.StatusBadRequest, "Provide order_number or email")
}

// UpdateStatus はステータス遷移（単調性を強制）。
// shippedへの遷移時は発送メールを送る。
func (u *OrderUsecase) UpdateStatus(ctx context.Context, orderID int64, status string) (OrderOutput, error) {
	if orderID <= 0 {
		return OrderOutput{}, NewHTTPError(http.StatusBadRequest, "invalid order_id")
	}

	next := model.OrderStatus(status)
	if !model.ValidStatus(next) {
		return OrderOutput{}, NewHTTPError(http.StatusBadRequest, "invalid status")
	}

	o, err := u.orders.FindByID(ctx, orderID)
	if err == repo.ErrNotFound {
		return OrderOutput{}, NewHTTPError(http.StatusNotFound, "not found")
	}
	if err != nil {
		return OrderOutput{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	if o.Status != next {
		if !model.CanTransition(o.Status, next) {
			return OrderOutput{}, NewHTTPError(http.StatusBadRequest,
				fmt.Sprintf("invalid status transition: %s -> %s", o.Status, next))
		}
		if err := u.orders.UpdateStatus(ctx, orderID, next); err != nil {
			return OrderOutput{}, NewHTTPError(http.StatusInternalServerError, "db error")
		}
		o.Status = next

		if next == model.OrderStatusShipped {
			go u.notifier.OrderShipped(o, "")
		}
	}

	return toOrderOutput(o, o.Items), nil
}

// ORD + ミリ秒epoch + 4桁サフィックス。
// 同一ミリ秒での衝突はuniqueインデックス＋リトライで閉じる。
func (u *OrderUsecase) newOrderNumber() string {
	millis := u.clock.Now().UnixMilli()
	raw := strings.ToUpper(strings.ReplaceAll(u.idGen.NewID(), "-", ""))
	if len(raw) > 4 {
		raw = raw[:4]
	}
	return fmt.Sprintf("ORD%d%s", millis, raw)
}

func validatePlaceOrder(in PlaceOrderInput) error {
	if len(in.Items) == 0 {
		return NewHTTPError(http.StatusBadRequest, "cart is empty")
	}
	if strings.TrimSpace(in.CustomerName) == "" ||
		strings.TrimSpace(in.CustomerEmail) == "" ||
		strings.TrimSpace(in.CustomerPhone) == "" {
		return NewHTTPError(http.StatusBadRequest, "Missing required fields: customer_name, customer_email, customer_phone")
	}
	if strings.TrimSpace(in.ShippingAddress.AddressLine1) == "" ||
		strings.TrimSpace(in.ShippingAddress.City) == "" ||
		strings.TrimSpace(in.ShippingAddress.State) == "" ||
		strings.TrimSpace(in.ShippingAddress.Pincode) == "" {
		return NewHTTPError(http.StatusBadRequest, "Missing required shipping address fields")
	}
	if in.SessionID == "" {
		return NewHTTPError(http.StatusBadRequest, "session_id is required")
	}
	for _, it := range in.Items {
		if it.ProductID <= 0 || strings.TrimSpace(it.ProductName) == "" {
			return NewHTTPError(http.StatusBadRequest, "invalid order item")
		}
		if it.Quantity < 1 || it.Price < 0 {
			return NewHTTPError(http.StatusBadRequest, "invalid order item")
		}
	}
	return nil
}

func toOrderOutput(o model.Order, items []model.OrderItem) OrderOutput {
	outItems := make([]model.OrderItem, 0, len(items))
	outItems = append(outItems, items...)

	return OrderOutput{
		ID:              o.ID,
		OrderNumber:     o.OrderNumber,
		CustomerName:    o.CustomerName,
		CustomerEmail:   o.CustomerEmail,
		CustomerPhone:   o.CustomerPhone,
		ShippingAddress: o.Shipping(),
		TotalAmount:     o.TotalAmount,
		PaymentMethod:   o.PaymentMethod,
		Status:          o.Status,
		CreatedAt:       o.CreatedAt,
		Items:           outItems,
	}
}
