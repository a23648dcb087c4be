package repository

import (
	"context"

	"elegance/internal/domain/model"
)

type OrderRepository interface {
	// order_number重複はErrConflict（呼び出し側で番号を振り直してリトライ）。
	Create(ctx context.Context, order model.Order) (model.Order, error)

	// Items付きで返す。
	FindByOrderNumber(ctx context.Context, orderNumber string) (model.Order, error)
	ListByEmail(ctx context.Context, email string) ([]model.Order, error)

	FindByID(ctx context.Context, orderID int64) (model.Order, error)
	UpdateStatus(ctx context.Context, orderID int64, status model.OrderStatus) error
}
