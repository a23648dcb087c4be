package repository

import (
	"context"

	"elegance/internal/domain/model"
)

type OrderItemRepository interface {
	CreateBulk(ctx context.Context, orderID int64, items []model.OrderItem) ([]model.OrderItem, error)
}
