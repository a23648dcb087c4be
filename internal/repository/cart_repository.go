package repository

import (
	"context"

	"elegance/internal/domain/model"
)

type CartRepository interface {
	// 同一 (session, product) は数量加算。1文のUpsertで行い、read-then-writeのロストアップデートを作らない。
	AddOrIncrement(ctx context.Context, sessionID string, productID int64, qty int64) (model.CartItem, error)

	// 数量を上書き。行が無ければErrNotFound。
	UpdateQuantity(ctx context.Context, sessionID string, productID int64, qty int64) error

	// 冪等削除（無くてもエラーにしない）。
	Remove(ctx context.Context, sessionID string, productID int64) error

	// セッションの明細をProduct（画像込み）付きで返す。
	ListBySession(ctx context.Context, sessionID string) ([]model.CartItem, error)

	// セッションの明細を全削除（注文確定時）。
	ClearBySession(ctx context.Context, sessionID string) error
}
