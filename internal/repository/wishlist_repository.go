package repository

import (
	"context"

	"elegance/internal/domain/model"
)

type WishlistRepository interface {
	// 重複挿入は握りつぶして既存行を返す（created=false）。
	Add(ctx context.Context, sessionID string, productID int64) (item model.WishlistItem, created bool, err error)

	// 冪等削除。removed=false は元々無かった場合。
	Remove(ctx context.Context, sessionID string, productID int64) (removed bool, err error)

	ListBySession(ctx context.Context, sessionID string) ([]model.WishlistItem, error)
}
