package repository

import (
	"context"
	"errors"

	"elegance/internal/domain/model"
)

var ErrNotFound = errors.New("not found")

// 一意制約違反（重複挿入）。infra層でPostgresの23505から変換する。
var ErrConflict = errors.New("conflict")

// カタログの絞り込み条件
type ProductListFilter struct {
	CategoryID *int64
	Featured   bool
	Bestseller bool
	Limit      int
}

// 商品カタログの読み取りだけを約束（書き込みはseedコマンドのみ）。
type ProductRepository interface {
	List(ctx context.Context, f ProductListFilter) ([]model.Product, error)
	FindByID(ctx context.Context, id int64) (model.Product, error)
	FindBySlug(ctx context.Context, slug string) (model.Product, error)
}

type CategoryRepository interface {
	List(ctx context.Context) ([]model.Category, error)
}
