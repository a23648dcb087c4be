package usecase

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"elegance/internal/domain/model"
	repo "elegance/internal/repository"
)

type HTTPError struct {
	Status  int
	Message string
}

func (e *HTTPError) Error() string {
	return fmt.Sprintf("%d: %s", e.Status, e.Message)
}

func NewHTTPError(status int, message string) error {
	return &HTTPError{
		Status:  status,
		Message: message,
	}
}

func AsHTTPError(err error) (*HTTPError, bool) {
	var he *HTTPError
	ok := errors.As(err, &he)
	return he, ok
}

// CatalogUsecase はカタログ（商品・カテゴリ）の読み取り。
type CatalogUsecase struct {
	productRepo  repo.ProductRepository
	categoryRepo repo.CategoryRepository
}

// DI
func NewCatalogUsecase(productRepo repo.ProductRepository, categoryRepo repo.CategoryRepository) *CatalogUsecase {
	return &CatalogUsecase{
		productRepo:  productRepo,
		categoryRepo: categoryRepo,
	}
}

// GET /productsの入力DTO
type ListProductsInput struct {
	CategoryID *int64
	Featured   bool
	Bestseller bool
	Limit      int
}

func (u *CatalogUsecase) ListProducts(ctx context.Context, in ListProductsInput) ([]model.Product, error) {
	if in.Limit < 0 {
		return nil, NewHTTPError(http.StatusBadRequest, "invalid limit")
	}

	items, err := u.productRepo.List(ctx, repo.ProductListFilter{
		CategoryID: in.CategoryID,
		Featured:   in.Featured,
		Bestseller: in.Bestseller,
		Limit:      in.Limit,
	})
	if err != nil {
		return nil, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return items, nil
}

// GetProduct は見つからないときnilを返す（エラーにしない）。
func (u *CatalogUsecase) GetProduct(ctx context.Context, id int64) (*model.Product, error) {
	p, err := u.productRepo.FindByID(ctx, id)
	if err == repo.ErrNotFound {
		return nil, nil
	}
	if err != nil {
		return nil, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return &p, nil
}

func (u *CatalogUsecase) GetProductBySlug(ctx context.Context, slug string) (*model.Product, error) {
	p, err := u.productRepo.FindBySlug(ctx, slug)
	if err == repo.ErrNotFound {
		return nil, nil
	}
	if err != nil {
		return nil, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return &p, nil
}

func (u *CatalogUsecase) ListCategories(ctx context.Context) ([]model.Category, error) {
	items, err := u.categoryRepo.List(ctx)
	if err != nil {
		return nil, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return items, nil
}
