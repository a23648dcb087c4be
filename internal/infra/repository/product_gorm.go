package repository

import (
	"context"
	"errors"

	"elegance/internal/domain/model"
	repo "elegance/internal/repository"

	"gorm.io/gorm"
)

type ProductGormRepository struct {
	db *gorm.DB
}

// DI
func NewProductGormRepository(db *gorm.DB) *ProductGormRepository {
	return &ProductGormRepository{db: db}
}

// 画像はdisplay_order順でPreloadする。
func withCatalog(db *gorm.DB) *gorm.DB {
	return db.
		Preload("Images", func(db *gorm.DB) *gorm.DB {
			return db.Order("display_order asc")
		}).
		Preload("Category")
}

func (r *ProductGormRepository) List(ctx context.Context, f repo.ProductListFilter) ([]model.Product, error) {
	q := withCatalog(r.db.WithContext(ctx))

	if f.CategoryID != nil {
		q = q.Where("category_id = ?", *f.CategoryID)
	}
	if f.Featured {
		q = q.Where("is_featured = ?", true)
	}
	if f.Bestseller {
		q = q.Where("is_bestseller = ?", true)
	}

	limit := f.Limit
	if limit <= 0 {
		limit = 50
	}

	var items []model.Product
	if err := q.Order("id asc").Limit(limit).Find(&items).Error; err != nil {
		return []model.Product{}, err
	}
	return items, nil
}

func (r *ProductGormRepository) FindByID(ctx context.Context, id int64) (model.Product, error) {
	var p model.Product
	err := withCatalog(r.db.WithContext(ctx)).Where("id = ?", id).First(&p).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return model.Product{}, repo.ErrNotFound
	}
	if err != nil {
		return model.Product{}, err
	}
	return p, nil
}

func (r *ProductGormRepository) FindBySlug(ctx context.Context, slug string) (model.Product, error) {
	var p model.Product
	err := withCatalog(r.db.WithContext(ctx)).Where("slug = ?", slug).First(&p).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return model.Product{}, repo.ErrNotFound
	}
	if err != nil {
		return model.Product{}, err
	}
	return p, nil
}

type CategoryGormRepository struct {
	db *gorm.DB
}

func NewCategoryGormRepository(db *gorm.DB) *CategoryGormRepository {
	return &CategoryGormRepository{db: db}
}

func (r *CategoryGormRepository) List(ctx context.Context) ([]model.Category, error) {
	var items []model.Category
	if err := r.db.WithContext(ctx).Order("name asc").Find(&items).Error; err != nil {
		return []model.Category{}, err
	}
	return items, nil
}
