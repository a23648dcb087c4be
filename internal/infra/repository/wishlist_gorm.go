package repository

import (
	"context"

	"elegance/internal/domain/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type WishlistGormRepository struct {
	db *gorm.DB
}

// DI
func NewWishlistGormRepository(db *gorm.DB) *WishlistGormRepository {
	return &WishlistGormRepository{db: db}
}

// 重複挿入は握りつぶす（同時トグルの競合を許容）。
func (r *WishlistGormRepository) Add(ctx context.Context, sessionID string, productID int64) (model.WishlistItem, bool, error) {
	item := model.WishlistItem{
		SessionID: sessionID,
		ProductID: productID,
	}

	res := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "session_id"}, {Name: "product_id"}},
			DoNothing: true,
		}).
		Create(&item)
	if res.Error != nil {
		// DO NOTHINGで拾えない経路（遅延制約など）も成功扱いにする
		if isUniqueViolation(res.Error) {
			res.Error = nil
		} else {
			return model.WishlistItem{}, false, res.Error
		}
	}

	created := res.RowsAffected > 0

	var out model.WishlistItem
	err := r.db.WithContext(ctx).
		Preload("Product").
		Where("session_id = ? AND product_id = ?", sessionID, productID).
		First(&out).Error
	if err != nil {
		return model.WishlistItem{}, false, err
	}
	return out, created, nil
}

// 冪等削除。removed=falseは元々無かった場合。
func (r *WishlistGormRepository) Remove(ctx context.Context, sessionID string, productID int64) (bool, error) {
	res := r.db.WithContext(ctx).
		Where("session_id = ? AND product_id = ?", sessionID, productID).
		Delete(&model.WishlistItem{})
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

func (r *WishlistGormRepository) ListBySession(ctx context.Context, sessionID string) ([]model.WishlistItem, error) {
	var items []model.WishlistItem
	err := r.db.WithContext(ctx).
		Preload("Product").
		Preload("Product.Images", func(db *gorm.DB) *gorm.DB {
			return db.Order("display_order asc")
		}).
		Where("session_id = ?", sessionID).
		Order("id asc").
		Find(&items).Error
	if err != nil {
		return []model.WishlistItem{}, err
	}
	return items, nil
}
