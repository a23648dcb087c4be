package usecase

import (
	"context"
	"net/http"

	"elegance/internal/domain/model"
	repo "elegance/internal/repository"
)

// WishlistUsecase はセッション単位のお気に入り集合（数量なし）。
type WishlistUsecase struct {
	wishlistRepo repo.WishlistRepository
	productRepo  repo.ProductRepository
}

// DI
func NewWishlistUsecase(wishlistRepo repo.WishlistRepository, productRepo repo.ProductRepository) *WishlistUsecase {
	return &WishlistUsecase{
		wishlistRepo: wishlistRepo,
		productRepo:  productRepo,
	}
}

type WishlistView struct {
	Items []model.WishlistItem `json:"data"`
	Count int                  `json:"count"`
}

// Toggle は存在すれば削除、無ければ追加。2回呼べば元に戻る。
// 戻り値のaddedは結果の所属（true=入った / false=外れた）。
func (u *WishlistUsecase) Toggle(ctx context.Context, sessionID string, productID int64) (*model.WishlistItem, bool, error) {
	if err := u.validate(sessionID, productID); err != nil {
		return nil, false, err
	}

	removed, err := u.wishlistRepo.Remove(ctx, sessionID, productID)
	if err != nil {
		return nil, false, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	if removed {
		return nil, false, nil
	}

	item, err := u.add(ctx, sessionID, productID)
	if err != nil {
		return nil, false, err
	}
	return item, true, nil
}

// Add は重複挿入を握りつぶす（同時トグルでもエラーにしない）。
func (u *WishlistUsecase) Add(ctx context.Context, sessionID string, productID int64) (*model.WishlistItem, error) {
	if err := u.validate(sessionID, productID); err != nil {
		return nil, err
	}
	return u.add(ctx, sessionID, productID)
}

func (u *WishlistUsecase) add(ctx context.Context, sessionID string, productID int64) (*model.WishlistItem, error) {
	// 商品の存在チェック
	if _, err := u.productRepo.FindByID(ctx, productID); err != nil {
		if err == repo.ErrNotFound {
			return nil, NewHTTPError(http.StatusBadRequest, "invalid product_id")
		}
		return nil, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	item, _, err := u.wishlistRepo.Add(ctx, sessionID, productID)
	if err != nil {
		return nil, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return &item, nil
}

// Remove は冪等。
func (u *WishlistUsecase) Remove(ctx context.Context, sessionID string, productID int64) error {
	if err := u.validate(sessionID, productID); err != nil {
		return err
	}

	if _, err := u.wishlistRepo.Remove(ctx, sessionID, productID); err != nil {
		return NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return nil
}

func (u *WishlistUsecase) List(ctx context.Context, sessionID string) (WishlistView, error) {
	if sessionID == "" {
		return WishlistView{}, NewHTTPError(http.StatusBadRequest, "session_id is required")
	}

	items, err := u.wishlistRepo.ListBySession(ctx, sessionID)
	if err != nil {
		return WishlistView{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return WishlistView{Items: items, Count: len(items)}, nil
}

func (u *WishlistUsecase) validate(sessionID string, productID int64) error {
	if sessionID == "" {
		return NewHTTPError(http.StatusBadRequest, "session_id is required")
	}
	if productID <= 0 {
		return NewHTTPError(http.StatusBadRequest, "invalid product_id")
	}
	return nil
}
