package usecase

import (
	"context"
	"net/http"

	"elegance/internal/domain/model"
	repo "elegance/internal/repository"
)

// CartUsecase はセッション単位のカート台帳。
type CartUsecase struct {
	cartRepo    repo.CartRepository
	productRepo repo.ProductRepository

	freeShippingThreshold float64
	shippingFee           float64
}

// DI
func NewCartUsecase(
	cartRepo repo.CartRepository,
	productRepo repo.ProductRepository,
	freeShippingThreshold float64,
	shippingFee float64,
) *CartUsecase {
	return &CartUsecase{
		cartRepo:              cartRepo,
		productRepo:           productRepo,
		freeShippingThreshold: freeShippingThreshold,
		shippingFee:           shippingFee,
	}
}

// GET /cart の応答
type CartView struct {
	Items    []model.CartItem `json:"data"`
	Subtotal float64          `json:"subtotal"`
	Shipping float64          `json:"shipping"`
	Total    float64          `json:"total"`
	Count    int              `json:"count"`
}

// Add は同一商品を数量加算でマージする（行は増やさない）。
// 在庫はチェックしない（stock_quantityは表示用）。
func (u *CartUsecase) Add(ctx context.Context, sessionID string, productID int64, qty int64) (model.CartItem, error) {
	if sessionID == "" {
		return model.CartItem{}, NewHTTPError(http.StatusBadRequest, "session_id is required")
	}
	if productID <= 0 {
		return model.CartItem{}, NewHTTPError(http.StatusBadRequest, "invalid product_id")
	}
	if qty < 1 {
		return model.CartItem{}, NewHTTPError(http.StatusBadRequest, "invalid quantity")
	}

	// 商品の存在チェック
	if _, err := u.productRepo.FindByID(ctx, productID); err != nil {
		if err == repo.ErrNotFound {
			return model.CartItem{}, NewHTTPError(http.StatusBadRequest, "invalid product_id")
		}
		return model.CartItem{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	item, err := u.cartRepo.AddOrIncrement(ctx, sessionID, productID, qty)
	if err != nil {
		return model.CartItem{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return item, nil
}

// Update は数量を上書きする。qty>=1の保証は呼び出し側の責務（台帳はクランプしない）。
func (u *CartUsecase) Update(ctx context.Context, sessionID string, productID int64, qty int64) error {
	if sessionID == "" {
		return NewHTTPError(http.StatusBadRequest, "session_id is required")
	}
	if productID <= 0 {
		return NewHTTPError(http.StatusBadRequest, "invalid product_id")
	}

	err := u.cartRepo.UpdateQuantity(ctx, sessionID, productID, qty)
	if err == repo.ErrNotFound {
		return NewHTTPError(http.StatusNotFound, "not found")
	}
	if err != nil {
		return NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return nil
}

// Remove は冪等（無い行を消してもエラーにしない）。
func (u *CartUsecase) Remove(ctx context.Context, sessionID string, productID int64) error {
	if sessionID == "" {
		return NewHTTPError(http.StatusBadRequest, "session_id is required")
	}
	if productID <= 0 {
		return NewHTTPError(http.StatusBadRequest, "invalid product_id")
	}

	if err := u.cartRepo.Remove(ctx, sessionID, productID); err != nil {
		return NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return nil
}

// List は明細と合計を返す。小計は各行の「今の」商品価格
// （割引があれば割引価格）で計算する。注文スナップショットとは逆の仕様。
func (u *CartUsecase) List(ctx context.Context, sessionID string) (CartView, error) {
	if sessionID == "" {
		return CartView{}, NewHTTPError(http.StatusBadRequest, "session_id is required")
	}

	items, err := u.cartRepo.ListBySession(ctx, sessionID)
	if err != nil {
		return CartView{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	var subtotal float64 = 0
	for _, it := range items {
		if it.Product == nil {
			continue
		}
		subtotal += it.Product.EffectivePrice() * float64(it.Quantity)
	}

	shipping := u.shippingFee
	if subtotal >= u.freeShippingThreshold {
		shipping = 0
	}
	if len(items) == 0 {
		shipping = 0
	}

	return CartView{
		Items:    items,
		Subtotal: subtotal,
		Shipping: shipping,
		Total:    subtotal + shipping,
		Count:    len(items),
	}, nil
}
