package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"elegance/internal/domain/model"
	repo "elegance/internal/repository"
	"elegance/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ハンドラテスト用の最小フェイク
type stubProductRepo struct {
	products map[int64]model.Product
}

func (s *stubProductRepo) List(ctx context.Context, f repo.ProductListFilter) ([]model.Product, error) {
	out := []model.Product{}
	for _, p := range s.products {
		out = append(out, p)
	}
	return out, nil
}

func (s *stubProductRepo) FindByID(ctx context.Context, id int64) (model.Product, error) {
	p, ok := s.products[id]
	if !ok {
		return model.Product{}, repo.ErrNotFound
	}
	return p, nil
}

func (s *stubProductRepo) FindBySlug(ctx context.Context, slug string) (model.Product, error) {
	for _, p := range s.products {
		if p.Slug == slug {
			return p, nil
		}
	}
	return model.Product{}, repo.ErrNotFound
}

type stubCartRepo struct {
	products *stubProductRepo
	items    []model.CartItem
	nextID   int64
}

func (s *stubCartRepo) AddOrIncrement(ctx context.Context, sessionID string, productID int64, qty int64) (model.CartItem, error) {
	for i, it := range s.items {
		if it.SessionID == sessionID && it.ProductID == productID {
			s.items[i].Quantity += qty
			return s.items[i], nil
		}
	}
	s.nextID++
	p, _ := s.products.FindByID(ctx, productID)
	item := model.CartItem{ID: s.nextID, SessionID: sessionID, ProductID: productID, Quantity: qty, Product: &p}
	s.items = append(s.items, item)
	return item, nil
}

func (s *stubCartRepo) UpdateQuantity(ctx context.Context, sessionID string, productID int64, qty int64) error {
	for i, it := range s.items {
		if it.SessionID == sessionID && it.ProductID == productID {
			s.items[i].Quantity = qty
			return nil
		}
	}
	return repo.ErrNotFound
}

func (s *stubCartRepo) Remove(ctx context.Context, sessionID string, productID int64) error {
	kept := s.items[:0]
	for _, it := range s.items {
		if !(it.SessionID == sessionID && it.ProductID == productID) {
			kept = append(kept, it)
		}
	}
	s.items = kept
	return nil
}

func (s *stubCartRepo) ListBySession(ctx context.Context, sessionID string) ([]model.CartItem, error) {
	out := []model.CartItem{}
	for _, it := range s.items {
		if it.SessionID == sessionID {
			p, _ := s.products.FindByID(ctx, it.ProductID)
			it.Product = &p
			out = append(out, it)
		}
	}
	return out, nil
}

func (s *stubCartRepo) ClearBySession(ctx context.Context, sessionID string) error {
	kept := s.items[:0]
	for _, it := range s.items {
		if it.SessionID != sessionID {
			kept = append(kept, it)
		}
	}
	s.items = kept
	return nil
}

func newCartHandler() (*CartHandler, *stubCartRepo) {
	products := &stubProductRepo{products: map[int64]model.Product{
		1: {ID: 1, Name: "Pearl Studs", Slug: "pearl-studs", Price: 500},
	}}
	cart := &stubCartRepo{products: products}
	uc := usecase.NewCartUsecase(cart, products, 999, 50)
	return NewCartHandler(uc), cart
}

func postCart(t *testing.T, h *CartHandler, body string) *httptest.ResponseRecorder {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/cart", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	require.NoError(t, h.post(e.NewContext(req, rec)))
	return rec
}

// quantity未指定のaddは1個
func TestCartHandler_Add_DefaultQuantity(t *testing.T) {
	h, cart := newCartHandler()

	rec := postCart(t, h, `{"session_id":"s1","product_id":1,"action":"add"}`)
	assert.Equal(t, http.StatusOK, rec.Code)

	require.Len(t, cart.items, 1)
	assert.Equal(t, int64(1), cart.items[0].Quantity)

	var body struct {
		Success bool           `json:"success"`
		Data    model.CartItem `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.True(t, body.Success)
	require.NotNil(t, body.Data.Product)
	assert.Equal(t, "Pearl Studs", body.Data.Product.Name)
}

func TestCartHandler_UnknownAction(t *testing.T) {
	h, _ := newCartHandler()

	rec := postCart(t, h, `{"session_id":"s1","product_id":1,"action":"merge"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	var body ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.False(t, body.Success)
	assert.NotEmpty(t, body.Error)
}

// update はワイヤ境界で qty >= 1 を要求する
func TestCartHandler_Update_RejectsNonPositive(t *testing.T) {
	h, cart := newCartHandler()
	postCart(t, h, `{"session_id":"s1","product_id":1,"action":"add","quantity":2}`)

	rec := postCart(t, h, `{"session_id":"s1","product_id":1,"action":"update","quantity":0}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, int64(2), cart.items[0].Quantity)

	rec = postCart(t, h, `{"session_id":"s1","product_id":1,"action":"update","quantity":5}`)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, int64(5), cart.items[0].Quantity)
}

// get アクションは小計・送料・合計を同梱した封筒で返す
func TestCartHandler_GetAction_Envelope(t *testing.T) {
	h, _ := newCartHandler()
	postCart(t, h, `{"session_id":"s1","product_id":1,"action":"add","quantity":3}`)

	rec := postCart(t, h, `{"session_id":"s1","action":"get"}`)
	assert.Equal(t, http.StatusOK, rec.Code)

	var body struct {
		Success  bool             `json:"success"`
		Data     []model.CartItem `json:"data"`
		Subtotal float64          `json:"subtotal"`
		Shipping float64          `json:"shipping"`
		Total    float64          `json:"total"`
		Count    int              `json:"count"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.True(t, body.Success)
	require.Len(t, body.Data, 1)
	assert.Equal(t, float64(1500), body.Subtotal)
	assert.Equal(t, float64(0), body.Shipping) // 閾値999以上は送料無料
	assert.Equal(t, float64(1500), body.Total)
	assert.Equal(t, 1, body.Count)
}

func TestCartHandler_Get_RequiresSession(t *testing.T) {
	h, _ := newCartHandler()

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/cart", nil)
	rec := httptest.NewRecorder()
	require.NoError(t, h.get(e.NewContext(req, rec)))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
