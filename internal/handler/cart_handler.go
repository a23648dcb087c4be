package handler

import (
	"net/http"

	"elegance/internal/domain/model"
	"elegance/internal/usecase"

	"github.com/labstack/echo/v4"
)

// /cart のHTTP。POSTはactionディスクリミネータで分岐する。
type CartHandler struct {
	uc *usecase.CartUsecase
}

// DI
func NewCartHandler(uc *usecase.CartUsecase) *CartHandler {
	return &CartHandler{uc: uc}
}

// 文字列のまま分岐せず、まず型付きのアクションに解釈する。
type cartAction string

const (
	cartActionAdd    cartAction = "add"
	cartActionRemove cartAction = "remove"
	cartActionUpdate cartAction = "update"
	cartActionGet    cartAction = "get"
)

func parseCartAction(s string) (cartAction, bool) {
	switch cartAction(s) {
	case cartActionAdd, cartActionRemove, cartActionUpdate, cartActionGet:
		return cartAction(s), true
	}
	return "", false
}

type CartRequest struct {
	SessionID string `json:"session_id"`
	ProductID int64  `json:"product_id"`
	Quantity  *int64 `json:"quantity"`
	Action    string `json:"action"`
}

// GET /cart の封筒。小計・送料・合計・件数を同梱する。
type cartEnvelope struct {
	Success  bool             `json:"success"`
	Data     []model.CartItem `json:"data"`
	Subtotal float64          `json:"subtotal"`
	Shipping float64          `json:"shipping"`
	Total    float64          `json:"total"`
	Count    int              `json:"count"`
}

func (h *CartHandler) RegisterRoutes(e *echo.Echo) {
	e.GET("/cart", h.get)
	e.POST("/cart", h.post)
}

func (h *CartHandler) get(c echo.Context) error {
	view, err := h.uc.List(c.Request().Context(), c.QueryParam("session_id"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, cartEnvelope{
		Success:  true,
		Data:     view.Items,
		Subtotal: view.Subtotal,
		Shipping: view.Shipping,
		Total:    view.Total,
		Count:    view.Count,
	})
}

func (h *CartHandler) post(c echo.Context) error {
	var req CartRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}

	action, ok := parseCartAction(req.Action)
	if !ok {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Missing required fields: session_id, product_id, action"})
	}

	ctx := c.Request().Context()

	switch action {
	case cartActionAdd:
		// quantity未指定は1
		qty := int64(1)
		if req.Quantity != nil {
			qty = *req.Quantity
		}
		item, err := h.uc.Add(ctx, req.SessionID, req.ProductID, qty)
		if err != nil {
			return writeError(c, err)
		}
		return writeOK(c, item)

	case cartActionUpdate:
		// qty < 1 はワイヤ境界で弾く（台帳はクランプしない）
		if req.Quantity == nil || *req.Quantity < 1 {
			return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid quantity"})
		}
		if err := h.uc.Update(ctx, req.SessionID, req.ProductID, *req.Quantity); err != nil {
			return writeError(c, err)
		}
		return writeOK(c, nil)

	case cartActionRemove:
		if err := h.uc.Remove(ctx, req.SessionID, req.ProductID); err != nil {
			return writeError(c, err)
		}
		return writeOK(c, nil)

	case cartActionGet:
		return h.getForSession(c, req.SessionID)
	}

	return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "unsupported action"})
}

func (h *CartHandler) getForSession(c echo.Context, sessionID string) error {
	view, err := h.uc.List(c.Request().Context(), sessionID)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, cartEnvelope{
		Success:  true,
		Data:     view.Items,
		Subtotal: view.Subtotal,
		Shipping: view.Shipping,
		Total:    view.Total,
		Count:    view.Count,
	})
}
