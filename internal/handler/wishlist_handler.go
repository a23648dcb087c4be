package handler

import (
	"net/http"

	"elegance/internal/domain/model"
	"elegance/internal/usecase"

	"github.com/labstack/echo/v4"
)

// /wishlist のHTTP。addとremoveは同じトグルの2つの枝。
type WishlistHandler struct {
	uc *usecase.WishlistUsecase
}

// DI
func NewWishlistHandler(uc *usecase.WishlistUsecase) *WishlistHandler {
	return &WishlistHandler{uc: uc}
}

type wishlistAction string

const (
	wishlistActionAdd    wishlistAction = "add"
	wishlistActionRemove wishlistAction = "remove"
	wishlistActionToggle wishlistAction = "toggle"
	wishlistActionGet    wishlistAction = "get"
)

func parseWishlistAction(s string) (wishlistAction, bool) {
	switch wishlistAction(s) {
	case wishlistActionAdd, wishlistActionRemove, wishlistActionToggle, wishlistActionGet:
		return wishlistAction(s), true
	}
	return "", false
}

type WishlistRequest struct {
	SessionID string `json:"session_id"`
	ProductID int64  `json:"product_id"`
	Action    string `json:"action"`
}

type wishlistEnvelope struct {
	Success bool                 `json:"success"`
	Data    []model.WishlistItem `json:"data"`
	Count   int                  `json:"count"`
}

func (h *WishlistHandler) RegisterRoutes(e *echo.Echo) {
	e.GET("/wishlist", h.get)
	e.POST("/wishlist", h.post)
}

func (h *WishlistHandler) get(c echo.Context) error {
	view, err := h.uc.List(c.Request().Context(), c.QueryParam("session_id"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, wishlistEnvelope{
		Success: true,
		Data:    view.Items,
		Count:   view.Count,
	})
}

func (h *WishlistHandler) post(c echo.Context) error {
	var req WishlistRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}

	action, ok := parseWishlistAction(req.Action)
	if !ok {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Missing required fields: session_id, product_id, action"})
	}

	ctx := c.Request().Context()

	switch action {
	case wishlistActionAdd:
		item, err := h.uc.Add(ctx, req.SessionID, req.ProductID)
		if err != nil {
			return writeError(c, err)
		}
		return writeOK(c, item)

	case wishlistActionRemove:
		if err := h.uc.Remove(ctx, req.SessionID, req.ProductID); err != nil {
			return writeError(c, err)
		}
		return writeOK(c, nil)

	case wishlistActionToggle:
		item, _, err := h.uc.Toggle(ctx, req.SessionID, req.ProductID)
		if err != nil {
			return writeError(c, err)
		}
		// 外れた場合はdata: null
		if item == nil {
			return writeOK(c, nil)
		}
		return writeOK(c, item)

	case wishlistActionGet:
		view, err := h.uc.List(ctx, req.SessionID)
		if err != nil {
			return writeError(c, err)
		}
		return c.JSON(http.StatusOK, wishlistEnvelope{
			Success: true,
			Data:    view.Items,
			Count:   view.Count,
		})
	}

	return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "unsupported action"})
}
