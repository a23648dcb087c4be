package handler

import (
	"net/http"
	"strconv"

	"elegance/internal/usecase"

	"github.com/labstack/echo/v4"
)

// /products, /categories の公開API
type ProductHandler struct {
	uc *usecase.CatalogUsecase
}

// DI
func NewProductHandler(uc *usecase.CatalogUsecase) *ProductHandler {
	return &ProductHandler{uc: uc}
}

func (h *ProductHandler) RegisterRoutes(e *echo.Echo) {
	e.GET("/products", h.list)
	e.GET("/products/:id", h.detail)
	e.GET("/categories", h.categories)
}

func (h *ProductHandler) list(c echo.Context) error {
	in := usecase.ListProductsInput{}

	if v := c.QueryParam("category_id"); v != "" {
		id, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid category_id"})
		}
		in.CategoryID = &id
	}
	in.Featured = c.QueryParam("featured") == "true"
	in.Bestseller = c.QueryParam("bestseller") == "true"

	// limit（default 50）
	if v := c.QueryParam("limit"); v != "" {
		l, err := strconv.Atoi(v)
		if err != nil {
			return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid limit"})
		}
		in.Limit = l
	}

	items, err := h.uc.ListProducts(c.Request().Context(), in)
	if err != nil {
		return writeError(c, err)
	}
	return writeOK(c, items)
}

// 数値ならID、そうでなければslugで引く。
// 見つからないときは data: null のまま成功を返す。
func (h *ProductHandler) detail(c echo.Context) error {
	ctx := c.Request().Context()
	raw := c.Param("id")

	if id, err := strconv.ParseInt(raw, 10, 64); err == nil {
		p, err := h.uc.GetProduct(ctx, id)
		if err != nil {
			return writeError(c, err)
		}
		if p == nil {
			return writeOK(c, nil)
		}
		return writeOK(c, p)
	}

	p, err := h.uc.GetProductBySlug(ctx, raw)
	if err != nil {
		return writeError(c, err)
	}
	if p == nil {
		return writeOK(c, nil)
	}
	return writeOK(c, p)
}

func (h *ProductHandler) categories(c echo.Context) error {
	items, err := h.uc.ListCategories(c.Request().Context())
	if err != nil {
		return writeError(c, err)
	}
	return writeOK(c, items)
}
