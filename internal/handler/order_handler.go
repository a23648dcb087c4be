package handler

import (
	"net/http"
	"strconv"

	"elegance/internal/domain/model"
	"elegance/internal/usecase"

	"github.com/labstack/echo/v4"
)

// /orders のHTTP
type OrderHandler struct {
	uc *usecase.OrderUsecase
}

// DI
func NewOrderHandler(uc *usecase.OrderUsecase) *OrderHandler {
	return &OrderHandler{uc: uc}
}

type OrderRequest struct {
	CustomerName    string                `json:"customer_name"`
	CustomerEmail   string                `json:"customer_email"`
	CustomerPhone   string                `json:"customer_phone"`
	ShippingAddress model.ShippingAddress `json:"shipping_address"`
	Items           []OrderItemRequest    `json:"items"`
	PaymentMethod   string                `json:"payment_method"`
	SessionID       string                `json:"session_id"`
}

type OrderItemRequest struct {
	ProductID   int64   `json:"product_id"`
	ProductName string  `json:"product_name"`
	Quantity    int64   `json:"quantity"`
	Price       float64 `json:"price"`
}

type UpdateStatusRequest struct {
	Status string `json:"status"`
}

func (h *OrderHandler) RegisterRoutes(e *echo.Echo) {
	e.GET("/orders", h.get)
	e.POST("/orders", h.create)
	e.PUT("/orders/:id/status", h.updateStatus)
}

func (h *OrderHandler) get(c echo.Context) error {
	outs, err := h.uc.GetOrders(
		c.Request().Context(),
		c.QueryParam("order_number"),
		c.QueryParam("email"),
	)
	if err != nil {
		return writeError(c, err)
	}
	return writeOK(c, outs)
}

func (h *OrderHandler) create(c echo.Context) error {
	var req OrderRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}

	items := make([]usecase.OrderItemInput, 0, len(req.Items))
	for _, it := range req.Items {
		items = append(items, usecase.OrderItemInput{
			ProductID:   it.ProductID,
			ProductName: it.ProductName,
			Quantity:    it.Quantity,
			Price:       it.Price,
		})
	}

	out, err := h.uc.PlaceOrder(c.Request().Context(), usecase.PlaceOrderInput{
		CustomerName:    req.CustomerName,
		CustomerEmail:   req.CustomerEmail,
		CustomerPhone:   req.CustomerPhone,
		ShippingAddress: req.ShippingAddress,
		Items:           items,
		PaymentMethod:   req.PaymentMethod,
		SessionID:       req.SessionID,
	})
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, MessageResponse{
		Success: true,
		Data:    out,
		Message: "Order " + out.OrderNumber + " created successfully",
	})
}

func (h *OrderHandler) updateStatus(c echo.Context) error {
	orderID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid id"})
	}

	var req UpdateStatusRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if req.Status == "" {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "order_id and status are required"})
	}

	out, err := h.uc.UpdateStatus(c.Request().Context(), orderID, req.Status)
	if err != nil {
		return writeError(c, err)
	}
	return writeOK(c, out)
}
