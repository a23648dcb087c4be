package handler

import (
	"net/http"

	"elegance/internal/mail"
	"elegance/internal/usecase"

	"github.com/labstack/echo/v4"
)

// /send-email のHTTP
type EmailHandler struct {
	uc *usecase.NotificationUsecase
}

// DI
func NewEmailHandler(uc *usecase.NotificationUsecase) *EmailHandler {
	return &EmailHandler{uc: uc}
}

type EmailRequest struct {
	To       string         `json:"to"`
	Subject  string         `json:"subject"`
	Template string         `json:"template"`
	Data     mail.OrderData `json:"data"`
}

func (h *EmailHandler) RegisterRoutes(e *echo.Echo) {
	e.POST("/send-email", h.send)
}

func (h *EmailHandler) send(c echo.Context) error {
	var req EmailRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}

	message, err := h.uc.Send(c.Request().Context(), usecase.SendEmailInput{
		To:       req.To,
		Subject:  req.Subject,
		Template: req.Template,
		Data:     req.Data,
	})
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, MessageResponse{Success: true, Message: message})
}
