package handler

import (
	"net/http"

	"elegance/internal/usecase"

	"github.com/labstack/echo/v4"
)

// すべての応答は {success, data?, error?} の封筒に包む。
type SuccessResponse struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data"`
}

type MessageResponse struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data,omitempty"`
	Message string      `json:"message"`
}

type ErrorResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
}

func writeOK(c echo.Context, data interface{}) error {
	return c.JSON(http.StatusOK, SuccessResponse{Success: true, Data: data})
}

func writeError(c echo.Context, err error) error {
	if err == nil {
		return nil
	}
	if he, ok := usecase.AsHTTPError(err); ok {
		return c.JSON(he.Status, ErrorResponse{Error: he.Message})
	}

	//500
	return c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "internal error"})
}
