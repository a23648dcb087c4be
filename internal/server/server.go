package server

import (
	"net/http"
	"time"

	"elegance/internal/handler"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"go.uber.org/zap"
)

// New はmiddleware適用済みのechoを返す。
// CORSは全開放（匿名ストアフロントの前提）。
func New(log *zap.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	e.Use(middleware.Recover())
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins: []string{"*"},
		AllowMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
		AllowHeaders: []string{"Content-Type", "Authorization", "X-Client-Info", "Apikey"},
	}))
	e.Use(requestLogger(log))

	e.HTTPErrorHandler = errorHandler

	return e
}

// アクセスログ（method, path, status, latency, ip）
func requestLogger(log *zap.Logger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()

			err := next(c)
			if err != nil {
				c.Error(err)
			}

			log.Info("request completed",
				zap.String("method", c.Request().Method),
				zap.String("path", c.Request().URL.Path),
				zap.Int("status", c.Response().Status),
				zap.Duration("latency", time.Since(start)),
				zap.String("ip", c.RealIP()),
			)
			return nil
		}
	}
}

// ルーティング外のエラーも {success:false, error} の封筒で返す。
func errorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	status := http.StatusInternalServerError
	message := "internal error"

	if he, ok := err.(*echo.HTTPError); ok {
		status = he.Code
		switch status {
		case http.StatusNotFound:
			message = "Endpoint not found"
		case http.StatusMethodNotAllowed:
			message = "Method not allowed"
		default:
			if m, ok := he.Message.(string); ok {
				message = m
			}
		}
	}

	_ = c.JSON(status, handler.ErrorResponse{Error: message})
}
