package server

import (
	"elegance/internal/handler"

	"github.com/labstack/echo/v4"
)

func RegisterRoutes(
	e *echo.Echo,
	productH *handler.ProductHandler,
	cartH *handler.CartHandler,
	wishlistH *handler.WishlistHandler,
	orderH *handler.OrderHandler,
	emailH *handler.EmailHandler,
) {
	productH.RegisterRoutes(e)
	cartH.RegisterRoutes(e)
	wishlistH.RegisterRoutes(e)
	orderH.RegisterRoutes(e)
	emailH.RegisterRoutes(e)
}
