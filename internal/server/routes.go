package server

import (
	"storefront/internal/handler"
	"storefront/internal/middleware"
	"storefront/internal/session"

	"github.com/labstack/echo/v4"
)

type Handlers struct {
	Auth     *handler.AuthHandler
	Products *handler.ProductHandler
	Cart     *handler.CartHandler
	Orders   *handler.OrderHandler
}

// ログイン・会員登録以外はセッション必須
func RegisterRoutes(e *echo.Echo, sessions *session.Manager, h Handlers) {
	gate := middleware.RequireSession(sessions)

	h.Auth.RegisterRoutes(e)
	h.Products.RegisterRoutes(e, gate)
	h.Cart.RegisterRoutes(e, gate)
	h.Orders.RegisterRoutes(e, gate)
}
