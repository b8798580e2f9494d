package handler

import (
	"errors"
	"net/http"

	"storefront/internal/usecase"
	"storefront/internal/view"

	"github.com/labstack/echo/v4"
)

type OrderHandler struct {
	orders OrderService
	carts  CartService
}

func NewOrderHandler(orders OrderService, carts CartService) *OrderHandler {
	return &OrderHandler{orders: orders, carts: carts}
}

func (h *OrderHandler) RegisterRoutes(e *echo.Echo, gate echo.MiddlewareFunc) {
	e.POST("/place_order_action", h.placeOrder, gate)

	g := e.Group("/orders", gate)
	g.GET("", h.list)
	g.GET("/:order_id", h.detail)
}

func (h *OrderHandler) placeOrder(c echo.Context) error {
	s, ok := currentSession(c)
	if !ok {
		return redirectToLogin(c)
	}

	out, err := h.orders.PlaceOrder(c.Request().Context(), s.UserID)
	if errors.Is(err, usecase.ErrCartEmpty) {
		return c.Redirect(http.StatusFound, "/view_cart")
	}
	if err != nil {
		logCause(c, err)
		status, msg := http.StatusInternalServerError, usecase.MsgCheckoutFailed
		if he, ok := usecase.AsHTTPError(err); ok {
			status, msg = he.Status, he.Message
		}
		return c.Render(status, "order_result.html", view.OrderResultPage{
			Chrome:  chrome(c, s, h.carts),
			Success: false,
			Message: msg,
		})
	}

	return c.Render(http.StatusOK, "order_result.html", view.OrderResultPage{
		Chrome:  chrome(c, s, h.carts),
		Success: true,
		Message: out.Message,
		Result:  out,
	})
}

func (h *OrderHandler) list(c echo.Context) error {
	s, ok := currentSession(c)
	if !ok {
		return redirectToLogin(c)
	}

	orders, err := h.orders.ListMyOrders(c.Request().Context(), s.UserID)
	if err != nil {
		return writeError(c, err)
	}
	return c.Render(http.StatusOK, "orders.html", view.OrdersPage{
		Chrome: chrome(c, s, h.carts),
		Orders: orders,
	})
}

func (h *OrderHandler) detail(c echo.Context) error {
	s, ok := currentSession(c)
	if !ok {
		return redirectToLogin(c)
	}

	order, err := h.orders.GetMyOrderDetail(c.Request().Context(), s.UserID, c.Param("order_id"))
	if err != nil {
		return writeError(c, err)
	}
	return c.Render(http.StatusOK, "order_detail.html", view.OrderDetailPage{
		Chrome: chrome(c, s, h.carts),
		Order:  order,
	})
}
