package handler

import (
	"net/http"
	"net/url"
	"strconv"

	"storefront/internal/usecase"
	"storefront/internal/view"

	"github.com/labstack/echo/v4"
)

// カート画面とカート追加
type CartHandler struct {
	carts CartService
}

// DI
func NewCartHandler(carts CartService) *CartHandler {
	return &CartHandler{carts: carts}
}

func (h *CartHandler) RegisterRoutes(e *echo.Echo, gate echo.MiddlewareFunc) {
	e.POST("/add_to_cart/:model_id/:model_name/:price", h.addToCart, gate)
	e.GET("/view_cart", h.viewCart, gate)
}

// 型番名・価格はURLに載っているが、保存・表示には使わない（DBの値が正）
func (h *CartHandler) addToCart(c echo.Context) error {
	s, ok := currentSession(c)
	if !ok {
		return redirectToLogin(c)
	}

	modelID, err := strconv.ParseInt(c.Param("model_id"), 10, 64)
	if err != nil || modelID <= 0 {
		return writeError(c, usecase.NewHTTPError(http.StatusBadRequest, "invalid model_id"))
	}
	if _, err := strconv.ParseFloat(c.Param("price"), 64); err != nil {
		return writeError(c, usecase.NewHTTPError(http.StatusBadRequest, "invalid price"))
	}
	name := c.Param("model_name")
	if n, err := url.PathUnescape(name); err == nil {
		name = n
	}

	out, err := h.carts.AddToCart(c.Request().Context(), s.UserID, modelID)
	if err != nil {
		logCause(c, err)
		status := http.StatusInternalServerError
		if he, ok := usecase.AsHTTPError(err); ok {
			status = he.Status
		}
		return c.Render(status, "add_confirm.html", view.AddConfirmPage{
			Chrome:    chrome(c, s, h.carts),
			ModelName: name,
			Success:   false,
		})
	}

	return c.Render(http.StatusOK, "add_confirm.html", view.AddConfirmPage{
		Chrome:    chrome(c, s, h.carts),
		ModelName: out.ModelName,
		Success:   true,
	})
}

func (h *CartHandler) viewCart(c echo.Context) error {
	s, ok := currentSession(c)
	if !ok {
		return redirectToLogin(c)
	}

	cv, err := h.carts.GetCart(c.Request().Context(), s.UserID)
	if err != nil {
		logCause(c, err)
		return c.Redirect(http.StatusFound, "/products?error="+url.QueryEscape("Cannot view cart: Database connection failed."))
	}

	return c.Render(http.StatusOK, "cart.html", view.CartPage{
		Chrome: view.Chrome{Username: s.Username, Cart: cv.Count},
		View:   cv,
	})
}
