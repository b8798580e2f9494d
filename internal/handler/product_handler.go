package handler

import (
	"net/http"

	"storefront/internal/view"

	"github.com/labstack/echo/v4"
)

// 商品一覧（ログイン必須）
type ProductHandler struct {
	catalog CatalogService
	carts   CartService
}

// DI
func NewProductHandler(catalog CatalogService, carts CartService) *ProductHandler {
	return &ProductHandler{catalog: catalog, carts: carts}
}

func (h *ProductHandler) RegisterRoutes(e *echo.Echo, gate echo.MiddlewareFunc) {
	e.GET("/products", h.list, gate)
}

func (h *ProductHandler) list(c echo.Context) error {
	s, ok := currentSession(c)
	if !ok {
		return redirectToLogin(c)
	}

	page := view.ProductsPage{Chrome: chrome(c, s, h.carts)}
	page.Error = c.QueryParam("error")

	cat, err := h.catalog.Browse(c.Request().Context())
	if err != nil {
		// 一覧は空で表示する
		logCause(c, err)
		page.Error = "Failed to connect to the database."
	}
	page.Catalog = cat

	return c.Render(http.StatusOK, "products.html", page)
}
