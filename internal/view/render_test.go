package view

import (
	"bytes"
	"testing"
	"time"

	"storefront/internal/domain/model"
	"storefront/internal/usecase"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMoney(t *testing.T) {
	assert.Equal(t, "$1,154.97", Money(decimal.RequireFromString("1154.967")))
	assert.Equal(t, "$24.99", Money(decimal.RequireFromString("24.99")))
	assert.Equal(t, "$0.00", Money(decimal.Zero))
}

func TestRenderer_Products(t *testing.T) {
	r, err := NewRenderer()
	require.NoError(t, err)

	page := ProductsPage{
		Chrome: Chrome{Username: "alice", Cart: usecase.CartCount{Quantity: 3, Known: true}},
		Catalog: usecase.Catalog{Categories: []usecase.CategoryGroup{{
			Name: "Smartphones",
			Series: []usecase.SeriesGroup{{
				Name: "Galaxy S",
				Items: []usecase.CatalogItem{{
					ID: 1, Name: "Galaxy S24 Ultra", Price: decimal.RequireFromString("999.99"),
					InventoryCount: 10, ImageURL: "/static/images/s24_ultra.jpg",
				}},
			}},
		}}},
	}

	var buf bytes.Buffer
	require.NoError(t, r.Render(&buf, "products.html", page, nil))

	html := buf.String()
	assert.Contains(t, html, "Logged in as alice")
	assert.Contains(t, html, "Cart (3)")
	assert.Contains(t, html, "Galaxy S24 Ultra")
	assert.Contains(t, html, "$999.99")
	assert.Contains(t, html, "/add_to_cart/1/Galaxy%20S24%20Ultra/999.99")
}

func TestRenderer_UnknownCartCount(t *testing.T) {
	r, err := NewRenderer()
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, r.Render(&buf, "cart.html", CartPage{
		Chrome: Chrome{Username: "alice", Cart: usecase.CartCount{Known: false}},
	}, nil))

	assert.Contains(t, buf.String(), "Cart (?)")
	assert.Contains(t, buf.String(), "Your cart is empty.")
}

func TestRenderer_CartTotals(t *testing.T) {
	r, err := NewRenderer()
	require.NoError(t, err)

	lines := []model.CartLineDetail{
		{ModelID: 1, ModelName: "Galaxy S24 Ultra", Price: decimal.RequireFromString("999.99"), Quantity: 1},
		{ModelID: 2, ModelName: "S24 Ultra Silicone Case", Price: decimal.RequireFromString("24.99"), Quantity: 2},
	}
	cv := usecase.CartView{
		Lines:  lines,
		Totals: usecase.ComputeTotals(lines, decimal.RequireFromString("0.10")),
		Count:  usecase.CartCount{Quantity: 3, Known: true},
	}

	var buf bytes.Buffer
	require.NoError(t, r.Render(&buf, "cart.html", CartPage{Chrome: Chrome{Username: "alice", Cart: cv.Count}, View: cv}, nil))

	html := buf.String()
	assert.Contains(t, html, "Subtotal: $1,049.97")
	assert.Contains(t, html, "Total: $1,154.97")
	assert.Contains(t, html, "$49.98")
}

func TestRenderer_OrderDetail(t *testing.T) {
	r, err := NewRenderer()
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, r.Render(&buf, "order_detail.html", OrderDetailPage{
		Chrome: Chrome{Username: "alice", Cart: usecase.CartCount{Known: true}},
		Order: usecase.OrderOutput{
			ID:          "7f1c0c8e-0000-4000-8000-000000000001",
			TotalAmount: decimal.RequireFromString("1154.97"),
			OrderDate:   time.Date(2026, 1, 2, 15, 4, 0, 0, time.UTC),
		},
	}, nil))

	assert.Contains(t, buf.String(), "Placed on 2026-01-02 15:04")
	assert.Contains(t, buf.String(), "$1,154.97")
}

func TestRenderer_UnknownTemplate(t *testing.T) {
	r, err := NewRenderer()
	require.NoError(t, err)

	var buf bytes.Buffer
	assert.Error(t, r.Render(&buf, "missing.html", nil, nil))
}
