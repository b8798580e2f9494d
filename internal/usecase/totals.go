package usecase

import (
	"storefront/internal/domain/model"

	"github.com/shopspring/decimal"
)

// 小計・税・合計
type Totals struct {
	Subtotal decimal.Decimal `json:"subtotal"`
	Tax      decimal.Decimal `json:"tax"`
	Total    decimal.Decimal `json:"total"`
}

// total = subtotal × (1 + taxRate)。丸めは保存・表示の側で行う
func ComputeTotals(lines []model.CartLineDetail, taxRate decimal.Decimal) Totals {
	subtotal := decimal.Zero
	for _, l := range lines {
		subtotal = subtotal.Add(l.LineTotal())
	}
	tax := subtotal.Mul(taxRate)

	return Totals{
		Subtotal: subtotal,
		Tax:      tax,
		Total:    subtotal.Add(tax),
	}
}
