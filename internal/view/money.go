package view

import (
	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var printer = message.NewPrinter(language.AmericanEnglish)

// Money は金額を"$1,154.97"の形にする（小数2桁、3桁区切り）
func Money(d decimal.Decimal) string {
	f, _ := d.Round(2).Float64()
	return "$" + printer.Sprintf("%.2f", f)
}
