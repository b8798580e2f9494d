package view

import "storefront/internal/usecase"

// 全ページ共通のヘッダ情報
type Chrome struct {
	Username string
	Cart     usecase.CartCount
	Error    string
	Notice   string
}

type IndexPage struct {
	Chrome
}

type SignupPage struct {
	Chrome
}

type ProductsPage struct {
	Chrome
	Catalog usecase.Catalog
}

type AddConfirmPage struct {
	Chrome
	ModelName string
	Success   bool
}

type CartPage struct {
	Chrome
	View usecase.CartView
}

type OrderResultPage struct {
	Chrome
	Success bool
	Message string
	Result  usecase.PlaceOrderOutput
}

type OrdersPage struct {
	Chrome
	Orders []usecase.OrderOutput
}

type OrderDetailPage struct {
	Chrome
	Order usecase.OrderOutput
}

type ErrorPage struct {
	Chrome
	Status  int
	Message string
}
