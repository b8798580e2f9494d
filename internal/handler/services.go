package handler

import (
	"context"

	"storefront/internal/usecase"
	auth "storefront/internal/usecase/auth_usecase"
)

// handlerが使うusecaseの約束（テストで差し替える）

type LoginService interface {
	Execute(ctx context.Context, in auth.LoginInput) (auth.LoginOutput, error)
}

type RegisterService interface {
	Execute(ctx context.Context, in auth.RegisterUserInput) (auth.RegisterUserOutput, error)
}

type CatalogService interface {
	Browse(ctx context.Context) (usecase.Catalog, error)
}

type CartService interface {
	AddToCart(ctx context.Context, userID int64, modelID int64) (usecase.AddToCartOutput, error)
	GetCart(ctx context.Context, userID int64) (usecase.CartView, error)
	Count(ctx context.Context, userID int64) usecase.CartCount
}

type OrderService interface {
	PlaceOrder(ctx context.Context, userID int64) (usecase.PlaceOrderOutput, error)
	ListMyOrders(ctx context.Context, userID int64) ([]usecase.OrderOutput, error)
	GetMyOrderDetail(ctx context.Context, userID int64, orderID string) (usecase.OrderOutput, error)
}
