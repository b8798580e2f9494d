package handler

import (
	"context"

	"storefront/internal/usecase"
	auth "storefront/internal/usecase/auth_usecase"

	"github.com/stretchr/testify/mock"
)

type LoginServiceMock struct{ mock.Mock }

func (m *LoginServiceMock) Execute(ctx context.Context, in auth.LoginInput) (auth.LoginOutput, error) {
	args := m.Called(ctx, in)
	out, _ := args.Get(0).(auth.LoginOutput)
	return out, args.Error(1)
}

type RegisterServiceMock struct{ mock.Mock }

func (m *RegisterServiceMock) Execute(ctx context.Context, in auth.RegisterUserInput) (auth.RegisterUserOutput, error) {
	args := m.Called(ctx, in)
	out, _ := args.Get(0).(auth.RegisterUserOutput)
	return out, args.Error(1)
}

type CatalogServiceMock struct{ mock.Mock }

func (m *CatalogServiceMock) Browse(ctx context.Context) (usecase.Catalog, error) {
	args := m.Called(ctx)
	out, _ := args.Get(0).(usecase.Catalog)
	return out, args.Error(1)
}

type CartServiceMock struct{ mock.Mock }

func (m *CartServiceMock) AddToCart(ctx context.Context, userID int64, modelID int64) (usecase.AddToCartOutput, error) {
	args := m.Called(ctx, userID, modelID)
	out, _ := args.Get(0).(usecase.AddToCartOutput)
	return out, args.Error(1)
}

func (m *CartServiceMock) GetCart(ctx context.Context, userID int64) (usecase.CartView, error) {
	args := m.Called(ctx, userID)
	out, _ := args.Get(0).(usecase.CartView)
	return out, args.Error(1)
}

func (m *CartServiceMock) Count(ctx context.Context, userID int64) usecase.CartCount {
	args := m.Called(ctx, userID)
	out, _ := args.Get(0).(usecase.CartCount)
	return out
}

type OrderServiceMock struct{ mock.Mock }

func (m *OrderServiceMock) PlaceOrder(ctx context.Context, userID int64) (usecase.PlaceOrderOutput, error) {
	args := m.Called(ctx, userID)
	out, _ := args.Get(0).(usecase.PlaceOrderOutput)
	return out, args.Error(1)
}

func (m *OrderServiceMock) ListMyOrders(ctx context.Context, userID int64) ([]usecase.OrderOutput, error) {
	args := m.Called(ctx, userID)
	out, _ := args.Get(0).([]usecase.OrderOutput)
	return out, args.Error(1)
}

func (m *OrderServiceMock) GetMyOrderDetail(ctx context.Context, userID int64, orderID string) (usecase.OrderOutput, error) {
	args := m.Called(ctx, userID, orderID)
	out, _ := args.Get(0).(usecase.OrderOutput)
	return out, args.Error(1)
}
