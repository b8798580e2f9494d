package usecase

import (
	"context"
	"time"

	"storefront/internal/domain/model"
	repo "storefront/internal/repository"

	"github.com/stretchr/testify/mock"
)

// =====================
// TxManager / TxRepos mocks
// =====================

// TxManagerMock は WithinTx の中で渡す repos を固定する
type TxManagerMock struct {
	mock.Mock
	Repos repo.TxRepos
}

func (m *TxManagerMock) WithinTx(ctx context.Context, fn func(r repo.TxRepos) error) error {
	m.Called(ctx)
	return fn(m.Repos)
}

type TxReposMock struct {
	orders     repo.OrderRepository
	orderItems repo.OrderItemRepository
	carts      repo.CartRepository
	inventory  repo.InventoryRepository
}

func (r *TxReposMock) Orders() repo.OrderRepository         { return r.orders }
func (r *TxReposMock) OrderItems() repo.OrderItemRepository { return r.orderItems }
func (r *TxReposMock) Carts() repo.CartRepository           { return r.carts }
func (r *TxReposMock) Inventory() repo.InventoryRepository  { return r.inventory }

// =====================
// Repository mocks
// =====================

type OrderRepoMock struct{ mock.Mock }

func (m *OrderRepoMock) Create(ctx context.Context, order model.Order) error {
	return m.Called(ctx, order).Error(0)
}

func (m *OrderRepoMock) FindByID(ctx context.Context, orderID string) (model.Order, error) {
	args := m.Called(ctx, orderID)
	o, _ := args.Get(0).(model.Order)
	return o, args.Error(1)
}

func (m *OrderRepoMock) ListByUserID(ctx context.Context, userID int64, limit int) ([]model.Order, error) {
	args := m.Called(ctx, userID, limit)
	os, _ := args.Get(0).([]model.Order)
	return os, args.Error(1)
}

type OrderItemRepoMock struct{ mock.Mock }

func (m *OrderItemRepoMock) CreateBulk(ctx context.Context, orderID string, items []model.OrderItem) error {
	return m.Called(ctx, orderID, items).Error(0)
}

func (m *OrderItemRepoMock) ListByOrderID(ctx context.Context, orderID string) ([]model.OrderItem, error) {
	args := m.Called(ctx, orderID)
	items, _ := args.Get(0).([]model.OrderItem)
	return items, args.Error(1)
}

type CartRepoMock struct{ mock.Mock }

func (m *CartRepoMock) AddOrIncrement(ctx context.Context, userID int64, modelID int64) error {
	return m.Called(ctx, userID, modelID).Error(0)
}

func (m *CartRepoMock) ListLines(ctx context.Context, userID int64) ([]model.CartLineDetail, error) {
	args := m.Called(ctx, userID)
	lines, _ := args.Get(0).([]model.CartLineDetail)
	return lines, args.Error(1)
}

func (m *CartRepoMock) Clear(ctx context.Context, userID int64) error {
	return m.Called(ctx, userID).Error(0)
}

func (m *CartRepoMock) SumQuantity(ctx context.Context, userID int64) (int64, error) {
	args := m.Called(ctx, userID)
	n, _ := args.Get(0).(int64)
	return n, args.Error(1)
}

type InventoryRepoMock struct{ mock.Mock }

func (m *InventoryRepoMock) Decrease(ctx context.Context, modelID int64, qty int64) error {
	return m.Called(ctx, modelID, qty).Error(0)
}

func (m *InventoryRepoMock) DecreaseIfEnough(ctx context.Context, modelID int64, qty int64) (bool, error) {
	args := m.Called(ctx, modelID, qty)
	return args.Bool(0), args.Error(1)
}

func (m *InventoryRepoMock) CreateAdjustment(ctx context.Context, adj model.InventoryAdjustment) error {
	return m.Called(ctx, adj).Error(0)
}

type CatalogRepoMock struct{ mock.Mock }

func (m *CatalogRepoMock) ListInStock(ctx context.Context) ([]model.CatalogRow, error) {
	args := m.Called(ctx)
	rows, _ := args.Get(0).([]model.CatalogRow)
	return rows, args.Error(1)
}

func (m *CatalogRepoMock) FindModel(ctx context.Context, modelID int64) (model.ProductModel, error) {
	args := m.Called(ctx, modelID)
	pm, _ := args.Get(0).(model.ProductModel)
	return pm, args.Error(1)
}

// =====================
// IDGenerator / Clock
// =====================

type fixedID string

func (f fixedID) NewID() string { return string(f) }

type fixedClock time.Time

func (f fixedClock) Now() time.Time { return time.Time(f) }
