package usecase

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"storefront/internal/domain/model"
	repo "storefront/internal/repository"

	"github.com/shopspring/decimal"
)

// UUID等のIDを作る約束
type IDGenerator interface {
	NewID() string
}

// 現在の時間
type Clock interface {
	Now() time.Time
}

// 注文確定時のルール
type CheckoutPolicy struct {
	TaxRate decimal.Decimal
	// trueなら在庫不足の明細があれば注文全体を失敗させる
	StrictStock bool
}

type OrderUsecase struct {
	tx     repo.TransactionManager
	idGen  IDGenerator
	clock  Clock
	policy CheckoutPolicy
}

func NewOrderUsecase(tx repo.TransactionManager, idGen IDGenerator, clock Clock, policy CheckoutPolicy) *OrderUsecase {
	return &OrderUsecase{
		tx:     tx,
		idGen:  idGen,
		clock:  clock,
		policy: policy,
	}
}

type OrderItemOutput struct {
	ModelID   int64           `json:"model_id"`
	ModelName string          `json:"model_name"`
	UnitPrice decimal.Decimal `json:"unit_price"`
	Quantity  int64           `json:"quantity"`
	LineTotal decimal.Decimal `json:"line_total"`
}

type OrderOutput struct {
	ID          string            `json:"order_id"`
	UserID      int64             `json:"user_id"`
	TotalAmount decimal.Decimal   `json:"total_amount"`
	OrderDate   time.Time         `json:"order_date"`
	Items       []OrderItemOutput `json:"items"`
}

type PlaceOrderOutput struct {
	Order   OrderOutput `json:"order"`
	Totals  Totals      `json:"totals"`
	Message string      `json:"message"`
}

// PlaceOrder はカートの中身を1つのトランザクションで注文にする。
// 注文・明細の作成、在庫減算、カート削除のどれかが失敗したら全てrollbackする。
func (u *OrderUsecase) PlaceOrder(ctx context.Context, userID int64) (PlaceOrderOutput, error) {
	if userID <= 0 {
		return PlaceOrderOutput{}, NewHTTPError(http.StatusUnauthorized, "unauthorized")
	}

	var out PlaceOrderOutput

	err := u.tx.WithinTx(ctx, func(r repo.TxRepos) error {
		// カートはTx内で読む（確定する内容と同じスナップショット）
		lines, err := r.Carts().ListLines(ctx, userID)
		if err != nil {
			return fmt.Errorf("%w: read cart: %w", ErrStorageUnavailable, err)
		}
		if len(lines) == 0 {
			return ErrCartEmpty
		}

		totals := ComputeTotals(lines, u.policy.TaxRate)
		order := model.Order{
			ID:          u.idGen.NewID(),
			UserID:      userID,
			TotalAmount: totals.Total.Round(2),
			OrderDate:   u.clock.Now(),
		}
		if err := r.Orders().Create(ctx, order); err != nil {
			return fmt.Errorf("create order: %w", err)
		}

		// 単価はこの時点の価格で固定
		items := make([]model.OrderItem, 0, len(lines))
		for _, l := range lines {
			items = append(items, model.OrderItem{
				ModelID:   l.ModelID,
				ModelName: l.ModelName,
				Quantity:  l.Quantity,
				UnitPrice: l.Price,
			})
		}
		if err := r.OrderItems().CreateBulk(ctx, order.ID, items); err != nil {
			return fmt.Errorf("create order items: %w", err)
		}

		for _, l := range lines {
			if err := u.decreaseStock(ctx, r.Inventory(), l); err != nil {
				return err
			}
			if err := r.Inventory().CreateAdjustment(ctx, model.InventoryAdjustment{
				ModelID:   l.ModelID,
				OrderID:   order.ID,
				Delta:     -l.Quantity,
				Reason:    model.AdjustmentReasonOrder,
				CreatedAt: order.OrderDate,
			}); err != nil {
				return fmt.Errorf("record adjustment for model %d: %w", l.ModelID, err)
			}
		}

		if err := r.Carts().Clear(ctx, userID); err != nil {
			return fmt.Errorf("clear cart: %w", err)
		}

		out = PlaceOrderOutput{
			Order:   toOrderOutput(order, items),
			Totals:  totals,
			Message: MsgOrderPlaced,
		}
		return nil
	})

	switch {
	case err == nil:
		return out, nil
	case errors.Is(err, ErrCartEmpty):
		return PlaceOrderOutput{}, WrapHTTPError(http.StatusBadRequest, "cart is empty", ErrCartEmpty)
	case errors.Is(err, ErrStorageUnavailable):
		return PlaceOrderOutput{}, WrapHTTPError(http.StatusServiceUnavailable, MsgStorageUnavailable, err)
	default:
		return PlaceOrderOutput{}, WrapHTTPError(http.StatusInternalServerError, MsgCheckoutFailed, fmt.Errorf("%w: %w", ErrCheckoutFailed, err))
	}
}

func (u *OrderUsecase) decreaseStock(ctx context.Context, inv repo.InventoryRepository, l model.CartLineDetail) error {
	if u.policy.StrictStock {
		ok, err := inv.DecreaseIfEnough(ctx, l.ModelID, l.Quantity)
		if err != nil {
			return fmt.Errorf("decrease stock for model %d: %w", l.ModelID, err)
		}
		if !ok {
			return fmt.Errorf("%w: model %d", ErrOutOfStock, l.ModelID)
		}
		return nil
	}

	// 在庫行が無い型番はErrNotFoundで注文ごと失敗
	if err := inv.Decrease(ctx, l.ModelID, l.Quantity); err != nil {
		return fmt.Errorf("decrease stock for model %d: %w", l.ModelID, err)
	}
	return nil
}

// 注文履歴（新しい順）
func (u *OrderUsecase) ListMyOrders(ctx context.Context, userID int64) ([]OrderOutput, error) {
	if userID <= 0 {
		return []OrderOutput{}, NewHTTPError(http.StatusUnauthorized, "unauthorized")
	}

	var outs []OrderOutput

	err := u.tx.WithinTx(ctx, func(r repo.TxRepos) error {
		orders, err := r.Orders().ListByUserID(ctx, userID, 50)
		if err != nil {
			return WrapHTTPError(http.StatusServiceUnavailable, MsgStorageUnavailable, err)
		}

		outs = make([]OrderOutput, 0, len(orders))
		for _, o := range orders {
			items, err := r.OrderItems().ListByOrderID(ctx, o.ID)
			if err != nil {
				return WrapHTTPError(http.StatusServiceUnavailable, MsgStorageUnavailable, err)
			}
			outs = append(outs, toOrderOutput(o, items))
		}
		return nil
	})
	if err != nil {
		return []OrderOutput{}, err
	}
	return outs, nil
}

// 注文詳細。他人の注文はnot foundにする
func (u *OrderUsecase) GetMyOrderDetail(ctx context.Context, userID int64, orderID string) (OrderOutput, error) {
	if userID <= 0 {
		return OrderOutput{}, NewHTTPError(http.StatusUnauthorized, "unauthorized")
	}
	orderID = strings.TrimSpace(orderID)
	if orderID == "" {
		return OrderOutput{}, NewHTTPError(http.StatusBadRequest, "invalid order id")
	}

	var out OrderOutput

	err := u.tx.WithinTx(ctx, func(r repo.TxRepos) error {
		o, err := r.Orders().FindByID(ctx, orderID)
		if errors.Is(err, repo.ErrNotFound) {
			return NewHTTPError(http.StatusNotFound, "order not found")
		}
		if err != nil {
			return WrapHTTPError(http.StatusServiceUnavailable, MsgStorageUnavailable, err)
		}
		if o.UserID != userID {
			return NewHTTPError(http.StatusNotFound, "order not found")
		}

		items, err := r.OrderItems().ListByOrderID(ctx, o.ID)
		if err != nil {
			return WrapHTTPError(http.StatusServiceUnavailable, MsgStorageUnavailable, err)
		}
		out = toOrderOutput(o, items)
		return nil
	})
	if err != nil {
		return OrderOutput{}, err
	}
	return out, nil
}

func toOrderOutput(o model.Order, items []model.OrderItem) OrderOutput {
	outItems := make([]OrderItemOutput, 0, len(items))
	for _, it := range items {
		outItems = append(outItems, OrderItemOutput{
			ModelID:   it.ModelID,
			ModelName: it.ModelName,
			UnitPrice: it.UnitPrice,
			Quantity:  it.Quantity,
			LineTotal: it.UnitPrice.Mul(decimal.NewFromInt(it.Quantity)),
		})
	}

	return OrderOutput{
		ID:          o.ID,
		UserID:      o.UserID,
		TotalAmount: o.TotalAmount,
		OrderDate:   o.OrderDate,
		Items:       outItems,
	}
}
