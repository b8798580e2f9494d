package usecase

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"storefront/internal/domain/model"
	repo "storefront/internal/repository"

	"github.com/shopspring/decimal"
)

// CartUsecase はカート画面・追加・バッジ件数の業務ロジックです。
type CartUsecase struct {
	carts   repo.CartRepository
	catalog repo.CatalogRepository
	taxRate decimal.Decimal
}

func NewCartUsecase(
	carts repo.CartRepository,
	catalog repo.CatalogRepository,
	taxRate decimal.Decimal,
) *CartUsecase {
	return &CartUsecase{
		carts:   carts,
		catalog: catalog,
		taxRate: taxRate,
	}
}

// バッジ表示用の件数
// Known=falseは「DBエラーで分からない」。0件とは区別する
type CartCount struct {
	Quantity int64 `json:"quantity"`
	Known    bool  `json:"known"`
	Err      error `json:"-"`
}

type AddToCartOutput struct {
	ModelID   int64  `json:"model_id"`
	ModelName string `json:"model_name"`
}

type CartView struct {
	Lines  []model.CartLineDetail `json:"lines"`
	Totals Totals                 `json:"totals"`
	Count  CartCount              `json:"count"`
}

// AddToCart は1クリックで1個追加する（同一型番は数量加算）。
func (u *CartUsecase) AddToCart(ctx context.Context, userID int64, modelID int64) (AddToCartOutput, error) {
	if userID <= 0 {
		return AddToCartOutput{}, NewHTTPError(http.StatusUnauthorized, "unauthorized")
	}
	if modelID <= 0 {
		return AddToCartOutput{}, NewHTTPError(http.StatusBadRequest, "invalid model_id")
	}

	// 型番の存在確認
	pm, err := u.catalog.FindModel(ctx, modelID)
	if errors.Is(err, repo.ErrNotFound) {
		return AddToCartOutput{}, WrapHTTPError(http.StatusNotFound, "product not found", err)
	}
	if err != nil {
		return AddToCartOutput{}, WrapHTTPError(http.StatusServiceUnavailable, MsgStorageUnavailable, fmt.Errorf("%w: %w", ErrStorageUnavailable, err))
	}

	if err := u.carts.AddOrIncrement(ctx, userID, modelID); err != nil {
		return AddToCartOutput{}, WrapHTTPError(http.StatusInternalServerError, "Failed to add item to cart.", err)
	}

	return AddToCartOutput{ModelID: pm.ID, ModelName: pm.Name}, nil
}

// GetCart はカートの明細と合計を返す。
func (u *CartUsecase) GetCart(ctx context.Context, userID int64) (CartView, error) {
	if userID <= 0 {
		return CartView{}, NewHTTPError(http.StatusUnauthorized, "unauthorized")
	}

	lines, err := u.carts.ListLines(ctx, userID)
	if err != nil {
		return CartView{}, WrapHTTPError(http.StatusServiceUnavailable, MsgStorageUnavailable, fmt.Errorf("%w: %w", ErrStorageUnavailable, err))
	}

	var qty int64
	for _, l := range lines {
		qty += l.Quantity
	}

	return CartView{
		Lines:  lines,
		Totals: ComputeTotals(lines, u.taxRate),
		Count:  CartCount{Quantity: qty, Known: true},
	}, nil
}

// Count はバッジ用。失敗してもerrorは返さずKnown=falseにする
func (u *CartUsecase) Count(ctx context.Context, userID int64) CartCount {
	if userID <= 0 {
		return CartCount{Quantity: 0, Known: true}
	}

	n, err := u.carts.SumQuantity(ctx, userID)
	if err != nil {
		return CartCount{Known: false, Err: err}
	}
	return CartCount{Quantity: n, Known: true}
}
