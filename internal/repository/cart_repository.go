package repository

import (
	"context"

	"storefront/internal/domain/model"
)

// ショッピングカート（shopping_cart）の約束
type CartRepository interface {
	// 同一型番は数量+1、無ければ数量1で作成
	AddOrIncrement(ctx context.Context, userID int64, modelID int64) error
	// 現在の型番名・価格を結合して返す
	ListLines(ctx context.Context, userID int64) ([]model.CartLineDetail, error)
	// ユーザーの明細を全削除
	Clear(ctx context.Context, userID int64) error
	// 数量の合計（明細なしは0）
	SumQuantity(ctx context.Context, userID int64) (int64, error)
}
