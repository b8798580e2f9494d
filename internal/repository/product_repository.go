package repository

import (
	"context"

	"storefront/internal/domain/model"
)

// カタログの登録・更新（seedコマンド用）
// 同じ名前で何度呼んでも1件に収まる
type ProductRepository interface {
	UpsertCategory(ctx context.Context, name string) (model.ProductCategory, error)
	UpsertSeries(ctx context.Context, categoryID int64, name string) (model.ProductSeries, error)
	// 型番名で探し、あれば価格とシリーズを更新
	UpsertModel(ctx context.Context, m model.ProductModel) (model.ProductModel, error)
	// 在庫を「現在値」に更新し、差分を履歴に残す
	SetStockWithAdjustment(ctx context.Context, modelID int64, newStock int64, reason string) error
}
