package repository

import (
	"context"
	"errors"

	"storefront/internal/domain/model"
)

var ErrNotFound = errors.New("not found")

// カタログの読み取り専用の約束
type CatalogRepository interface {
	// 在庫がある型番だけ、カテゴリ・シリーズ・型番名順で返す
	ListInStock(ctx context.Context) ([]model.CatalogRow, error)
	// 型番を1件取得
	FindModel(ctx context.Context, modelID int64) (model.ProductModel, error)
}
