package model

import "github.com/shopspring/decimal"

// カテゴリ→シリーズ→型番→在庫を結合した1行
type CatalogRow struct {
	ModelID        int64           `db:"id" json:"id"`
	ModelName      string          `db:"name" json:"name"`
	CategoryName   string          `db:"category_name" json:"category_name"`
	SeriesName     string          `db:"series_name" json:"series_name"`
	Price          decimal.Decimal `db:"price" json:"price"`
	InventoryCount int64           `db:"inventory_count" json:"inventory_count"`
}
