package model

import "github.com/shopspring/decimal"

// カテゴリ（スマートフォン / アクセサリなど）
type ProductCategory struct {
	ID   int64  `gorm:"column:category_id;primaryKey;autoIncrement" json:"category_id"`
	Name string `gorm:"column:category_name;type:varchar(100);not null;uniqueIndex" json:"category_name"`
}

func (ProductCategory) TableName() string { return "product_category" }

// シリーズはカテゴリに属する
type ProductSeries struct {
	ID         int64  `gorm:"column:series_id;primaryKey;autoIncrement" json:"series_id"`
	CategoryID int64  `gorm:"column:category_id;not null;index" json:"category_id"`
	Name       string `gorm:"column:series_name;type:varchar(100);not null" json:"series_name"`
}

func (ProductSeries) TableName() string { return "product_series" }

// 販売する型番。このシステムからは読み取り専用
type ProductModel struct {
	ID       int64           `gorm:"column:model_id;primaryKey;autoIncrement" json:"model_id"`
	SeriesID int64           `gorm:"column:series_id;not null;index" json:"series_id"`
	Name     string          `gorm:"column:model_name;type:varchar(255);not null;uniqueIndex" json:"model_name"`
	Price    decimal.Decimal `gorm:"column:price;type:numeric(10,2);not null" json:"price"`
}

func (ProductModel) TableName() string { return "product_model" }
