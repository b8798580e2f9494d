package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// カートの明細
// (user_id, model_id)で1行。同じ型番の追加は数量を+1する
type CartLine struct {
	UserID    int64     `gorm:"column:user_id;primaryKey;autoIncrement:false" json:"user_id"`
	ModelID   int64     `gorm:"column:model_id;primaryKey;autoIncrement:false" json:"model_id"`
	Quantity  int64     `gorm:"column:quantity;not null" json:"quantity"`
	CreatedAt time.Time `gorm:"not null;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"not null;autoUpdateTime" json:"updated_at"`
}

func (CartLine) TableName() string { return "shopping_cart" }

// 明細に現在の型番名・価格を結合したもの
type CartLineDetail struct {
	ModelID   int64           `json:"model_id"`
	ModelName string          `json:"model_name"`
	Price     decimal.Decimal `json:"price"`
	Quantity  int64           `json:"quantity"`
}

// 小計（価格×数量）
func (d CartLineDetail) LineTotal() decimal.Decimal {
	return d.Price.Mul(decimal.NewFromInt(d.Quantity))
}
