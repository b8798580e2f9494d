package model

import (
	"github.com/shopspring/decimal"
)

// 注文明細
// 購入時点の単価と型番名を保存する（後の価格変更の影響を受けない）
type OrderItem struct {
	ID        int64           `gorm:"column:order_item_id;primaryKey;autoIncrement" json:"order_item_id"`
	OrderID   string          `gorm:"column:order_id;type:varchar(36);not null;index" json:"order_id"`
	ModelID   int64           `gorm:"column:model_id;not null;index" json:"model_id"`
	ModelName string          `gorm:"column:model_name;type:varchar(255);not null" json:"model_name"`
	Quantity  int64           `gorm:"column:quantity;not null" json:"quantity"`
	UnitPrice decimal.Decimal `gorm:"column:unit_price;type:numeric(10,2);not null" json:"unit_price"`
}

func (OrderItem) TableName() string { return "order_items" }
