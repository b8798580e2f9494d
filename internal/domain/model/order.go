package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// 注文ヘッダ。作成後は変更しない
// IDはUUIDの注文番号
type Order struct {
	ID          string          `gorm:"column:order_id;type:varchar(36);primaryKey" json:"order_id"`
	UserID      int64           `gorm:"column:user_id;not null;index" json:"user_id"`
	TotalAmount decimal.Decimal `gorm:"column:total_amount;type:numeric(12,2);not null" json:"total_amount"`
	OrderDate   time.Time       `gorm:"column:order_date;not null;index" json:"order_date"`
}

func (Order) TableName() string { return "orders" }
