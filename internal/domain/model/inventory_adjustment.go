package model

import "time"

//在庫増減の履歴

type InventoryAdjustment struct {
	ID        int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	ModelID   int64     `gorm:"column:model_id;not null;index" json:"model_id"`
	OrderID   string    `gorm:"column:order_id;type:varchar(36);index" json:"order_id"`
	Delta     int64     `gorm:"not null" json:"delta"`
	Reason    string    `gorm:"type:varchar(255);not null" json:"reason"`
	CreatedAt time.Time `gorm:"not null;autoCreateTime" json:"created_at"`
}

func (InventoryAdjustment) TableName() string { return "inventory_adjustments" }

// 増減の理由
const (
	AdjustmentReasonOrder = "order"
	AdjustmentReasonSeed  = "seed"
)
