package model

import "time"

// 型番ごとの在庫数
// 減算されるのは注文確定時だけ（カート操作では変わらない）
type Inventory struct {
	ModelID         int64     `gorm:"column:model_id;primaryKey;autoIncrement:false" json:"model_id"`
	QuantityInStock int64     `gorm:"column:quantity_in_stock;not null" json:"quantity_in_stock"`
	UpdatedAt       time.Time `gorm:"not null;autoUpdateTime" json:"updated_at"`
}

func (Inventory) TableName() string { return "inventory" }
