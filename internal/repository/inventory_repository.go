package repository

import (
	"context"

	"storefront/internal/domain/model"
)

type InventoryRepository interface {
	// 在庫を無条件で減算（マイナスになり得る）
	Decrease(ctx context.Context, modelID int64, qty int64) error

	// 在庫が足りるときだけ減算
	DecreaseIfEnough(ctx context.Context, modelID int64, qty int64) (bool, error)

	// 増減履歴作成
	CreateAdjustment(ctx context.Context, adjustment model.InventoryAdjustment) error
}
