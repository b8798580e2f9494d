package repository

import (
	"context"
	"time"

	"storefront/internal/domain/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type CartGormRepository struct {
	db *gorm.DB
}

// DI
func NewCartGormRepository(db *gorm.DB) *CartGormRepository {
	return &CartGormRepository{db: db}
}

// 同一型番は数量+1、無ければ数量1で作成
// INSERT ... ON CONFLICT DO UPDATE の1文で行う
func (r *CartGormRepository) AddOrIncrement(ctx context.Context, userID int64, modelID int64) error {
	now := time.Now()
	line := model.CartLine{
		UserID:    userID,
		ModelID:   modelID,
		Quantity:  1,
		CreatedAt: now,
		UpdatedAt: now,
	}

	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "user_id"}, {Name: "model_id"}},
			DoUpdates: clause.Assignments(map[string]interface{}{
				"quantity":   gorm.Expr("shopping_cart.quantity + ?", 1),
				"updated_at": now,
			}),
		}).
		Create(&line).Error
}

// カート明細に現在の型番名・価格を結合して返す
func (r *CartGormRepository) ListLines(ctx context.Context, userID int64) ([]model.CartLineDetail, error) {
	var lines []model.CartLineDetail

	err := r.db.WithContext(ctx).
		Table("shopping_cart AS sc").
		Select("sc.model_id AS model_id, pm.model_name AS model_name, pm.price AS price, sc.quantity AS quantity").
		Joins("JOIN product_model pm ON pm.model_id = sc.model_id").
		Where("sc.user_id = ?", userID).
		Order("pm.model_name asc").
		Order("sc.model_id asc").
		Scan(&lines).Error
	if err != nil {
		return []model.CartLineDetail{}, err
	}
	if lines == nil {
		lines = []model.CartLineDetail{}
	}
	return lines, nil
}

// ユーザーの明細を全削除
func (r *CartGormRepository) Clear(ctx context.Context, userID int64) error {
	return r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Delete(&model.CartLine{}).Error
}

// 数量の合計。明細が無ければ0
func (r *CartGormRepository) SumQuantity(ctx context.Context, userID int64) (int64, error) {
	var total int64

	err := r.db.WithContext(ctx).
		Model(&model.CartLine{}).
		Where("user_id = ?", userID).
		Select("COALESCE(SUM(quantity), 0)").
		Scan(&total).Error
	if err != nil {
		return 0, err
	}
	return total, nil
}
