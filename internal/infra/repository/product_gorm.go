package repository

import (
	"context"
	"errors"

	"storefront/internal/domain/model"

	"gorm.io/gorm"
)

type ProductGormRepository struct {
	db *gorm.DB
}

// DI
func NewProductGormRepository(db *gorm.DB) *ProductGormRepository {
	return &ProductGormRepository{db: db}
}

// カテゴリ名で取得、無ければ作成
func (r *ProductGormRepository) UpsertCategory(ctx context.Context, name string) (model.ProductCategory, error) {
	var c model.ProductCategory
	err := r.db.WithContext(ctx).
		Where(model.ProductCategory{Name: name}).
		FirstOrCreate(&c).Error
	if err != nil {
		return model.ProductCategory{}, err
	}
	return c, nil
}

// シリーズはカテゴリ内で名前が一意
func (r *ProductGormRepository) UpsertSeries(ctx context.Context, categoryID int64, name string) (model.ProductSeries, error) {
	var s model.ProductSeries
	err := r.db.WithContext(ctx).
		Where(model.ProductSeries{CategoryID: categoryID, Name: name}).
		FirstOrCreate(&s).Error
	if err != nil {
		return model.ProductSeries{}, err
	}
	return s, nil
}

// 型番名で探して、価格・シリーズを最新にする
func (r *ProductGormRepository) UpsertModel(ctx context.Context, m model.ProductModel) (model.ProductModel, error) {
	var cur model.ProductModel
	err := r.db.WithContext(ctx).Where("model_name = ?", m.Name).First(&cur).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		m.ID = 0
		if err := r.db.WithContext(ctx).Create(&m).Error; err != nil {
			return model.ProductModel{}, err
		}
		return m, nil
	}
	if err != nil {
		return model.ProductModel{}, err
	}

	if err := r.db.WithContext(ctx).Model(&model.ProductModel{}).
		Where("model_id = ?", cur.ID).
		Updates(map[string]interface{}{
			"series_id": m.SeriesID,
			"price":     m.Price,
		}).Error; err != nil {
		return model.ProductModel{}, err
	}

	cur.SeriesID = m.SeriesID
	cur.Price = m.Price
	return cur, nil
}

// 在庫を「現在値」に更新し、調整履歴も残す
func (r *ProductGormRepository) SetStockWithAdjustment(ctx context.Context, modelID int64, newStock int64, reason string) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		//現在の在庫を取得（無ければ0から）
		var inv model.Inventory
		exists := true
		if err := tx.Where("model_id = ?", modelID).First(&inv).Error; err != nil {
			if !errors.Is(err, gorm.ErrRecordNotFound) {
				return err
			}
			exists = false
		}

		delta := newStock - inv.QuantityInStock
		if exists {
			if err := tx.Model(&model.Inventory{}).
				Where("model_id = ?", modelID).
				Update("quantity_in_stock", newStock).Error; err != nil {
				return err
			}
		} else {
			if err := tx.Create(&model.Inventory{ModelID: modelID, QuantityInStock: newStock}).Error; err != nil {
				return err
			}
		}

		if delta == 0 {
			return nil
		}
		return tx.Create(&model.InventoryAdjustment{
			ModelID: modelID,
			Delta:   delta,
			Reason:  reason,
		}).Error
	})
}
