package repository

import (
	"context"
	"database/sql"
	"errors"

	"storefront/internal/domain/model"
	repo "storefront/internal/repository"

	"github.com/jmoiron/sqlx"
)

// カタログの読み取りはsqlxで生SQL
type CatalogSqlxRepository struct {
	db *sqlx.DB
}

func NewCatalogSqlxRepository(db *sqlx.DB) *CatalogSqlxRepository {
	return &CatalogSqlxRepository{db: db}
}

const listInStockQuery = `
SELECT
	pm.model_id AS id,
	pm.model_name AS name,
	pc.category_name,
	ps.series_name,
	pm.price,
	i.quantity_in_stock AS inventory_count
FROM product_model pm
JOIN product_series ps ON pm.series_id = ps.series_id
JOIN product_category pc ON ps.category_id = pc.category_id
JOIN inventory i ON pm.model_id = i.model_id
WHERE i.quantity_in_stock > 0
ORDER BY pc.category_name, ps.series_name, pm.model_name`

// 在庫がある型番だけ返す
func (r *CatalogSqlxRepository) ListInStock(ctx context.Context) ([]model.CatalogRow, error) {
	rows := []model.CatalogRow{}
	if err := r.db.SelectContext(ctx, &rows, listInStockQuery); err != nil {
		return []model.CatalogRow{}, err
	}
	return rows, nil
}

// 型番を1件取得
func (r *CatalogSqlxRepository) FindModel(ctx context.Context, modelID int64) (model.ProductModel, error) {
	var pm model.ProductModel
	q := r.db.Rebind(`SELECT model_id, series_id, model_name, price FROM product_model WHERE model_id = ?`)

	row := r.db.QueryRowxContext(ctx, q, modelID)
	if err := row.Scan(&pm.ID, &pm.SeriesID, &pm.Name, &pm.Price); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.ProductModel{}, repo.ErrNotFound
		}
		return model.ProductModel{}, err
	}
	return pm, nil
}
