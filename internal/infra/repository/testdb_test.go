package repository

import (
	"context"
	"path/filepath"
	"testing"

	"storefront/internal/domain/model"
	"storefront/internal/infra/db"

	"github.com/jmoiron/sqlx"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// テスト用のsqlite（t.TempDir配下）
func newTestDB(t *testing.T) (*gorm.DB, *sqlx.DB) {
	t.Helper()

	gdb, err := db.OpenSQLite(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	require.NoError(t, db.Migrate(gdb))

	q, err := db.NewQueryer(gdb)
	require.NoError(t, err)

	t.Cleanup(func() {
		if sqlDB, err := gdb.DB(); err == nil {
			_ = sqlDB.Close()
		}
	})
	return gdb, q
}

type fixtureModels struct {
	S24  model.ProductModel // 在庫10
	Case model.ProductModel // 在庫5
	Fold model.ProductModel // 在庫0
	A54  model.ProductModel // 在庫行なし
}

// カタログの最小構成を投入する
func seedFixture(t *testing.T, gdb *gorm.DB) fixtureModels {
	t.Helper()
	ctx := context.Background()
	products := NewProductGormRepository(gdb)

	phones, err := products.UpsertCategory(ctx, "Smartphones")
	require.NoError(t, err)
	acc, err := products.UpsertCategory(ctx, "Accessories")
	require.NoError(t, err)

	galaxyS, err := products.UpsertSeries(ctx, phones.ID, "Galaxy S")
	require.NoError(t, err)
	galaxyZ, err := products.UpsertSeries(ctx, phones.ID, "Galaxy Z")
	require.NoError(t, err)
	galaxyA, err := products.UpsertSeries(ctx, phones.ID, "Galaxy A")
	require.NoError(t, err)
	cases, err := products.UpsertSeries(ctx, acc.ID, "Cases")
	require.NoError(t, err)

	mk := func(seriesID int64, name, price string) model.ProductModel {
		pm, err := products.UpsertModel(ctx, model.ProductModel{
			SeriesID: seriesID,
			Name:     name,
			Price:    decimal.RequireFromString(price),
		})
		require.NoError(t, err)
		return pm
	}

	f := fixtureModels{
		S24:  mk(galaxyS.ID, "Galaxy S24 Ultra", "999.99"),
		Case: mk(cases.ID, "S24 Ultra Silicone Case", "24.99"),
		Fold: mk(galaxyZ.ID, "Galaxy Z Fold 5", "1799.99"),
		A54:  mk(galaxyA.ID, "Galaxy A54", "449.99"),
	}

	require.NoError(t, products.SetStockWithAdjustment(ctx, f.S24.ID, 10, model.AdjustmentReasonSeed))
	require.NoError(t, products.SetStockWithAdjustment(ctx, f.Case.ID, 5, model.AdjustmentReasonSeed))
	require.NoError(t, products.SetStockWithAdjustment(ctx, f.Fold.ID, 0, model.AdjustmentReasonSeed))
	return f
}

func stockOf(t *testing.T, gdb *gorm.DB, modelID int64) int64 {
	t.Helper()
	var inv model.Inventory
	require.NoError(t, gdb.Where("model_id = ?", modelID).First(&inv).Error)
	return inv.QuantityInStock
}
