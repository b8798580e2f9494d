package db

import (
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/stdlib"
	"github.com/jmoiron/sqlx"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"storefront/internal/config"
	"storefront/internal/domain/model"
)

// Connect はDBに接続して *gorm.DB を返す。
// postgresはpgxでDSNを検証してからstdlibのプールをgormに渡す
func Connect(cfg config.Config) (*gorm.DB, error) {
	gormCfg := &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Warn),
		TranslateError: true,
	}

	switch cfg.DBDriver {
	case config.DriverSQLite:
		return OpenSQLite(cfg.SQLitePath)
	case config.DriverPostgres:
		pgCfg, err := pgx.ParseConfig(cfg.PostgresDSN())
		if err != nil {
			return nil, fmt.Errorf("parse postgres dsn: %w", err)
		}
		sqlDB := stdlib.OpenDB(*pgCfg)
		gdb, err := gorm.Open(postgres.New(postgres.Config{Conn: sqlDB}), gormCfg)
		if err != nil {
			_ = sqlDB.Close()
			return nil, err
		}
		return gdb, nil
	default:
		return nil, fmt.Errorf("unsupported db driver %q", cfg.DBDriver)
	}
}

// OpenSQLite はsqliteファイルを開く（開発・テスト用）
func OpenSQLite(path string) (*gorm.DB, error) {
	gdb, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	if err != nil {
		return nil, err
	}

	// sqliteは同時書き込み1本
	sqlDB, err := gdb.DB()
	if err != nil {
		return nil, err
	}
	sqlDB.SetMaxOpenConns(1)

	return gdb, nil
}

// NewQueryer はgormと同じコネクションプールをsqlxで包む（読み取り用の生SQL）
func NewQueryer(gdb *gorm.DB) (*sqlx.DB, error) {
	sqlDB, err := gdb.DB()
	if err != nil {
		return nil, err
	}

	//placeholderの形式はドライバ名で決まる
	driverName := "pgx"
	if gdb.Dialector.Name() == "sqlite" {
		driverName = "sqlite3"
	}
	return sqlx.NewDb(sqlDB, driverName), nil
}

// Migrate はテーブルを作成・更新する
func Migrate(gdb *gorm.DB) error {
	return gdb.AutoMigrate(
		&model.User{},
		&model.ProductCategory{},
		&model.ProductSeries{},
		&model.ProductModel{},
		&model.Inventory{},
		&model.CartLine{},
		&model.Order{},
		&model.OrderItem{},
		&model.InventoryAdjustment{},
	)
}

// Ping は接続確認
func Ping(gdb *gorm.DB) error {
	sqlDB, err := gdb.DB()
	if err != nil {
		return err
	}
	return sqlDB.Ping()
}
