package cli

import (
	"fmt"
	"time"

	"storefront/internal/config"
	"storefront/internal/handler"
	"storefront/internal/infra/db"
	infraRepo "storefront/internal/infra/repository"
	"storefront/internal/seed"
	"storefront/internal/server"
	"storefront/internal/session"
	"storefront/internal/usecase"
	auth "storefront/internal/usecase/auth_usecase"
	"storefront/internal/validator"
	"storefront/internal/view"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
	"gorm.io/gorm"
)

// 起動・コマンド用のロガー（リクエストログはecho側）
var logger = log.New("storefront")

type uuidGenerator struct{}

func (g *uuidGenerator) NewID() string {
	return uuid.NewString()
}

type realClock struct{}

func (c *realClock) Now() time.Time {
	return time.Now()
}

// 設定を読み、DBに接続して疎通確認まで
func openDB() (config.Config, *gorm.DB, error) {
	cfg, err := config.Load()
	if err != nil {
		return config.Config{}, nil, err
	}

	gdb, err := db.Connect(cfg)
	if err != nil {
		return config.Config{}, nil, fmt.Errorf("connect db: %w", err)
	}
	if err := db.Ping(gdb); err != nil {
		closeDB(gdb)
		return config.Config{}, nil, fmt.Errorf("ping db: %w", err)
	}
	logger.Infof("connected to %s", cfg.DBDriver)
	return cfg, gdb, nil
}

func closeDB(gdb *gorm.DB) {
	if sqlDB, err := gdb.DB(); err == nil {
		_ = sqlDB.Close()
	}
}

// 画像マップ。CATALOG_FILEがあればそのimagesで上書き
func loadImageMap(cfg config.Config) (map[string]string, error) {
	if cfg.CatalogFile == "" {
		return usecase.DefaultImageMap(), nil
	}
	f, err := seed.Load(cfg.CatalogFile)
	if err != nil {
		return nil, err
	}
	return f.ImageMap(usecase.DefaultImageMap()), nil
}

// buildServer は依存を組み立ててechoを返す
func buildServer(cfg config.Config, gdb *gorm.DB) (*echo.Echo, error) {
	//Repository生成（書き込みはGORM、カタログ読み取りはsqlx）
	queryer, err := db.NewQueryer(gdb)
	if err != nil {
		return nil, err
	}
	userRepo := infraRepo.NewUserGormRepository(gdb)
	cartRepo := infraRepo.NewCartGormRepository(gdb)
	catalogRepo := infraRepo.NewCatalogSqlxRepository(queryer)
	txm := infraRepo.NewTxManagerGorm(gdb)

	images, err := loadImageMap(cfg)
	if err != nil {
		return nil, err
	}

	//usecaseに渡す部品
	idGen := &uuidGenerator{}
	clock := &realClock{}
	hasher := auth.NewBcryptPasswordHasher(12)
	verifier := auth.NewBcryptPasswordVerifier()

	//Usecase生成
	registerUC := auth.NewRegisterUserUsecase(userRepo, validator.NewSignupValidator(), hasher, clock)
	loginUC := auth.NewLoginUsecase(userRepo, verifier)
	catalogUC := usecase.NewCatalogUsecase(catalogRepo, images)
	cartUC := usecase.NewCartUsecase(cartRepo, catalogRepo, cfg.TaxRate)
	orderUC := usecase.NewOrderUsecase(txm, idGen, clock, usecase.CheckoutPolicy{
		TaxRate:     cfg.TaxRate,
		StrictStock: cfg.StrictStock,
	})

	renderer, err := view.NewRenderer()
	if err != nil {
		return nil, err
	}
	sessions := session.NewManager(cfg.SessionSecret, cfg.SessionTTL, cfg.CookieSecure)

	//Handler生成
	return server.New(cfg, renderer, sessions, server.Handlers{
		Auth:     handler.NewAuthHandler(registerUC, loginUC, sessions),
		Products: handler.NewProductHandler(catalogUC, cartUC),
		Cart:     handler.NewCartHandler(cartUC),
		Orders:   handler.NewOrderHandler(orderUC, cartUC),
	}), nil
}
