package server

import (
	"context"
	"errors"
	"net/http"
	"time"

	"storefront/internal/config"
	"storefront/internal/session"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"github.com/labstack/gommon/log"
)

const shutdownTimeout = 10 * time.Second

// New はecho本体を組み立てる（起動はしない）
func New(cfg config.Config, renderer echo.Renderer, sessions *session.Manager, h Handlers) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Renderer = renderer

	if cfg.GoEnv == "prod" {
		e.Logger.SetLevel(log.INFO)
	} else {
		e.Logger.SetLevel(log.DEBUG)
	}

	e.Use(echomw.Recover())
	e.Use(echomw.RequestLoggerWithConfig(echomw.RequestLoggerConfig{
		LogMethod:  true,
		LogURI:     true,
		LogStatus:  true,
		LogLatency: true,
		LogError:   true,
		LogValuesFunc: func(c echo.Context, v echomw.RequestLoggerValues) error {
			j := log.JSON{
				"method":  v.Method,
				"uri":     v.URI,
				"status":  v.Status,
				"latency": v.Latency.String(),
			}
			if v.Error != nil {
				j["error"] = v.Error.Error()
			}
			c.Logger().Infoj(j)
			return nil
		},
	}))

	e.Static("/static", cfg.StaticDir)
	RegisterRoutes(e, sessions, h)

	return e
}

// Start はctxがキャンセルされるまで待ち受けて、graceful shutdownする
func Start(ctx context.Context, e *echo.Echo, cfg config.Config) error {
	e.Server.ReadTimeout = cfg.ReadTimeout
	e.Server.WriteTimeout = cfg.WriteTimeout

	errCh := make(chan error, 1)
	go func() {
		errCh <- e.Start(cfg.Addr())
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		e.Logger.Info("shutting down")
		return e.Shutdown(shutdownCtx)
	}
}
