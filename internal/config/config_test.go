package config

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("SESSION_SECRET", "test-secret")
	t.Setenv("PORT", "")
	t.Setenv("DB_DRIVER", "")
	t.Setenv("TAX_RATE", "")
	t.Setenv("STRICT_STOCK", "")
	t.Setenv("SESSION_TTL", "")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, ":8080", cfg.Addr())
	assert.Equal(t, DriverPostgres, cfg.DBDriver)
	assert.True(t, cfg.TaxRate.Equal(decimal.RequireFromString("0.10")))
	assert.False(t, cfg.StrictStock)
	assert.Equal(t, 12*time.Hour, cfg.SessionTTL)
}

func TestLoad_SessionSecretRequired(t *testing.T) {
	t.Setenv("SESSION_SECRET", "")

	_, err := Load()
	assert.EqualError(t, err, "SESSION_SECRET is required")
}

func TestLoad_InvalidDriver(t *testing.T) {
	t.Setenv("SESSION_SECRET", "s")
	t.Setenv("DB_DRIVER", "mysql")

	_, err := Load()
	assert.Error(t, err)
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("SESSION_SECRET", "s")
	t.Setenv("PORT", ":9090")
	t.Setenv("DB_DRIVER", "SQLite")
	t.Setenv("SQLITE_PATH", "/tmp/x.db")
	t.Setenv("TAX_RATE", "0.08")
	t.Setenv("STRICT_STOCK", "true")
	t.Setenv("SESSION_TTL", "30m")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, ":9090", cfg.Addr())
	assert.Equal(t, DriverSQLite, cfg.DBDriver)
	assert.Equal(t, "/tmp/x.db", cfg.SQLitePath)
	assert.True(t, cfg.TaxRate.Equal(decimal.RequireFromString("0.08")))
	assert.True(t, cfg.StrictStock)
	assert.Equal(t, 30*time.Minute, cfg.SessionTTL)
}

func TestLoad_InvalidNumbers(t *testing.T) {
	t.Setenv("SESSION_SECRET", "s")

	t.Setenv("POSTGRES_PORT", "abc")
	_, err := Load()
	assert.ErrorContains(t, err, "POSTGRES_PORT must be number")

	t.Setenv("POSTGRES_PORT", "")
	t.Setenv("TAX_RATE", "ten")
	_, err = Load()
	assert.ErrorContains(t, err, "TAX_RATE must be decimal")

	t.Setenv("TAX_RATE", "-0.1")
	_, err = Load()
	assert.EqualError(t, err, "TAX_RATE must be >= 0")
}

func TestPostgresDSN_PrefersDatabaseURL(t *testing.T) {
	cfg := Config{DatabaseURL: "postgres://u:p@h:5432/db"}
	assert.Equal(t, "postgres://u:p@h:5432/db", cfg.PostgresDSN())

	cfg = Config{
		PostgresHost: "db", PostgresPort: 5433, PostgresUser: "u",
		PostgresPassword: "p", PostgresDB: "shop", PostgresSSLMode: "disable",
	}
	assert.Equal(t, "host=db port=5433 user=u password=p dbname=shop sslmode=disable", cfg.PostgresDSN())
}
