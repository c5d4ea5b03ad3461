package config

import (
	"os"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	originalEnv := map[string]string{
		"LEDGERZA_APP_NAME":                    os.Getenv("LEDGERZA_APP_NAME"),
		"LEDGERZA_APP_ENV":                     os.Getenv("LEDGERZA_APP_ENV"),
		"LEDGERZA_APP_PORT":                    os.Getenv("LEDGERZA_APP_PORT"),
		"LEDGERZA_DATABASE_HOST":               os.Getenv("LEDGERZA_DATABASE_HOST"),
		"LEDGERZA_DATABASE_PORT":               os.Getenv("LEDGERZA_DATABASE_PORT"),
		"LEDGERZA_DATABASE_USER":               os.Getenv("LEDGERZA_DATABASE_USER"),
		"LEDGERZA_DATABASE_PASSWORD":           os.Getenv("LEDGERZA_DATABASE_PASSWORD"),
		"LEDGERZA_DATABASE_DBNAME":             os.Getenv("LEDGERZA_DATABASE_DBNAME"),
		"LEDGERZA_DATABASE_SSLMODE":            os.Getenv("LEDGERZA_DATABASE_SSLMODE"),
		"LEDGERZA_DATABASE_MAX_OPEN_CONNS":     os.Getenv("LEDGERZA_DATABASE_MAX_OPEN_CONNS"),
		"LEDGERZA_DATABASE_MAX_IDLE_CONNS":     os.Getenv("LEDGERZA_DATABASE_MAX_IDLE_CONNS"),
		"LEDGERZA_JWT_SECRET":                  os.Getenv("LEDGERZA_JWT_SECRET"),
		"LEDGERZA_JWT_ACCESS_TOKEN_EXPIRATION": os.Getenv("LEDGERZA_JWT_ACCESS_TOKEN_EXPIRATION"),
		"LEDGERZA_TAX_DEFAULT_VAT_RATE":        os.Getenv("LEDGERZA_TAX_DEFAULT_VAT_RATE"),
	}

	defer func() {
		for k, v := range originalEnv {
			if v == "" {
				os.Unsetenv(k)
			} else {
				os.Setenv(k, v)
			}
		}
	}()

	clearEnv := func() {
		for k := range originalEnv {
			os.Unsetenv(k)
		}
	}

	t.Run("loads default values when env vars not set", func(t *testing.T) {
		clearEnv()

		cfg, err := Load()
		require.NoError(t, err)

		assert.Equal(t, "ledgerza-backend", cfg.App.Name)
		assert.Equal(t, "development", cfg.App.Env)
		assert.Equal(t, "8080", cfg.App.Port)
		assert.Equal(t, "localhost", cfg.Database.Host)
		assert.Equal(t, 5432, cfg.Database.Port)
		assert.Equal(t, "ledgerza", cfg.Database.DBName)
		assert.Equal(t, "disable", cfg.Database.SSLMode)
		assert.Equal(t, 25, cfg.Database.MaxOpenConns)
		assert.Equal(t, 5, cfg.Database.MaxIdleConns)
		assert.Equal(t, 15*time.Minute, cfg.JWT.AccessTokenExpiration)
		assert.Equal(t, "info", cfg.Log.Level)
		assert.Equal(t, 0.15, cfg.Tax.DefaultVATRate)
	})

	t.Run("loads values from environment variables", func(t *testing.T) {
		clearEnv()
		os.Setenv("LEDGERZA_APP_NAME", "test-app")
		os.Setenv("LEDGERZA_APP_PORT", "9000")
		os.Setenv("LEDGERZA_DATABASE_HOST", "testdb.local")
		os.Setenv("LEDGERZA_DATABASE_PORT", "5433")
		os.Setenv("LEDGERZA_DATABASE_PASSWORD", "testpass")
		os.Setenv("LEDGERZA_TAX_DEFAULT_VAT_RATE", "0.14")

		cfg, err := Load()
		require.NoError(t, err)

		assert.Equal(t, "test-app", cfg.App.Name)
		assert.Equal(t, "9000", cfg.App.Port)
		assert.Equal(t, "testdb.local", cfg.Database.Host)
		assert.Equal(t, 5433, cfg.Database.Port)
		assert.Equal(t, "testpass", cfg.Database.Password)
		assert.Equal(t, 0.14, cfg.Tax.DefaultVATRate)
	})

	t.Run("production requires a strong JWT secret", func(t *testing.T) {
		clearEnv()
		os.Setenv("LEDGERZA_APP_ENV", "production")
		os.Setenv("LEDGERZA_DATABASE_PASSWORD", "prodpass")
		os.Setenv("LEDGERZA_DATABASE_SSLMODE", "require")

		_, err := Load()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "jwt.secret")

		os.Setenv("LEDGERZA_JWT_SECRET", "short")
		_, err = Load()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "32 characters")

		os.Setenv("LEDGERZA_JWT_SECRET", "a-proper-production-secret-of-enough-length")
		cfg, err := Load()
		require.NoError(t, err)
		assert.Equal(t, "production", cfg.App.Env)
	})

	t.Run("production rejects disabled ssl", func(t *testing.T) {
		clearEnv()
		os.Setenv("LEDGERZA_APP_ENV", "production")
		os.Setenv("LEDGERZA_JWT_SECRET", "a-proper-production-secret-of-enough-length")
		os.Setenv("LEDGERZA_DATABASE_PASSWORD", "prodpass")

		_, err := Load()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "sslmode")
	})
}

func TestConfigValidate(t *testing.T) {
	base := func() *Config {
		cfg := &Config{}
		applyDefaults(cfg)
		return cfg
	}

	t.Run("idle conns cannot exceed open conns", func(t *testing.T) {
		cfg := base()
		cfg.Database.MaxIdleConns = 100
		err := cfg.validate()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "max_idle_conns")
	})

	t.Run("vat rate must be a fraction", func(t *testing.T) {
		cfg := base()
		cfg.Tax.DefaultVATRate = 1.5
		err := cfg.validate()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "default_vat_rate")
	})
}

func TestDatabaseConfig_DSN(t *testing.T) {
	cfg := DatabaseConfig{
		Host:     "db.example.com",
		Port:     5432,
		User:     "ledgerza",
		Password: "p@ss/word",
		DBName:   "ledgerza",
		SSLMode:  "require",
	}

	dsn := cfg.DSN()
	assert.Contains(t, dsn, "postgres://")
	assert.Contains(t, dsn, "db.example.com:5432")
	assert.Contains(t, dsn, "sslmode=require")
	// special characters must be escaped
	assert.NotContains(t, dsn, "p@ss/word")
}

func TestTaxConfig_DefaultVATRateDecimal(t *testing.T) {
	cfg := TaxConfig{DefaultVATRate: 0.15}
	assert.True(t, cfg.DefaultVATRateDecimal().Equal(decimal.NewFromFloat(0.15)))
}
