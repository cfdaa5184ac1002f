package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "farmstore-backend", cfg.App.Name)
	assert.Equal(t, "development", cfg.App.Env)
	assert.Equal(t, "8080", cfg.App.Port)
	assert.Equal(t, "localhost", cfg.Database.Host)
	assert.Equal(t, 5432, cfg.Database.Port)
	assert.Equal(t, "disable", cfg.Database.SSLMode)
	assert.Equal(t, 6379, cfg.Redis.Port)
	assert.Equal(t, 15*time.Minute, cfg.JWT.AccessTokenExpiration)
	assert.Equal(t, 168*time.Hour, cfg.JWT.RefreshTokenExpiration)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, 1<<20, cfg.HTTP.MaxHeaderBytes)
	assert.Equal(t, "farmstore-media", cfg.Storage.Bucket)
	assert.Equal(t, 3, cfg.Ledger.ExpiryWindowDays)
}

func TestLoadEnvOverrides(t *testing.T) {
	t.Setenv("FARMSTORE_APP_PORT", "9090")
	t.Setenv("FARMSTORE_DATABASE_PASSWORD", "s3cret")
	t.Setenv("FARMSTORE_LEDGER_EXPIRY_WINDOW_DAYS", "7")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.App.Port)
	assert.Equal(t, "s3cret", cfg.Database.Password)
	assert.Equal(t, 7, cfg.Ledger.ExpiryWindowDays)
}

func TestValidate(t *testing.T) {
	base := func() *Config {
		cfg := &Config{}
		applyDefaults(cfg)
		return cfg
	}

	t.Run("accepts defaults", func(t *testing.T) {
		assert.NoError(t, base().validate())
	})

	t.Run("rejects idle conns above open conns", func(t *testing.T) {
		cfg := base()
		cfg.Database.MaxIdleConns = 100
		assert.Error(t, cfg.validate())
	})

	t.Run("rejects negative expiry window", func(t *testing.T) {
		cfg := base()
		cfg.Ledger.ExpiryWindowDays = -1
		assert.Error(t, cfg.validate())
	})

	t.Run("production requires a strong jwt secret", func(t *testing.T) {
		cfg := base()
		cfg.App.Env = "production"
		cfg.Database.Password = "s3cret"
		cfg.Database.SSLMode = "require"

		err := cfg.validate()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "jwt.secret")

		cfg.JWT.Secret = "short"
		assert.Error(t, cfg.validate())

		cfg.JWT.Secret = "a-sufficiently-long-secret-value-12345"
		assert.NoError(t, cfg.validate())
	})

	t.Run("production rejects wildcard cors origins", func(t *testing.T) {
		cfg := base()
		cfg.App.Env = "production"
		cfg.JWT.Secret = "a-sufficiently-long-secret-value-12345"
		cfg.Database.Password = "s3cret"
		cfg.Database.SSLMode = "require"
		cfg.HTTP.CORSAllowOrigins = []string{"*"}
		assert.Error(t, cfg.validate())
	})
}

func TestDatabaseDSN(t *testing.T) {
	d := DatabaseConfig{
		Host:     "db.internal",
		Port:     5432,
		User:     "farm",
		Password: "p@ss/word",
		DBName:   "farmstore",
		SSLMode:  "require",
	}
	dsn := d.DSN()
	assert.Contains(t, dsn, "postgres://")
	assert.Contains(t, dsn, "db.internal:5432")
	assert.Contains(t, dsn, "sslmode=require")
	assert.NotContains(t, dsn, "p@ss/word")
}

func TestRedisAddr(t *testing.T) {
	r := RedisConfig{Host: "cache", Port: 6380}
	assert.Equal(t, "cache:6380", r.Addr())
}
