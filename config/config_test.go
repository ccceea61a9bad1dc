package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestLoadConfig_Defaults(t *testing.T) {
	req := require.New(t)
	t.Chdir(t.TempDir())

	cfg, err := LoadConfig()
	req.NoError(err)
	req.Equal("8080", cfg.AppPort)
	req.Equal(DriverSQLite, cfg.DBDriver)
	req.Equal("chat.db", cfg.DBPath)
	req.Equal(100, cfg.MessageMaxLength)
	req.Equal(60, cfg.JWTExpiryMin)
	req.False(cfg.RedisEnabled)
	req.Equal(time.Minute, cfg.MessageRateWindow)
	req.Equal(10, cfg.AuthRateLimit)
	req.Equal(time.Minute, cfg.AuthRateWindow)
}

func TestLoadConfig_FromEnvironment(t *testing.T) {
	req := require.New(t)
	t.Chdir(t.TempDir())
	t.Setenv("APP_PORT", "9090")
	t.Setenv("DB_DRIVER", "postgres")
	t.Setenv("DB_HOST", "db")
	t.Setenv("MESSAGE_MAX_LENGTH", "500")
	t.Setenv("MESSAGE_RATE_WINDOW", "30s")
	t.Setenv("REDIS_ENABLED", "true")

	cfg, err := LoadConfig()
	req.NoError(err)
	req.Equal("9090", cfg.AppPort)
	req.Equal(DriverPostgres, cfg.DBDriver)
	req.Equal(500, cfg.MessageMaxLength)
	req.Equal(30*time.Second, cfg.MessageRateWindow)
	req.True(cfg.RedisEnabled)
	req.Contains(cfg.PostgresDSN(), "host=db")
}

func TestLoadConfig_Invalid(t *testing.T) {
	t.Chdir(t.TempDir())

	t.Run("unknown driver", func(t *testing.T) {
		t.Setenv("DB_DRIVER", "mysql")
		_, err := LoadConfig()
		require.Error(t, err)
	})

	t.Run("non positive message length", func(t *testing.T) {
		t.Setenv("MESSAGE_MAX_LENGTH", "0")
		_, err := LoadConfig()
		require.Error(t, err)
	})

	t.Run("message length above the column size", func(t *testing.T) {
		t.Setenv("MESSAGE_MAX_LENGTH", "501")
		_, err := LoadConfig()
		require.Error(t, err)
	})

	t.Run("malformed number", func(t *testing.T) {
		t.Setenv("JWT_EXPIRY_MIN", "soon")
		_, err := LoadConfig()
		require.Error(t, err)
	})
}
