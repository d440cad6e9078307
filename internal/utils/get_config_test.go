package utils

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig(t *testing.T) {
	t.Run("missing file uses defaults", func(t *testing.T) {
		cfg, err := LoadConfig(filepath.Join(t.TempDir(), "absent.yaml"))
		require.NoError(t, err)
		assert.Equal(t, DefaultConfig(), cfg)
		assert.Equal(t, "sqlite", GetConfig("DB_DRIVER"))
	})

	t.Run("yaml overrides defaults", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "config.yaml")
		content := "APP_PORT: \"9000\"\nDB_DRIVER: postgres\nDB_HOST: db.local\nRATE_LIMIT_MAX: 0\nPRINT_ROUTES: true\n"
		require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

		cfg, err := LoadConfig(path)
		require.NoError(t, err)
		assert.Equal(t, "9000", cfg.AppPort)
		assert.Equal(t, "postgres", cfg.DBDriver)
		assert.Equal(t, "db.local", cfg.DBHost)
		assert.Equal(t, 0, cfg.RateLimitMax)
		assert.True(t, cfg.PrintRoutes)
		assert.Equal(t, "ru", cfg.DefaultLang)
		assert.Equal(t, "db.local", GetConfig("DB_HOST"))
		assert.Equal(t, "true", GetConfig("PRINT_ROUTES"))
	})

	t.Run("environment wins over yaml", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "config.yaml")
		require.NoError(t, os.WriteFile(path, []byte("APP_PORT: \"9000\"\n"), 0o600))
		t.Setenv("APP_PORT", "7000")
		t.Setenv("RATE_LIMIT_MAX", "25")
		t.Setenv("DEFAULT_LANG", "en")

		cfg, err := LoadConfig(path)
		require.NoError(t, err)
		assert.Equal(t, "7000", cfg.AppPort)
		assert.Equal(t, 25, cfg.RateLimitMax)
		assert.Equal(t, "en", cfg.DefaultLang)
		assert.Equal(t, "25", GetConfig("RATE_LIMIT_MAX"))
	})

	t.Run("invalid numeric env", func(t *testing.T) {
		t.Setenv("RATE_LIMIT_MAX", "lots")
		_, err := LoadConfig(filepath.Join(t.TempDir(), "absent.yaml"))
		assert.Error(t, err)
	})

	t.Run("invalid yaml", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "config.yaml")
		require.NoError(t, os.WriteFile(path, []byte("APP_PORT: [\n"), 0o600))
		_, err := LoadConfig(path)
		assert.Error(t, err)
	})

	t.Run("unknown key", func(t *testing.T) {
		assert.Empty(t, GetConfig("NOPE"))
	})
}
