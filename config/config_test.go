package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func unsetAll(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		"LOG_LEVEL", "LOG_PRETTY", "RESTAURANT_TABLES", "RESTAURANT_LOCALE", "METRICS_ENABLED",
	} {
		t.Setenv(key, "")
		require.NoError(t, os.Unsetenv(key))
	}
}

func TestLoad(t *testing.T) {
	t.Run("loads default values", func(t *testing.T) {
		unsetAll(t)

		cfg, err := Load()
		require.NoError(t, err)

		assert.Equal(t, "info", cfg.Log.Level)
		assert.False(t, cfg.Log.Pretty)
		assert.Equal(t, []int{4, 4, 2, 6, 2, 4}, cfg.Restaurant.TableCapacities)
		assert.Equal(t, "en", cfg.Restaurant.Locale)
		assert.True(t, cfg.Metrics.Enabled)
	})

	t.Run("loads values from environment", func(t *testing.T) {
		unsetAll(t)
		t.Setenv("LOG_LEVEL", "debug")
		t.Setenv("LOG_PRETTY", "true")
		t.Setenv("RESTAURANT_TABLES", "2,6")
		t.Setenv("RESTAURANT_LOCALE", "es")
		t.Setenv("METRICS_ENABLED", "false")

		cfg, err := Load()
		require.NoError(t, err)

		assert.Equal(t, "debug", cfg.Log.Level)
		assert.True(t, cfg.Log.Pretty)
		assert.Equal(t, []int{2, 6}, cfg.Restaurant.TableCapacities)
		assert.Equal(t, "es", cfg.Restaurant.Locale)
		assert.False(t, cfg.Metrics.Enabled)
	})

	t.Run("rejects malformed values", func(t *testing.T) {
		unsetAll(t)
		t.Setenv("RESTAURANT_TABLES", "4,many")

		_, err := Load()
		assert.Error(t, err)
	})

	t.Run("loads env file without overriding the environment", func(t *testing.T) {
		unsetAll(t)
		path := filepath.Join(t.TempDir(), "test.env")
		require.NoError(t, os.WriteFile(path, []byte("RESTAURANT_TABLES=1,2,3\nRESTAURANT_LOCALE=es\n"), 0o600))
		t.Setenv("RESTAURANT_LOCALE", "en")

		cfg, err := Load(path)
		require.NoError(t, err)

		assert.Equal(t, []int{1, 2, 3}, cfg.Restaurant.TableCapacities)
		assert.Equal(t, "en", cfg.Restaurant.Locale)
		require.NoError(t, os.Unsetenv("RESTAURANT_TABLES"))
	})

	t.Run("missing explicit env file fails", func(t *testing.T) {
		unsetAll(t)

		_, err := Load(filepath.Join(t.TempDir(), "missing.env"))
		assert.Error(t, err)
	})
}
