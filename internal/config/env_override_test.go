package config

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEnvOverrides_Server_And_Logging(t *testing.T) {
	t.Setenv("VERSEMATCH_ADDR", ":7070")
	t.Setenv("VERSEMATCH_LOG_LEVEL", "debug")
	t.Setenv("VERSEMATCH_LOG_FORMAT", "console")

	cfg := DefaultConfig()
	cfg.applyEnvOverrides()

	assert.Equal(t, ":7070", cfg.Server.Addr)
	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.Equal(t, "console", cfg.Logging.Format)
}

func TestEnvOverrides_Storage(t *testing.T) {
	t.Run("DATABASE_URL fills postgres dsn", func(t *testing.T) {
		t.Setenv("DATABASE_URL", "postgres://generic")
		t.Setenv("VERSEMATCH_POSTGRES_DSN", "")

		cfg := &Config{}
		cfg.applyEnvOverrides()
		assert.Equal(t, "postgres://generic", cfg.Storage.PostgresDSN)
	})

	t.Run("specific dsn wins", func(t *testing.T) {
		t.Setenv("DATABASE_URL", "postgres://generic")
		t.Setenv("VERSEMATCH_POSTGRES_DSN", "postgres://specific")

		cfg := &Config{}
		cfg.applyEnvOverrides()
		assert.Equal(t, "postgres://specific", cfg.Storage.PostgresDSN)
	})

	t.Run("paths", func(t *testing.T) {
		t.Setenv("VERSEMATCH_SQLITE_PATH", "/srv/vm.db")
		t.Setenv("VERSEMATCH_BOLT_PATH", "/srv/vm.bolt")
		t.Setenv("VERSEMATCH_DATA_DIR", "/srv/data")

		cfg := &Config{}
		cfg.applyEnvOverrides()
		assert.Equal(t, "/srv/vm.db", cfg.Storage.SQLitePath)
		assert.Equal(t, "/srv/vm.bolt", cfg.Storage.BoltPath)
		assert.Equal(t, "/srv/data", cfg.Storage.DataDir)
	})
}

func TestEnvOverrides_Integers(t *testing.T) {
	t.Run("valid values apply", func(t *testing.T) {
		t.Setenv("VERSEMATCH_STRICT_THRESHOLD", "97")
		t.Setenv("VERSEMATCH_MAX_BATCH", "10")

		cfg := DefaultConfig()
		cfg.applyEnvOverrides()
		assert.Equal(t, 97, cfg.Matching.Strict.Threshold)
		assert.Equal(t, 10, cfg.Server.MaxBatch)
	})

	t.Run("garbage keeps the default", func(t *testing.T) {
		t.Setenv("VERSEMATCH_STRICT_THRESHOLD", "high")

		cfg := DefaultConfig()
		cfg.applyEnvOverrides()
		assert.Equal(t, 98, cfg.Matching.Strict.Threshold)
	})
}

func TestEnvOverrides_AppliedOnLoad(t *testing.T) {
	t.Setenv("VERSEMATCH_ADDR", ":6060")

	cfg, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.NoError(t, err)
	assert.Equal(t, ":6060", cfg.Server.Addr)
}
