package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/srgjo27/venue_booking/internal/platform/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := config.Load(filepath.Join(t.TempDir(), "missing.env"))
	require.NoError(t, err)

	assert.Equal(t, ":8080", cfg.HTTP.Addr)
	assert.Equal(t, config.StoragePostgres, cfg.StorageBackend)
	assert.Equal(t, config.LockMemory, cfg.Lock.Backend)
	assert.Equal(t, 2*time.Second, cfg.Lock.Wait)
	assert.Equal(t, 3, cfg.Retry.Attempts)
	assert.Equal(t, time.Second, cfg.Retry.Strategy().MaxDelay)
	assert.Equal(t, "localhost:6379", cfg.Redis.Addr())
	assert.Equal(t, "venue_booking", cfg.Postgres.Database().DBName)
}

func TestLoad_DotenvAndEnvironment(t *testing.T) {
	dir := t.TempDir()
	envFile := filepath.Join(dir, ".env")
	require.NoError(t, os.WriteFile(envFile, []byte("STORAGE_BACKEND=memory\nLOCK_WAIT=500ms\nHTTP_ADDR=:9000\n"), 0o600))

	t.Setenv("HTTP_ADDR", ":7000")
	// godotenv.Load sets what it read; drop it so other tests see defaults.
	t.Cleanup(func() {
		os.Unsetenv("STORAGE_BACKEND")
		os.Unsetenv("LOCK_WAIT")
	})

	cfg, err := config.Load(envFile)
	require.NoError(t, err)

	assert.Equal(t, config.StorageMemory, cfg.StorageBackend)
	assert.Equal(t, 500*time.Millisecond, cfg.Lock.Wait)
	assert.Equal(t, ":7000", cfg.HTTP.Addr)
}

func TestLoad_Invalid(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
	}{
		{name: "storage backend", env: map[string]string{"STORAGE_BACKEND": "sqlite"}},
		{name: "lock backend", env: map[string]string{"LOCK_BACKEND": "etcd"}},
		{name: "lock ttl below wait", env: map[string]string{"LOCK_BACKEND": "redis", "LOCK_WAIT": "5s", "LOCK_TTL": "1s"}},
		{name: "retry attempts", env: map[string]string{"BUSY_RETRY_ATTEMPTS": "0"}},
		{name: "retry delay", env: map[string]string{"BUSY_RETRY_DELAY": "0s"}},
		{name: "bad duration", env: map[string]string{"LOCK_WAIT": "soon"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for k, v := range tt.env {
				t.Setenv(k, v)
			}
			_, err := config.Load()
			assert.Error(t, err)
		})
	}
}
