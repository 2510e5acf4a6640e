package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	t.Chdir(t.TempDir())

	cfg, err := Load("frontdesk")
	require.NoError(t, err)
	assert.Equal(t, "frontdesk", cfg.Name)
	assert.Equal(t, ":8443", cfg.HTTP.Addr)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, 10, cfg.Registry.Slots)
	assert.Equal(t, 5, cfg.Registry.ReservationCapacity)
	assert.Equal(t, "frontdesk:events", cfg.Redis.Stream)
	assert.Empty(t, cfg.Postgres.DSN)
	assert.Zero(t, cfg.OTel.Probability)
}

func TestLoadEnvOverrides(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("FRONTDESK_HTTP_ADDR", ":9000")
	t.Setenv("FRONTDESK_REGISTRY_SLOTS", "20")
	t.Setenv("FRONTDESK_REDIS_ADDR", "localhost:6379")

	cfg, err := Load("frontdesk")
	require.NoError(t, err)
	assert.Equal(t, ":9000", cfg.HTTP.Addr)
	assert.Equal(t, 20, cfg.Registry.Slots)
	assert.Equal(t, "localhost:6379", cfg.Redis.Addr)
}

func TestLoadFile(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)
	require.NoError(t, os.Mkdir(filepath.Join(dir, "config"), 0o755))
	yaml := []byte("registry:\n  reservation_capacity: 3\nlog:\n  level: debug\n")
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config", "frontdesk.yaml"), yaml, 0o644))

	cfg, err := Load("frontdesk")
	require.NoError(t, err)
	assert.Equal(t, 3, cfg.Registry.ReservationCapacity)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, 10, cfg.Registry.Slots)
}
