package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadFrom_Defaults(t *testing.T) {
	cfg, err := LoadFrom(filepath.Join(t.TempDir(), "missing.env"))
	require.NoError(t, err)

	assert.Equal(t, 3001, cfg.Server.Port)
	assert.Equal(t, "./data.json", cfg.Snapshot.Path)
	assert.Equal(t, "*", cfg.Server.AllowOrigins)
	assert.False(t, cfg.Redis.Enabled)
	assert.Equal(t, "stream:vendor:events", cfg.Events.Stream)
	assert.Equal(t, ":3001", cfg.GetServerAddr())
}

func TestLoadFrom_EnvFile(t *testing.T) {
	envFile := filepath.Join(t.TempDir(), ".env")
	content := "API_PORT=8080\nSNAPSHOT_PATH=/srv/trucks.json\nREDIS_ENABLED=true\nREDIS_HOST=redis\nLOG_LEVEL=DEBUG\n"
	require.NoError(t, os.WriteFile(envFile, []byte(content), 0o600))

	cfg, err := LoadFrom(envFile)
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, "/srv/trucks.json", cfg.Snapshot.Path)
	assert.True(t, cfg.Redis.Enabled)
	assert.Equal(t, "redis:6379", cfg.GetRedisAddr())
	assert.Equal(t, "debug", cfg.Log.Level)
}

func TestLoadFrom_EnvOverridesFile(t *testing.T) {
	envFile := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(envFile, []byte("API_PORT=8080\n"), 0o600))
	t.Setenv("API_PORT", "9090")

	cfg, err := LoadFrom(envFile)
	require.NoError(t, err)
	assert.Equal(t, 9090, cfg.Server.Port)
}

func TestLoadFrom_InvalidPort(t *testing.T) {
	t.Setenv("API_PORT", "70000")

	_, err := LoadFrom("")
	assert.Error(t, err)
}
