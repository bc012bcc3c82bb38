package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, "0.0.0.0", cfg.Server.Host)
	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, "debug", cfg.Server.Mode)

	assert.Equal(t, "http://localhost:3000", cfg.Ledger.BaseURL)
	assert.Equal(t, 10*time.Second, cfg.Ledger.Timeout)
	assert.Equal(t, uint64(3), cfg.Ledger.MaxRetries)
	assert.Equal(t, uint32(100), cfg.Ledger.PageLimit)
	assert.Equal(t, uint32(90), cfg.Ledger.HistoryLimit)
	assert.Equal(t, 5*time.Second, cfg.Ledger.CacheTTL)

	assert.Equal(t, "localhost", cfg.Redis.Host)
	assert.Equal(t, 6379, cfg.Redis.Port)
	assert.Equal(t, 0, cfg.Redis.DB)

	assert.Equal(t, "info", cfg.Log.Level)
	assert.False(t, cfg.Log.Pretty)
}

func TestLoad_FromYAMLFile(t *testing.T) {
	// Create a temporary YAML config.
	content := []byte(`
server:
  host: "127.0.0.1"
  port: 9090
  mode: "release"
ledger:
  base_url: "http://ledger.internal:3001"
  timeout: "5s"
  max_retries: 5
  page_limit: 50
  history_limit: 30
  cache_ttl: "30s"
redis:
  host: "redis.example.com"
  port: 6380
  password: "redispwd"
  db: 2
log:
  level: "debug"
  pretty: true
`)
	tmpDir := t.TempDir()
	cfgPath := filepath.Join(tmpDir, "config.yaml")
	require.NoError(t, os.WriteFile(cfgPath, content, 0644))

	cfg, err := Load(cfgPath)
	require.NoError(t, err)

	assert.Equal(t, "127.0.0.1", cfg.Server.Host)
	assert.Equal(t, 9090, cfg.Server.Port)
	assert.Equal(t, "release", cfg.Server.Mode)

	assert.Equal(t, "http://ledger.internal:3001", cfg.Ledger.BaseURL)
	assert.Equal(t, 5*time.Second, cfg.Ledger.Timeout)
	assert.Equal(t, uint64(5), cfg.Ledger.MaxRetries)
	assert.Equal(t, uint32(50), cfg.Ledger.PageLimit)
	assert.Equal(t, uint32(30), cfg.Ledger.HistoryLimit)
	assert.Equal(t, 30*time.Second, cfg.Ledger.CacheTTL)

	assert.Equal(t, "redis.example.com", cfg.Redis.Host)
	assert.Equal(t, 6380, cfg.Redis.Port)
	assert.Equal(t, "redispwd", cfg.Redis.Password)
	assert.Equal(t, 2, cfg.Redis.DB)

	assert.Equal(t, "debug", cfg.Log.Level)
	assert.True(t, cfg.Log.Pretty)
}

func TestLoad_EnvOverride(t *testing.T) {
	// Environment variables should override defaults.
	t.Setenv("LEX_SERVER_PORT", "3000")
	t.Setenv("LEX_LEDGER_BASE_URL", "http://env-ledger:9999")
	t.Setenv("LEX_REDIS_HOST", "env-redis-host")

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, 3000, cfg.Server.Port)
	assert.Equal(t, "http://env-ledger:9999", cfg.Ledger.BaseURL)
	assert.Equal(t, "env-redis-host", cfg.Redis.Host)
}

func TestRedisConfig_Addr(t *testing.T) {
	redisCfg := RedisConfig{
		Host: "redis.local",
		Port: 6380,
	}

	assert.Equal(t, "redis.local:6380", redisCfg.Addr())
}
