package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"storefront/internal/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("JWT_SECRET", "secret")

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, 5432, cfg.PostgresPort)
	assert.Equal(t, 5*time.Minute, cfg.CacheTTL)
	assert.Equal(t, 24*time.Hour, cfg.SessionTTL)
	assert.Equal(t, 2*time.Hour, cfg.SessionIdleTimeout)
	assert.Equal(t, "admin", cfg.AdminUser)
	assert.Equal(t, "dev", cfg.GoEnv)
	assert.False(t, cfg.IsProd())
}

func TestLoad_MissingSecret(t *testing.T) {
	t.Setenv("JWT_SECRET", "")

	_, err := config.Load()
	assert.ErrorContains(t, err, "JWT_SECRET is required")
}

func TestLoad_InvalidValues(t *testing.T) {
	t.Setenv("JWT_SECRET", "secret")

	t.Setenv("POSTGRES_PORT", "abc")
	_, err := config.Load()
	assert.ErrorContains(t, err, "POSTGRES_PORT must be number")

	t.Setenv("POSTGRES_PORT", "5433")
	t.Setenv("CACHE_TTL", "soon")
	_, err = config.Load()
	assert.ErrorContains(t, err, "CACHE_TTL must be duration")

	t.Setenv("CACHE_TTL", "1m")
	t.Setenv("SESSION_TTL", "-1h")
	_, err = config.Load()
	assert.ErrorContains(t, err, "SESSION_TTL must be positive")
}

func TestLoad_ProdRequiresLongSecret(t *testing.T) {
	t.Setenv("JWT_SECRET", "short")
	t.Setenv("GO_ENV", "prod")

	_, err := config.Load()
	assert.ErrorContains(t, err, "at least 32 bytes")
}

func TestLoadDotEnv(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, ".env")
	require.NoError(t, os.WriteFile(path, []byte("STOREFRONT_TEST_KEY=from-dotenv\n"), 0o600))
	t.Cleanup(func() { os.Unsetenv("STOREFRONT_TEST_KEY") })

	require.NoError(t, config.LoadDotEnv(filepath.Join(dir, "missing.env"), path))
	assert.Equal(t, "from-dotenv", os.Getenv("STOREFRONT_TEST_KEY"))
}
