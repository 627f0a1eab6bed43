package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"unitconv/internal/config"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := config.Load(filepath.Join(t.TempDir(), "missing.yml"))
	require.NoError(t, err)

	require.Equal(t, "development", cfg.Environment)
	require.Empty(t, cfg.LogLevel)
	require.Equal(t, ":8080", cfg.HTTP.Addr)
	require.Equal(t, 5*time.Second, cfg.HTTP.RequestTimeout)
	require.Equal(t, int64(65536), cfg.HTTP.MaxBodyBytes)
	require.Equal(t, "/metrics", cfg.HTTP.MetricsPath)
	require.Equal(t, "/docs/", cfg.HTTP.DocsPath)
	require.Equal(t, 10*time.Second, cfg.GracefulShutdownTimeout)
}

func TestLoad_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yml")
	require.NoError(t, os.WriteFile(path, []byte(`
environment: production
logLevel: warn
http:
  addr: ":9090"
  requestTimeout: 1s
  docsPath: /reference/
gracefulShutdownTimeout: 3s
`), 0o600))

	cfg, err := config.Load(path)
	require.NoError(t, err)

	require.Equal(t, "production", cfg.Environment)
	require.Equal(t, "warn", cfg.LogLevel)
	require.Equal(t, ":9090", cfg.HTTP.Addr)
	require.Equal(t, time.Second, cfg.HTTP.RequestTimeout)
	require.Equal(t, "/reference/", cfg.HTTP.DocsPath)
	require.Equal(t, "/metrics", cfg.HTTP.MetricsPath)
	require.Equal(t, 3*time.Second, cfg.GracefulShutdownTimeout)
}

func TestLoad_Environment(t *testing.T) {
	t.Setenv("HTTP_ADDR", "127.0.0.1:7000")
	t.Setenv("ENVIRONMENT", "production")

	cfg, err := config.Load("")
	require.NoError(t, err)
	require.Equal(t, "127.0.0.1:7000", cfg.HTTP.Addr)
	require.Equal(t, "production", cfg.Environment)
}

func TestLoad_InvalidFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yml")
	require.NoError(t, os.WriteFile(path, []byte("http: [unterminated"), 0o600))

	_, err := config.Load(path)
	require.Error(t, err)
}
