package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("SERVER_PORT", "")
	t.Setenv("REDIS_URL", "")
	t.Setenv("REPORT_ARCHIVE_BUCKET", "")
	t.Setenv("STATS_CACHE_TTL", "")

	cfg := Load()

	require.Equal(t, ":3000", cfg.Addr())
	require.Equal(t, 30*time.Second, cfg.StatsCacheTTL)
	require.Equal(t, "America/Sao_Paulo", cfg.ReportTimezone)
	require.False(t, cfg.CacheEnabled())
	require.False(t, cfg.ArchiveEnabled())
	require.Nil(t, cfg.AllowedOrigins())
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("SERVER_PORT", "8081")
	t.Setenv("REDIS_URL", "redis://localhost:6379/0")
	t.Setenv("STATS_CACHE_TTL", "2m")
	t.Setenv("SHUTDOWN_TIMEOUT", "nope")
	t.Setenv("REPORT_ARCHIVE_BUCKET", "relatorios")
	t.Setenv("CORS_ALLOWED_ORIGINS", " http://a.com, ,http://b.com ")

	cfg := Load()

	require.Equal(t, ":8081", cfg.Addr())
	require.True(t, cfg.CacheEnabled())
	require.Equal(t, 2*time.Minute, cfg.StatsCacheTTL)
	require.Equal(t, 15*time.Second, cfg.ShutdownTimeout)
	require.True(t, cfg.ArchiveEnabled())
	require.Equal(t, []string{"http://a.com", "http://b.com"}, cfg.AllowedOrigins())
}
