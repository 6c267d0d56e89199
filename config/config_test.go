package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type envTestConfig struct {
	Port int `env:"FIGURE_STUDIO_TEST_PORT" envDefault:"123"`
}

func TestParseEnvDefaults(t *testing.T) {
	var cfg envTestConfig

	require.NoError(t, ParseEnv(&cfg))
	assert.Equal(t, 123, cfg.Port)
}

func TestParseEnvError(t *testing.T) {
	var cfg envTestConfig
	t.Setenv("FIGURE_STUDIO_TEST_PORT", "not-an-int")

	err := ParseEnv(&cfg)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parse env:")
}

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "com.br", cfg.Region)
	assert.Equal(t, "http", cfg.ProbeBackend)
	assert.Equal(t, 15*time.Second, cfg.SourceTimeout)
	assert.Equal(t, 5*time.Second, cfg.ProbeTimeout)
	assert.Equal(t, 8, cfg.WarmupWorkers)
	assert.False(t, cfg.UnionColors)
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("PORT", ":9090")
	t.Setenv("HABBO_REGION", "es")
	t.Setenv("PROBE_BACKEND", "Chrome")
	t.Setenv("CATALOG_UNION_COLORS", "true")
	t.Setenv("SOURCE_TIMEOUT", "2s")
	t.Setenv("MIRROR_B_SOURCE_URL", "drive://folder-1")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.Port)
	assert.Equal(t, "es", cfg.Region)
	assert.Equal(t, "chrome", cfg.ProbeBackend)
	assert.True(t, cfg.UnionColors)
	assert.Equal(t, 2*time.Second, cfg.SourceTimeout)
	assert.True(t, cfg.UsesDrive())
}

func TestLoadRejectsUnknownProbeBackend(t *testing.T) {
	t.Setenv("PROBE_BACKEND", "carrier-pigeon")

	_, err := Load()
	assert.Error(t, err)
}

func TestDatabaseDSN(t *testing.T) {
	cfg := &Config{DatabaseURL: "postgres://u:p@h/db"}
	dsn, err := cfg.DatabaseDSN()
	require.NoError(t, err)
	assert.Equal(t, "postgres://u:p@h/db", dsn)

	cfg = &Config{DBHost: "localhost", DBPort: "5432", DBUser: "studio", DBName: "figures", DBSSLMode: "disable"}
	dsn, err = cfg.DatabaseDSN()
	require.NoError(t, err)
	assert.Equal(t, "host=localhost port=5432 user=studio password= dbname=figures sslmode=disable", dsn)

	_, err = (&Config{}).DatabaseDSN()
	assert.Error(t, err)
}
