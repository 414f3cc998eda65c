package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigDefaults(t *testing.T) {
	for _, key := range []string{"DB_USER", "DB_PASSWORD", "DB_HOST", "DB_PORT", "DB_NAME", "DB_MAX_CONNS", "LISTEN_ADDR", "CORS_ORIGIN"} {
		t.Setenv(key, "")
		os.Unsetenv(key)
	}
	t.Setenv("CONFIG_FILE", filepath.Join(t.TempDir(), "missing.yaml"))

	cfg := LoadConfig()
	assert.Equal(t, "localhost", cfg.DBHost)
	assert.Equal(t, "5432", cfg.DBPort)
	assert.Equal(t, 10, cfg.DBMaxConns)
	assert.Equal(t, ":8000", cfg.ListenAddr)
	assert.Equal(t, "http://localhost:3000", cfg.CORSOrigin)
}

func TestLoadConfigEnvOverrides(t *testing.T) {
	t.Setenv("CONFIG_FILE", filepath.Join(t.TempDir(), "missing.yaml"))
	t.Setenv("DB_HOST", "db.internal")
	t.Setenv("DB_MAX_CONNS", "25")
	t.Setenv("LISTEN_ADDR", ":9090")

	cfg := LoadConfig()
	assert.Equal(t, "db.internal", cfg.DBHost)
	assert.Equal(t, 25, cfg.DBMaxConns)
	assert.Equal(t, ":9090", cfg.ListenAddr)
}

func TestLoadConfigYAMLFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(
		"db_host: filehost\ndb_name: filedb\ndb_max_conns: 5\ncors_origin: https://example.com\n",
	), 0o644))
	t.Setenv("CONFIG_FILE", path)
	for _, key := range []string{"DB_HOST", "DB_NAME", "DB_MAX_CONNS", "CORS_ORIGIN"} {
		t.Setenv(key, "")
		os.Unsetenv(key)
	}

	cfg := LoadConfig()
	assert.Equal(t, "filehost", cfg.DBHost)
	assert.Equal(t, "filedb", cfg.DBName)
	assert.Equal(t, 5, cfg.DBMaxConns)
	assert.Equal(t, "https://example.com", cfg.CORSOrigin)

	// env still wins over the file
	t.Setenv("DB_HOST", "envhost")
	cfg = LoadConfig()
	assert.Equal(t, "envhost", cfg.DBHost)
}

func TestDSN(t *testing.T) {
	cfg := Config{DBHost: "h", DBPort: "5432", DBUser: "u", DBPassword: "p", DBName: "n"}
	assert.Equal(t, "host=h port=5432 user=u password=p dbname=n sslmode=disable", cfg.DSN())
}
