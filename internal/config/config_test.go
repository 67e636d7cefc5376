package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var registryDefaults = Defaults{Name: "registry", Version: "2.0.0"}

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load(registryDefaults, t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, "registry", cfg.Service.Name)
	assert.Equal(t, "2.0.0", cfg.Service.Version)
	assert.Equal(t, 8000, cfg.Server.Port)
	assert.Equal(t, 5*time.Second, cfg.Server.ShutdownTimeout)

	assert.Equal(t, "localhost", cfg.Database.Host)
	assert.Equal(t, "hospital", cfg.Database.Name)
	assert.Equal(t, "admin", cfg.Database.User)
	assert.Equal(t, "securepass", cfg.Database.Password)
	assert.Equal(t, 0, cfg.Database.MaxIdleConns)
	assert.False(t, cfg.RateLimit.Enabled)
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	dir := t.TempDir()
	yml := []byte(`
service:
  version: "9.9.9"
server:
  port: 9000
database:
  host: file-host
  name: file-db
log:
  level: debug
`)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yml"), yml, 0o600))

	t.Setenv("DB_HOST", "db.internal")
	t.Setenv("DB_PASSWORD", "s3cret")
	t.Setenv("PORT", "8123")

	cfg, err := Load(registryDefaults, dir)
	require.NoError(t, err)

	assert.Equal(t, "9.9.9", cfg.Service.Version)
	assert.Equal(t, 8123, cfg.Server.Port)
	assert.Equal(t, "db.internal", cfg.Database.Host)
	assert.Equal(t, "file-db", cfg.Database.Name)
	assert.Equal(t, "s3cret", cfg.Database.Password)
	assert.Equal(t, "debug", cfg.Log.Level)
}

func TestLoad_InvalidPort(t *testing.T) {
	t.Setenv("PORT", "70000")
	_, err := Load(registryDefaults, t.TempDir())
	assert.Error(t, err)
}

func TestDatabaseConfig_DSN(t *testing.T) {
	dsn := DatabaseConfig{
		Host:     "localhost",
		Port:     5432,
		User:     "admin",
		Password: "securepass",
		Name:     "hospital",
		SSLMode:  "disable",
	}.DSN()

	assert.Equal(t, "host='localhost' port=5432 user='admin' password='securepass' dbname='hospital' sslmode='disable'", dsn)
}

func TestDatabaseConfig_DSNQuotesCredentials(t *testing.T) {
	cfg := DatabaseConfig{
		Host:     "db.internal",
		Port:     5432,
		User:     "admin",
		Password: `my pass'with\odd`,
		Name:     "hospital",
		SSLMode:  "disable",
	}

	assert.Contains(t, cfg.DSN(), `password='my pass\'with\\odd'`)

	_, err := pq.NewConnector(cfg.DSN())
	require.NoError(t, err)
}
