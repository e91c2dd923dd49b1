package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoad(t *testing.T) {
	t.Run("full config", func(t *testing.T) {
		path := writeConfig(t, `
[server]
http_port = 9090
read_timeout = 5
write_timeout = 5
idle_timeout = 30
shutdown_timeout = 10

[logs]
file = "logs/app.log"
level = "DEBUG"

[metrics]
enabled = true
service_name = "room-finder"
path = "/metrics"

[catalog]
source = "postgres"

[database]
host = "localhost"
port = 5432
user = "postgres"
password = "secret"
dbname = "roomfinder"
sslmode = "disable"
max_open_conns = 10
max_idle_conns = 5
conn_max_lifetime = 300
`)

		cfg, err := Load(path)

		require.NoError(t, err)
		assert.Equal(t, 9090, cfg.Server.HTTPPort)
		assert.Equal(t, "DEBUG", cfg.Logs.Level)
		assert.True(t, cfg.Metrics.Enabled)
		assert.Equal(t, CatalogSourcePostgres, cfg.Catalog.Source)
		assert.Equal(t,
			"host=localhost port=5432 user=postgres password=secret dbname=roomfinder sslmode=disable",
			cfg.Database.DSN())
	})

	t.Run("defaults applied", func(t *testing.T) {
		path := writeConfig(t, `
[logs]
file = "logs/app.log"
`)

		cfg, err := Load(path)

		require.NoError(t, err)
		assert.Equal(t, 8080, cfg.Server.HTTPPort)
		assert.Equal(t, 10, cfg.Server.ReadTimeout)
		assert.Equal(t, 15, cfg.Server.ShutdownTimeout)
		assert.Equal(t, "INFO", cfg.Logs.Level)
		assert.Equal(t, "/metrics", cfg.Metrics.Path)
		assert.Equal(t, CatalogSourceStatic, cfg.Catalog.Source)
	})

	t.Run("postgres source requires database settings", func(t *testing.T) {
		path := writeConfig(t, `
[catalog]
source = "postgres"
`)

		_, err := Load(path)

		assert.Error(t, err)
	})

	t.Run("unknown catalog source rejected", func(t *testing.T) {
		path := writeConfig(t, `
[catalog]
source = "excel"
`)

		_, err := Load(path)

		assert.Error(t, err)
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := Load(filepath.Join(t.TempDir(), "absent.toml"))
		assert.Error(t, err)
	})

	t.Run("malformed toml", func(t *testing.T) {
		path := writeConfig(t, `[server`)
		_, err := Load(path)
		assert.Error(t, err)
	})
}
