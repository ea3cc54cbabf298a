package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoad_DefaultsAndOverrides(t *testing.T) {
	path := writeConfig(t, `
[server]
http_port = 9090

[catalog]
url = "http://localhost/services.json"

[booking]
thanks_url = "https://salon.example/thanks"
closed_weekdays = [0, 1]

[seed]
lookahead_days = 7
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.Server.HTTPPort)
	// Незаданные поля берутся из дефолтов
	assert.Equal(t, 10, cfg.Server.ReadTimeout)
	assert.Equal(t, "memory", cfg.Storage.Driver)
	assert.Equal(t, 10*time.Second, cfg.Catalog.TimeoutDuration())
	assert.Equal(t, []int{0, 1}, cfg.Booking.ClosedWeekdays)
	assert.Equal(t, 7, cfg.Seed.LookaheadDays)
	assert.Equal(t, 30, cfg.Seed.FallbackDurationMinutes)
	assert.Equal(t, "/metrics", cfg.Metrics.Path)
}

func TestLoad_MissingCatalogURL(t *testing.T) {
	path := writeConfig(t, `
[server]
http_port = 8080
`)

	_, err := Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "catalog.url")
}

func TestLoad_UnknownStorageDriver(t *testing.T) {
	path := writeConfig(t, `
[storage]
driver = "cassandra"

[catalog]
url = "http://localhost/services.json"
`)

	_, err := Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "storage driver")
}

func TestLoad_InvalidClosedWeekday(t *testing.T) {
	path := writeConfig(t, `
[catalog]
url = "http://localhost/services.json"

[booking]
closed_weekdays = [7]
`)

	_, err := Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "closed_weekdays")
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.toml"))
	assert.Error(t, err)
}

func TestPostgresConfig_DSN(t *testing.T) {
	cfg := PostgresConfig{
		Host: "db", Port: 5432, User: "app", Password: "secret",
		DBName: "booking", SSLMode: "disable",
	}
	assert.Equal(t, "host=db port=5432 user=app password=secret dbname=booking sslmode=disable", cfg.DSN())
}
