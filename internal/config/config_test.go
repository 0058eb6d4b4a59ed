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
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoad_MissingFileUsesDefaults(t *testing.T) {
	for _, key := range []string{"PORT", "DB_DRIVER", "API_BASE_URL"} {
		t.Setenv(key, "")
	}

	cfg, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.NoError(t, err)

	assert.Equal(t, "8000", cfg.Server.Port)
	assert.Equal(t, "sqlite", cfg.Database.Driver)
	assert.Equal(t, 24*time.Hour, cfg.JWT.Expiration)
	assert.Equal(t, "http://127.0.0.1:8000", cfg.Web.APIBaseURL)
}

func TestLoad_FileOverridesDefaults(t *testing.T) {
	path := writeConfig(t, `
server:
  port: "9000"
  shutdown_timeout: 3s
database:
  driver: postgres
  host: db
  name: films
rate_limit:
  requests_per_second: 0
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "9000", cfg.Server.Port)
	assert.Equal(t, 3*time.Second, cfg.Server.ShutdownTimeout)
	assert.Equal(t, "postgres", cfg.Database.Driver)
	assert.Equal(t, "db", cfg.Database.Host)
	assert.Zero(t, cfg.RateLimit.RequestsPerSecond)
	// untouched keys keep their defaults
	assert.Equal(t, 15*time.Second, cfg.Server.ReadTimeout)
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	path := writeConfig(t, "server:\n  port: \"9000\"\n")
	t.Setenv("PORT", "7000")
	t.Setenv("DB_DRIVER", "postgres")
	t.Setenv("RATE_LIMIT_RPS", "2.5")
	t.Setenv("API_BASE_URL", "http://api:8000")
	t.Setenv("RATE_LIMIT_EXEMPT_IPS", "10.0.0.5, 10.0.0.6,")

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "7000", cfg.Server.Port)
	assert.Equal(t, "postgres", cfg.Database.Driver)
	assert.Equal(t, 2.5, cfg.RateLimit.RequestsPerSecond)
	assert.Equal(t, "http://api:8000", cfg.Web.APIBaseURL)
	assert.Equal(t, []string{"10.0.0.5", "10.0.0.6"}, cfg.RateLimit.Exempt())
}

func TestLoad_InvalidYAML(t *testing.T) {
	path := writeConfig(t, "server: [unterminated")

	_, err := Load(path)
	assert.Error(t, err)
}

func TestLoad_UnsupportedDriver(t *testing.T) {
	path := writeConfig(t, "database:\n  driver: oracle\n")

	_, err := Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "oracle")
}

func TestDatabaseConfig_GetDSN(t *testing.T) {
	tests := []struct {
		name string
		cfg  DatabaseConfig
		want string
	}{
		{
			name: "sqlite enables foreign keys",
			cfg:  DatabaseConfig{Driver: "sqlite", Path: "catalog.db"},
			want: "file:catalog.db?_foreign_keys=on",
		},
		{
			name: "postgres key value form",
			cfg: DatabaseConfig{
				Driver: "postgres", Host: "localhost", Port: "5432",
				User: "u", Password: "p", Name: "catalog", SSLMode: "disable",
			},
			want: "host=localhost port=5432 user=u password=p dbname=catalog sslmode=disable TimeZone=UTC",
		},
		{
			name: "explicit url wins",
			cfg:  DatabaseConfig{Driver: "postgres", URL: "postgres://x"},
			want: "postgres://x",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.cfg.GetDSN())
		})
	}
}

func TestCORSConfig_Origins(t *testing.T) {
	cfg := CORSConfig{AllowedOrigins: " http://a , ,http://b"}
	assert.Equal(t, []string{"http://a", "http://b"}, cfg.Origins())
	assert.Empty(t, CORSConfig{}.Origins())
}
