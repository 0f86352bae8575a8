package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	t.Chdir(t.TempDir())

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, DriverSpanner, cfg.Storage.Driver)
	assert.Equal(t, ":8080", cfg.HTTP.Addr)
	assert.Equal(t, 30*time.Second, cfg.Provisioning.Timeout)
	assert.Equal(t, "info", cfg.Log.Level)
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("CATALOG_STORAGE_DRIVER", "POSTGRES")
	t.Setenv("CATALOG_STORAGE_POSTGRES_HOST", "db.internal")
	t.Setenv("CATALOG_PROVISIONING_TIMEOUT", "5s")
	t.Setenv("CATALOG_HTTP_ADDR", ":9090")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, DriverPostgres, cfg.Storage.Driver)
	assert.Equal(t, "db.internal", cfg.Storage.Postgres.Host)
	assert.Equal(t, 5*time.Second, cfg.Provisioning.Timeout)
	assert.Equal(t, ":9090", cfg.HTTP.Addr)
}

func TestLoad_UnknownDriver(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("CATALOG_STORAGE_DRIVER", "mysql")

	_, err := Load()
	assert.ErrorContains(t, err, "unknown storage.driver")
}

func TestPostgresConfig_URL(t *testing.T) {
	p := PostgresConfig{Host: "h", Port: 5432, User: "u", Password: "p@ss", DBName: "catalog", SSLMode: "disable"}
	assert.Equal(t, "postgres://u:p%40ss@h:5432/catalog?sslmode=disable", p.URL())
	assert.Equal(t, "host=h port=5432 user=u password=p@ss dbname=catalog sslmode=disable", p.DSN())
}
