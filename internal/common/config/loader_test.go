// internal/common/config/loader_test.go
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
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoadFromFile_Defaults(t *testing.T) {
	path := writeConfig(t, `
app:
  name: sportrec-workers
camunda:
  broker_address: localhost:26500
workers:
  determine-cohort:
    enabled: true
`)

	cfg, err := LoadFromFile(path)
	require.NoError(t, err)

	assert.Equal(t, "sportrec-workers", cfg.App.Name)
	assert.Equal(t, "localhost:26500", cfg.Camunda.BrokerAddress)

	// Omitted fields fall back to defaults
	assert.Equal(t, "config", cfg.Catalog.Source)
	assert.Equal(t, 600, cfg.Catalog.CacheTTLSeconds)
	assert.Equal(t, "info", cfg.Logging.Level)
	require.Len(t, cfg.Catalog.Entries, 4)
	assert.Equal(t, "Fitness Center", cfg.Catalog.Entries[0].Name)
	assert.Equal(t, "20-50", cfg.Catalog.Entries[0].CohortRange)

	worker := cfg.Workers["determine-cohort"]
	assert.True(t, worker.Enabled)
	assert.Equal(t, 5, worker.MaxJobsActive)
	assert.Equal(t, 30000, worker.Timeout)
}

func TestLoadFromFile_ExplicitCatalog(t *testing.T) {
	path := writeConfig(t, `
camunda:
  broker_address: localhost:26500
catalog:
  source: config
  cache_ttl_seconds: 120
  entries:
    - name: Pool
      cohort_range: 30-40
`)

	cfg, err := LoadFromFile(path)
	require.NoError(t, err)

	assert.Equal(t, 120, cfg.Catalog.CacheTTLSeconds)
	require.Len(t, cfg.Catalog.Entries, 1)
	assert.Equal(t, "Pool", cfg.Catalog.Entries[0].Name)
}

func TestLoadFromFile_MissingBrokerAddress(t *testing.T) {
	path := writeConfig(t, `
app:
  name: sportrec-workers
`)

	_, err := LoadFromFile(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "broker_address")
}

func TestLoadFromFile_InvalidCatalogSource(t *testing.T) {
	path := writeConfig(t, `
camunda:
  broker_address: localhost:26500
catalog:
  source: carrier-pigeon
`)

	_, err := LoadFromFile(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "catalog.source")
}

func TestLoadFromFile_PostgresSourceRequiresHost(t *testing.T) {
	path := writeConfig(t, `
camunda:
  broker_address: localhost:26500
catalog:
  source: postgres
`)

	_, err := LoadFromFile(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "postgres.host")
}

func TestGetDSN(t *testing.T) {
	pg := PostgresConfig{
		Host:     "db.internal",
		Port:     5432,
		Database: "sportrec",
		User:     "app",
		Password: "secret",
		SSLMode:  "disable",
	}

	dsn := pg.GetDSN()
	assert.Contains(t, dsn, "host=db.internal")
	assert.Contains(t, dsn, "dbname=sportrec")
	assert.Contains(t, dsn, "sslmode=disable")
}

func TestDefaultCatalog(t *testing.T) {
	entries := DefaultCatalog()
	require.Len(t, entries, 4)
	assert.Equal(t, "Competition Stadium", entries[3].Name)
	assert.Equal(t, "40-70", entries[3].CohortRange)
}
