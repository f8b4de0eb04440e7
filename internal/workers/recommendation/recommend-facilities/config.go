// internal/workers/recommendation/recommend-facilities/config.go
package recommendfacilities

import (
	"time"

	"sportrec-workers/internal/common/config"
	"sportrec-workers/internal/models"
)

const CatalogCacheKey = "catalog:facilities"

type Config struct {
	Timeout time.Duration

	// Source selects where the catalog comes from when the job carries
	// none inline: "config" or "postgres".
	Source   string
	CacheTTL time.Duration
	Entries  []models.CatalogEntry
}

func LoadConfig() *Config {
	return &Config{
		Timeout:  15 * time.Second,
		Source:   "config",
		CacheTTL: 10 * time.Minute,
		Entries:  config.DefaultCatalog(),
	}
}

// NewConfigFromApp derives the worker config from the application catalog
// settings.
func NewConfigFromApp(app *config.Config) *Config {
	cfg := LoadConfig()
	if app == nil {
		return cfg
	}

	if app.Catalog.Source != "" {
		cfg.Source = app.Catalog.Source
	}
	if app.Catalog.CacheTTLSeconds > 0 {
		cfg.CacheTTL = time.Duration(app.Catalog.CacheTTLSeconds) * time.Second
	}
	if len(app.Catalog.Entries) > 0 {
		entries := make([]models.CatalogEntry, 0, len(app.Catalog.Entries))
		for _, e := range app.Catalog.Entries {
			entries = append(entries, models.CatalogEntry{Name: e.Name, CohortRange: e.CohortRange})
		}
		cfg.Entries = entries
	}
	return cfg
}
