// internal/workers/recommendation/recommend-facilities/catalog.go
package recommendfacilities

import (
	"context"
	"encoding/json"
	"fmt"

	"sportrec-workers/internal/models"

	"github.com/redis/go-redis/v9"
)

const facilityCatalogQuery = `SELECT name, cohort_range FROM facilities ORDER BY position`

// resolveCatalog picks the catalog in priority order: inline job payload,
// redis cache, postgres, configured entries. The returned source label
// names the tier that answered.
func (h *Handler) resolveCatalog(ctx context.Context, inline []models.CatalogEntry) ([]models.CatalogEntry, string, error) {
	if len(inline) > 0 {
		return inline, "inline", nil
	}

	if entries, ok := h.catalogFromCache(ctx); ok {
		return entries, "cache", nil
	}

	if h.config.Source == "postgres" && h.db != nil {
		entries, err := h.catalogFromPostgres(ctx)
		if err != nil {
			h.logger.Warn("catalog query failed, falling back to configured entries", map[string]interface{}{
				"error": err.Error(),
			})
		} else {
			h.cacheCatalog(ctx, entries)
			return entries, "postgres", nil
		}
	}

	if len(h.config.Entries) > 0 {
		return h.config.Entries, "config", nil
	}

	return nil, "", fmt.Errorf("%w: no catalog source available", ErrCatalogUnavailable)
}

func (h *Handler) catalogFromCache(ctx context.Context) ([]models.CatalogEntry, bool) {
	if h.redis == nil {
		return nil, false
	}

	raw, err := h.redis.Get(ctx, CatalogCacheKey)
	if err != nil {
		if err != redis.Nil {
			h.logger.Warn("catalog cache read failed", map[string]interface{}{
				"error": err.Error(),
			})
		}
		return nil, false
	}

	var entries []models.CatalogEntry
	if err := json.Unmarshal([]byte(raw), &entries); err != nil {
		h.logger.Warn("catalog cache entry is corrupt, ignoring", map[string]interface{}{
			"error": err.Error(),
		})
		return nil, false
	}
	if len(entries) == 0 {
		return nil, false
	}

	return entries, true
}

func (h *Handler) catalogFromPostgres(ctx context.Context) ([]models.CatalogEntry, error) {
	rows, err := h.db.Query(ctx, facilityCatalogQuery)
	if err != nil {
		return nil, fmt.Errorf("query facilities: %w", err)
	}
	defer rows.Close()

	var entries []models.CatalogEntry
	for rows.Next() {
		var e models.CatalogEntry
		if err := rows.Scan(&e.Name, &e.CohortRange); err != nil {
			return nil, fmt.Errorf("scan facility row: %w", err)
		}
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate facility rows: %w", err)
	}
	if len(entries) == 0 {
		return nil, fmt.Errorf("facilities table is empty")
	}

	return entries, nil
}

// cacheCatalog is best-effort; a failed write only costs the next job a
// database round trip.
func (h *Handler) cacheCatalog(ctx context.Context, entries []models.CatalogEntry) {
	if h.redis == nil {
		return
	}

	payload, err := json.Marshal(entries)
	if err != nil {
		return
	}
	if err := h.redis.Set(ctx, CatalogCacheKey, payload, h.config.CacheTTL); err != nil {
		h.logger.Warn("catalog cache write failed", map[string]interface{}{
			"error": err.Error(),
		})
	}
}
