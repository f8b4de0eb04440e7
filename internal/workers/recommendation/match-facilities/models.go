// internal/workers/recommendation/match-facilities/models.go
package matchfacilities

import "sportrec-workers/internal/models"

type Input struct {
	Cohort  int                   `json:"cohort"`
	Catalog []models.CatalogEntry `json:"catalog,omitempty"`
}

type Output struct {
	RecommendedFacilities []string              `json:"recommendedFacilities"`
	Matched               int                   `json:"matched"`
	SkippedEntries        []models.SkippedEntry `json:"skippedEntries,omitempty"`
}
