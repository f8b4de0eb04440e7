// internal/workers/recommendation/recommend-facilities/models.go
package recommendfacilities

import "sportrec-workers/internal/models"

type Input struct {
	Profile *models.UserProfile `json:"profile"`

	// Catalog overrides every configured catalog source for one job.
	Catalog []models.CatalogEntry `json:"catalog,omitempty"`
}

type Output struct {
	RequestID             string                `json:"requestId"`
	Cohort                int                   `json:"cohort"`
	RecommendedFacilities []string              `json:"recommendedFacilities"`
	Matched               int                   `json:"matched"`
	SkippedEntries        []models.SkippedEntry `json:"skippedEntries,omitempty"`
	CatalogSource         string                `json:"catalogSource"`
}
