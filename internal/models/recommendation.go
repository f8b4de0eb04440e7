// internal/models/recommendation.go
package models

// Recommendation is the pipeline result: the computed cohort and the
// facility names whose range contains it, in catalog order. An empty
// RecommendedFacilities list means nothing matched; no sentinel names
// are ever inserted.
type Recommendation struct {
	RequestID             string         `json:"requestId"`
	Cohort                int            `json:"cohort"`
	RecommendedFacilities []string       `json:"recommendedFacilities"`
	Matched               int            `json:"matched"`
	SkippedEntries        []SkippedEntry `json:"skippedEntries,omitempty"`
}
