// internal/models/catalog.go
package models

// CatalogEntry is the raw catalog form as it arrives from config, the
// facilities table, or inline job variables: a facility name plus its
// eligibility range in "low-high" text.
type CatalogEntry struct {
	Name        string `json:"name"`
	CohortRange string `json:"cohortRange"`
}

// Facility is the canonical catalog entry after range parsing. The
// eligibility interval is half-open: a cohort c matches when
// MinCohort <= c < MaxCohort.
type Facility struct {
	Name      string `json:"name"`
	MinCohort int    `json:"minCohort"`
	MaxCohort int    `json:"maxCohort"` // exclusive
}

// Contains reports whether the cohort falls inside the facility's
// eligibility interval.
func (f Facility) Contains(cohort int) bool {
	return cohort >= f.MinCohort && cohort < f.MaxCohort
}

// SkippedEntry describes a catalog entry excluded during normalization.
type SkippedEntry struct {
	Name   string `json:"name"`
	Reason string `json:"reason"`
}
