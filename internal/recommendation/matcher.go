package recommendation

import (
	"fmt"
	"strconv"
	"strings"

	"sportrec-workers/internal/models"
)

// CatalogEntryError reports a catalog entry whose eligibility range could
// not be parsed. It is a data-integrity problem with one entry, never a
// reason to abort the whole request.
type CatalogEntryError struct {
	Name   string
	Reason string
}

func (e *CatalogEntryError) Error() string {
	return fmt.Sprintf("catalog entry %q: %s", e.Name, e.Reason)
}

// ParseCohortRange parses a textual eligibility range "low-high" into the
// half-open interval [low, high). The delimiter is the first '-' after the
// low bound, so negative lower bounds like "-5-10" parse too.
func ParseCohortRange(s string) (lo, hi int, err error) {
	text := strings.TrimSpace(s)
	if text == "" {
		return 0, 0, fmt.Errorf("empty range")
	}

	// Skip a leading sign so it is not mistaken for the delimiter.
	sep := strings.Index(text[1:], "-")
	if sep < 0 {
		return 0, 0, fmt.Errorf("missing '-' delimiter in %q", s)
	}
	sep++

	lo, err = strconv.Atoi(strings.TrimSpace(text[:sep]))
	if err != nil {
		return 0, 0, fmt.Errorf("non-numeric lower bound in %q", s)
	}
	hi, err = strconv.Atoi(strings.TrimSpace(text[sep+1:]))
	if err != nil {
		return 0, 0, fmt.Errorf("non-numeric upper bound in %q", s)
	}
	if hi <= lo {
		return 0, 0, fmt.Errorf("inverted range %q", s)
	}

	return lo, hi, nil
}

// NormalizeCatalog converts raw catalog entries into canonical facilities.
// Entries with unparseable ranges are skipped and reported; the remainder
// keeps its original order.
func NormalizeCatalog(entries []models.CatalogEntry) ([]models.Facility, []*CatalogEntryError) {
	facilities := make([]models.Facility, 0, len(entries))
	var skipped []*CatalogEntryError

	for _, e := range entries {
		lo, hi, err := ParseCohortRange(e.CohortRange)
		if err != nil {
			skipped = append(skipped, &CatalogEntryError{Name: e.Name, Reason: err.Error()})
			continue
		}
		facilities = append(facilities, models.Facility{
			Name:      e.Name,
			MinCohort: lo,
			MaxCohort: hi,
		})
	}

	return facilities, skipped
}

// Match returns the names of all facilities whose eligibility interval
// contains the cohort, preserving catalog order. An empty or nil catalog
// yields an empty list; no-match is an empty list as well, never a
// sentinel name.
func Match(cohort int, catalog []models.Facility) []string {
	matched := []string{}
	for _, f := range catalog {
		if f.Contains(cohort) {
			matched = append(matched, f.Name)
		}
	}
	return matched
}
