// internal/workers/recommendation/match-facilities/handler_test.go
package matchfacilities

import (
	"context"
	"testing"

	"sportrec-workers/internal/common/logger"
	"sportrec-workers/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestHandler(t *testing.T, cfg *Config) *Handler {
	t.Helper()
	if cfg == nil {
		cfg = LoadConfig()
	}
	return NewHandler(cfg, logger.NewTestLogger(t))
}

func TestExecute_InlineCatalog(t *testing.T) {
	h := newTestHandler(t, nil)

	output, err := h.Execute(context.Background(), &Input{
		Cohort: 25,
		Catalog: []models.CatalogEntry{
			{Name: "Pool", CohortRange: "20-30"},
			{Name: "Track", CohortRange: "30-60"},
		},
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"Pool"}, output.RecommendedFacilities)
	assert.Equal(t, 1, output.Matched)
	assert.Empty(t, output.SkippedEntries)
}

func TestExecute_DefaultCatalogWhenAbsent(t *testing.T) {
	h := newTestHandler(t, nil)

	output, err := h.Execute(context.Background(), &Input{Cohort: 35})
	require.NoError(t, err)
	assert.Equal(t, []string{"Fitness Center", "Open Stadium", "Gym"}, output.RecommendedFacilities)
	assert.Equal(t, 3, output.Matched)
}

func TestExecute_ExplicitEmptyCatalog(t *testing.T) {
	h := newTestHandler(t, nil)

	output, err := h.Execute(context.Background(), &Input{
		Cohort:  35,
		Catalog: []models.CatalogEntry{},
	})
	require.NoError(t, err)
	assert.NotNil(t, output.RecommendedFacilities)
	assert.Empty(t, output.RecommendedFacilities)
	assert.Equal(t, 0, output.Matched)
	assert.Empty(t, output.SkippedEntries)
}

func TestExecute_NoMatchReturnsEmptyList(t *testing.T) {
	h := newTestHandler(t, nil)

	output, err := h.Execute(context.Background(), &Input{
		Cohort: 5,
		Catalog: []models.CatalogEntry{
			{Name: "Gym", CohortRange: "30-60"},
		},
	})
	require.NoError(t, err)
	assert.NotNil(t, output.RecommendedFacilities)
	assert.Empty(t, output.RecommendedFacilities)
	assert.Equal(t, 0, output.Matched)
}

func TestExecute_SkipsUnparseableEntries(t *testing.T) {
	h := newTestHandler(t, nil)

	output, err := h.Execute(context.Background(), &Input{
		Cohort: 40,
		Catalog: []models.CatalogEntry{
			{Name: "Gym", CohortRange: "30-60"},
			{Name: "Broken", CohortRange: "sixty-seventy"},
			{Name: "Arena", CohortRange: "70-40"},
		},
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"Gym"}, output.RecommendedFacilities)
	require.Len(t, output.SkippedEntries, 2)
	assert.Equal(t, "Broken", output.SkippedEntries[0].Name)
	assert.Equal(t, "Arena", output.SkippedEntries[1].Name)
}

func TestExecute_StrictCatalogFails(t *testing.T) {
	h := newTestHandler(t, &Config{Timeout: LoadConfig().Timeout, StrictCatalog: true})

	output, err := h.Execute(context.Background(), &Input{
		Cohort: 40,
		Catalog: []models.CatalogEntry{
			{Name: "Gym", CohortRange: "30-60"},
			{Name: "Broken", CohortRange: ""},
		},
	})
	require.Error(t, err)
	assert.Nil(t, output)
	assert.ErrorIs(t, err, ErrCatalogEntryInvalid)
}

func TestExecute_HalfOpenUpperBound(t *testing.T) {
	h := newTestHandler(t, nil)

	output, err := h.Execute(context.Background(), &Input{
		Cohort: 30,
		Catalog: []models.CatalogEntry{
			{Name: "A", CohortRange: "10-30"},
			{Name: "B", CohortRange: "30-60"},
		},
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"B"}, output.RecommendedFacilities)
}
