// internal/workers/recommendation/recommend-facilities/handler_test.go
package recommendfacilities

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"sportrec-workers/internal/common/database"
	"sportrec-workers/internal/common/logger"
	"sportrec-workers/internal/models"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/alicebob/miniredis/v2"
	"github.com/go-redis/redismock/v9"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func baselineProfile() *models.UserProfile {
	return &models.UserProfile{FitnessLevel: 3, AgeCategory: 4} // cohort 34
}

func TestExecute_InlineCatalogWinsOverEverything(t *testing.T) {
	h := NewHandler(LoadConfig(), nil, nil, logger.NewTestLogger(t))

	output, err := h.Execute(context.Background(), &Input{
		Profile: baselineProfile(),
		Catalog: []models.CatalogEntry{
			{Name: "Pool", CohortRange: "30-40"},
		},
	})
	require.NoError(t, err)
	assert.Equal(t, 34, output.Cohort)
	assert.Equal(t, []string{"Pool"}, output.RecommendedFacilities)
	assert.Equal(t, "inline", output.CatalogSource)
	assert.NotEmpty(t, output.RequestID)
}

func TestExecute_ConfiguredCatalog(t *testing.T) {
	h := NewHandler(LoadConfig(), nil, nil, logger.NewTestLogger(t))

	output, err := h.Execute(context.Background(), &Input{Profile: baselineProfile()})
	require.NoError(t, err)
	assert.Equal(t, 34, output.Cohort)
	assert.Equal(t, []string{"Fitness Center", "Open Stadium", "Gym"}, output.RecommendedFacilities)
	assert.Equal(t, 3, output.Matched)
	assert.Equal(t, "config", output.CatalogSource)
}

func TestExecute_CacheHit(t *testing.T) {
	client, mock := redismock.NewClientMock()
	cached, err := json.Marshal([]models.CatalogEntry{
		{Name: "Pool", CohortRange: "30-40"},
	})
	require.NoError(t, err)
	mock.ExpectGet(CatalogCacheKey).SetVal(string(cached))

	h := NewHandler(LoadConfig(), nil, &database.RedisClient{Client: client}, logger.NewTestLogger(t))

	output, err := h.Execute(context.Background(), &Input{Profile: baselineProfile()})
	require.NoError(t, err)
	assert.Equal(t, []string{"Pool"}, output.RecommendedFacilities)
	assert.Equal(t, "cache", output.CatalogSource)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestExecute_CorruptCacheFallsThrough(t *testing.T) {
	client, mock := redismock.NewClientMock()
	mock.ExpectGet(CatalogCacheKey).SetVal("not json")

	h := NewHandler(LoadConfig(), nil, &database.RedisClient{Client: client}, logger.NewTestLogger(t))

	output, err := h.Execute(context.Background(), &Input{Profile: baselineProfile()})
	require.NoError(t, err)
	assert.Equal(t, "config", output.CatalogSource)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestExecute_PostgresCatalogCachesResult(t *testing.T) {
	db, dbMock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	dbMock.ExpectQuery("SELECT name, cohort_range FROM facilities ORDER BY position").
		WillReturnRows(sqlmock.NewRows([]string{"name", "cohort_range"}).
			AddRow("Pool", "30-40").
			AddRow("Track", "50-80"))

	entries := []models.CatalogEntry{
		{Name: "Pool", CohortRange: "30-40"},
		{Name: "Track", CohortRange: "50-80"},
	}
	payload, err := json.Marshal(entries)
	require.NoError(t, err)

	cfg := LoadConfig()
	cfg.Source = "postgres"

	client, redisMock := redismock.NewClientMock()
	redisMock.ExpectGet(CatalogCacheKey).RedisNil()
	redisMock.ExpectSet(CatalogCacheKey, payload, cfg.CacheTTL).SetVal("OK")

	h := NewHandler(cfg, &database.PostgresClient{DB: db}, &database.RedisClient{Client: client}, logger.NewTestLogger(t))

	output, err := h.Execute(context.Background(), &Input{Profile: baselineProfile()})
	require.NoError(t, err)
	assert.Equal(t, []string{"Pool"}, output.RecommendedFacilities)
	assert.Equal(t, "postgres", output.CatalogSource)
	assert.NoError(t, dbMock.ExpectationsWereMet())
	assert.NoError(t, redisMock.ExpectationsWereMet())
}

func TestExecute_CacheLifecycle(t *testing.T) {
	srv := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: srv.Addr()})
	t.Cleanup(func() { client.Close() })

	db, dbMock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	dbMock.ExpectQuery("SELECT name, cohort_range FROM facilities ORDER BY position").
		WillReturnRows(sqlmock.NewRows([]string{"name", "cohort_range"}).
			AddRow("Pool", "30-40"))

	cfg := LoadConfig()
	cfg.Source = "postgres"

	h := NewHandler(cfg, &database.PostgresClient{DB: db}, &database.RedisClient{Client: client}, logger.NewTestLogger(t))

	// First run reads postgres and populates the cache with a TTL.
	output, err := h.Execute(context.Background(), &Input{Profile: baselineProfile()})
	require.NoError(t, err)
	assert.Equal(t, "postgres", output.CatalogSource)
	require.True(t, srv.Exists(CatalogCacheKey))
	assert.Equal(t, cfg.CacheTTL, srv.TTL(CatalogCacheKey))

	// Second run is served from the cache, no second query.
	output, err = h.Execute(context.Background(), &Input{Profile: baselineProfile()})
	require.NoError(t, err)
	assert.Equal(t, "cache", output.CatalogSource)
	assert.NoError(t, dbMock.ExpectationsWereMet())

	// Expired cache falls through to postgres again.
	srv.FastForward(cfg.CacheTTL + time.Second)
	dbMock.ExpectQuery("SELECT name, cohort_range FROM facilities ORDER BY position").
		WillReturnRows(sqlmock.NewRows([]string{"name", "cohort_range"}).
			AddRow("Pool", "30-40"))

	output, err = h.Execute(context.Background(), &Input{Profile: baselineProfile()})
	require.NoError(t, err)
	assert.Equal(t, "postgres", output.CatalogSource)
	assert.NoError(t, dbMock.ExpectationsWereMet())
}

func TestExecute_PostgresFailureFallsBackToConfig(t *testing.T) {
	db, dbMock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	dbMock.ExpectQuery("SELECT name, cohort_range FROM facilities ORDER BY position").
		WillReturnError(assert.AnError)

	cfg := LoadConfig()
	cfg.Source = "postgres"

	h := NewHandler(cfg, &database.PostgresClient{DB: db}, nil, logger.NewTestLogger(t))

	output, err := h.Execute(context.Background(), &Input{Profile: baselineProfile()})
	require.NoError(t, err)
	assert.Equal(t, "config", output.CatalogSource)
	assert.NoError(t, dbMock.ExpectationsWereMet())
}

func TestExecute_CatalogUnavailable(t *testing.T) {
	db, dbMock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	dbMock.ExpectQuery("SELECT name, cohort_range FROM facilities ORDER BY position").
		WillReturnError(assert.AnError)

	cfg := LoadConfig()
	cfg.Source = "postgres"
	cfg.Entries = nil

	h := NewHandler(cfg, &database.PostgresClient{DB: db}, nil, logger.NewTestLogger(t))

	output, err := h.Execute(context.Background(), &Input{Profile: baselineProfile()})
	require.Error(t, err)
	assert.Nil(t, output)
	assert.ErrorIs(t, err, ErrCatalogUnavailable)
}

func TestExecute_SkippedEntriesReported(t *testing.T) {
	h := NewHandler(LoadConfig(), nil, nil, logger.NewTestLogger(t))

	output, err := h.Execute(context.Background(), &Input{
		Profile: baselineProfile(),
		Catalog: []models.CatalogEntry{
			{Name: "Pool", CohortRange: "30-40"},
			{Name: "Broken", CohortRange: "x-y"},
		},
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"Pool"}, output.RecommendedFacilities)
	require.Len(t, output.SkippedEntries, 1)
	assert.Equal(t, "Broken", output.SkippedEntries[0].Name)
}

func TestExecute_MissingProfile(t *testing.T) {
	h := NewHandler(LoadConfig(), nil, nil, logger.NewTestLogger(t))

	output, err := h.Execute(context.Background(), &Input{})
	require.Error(t, err)
	assert.Nil(t, output)
	assert.ErrorIs(t, err, ErrMissingProfile)
}
