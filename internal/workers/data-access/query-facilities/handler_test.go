// internal/workers/data-access/query-facilities/handler_test.go
package queryfacilities

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sportrec-workers/internal/common/logger"
	"sportrec-workers/internal/models"
)

func createTestConfig() *Config {
	return &Config{
		Timeout: 5 * time.Second,
	}
}

var playgroundColumns = []string{
	"id", "district", "site_type", "name", "address",
	"photo_url", "model_3d_url", "additional_characteristics",
	"required_fitness_level", "is_group_activity",
	"requires_teamwork", "is_accessible_with_limitations",
}

func TestHandler_Execute_Success(t *testing.T) {
	tests := []struct {
		name           string
		input          *Input
		mockQuery      func(mock sqlmock.Sqlmock)
		validateOutput func(t *testing.T, output *Output)
	}{
		{
			name:  "facility catalog",
			input: &Input{QueryType: string(models.QueryTypeFacilityCatalog)},
			mockQuery: func(mock sqlmock.Sqlmock) {
				rows := sqlmock.NewRows([]string{"name", "cohort_range"}).
					AddRow("Fitness Center", "20-50").
					AddRow("Open Stadium", "10-40")
				mock.ExpectQuery(`SELECT name, cohort_range FROM facilities ORDER BY position`).
					WillReturnRows(rows)
			},
			validateOutput: func(t *testing.T, output *Output) {
				assert.Equal(t, 2, output.RowCount)
				assert.GreaterOrEqual(t, output.QueryExecutionTime, int64(0))

				data := output.Data.([]map[string]interface{})
				require.Len(t, data, 2)
				assert.Equal(t, "Fitness Center", data[0]["name"])
				assert.Equal(t, "20-50", data[0]["cohortRange"])
			},
		},
		{
			name: "playgrounds by district",
			input: &Input{
				QueryType: string(models.QueryTypePlaygroundsByDistrict),
				District:  "Central",
			},
			mockQuery: func(mock sqlmock.Sqlmock) {
				rows := sqlmock.NewRows(playgroundColumns).
					AddRow(
						int64(1), "Central", "outdoor gym", "Riverside Workout Area",
						"12 Embankment St", "https://img.example/1.jpg", nil, "street workout bars",
						"2", true, false, true,
					).
					AddRow(
						int64(2), "Central", "stadium", "Central Stadium",
						"1 Stadium Sq", nil, nil, nil,
						nil, true, true, false,
					)
				mock.ExpectQuery(`SELECT id, district, site_type, name, address, photo_url, model_3d_url, additional_characteristics, required_fitness_level, is_group_activity, requires_teamwork, is_accessible_with_limitations FROM sports_playgrounds WHERE district = \$1 ORDER BY name`).
					WithArgs("Central").
					WillReturnRows(rows)
			},
			validateOutput: func(t *testing.T, output *Output) {
				assert.Equal(t, 2, output.RowCount)

				data := output.Data.([]models.SportsPlayground)
				require.Len(t, data, 2)
				assert.Equal(t, "Riverside Workout Area", data[0].Name)
				assert.Equal(t, "street workout bars", data[0].AdditionalCharacteristics)
				assert.Equal(t, "Central Stadium", data[1].Name)
				assert.Empty(t, data[1].PhotoURL)
			},
		},
		{
			name: "playground details",
			input: &Input{
				QueryType:    string(models.QueryTypePlaygroundDetails),
				PlaygroundID: 7,
			},
			mockQuery: func(mock sqlmock.Sqlmock) {
				rows := sqlmock.NewRows(playgroundColumns).
					AddRow(
						int64(7), "North", "swimming pool", "City Pool",
						"3 Lake Rd", "https://img.example/7.jpg", "https://models.example/7.glb", nil,
						"1", false, false, true,
					)
				mock.ExpectQuery(`SELECT id, district, site_type, name, address, photo_url, model_3d_url, additional_characteristics, required_fitness_level, is_group_activity, requires_teamwork, is_accessible_with_limitations FROM sports_playgrounds WHERE id = \$1`).
					WithArgs(int64(7)).
					WillReturnRows(rows)
			},
			validateOutput: func(t *testing.T, output *Output) {
				assert.Equal(t, 1, output.RowCount)

				p := output.Data.(models.SportsPlayground)
				assert.Equal(t, int64(7), p.ID)
				assert.Equal(t, "City Pool", p.Name)
				assert.Equal(t, "https://models.example/7.glb", p.Model3DURL)
				assert.True(t, p.IsAccessibleWithLimitations)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock, err := sqlmock.New()
			require.NoError(t, err)
			defer db.Close()

			tt.mockQuery(mock)

			h := NewHandler(createTestConfig(), db, logger.NewTestLogger(t))
			output, err := h.Execute(context.Background(), tt.input)
			require.NoError(t, err)
			tt.validateOutput(t, output)
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestHandler_Execute_InvalidQueryType(t *testing.T) {
	db, _, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	h := NewHandler(createTestConfig(), db, logger.NewTestLogger(t))
	output, err := h.Execute(context.Background(), &Input{QueryType: "drop_everything"})
	require.Error(t, err)
	assert.Nil(t, output)
	assert.ErrorIs(t, err, ErrInvalidQueryType)
}

func TestHandler_Execute_MissingParam(t *testing.T) {
	db, _, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	h := NewHandler(createTestConfig(), db, logger.NewTestLogger(t))
	output, err := h.Execute(context.Background(), &Input{
		QueryType: string(models.QueryTypePlaygroundsByDistrict),
	})
	require.Error(t, err)
	assert.Nil(t, output)
	assert.ErrorIs(t, err, ErrQueryExecutionFailed)
}

func TestHandler_Execute_QueryError(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery(`SELECT name, cohort_range FROM facilities`).
		WillReturnError(assert.AnError)

	h := NewHandler(createTestConfig(), db, logger.NewTestLogger(t))
	output, err := h.Execute(context.Background(), &Input{
		QueryType: string(models.QueryTypeFacilityCatalog),
	})
	require.Error(t, err)
	assert.Nil(t, output)
	assert.ErrorIs(t, err, ErrQueryExecutionFailed)
}

func TestHandler_Execute_Timeout(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery(`SELECT name, cohort_range FROM facilities`).
		WillDelayFor(100 * time.Millisecond).
		WillReturnRows(sqlmock.NewRows([]string{"name", "cohort_range"}))

	h := NewHandler(&Config{Timeout: 10 * time.Millisecond}, db, logger.NewTestLogger(t))

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()

	output, err := h.Execute(ctx, &Input{
		QueryType: string(models.QueryTypeFacilityCatalog),
	})
	require.Error(t, err)
	assert.Nil(t, output)
	assert.ErrorIs(t, err, ErrQueryTimeout)
}
