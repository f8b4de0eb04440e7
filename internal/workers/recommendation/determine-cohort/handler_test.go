// internal/workers/recommendation/determine-cohort/handler_test.go
package determinecohort

import (
	"context"
	"testing"

	"sportrec-workers/internal/common/logger"
	"sportrec-workers/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestHandler(t *testing.T) *Handler {
	t.Helper()
	return NewHandler(LoadConfig(), logger.NewTestLogger(t))
}

func TestExecute_CohortValues(t *testing.T) {
	tests := []struct {
		name    string
		profile *models.UserProfile
		want    int
	}{
		{
			name: "baseline beginner",
			profile: &models.UserProfile{
				FitnessLevel: 1,
				AgeCategory:  1,
			},
			want: 11,
		},
		{
			name: "all bonuses stacked",
			profile: &models.UserProfile{
				FitnessLevel:      3,
				AgeCategory:       4,
				TrainingGoal:      4,
				TrainingType:      1,
				HealthStatus:      1,
				TrainingFrequency: 5,
			},
			want: 64,
		},
		{
			name: "health penalty",
			profile: &models.UserProfile{
				FitnessLevel: 1,
				AgeCategory:  1,
				HealthStatus: 3,
			},
			want: 1,
		},
	}

	h := newTestHandler(t)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			output, err := h.Execute(context.Background(), &Input{Profile: tt.profile})
			require.NoError(t, err)
			assert.Equal(t, tt.want, output.Cohort)
			assert.NotEmpty(t, output.RequestID)
		})
	}
}

func TestExecute_MissingProfile(t *testing.T) {
	h := newTestHandler(t)

	output, err := h.Execute(context.Background(), &Input{})
	require.Error(t, err)
	assert.Nil(t, output)
	assert.ErrorIs(t, err, ErrMissingProfile)
}

func TestExecute_RequestIDUnique(t *testing.T) {
	h := newTestHandler(t)
	profile := &models.UserProfile{FitnessLevel: 2, AgeCategory: 2}

	first, err := h.Execute(context.Background(), &Input{Profile: profile})
	require.NoError(t, err)
	second, err := h.Execute(context.Background(), &Input{Profile: profile})
	require.NoError(t, err)

	assert.NotEqual(t, first.RequestID, second.RequestID)
	assert.Equal(t, first.Cohort, second.Cohort)
}
