package recommendation

import "sportrec-workers/internal/models"

// Score maps a user profile to its cohort: a fixed, additive rule table
// applied in order over a running total. Deterministic and side-effect
// free; same profile always yields the same cohort.
//
// The function performs no domain validation. Out-of-range enum values
// (say fitness_level 99) are scored as-is and simply land in an unusual
// cohort; rejecting them is the transport boundary's job. Negative
// cohorts are valid output, not an error.
func Score(p *models.UserProfile) int {
	cohort := 0

	cohort += p.FitnessLevel * 10
	cohort += p.AgeCategory

	if p.TrainingGoal == 4 && p.FitnessLevel == 3 {
		cohort += 20
	}
	if p.HealthStatus == 3 {
		cohort -= 10
	}

	if p.TrainingFrequency >= 4 {
		cohort += 5
	}
	if (p.TrainingType == 1 || p.TrainingType == 2) && p.HealthStatus == 1 {
		cohort += 5
	}

	return cohort
}
