// internal/models/profile.go
package models

// UserProfile is the questionnaire payload a recommendation request carries.
// Field names stay in snake_case because external callers already submit
// profiles in that shape.
//
// Only six fields feed the cohort score today: fitness_level, age_category,
// training_goal, health_status, training_frequency and training_type. The
// rest are accepted and passed through unchanged; they are reserved for
// future scoring rules and must not be dropped from the wire contract.
type UserProfile struct {
	FitnessLevel      int      `json:"fitness_level"`       // 1 beginner, 2 intermediate, 3 advanced
	AgeCategory       int      `json:"age_category"`        // 1 child, 2 youth, 3 adult, 4 senior
	TrainingType      int      `json:"training_type"`       // 1 strength, 2 cardio, 3 group, 4 individual
	TrainingGoal      int      `json:"training_goal"`       // 1 health, 2 weight loss, 3 endurance, 4 competition
	SportsFacility    string   `json:"sports_facility"`     // preferred facility type, free text
	GroupOrIndividual int      `json:"group_or_individual"` // 1 group, 2 individual
	HealthStatus      int      `json:"health_status"`       // 1 unrestricted, 2 chronic conditions, 3 reduced load
	TrainingFrequency int      `json:"training_frequency"`  // sessions per week
	TrainingTime      int      `json:"training_time"`       // 1 morning, 2 afternoon, 3 evening
	ChronicDiseases   []string `json:"chronic_diseases,omitempty"`
	Weight            float64  `json:"weight"` // kg
	Height            float64  `json:"height"` // cm
	HealthGroup       *int     `json:"health_group,omitempty"`
	SkillFocus        []int    `json:"skill_focus,omitempty"` // 1 flexibility, 2 coordination
	Cooperation       bool     `json:"cooperation"`
	Budget            *float64 `json:"budget,omitempty"`
}
