// internal/workers/recommendation/determine-cohort/models.go
package determinecohort

import "sportrec-workers/internal/models"

type Input struct {
	Profile *models.UserProfile `json:"profile"`
}

type Output struct {
	RequestID string `json:"requestId"`
	Cohort    int    `json:"cohort"`
}
