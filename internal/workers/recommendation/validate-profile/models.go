// internal/workers/recommendation/validate-profile/models.go
package validateprofile

import (
	"encoding/json"

	"sportrec-workers/internal/models"
)

type Input struct {
	Profile json.RawMessage `json:"profile"`

	// Strict overrides the configured validation mode for one job.
	Strict *bool `json:"strict,omitempty"`
}

type Output struct {
	Valid   bool                `json:"valid"`
	Errors  []string            `json:"validationErrors,omitempty"`
	Profile *models.UserProfile `json:"profile"`
}
