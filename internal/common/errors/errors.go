// internal/common/errors/errors.go
package errors

import (
	"fmt"
	"time"
)

// ErrorCode represents standardized internal error codes.
type ErrorCode string

const (
	// Catalog errors. A single bad entry is recovered locally by the
	// matcher; these codes cover the cases that escalate to the job level.
	ErrCodeCatalogUnavailable  ErrorCode = "CATALOG_UNAVAILABLE"
	ErrCodeCatalogEntryInvalid ErrorCode = "CATALOG_ENTRY_INVALID"
	ErrCodeCatalogQueryTimeout ErrorCode = "CATALOG_QUERY_TIMEOUT"
	ErrCodeInvalidQueryType    ErrorCode = "INVALID_QUERY_TYPE"

	// Profile errors.
	ErrCodeProfileParseFailed      ErrorCode = "PROFILE_PARSE_FAILED"
	ErrCodeProfileValidationFailed ErrorCode = "PROFILE_VALIDATION_FAILED"

	// Pipeline fallback.
	ErrCodeRecommendationFailed ErrorCode = "RECOMMENDATION_FAILED"
)

// StandardError represents a structured application error.
type StandardError struct {
	Code      ErrorCode              `json:"code"`
	Message   string                 `json:"message"`
	Details   string                 `json:"details,omitempty"`
	Retryable bool                   `json:"retryable"`
	Metadata  map[string]interface{} `json:"metadata,omitempty"`
	Timestamp time.Time              `json:"timestamp"`
}

func (e *StandardError) Error() string {
	return fmt.Sprintf("StandardError[%s]: %s", e.Code, e.Message)
}

// BPMNError represents an error thrown to the workflow engine.
type BPMNError struct {
	Code           string                 `json:"code"`
	Message        string                 `json:"message"`
	Details        string                 `json:"details,omitempty"`
	Retryable      bool                   `json:"retryable"`
	Retries        int                    `json:"retries"`
	ErrorVariables map[string]interface{} `json:"errorVariables,omitempty"`
}

func (e *BPMNError) Error() string {
	return fmt.Sprintf("BPMNError[%s]: %s", e.Code, e.Message)
}

// ToErrorVariables returns a map suitable for job fail variables.
func (e *BPMNError) ToErrorVariables() map[string]interface{} {
	vars := map[string]interface{}{
		"errorCode":    e.Code,
		"errorMessage": e.Message,
		"errorDetails": e.Details,
		"retryable":    e.Retryable,
	}

	for k, v := range e.ErrorVariables {
		vars[k] = v
	}

	return vars
}

// NewCatalogUnavailableError signals that no catalog source yielded any
// entries. The whole operation fails; retry policy is the orchestration's
// call, not the worker's.
func NewCatalogUnavailableError(err error) *StandardError {
	details := ""
	if err != nil {
		details = err.Error()
	}
	return &StandardError{
		Code:      ErrCodeCatalogUnavailable,
		Message:   "Facility catalog could not be obtained",
		Details:   details,
		Retryable: true,
		Timestamp: time.Now().UTC(),
	}
}

// NewCatalogEntryInvalidError marks one catalog entry as unparseable.
// Callers recover locally: skip the entry, keep the rest.
func NewCatalogEntryInvalidError(name, reason string) *StandardError {
	return &StandardError{
		Code:      ErrCodeCatalogEntryInvalid,
		Message:   "Catalog entry has an unparseable eligibility range",
		Details:   fmt.Sprintf("entry: %s, reason: %s", name, reason),
		Retryable: false,
		Metadata:  map[string]interface{}{"entry": name},
		Timestamp: time.Now().UTC(),
	}
}

// NewCatalogQueryTimeoutError creates a retryable catalog query timeout.
func NewCatalogQueryTimeoutError(err error) *StandardError {
	return &StandardError{
		Code:      ErrCodeCatalogQueryTimeout,
		Message:   "Catalog query exceeded its deadline",
		Details:   err.Error(),
		Retryable: true,
		Timestamp: time.Now().UTC(),
	}
}

// NewInvalidQueryTypeError creates a non-retryable query dispatch error.
func NewInvalidQueryTypeError(queryType string) *StandardError {
	return &StandardError{
		Code:      ErrCodeInvalidQueryType,
		Message:   "Unknown query type",
		Details:   fmt.Sprintf("queryType: %s", queryType),
		Retryable: false,
		Timestamp: time.Now().UTC(),
	}
}

// NewProfileParseFailedError creates a non-retryable input parse error.
func NewProfileParseFailedError(err error) *StandardError {
	return &StandardError{
		Code:      ErrCodeProfileParseFailed,
		Message:   "User profile could not be parsed from job variables",
		Details:   err.Error(),
		Retryable: false,
		Timestamp: time.Now().UTC(),
	}
}

// NewProfileValidationFailedError creates a non-retryable validation error.
func NewProfileValidationFailedError(details string) *StandardError {
	return &StandardError{
		Code:      ErrCodeProfileValidationFailed,
		Message:   "User profile failed domain validation",
		Details:   details,
		Retryable: false,
		Timestamp: time.Now().UTC(),
	}
}

// NewRecommendationFailedError wraps an unexpected pipeline failure.
func NewRecommendationFailedError(err error) *StandardError {
	return &StandardError{
		Code:      ErrCodeRecommendationFailed,
		Message:   "Recommendation pipeline failed",
		Details:   err.Error(),
		Retryable: false,
		Timestamp: time.Now().UTC(),
	}
}

// ConvertToBPMNError maps a StandardError to its BPMN form.
func ConvertToBPMNError(e *StandardError) *BPMNError {
	return &BPMNError{
		Code:      string(e.Code),
		Message:   e.Message,
		Details:   e.Details,
		Retryable: e.Retryable,
		Retries:   GetRetryCount(e.Code),
		ErrorVariables: map[string]interface{}{
			"failedAt": e.Timestamp.Format(time.RFC3339),
		},
	}
}

// GetRetryCount returns how many times a job failing with the given code
// should be retried before the error reaches the workflow.
func GetRetryCount(code ErrorCode) int {
	switch code {
	case ErrCodeCatalogUnavailable, ErrCodeCatalogQueryTimeout:
		return 2
	default:
		return 0
	}
}

// GetErrorCategory groups codes for logging and metrics labels.
func GetErrorCategory(code ErrorCode) string {
	switch code {
	case ErrCodeCatalogUnavailable, ErrCodeCatalogEntryInvalid,
		ErrCodeCatalogQueryTimeout, ErrCodeInvalidQueryType:
		return "catalog"
	case ErrCodeProfileParseFailed, ErrCodeProfileValidationFailed:
		return "profile"
	default:
		return "pipeline"
	}
}
