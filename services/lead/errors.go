package lead

import (
	"fmt"
	"strings"

	"oficio/models"
)

// ValidationError is returned when a lead submission fails the validation
// gate. It carries the full ValidationState so the API layer can render the
// complete field breakdown.
type ValidationError struct {
	State models.ValidationState
}

func (e *ValidationError) Error() string {
	if len(e.State.MissingFields) > 0 {
		return fmt.Sprintf("lead validation failed: missing %s", strings.Join(e.State.MissingFields, ", "))
	}
	return "lead validation failed"
}

// StatusError is returned for unknown statuses or disallowed transitions.
type StatusError struct {
	Code    string
	Message string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func NewStatusError(msg string) error {
	return &StatusError{
		Code:    "statusError",
		Message: msg,
	}
}
