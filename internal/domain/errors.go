package domain

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// ErrValidation is returned by service functions when input fails validation
// (missing field, non-positive days, malformed email).
// Handlers should map this to HTTP 400 Bad Request.
var ErrValidation = errors.New("validation error")

// ErrGeneration wraps every failure of the completion service, whether the
// upstream answered with a non-success status or the call itself faulted.
// Handlers should map this to HTTP 500 with the failure details.
var ErrGeneration = errors.New("generation failed")

// ValidationError lists the request fields that failed validation, keyed by
// their JSON name. errors.Is(err, ErrValidation) reports true for it.
type ValidationError struct {
	Fields map[string]string
}

// NewValidationError returns a ValidationError for a single field.
func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{Fields: map[string]string{field: message}}
}

func (e *ValidationError) Error() string {
	keys := make([]string, 0, len(e.Fields))
	for k := range e.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, k+": "+e.Fields[k])
	}
	return fmt.Sprintf("%s: %s", ErrValidation, strings.Join(parts, "; "))
}

// Is lets errors.Is match a ValidationError against ErrValidation.
func (e *ValidationError) Is(target error) bool {
	return target == ErrValidation
}

// UpstreamError is returned by a completion generator when the external
// service answered but did not report success. Body is the raw response text
// so operators and clients can see what the provider said.
type UpstreamError struct {
	StatusCode int
	Body       string
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("completion service returned status %d: %s", e.StatusCode, e.Body)
}
