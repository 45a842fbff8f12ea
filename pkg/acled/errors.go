package acled

import (
	"errors"
	"fmt"
)

// APIError is a structured failure answer from the API: the request
// completed but the service refused it (bad key, unknown parameter, ...).
type APIError struct {
	Message string `json:"message"`
}

// Error implements the error interface.
func (e *APIError) Error() string {
	return fmt.Sprintf("API returned an error: %s", e.Message)
}

// ParseError reports a record field whose raw string value did not match
// its expected typed format. Conversion stops at the first failing field,
// so Field always names exactly one offender.
type ParseError struct {
	Field string
	Err   error
}

// Error implements the error interface.
func (e *ParseError) Error() string {
	return fmt.Sprintf("parsing record field %q: %v", e.Field, e.Err)
}

// Unwrap returns the underlying parse failure.
func (e *ParseError) Unwrap() error {
	return e.Err
}

// ErrEnvelope marks a response that breaks the API contract itself: a body
// matching neither the success nor the failure envelope shape, or an
// envelope whose count does not agree with its payload. These are defects
// in the assumed contract, not recoverable runtime conditions, and are
// surfaced distinctly from APIError and ParseError.
var ErrEnvelope = errors.New("malformed response envelope")

// Static errors for configuration validation.
var (
	ErrConfigRequired = errors.New("config is required")
	ErrKeyRequired    = errors.New("API key is required")
	ErrEmailRequired  = errors.New("email is required")
	ErrUnknownRegion  = errors.New("unknown region name")
)

// IsAPIError checks if the error is a structured failure from the API.
func IsAPIError(err error) bool {
	apiErr := &APIError{}

	return errors.As(err, &apiErr)
}

// IsParseError checks if the error is a field-scoped record parse failure.
func IsParseError(err error) bool {
	parseErr := &ParseError{}

	return errors.As(err, &parseErr)
}

// IsEnvelopeViolation checks if the error is a response envelope contract
// violation.
func IsEnvelopeViolation(err error) bool {
	return errors.Is(err, ErrEnvelope)
}
