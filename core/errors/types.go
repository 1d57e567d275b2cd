// ABOUTME: Custom error types for the core business logic
// ABOUTME: Lets the API layer map failures to HTTP status codes without string matching

package errors

import (
	"errors"
	"fmt"
)

// NotFoundError indicates a requested resource does not exist.
type NotFoundError struct {
	Resource string
	ID       string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s not found: %s", e.Resource, e.ID)
}

// ValidationError indicates invalid caller input.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Message)
}

// ExternalAPIError indicates a failure reported by an external API.
// A cache miss is never an error; this type only covers actual fetch
// failures from the geodata or nutrition sources.
type ExternalAPIError struct {
	API        string
	StatusCode int
	Message    string
}

func (e *ExternalAPIError) Error() string {
	return fmt.Sprintf("%s returned %d: %s", e.API, e.StatusCode, e.Message)
}

// IsNotFound reports whether err is a NotFoundError.
func IsNotFound(err error) bool {
	var target *NotFoundError
	return errors.As(err, &target)
}

// IsValidation reports whether err is a ValidationError.
func IsValidation(err error) bool {
	var target *ValidationError
	return errors.As(err, &target)
}

// IsExternalAPI reports whether err is an ExternalAPIError.
func IsExternalAPI(err error) bool {
	var target *ExternalAPIError
	return errors.As(err, &target)
}
