// ABOUTME: Custom error types for the core business logic
// ABOUTME: Provides structured errors for per-source recovery and API responses

package errors

import (
	"errors"
	"fmt"
)

// NotFoundError represents a resource not found error
type NotFoundError struct {
	Resource string
	ID       string
}

// Error implements the error interface
func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s not found: %s", e.Resource, e.ID)
}

// ValidationError represents a validation error
type ValidationError struct {
	Field   string
	Message string
}

// Error implements the error interface
func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation error on field '%s': %s", e.Field, e.Message)
}

// ExternalAPIError represents an error from an external API
type ExternalAPIError struct {
	StatusCode int
	Message    string
	API        string
}

// Error implements the error interface
func (e *ExternalAPIError) Error() string {
	return fmt.Sprintf("external API error from %s: %d - %s", e.API, e.StatusCode, e.Message)
}

// FetchReason classifies why a feed source could not be fetched
type FetchReason string

const (
	// FetchReasonTransport covers DNS, TLS, timeouts and cancellation
	FetchReasonTransport FetchReason = "transport"

	// FetchReasonStatus is a non-2xx response
	FetchReasonStatus FetchReason = "status"

	// FetchReasonBlocked is a soft-block page served with a 2xx status
	FetchReasonBlocked FetchReason = "blocked"

	// FetchReasonRead is a failure while reading the response body
	FetchReasonRead FetchReason = "read"
)

// FetchError is a recoverable failure of one feed source
type FetchError struct {
	Source     string
	Reason     FetchReason
	StatusCode int
	Err        error
}

// Error implements the error interface
func (e *FetchError) Error() string {
	switch {
	case e.Reason == FetchReasonStatus:
		return fmt.Sprintf("fetch %s: %s %d", e.Source, e.Reason, e.StatusCode)
	case e.Err != nil:
		return fmt.Sprintf("fetch %s: %s: %v", e.Source, e.Reason, e.Err)
	default:
		return fmt.Sprintf("fetch %s: %s", e.Source, e.Reason)
	}
}

// Unwrap returns the underlying cause
func (e *FetchError) Unwrap() error {
	return e.Err
}

// ParseError is a structural failure of one feed document
type ParseError struct {
	Source  string
	Message string
	Err     error
}

// Error implements the error interface
func (e *ParseError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("parse %s: %s: %v", e.Source, e.Message, e.Err)
	}
	return fmt.Sprintf("parse %s: %s", e.Source, e.Message)
}

// Unwrap returns the underlying cause
func (e *ParseError) Unwrap() error {
	return e.Err
}

// IsNotFound checks if an error is a NotFoundError
func IsNotFound(err error) bool {
	var notFoundErr *NotFoundError
	return errors.As(err, &notFoundErr)
}

// IsValidation checks if an error is a ValidationError
func IsValidation(err error) bool {
	var validationErr *ValidationError
	return errors.As(err, &validationErr)
}

// IsExternalAPI checks if an error is an ExternalAPIError
func IsExternalAPI(err error) bool {
	var apiErr *ExternalAPIError
	return errors.As(err, &apiErr)
}

// IsBlocked checks if an error is a FetchError caused by a block page
func IsBlocked(err error) bool {
	var fetchErr *FetchError
	return errors.As(err, &fetchErr) && fetchErr.Reason == FetchReasonBlocked
}
