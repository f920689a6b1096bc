// ABOUTME: Custom error types for the core business logic
// ABOUTME: Models upstream API failures as a closed set of tagged variants

package errors

import (
	"errors"
	"fmt"
)

// NotFoundError indicates the upstream resource does not exist (HTTP 404).
// It is never retried.
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

// RateLimitError indicates the upstream API rate limit was exhausted and
// all retry attempts were consumed. ResetTime carries the upstream
// X-RateLimit-Reset header value, or "unknown" when absent.
type RateLimitError struct {
	ResetTime string
}

// Error implements the error interface
func (e *RateLimitError) Error() string {
	return fmt.Sprintf("rate limit exceeded, reset time: %s", e.ResetTime)
}

// TimeoutError indicates the upstream request timed out on every attempt.
type TimeoutError struct {
	URL string
}

// Error implements the error interface
func (e *TimeoutError) Error() string {
	return fmt.Sprintf("request to %s timed out after multiple attempts", e.URL)
}

// ExternalAPIError represents a non-retryable error status from an external
// API, or a 5xx that survived the full retry budget.
type ExternalAPIError struct {
	StatusCode int
	API        string
}

// Error implements the error interface
func (e *ExternalAPIError) Error() string {
	return fmt.Sprintf("external API error from %s: %d", e.API, e.StatusCode)
}

// RetriesExhaustedError is a defensive fallback for the retry loop exiting
// without a terminal classification. It should be unreachable.
type RetriesExhaustedError struct {
	Attempts int
}

// Error implements the error interface
func (e *RetriesExhaustedError) Error() string {
	return fmt.Sprintf("maximum retries exceeded after %d attempts", e.Attempts)
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

// IsRateLimit checks if an error is a RateLimitError
func IsRateLimit(err error) bool {
	var rateLimitErr *RateLimitError
	return errors.As(err, &rateLimitErr)
}

// IsTimeout checks if an error is a TimeoutError
func IsTimeout(err error) bool {
	var timeoutErr *TimeoutError
	return errors.As(err, &timeoutErr)
}

// IsExternalAPI checks if an error is an ExternalAPIError
func IsExternalAPI(err error) bool {
	var apiErr *ExternalAPIError
	return errors.As(err, &apiErr)
}

// IsRetriesExhausted checks if an error is a RetriesExhaustedError
func IsRetriesExhausted(err error) bool {
	var exhaustedErr *RetriesExhaustedError
	return errors.As(err, &exhaustedErr)
}

// WrapError wraps an error with additional context
func WrapError(err error, message string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", message, err)
}
