// Package types defines error types
package types

import (
	"errors"
	"time"
)

// Predefined errors
var (
	// ErrInvalidMaxAttempts indicates a retry policy was constructed with
	// fewer than one allowed attempt
	ErrInvalidMaxAttempts = errors.New("max attempts must be at least 1")

	// ErrUnavailable indicates a dependency is temporarily unavailable
	ErrUnavailable = errors.New("resource temporarily unavailable")

	// ErrTimeout indicates operation timeout
	ErrTimeout = errors.New("operation timeout")
)

// RetryableError represents a retryable error
type RetryableError struct {
	// Err is the underlying error
	Err error

	// Retryable indicates whether the error is retryable
	Retryable bool

	// RetryAfter is the suggested retry delay
	RetryAfter time.Duration
}

// Error implements the error interface
func (e *RetryableError) Error() string {
	return e.Err.Error()
}

// Unwrap returns the underlying error
func (e *RetryableError) Unwrap() error {
	return e.Err
}

// NewRetryableError marks err as retryable
func NewRetryableError(err error) *RetryableError {
	return &RetryableError{Err: err, Retryable: true}
}

// IsRetryable checks if an error is marked retryable
func IsRetryable(err error) bool {
	var retryableErr *RetryableError
	if errors.As(err, &retryableErr) {
		return retryableErr.Retryable
	}
	return false
}

// GetRetryDelay returns the suggested retry delay carried by the error, if any
func GetRetryDelay(err error) time.Duration {
	var retryableErr *RetryableError
	if errors.As(err, &retryableErr) {
		return retryableErr.RetryAfter
	}
	return 0
}
