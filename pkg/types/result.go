package types

import "time"

// Result carries the outcome of an asynchronous operation
type Result[T any] struct {
	// Value is the result value on success
	Value T

	// Error is the failure, nil on success
	Error error

	// Duration is the total wall-clock time the operation took
	Duration time.Duration
}
