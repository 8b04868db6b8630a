// Package retry provides one-call helpers for the common policies
package retry

import (
	"context"
	"time"
)

// Fixed retries fn up to maxAttempts times with a constant delay between
// attempts.
func Fixed[T any](ctx context.Context, maxAttempts int, delay time.Duration, fn Func[T]) (T, error) {
	var zero T
	policy, err := NewPolicy(maxAttempts, NewFixedBackoff(delay))
	if err != nil {
		return zero, err
	}
	return Execute(NewExecutor(policy), ctx, fn)
}

// Linear retries fn up to maxAttempts times, growing the delay by increment
// after each attempt.
func Linear[T any](ctx context.Context, maxAttempts int, initialDelay, increment time.Duration, fn Func[T], opts ...BackoffOption) (T, error) {
	var zero T
	policy, err := NewPolicy(maxAttempts, NewLinearBackoff(initialDelay, increment, opts...))
	if err != nil {
		return zero, err
	}
	return Execute(NewExecutor(policy), ctx, fn)
}

// Exponential retries fn up to maxAttempts times, doubling the delay after
// each attempt unless WithMultiplier overrides the factor.
func Exponential[T any](ctx context.Context, maxAttempts int, initialDelay time.Duration, fn Func[T], opts ...BackoffOption) (T, error) {
	var zero T
	policy, err := NewPolicy(maxAttempts, NewExponentialBackoff(initialDelay, opts...))
	if err != nil {
		return zero, err
	}
	return Execute(NewExecutor(policy), ctx, fn)
}

// FixedBlocking is the blocking counterpart of Fixed
func FixedBlocking[T any](maxAttempts int, delay time.Duration, fn BlockingFunc[T]) (T, error) {
	var zero T
	policy, err := NewPolicy(maxAttempts, NewFixedBackoff(delay))
	if err != nil {
		return zero, err
	}
	return ExecuteBlocking(NewExecutor(policy), fn)
}

// LinearBlocking is the blocking counterpart of Linear
func LinearBlocking[T any](maxAttempts int, initialDelay, increment time.Duration, fn BlockingFunc[T], opts ...BackoffOption) (T, error) {
	var zero T
	policy, err := NewPolicy(maxAttempts, NewLinearBackoff(initialDelay, increment, opts...))
	if err != nil {
		return zero, err
	}
	return ExecuteBlocking(NewExecutor(policy), fn)
}

// ExponentialBlocking is the blocking counterpart of Exponential
func ExponentialBlocking[T any](maxAttempts int, initialDelay time.Duration, fn BlockingFunc[T], opts ...BackoffOption) (T, error) {
	var zero T
	policy, err := NewPolicy(maxAttempts, NewExponentialBackoff(initialDelay, opts...))
	if err != nil {
		return zero, err
	}
	return ExecuteBlocking(NewExecutor(policy), fn)
}
