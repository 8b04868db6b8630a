// Package retry provides retry policy implementation
package retry

import (
	"errors"
	"fmt"
	"time"

	"github.com/davils-com/kore/pkg/types"
)

// RetryCondition is a function that determines whether an error is retryable
type RetryCondition func(error) bool

// Policy decides whether a failed attempt is retried and how long to wait
// before the next one. A Policy keeps no state between calls, so a single
// instance can be shared across concurrent retry loops.
type Policy struct {
	maxAttempts int
	strategy    BackoffStrategy
	retryable   []error
	condition   RetryCondition
}

// NewPolicy creates a retry policy. maxAttempts must be at least 1 and
// strategy must be non-nil. With no options the policy retries on any
// failure until the attempt cap is reached.
func NewPolicy(maxAttempts int, strategy BackoffStrategy, opts ...PolicyOption) (*Policy, error) {
	if maxAttempts < 1 {
		return nil, fmt.Errorf("%w: got %d", types.ErrInvalidMaxAttempts, maxAttempts)
	}
	if strategy == nil {
		return nil, errors.New("backoff strategy must not be nil")
	}

	policy := &Policy{
		maxAttempts: maxAttempts,
		strategy:    strategy,
	}

	for _, opt := range opts {
		opt(policy)
	}

	return policy, nil
}

// ShouldRetry reports whether another attempt should follow the given
// failure. attempt is 1-based. When a retry condition is set it decides;
// otherwise a non-empty allow-list requires the failure to match one of its
// targets via errors.Is, so wrapped failures count as matching.
func (p *Policy) ShouldRetry(err error, attempt int) bool {
	if attempt >= p.maxAttempts {
		return false
	}

	if p.condition != nil {
		return p.condition(err)
	}

	if len(p.retryable) == 0 {
		return true
	}

	for _, target := range p.retryable {
		if errors.Is(err, target) {
			return true
		}
	}

	return false
}

// NextDelay returns the delay before the next attempt, delegating to the
// wrapped backoff strategy
func (p *Policy) NextDelay(attempt int) time.Duration {
	return p.strategy.NextDelay(attempt)
}

// MaxAttempts returns the maximum attempt count
func (p *Policy) MaxAttempts() int {
	return p.maxAttempts
}

// PolicyOption is a configuration option for retry policies
type PolicyOption func(*Policy)

// WithRetryableErrors sets the allow-list of retryable failures. Matching
// uses errors.Is, so a failure wrapping a listed target is retryable.
func WithRetryableErrors(targets ...error) PolicyOption {
	return func(p *Policy) {
		p.retryable = append(p.retryable, targets...)
	}
}

// WithRetryIf sets a custom retry condition; it takes precedence over the
// allow-list. Use WithRetryIf(types.IsRetryable) to retry only errors
// carrying the RetryableError marker.
func WithRetryIf(condition RetryCondition) PolicyOption {
	return func(p *Policy) {
		p.condition = condition
	}
}
