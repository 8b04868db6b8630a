// Package retry provides backoff algorithm implementations
package retry

import (
	"math"
	"math/rand"
	"time"
)

// BackoffStrategy defines the backoff strategy interface. Implementations
// are pure functions of the 1-based attempt number and never block.
type BackoffStrategy interface {
	// NextDelay calculates the delay before the next attempt
	NextDelay(attempt int) time.Duration
}

// maxDuration is the largest representable delay; saturating computations
// clamp here when no explicit cap is configured.
const maxDuration = time.Duration(math.MaxInt64)

// FixedBackoff implements fixed backoff strategy
type FixedBackoff struct {
	delay  time.Duration
	jitter JitterFunc
}

// NewFixedBackoff creates a fixed backoff strategy
func NewFixedBackoff(delay time.Duration, opts ...BackoffOption) *FixedBackoff {
	if delay < 0 {
		delay = 0
	}

	b := &FixedBackoff{
		delay: delay,
	}

	for _, opt := range opts {
		opt.applyToFixed(b)
	}

	return b
}

// NextDelay calculates the delay before the next attempt
func (b *FixedBackoff) NextDelay(attempt int) time.Duration {
	delay := b.delay
	if b.jitter != nil {
		delay = b.jitter(delay)
	}
	return clampDelay(delay, 0)
}

// LinearBackoff implements linear backoff strategy
type LinearBackoff struct {
	initialDelay time.Duration
	increment    time.Duration
	maxDelay     time.Duration
	jitter       JitterFunc
}

// NewLinearBackoff creates a linear backoff strategy growing by increment
// on each attempt. Uncapped unless WithMaxDelay is given.
func NewLinearBackoff(initialDelay, increment time.Duration, opts ...BackoffOption) *LinearBackoff {
	if initialDelay < 0 {
		initialDelay = 0
	}
	if increment < 0 {
		increment = 0
	}

	b := &LinearBackoff{
		initialDelay: initialDelay,
		increment:    increment,
	}

	for _, opt := range opts {
		opt.applyToLinear(b)
	}

	return b
}

// NextDelay calculates the delay before the next attempt
func (b *LinearBackoff) NextDelay(attempt int) time.Duration {
	if attempt < 1 {
		attempt = 1
	}

	delay := b.initialDelay + time.Duration(attempt-1)*b.increment
	// int64 wrap means the true value exceeded the representable range
	if delay < b.initialDelay {
		delay = maxDuration
	}

	if b.jitter != nil {
		delay = b.jitter(delay)
	}

	return clampDelay(delay, b.maxDelay)
}

// ExponentialBackoff implements exponential backoff strategy
type ExponentialBackoff struct {
	initialDelay time.Duration
	multiplier   float64
	maxDelay     time.Duration
	jitter       JitterFunc
}

// NewExponentialBackoff creates an exponential backoff strategy with a
// default multiplier of 2.0. Uncapped unless WithMaxDelay is given; growth
// saturates instead of overflowing.
func NewExponentialBackoff(initialDelay time.Duration, opts ...BackoffOption) *ExponentialBackoff {
	if initialDelay < 0 {
		initialDelay = 0
	}

	b := &ExponentialBackoff{
		initialDelay: initialDelay,
		multiplier:   2.0,
	}

	for _, opt := range opts {
		opt.applyToExponential(b)
	}

	return b
}

// NextDelay calculates the delay before the next attempt
func (b *ExponentialBackoff) NextDelay(attempt int) time.Duration {
	if attempt < 1 {
		attempt = 1
	}

	var delay time.Duration
	grown := float64(b.initialDelay) * math.Pow(b.multiplier, float64(attempt-1))
	switch {
	case math.IsNaN(grown) || grown < 0:
		delay = 0
	case grown >= float64(maxDuration):
		delay = maxDuration
	default:
		delay = time.Duration(grown)
	}

	if b.jitter != nil {
		delay = b.jitter(delay)
	}

	return clampDelay(delay, b.maxDelay)
}

// clampDelay bounds delay to [0, max]; max <= 0 means uncapped.
func clampDelay(delay, max time.Duration) time.Duration {
	if delay < 0 {
		return 0
	}
	if max > 0 && delay > max {
		return max
	}
	return delay
}

// JitterFunc jitter function type
type JitterFunc func(time.Duration) time.Duration

// FullJitter full jitter function - random within [0, delay] range
func FullJitter(delay time.Duration) time.Duration {
	if delay <= 0 {
		return 0
	}
	return time.Duration(rand.Int63n(int64(delay)))
}

// EqualJitter equal jitter function - delay/2 + random(0, delay/2)
func EqualJitter(delay time.Duration) time.Duration {
	if delay <= 1 {
		return delay
	}
	half := delay / 2
	return half + time.Duration(rand.Int63n(int64(half)))
}

// BackoffOption backoff strategy configuration option
type BackoffOption interface {
	applyToFixed(*FixedBackoff)
	applyToLinear(*LinearBackoff)
	applyToExponential(*ExponentialBackoff)
}

type backoffOption struct {
	multiplier *float64
	maxDelay   *time.Duration
	jitter     JitterFunc
}

func (o *backoffOption) applyToFixed(b *FixedBackoff) {
	if o.jitter != nil {
		b.jitter = o.jitter
	}
}

func (o *backoffOption) applyToLinear(b *LinearBackoff) {
	if o.maxDelay != nil {
		b.maxDelay = *o.maxDelay
	}
	if o.jitter != nil {
		b.jitter = o.jitter
	}
}

func (o *backoffOption) applyToExponential(b *ExponentialBackoff) {
	if o.multiplier != nil && *o.multiplier > 0 {
		b.multiplier = *o.multiplier
	}
	if o.maxDelay != nil {
		b.maxDelay = *o.maxDelay
	}
	if o.jitter != nil {
		b.jitter = o.jitter
	}
}

// WithMultiplier sets the growth factor (exponential backoff only)
func WithMultiplier(multiplier float64) BackoffOption {
	return &backoffOption{multiplier: &multiplier}
}

// WithMaxDelay sets maximum delay time
func WithMaxDelay(maxDelay time.Duration) BackoffOption {
	return &backoffOption{maxDelay: &maxDelay}
}

// WithJitter sets jitter function
func WithJitter(jitter JitterFunc) BackoffOption {
	return &backoffOption{jitter: jitter}
}
