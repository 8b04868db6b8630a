// Package retry provides retry executor implementation
package retry

import (
	"context"
	"sync"
	"time"

	"github.com/davils-com/kore/pkg/types"
)

// Executor drives the attempt loop for a policy. It is safe for concurrent
// use; independent loops share nothing but the read-only policy and the
// executor's counters.
type Executor struct {
	policy  *Policy
	clock   types.Clock
	handler EventHandler

	mu    sync.Mutex
	stats Stats
}

// Func is the context-aware function type to retry
type Func[T any] func(ctx context.Context) (T, error)

// BlockingFunc is the function type retried by ExecuteBlocking
type BlockingFunc[T any] func() (T, error)

// Stats contains retry counters accumulated by an executor
type Stats struct {
	Attempts   int64         // total action invocations
	Retries    int64         // loops that needed more than one attempt
	Successes  int64         // loops that returned a result
	Failures   int64         // loops that gave up with an error
	TotalDelay time.Duration // sum of waited delays
	LastRetry  time.Time     // time the most recent wait was scheduled
}

// EventHandler observes retry events. Handlers must not block; they cannot
// alter the loop's control flow or the propagated error.
type EventHandler interface {
	// OnRetry is called after a failed attempt that will be retried,
	// before the wait
	OnRetry(attempt int, err error, delay time.Duration)
	// OnSuccess is called when an attempt returns a result
	OnSuccess(attempt int)
	// OnGiveUp is called when the loop stops retrying, with the failure
	// that will be propagated
	OnGiveUp(attempt int, err error)
}

// NewExecutor creates a retry executor for the given policy
func NewExecutor(policy *Policy, opts ...ExecutorOption) *Executor {
	executor := &Executor{
		policy: policy,
		clock:  types.NewRealClock(),
	}

	for _, opt := range opts {
		opt(executor)
	}

	return executor
}

// Execute runs fn with retry, waiting between attempts without occupying
// the goroutine's delay in the face of cancellation: if ctx is cancelled
// while waiting, the loop stops immediately and ctx.Err() is returned. The
// failure of the final attempt is returned verbatim, never wrapped.
func Execute[T any](e *Executor, ctx context.Context, fn Func[T]) (T, error) {
	check := func() error {
		return ctx.Err()
	}
	invoke := func() (T, error) {
		return fn(ctx)
	}
	wait := func(delay time.Duration) error {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-e.clock.After(delay):
			return nil
		}
	}
	return run(e, check, invoke, wait)
}

// ExecuteBlocking runs fn with retry on the calling goroutine, sleeping for
// the full delay between attempts. The failure of the final attempt is
// returned verbatim, never wrapped.
func ExecuteBlocking[T any](e *Executor, fn BlockingFunc[T]) (T, error) {
	invoke := func() (T, error) {
		return fn()
	}
	wait := func(delay time.Duration) error {
		e.clock.Sleep(delay)
		return nil
	}
	return run(e, nil, invoke, wait)
}

// ExecuteAsync runs Execute on a new goroutine and delivers the outcome on
// the returned channel, which is closed after the single send.
func ExecuteAsync[T any](e *Executor, ctx context.Context, fn Func[T]) <-chan types.Result[T] {
	resultChan := make(chan types.Result[T], 1)

	go func() {
		defer close(resultChan)

		start := e.clock.Now()
		value, err := Execute(e, ctx, fn)

		resultChan <- types.Result[T]{
			Value:    value,
			Error:    err,
			Duration: e.clock.Since(start),
		}
	}()

	return resultChan
}

// run is the attempt loop shared by both execution flavors. The flavors
// differ only in the check and wait callbacks, so the loop's behavior
// cannot diverge between them.
func run[T any](e *Executor, check func() error, invoke func() (T, error), wait func(time.Duration) error) (T, error) {
	var zero T

	for attempt := 1; ; attempt++ {
		if check != nil {
			if err := check(); err != nil {
				return zero, err
			}
		}

		e.record(func(s *Stats) {
			s.Attempts++
		})

		result, err := invoke()
		if err == nil {
			e.record(func(s *Stats) {
				s.Successes++
				if attempt > 1 {
					s.Retries++
				}
			})
			if e.handler != nil {
				e.handler.OnSuccess(attempt)
			}
			return result, nil
		}

		if !e.policy.ShouldRetry(err, attempt) {
			e.record(func(s *Stats) {
				s.Failures++
				if attempt > 1 {
					s.Retries++
				}
			})
			if e.handler != nil {
				e.handler.OnGiveUp(attempt, err)
			}
			return zero, err
		}

		delay := e.policy.NextDelay(attempt)

		if e.handler != nil {
			e.handler.OnRetry(attempt, err, delay)
		}

		e.record(func(s *Stats) {
			s.LastRetry = e.clock.Now()
			s.TotalDelay += delay
		})

		if delay > 0 {
			if werr := wait(delay); werr != nil {
				return zero, werr
			}
		}
	}
}

// Stats returns a copy of the accumulated counters
func (e *Executor) Stats() Stats {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.stats
}

// ResetStats clears the accumulated counters
func (e *Executor) ResetStats() {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.stats = Stats{}
}

func (e *Executor) record(fn func(*Stats)) {
	e.mu.Lock()
	defer e.mu.Unlock()
	fn(&e.stats)
}

// ExecutorOption is a configuration option for retry executor
type ExecutorOption func(*Executor)

// WithEventHandler sets the event handler
func WithEventHandler(handler EventHandler) ExecutorOption {
	return func(e *Executor) {
		e.handler = handler
	}
}

// WithClock sets the clock for time operations
func WithClock(clock types.Clock) ExecutorOption {
	return func(e *Executor) {
		e.clock = clock
	}
}

// Logger interface for the logging event handler
type Logger interface {
	Debugf(format string, args ...interface{})
	Infof(format string, args ...interface{})
	Warnf(format string, args ...interface{})
	Errorf(format string, args ...interface{})
}

// LoggingEventHandler logs retry events through a Logger
type LoggingEventHandler struct {
	logger Logger
}

// NewLoggingEventHandler creates an event handler that logs to logger
func NewLoggingEventHandler(logger Logger) *LoggingEventHandler {
	return &LoggingEventHandler{logger: logger}
}

// OnRetry handles retry events
func (h *LoggingEventHandler) OnRetry(attempt int, err error, delay time.Duration) {
	if h.logger != nil {
		h.logger.Warnf("attempt %d failed: %v, retrying in %v", attempt, err, delay)
	}
}

// OnSuccess handles success events
func (h *LoggingEventHandler) OnSuccess(attempt int) {
	if h.logger != nil && attempt > 1 {
		h.logger.Infof("succeeded on attempt %d", attempt)
	}
}

// OnGiveUp handles give-up events
func (h *LoggingEventHandler) OnGiveUp(attempt int, err error) {
	if h.logger != nil {
		h.logger.Errorf("giving up after attempt %d: %v", attempt, err)
	}
}
