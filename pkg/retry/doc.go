// Package retry executes fallible operations repeatedly under a policy
// that decides whether to retry and how long to wait between attempts.
//
// Three backoff strategies are provided:
//   - FixedBackoff: constant delay
//   - LinearBackoff: delay grows by a fixed increment
//   - ExponentialBackoff: delay grows by a multiplicative factor, saturating
//     instead of overflowing
//
// A Policy combines a strategy with a maximum attempt count and an optional
// allow-list of retryable errors (matched with errors.Is, so wrapped
// failures count). An empty allow-list retries on any failure. Policies and
// strategies are stateless and safe to share across concurrent loops.
//
// The executor drives the loop in two flavors sharing identical semantics:
// Execute waits with context awareness, so cancellation during a delay
// aborts the loop and returns ctx.Err(); ExecuteBlocking sleeps on the
// calling goroutine. In both, the failure of the final attempt is returned
// verbatim, never wrapped, and earlier failures are discarded.
//
// Basic usage:
//
//	policy, err := retry.NewPolicy(5, retry.NewExponentialBackoff(100*time.Millisecond,
//		retry.WithMaxDelay(2*time.Second)))
//	if err != nil {
//		return err
//	}
//	executor := retry.NewExecutor(policy)
//
//	value, err := retry.Execute(executor, ctx, func(ctx context.Context) (string, error) {
//		return fetch(ctx)
//	})
//
// Or with a one-call helper:
//
//	value, err := retry.Fixed(ctx, 3, 100*time.Millisecond, fetchOnce)
//
// Restricting which failures are retried:
//
//	policy, err := retry.NewPolicy(3, retry.NewFixedBackoff(50*time.Millisecond),
//		retry.WithRetryableErrors(types.ErrUnavailable, types.ErrTimeout))
//
// All public types and functions are safe for concurrent use.
package retry
