package retry

import (
	"context"
	"errors"
	"fmt"
	"sync/atomic"
	"testing"
	"time"

	"github.com/davils-com/kore/pkg/types"
)

func TestFixed_SucceedsAfterRetries(t *testing.T) {
	var attempts int32
	start := time.Now()
	result, err := Fixed(context.Background(), 5, 10*time.Millisecond, func(ctx context.Context) (string, error) {
		if atomic.AddInt32(&attempts, 1) < 3 {
			return "", types.ErrUnavailable
		}
		return "done", nil
	})
	elapsed := time.Since(start)

	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if result != "done" {
		t.Errorf("Expected 'done', got %v", result)
	}
	if got := atomic.LoadInt32(&attempts); got != 3 {
		t.Errorf("Expected 3 invocations, got %d", got)
	}
	if elapsed < 20*time.Millisecond {
		t.Errorf("Expected at least 20ms for the 2 waits, got %v", elapsed)
	}
}

func TestFixed_InvalidMaxAttempts(t *testing.T) {
	var attempts int32
	_, err := Fixed(context.Background(), 0, time.Millisecond, func(ctx context.Context) (string, error) {
		atomic.AddInt32(&attempts, 1)
		return "", nil
	})

	if !errors.Is(err, types.ErrInvalidMaxAttempts) {
		t.Errorf("Expected ErrInvalidMaxAttempts, got %v", err)
	}
	if got := atomic.LoadInt32(&attempts); got != 0 {
		t.Errorf("Expected 0 invocations, got %d", got)
	}
}

func TestLinear_PropagatesLastFailure(t *testing.T) {
	var attempts int32
	_, err := Linear(context.Background(), 3, time.Millisecond, time.Millisecond,
		func(ctx context.Context) (int, error) {
			n := atomic.AddInt32(&attempts, 1)
			return 0, fmt.Errorf("failure %d: %w", n, types.ErrTimeout)
		})

	if err == nil || err.Error() != "failure 3: operation timeout" {
		t.Errorf("Expected the 3rd failure, got %v", err)
	}
	if got := atomic.LoadInt32(&attempts); got != 3 {
		t.Errorf("Expected 3 invocations, got %d", got)
	}
}

func TestExponential_AppliesBackoffOptions(t *testing.T) {
	var attempts int32
	start := time.Now()
	_, err := Exponential(context.Background(), 3, 4*time.Millisecond,
		func(ctx context.Context) (string, error) {
			atomic.AddInt32(&attempts, 1)
			return "", types.ErrUnavailable
		},
		WithMultiplier(2.0),
		WithMaxDelay(8*time.Millisecond))
	elapsed := time.Since(start)

	if err == nil {
		t.Fatal("Expected an error")
	}
	if got := atomic.LoadInt32(&attempts); got != 3 {
		t.Errorf("Expected 3 invocations, got %d", got)
	}
	// waits of 4ms and 8ms
	if elapsed < 12*time.Millisecond {
		t.Errorf("Expected at least 12ms elapsed, got %v", elapsed)
	}
}

func TestFixedBlocking(t *testing.T) {
	var attempts int32
	result, err := FixedBlocking(3, time.Millisecond, func() (int, error) {
		if atomic.AddInt32(&attempts, 1) < 2 {
			return 0, types.ErrUnavailable
		}
		return 7, nil
	})

	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if result != 7 {
		t.Errorf("Expected 7, got %d", result)
	}
}

func TestLinearBlocking_InvalidMaxAttempts(t *testing.T) {
	var attempts int32
	_, err := LinearBlocking(-1, time.Millisecond, time.Millisecond, func() (int, error) {
		atomic.AddInt32(&attempts, 1)
		return 0, nil
	})

	if !errors.Is(err, types.ErrInvalidMaxAttempts) {
		t.Errorf("Expected ErrInvalidMaxAttempts, got %v", err)
	}
	if got := atomic.LoadInt32(&attempts); got != 0 {
		t.Errorf("Expected 0 invocations, got %d", got)
	}
}

func TestExponentialBlocking(t *testing.T) {
	var attempts int32
	result, err := ExponentialBlocking(4, time.Millisecond, func() (string, error) {
		if atomic.AddInt32(&attempts, 1) < 3 {
			return "", types.ErrTimeout
		}
		return "ok", nil
	})

	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if result != "ok" {
		t.Errorf("Expected 'ok', got %v", result)
	}
	if got := atomic.LoadInt32(&attempts); got != 3 {
		t.Errorf("Expected 3 invocations, got %d", got)
	}
}
