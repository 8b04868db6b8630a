package types

import (
	"errors"
	"fmt"
	"testing"
	"time"
)

func TestPredefinedErrors(t *testing.T) {
	tests := []struct {
		name string
		err  error
	}{
		{"ErrInvalidMaxAttempts", ErrInvalidMaxAttempts},
		{"ErrUnavailable", ErrUnavailable},
		{"ErrTimeout", ErrTimeout},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.err == nil {
				t.Fatal("expected error, got nil")
			}
			if tt.err.Error() == "" {
				t.Error("expected non-empty error message")
			}
		})
	}
}

func TestRetryableError(t *testing.T) {
	underlying := errors.New("connection reset")
	retryable := NewRetryableError(underlying)

	if retryable.Error() != underlying.Error() {
		t.Errorf("Error() = %q, want %q", retryable.Error(), underlying.Error())
	}
	if !errors.Is(retryable, underlying) {
		t.Error("expected retryable error to unwrap to the underlying error")
	}
	if !IsRetryable(retryable) {
		t.Error("expected IsRetryable to be true")
	}
}

func TestIsRetryable_Wrapped(t *testing.T) {
	marked := NewRetryableError(errors.New("flaky"))
	wrapped := fmt.Errorf("call service: %w", marked)

	if !IsRetryable(wrapped) {
		t.Error("expected wrapped retryable error to be retryable")
	}
}

func TestIsRetryable_Plain(t *testing.T) {
	if IsRetryable(errors.New("plain")) {
		t.Error("expected plain error to not be retryable")
	}
	if IsRetryable(nil) {
		t.Error("expected nil to not be retryable")
	}
}

func TestIsRetryable_ExplicitlyNotRetryable(t *testing.T) {
	err := &RetryableError{Err: errors.New("fatal"), Retryable: false}
	if IsRetryable(err) {
		t.Error("expected Retryable=false to report not retryable")
	}
}

func TestGetRetryDelay(t *testing.T) {
	err := &RetryableError{
		Err:        errors.New("throttled"),
		Retryable:  true,
		RetryAfter: 250 * time.Millisecond,
	}

	if got := GetRetryDelay(err); got != 250*time.Millisecond {
		t.Errorf("GetRetryDelay = %v, want 250ms", got)
	}
	if got := GetRetryDelay(fmt.Errorf("wrap: %w", err)); got != 250*time.Millisecond {
		t.Errorf("GetRetryDelay on wrapped = %v, want 250ms", got)
	}
	if got := GetRetryDelay(errors.New("plain")); got != 0 {
		t.Errorf("GetRetryDelay on plain error = %v, want 0", got)
	}
}
