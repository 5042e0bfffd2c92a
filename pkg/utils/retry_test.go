package utils

import (
	"context"
	"errors"
	"testing"
	"time"
)

type tempErr struct{ temp bool }

func (e tempErr) Error() string   { return "temp err" }
func (e tempErr) Temporary() bool { return e.temp }

func TestRetryWithBackoff_Success(t *testing.T) {
	result, err := RetryWithBackoff(context.Background(), 3, 10*time.Millisecond, func() (string, error) {
		return "ok", nil
	})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if result != "ok" {
		t.Fatalf("expected 'ok', got %q", result)
	}
}

func TestRetryWithBackoff_NonRetriableError(t *testing.T) {
	calls := 0
	_, err := RetryWithBackoff(context.Background(), 3, 10*time.Millisecond, func() (string, error) {
		calls++
		return "", errors.New("permanent failure")
	})
	if err == nil {
		t.Fatal("expected error")
	}
	if calls != 1 {
		t.Fatalf("expected 1 call for non-retriable error, got %d", calls)
	}
}

func TestRetryWithBackoff_RetriableEventualSuccess(t *testing.T) {
	calls := 0
	result, err := RetryWithBackoff(context.Background(), 5, 10*time.Millisecond, func() (string, error) {
		calls++
		if calls < 3 {
			return "", tempErr{temp: true}
		}
		return "recovered", nil
	})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if result != "recovered" {
		t.Fatalf("expected 'recovered', got %q", result)
	}
	if calls != 3 {
		t.Fatalf("expected 3 calls, got %d", calls)
	}
}

func TestRetryWithBackoff_AllRetriesFail(t *testing.T) {
	calls := 0
	_, err := RetryWithBackoff(context.Background(), 3, 10*time.Millisecond, func() (string, error) {
		calls++
		return "", tempErr{temp: true}
	})
	if err == nil {
		t.Fatal("expected error after all retries")
	}
	if calls != 3 {
		t.Fatalf("expected 3 calls, got %d", calls)
	}
}

func TestRetryWithBackoff_ContextCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := RetryWithBackoff(ctx, 5, 10*time.Millisecond, func() (string, error) {
		return "", tempErr{temp: true}
	})
	if err == nil {
		t.Fatal("expected context cancelled error")
	}
}

func TestIsRetriable(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected bool
	}{
		{"Temporary", tempErr{temp: true}, true},
		{"NotTemporary", tempErr{temp: false}, false},
		{"DeadlineExceeded", context.DeadlineExceeded, true},
		{"Plain", errors.New("boom"), false},
		{"Nil", nil, false},
	}

	for _, tt := range tests {
		if got := IsRetriable(tt.err); got != tt.expected {
			t.Errorf("IsRetriable(%s) = %v, want %v", tt.name, got, tt.expected)
		}
	}
}
