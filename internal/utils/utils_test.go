package utils

import (
	"context"
	"errors"
	"testing"
	"time"
)

func TestWaitWithZeroDuration(t *testing.T) {
	called := false
	err := WaitWith(context.Background(), 0, func(time.Duration) { called = true })
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if called {
		t.Fatal("expected sleep to be skipped")
	}
}

func TestWaitWithSleeps(t *testing.T) {
	var got time.Duration
	if err := WaitWith(context.Background(), 3*time.Second, func(d time.Duration) { got = d }); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != 3*time.Second {
		t.Fatalf("expected 3s sleep, got %v", got)
	}
}

func TestWaitWithCancelled(t *testing.T) {
	release := make(chan struct{})
	defer close(release)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if err := WaitWith(ctx, time.Hour, func(time.Duration) { <-release }); !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
}
