package latency_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"worksync/internal/platform/latency"
)

func TestTableWaitsScaledDelay(t *testing.T) {
	t.Parallel()
	table := latency.Table{Delays: map[latency.Op]time.Duration{latency.OpLogin: 40 * time.Millisecond}, Scale: 0.5}
	start := time.Now()
	if err := table.Wait(context.Background(), latency.OpLogin); err != nil {
		t.Fatalf("wait: %v", err)
	}
	if elapsed := time.Since(start); elapsed < 20*time.Millisecond {
		t.Fatalf("expected at least 20ms delay, got %s", elapsed)
	}
}

func TestZeroScaleDoesNotWait(t *testing.T) {
	t.Parallel()
	start := time.Now()
	if err := latency.New(0).Wait(context.Background(), latency.OpRegister); err != nil {
		t.Fatalf("wait: %v", err)
	}
	if elapsed := time.Since(start); elapsed > 100*time.Millisecond {
		t.Fatalf("zero scale should not wait, took %s", elapsed)
	}
}

func TestWaitReturnsOnCancelledContext(t *testing.T) {
	t.Parallel()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if err := latency.New(1).Wait(ctx, latency.OpRegister); !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
	if err := (latency.None{}).Wait(ctx, latency.OpLogout); !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled from None, got %v", err)
	}
}
