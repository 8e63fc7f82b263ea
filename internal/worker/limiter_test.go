package worker

import (
	"context"
	"testing"
	"time"
)

func TestLimiter_AllowWithinBurst(t *testing.T) {
	l := NewLimiter(1, 3)

	for i := 0; i < 3; i++ {
		if !l.Allow() {
			t.Errorf("call %d should be allowed within burst", i)
		}
	}
	if l.Allow() {
		t.Error("call beyond burst should be denied")
	}
}

func TestLimiter_WaitRespectsContext(t *testing.T) {
	l := NewLimiter(0.001, 1)
	l.Allow() // exhaust the burst

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	if err := l.Wait(ctx); err == nil {
		t.Error("expected Wait to fail once the context deadline passed")
	}
}

func TestLimiter_DefaultsForInvalidConfig(t *testing.T) {
	l := NewLimiter(-1, 0)
	if !l.Allow() {
		t.Error("limiter with corrected defaults should allow the first call")
	}
}
