package pull

import (
	"testing"
	"time"
)

func TestTweenValueBounds(t *testing.T) {
	start := time.Now()
	tw := newTween(100, 0, 500*time.Millisecond, start)

	if v := tw.Value(start); v != 100 {
		t.Errorf("Expected initial value 100, got %f", v)
	}
	if v := tw.Value(start.Add(time.Second)); v != 0 {
		t.Errorf("Expected final value 0, got %f", v)
	}

	prev := tw.Value(start)
	for ms := 50; ms <= 500; ms += 50 {
		v := tw.Value(start.Add(time.Duration(ms) * time.Millisecond))
		if v < 0 || v > 100 {
			t.Errorf("Expected value within [0,100] at %dms, got %f", ms, v)
		}
		if v > prev {
			t.Errorf("Expected monotonic decrease, got %f after %f at %dms", v, prev, ms)
		}
		prev = v
	}
}

func TestTweenEasesOut(t *testing.T) {
	start := time.Now()
	tw := newTween(100, 0, 400*time.Millisecond, start)

	// Ease-out moves fast early: at the halfway point the value must be
	// well past the linear midpoint.
	mid := tw.Value(start.Add(200 * time.Millisecond))
	if mid >= 50 {
		t.Errorf("Expected ease-out value below linear midpoint 50, got %f", mid)
	}
}

func TestTweenZeroDurationCompletesImmediately(t *testing.T) {
	now := time.Now()
	tw := newTween(42, 0, 0, now)

	if !tw.Done(now) {
		t.Error("Expected zero-duration tween to be done immediately")
	}
	if v := tw.Value(now); v != 0 {
		t.Errorf("Expected value 0 for a completed tween, got %f", v)
	}
}

func TestTweenClampsEarlySamples(t *testing.T) {
	start := time.Now()
	tw := newTween(80, 0, 300*time.Millisecond, start)

	// A sample taken before the start time must not overshoot the range.
	if v := tw.Value(start.Add(-time.Second)); v != 80 {
		t.Errorf("Expected pre-start sample to hold the initial value, got %f", v)
	}
	if tw.Done(start.Add(-time.Second)) {
		t.Error("Expected pre-start sample to not be done")
	}
}
