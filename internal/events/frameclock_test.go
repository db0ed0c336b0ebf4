package events

import (
	"testing"
	"time"
)

// TestDamageBurstRespectsRefreshInterval is scenario 4 of spec.md §8:
// 100 damage events fired within 10ms with a 17ms refresh interval
// must emit at most 1 render.
func TestDamageBurstRespectsRefreshInterval(t *testing.T) {
	start := time.Unix(0, 0)
	now := start
	clock := &FrameClock{Interval: 17 * time.Millisecond, Now: func() time.Time { return now }}

	renders := 0
	for i := 0; i < 100; i++ {
		now = start.Add(time.Duration(i) * 100 * time.Microsecond) // spans 10ms
		if clock.ShouldEmit() {
			renders++
		}
	}
	if renders > 1 {
		t.Fatalf("got %d renders in a 10ms burst with a 17ms interval, want at most 1", renders)
	}
}

// TestFrameClockUpperBound is the general §8 property: given a burst
// of k events across wall-clock span T, renders <= 1 + floor(T/interval).
func TestFrameClockUpperBound(t *testing.T) {
	start := time.Unix(0, 0)
	now := start
	interval := 17 * time.Millisecond
	clock := &FrameClock{Interval: interval, Now: func() time.Time { return now }}

	const k = 500
	const span = 123 * time.Millisecond
	renders := 0
	for i := 0; i < k; i++ {
		now = start.Add(time.Duration(i) * span / time.Duration(k))
		if clock.ShouldEmit() {
			renders++
		}
	}
	want := 1 + int(span/interval)
	if renders > want {
		t.Fatalf("got %d renders, want at most %d (1 + floor(T/interval))", renders, want)
	}
}

func TestFrameClockFirstCallAlwaysEmits(t *testing.T) {
	clock := NewFrameClock(17 * time.Millisecond)
	if !clock.ShouldEmit() {
		t.Fatalf("first ShouldEmit call must return true")
	}
}
