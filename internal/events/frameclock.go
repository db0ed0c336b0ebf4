package events

import "time"

// DefaultRefreshInterval is the target refresh cadence (spec.md §5:
// "one frame per refresh_interval, default 17 ms ~= 60 Hz").
const DefaultRefreshInterval = 17 * time.Millisecond

// FrameClock rate-limits damage-driven frame emission (spec.md §4.3
// DAMAGE_NOTIFY, §9 "Damage coalescing": "the rate-limited render is
// the only place in the core where wall-clock time is consulted").
// Now is injectable so tests can assert the §8 upper-bound property
// ("at most 1 + floor(T / refresh_interval) renders") without real
// wall-clock flakiness.
type FrameClock struct {
	Interval time.Duration
	Now      func() time.Time

	last time.Time
	set  bool
}

// NewFrameClock returns a FrameClock using the real wall clock.
func NewFrameClock(interval time.Duration) *FrameClock {
	return &FrameClock{Interval: interval, Now: time.Now}
}

// ShouldEmit reports whether enough wall-clock time has elapsed since
// the last emitted frame, and if so records now() as the new
// last-frame timestamp. The very first call always emits: there is no
// prior frame to rate-limit against.
func (f *FrameClock) ShouldEmit() bool {
	now := f.Now()
	if !f.set || now.Sub(f.last) >= f.Interval {
		f.last = now
		f.set = true
		return true
	}
	return false
}
