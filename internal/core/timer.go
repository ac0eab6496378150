package core

import "time"

// Throttle lets a caller run work at most once per interval. The viewer uses it
// to avoid re-evaluating the loaded tile set on every frame.
type Throttle struct {
	every time.Duration
	last  time.Time
}

// NewThrottle constructs a Throttle that fires at most hz times per second.
func NewThrottle(hz int) *Throttle {
	if hz <= 0 {
		hz = 10
	}
	return &Throttle{every: time.Second / time.Duration(hz)}
}

// Ready reports whether enough time has passed since the last accepted call.
// The first call is always accepted.
func (t *Throttle) Ready(now time.Time) bool {
	if !t.last.IsZero() && now.Sub(t.last) < t.every {
		return false
	}
	t.last = now
	return true
}

// Reset makes the next call to Ready succeed.
func (t *Throttle) Reset() { t.last = time.Time{} }
