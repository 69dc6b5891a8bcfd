package mainloop

import "time"

// DefaultFPS is the frame rate of the canvas loop.
const DefaultFPS = 30

// FrameThrottle limits frame work to a target rate. Late frames are aligned
// back onto the frame grid instead of drifting.
type FrameThrottle struct {
	interval time.Duration
	last     time.Time
}

// NewFrameThrottle creates a throttle for fps frames per second.
// A non-positive fps uses DefaultFPS.
func NewFrameThrottle(fps int) *FrameThrottle {
	if fps <= 0 {
		fps = DefaultFPS
	}
	return &FrameThrottle{interval: time.Second / time.Duration(fps)}
}

// Interval returns the time between two frames.
func (f *FrameThrottle) Interval() time.Duration {
	return f.interval
}

// Ready reports whether a frame is due at now and, if so, consumes it.
func (f *FrameThrottle) Ready(now time.Time) bool {
	if f.last.IsZero() {
		f.last = now
		return true
	}
	delta := now.Sub(f.last)
	if delta < f.interval {
		return false
	}
	f.last = now.Add(-(delta % f.interval))
	return true
}
