package input

import "time"

// DefaultTapWindow is how close repeated presses must be to count together.
const DefaultTapWindow = 500 * time.Millisecond

// TapCounter counts repeated presses of one key inside a sliding window.
type TapCounter struct {
	window  time.Duration
	presses []time.Time
}

// NewTapCounter creates a counter. A non-positive window uses DefaultTapWindow.
func NewTapCounter(window time.Duration) *TapCounter {
	if window <= 0 {
		window = DefaultTapWindow
	}
	return &TapCounter{window: window}
}

// Tap records a press at now and returns how many presses fall in the window,
// this one included.
func (c *TapCounter) Tap(now time.Time) int {
	kept := c.presses[:0]
	for _, t := range c.presses {
		if now.Sub(t) < c.window {
			kept = append(kept, t)
		}
	}
	c.presses = append(kept, now)
	return len(c.presses)
}

// Reset forgets all recorded presses.
func (c *TapCounter) Reset() {
	c.presses = c.presses[:0]
}
