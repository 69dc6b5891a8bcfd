package ui

import (
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/bnema/cardboard/internal/domain/entity"
	"github.com/bnema/cardboard/internal/infrastructure/script"
	"github.com/bnema/cardboard/internal/logging"
	"github.com/bnema/cardboard/internal/ui/input"
)

// Clock is a manually advanced clock for scripted runs.
type Clock struct {
	mu  sync.Mutex
	now time.Time
}

// NewClock creates a clock stopped at start.
func NewClock(start time.Time) *Clock {
	return &Clock{now: start}
}

// Now returns the current virtual time.
func (c *Clock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

// Advance moves the clock forward by d.
func (c *Clock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}

// Replay feeds every step of s to the workbench. clock must be the clock the
// workbench was built with; tick steps advance it one frame at a time. Pending
// writes are flushed when the script ends.
func (w *Workbench) Replay(s *script.Script, clock *Clock) error {
	ctx := logging.WithScript(w.ctx, s.Name)
	log := logging.FromContext(ctx)
	log.Info().Int("steps", len(s.Steps)).Msg("replaying script")

	for i, step := range s.Steps {
		if w.quit {
			log.Debug().Int("step", i+1).Msg("script stopped by quit")
			break
		}
		if err := w.replayStep(step, clock); err != nil {
			return fmt.Errorf("step %d: %w", i+1, err)
		}
	}
	w.Flush()
	return nil
}

func (w *Workbench) replayStep(step script.Step, clock *Clock) error {
	switch {
	case step.Down != nil:
		w.PointerDown(pointerEvent(*step.Down))
	case step.Move != nil:
		w.PointerMove(pointerEvent(*step.Move))
	case step.Up != nil:
		w.PointerUp(pointerEvent(*step.Up))
	case step.Cancel:
		w.PointerCancel()
	case step.Drag != nil:
		w.replayDrag(*step.Drag)
	case step.Wheel != nil:
		w.Wheel(step.Wheel.X, step.Wheel.Y, step.Wheel.DeltaY)
	case step.TouchStart != nil:
		w.TouchStart(touches(step.TouchStart))
	case step.TouchMove != nil:
		w.TouchMove(touches(step.TouchMove))
	case step.TouchEnd != nil:
		w.TouchEnd(*step.TouchEnd)
	case step.Key != "":
		w.KeyDown(step.Key)
		if !strings.EqualFold(step.Key, input.KeyShift) {
			w.KeyUp(step.Key)
		}
	case step.KeyUp != "":
		w.KeyUp(step.KeyUp)
	case step.Type != "":
		for _, r := range step.Type {
			w.KeyDown(string(r))
		}
	case step.Tick > 0:
		w.advance(step.Tick, clock)
	case step.Toggle != "":
		scene, metric, _ := strings.Cut(step.Toggle, "/")
		if _, err := w.ToggleMetric(entity.MetricKey{Scene: scene, Metric: metric}); err != nil {
			return err
		}
	default:
		return script.ErrInvalidStep
	}
	return nil
}

func (w *Workbench) replayDrag(d script.Drag) {
	mods := input.ModNone
	if d.Shift {
		mods = input.ModShift
	}
	w.PointerDown(input.PointerEvent{X: d.From.X, Y: d.From.Y, Button: input.ButtonPrimary, Mods: mods})
	for _, pt := range d.Interpolate() {
		w.PointerMove(input.PointerEvent{X: pt.X, Y: pt.Y, Button: input.ButtonPrimary, Mods: mods})
	}
	w.PointerUp(input.PointerEvent{X: d.To.X, Y: d.To.Y, Button: input.ButtonPrimary, Mods: mods})
}

// advance moves the clock by d in frame-sized steps, running a frame at each.
func (w *Workbench) advance(d time.Duration, clock *Clock) {
	frame := w.throttle.Interval()
	for d > 0 {
		step := min(frame, d)
		clock.Advance(step)
		d -= step
		w.Tick(clock.Now())
	}
}

func pointerEvent(p script.Pointer) input.PointerEvent {
	ev := input.PointerEvent{X: p.X, Y: p.Y, Button: input.ButtonPrimary}
	switch strings.ToLower(p.Button) {
	case "middle":
		ev.Button = input.ButtonMiddle
	case "secondary", "right":
		ev.Button = input.ButtonSecondary
	case "none":
		ev.Button = input.ButtonNone
	}
	if p.Shift {
		ev.Mods = input.ModShift
	}
	return ev
}

func touches(points []script.Point) []input.Touch {
	out := make([]input.Touch, len(points))
	for i, p := range points {
		out[i] = input.Touch{X: p.X, Y: p.Y}
	}
	return out
}
