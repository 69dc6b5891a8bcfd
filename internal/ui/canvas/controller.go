// Package canvas owns the pan and zoom of the infinite canvas.
package canvas

import (
	"context"
	"math"
	"time"

	"github.com/bnema/cardboard/internal/application/port"
	"github.com/bnema/cardboard/internal/domain/entity"
	"github.com/bnema/cardboard/internal/logging"
	"github.com/bnema/cardboard/internal/ui/card"
	"github.com/bnema/cardboard/internal/ui/input"
	"github.com/bnema/cardboard/internal/ui/mainloop"
)

// PersistKey is the coalescing key of transform writes.
const PersistKey = "canvas_transform"

// Gesture defaults.
const (
	DefaultWheelSensitivity = 0.001
	DefaultTouchSensitivity = 0.01
	DefaultPinchThreshold   = 5.0
	DefaultFitPadding       = 50.0
	DefaultFitDuration      = time.Second
)

// TransformStore persists the canvas transform.
type TransformStore interface {
	Save(ctx context.Context, t entity.CanvasTransform) error
}

// Options tune the gestures. Zero values select the defaults.
type Options struct {
	WheelSensitivity float64
	TouchSensitivity float64
	PinchThreshold   float64
	FitPadding       float64
	FitDuration      time.Duration
}

func (o Options) withDefaults() Options {
	if !(o.WheelSensitivity > 0) {
		o.WheelSensitivity = DefaultWheelSensitivity
	}
	if !(o.TouchSensitivity > 0) {
		o.TouchSensitivity = DefaultTouchSensitivity
	}
	if !(o.PinchThreshold > 0) {
		o.PinchThreshold = DefaultPinchThreshold
	}
	if !(o.FitPadding > 0) {
		o.FitPadding = DefaultFitPadding
	}
	if o.FitDuration <= 0 {
		o.FitDuration = DefaultFitDuration
	}
	return o
}

type pinch struct {
	distance float64
	mid      entity.Point
}

// Controller turns pan, wheel and touch gestures into transform updates.
// Every change is pushed into the registry and persisted through the
// coalescer, at most once per drained frame.
type Controller struct {
	registry  *card.Registry
	store     TransformStore
	sink      port.PanelEventSink
	coalescer *mainloop.Coalescer
	opts      Options

	transform entity.CanvasTransform

	modifier bool
	panning  bool
	last     entity.Point
	hasLast  bool

	pinch *pinch
	fit   fitState
}

// NewController creates a controller starting at initial and publishes it to
// the registry. store and sink may be nil.
func NewController(
	ctx context.Context,
	registry *card.Registry,
	store TransformStore,
	sink port.PanelEventSink,
	coalescer *mainloop.Coalescer,
	opts Options,
	initial entity.CanvasTransform,
) *Controller {
	if sink == nil {
		sink = port.NopPanelEventSink{}
	}
	c := &Controller{
		registry:  registry,
		store:     store,
		sink:      sink,
		coalescer: coalescer,
		opts:      opts.withDefaults(),
		transform: initial.Normalize(),
	}
	registry.SetTransform(c.transform.PanOffsetX, c.transform.PanOffsetY, c.transform.ZoomScale)
	logging.FromContext(ctx).Debug().
		Float64("pan_x", c.transform.PanOffsetX).
		Float64("pan_y", c.transform.PanOffsetY).
		Float64("zoom", c.transform.ZoomScale).
		Msg("canvas controller created")
	return c
}

// Transform returns the current transform.
func (c *Controller) Transform() entity.CanvasTransform {
	return c.transform
}

// SetTransform replaces the transform and cancels any fit animation.
func (c *Controller) SetTransform(ctx context.Context, t entity.CanvasTransform) {
	c.fit.stop()
	c.apply(ctx, t)
}

// Restore replaces the transform without persisting it and forgets any
// show-all state.
func (c *Controller) Restore(ctx context.Context, t entity.CanvasTransform) {
	c.fit = fitState{}
	t = t.Normalize()
	c.transform = t
	c.registry.SetTransform(t.PanOffsetX, t.PanOffsetY, t.ZoomScale)
	c.sink.TransformChanged(ctx, t)
}

// SetModifier records whether the pan modifier key is held.
func (c *Controller) SetModifier(held bool) {
	c.modifier = held
	if !held && !c.panning {
		c.hasLast = false
	}
}

// PanModifierHeld reports whether moves pan the canvas without a press.
func (c *Controller) PanModifierHeld(ev input.PointerEvent) bool {
	return c.modifier || ev.Mods.Has(input.ModShift)
}

// IsPanning reports whether a press-drag pan is in progress.
func (c *Controller) IsPanning() bool {
	return c.panning
}

// PointerDown starts a press-drag pan.
func (c *Controller) PointerDown(_ context.Context, ev input.PointerEvent) {
	c.panning = true
	c.last = entity.Point{X: ev.X, Y: ev.Y}
	c.hasLast = true
}

// PointerMove pans by the pointer delta while panning or while the modifier
// is held. The first move of a hover pan only records the position.
func (c *Controller) PointerMove(ctx context.Context, ev input.PointerEvent) {
	if !c.panning && !c.PanModifierHeld(ev) {
		c.hasLast = false
		return
	}
	at := entity.Point{X: ev.X, Y: ev.Y}
	if c.hasLast {
		d := at.Sub(c.last)
		if d.X != 0 || d.Y != 0 {
			c.fit.stop()
			c.apply(ctx, c.transform.Pan(d.X, d.Y))
		}
	}
	c.last = at
	c.hasLast = true
}

// PointerUp ends a press-drag pan.
func (c *Controller) PointerUp(_ context.Context, _ input.PointerEvent) {
	c.panning = false
	if !c.modifier {
		c.hasLast = false
	}
}

// Wheel zooms around the cursor. Positive deltaY zooms out.
func (c *Controller) Wheel(ctx context.Context, sx, sy, deltaY float64) {
	c.fit.stop()
	zoom := c.transform.ZoomScale - deltaY*c.opts.WheelSensitivity
	c.apply(ctx, c.transform.ZoomAt(sx, sy, zoom))
}

// TouchStart begins a two-finger gesture. Any other finger count is ignored.
func (c *Controller) TouchStart(_ context.Context, touches []input.Touch) {
	if len(touches) != 2 {
		return
	}
	c.pinch = newPinch(touches)
}

// TouchMove zooms around the pinch midpoint when the finger distance changed
// by more than the pinch threshold, and pans by the midpoint delta otherwise.
func (c *Controller) TouchMove(ctx context.Context, touches []input.Touch) {
	if len(touches) != 2 || c.pinch == nil {
		return
	}
	next := newPinch(touches)
	change := next.distance - c.pinch.distance

	c.fit.stop()
	if math.Abs(change) > c.opts.PinchThreshold {
		zoom := c.transform.ZoomScale + change*c.opts.TouchSensitivity
		c.apply(ctx, c.transform.ZoomAt(next.mid.X, next.mid.Y, zoom))
	} else {
		d := next.mid.Sub(c.pinch.mid)
		c.apply(ctx, c.transform.Pan(d.X, d.Y))
	}
	c.pinch = next
}

// TouchEnd ends the two-finger gesture once fewer than two fingers remain.
func (c *Controller) TouchEnd(_ context.Context, remaining int) {
	if remaining < 2 {
		c.pinch = nil
	}
}

func newPinch(touches []input.Touch) *pinch {
	a := entity.Point{X: touches[0].X, Y: touches[0].Y}
	b := entity.Point{X: touches[1].X, Y: touches[1].Y}
	return &pinch{distance: a.Distance(b), mid: a.Midpoint(b)}
}

func (c *Controller) apply(ctx context.Context, t entity.CanvasTransform) {
	t = t.Normalize()
	if t == c.transform {
		return
	}
	c.transform = t
	c.registry.SetTransform(t.PanOffsetX, t.PanOffsetY, t.ZoomScale)
	c.sink.TransformChanged(ctx, t)
	logging.FromContext(ctx).Trace().
		Float64("pan_x", t.PanOffsetX).
		Float64("pan_y", t.PanOffsetY).
		Float64("zoom", t.ZoomScale).
		Msg("canvas transform changed")
	c.persist(ctx, t)
}

func (c *Controller) persist(ctx context.Context, t entity.CanvasTransform) {
	if c.store == nil {
		return
	}
	save := func() {
		if err := c.store.Save(ctx, t); err != nil {
			logging.FromContext(ctx).Warn().Err(err).Msg("failed to persist canvas transform")
		}
	}
	if c.coalescer == nil {
		save()
		return
	}
	c.coalescer.Post(PersistKey, save)
}
