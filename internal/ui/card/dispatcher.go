package card

import (
	"context"

	"github.com/bnema/cardboard/internal/domain/entity"
	"github.com/bnema/cardboard/internal/logging"
	"github.com/bnema/cardboard/internal/ui/input"
)

// Layout describes the hit regions of a panel in canvas units.
type Layout struct {
	HeaderHeight float64
	// IconWidth is the width of each icon slot at the right of the header.
	IconWidth float64
	// HandleSize is the side of the square resize handle at the bottom right.
	HandleSize float64
}

// DefaultLayout matches the card chrome drawn by the renderers.
func DefaultLayout() Layout {
	return Layout{HeaderHeight: 32, IconWidth: 24, HandleSize: 16}
}

// Target returns the region of p under the canvas point at.
// The rightmost header slot holds the settings or close icon, the next one
// the pin icon of pinnable panels.
func (l Layout) Target(p *Panel, at entity.Point) Target {
	b := p.Bounds()
	if !b.Contains(at) {
		return TargetNone
	}

	if p.caps.Resizable && at.X >= b.Right-l.HandleSize && at.Y >= b.Bottom-l.HandleSize {
		return TargetResizeHandle
	}
	if at.Y > b.Top+l.HeaderHeight {
		return TargetBody
	}

	slot := int((b.Right - at.X) / l.IconWidth)
	switch {
	case slot == 0 && p.flipped:
		return TargetCloseIcon
	case slot == 0:
		return TargetSettingsIcon
	case slot == 1 && p.caps.Pinnable:
		return TargetPinIcon
	default:
		return TargetHeader
	}
}

// CanvasInput receives the pointer events that do not belong to a panel.
type CanvasInput interface {
	// PanModifierHeld reports whether the pan modifier is active for ev.
	PanModifierHeld(ev input.PointerEvent) bool
	PointerDown(ctx context.Context, ev input.PointerEvent)
	PointerMove(ctx context.Context, ev input.PointerEvent)
	PointerUp(ctx context.Context, ev input.PointerEvent)
}

// Dispatcher routes pointer events to panels and the canvas. It replaces
// per-panel global listeners: only the active panel sees moves and ups.
type Dispatcher struct {
	registry *Registry
	layout   Layout
	canvas   CanvasInput

	active *Panel
}

// NewDispatcher creates a dispatcher. canvas may be nil.
func NewDispatcher(registry *Registry, layout Layout, canvas CanvasInput) *Dispatcher {
	return &Dispatcher{registry: registry, layout: layout, canvas: canvas}
}

// Active returns the panel owning the current gesture, if any.
func (d *Dispatcher) Active() *Panel {
	return d.active
}

// PointerDown hits the topmost panel under the pointer. Icons are clicked,
// header and resize handle start a gesture. Presses on empty canvas, or with
// the pan modifier held, go to the canvas.
func (d *Dispatcher) PointerDown(ctx context.Context, ev input.PointerEvent) {
	log := logging.FromContext(ctx)

	if d.active != nil {
		// The previous gesture never received its up event. It keeps the
		// pointer until the next up or cancel.
		log.Debug().Str("panel_id", string(d.active.ID())).Msg("pointer down ignored during gesture")
		return
	}
	if d.canvas != nil && d.canvas.PanModifierHeld(ev) {
		d.canvas.PointerDown(ctx, ev)
		return
	}

	p, at, ok := d.registry.PanelAt(ev.X, ev.Y)
	if !ok {
		if d.canvas != nil && ev.Button == input.ButtonPrimary {
			d.canvas.PointerDown(ctx, ev)
		}
		return
	}
	if ev.Button != input.ButtonPrimary {
		return
	}

	target := d.layout.Target(p, at)
	log.Trace().Str("panel_id", string(p.ID())).Str("target", target.String()).Msg("pointer down")

	if target.IsIcon() {
		p.Click(ctx, target)
		return
	}
	if p.PointerDown(ctx, target, ev.X, ev.Y) {
		d.active = p
	}
}

// PointerMove feeds the active panel, or the canvas when no panel is active.
func (d *Dispatcher) PointerMove(ctx context.Context, ev input.PointerEvent) {
	if d.active != nil {
		if d.active.PointerMove(ctx, ev.X, ev.Y) {
			return
		}
		// Destroyed or otherwise finished without an up event.
		d.active = nil
	}
	if d.canvas != nil {
		d.canvas.PointerMove(ctx, ev)
	}
}

// PointerUp ends the gesture in progress wherever the pointer is.
func (d *Dispatcher) PointerUp(ctx context.Context, ev input.PointerEvent) {
	if d.active != nil {
		d.endActive(ctx)
		return
	}
	if d.canvas != nil {
		d.canvas.PointerUp(ctx, ev)
	}
}

// PointerCancel ends the gesture in progress as if the pointer was released.
// Platforms call it when the pointer capture is lost.
func (d *Dispatcher) PointerCancel(ctx context.Context) {
	if d.active != nil {
		logging.FromContext(ctx).Debug().Str("panel_id", string(d.active.ID())).Msg("pointer cancelled")
		d.endActive(ctx)
		return
	}
	if d.canvas != nil {
		d.canvas.PointerUp(ctx, input.PointerEvent{})
	}
}

func (d *Dispatcher) endActive(ctx context.Context) {
	p := d.active
	d.active = nil
	p.PointerUp(ctx)
}
