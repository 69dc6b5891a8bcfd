// Package card implements the panel window manager: a registry of movable
// panels on a pannable, zoomable canvas with proximity feedback.
package card

import (
	"errors"
	"fmt"
	"sync"

	"github.com/bnema/cardboard/internal/domain/entity"
)

// ErrDuplicatePanel is returned when a panel id is already registered.
var ErrDuplicatePanel = errors.New("panel already registered")

// Registry tracks the live panels, the canvas transform and the border
// configuration shared by all panels.
type Registry struct {
	mu        sync.RWMutex
	panels    []*Panel
	transform entity.CanvasTransform
	margin    float64
	warning   float64
}

// NewRegistry creates an empty registry with the identity transform and the
// default border configuration.
func NewRegistry() *Registry {
	return &Registry{
		transform: entity.DefaultTransform(),
		margin:    entity.DefaultBorderMargin,
		warning:   entity.DefaultBorderWarningDistance,
	}
}

// Register adds a panel. Registering the same panel twice is a no-op; a
// different panel with a taken id is rejected.
func (r *Registry) Register(p *Panel) error {
	if p == nil {
		return nil
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, existing := range r.panels {
		if existing == p {
			return nil
		}
		if existing.id == p.id {
			return fmt.Errorf("%w: %s", ErrDuplicatePanel, p.id)
		}
	}
	r.panels = append(r.panels, p)
	return nil
}

// Unregister removes a panel. It is a no-op if the panel is absent.
func (r *Registry) Unregister(p *Panel) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i, existing := range r.panels {
		if existing == p {
			r.panels = append(r.panels[:i], r.panels[i+1:]...)
			return
		}
	}
}

// All returns a snapshot of the live panels in registration order.
func (r *Registry) All() []*Panel {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]*Panel, len(r.panels))
	copy(out, r.panels)
	return out
}

// AllExcept returns a snapshot of the live panels other than p.
func (r *Registry) AllExcept(p *Panel) []*Panel {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]*Panel, 0, len(r.panels))
	for _, existing := range r.panels {
		if existing != p {
			out = append(out, existing)
		}
	}
	return out
}

// Get returns the panel registered under id.
func (r *Registry) Get(id entity.PanelID) (*Panel, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, p := range r.panels {
		if p.id == id {
			return p, true
		}
	}
	return nil, false
}

// Len returns the number of live panels.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.panels)
}

// SetTransform replaces the canvas transform. Panels read it on their next
// pointer move.
func (r *Registry) SetTransform(panX, panY, zoom float64) {
	t := entity.NewTransform(panX, panY, zoom).Normalize()
	r.mu.Lock()
	r.transform = t
	r.mu.Unlock()
}

// Transform returns the current canvas transform.
func (r *Registry) Transform() entity.CanvasTransform {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.transform
}

// SetConfig replaces the border thresholds. Non-positive values select the
// defaults.
func (r *Registry) SetConfig(borderMargin, borderWarningDistance float64) {
	if !(borderMargin > 0) {
		borderMargin = entity.DefaultBorderMargin
	}
	if !(borderWarningDistance > 0) {
		borderWarningDistance = entity.DefaultBorderWarningDistance
	}
	r.mu.Lock()
	r.margin = borderMargin
	r.warning = borderWarningDistance
	r.mu.Unlock()
}

// BorderMargin returns the inset of the viewport edges.
func (r *Registry) BorderMargin() float64 {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.margin
}

// BorderWarningDistance returns the width of the edge warning band.
func (r *Registry) BorderWarningDistance() float64 {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.warning
}

// ScreenToCanvas converts a screen point with the current transform.
func (r *Registry) ScreenToCanvas(sx, sy float64) entity.Point {
	return r.Transform().ScreenToCanvas(sx, sy)
}

// CanvasToScreen converts a canvas point with the current transform.
func (r *Registry) CanvasToScreen(cx, cy float64) entity.Point {
	return r.Transform().CanvasToScreen(cx, cy)
}

// Bounds returns the union of the bounds of all visible panels.
// ok is false when no panel is visible.
func (r *Registry) Bounds() (b entity.Bounds, ok bool) {
	for _, p := range r.All() {
		if !p.Visible() {
			continue
		}
		if !ok {
			b, ok = p.Bounds(), true
			continue
		}
		b = b.Union(p.Bounds())
	}
	return b, ok
}

// PanelAt returns the topmost visible panel under a screen point, together
// with the point in canvas space. Later registrations are on top.
func (r *Registry) PanelAt(sx, sy float64) (*Panel, entity.Point, bool) {
	at := r.ScreenToCanvas(sx, sy)
	panels := r.All()
	for i := len(panels) - 1; i >= 0; i-- {
		p := panels[i]
		if p.Visible() && p.Bounds().Contains(at) {
			return p, at, true
		}
	}
	return nil, at, false
}
