package port

import (
	"context"

	"github.com/bnema/cardboard/internal/domain/entity"
)

// PanelEventSink receives presentational changes from the interaction core.
// Rendering backends implement it; the core never touches a rendering API.
type PanelEventSink interface {
	// PanelChanged is called after any visible change of a panel.
	PanelChanged(ctx context.Context, event entity.PanelEvent)

	// TransformChanged is called after the canvas transform changed.
	TransformChanged(ctx context.Context, transform entity.CanvasTransform)
}

// NopPanelEventSink discards every event.
type NopPanelEventSink struct{}

func (NopPanelEventSink) PanelChanged(context.Context, entity.PanelEvent) {}

func (NopPanelEventSink) TransformChanged(context.Context, entity.CanvasTransform) {}

// MultiPanelEventSink fans events out to several sinks in order.
type MultiPanelEventSink []PanelEventSink

func (m MultiPanelEventSink) PanelChanged(ctx context.Context, event entity.PanelEvent) {
	for _, s := range m {
		s.PanelChanged(ctx, event)
	}
}

func (m MultiPanelEventSink) TransformChanged(ctx context.Context, transform entity.CanvasTransform) {
	for _, s := range m {
		s.TransformChanged(ctx, transform)
	}
}
