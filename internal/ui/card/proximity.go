package card

import (
	"context"
	"math"

	"github.com/bnema/cardboard/internal/domain/entity"
	"github.com/bnema/cardboard/internal/logging"
)

// checkProximity runs the neighbour and viewport-edge checks for the dragged
// panel. Neighbours within the threshold are highlighted and, unless pinned,
// pushed away. The dragged panel shows the proximity highlight when any
// neighbour is near, the edge warning otherwise.
func (p *Panel) checkProximity(ctx context.Context) {
	near := false
	for _, other := range p.env.Registry.AllExcept(p) {
		if !other.Visible() {
			continue
		}
		if entity.RectDistance(p.Bounds(), other.Bounds()) < p.threshold {
			near = true
			other.setDecoration(ctx, entity.ProximityDecoration())
			p.repel(ctx, other)
			continue
		}
		other.setDecoration(ctx, entity.NeutralDecoration())
	}

	if near {
		p.setDecoration(ctx, entity.ProximityDecoration())
		return
	}
	p.setDecoration(ctx, p.borderDecoration())
}

// borderDecoration measures the panel against the viewport edges.
// Canvas-space bounds are compared with viewport pixels.
func (p *Panel) borderDecoration() entity.Decoration {
	vw, vh := p.env.Viewport.Size()
	reg := p.env.Registry
	d := entity.EdgeDistancesFor(p.Bounds(), vw, vh, reg.BorderMargin())
	dec, _ := entity.EdgeWarningDecoration(d, reg.BorderWarningDistance())
	return dec
}

// repel pushes other away from p along the line between their centres and
// persists it. Coincident centres have no direction and are skipped.
func (p *Panel) repel(ctx context.Context, other *Panel) {
	if other.state.IsPinned {
		return
	}
	delta := other.Bounds().Center().Sub(p.Bounds().Center())
	dist := math.Hypot(delta.X, delta.Y)
	if dist == 0 {
		return
	}

	push := entity.Point{X: delta.X / dist * p.force, Y: delta.Y / dist * p.force}
	other.state.Position = other.state.Position.Add(push)
	other.save(ctx)
	other.publish(ctx, entity.PanelGeometryChanged)

	logging.FromContext(ctx).Trace().
		Str("panel_id", string(p.id)).
		Str("repelled", string(other.id)).
		Float64("dx", push.X).
		Float64("dy", push.Y).
		Msg("panel repelled")
}
