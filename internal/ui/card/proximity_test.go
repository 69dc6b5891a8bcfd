package card

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/cardboard/internal/domain/entity"
)

// drag grabs p at its header and moves it so that its position becomes to.
func drag(t *testing.T, f *fixture, p *Panel, to entity.Point) {
	t.Helper()
	grab := p.State().Position.Add(entity.Point{X: 10, Y: 10})
	s := f.reg.CanvasToScreen(grab.X, grab.Y)
	require.True(t, p.PointerDown(f.ctx, TargetHeader, s.X, s.Y))
	dst := f.reg.CanvasToScreen(to.X+10, to.Y+10)
	require.True(t, p.PointerMove(f.ctx, dst.X, dst.Y))
}

func TestProximity_CentersFifteenApart(t *testing.T) {
	f := newFixture()
	a := f.panel(t, "a", 100, 100)
	b := f.panel(t, "b", 115, 100)

	drag(t, f, a, entity.Point{X: 100, Y: 100})

	assert.Equal(t, entity.DecorationProximity, a.Decoration().Kind)
	assert.Equal(t, entity.DecorationProximity, b.Decoration().Kind)
	assert.Equal(t, entity.Point{X: 120, Y: 100}, b.State().Position, "pushed by the repulsion force along +x")
	assert.Equal(t, entity.Point{X: 120, Y: 100}, f.store.states["b"].Position, "repelled panel is persisted at once")
	assert.Zero(t, f.store.saves["a"])
}

func TestProximity_RepulsionIsContinuous(t *testing.T) {
	f := newFixture()
	a := f.panel(t, "a", 100, 100)
	b := f.panel(t, "b", 100, 310)

	drag(t, f, a, entity.Point{X: 100, Y: 100})
	first := b.State().Position
	a.PointerMove(f.ctx, 110, 110)

	assert.Equal(t, entity.Point{X: 100, Y: 315}, first, "gap of 10 is below the threshold")
	assert.Equal(t, entity.Point{X: 100, Y: 320}, b.State().Position)
	assert.Equal(t, 2, f.store.saves["b"])
}

func TestProximity_RepulsionDirection(t *testing.T) {
	f := newFixture()
	a := f.panel(t, "a", 100, 100)
	b := f.panel(t, "b", 340, 290)

	before := b.State().Position
	drag(t, f, a, entity.Point{X: 100, Y: 100})
	moved := b.State().Position.Sub(before)

	// Centres (225,200) and (465,390).
	dx, dy := 240.0, 190.0
	n := math.Hypot(dx, dy)
	assert.InDelta(t, dx/n*entity.RepulsionForce, moved.X, 1e-9)
	assert.InDelta(t, dy/n*entity.RepulsionForce, moved.Y, 1e-9)
	assert.InDelta(t, entity.RepulsionForce, math.Hypot(moved.X, moved.Y), 1e-9)
}

func TestProximity_PinnedNeighbourHighlightedNotMoved(t *testing.T) {
	f := newFixture()
	a := f.panel(t, "a", 100, 100)
	b := f.panel(t, "b", 355, 100)
	b.TogglePin(f.ctx)
	saves := f.store.saves["b"]

	drag(t, f, a, entity.Point{X: 100, Y: 100})

	assert.Equal(t, entity.Point{X: 355, Y: 100}, b.State().Position)
	assert.Equal(t, entity.DecorationProximity, b.Decoration().Kind)
	assert.Equal(t, saves, f.store.saves["b"])
}

func TestProximity_CoincidentCentresSkipRepulsion(t *testing.T) {
	f := newFixture()
	a := f.panel(t, "a", 100, 100)
	b := f.panel(t, "b", 100, 100)

	drag(t, f, a, entity.Point{X: 100, Y: 100})

	assert.Equal(t, entity.Point{X: 100, Y: 100}, b.State().Position)
	assert.Equal(t, entity.DecorationProximity, b.Decoration().Kind)
}

func TestProximity_FarNeighbourResetsToNeutral(t *testing.T) {
	f := newFixture()
	a := f.panel(t, "a", 100, 100)
	b := f.panel(t, "b", 360, 100)

	drag(t, f, a, entity.Point{X: 100, Y: 100})
	require.Equal(t, entity.DecorationProximity, b.Decoration().Kind)

	a.PointerMove(f.ctx, 110, 510)
	assert.Equal(t, entity.DecorationNeutral, b.Decoration().Kind)
	assert.Equal(t, entity.DecorationNeutral, a.Decoration().Kind)
}

func TestProximity_HiddenNeighbourIgnored(t *testing.T) {
	f := newFixture()
	a := f.panel(t, "a", 100, 100)
	b := f.panel(t, "b", 115, 100)
	b.Hide(f.ctx)

	drag(t, f, a, entity.Point{X: 100, Y: 100})

	assert.Equal(t, entity.Point{X: 115, Y: 100}, b.State().Position)
	assert.Equal(t, entity.DecorationNeutral, a.Decoration().Kind)
}

func TestProximity_PointerUpResetsEveryDecoration(t *testing.T) {
	f := newFixture()
	a := f.panel(t, "a", 100, 100)
	b := f.panel(t, "b", 115, 100)

	drag(t, f, a, entity.Point{X: 100, Y: 100})
	a.PointerUp(f.ctx)

	assert.Equal(t, entity.NeutralDecoration(), a.Decoration())
	assert.Equal(t, entity.NeutralDecoration(), b.Decoration())
}

func TestBorder_PanelAtFiveFiveIsNotWarned(t *testing.T) {
	f := newFixture()
	a := f.panel(t, "a", 5, 5)

	drag(t, f, a, entity.Point{X: 5, Y: 5})

	dec := a.Decoration()
	assert.Equal(t, entity.DecorationNeutral, dec.Kind)
	assert.False(t, dec.Edge(entity.EdgeLeft).Warning)
	assert.Equal(t, 1.0, dec.Edge(entity.EdgeLeft).Width)
}

func TestBorder_GraduatedWarning(t *testing.T) {
	f := newFixture()
	a := f.panel(t, "a", 300, 300)

	drag(t, f, a, entity.Point{X: 25, Y: 300})

	dec := a.Decoration()
	require.Equal(t, entity.DecorationEdgeWarning, dec.Kind)
	left := dec.Edge(entity.EdgeLeft)
	assert.True(t, left.Warning)
	assert.InDelta(t, 0.5, left.Intensity, 1e-9)
	assert.InDelta(t, 1.5, left.Width, 1e-9)
	assert.InDelta(t, 0.75, left.ColorOpacity, 1e-9)
	assert.InDelta(t, 5, left.GlowSpread, 1e-9)
	assert.InDelta(t, 0.55, left.GlowOpacity, 1e-9)
	assert.False(t, dec.Edge(entity.EdgeTop).Warning)
}

func TestBorder_RightEdgeUsesViewport(t *testing.T) {
	f := newFixture()
	a := f.panel(t, "a", 300, 300)

	// Right edge at 990, on the margin line.
	drag(t, f, a, entity.Point{X: 740, Y: 300})

	right := a.Decoration().Edge(entity.EdgeRight)
	assert.True(t, right.Warning)
	assert.InDelta(t, 0, right.Intensity, 1e-9)
	assert.InDelta(t, 2, right.Width, 1e-9)
}

func TestBorder_ConfigChangeAppliesOnNextMove(t *testing.T) {
	f := newFixture()
	a := f.panel(t, "a", 300, 300)
	drag(t, f, a, entity.Point{X: 25, Y: 300})
	require.Equal(t, entity.DecorationEdgeWarning, a.Decoration().Kind)

	f.reg.SetConfig(40, 30)
	a.PointerMove(f.ctx, 35, 310)

	// distLeft = 25 - 40 = -15: outside the band.
	assert.Equal(t, entity.DecorationNeutral, a.Decoration().Kind)
}

func TestProximity_WinsOverBorderWarning(t *testing.T) {
	f := newFixture()
	a := f.panel(t, "a", 300, 300)
	f.panel(t, "b", 25, 510)

	drag(t, f, a, entity.Point{X: 25, Y: 300})

	assert.Equal(t, entity.DecorationProximity, a.Decoration().Kind)
}

func TestDecorationPublishedOnlyOnChange(t *testing.T) {
	f := newFixture()
	a := f.panel(t, "a", 300, 300)

	drag(t, f, a, entity.Point{X: 25, Y: 300})
	a.PointerMove(f.ctx, 35, 310)
	a.PointerMove(f.ctx, 35, 310)

	assert.Equal(t, 1, f.sink.count("a", entity.PanelDecorationChanged))
}
