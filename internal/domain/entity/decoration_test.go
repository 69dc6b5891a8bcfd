package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEdgeWarningDecoration_TopLeftCorner(t *testing.T) {
	// Panel at (5,5) in a 1000x800 viewport with margin 10 and warning 30.
	b := BoundsOf(Point{X: 5, Y: 5}, Size{Width: 250, Height: 200})
	d := EdgeDistancesFor(b, 1000, 800, 10)

	assert.Equal(t, -5.0, d[EdgeLeft])
	assert.Equal(t, -5.0, d[EdgeTop])

	dec, ok := EdgeWarningDecoration(d, 30)
	assert.False(t, ok, "edges past the margin are not in warning")
	assert.Equal(t, DecorationNeutral, dec.Kind)
}

func TestEdgeWarningDecoration_Graduated(t *testing.T) {
	// left edge 15 units from the margin, everything else far away.
	b := BoundsOf(Point{X: 25, Y: 300}, Size{Width: 250, Height: 200})
	d := EdgeDistancesFor(b, 1000, 800, 10)

	dec, ok := EdgeWarningDecoration(d, 30)
	require.True(t, ok)
	assert.Equal(t, DecorationEdgeWarning, dec.Kind)

	left := dec.Edge(EdgeLeft)
	assert.True(t, left.Warning)
	assert.InDelta(t, 0.5, left.Intensity, 1e-9)
	assert.InDelta(t, 1.5, left.Width, 1e-9)
	assert.InDelta(t, 0.75, left.ColorOpacity, 1e-9)
	assert.InDelta(t, 5.0, left.GlowSpread, 1e-9)
	assert.InDelta(t, 0.55, left.GlowOpacity, 1e-9)
	assert.Equal(t, WarningColor, left.Color)

	for _, e := range []Edge{EdgeTop, EdgeRight, EdgeBottom} {
		s := dec.Edge(e)
		assert.False(t, s.Warning, e.String())
		assert.Equal(t, 1.0, s.Intensity, e.String())
		assert.Equal(t, 1.0, s.Width, e.String())
		assert.Equal(t, NeutralColor, s.Color, e.String())
	}
}

func TestEdgeWarningDecoration_AtMarginIsMaximal(t *testing.T) {
	b := BoundsOf(Point{X: 10, Y: 300}, Size{Width: 250, Height: 200})
	dec, ok := EdgeWarningDecoration(EdgeDistancesFor(b, 1000, 800, 10), 30)
	require.True(t, ok)

	left := dec.Edge(EdgeLeft)
	assert.Equal(t, 0.0, left.Intensity)
	assert.Equal(t, 2.0, left.Width)
	assert.Equal(t, 1.0, left.ColorOpacity)
	assert.Equal(t, 10.0, left.GlowSpread)
}

func TestProximityDecoration_IsUniform(t *testing.T) {
	dec := ProximityDecoration()
	first := dec.Edge(EdgeLeft)
	for _, e := range Edges {
		assert.Equal(t, first, dec.Edge(e))
	}
	assert.Equal(t, ProximityColor, first.Color)
	assert.Equal(t, 2.0, first.Width)
}
