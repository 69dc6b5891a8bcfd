// Package render holds helpers shared by the canvas renderers.
package render

import (
	"github.com/lucasb-eyer/go-colorful"

	"github.com/bnema/cardboard/internal/domain/entity"
)

// Background is the canvas colour both renderers draw on.
const Background = "#1a1a1a"

// CardFill is the body colour of a card.
const CardFill = "#262626"

// Blend mixes from towards to by t in [0,1], in Lab space. Unparseable
// colours fall back to to.
func Blend(from, to string, t float64) string {
	a, err := colorful.Hex(from)
	if err != nil {
		return to
	}
	b, err := colorful.Hex(to)
	if err != nil {
		return to
	}
	switch {
	case t <= 0:
		return a.Hex()
	case t >= 1:
		return b.Hex()
	}
	return a.BlendLab(b, t).Clamped().Hex()
}

// EdgeColor flattens an edge style onto the background: the edge colour
// at its colour opacity.
func EdgeColor(style entity.EdgeStyle) string {
	if style.Color == "" {
		return entity.NeutralColor
	}
	return Blend(Background, style.Color, style.ColorOpacity)
}

// GlowColor is the halo colour of an edge, or "" when it has no glow.
func GlowColor(style entity.EdgeStyle) string {
	if style.GlowSpread <= 0 || style.GlowOpacity <= 0 {
		return ""
	}
	return Blend(Background, style.Color, style.GlowOpacity)
}

// StrongestEdge returns the edge with the largest glow, used when a renderer
// can draw only one halo per card.
func StrongestEdge(d entity.Decoration) entity.EdgeStyle {
	best := d.Edge(entity.EdgeLeft)
	for _, e := range entity.Edges[1:] {
		if s := d.Edge(e); s.GlowSpread > best.GlowSpread {
			best = s
		}
	}
	return best
}
