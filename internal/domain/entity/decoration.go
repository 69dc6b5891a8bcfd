package entity

import "math"

// Edge names one side of a panel.
type Edge int

const (
	EdgeLeft Edge = iota
	EdgeTop
	EdgeRight
	EdgeBottom
	edgeCount
)

// Edges lists all edges in a stable order.
var Edges = [...]Edge{EdgeLeft, EdgeTop, EdgeRight, EdgeBottom}

func (e Edge) String() string {
	switch e {
	case EdgeLeft:
		return "left"
	case EdgeTop:
		return "top"
	case EdgeRight:
		return "right"
	case EdgeBottom:
		return "bottom"
	default:
		return "unknown"
	}
}

// Border drag margins, in pixels.
const (
	DefaultBorderMargin          = 10.0
	DefaultBorderWarningDistance = 30.0
)

// Decoration colours.
const (
	NeutralColor   = "#333333"
	ProximityColor = "#00ff88"
	WarningColor   = "#ff0000"
)

// DecorationKind is the overall state a panel border is in.
type DecorationKind int

const (
	DecorationNeutral DecorationKind = iota
	DecorationProximity
	DecorationEdgeWarning
)

func (k DecorationKind) String() string {
	switch k {
	case DecorationNeutral:
		return "neutral"
	case DecorationProximity:
		return "proximity"
	case DecorationEdgeWarning:
		return "edge-warning"
	default:
		return "unknown"
	}
}

// EdgeStyle is the rendering data for one border edge.
type EdgeStyle struct {
	Warning   bool
	Intensity float64 // 0 at the margin, 1 at or beyond the warning distance
	Color     string
	// ColorOpacity applies to Color.
	ColorOpacity float64
	Width        float64
	GlowSpread   float64
	GlowOpacity  float64
}

// Decoration describes how a panel border must be drawn.
type Decoration struct {
	Kind  DecorationKind
	Edges [edgeCount]EdgeStyle
}

// Edge returns the style of one edge.
func (d Decoration) Edge(e Edge) EdgeStyle {
	if e < 0 || e >= edgeCount {
		return EdgeStyle{}
	}
	return d.Edges[e]
}

func neutralEdge() EdgeStyle {
	return EdgeStyle{Intensity: 1, Color: NeutralColor, ColorOpacity: 1, Width: 1}
}

// NeutralDecoration is a 1px neutral border without glow.
func NeutralDecoration() Decoration {
	d := Decoration{Kind: DecorationNeutral}
	for _, e := range Edges {
		d.Edges[e] = neutralEdge()
	}
	return d
}

// ProximityDecoration is the uniform highlight shown when two panels are near.
func ProximityDecoration() Decoration {
	d := Decoration{Kind: DecorationProximity}
	for _, e := range Edges {
		d.Edges[e] = EdgeStyle{
			Intensity:    1,
			Color:        ProximityColor,
			ColorOpacity: 1,
			Width:        2,
			GlowSpread:   15,
			GlowOpacity:  0.6,
		}
	}
	return d
}

// EdgeDistances holds how far each panel edge is from its margin line.
// Negative values mean the edge crossed the margin.
type EdgeDistances [edgeCount]float64

// EdgeDistancesFor measures bounds against a viewport inset by margin.
func EdgeDistancesFor(b Bounds, viewportW, viewportH, margin float64) EdgeDistances {
	var d EdgeDistances
	d[EdgeLeft] = b.Left - margin
	d[EdgeTop] = b.Top - margin
	d[EdgeRight] = (viewportW - margin) - b.Right
	d[EdgeBottom] = (viewportH - margin) - b.Bottom
	return d
}

// EdgeWarningDecoration computes the graduated warning for the given
// distances. ok is false when no edge is within [0, warningDistance].
func EdgeWarningDecoration(d EdgeDistances, warningDistance float64) (dec Decoration, ok bool) {
	dec.Kind = DecorationEdgeWarning
	for _, e := range Edges {
		dist := d[e]
		if dist < 0 || dist > warningDistance || warningDistance <= 0 {
			dec.Edges[e] = neutralEdge()
			continue
		}
		ok = true
		intensity := math.Max(0, math.Min(1, dist/warningDistance))
		glow := 1 - intensity
		dec.Edges[e] = EdgeStyle{
			Warning:      true,
			Intensity:    intensity,
			Color:        WarningColor,
			ColorOpacity: 0.5 + glow*0.5,
			Width:        1 + glow,
			GlowSpread:   glow * 10,
			GlowOpacity:  0.3 + glow*0.5,
		}
	}
	if !ok {
		return NeutralDecoration(), false
	}
	return dec, true
}
