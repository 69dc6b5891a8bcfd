package entity

import "math"

// PanelID uniquely identifies a panel on the canvas.
type PanelID string

// Panel geometry constants, in canvas units.
const (
	MinPanelWidth      = 150.0
	MinPanelHeight     = 100.0
	DefaultPanelWidth  = 250.0
	DefaultPanelHeight = 200.0
	DefaultPanelX      = 20.0
	DefaultPanelY      = 20.0

	// ProximityThreshold is the rectangle distance below which two panels
	// are considered near each other.
	ProximityThreshold = 20.0
	// RepulsionForce is the distance a neighbour is pushed per frame.
	RepulsionForce = 5.0
)

// Capabilities are fixed at panel creation.
type Capabilities struct {
	Resizable bool
	Pinnable  bool
}

// CardCapabilities is the capability set of a regular card.
func CardCapabilities() Capabilities {
	return Capabilities{Resizable: true, Pinnable: true}
}

// PanelState is the persisted part of a panel.
type PanelState struct {
	Position Point `json:"position"`
	Size     Size  `json:"size"`
	IsPinned bool  `json:"isPinned"`
}

// DefaultPanelState returns the state of a panel nobody has touched.
func DefaultPanelState() PanelState {
	return PanelState{
		Position: Point{X: DefaultPanelX, Y: DefaultPanelY},
		Size:     Size{Width: DefaultPanelWidth, Height: DefaultPanelHeight},
	}
}

// Bounds returns the canvas rectangle covered by the state.
func (s PanelState) Bounds() Bounds {
	return BoundsOf(s.Position, s.Size)
}

// PanelRecord is a decoded persisted blob. Missing fields are nil so that
// each one can fall back to its own default.
type PanelRecord struct {
	Position *Point `json:"position,omitempty"`
	Size     *Size  `json:"size,omitempty"`
	IsPinned *bool  `json:"isPinned,omitempty"`
}

// RecordOf wraps a full state as a record.
func RecordOf(s PanelState) PanelRecord {
	pos, size, pinned := s.Position, s.Size, s.IsPinned
	return PanelRecord{Position: &pos, Size: &size, IsPinned: &pinned}
}

// Merge fills the fields missing from r with defaults.
// Non-finite coordinates are treated as missing and the size is clamped to
// the panel minimums.
func (r PanelRecord) Merge(defaults PanelState) PanelState {
	out := defaults
	if r.Position != nil && isFinite(r.Position.X) && isFinite(r.Position.Y) {
		out.Position = *r.Position
	}
	if r.Size != nil && isFinite(r.Size.Width) && isFinite(r.Size.Height) {
		out.Size = *r.Size
	}
	if r.IsPinned != nil {
		out.IsPinned = *r.IsPinned
	}
	out.Size = ClampSize(out.Size)
	return out
}

// ClampSize enforces the minimum panel size. There is no upper bound.
func ClampSize(s Size) Size {
	return Size{
		Width:  math.Max(MinPanelWidth, s.Width),
		Height: math.Max(MinPanelHeight, s.Height),
	}
}
