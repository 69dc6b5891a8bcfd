package entity

// PanelEventKind identifies what changed on a panel.
type PanelEventKind int

const (
	PanelMounted PanelEventKind = iota
	PanelGeometryChanged
	PanelDecorationChanged
	PanelPinChanged
	PanelFlipChanged
	PanelVisibilityChanged
	PanelContentChanged
	PanelDestroyed
)

func (k PanelEventKind) String() string {
	switch k {
	case PanelMounted:
		return "mounted"
	case PanelGeometryChanged:
		return "geometry"
	case PanelDecorationChanged:
		return "decoration"
	case PanelPinChanged:
		return "pin"
	case PanelFlipChanged:
		return "flip"
	case PanelVisibilityChanged:
		return "visibility"
	case PanelContentChanged:
		return "content"
	case PanelDestroyed:
		return "destroyed"
	default:
		return "unknown"
	}
}

// PanelEvent is a full snapshot of a panel's presentational state, tagged
// with the kind of change that produced it. Renderers can redraw from the
// snapshot alone.
type PanelEvent struct {
	Kind       PanelEventKind
	PanelID    PanelID
	Title      string
	Bounds     Bounds
	Pinned     bool
	Pinnable   bool
	Resizable  bool
	Flipped    bool
	Visible    bool
	Container  string
	Content    any
	Padded     bool
	Decoration Decoration
}
