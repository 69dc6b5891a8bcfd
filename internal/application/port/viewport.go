package port

// Viewport reports the live size of the visible area in screen pixels.
type Viewport interface {
	Size() (width, height float64)
}

// ViewportFunc adapts a function to the Viewport interface.
type ViewportFunc func() (width, height float64)

// Size calls f.
func (f ViewportFunc) Size() (width, height float64) {
	return f()
}

// FixedViewport is a viewport that never changes size.
type FixedViewport struct {
	Width  float64
	Height float64
}

// Size returns the fixed dimensions.
func (v FixedViewport) Size() (width, height float64) {
	return v.Width, v.Height
}
