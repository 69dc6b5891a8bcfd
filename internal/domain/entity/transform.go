package entity

import "math"

// Canvas zoom constants.
const (
	ZoomDefault = 1.0
	ZoomMin     = 0.1
	ZoomMax     = 10.0
)

// CanvasTransform maps canvas space onto the screen.
// screen = canvas*ZoomScale + PanOffset.
type CanvasTransform struct {
	PanOffsetX float64 `json:"panOffsetX"`
	PanOffsetY float64 `json:"panOffsetY"`
	ZoomScale  float64 `json:"zoomScale"`
}

// DefaultTransform returns the identity transform.
func DefaultTransform() CanvasTransform {
	return CanvasTransform{ZoomScale: ZoomDefault}
}

// NewTransform builds a transform with the zoom clamped to the valid range.
func NewTransform(panX, panY, zoom float64) CanvasTransform {
	return CanvasTransform{PanOffsetX: panX, PanOffsetY: panY, ZoomScale: ClampZoom(zoom)}.Normalize()
}

// ScreenToCanvas converts a screen point to canvas space.
func (t CanvasTransform) ScreenToCanvas(sx, sy float64) Point {
	return Point{
		X: (sx - t.PanOffsetX) / t.ZoomScale,
		Y: (sy - t.PanOffsetY) / t.ZoomScale,
	}
}

// CanvasToScreen converts a canvas point to screen space.
func (t CanvasTransform) CanvasToScreen(cx, cy float64) Point {
	return Point{
		X: cx*t.ZoomScale + t.PanOffsetX,
		Y: cy*t.ZoomScale + t.PanOffsetY,
	}
}

// ZoomAt returns the transform zoomed to newZoom while keeping the canvas
// point under (focalX, focalY) fixed on screen.
func (t CanvasTransform) ZoomAt(focalX, focalY, newZoom float64) CanvasTransform {
	newZoom = ClampZoom(newZoom)
	focal := t.ScreenToCanvas(focalX, focalY)
	return CanvasTransform{
		PanOffsetX: focalX - focal.X*newZoom,
		PanOffsetY: focalY - focal.Y*newZoom,
		ZoomScale:  newZoom,
	}
}

// Pan returns the transform shifted by a screen delta.
func (t CanvasTransform) Pan(dx, dy float64) CanvasTransform {
	t.PanOffsetX += dx
	t.PanOffsetY += dy
	return t
}

// Lerp interpolates every component towards to. p is clamped to [0, 1].
func (t CanvasTransform) Lerp(to CanvasTransform, p float64) CanvasTransform {
	p = math.Max(0, math.Min(1, p))
	return CanvasTransform{
		PanOffsetX: t.PanOffsetX + (to.PanOffsetX-t.PanOffsetX)*p,
		PanOffsetY: t.PanOffsetY + (to.PanOffsetY-t.PanOffsetY)*p,
		ZoomScale:  ClampZoom(t.ZoomScale + (to.ZoomScale-t.ZoomScale)*p),
	}
}

// Normalize replaces unusable components with defaults.
// A zero, negative or non-finite zoom becomes ZoomDefault and a
// non-finite offset becomes 0.
func (t CanvasTransform) Normalize() CanvasTransform {
	if !isFinite(t.ZoomScale) || t.ZoomScale <= 0 {
		t.ZoomScale = ZoomDefault
	}
	t.ZoomScale = ClampZoom(t.ZoomScale)
	if !isFinite(t.PanOffsetX) {
		t.PanOffsetX = 0
	}
	if !isFinite(t.PanOffsetY) {
		t.PanOffsetY = 0
	}
	return t
}

// ZoomPercent returns the zoom as a rounded percentage.
func (t CanvasTransform) ZoomPercent() int {
	return int(math.Round(t.ZoomScale * 100))
}

// ClampZoom constrains a zoom factor to [ZoomMin, ZoomMax].
func ClampZoom(zoom float64) float64 {
	if math.IsNaN(zoom) || zoom < ZoomMin {
		return ZoomMin
	}
	if zoom > ZoomMax {
		return ZoomMax
	}
	return zoom
}
