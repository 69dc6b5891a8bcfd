package model

import "sync"

// Terminal cell size in screen pixels. Pointer positions are reported at
// the centre of the cell under the mouse.
const (
	CellWidth  = 10.0
	CellHeight = 20.0
)

// TerminalViewport reports the drawable part of the terminal in screen
// pixels. It implements port.Viewport.
type TerminalViewport struct {
	mu     sync.RWMutex
	width  float64
	height float64
}

// NewTerminalViewport creates a viewport of cols x rows cells.
func NewTerminalViewport(cols, rows int) *TerminalViewport {
	v := &TerminalViewport{}
	v.Resize(cols, rows)
	return v
}

// Resize sets the drawable area in cells.
func (v *TerminalViewport) Resize(cols, rows int) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.width = float64(max(cols, 0)) * CellWidth
	v.height = float64(max(rows, 0)) * CellHeight
}

// Size returns the drawable area in pixels.
func (v *TerminalViewport) Size() (width, height float64) {
	v.mu.RLock()
	defer v.mu.RUnlock()
	return v.width, v.height
}

// Cells returns the drawable area in cells.
func (v *TerminalViewport) Cells() (cols, rows int) {
	w, h := v.Size()
	return int(w / CellWidth), int(h / CellHeight)
}

// CellToScreen maps a terminal cell to the pixel at its centre.
func CellToScreen(col, row int) (x, y float64) {
	return float64(col)*CellWidth + CellWidth/2, float64(row)*CellHeight + CellHeight/2
}
