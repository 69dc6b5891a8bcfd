package model

import (
	"fmt"
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"github.com/bnema/cardboard/internal/cli/styles"
	"github.com/bnema/cardboard/internal/domain/entity"
	"github.com/bnema/cardboard/internal/infrastructure/render"
)

const headerRows = 1

type cell struct {
	r    rune
	fg   string
	bold bool
	// cont marks the second half of a wide rune.
	cont bool
}

// grid is a rune canvas with one colour per cell.
type grid struct {
	cols, rows int
	cells      [][]cell
}

func newGrid(cols, rows int) *grid {
	g := &grid{cols: max(cols, 0), rows: max(rows, 0)}
	g.cells = make([][]cell, g.rows)
	for y := range g.cells {
		g.cells[y] = make([]cell, g.cols)
		for x := range g.cells[y] {
			g.cells[y][x] = cell{r: ' '}
		}
	}
	return g
}

func (g *grid) set(x, y int, r rune, fg string, bold bool) {
	if x < 0 || y < 0 || x >= g.cols || y >= g.rows {
		return
	}
	g.cells[y][x] = cell{r: r, fg: fg, bold: bold}
}

// text writes s from x, clipped at limit (exclusive), honouring wide runes.
func (g *grid) text(x, y, limit int, s, fg string, bold bool) {
	for _, r := range s {
		w := runewidth.RuneWidth(r)
		if w == 0 {
			continue
		}
		if x+w > limit {
			return
		}
		g.set(x, y, r, fg, bold)
		if w == 2 && x >= 0 && x+1 < g.cols && y >= 0 && y < g.rows {
			g.cells[y][x+1] = cell{cont: true}
		}
		x += w
	}
}

// String renders the grid, merging runs of the same style.
func (g *grid) String() string {
	var b strings.Builder
	for y, row := range g.cells {
		if y > 0 {
			b.WriteByte('\n')
		}
		var run strings.Builder
		var style cell
		flush := func() {
			if run.Len() == 0 {
				return
			}
			if style.fg == "" && !style.bold {
				b.WriteString(run.String())
			} else {
				st := lipgloss.NewStyle().Bold(style.bold)
				if style.fg != "" {
					st = st.Foreground(lipgloss.Color(style.fg))
				}
				b.WriteString(st.Render(run.String()))
			}
			run.Reset()
		}
		for _, c := range row {
			if c.cont {
				continue
			}
			if c.fg != style.fg || c.bold != style.bold {
				flush()
				style = c
			}
			run.WriteRune(c.r)
		}
		flush()
	}
	return b.String()
}

// cellRect is a panel's footprint in terminal cells, inclusive.
type cellRect struct {
	left, top, right, bottom int
}

// maxCellCoord bounds cell coordinates so that huge canvas values stay
// representable as int.
const maxCellCoord = 1 << 24

func cellCoord(v float64) int {
	if math.IsNaN(v) {
		return 0
	}
	return int(math.Max(-maxCellCoord, math.Min(maxCellCoord, v)))
}

func toCells(b entity.Bounds, t entity.CanvasTransform) cellRect {
	tl := t.CanvasToScreen(b.Left, b.Top)
	br := t.CanvasToScreen(b.Right, b.Bottom)
	r := cellRect{
		left:   cellCoord(math.Floor(tl.X / CellWidth)),
		top:    cellCoord(math.Floor(tl.Y / CellHeight)),
		right:  cellCoord(math.Ceil(br.X/CellWidth)) - 1,
		bottom: cellCoord(math.Ceil(br.Y/CellHeight)) - 1,
	}
	// Keep at least a visible frame when zoomed far out.
	r.right = max(r.right, r.left+1)
	r.bottom = max(r.bottom, r.top+1)
	return r
}

// renderCanvas draws the visible panels, bottom to top.
func renderCanvas(panels []entity.PanelEvent, t entity.CanvasTransform, cols, rows int) string {
	g := newGrid(cols, rows)
	for _, p := range panels {
		if p.Visible {
			drawPanel(g, p, t)
		}
	}
	return g.String()
}

func drawPanel(g *grid, p entity.PanelEvent, t entity.CanvasTransform) {
	r := toCells(p.Bounds, t)
	if r.right < 0 || r.bottom < 0 || r.left >= g.cols || r.top >= g.rows {
		return
	}
	d := p.Decoration

	// Loops only walk the part of the panel inside the grid.
	x0, x1 := max(r.left, 0), min(r.right, g.cols-1)
	y0, y1 := max(r.top, 0), min(r.bottom, g.rows-1)
	for y := y0; y <= y1; y++ {
		for x := x0; x <= x1; x++ {
			g.set(x, y, ' ', "", false)
		}
	}

	top := render.EdgeColor(d.Edge(entity.EdgeTop))
	bottom := render.EdgeColor(d.Edge(entity.EdgeBottom))
	left := render.EdgeColor(d.Edge(entity.EdgeLeft))
	right := render.EdgeColor(d.Edge(entity.EdgeRight))
	heavy := d.Kind != entity.DecorationNeutral

	h, v := '─', '│'
	tl, tr, bl, br := '┌', '┐', '└', '┘'
	if heavy {
		h, v = '━', '┃'
		tl, tr, bl, br = '┏', '┓', '┗', '┛'
	}

	for x := max(r.left+1, x0); x < r.right && x <= x1; x++ {
		g.set(x, r.top, h, top, heavy)
		g.set(x, r.bottom, h, bottom, heavy)
	}
	for y := max(r.top+1, y0); y < r.bottom && y <= y1; y++ {
		g.set(r.left, y, v, left, heavy)
		g.set(r.right, y, v, right, heavy)
	}
	g.set(r.left, r.top, tl, top, heavy)
	g.set(r.right, r.top, tr, top, heavy)
	g.set(r.left, r.bottom, bl, bottom, heavy)
	g.set(r.right, r.bottom, br, bottom, heavy)

	// Header: title on the top border, icons at its right end.
	icons := []string{styles.GlyphSettings}
	if p.Flipped {
		icons[0] = styles.GlyphClose
	}
	if p.Pinnable {
		pin := styles.GlyphUnpinned
		if p.Pinned {
			pin = styles.GlyphPinned
		}
		icons = append(icons, pin)
	}
	iconX := r.right - 1
	for _, icon := range icons {
		g.text(iconX, r.top, r.right, icon, "#aaaaaa", false)
		iconX -= 2
	}

	title := p.Title
	if p.Flipped {
		title += " · settings"
	}
	room := iconX - r.left - 1
	if room > 2 {
		title = runewidth.Truncate(" "+title+" ", room, styles.GlyphEllipsis)
		g.text(r.left+1, r.top, iconX+1, title, "#eeeeee", true)
	}

	if !p.Flipped && p.Content != nil && r.bottom-r.top > headerRows+1 {
		body := fmt.Sprint(p.Content)
		pad := 1
		if !p.Padded {
			pad = 0
		}
		width := r.right - r.left - 1 - 2*pad
		if width > 0 {
			body = runewidth.Truncate(body, width, styles.GlyphEllipsis)
			g.text(r.left+1+pad, r.top+headerRows+pad, r.right, body, "#bbbbbb", false)
		}
	}

	if p.Resizable {
		g.set(r.right, r.bottom, []rune(styles.GlyphResize)[0], right, heavy)
	}
}
