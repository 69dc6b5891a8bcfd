// Package svg renders a snapshot of the canvas as an SVG document.
package svg

import (
	"fmt"
	"os"
	"strings"

	"github.com/bnema/cardboard/internal/domain/entity"
	"github.com/bnema/cardboard/internal/infrastructure/render"
)

// Chrome sizes, in canvas units.
const (
	headerHeight = 32.0
	iconWidth    = 24.0
	fontSize     = 14
	fontFamily   = "Inter, Arial, sans-serif"
)

// Frame is everything needed to draw one picture of the canvas.
type Frame struct {
	Width     float64
	Height    float64
	Transform entity.CanvasTransform
	// Panels are drawn in order, later panels on top. Hidden panels are skipped.
	Panels  []entity.PanelEvent
	Caption string
}

// Render returns the SVG document of f.
func Render(f Frame) string {
	t := f.Transform.Normalize()

	var svg strings.Builder
	svg.WriteString(fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8"?>
<svg width="%s" height="%s" viewBox="0 0 %s %s" xmlns="http://www.w3.org/2000/svg">
`, num(f.Width), num(f.Height), num(f.Width), num(f.Height)))
	svg.WriteString(fmt.Sprintf(`<rect width="100%%" height="100%%" fill="%s"/>`+"\n", render.Background))
	svg.WriteString(fmt.Sprintf(`<g transform="translate(%s %s) scale(%s)">`+"\n",
		num(t.PanOffsetX), num(t.PanOffsetY), num(t.ZoomScale)))

	for _, p := range f.Panels {
		if !p.Visible {
			continue
		}
		drawPanel(&svg, p)
	}
	svg.WriteString("</g>\n")

	if f.Caption != "" {
		svg.WriteString(fmt.Sprintf(`<text x="10" y="%s" font-family="%s" font-size="12" fill="#888888">%s</text>`+"\n",
			num(f.Height-10), fontFamily, escapeXML(f.Caption)))
	}
	svg.WriteString("</svg>\n")
	return svg.String()
}

// WriteFile renders f to path.
func WriteFile(path string, f Frame) error {
	if err := os.WriteFile(path, []byte(Render(f)), 0o644); err != nil {
		return fmt.Errorf("failed to write svg: %w", err)
	}
	return nil
}

func drawPanel(svg *strings.Builder, p entity.PanelEvent) {
	b := p.Bounds
	svg.WriteString(fmt.Sprintf(`<g id="card-%s" class="card %s">`+"\n",
		escapeXML(string(p.PanelID)), p.Decoration.Kind))

	if glow := render.StrongestEdge(p.Decoration); render.GlowColor(glow) != "" {
		spread := glow.GlowSpread
		svg.WriteString(fmt.Sprintf(`<rect x="%s" y="%s" width="%s" height="%s" rx="%s" fill="none" stroke="%s" stroke-width="%s" stroke-opacity="0.5"/>`+"\n",
			num(b.Left-spread/2), num(b.Top-spread/2), num(b.Width+spread), num(b.Height+spread),
			num(spread/2), render.GlowColor(glow), num(spread)))
	}

	svg.WriteString(fmt.Sprintf(`<rect x="%s" y="%s" width="%s" height="%s" fill="%s"/>`+"\n",
		num(b.Left), num(b.Top), num(b.Width), num(b.Height), render.CardFill))
	svg.WriteString(fmt.Sprintf(`<rect x="%s" y="%s" width="%s" height="%s" fill="%s"/>`+"\n",
		num(b.Left), num(b.Top), num(b.Width), num(min(headerHeight, b.Height)), render.Background))

	title := p.Title
	if p.Flipped {
		title += " · settings"
	}
	svg.WriteString(fmt.Sprintf(`<text x="%s" y="%s" font-family="%s" font-size="%d" fill="#eeeeee">%s</text>`+"\n",
		num(b.Left+8), num(b.Top+headerHeight/2+fontSize/3), fontFamily, fontSize, escapeXML(title)))

	icon := "⚙"
	if p.Flipped {
		icon = "✕"
	}
	drawIcon(svg, b.Right-iconWidth/2, b.Top+headerHeight/2, icon)
	if p.Pinnable {
		pin := "○"
		if p.Pinned {
			pin = "●"
		}
		drawIcon(svg, b.Right-iconWidth*1.5, b.Top+headerHeight/2, pin)
	}

	if body := fmt.Sprint(valueOr(p.Content)); !p.Flipped && body != "" {
		pad := 8.0
		if !p.Padded {
			pad = 0
		}
		svg.WriteString(fmt.Sprintf(`<text x="%s" y="%s" font-family="%s" font-size="12" fill="#bbbbbb">%s</text>`+"\n",
			num(b.Left+pad), num(b.Top+headerHeight+pad+12), fontFamily, escapeXML(body)))
	}

	if p.Resizable {
		svg.WriteString(fmt.Sprintf(`<path d="M%s,%s L%s,%s L%s,%s Z" fill="#555555"/>`+"\n",
			num(b.Right), num(b.Bottom-12), num(b.Right), num(b.Bottom), num(b.Right-12), num(b.Bottom)))
	}

	drawEdges(svg, p.Decoration, b)
	svg.WriteString("</g>\n")
}

func drawIcon(svg *strings.Builder, x, y float64, glyph string) {
	svg.WriteString(fmt.Sprintf(`<text x="%s" y="%s" text-anchor="middle" font-family="%s" font-size="12" fill="#aaaaaa">%s</text>`+"\n",
		num(x), num(y+4), fontFamily, glyph))
}

func drawEdges(svg *strings.Builder, d entity.Decoration, b entity.Bounds) {
	lines := map[entity.Edge][4]float64{
		entity.EdgeLeft:   {b.Left, b.Top, b.Left, b.Bottom},
		entity.EdgeTop:    {b.Left, b.Top, b.Right, b.Top},
		entity.EdgeRight:  {b.Right, b.Top, b.Right, b.Bottom},
		entity.EdgeBottom: {b.Left, b.Bottom, b.Right, b.Bottom},
	}
	for _, e := range entity.Edges {
		style := d.Edge(e)
		width := style.Width
		if width <= 0 {
			width = 1
		}
		l := lines[e]
		svg.WriteString(fmt.Sprintf(`<line class="edge-%s" x1="%s" y1="%s" x2="%s" y2="%s" stroke="%s" stroke-width="%s"/>`+"\n",
			e, num(l[0]), num(l[1]), num(l[2]), num(l[3]), render.EdgeColor(style), num(width)))
	}
}

func valueOr(v any) any {
	if v == nil {
		return ""
	}
	return v
}

// num formats a coordinate with at most two decimals.
func num(v float64) string {
	s := fmt.Sprintf("%.2f", v)
	s = strings.TrimRight(s, "0")
	s = strings.TrimSuffix(s, ".")
	if s == "-0" {
		return "0"
	}
	return s
}

// escapeXML escapes special XML characters in a string to ensure valid SVG output.
func escapeXML(s string) string {
	s = strings.ReplaceAll(s, "&", "&amp;")
	s = strings.ReplaceAll(s, "<", "&lt;")
	s = strings.ReplaceAll(s, ">", "&gt;")
	s = strings.ReplaceAll(s, "\"", "&quot;")
	s = strings.ReplaceAll(s, "'", "&#39;")
	return s
}
