package styles

import (
	"math"
	"strconv"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/lipgloss"
)

// NewStyledTable creates a themed table model.
func NewStyledTable(theme *Theme, columns []table.Column, rows []table.Row, width, height int) table.Model {
	t := table.New(
		table.WithColumns(columns),
		table.WithRows(rows),
		table.WithFocused(false),
		table.WithHeight(height),
		table.WithWidth(width),
	)

	// Apply theme styles
	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(theme.Border).
		BorderBottom(true).
		Foreground(theme.Accent).
		Bold(true)
	s.Selected = s.Cell.
		Foreground(theme.Text)
	s.Cell = s.Cell.
		Foreground(theme.Text)

	t.SetStyles(s)
	return t
}

// PanelTableColumns returns columns for the stored card table.
func PanelTableColumns() []table.Column {
	return []table.Column{
		{Title: "Card", Width: 28},
		{Title: "X", Width: 9},
		{Title: "Y", Width: 9},
		{Title: "Width", Width: 8},
		{Title: "Height", Width: 8},
		{Title: "Pinned", Width: 6},
	}
}

// PanelRow is one stored card.
type PanelRow struct {
	ID     string
	X      float64
	Y      float64
	Width  float64
	Height float64
	Pinned bool
}

// ToRow converts to table.Row.
func (r PanelRow) ToRow() table.Row {
	pinned := ""
	if r.Pinned {
		pinned = GlyphPinned
	}
	return table.Row{r.ID, formatFloat(r.X), formatFloat(r.Y), formatFloat(r.Width), formatFloat(r.Height), pinned}
}

// formatFloat formats a coordinate with at most one decimal.
func formatFloat(f float64) string {
	return strconv.FormatFloat(math.Round(f*10)/10, 'f', -1, 64)
}
