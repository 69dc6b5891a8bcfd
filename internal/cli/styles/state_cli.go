package styles

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/table"
)

// StateCLIRenderer renders non-interactive CLI output for state subcommands
// (e.g. `cardboard state list`, `reset`, `pin`).
type StateCLIRenderer struct {
	theme *Theme
}

func NewStateCLIRenderer(theme *Theme) *StateCLIRenderer {
	return &StateCLIRenderer{theme: theme}
}

func (r *StateCLIRenderer) RenderEmptyList() string {
	return r.theme.Subtle.Render("No saved cards found.")
}

// RenderList renders the stored cards and the canvas transform.
func (r *StateCLIRenderer) RenderList(rows []PanelRow, panX, panY, zoom float64) string {
	var b strings.Builder
	title := fmt.Sprintf("%s %s", r.theme.Highlight.Render(IconCard), r.theme.Title.Render("Cards"))
	b.WriteString(title)
	b.WriteString(r.theme.Subtle.Render(fmt.Sprintf(" (%d stored)", len(rows))))
	b.WriteString("\n\n")

	if len(rows) == 0 {
		b.WriteString(r.RenderEmptyList())
	} else {
		tableRows := make([]table.Row, len(rows))
		for i, row := range rows {
			tableRows[i] = row.ToRow()
		}
		t := NewStyledTable(r.theme, PanelTableColumns(), tableRows, 80, len(rows)+1)
		b.WriteString(t.View())
	}

	b.WriteString("\n\n")
	b.WriteString(fmt.Sprintf("%s %s  %s",
		r.theme.Subtitle.Render("Canvas"),
		r.theme.BadgeMuted.Render(fmt.Sprintf("pan %s,%s", formatFloat(panX), formatFloat(panY))),
		r.theme.BadgeMuted.Render(fmt.Sprintf("zoom %d%%", int(zoom*100+0.5))),
	))
	return b.String()
}

func (r *StateCLIRenderer) RenderReset(keys int) string {
	return fmt.Sprintf("%s Cleared %s saved keys.",
		r.theme.SuccessStyle.Render(IconTrash),
		r.theme.Highlight.Render(fmt.Sprintf("%d", keys)),
	)
}

func (r *StateCLIRenderer) RenderResetCanceled() string {
	return r.theme.Subtle.Render("Reset canceled, nothing was deleted.")
}

func (r *StateCLIRenderer) RenderPinned(id string, pinned bool) string {
	state := "unpinned"
	if pinned {
		state = "pinned"
	}
	return fmt.Sprintf("%s Card %s %s.",
		r.theme.SuccessStyle.Render(IconPin),
		r.theme.Highlight.Render(id),
		state,
	)
}

func (r *StateCLIRenderer) RenderForgotten(id string) string {
	return fmt.Sprintf("%s Card %s will start from its default layout.",
		r.theme.SuccessStyle.Render(IconTrash),
		r.theme.Highlight.Render(id),
	)
}

func (r *StateCLIRenderer) RenderError(err error) string {
	return fmt.Sprintf("%s %v", r.theme.ErrorStyle.Render(IconX), err)
}
