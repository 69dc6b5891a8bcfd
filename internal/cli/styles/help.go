package styles

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/lipgloss"
)

// KeyMap defines keybindings that can be rendered as help.
type KeyMap interface {
	ShortHelp() []key.Binding
	FullHelp() [][]key.Binding
}

// CanvasKeyMap defines keybindings for the canvas view. Space, z and the
// reset word are interpreted by the canvas keyboard handler; the bindings
// here only document them and match the view-level keys.
type CanvasKeyMap struct {
	Pause   key.Binding
	Rewind  key.Binding
	ShowAll key.Binding
	Reset   key.Binding
	Pan     key.Binding
	Zoom    key.Binding
	Metric  key.Binding
	Help    key.Binding
	Quit    key.Binding
}

// ShortHelp returns keybindings to show in compact help.
func (k CanvasKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Pause, k.ShowAll, k.Metric, k.Help, k.Quit}
}

// FullHelp returns keybindings for expanded help.
func (k CanvasKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Pause, k.Rewind},
		{k.ShowAll, k.Pan, k.Zoom},
		{k.Metric, k.Reset},
		{k.Help, k.Quit},
	}
}

// DefaultCanvasKeyMap returns the default canvas keybindings.
func DefaultCanvasKeyMap() CanvasKeyMap {
	return CanvasKeyMap{
		Pause: key.NewBinding(
			key.WithKeys(" "),
			key.WithHelp("space", "play/pause"),
		),
		Rewind: key.NewBinding(
			key.WithKeys(" "),
			key.WithHelp("space×3", "rewind"),
		),
		ShowAll: key.NewBinding(
			key.WithKeys("z", "Z"),
			key.WithHelp("z", "show all"),
		),
		Reset: key.NewBinding(
			key.WithHelp("idkfa", "reset everything"),
		),
		Pan: key.NewBinding(
			key.WithHelp("shift+drag", "pan"),
		),
		Zoom: key.NewBinding(
			key.WithHelp("wheel", "zoom"),
		),
		Metric: key.NewBinding(
			key.WithKeys("1", "2", "3", "4", "5", "6", "7", "8", "9"),
			key.WithHelp("1-9", "toggle metric"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "esc", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// NewStyledHelp creates a themed help model.
func NewStyledHelp(theme *Theme) help.Model {
	h := help.New()
	h.Styles.ShortKey = theme.HelpKey
	h.Styles.ShortDesc = theme.HelpDesc
	h.Styles.ShortSeparator = lipgloss.NewStyle().Foreground(theme.Border)
	h.Styles.FullKey = theme.HelpKey
	h.Styles.FullDesc = lipgloss.NewStyle().Foreground(theme.Text)
	h.Styles.FullSeparator = lipgloss.NewStyle().Foreground(theme.Border)
	return h
}
