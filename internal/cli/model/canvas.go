// Package model holds the bubbletea models of the cardboard terminal UI.
package model

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/bnema/cardboard/internal/cli/styles"
	"github.com/bnema/cardboard/internal/domain/entity"
	"github.com/bnema/cardboard/internal/infrastructure/config"
	"github.com/bnema/cardboard/internal/logging"
	"github.com/bnema/cardboard/internal/ui"
	"github.com/bnema/cardboard/internal/ui/input"
	"github.com/bnema/cardboard/internal/ui/scene"
)

// Rows reserved below the canvas for the status line and help.
const chromeRows = 2

// wheelStep is the wheel delta sent for one terminal scroll notch.
const wheelStep = 100.0

const defaultFrameInterval = time.Second / 30

type frameMsg time.Time

// ConfigChangedMsg carries a reloaded configuration into the view. Send it
// with tea.Program.Send from the config watcher.
type ConfigChangedMsg struct {
	Config *config.Config
}

// CanvasModelConfig holds the collaborators of the canvas view.
type CanvasModelConfig struct {
	Workbench *ui.Workbench
	Scene     *scene.Scene
	Viewport  *TerminalViewport
	// FrameInterval defaults to 30 frames per second.
	FrameInterval time.Duration
	// Now defaults to time.Now.
	Now func() time.Time
}

// CanvasModel is the bubbletea model that draws the card canvas and feeds
// terminal mouse and key events to the workbench.
type CanvasModel struct {
	ctx      context.Context
	wb       *ui.Workbench
	scene    *scene.Scene
	viewport *TerminalViewport
	interval time.Duration
	now      func() time.Time

	theme    *styles.Theme
	keys     styles.CanvasKeyMap
	help     help.Model
	showHelp bool

	width  int
	height int
	status string
}

// NewCanvasModel creates the canvas view.
func NewCanvasModel(ctx context.Context, theme *styles.Theme, cfg CanvasModelConfig) CanvasModel {
	if cfg.FrameInterval <= 0 {
		cfg.FrameInterval = defaultFrameInterval
	}
	if cfg.Now == nil {
		cfg.Now = time.Now
	}
	if cfg.Viewport == nil {
		cfg.Viewport = NewTerminalViewport(0, 0)
	}
	if theme == nil {
		theme = styles.NewTheme()
	}
	return CanvasModel{
		ctx:      logging.WithComponent(ctx, "canvas-view"),
		wb:       cfg.Workbench,
		scene:    cfg.Scene,
		viewport: cfg.Viewport,
		interval: cfg.FrameInterval,
		now:      cfg.Now,
		theme:    theme,
		keys:     styles.DefaultCanvasKeyMap(),
		help:     styles.NewStyledHelp(theme),
	}
}

// Init implements tea.Model.
func (m CanvasModel) Init() tea.Cmd {
	return m.frame()
}

func (m CanvasModel) frame() tea.Cmd {
	return tea.Tick(m.interval, func(t time.Time) tea.Msg {
		return frameMsg(t)
	})
}

// Update implements tea.Model.
func (m CanvasModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.viewport.Resize(msg.Width, msg.Height-chromeRows)
		return m, nil

	case frameMsg:
		m.wb.Tick(time.Time(msg))
		if m.wb.Done() {
			return m, tea.Quit
		}
		return m, m.frame()

	case ConfigChangedMsg:
		m.wb.ApplyConfig(msg.Config)
		m.status = "configuration reloaded"
		return m, nil

	case tea.MouseMsg:
		m.handleMouse(msg)

	case tea.KeyMsg:
		m.handleKey(msg)
	}

	if m.wb.Done() {
		return m, tea.Quit
	}
	return m, nil
}

func (m *CanvasModel) handleMouse(msg tea.MouseMsg) {
	x, y := CellToScreen(msg.X, msg.Y)
	ev := input.PointerEvent{X: x, Y: y}
	if msg.Shift {
		ev.Mods |= input.ModShift
	}

	switch msg.Button {
	case tea.MouseButtonWheelUp:
		m.wb.Wheel(x, y, -wheelStep)
		return
	case tea.MouseButtonWheelDown:
		m.wb.Wheel(x, y, wheelStep)
		return
	case tea.MouseButtonLeft:
		ev.Button = input.ButtonPrimary
	case tea.MouseButtonMiddle:
		ev.Button = input.ButtonMiddle
	case tea.MouseButtonRight:
		ev.Button = input.ButtonSecondary
	}

	switch msg.Action {
	case tea.MouseActionPress:
		m.wb.PointerDown(ev)
	case tea.MouseActionMotion:
		m.wb.PointerMove(ev)
	case tea.MouseActionRelease:
		m.wb.PointerUp(ev)
	}
}

func (m *CanvasModel) handleKey(msg tea.KeyMsg) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.wb.Quit()
	case key.Matches(msg, m.keys.Help):
		m.showHelp = !m.showHelp
		m.help.ShowAll = m.showHelp
	case key.Matches(msg, m.keys.Metric):
		m.toggleMetric(int(msg.String()[0] - '0'))
	default:
		name := msg.String()
		if msg.Type == tea.KeySpace {
			name = input.KeySpace
		}
		m.wb.KeyDown(name)
		m.wb.KeyUp(name)
	}
}

// metricKeys lists the metric cards in creation order.
func (m CanvasModel) metricKeys() []entity.MetricKey {
	var keys []entity.MetricKey
	for _, p := range m.wb.Panels() {
		if k, ok := m.wb.MetricOf(p.ID()); ok && k.Metric != ui.LegendMetric {
			keys = append(keys, k)
		}
	}
	return keys
}

func (m *CanvasModel) toggleMetric(n int) {
	keys := m.metricKeys()
	if n < 1 || n > len(keys) {
		return
	}
	k := keys[n-1]
	visible, err := m.wb.ToggleMetric(k)
	if err != nil {
		logging.FromContext(m.ctx).Error().Err(err).Str("metric", k.String()).Msg("failed to toggle metric")
		m.status = m.theme.ErrorStyle.Render(err.Error())
		return
	}
	state := "hidden"
	if visible {
		state = "shown"
	}
	m.status = fmt.Sprintf("%s %s", k, state)
}

// View implements tea.Model.
func (m CanvasModel) View() string {
	if m.width == 0 || m.height == 0 {
		return "loading…"
	}
	cols, rows := m.viewport.Cells()

	var b strings.Builder
	b.WriteString(renderCanvas(m.scene.Panels(), m.scene.Transform(), cols, rows))
	b.WriteByte('\n')
	b.WriteString(m.statusLine())
	b.WriteByte('\n')
	b.WriteString(m.help.View(m.keys))
	return b.String()
}

func (m CanvasModel) statusLine() string {
	now := m.now()
	parts := []string{
		fmt.Sprintf("%s %d%%", styles.IconExpand, m.scene.Transform().ZoomPercent()),
	}
	if pb := m.wb.Playback(); pb != nil {
		icon := styles.IconPlay
		if pb.IsPaused() {
			icon = styles.IconPause
		}
		parts = append(parts,
			fmt.Sprintf("%s %s", styles.IconCalendar, pb.CurrentDate(now).Format(entity.DateLayout)),
			icon,
		)
	}
	if c := m.wb.Canvas(); c != nil && c.ShowingAll() {
		parts = append(parts, "all cards")
	}
	if m.status != "" {
		parts = append(parts, m.status)
	}
	return m.theme.StatusBar.Width(m.width).Render(strings.Join(parts, "  "))
}
