package model

import (
	"context"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/cardboard/internal/application/usecase"
	"github.com/bnema/cardboard/internal/cli/styles"
	"github.com/bnema/cardboard/internal/domain/entity"
	"github.com/bnema/cardboard/internal/infrastructure/config"
	"github.com/bnema/cardboard/internal/infrastructure/persistence/kvrepo"
	"github.com/bnema/cardboard/internal/infrastructure/persistence/memory"
	"github.com/bnema/cardboard/internal/logging"
	"github.com/bnema/cardboard/internal/ui"
	"github.com/bnema/cardboard/internal/ui/scene"
)

var testNow = time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)

func testContext() context.Context {
	logger := logging.NewFromConfigValues("debug", "console")
	return logging.WithContext(context.Background(), logger)
}

func newTestCanvasModel(t *testing.T) (CanvasModel, *ui.Workbench, *scene.Scene, *memory.KVStore) {
	t.Helper()
	ctx := testContext()
	store := memory.NewKVStore()
	sc := scene.New()
	vp := NewTerminalViewport(0, 0)

	wb, err := ui.NewWorkbench(&ui.Dependencies{
		Ctx:          ctx,
		Config:       config.DefaultConfig(),
		Viewport:     vp,
		Sink:         sc,
		PanelsUC:     usecase.NewManagePanelStateUseCase(kvrepo.NewPanelStateRepository(store)),
		CanvasUC:     usecase.NewManageCanvasUseCase(kvrepo.NewCanvasStateRepository(store)),
		VisibilityUC: usecase.NewManageMetricVisibilityUseCase(kvrepo.NewMetricVisibilityRepository(store)),
		ResetUC:      usecase.NewResetStateUseCase(store),
		Now:          func() time.Time { return testNow },
	})
	require.NoError(t, err)
	require.NoError(t, wb.BuildScenePanels())

	m := NewCanvasModel(ctx, styles.NewTheme(), CanvasModelConfig{
		Workbench: wb,
		Scene:     sc,
		Viewport:  vp,
		Now:       func() time.Time { return testNow },
	})
	return m, wb, sc, store
}

func update(t *testing.T, m CanvasModel, msg tea.Msg) (CanvasModel, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	cm, ok := next.(CanvasModel)
	require.True(t, ok)
	return cm, cmd
}

func TestCanvasModel_WindowSizeResizesViewport(t *testing.T) {
	m, _, _, _ := newTestCanvasModel(t)

	m, _ = update(t, m, tea.WindowSizeMsg{Width: 100, Height: 42})

	w, h := m.viewport.Size()
	assert.Equal(t, 1000.0, w)
	assert.Equal(t, 800.0, h)
	cols, rows := m.viewport.Cells()
	assert.Equal(t, 100, cols)
	assert.Equal(t, 40, rows)
}

func TestCanvasModel_MouseDragMovesCard(t *testing.T) {
	m, wb, sc, _ := newTestCanvasModel(t)
	m, _ = update(t, m, tea.WindowSizeMsg{Width: 100, Height: 42})

	m, _ = update(t, m, tea.MouseMsg{X: 10, Y: 1, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
	m, _ = update(t, m, tea.MouseMsg{X: 15, Y: 3, Action: tea.MouseActionMotion, Button: tea.MouseButtonLeft})
	_, _ = update(t, m, tea.MouseMsg{X: 15, Y: 3, Action: tea.MouseActionRelease, Button: tea.MouseButtonNone})

	p, ok := wb.Registry().Get("traffic_visitors")
	require.True(t, ok)
	assert.Equal(t, entity.Point{X: 70, Y: 60}, p.State().Position)

	ev, ok := sc.Panel("traffic_visitors")
	require.True(t, ok)
	assert.Equal(t, 70.0, ev.Bounds.Left)
}

func TestCanvasModel_ShiftDragPans(t *testing.T) {
	m, wb, _, _ := newTestCanvasModel(t)
	m, _ = update(t, m, tea.WindowSizeMsg{Width: 100, Height: 42})

	m, _ = update(t, m, tea.MouseMsg{X: 10, Y: 1, Shift: true, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
	m, _ = update(t, m, tea.MouseMsg{X: 12, Y: 2, Shift: true, Action: tea.MouseActionMotion, Button: tea.MouseButtonLeft})
	_, _ = update(t, m, tea.MouseMsg{X: 12, Y: 2, Action: tea.MouseActionRelease})

	tr := wb.Canvas().Transform()
	assert.Equal(t, 20.0, tr.PanOffsetX)
	assert.Equal(t, 20.0, tr.PanOffsetY)

	p, _ := wb.Registry().Get("traffic_visitors")
	assert.Equal(t, entity.Point{X: 20, Y: 20}, p.State().Position)
}

func TestCanvasModel_WheelZooms(t *testing.T) {
	m, wb, _, _ := newTestCanvasModel(t)
	m, _ = update(t, m, tea.WindowSizeMsg{Width: 100, Height: 42})

	_, _ = update(t, m, tea.MouseMsg{X: 0, Y: 0, Action: tea.MouseActionPress, Button: tea.MouseButtonWheelUp})
	assert.Greater(t, wb.Canvas().Transform().ZoomScale, 1.0)
}

func TestCanvasModel_NumberKeyTogglesMetric(t *testing.T) {
	m, wb, sc, store := newTestCanvasModel(t)

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("1")})

	p, ok := wb.Registry().Get("traffic_visitors")
	require.True(t, ok)
	assert.False(t, p.Visible())
	_, ok = sc.Panel("traffic_visitors")
	assert.True(t, ok)
	for _, ev := range sc.Panels() {
		assert.NotEqual(t, entity.PanelID("traffic_visitors"), ev.PanelID)
	}
	assert.Contains(t, m.status, "traffic/visitors hidden")
	assert.Positive(t, store.Len())

	// Out of range numbers are ignored.
	_, _ = update(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("9")})
}

func TestCanvasModel_SpaceTogglesPlayback(t *testing.T) {
	m, wb, _, _ := newTestCanvasModel(t)
	require.NotNil(t, wb.Playback())
	paused := wb.Playback().IsPaused()

	_, _ = update(t, m, tea.KeyMsg{Type: tea.KeySpace, Runes: []rune(" ")})

	assert.NotEqual(t, paused, wb.Playback().IsPaused())
}

func TestCanvasModel_HelpToggle(t *testing.T) {
	m, _, _, _ := newTestCanvasModel(t)

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("?")})
	assert.True(t, m.showHelp)
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("?")})
	assert.False(t, m.showHelp)
}

func TestCanvasModel_QuitReturnsQuitCmd(t *testing.T) {
	m, wb, _, _ := newTestCanvasModel(t)

	_, cmd := update(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")})

	assert.True(t, wb.Done())
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
}

func TestCanvasModel_FrameReschedules(t *testing.T) {
	m, _, _, _ := newTestCanvasModel(t)

	_, cmd := update(t, m, frameMsg(testNow))
	assert.NotNil(t, cmd)
}

func TestCanvasModel_View(t *testing.T) {
	m, _, _, _ := newTestCanvasModel(t)
	assert.Equal(t, "loading…", m.View())

	m, _ = update(t, m, tea.WindowSizeMsg{Width: 100, Height: 42})
	view := m.View()

	assert.Contains(t, view, "Visitors")
	assert.Contains(t, view, "┌")
	assert.Contains(t, view, "100%")
	assert.Contains(t, view, "2024-")
}

func TestCanvasModel_ConfigChanged(t *testing.T) {
	m, wb, _, _ := newTestCanvasModel(t)
	cfg := config.DefaultConfig()
	cfg.UI.DragBorderMargin = 25

	m, _ = update(t, m, ConfigChangedMsg{Config: cfg})

	assert.Equal(t, 25.0, wb.Registry().BorderMargin())
	assert.Equal(t, "configuration reloaded", m.status)
}
