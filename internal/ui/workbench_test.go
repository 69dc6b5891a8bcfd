package ui

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/cardboard/internal/application/port"
	"github.com/bnema/cardboard/internal/application/usecase"
	"github.com/bnema/cardboard/internal/domain/entity"
	"github.com/bnema/cardboard/internal/infrastructure/config"
	"github.com/bnema/cardboard/internal/infrastructure/persistence/kvrepo"
	"github.com/bnema/cardboard/internal/infrastructure/persistence/memory"
	"github.com/bnema/cardboard/internal/logging"
	"github.com/bnema/cardboard/internal/ui/card"
	"github.com/bnema/cardboard/internal/ui/input"
)

func testContext() context.Context {
	logger := logging.NewFromConfigValues("debug", "console")
	return logging.WithContext(context.Background(), logger)
}

type harness struct {
	ctx   context.Context
	store *memory.KVStore
	clock *Clock
	deps  *Dependencies
	quits int
}

func newHarness() *harness {
	h := &harness{
		ctx:   testContext(),
		store: memory.NewKVStore(),
		clock: NewClock(time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)),
	}
	h.deps = &Dependencies{
		Ctx:          h.ctx,
		Config:       config.DefaultConfig(),
		Viewport:     port.FixedViewport{Width: 1280, Height: 800},
		PanelsUC:     usecase.NewManagePanelStateUseCase(kvrepo.NewPanelStateRepository(h.store)),
		CanvasUC:     usecase.NewManageCanvasUseCase(kvrepo.NewCanvasStateRepository(h.store)),
		VisibilityUC: usecase.NewManageMetricVisibilityUseCase(kvrepo.NewMetricVisibilityRepository(h.store)),
		ResetUC:      usecase.NewResetStateUseCase(h.store),
		Now:          h.clock.Now,
		OnQuit:       func() { h.quits++ },
	}
	return h
}

func (h *harness) build(t *testing.T) *Workbench {
	t.Helper()
	w, err := NewWorkbench(h.deps)
	require.NoError(t, err)
	require.NoError(t, w.BuildScenePanels())
	return w
}

func position(t *testing.T, w *Workbench, id entity.PanelID) entity.Point {
	t.Helper()
	p, ok := w.Registry().Get(id)
	require.True(t, ok, "panel %s", id)
	return p.State().Position
}

func TestDependencies_Validate(t *testing.T) {
	tests := []struct {
		name string
		deps Dependencies
		want string
	}{
		{name: "ctx", deps: Dependencies{}, want: "Ctx"},
		{name: "config", deps: Dependencies{Ctx: context.Background()}, want: "Config"},
		{name: "viewport", deps: Dependencies{Ctx: context.Background(), Config: config.DefaultConfig()}, want: "Viewport"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.deps.Validate()
			require.Error(t, err)
			var depErr DependencyError
			require.ErrorAs(t, err, &depErr)
			assert.Equal(t, tt.want, depErr.Name)
		})
	}

	_, err := NewWorkbench(nil)
	assert.Error(t, err)
}

func TestWorkbench_BuildScenePanelsLaysOutGrid(t *testing.T) {
	w := newHarness().build(t)

	require.Len(t, w.Panels(), 5)
	assert.Equal(t, entity.Point{X: 20, Y: 20}, position(t, w, "traffic_visitors"))
	assert.Equal(t, entity.Point{X: 300, Y: 20}, position(t, w, "traffic_pageviews"))
	assert.Equal(t, entity.Point{X: 580, Y: 20}, position(t, w, "traffic_legend"))
	assert.Equal(t, entity.Point{X: 20, Y: 250}, position(t, w, "growth_signups"))
	assert.Equal(t, entity.Point{X: 300, Y: 250}, position(t, w, "growth_legend"))

	legend, _ := w.Registry().Get("traffic_legend")
	assert.False(t, legend.Capabilities().Resizable)
	assert.Equal(t, "Traffic: Visitors, Page views", legend.Content().(LegendContent).String())

	key, ok := w.MetricOf("traffic_visitors")
	require.True(t, ok)
	assert.Equal(t, entity.MetricKey{Scene: "traffic", Metric: "visitors"}, key)
	_, ok = w.MetricOf("traffic_legend")
	assert.False(t, ok)
}

func TestWorkbench_BuildScenePanelsWithUnderscoredNames(t *testing.T) {
	h := newHarness()
	h.deps.Config.Scenes = []config.SceneConfig{
		{Name: "web_traffic", Metrics: []config.MetricConfig{{Name: "legend_views", Label: "Views"}}},
		{Name: "web", Metrics: []config.MetricConfig{{Name: "errors"}}},
	}
	w := h.build(t)

	require.Len(t, w.Panels(), 4)
	key, ok := w.MetricOf("web_traffic_legend_views")
	require.True(t, ok)
	assert.Equal(t, entity.MetricKey{Scene: "web_traffic", Metric: "legend_views"}, key)
	_, ok = w.MetricOf(entity.LegendPanelID("web_traffic"))
	assert.False(t, ok)
	_, ok = w.Registry().Get("web_legend")
	assert.True(t, ok)
}

func TestWorkbench_BuildScenePanelsReportsCollidingIDs(t *testing.T) {
	h := newHarness()
	h.deps.Config.Scenes = []config.SceneConfig{
		{Name: "a", Metrics: []config.MetricConfig{{Name: "b_c"}}},
		{Name: "a_b", Metrics: []config.MetricConfig{{Name: "c"}}},
	}
	w, err := NewWorkbench(h.deps)
	require.NoError(t, err)

	err = w.BuildScenePanels()
	require.ErrorIs(t, err, card.ErrDuplicatePanel)
	assert.Contains(t, err.Error(), "a_b_c")
}

func TestWorkbench_RestoresStoredState(t *testing.T) {
	h := newHarness()
	stored := entity.PanelState{
		Position: entity.Point{X: 400, Y: 300},
		Size:     entity.Size{Width: 320, Height: 240},
		IsPinned: true,
	}
	require.NoError(t, h.deps.PanelsUC.Save(h.ctx, "traffic_visitors", stored))
	require.NoError(t, h.deps.CanvasUC.Save(h.ctx, entity.NewTransform(10, 20, 2)))
	require.NoError(t, h.deps.VisibilityUC.SetVisible(h.ctx, entity.MetricKey{Scene: "growth", Metric: "signups"}, false))

	w := h.build(t)

	p, _ := w.Registry().Get("traffic_visitors")
	assert.Equal(t, stored, p.State())
	assert.Equal(t, entity.NewTransform(10, 20, 2), w.Registry().Transform())

	hidden, _ := w.Registry().Get("growth_signups")
	assert.False(t, hidden.Visible())
}

func TestWorkbench_DragPersistsAndRepels(t *testing.T) {
	h := newHarness()
	w := h.build(t)

	w.PointerDown(input.PointerEvent{X: 100, Y: 30, Button: input.ButtonPrimary})
	w.PointerMove(input.PointerEvent{X: 150, Y: 80, Button: input.ButtonPrimary})
	w.PointerUp(input.PointerEvent{X: 150, Y: 80, Button: input.ButtonPrimary})

	assert.Equal(t, entity.Point{X: 70, Y: 70}, position(t, w, "traffic_visitors"))
	assert.Greater(t, position(t, w, "traffic_pageviews").X, 300.0)

	saved := h.deps.PanelsUC.Load(h.ctx, "traffic_visitors", entity.DefaultPanelState())
	assert.Equal(t, entity.Point{X: 70, Y: 70}, saved.Position)
	neighbour := h.deps.PanelsUC.Load(h.ctx, "traffic_pageviews", entity.DefaultPanelState())
	assert.Equal(t, position(t, w, "traffic_pageviews"), neighbour.Position)
}

func TestWorkbench_CanvasWritesAreCoalescedPerFrame(t *testing.T) {
	h := newHarness()
	w := h.build(t)

	w.Wheel(640, 400, -500)
	w.Wheel(640, 400, -500)
	assert.Equal(t, entity.DefaultTransform(), h.deps.CanvasUC.Load(h.ctx), "nothing written before the frame")

	require.True(t, w.Tick(h.clock.Now()))
	assert.InDelta(t, 2.0, h.deps.CanvasUC.Load(h.ctx).ZoomScale, 1e-9)
}

func TestWorkbench_KeyboardActions(t *testing.T) {
	h := newHarness()
	w := h.build(t)

	require.True(t, w.KeyDown(input.KeySpace))
	assert.True(t, w.Playback().IsPaused())

	h.clock.Advance(time.Second)
	require.True(t, w.KeyDown(input.KeySpace))
	assert.False(t, w.Playback().IsPaused())

	require.True(t, w.KeyDown("z"))
	assert.True(t, w.Canvas().ShowingAll())

	w.KeyDown(input.KeyShift)
	assert.True(t, w.Canvas().PanModifierHeld(input.PointerEvent{}))
	w.KeyUp(input.KeyShift)
	assert.False(t, w.Canvas().PanModifierHeld(input.PointerEvent{}))

	w.KeyDown(input.KeyEscape)
	assert.True(t, w.Done())
	assert.Equal(t, 1, h.quits)
	w.Quit()
	assert.Equal(t, 1, h.quits)
}

func TestWorkbench_ResetSequenceClearsState(t *testing.T) {
	h := newHarness()
	w := h.build(t)

	w.PointerDown(input.PointerEvent{X: 100, Y: 30, Button: input.ButtonPrimary})
	w.PointerMove(input.PointerEvent{X: 150, Y: 80, Button: input.ButtonPrimary})
	w.PointerUp(input.PointerEvent{X: 150, Y: 80, Button: input.ButtonPrimary})
	w.Wheel(0, 0, -500)
	_, err := w.ToggleMetric(entity.MetricKey{Scene: "growth", Metric: "signups"})
	require.NoError(t, err)
	require.NotZero(t, h.store.Len())

	for _, r := range input.ResetWord {
		w.KeyDown(string(r))
	}
	w.Tick(h.clock.Now())

	assert.Zero(t, h.store.Len(), "defaults are not written back")
	assert.Equal(t, entity.Point{X: 20, Y: 20}, position(t, w, "traffic_visitors"))
	assert.Equal(t, entity.Point{X: 300, Y: 20}, position(t, w, "traffic_pageviews"))
	assert.Equal(t, entity.DefaultTransform(), w.Registry().Transform())
	signups, _ := w.Registry().Get("growth_signups")
	assert.True(t, signups.Visible())
}

func TestWorkbench_ToggleMetric(t *testing.T) {
	h := newHarness()
	w := h.build(t)
	key := entity.MetricKey{Scene: "traffic", Metric: "pageviews"}

	visible, err := w.ToggleMetric(key)
	require.NoError(t, err)
	assert.False(t, visible)
	assert.False(t, h.deps.VisibilityUC.IsVisible(h.ctx, key))

	visible, err = w.ToggleMetric(key)
	require.NoError(t, err)
	assert.True(t, visible)

	_, err = w.ToggleMetric(entity.MetricKey{Scene: "traffic", Metric: "nope"})
	assert.Error(t, err)
}

func TestWorkbench_ApplyConfig(t *testing.T) {
	w := newHarness().build(t)

	cfg := config.DefaultConfig()
	cfg.UI.DragBorderMargin = 25
	cfg.UI.DragBorderWarningDistance = 0
	w.ApplyConfig(cfg)

	assert.Equal(t, 25.0, w.Registry().BorderMargin())
	assert.Equal(t, entity.DefaultBorderWarningDistance, w.Registry().BorderWarningDistance())
}

func TestWorkbench_WithoutUseCases(t *testing.T) {
	deps := &Dependencies{
		Ctx:      testContext(),
		Config:   config.DefaultConfig(),
		Viewport: port.FixedViewport{Width: 800, Height: 600},
	}
	w, err := NewWorkbench(deps)
	require.NoError(t, err)
	require.NoError(t, w.BuildScenePanels())

	w.PointerDown(input.PointerEvent{X: 100, Y: 30, Button: input.ButtonPrimary})
	w.PointerMove(input.PointerEvent{X: 110, Y: 30, Button: input.ButtonPrimary})
	w.PointerUp(input.PointerEvent{X: 110, Y: 30, Button: input.ButtonPrimary})
	assert.Equal(t, entity.Point{X: 30, Y: 20}, position(t, w, "traffic_visitors"))

	cleared, err := w.Reset()
	require.NoError(t, err)
	assert.Zero(t, cleared)
	assert.Equal(t, entity.Point{X: 20, Y: 20}, position(t, w, "traffic_visitors"))
}

func TestWorkbench_InvalidTimelineDisablesPlayback(t *testing.T) {
	h := newHarness()
	h.deps.Config.Animation.StartDate = "not a date"
	w := h.build(t)

	assert.Nil(t, w.Playback())
	assert.True(t, w.KeyDown(input.KeySpace))
}
