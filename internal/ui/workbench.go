package ui

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/bnema/cardboard/internal/application/port"
	"github.com/bnema/cardboard/internal/application/usecase"
	"github.com/bnema/cardboard/internal/domain/entity"
	"github.com/bnema/cardboard/internal/infrastructure/config"
	"github.com/bnema/cardboard/internal/logging"
	"github.com/bnema/cardboard/internal/ui/canvas"
	"github.com/bnema/cardboard/internal/ui/card"
	"github.com/bnema/cardboard/internal/ui/input"
	"github.com/bnema/cardboard/internal/ui/mainloop"
)

// Initial card grid.
const (
	gridColumns = 4
	gridGap     = 30.0
)

// LegendMetric is the metric segment of legend card ids.
const LegendMetric = entity.LegendMetric

// Workbench owns the registry, the panels and the canvas of one window and
// routes input events to them. It is driven from a single goroutine.
type Workbench struct {
	deps *Dependencies
	ctx  context.Context
	cfg  *config.Config

	registry   *card.Registry
	queue      *mainloop.Queue
	coalescer  *mainloop.Coalescer
	throttle   *mainloop.FrameThrottle
	canvas     *canvas.Controller
	dispatcher *card.Dispatcher
	keyboard   *input.KeyboardHandler
	playback   *usecase.Playback

	panels  []*card.Panel
	metrics map[entity.PanelID]entity.MetricKey

	quit bool
}

// NewWorkbench creates an empty workbench. Call BuildScenePanels or AddPanel
// to populate it.
func NewWorkbench(deps *Dependencies) (*Workbench, error) {
	if deps == nil {
		return nil, ErrMissingDependency("Dependencies")
	}
	if err := deps.Validate(); err != nil {
		return nil, err
	}
	if deps.Now == nil {
		deps.Now = time.Now
	}
	if deps.Sink == nil {
		deps.Sink = port.NopPanelEventSink{}
	}

	ctx := logging.WithComponent(deps.Ctx, "workbench")
	log := logging.FromContext(ctx)
	cfg := deps.Config

	w := &Workbench{
		deps:     deps,
		ctx:      ctx,
		cfg:      cfg,
		registry: card.NewRegistry(),
		queue:    mainloop.NewQueue(),
		throttle: mainloop.NewFrameThrottle(cfg.Animation.TargetFPS),
		metrics:  make(map[entity.PanelID]entity.MetricKey),
	}
	w.coalescer = mainloop.NewCoalescer(w.queue.Post)
	w.registry.SetConfig(cfg.UI.DragBorderMargin, cfg.UI.DragBorderWarningDistance)

	initial := entity.DefaultTransform()
	var store canvas.TransformStore
	if deps.CanvasUC != nil {
		initial = deps.CanvasUC.Load(ctx)
		store = deps.CanvasUC
	}
	w.canvas = canvas.NewController(ctx, w.registry, store, deps.Sink, w.coalescer, canvas.Options{
		WheelSensitivity: cfg.Canvas.WheelSensitivity,
		TouchSensitivity: cfg.Canvas.TouchSensitivity,
		PinchThreshold:   cfg.Canvas.PinchThreshold,
		FitPadding:       cfg.Canvas.FitPadding,
		FitDuration:      time.Duration(cfg.Canvas.FitDurationMs) * time.Millisecond,
	}, initial)

	layout := card.DefaultLayout()
	if deps.Layout != nil {
		layout = *deps.Layout
	}
	w.dispatcher = card.NewDispatcher(w.registry, layout, w.canvas)

	w.keyboard = input.NewKeyboardHandler(logging.WithComponent(deps.Ctx, "keyboard"))
	w.keyboard.SetOnAction(w.handleAction)
	w.keyboard.SetOnModifier(w.canvas.SetModifier)

	timeline, err := entity.NewTimeline(
		cfg.Animation.StartDate,
		cfg.Animation.EndDate,
		time.Duration(cfg.Animation.TotalDurationSeconds*float64(time.Second)),
	)
	if err != nil {
		log.Warn().Err(err).Msg("invalid animation timeline, playback disabled")
	} else {
		w.playback = usecase.NewPlayback(timeline, deps.Now())
	}

	log.Debug().
		Float64("border_margin", w.registry.BorderMargin()).
		Float64("border_warning", w.registry.BorderWarningDistance()).
		Int("fps", cfg.Animation.TargetFPS).
		Msg("workbench created")
	return w, nil
}

// AddPanel creates a panel restored from storage and registers it.
func (w *Workbench) AddPanel(opts card.Options) (*card.Panel, error) {
	if opts.ProximityThreshold == 0 {
		opts.ProximityThreshold = w.cfg.UI.ProximityThreshold
	}
	if opts.RepulsionForce == 0 {
		opts.RepulsionForce = w.cfg.UI.RepulsionForce
	}
	env := card.Env{
		Registry: w.registry,
		Viewport: w.deps.Viewport,
		Sink:     w.deps.Sink,
	}
	if w.deps.PanelsUC != nil {
		env.Store = w.deps.PanelsUC
	}
	p, err := card.NewPanel(logging.WithPanelID(w.ctx, string(opts.ID)), env, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to create panel %s: %w", opts.ID, err)
	}
	w.panels = append(w.panels, p)
	return p, nil
}

// BuildScenePanels creates one card per configured metric plus a legend card
// per scene. Untouched cards are laid out on a grid, one band per scene.
func (w *Workbench) BuildScenePanels() error {
	row := 0
	for _, scene := range w.cfg.Scenes {
		col := 0
		legend := LegendContent{Scene: scene.Title}
		if legend.Scene == "" {
			legend.Scene = scene.Name
		}

		for _, metric := range scene.Metrics {
			key := entity.MetricKey{Scene: scene.Name, Metric: metric.Name}
			label := metric.Label
			if label == "" {
				label = metric.Name
			}
			legend.Entries = append(legend.Entries, label)

			defaults := gridState(row, col)
			p, err := w.AddPanel(card.Options{
				ID:           key.PanelID(),
				Title:        label,
				Defaults:     &defaults,
				Capabilities: entity.CardCapabilities(),
				Content:      MetricContent{Key: key, Label: label, File: metric.File},
			})
			if err != nil {
				return err
			}
			w.metrics[p.ID()] = key
			p.AppendTo(w.ctx, scene.Name)
			if w.deps.VisibilityUC != nil && !w.deps.VisibilityUC.IsVisible(w.ctx, key) {
				p.Hide(w.ctx)
			}

			col++
			if col == gridColumns {
				col = 0
				row++
			}
		}

		defaults := gridState(row, col)
		p, err := w.AddPanel(card.Options{
			ID:           entity.LegendPanelID(scene.Name),
			Title:        legend.Scene,
			Defaults:     &defaults,
			Capabilities: entity.Capabilities{Pinnable: true},
		})
		if err != nil {
			return err
		}
		p.SetContentNoPadding(w.ctx, legend)
		p.AppendTo(w.ctx, scene.Name)
		row++
	}

	w.logPositions()
	return nil
}

func gridState(row, col int) entity.PanelState {
	s := entity.DefaultPanelState()
	s.Position.X += float64(col) * (entity.DefaultPanelWidth + gridGap)
	s.Position.Y += float64(row) * (entity.DefaultPanelHeight + gridGap)
	return s
}

func (w *Workbench) logPositions() {
	ids := make([]string, 0, len(w.panels))
	byID := make(map[string]*card.Panel, len(w.panels))
	for _, p := range w.panels {
		ids = append(ids, string(p.ID()))
		byID[string(p.ID())] = p
	}
	sort.Strings(ids)

	positions := make(map[string]any, len(ids))
	for _, id := range ids {
		s := byID[id].State()
		positions[id] = map[string]any{
			"x":      s.Position.X,
			"y":      s.Position.Y,
			"width":  s.Size.Width,
			"height": s.Size.Height,
			"pinned": s.IsPinned,
		}
	}
	logging.FromContext(w.ctx).Info().Interface("cards", positions).Int("count", len(ids)).Msg("card positions")
}

// PointerDown routes a press through the dispatcher.
func (w *Workbench) PointerDown(ev input.PointerEvent) {
	w.dispatcher.PointerDown(w.ctx, ev)
}

// PointerMove routes a move through the dispatcher.
func (w *Workbench) PointerMove(ev input.PointerEvent) {
	w.dispatcher.PointerMove(w.ctx, ev)
}

// PointerUp routes a release through the dispatcher.
func (w *Workbench) PointerUp(ev input.PointerEvent) {
	w.dispatcher.PointerUp(w.ctx, ev)
}

// PointerCancel ends the active gesture as if the pointer was released.
func (w *Workbench) PointerCancel() {
	w.dispatcher.PointerCancel(w.ctx)
}

// Wheel zooms around the cursor.
func (w *Workbench) Wheel(sx, sy, deltaY float64) {
	w.canvas.Wheel(w.ctx, sx, sy, deltaY)
}

// TouchStart begins a touch gesture.
func (w *Workbench) TouchStart(touches []input.Touch) {
	w.canvas.TouchStart(w.ctx, touches)
}

// TouchMove continues a touch gesture.
func (w *Workbench) TouchMove(touches []input.Touch) {
	w.canvas.TouchMove(w.ctx, touches)
}

// TouchEnd ends a touch gesture with remaining fingers still down.
func (w *Workbench) TouchEnd(remaining int) {
	w.canvas.TouchEnd(w.ctx, remaining)
}

// KeyDown handles a key press. It returns true if the key was consumed.
func (w *Workbench) KeyDown(key string) bool {
	return w.keyboard.KeyDown(key, w.deps.Now())
}

// KeyUp handles a key release.
func (w *Workbench) KeyUp(key string) {
	w.keyboard.KeyUp(key)
}

// Tick runs one frame if the throttle allows it: the show-all animation
// advances, playback moves on and deferred writes are drained. It returns
// true when a frame ran.
func (w *Workbench) Tick(now time.Time) bool {
	if !w.throttle.Ready(now) {
		return false
	}
	w.canvas.Tick(w.ctx, now)
	if w.playback != nil {
		w.playback.ExactDay(now)
	}
	w.queue.Drain()
	return true
}

// Flush runs every deferred write now.
func (w *Workbench) Flush() {
	w.coalescer.Flush()
	w.queue.Drain()
}

// ApplyConfig updates the tunables that can change at runtime.
func (w *Workbench) ApplyConfig(cfg *config.Config) {
	if cfg == nil {
		return
	}
	w.registry.SetConfig(cfg.UI.DragBorderMargin, cfg.UI.DragBorderWarningDistance)
	logging.FromContext(w.ctx).Info().
		Float64("border_margin", w.registry.BorderMargin()).
		Float64("border_warning", w.registry.BorderWarningDistance()).
		Msg("configuration applied")
}

func (w *Workbench) handleAction(ctx context.Context, action input.Action) error {
	now := w.deps.Now()
	log := logging.FromContext(ctx)

	switch action {
	case input.ActionTogglePause:
		if w.playback != nil {
			w.playback.TogglePause(now)
			log.Debug().Bool("paused", w.playback.IsPaused()).Msg("playback toggled")
		}
	case input.ActionRewind:
		if w.playback != nil {
			w.playback.Rewind(now)
			log.Debug().Msg("playback rewound")
		}
	case input.ActionToggleShowAll:
		if !w.canvas.ToggleShowAll(w.ctx, w.deps.Viewport) {
			log.Debug().Msg("no visible cards to show")
		}
	case input.ActionResetState:
		if _, err := w.Reset(); err != nil {
			return err
		}
	case input.ActionQuit:
		w.Quit()
	default:
		return fmt.Errorf("unknown action %q", action)
	}
	return nil
}

// Reset clears every stored key and puts panels and canvas back to their
// defaults without writing them again. It returns the number of cleared keys.
func (w *Workbench) Reset() (int, error) {
	log := logging.FromContext(w.ctx)

	w.dispatcher.PointerCancel(w.ctx)
	w.Flush()

	cleared := 0
	if w.deps.ResetUC != nil {
		n, err := w.deps.ResetUC.Execute(w.ctx)
		if err != nil {
			return 0, fmt.Errorf("failed to reset state: %w", err)
		}
		cleared = n
	}

	for _, p := range w.panels {
		p.Restore(w.ctx, p.Defaults())
		p.FlipToFront(w.ctx)
		p.Show(w.ctx)
	}
	w.canvas.Restore(w.ctx, entity.DefaultTransform())
	if w.playback != nil {
		w.playback.Rewind(w.deps.Now())
	}

	log.Info().Int("keys", cleared).Msg("all saved state cleared")
	return cleared, nil
}

// ToggleMetric flips the visibility of a metric card and persists it.
func (w *Workbench) ToggleMetric(key entity.MetricKey) (bool, error) {
	p, ok := w.registry.Get(key.PanelID())
	if !ok {
		return false, fmt.Errorf("unknown metric %s", key)
	}

	visible := !p.Visible()
	if w.deps.VisibilityUC != nil {
		v, err := w.deps.VisibilityUC.Toggle(w.ctx, key)
		if err != nil {
			return p.Visible(), err
		}
		visible = v
	}
	if visible {
		p.Show(w.ctx)
	} else {
		p.Hide(w.ctx)
	}
	return visible, nil
}

// Quit marks the workbench as done and flushes pending writes.
func (w *Workbench) Quit() {
	if w.quit {
		return
	}
	w.quit = true
	w.Flush()
	if w.deps.OnQuit != nil {
		w.deps.OnQuit()
	}
}

// Done reports whether Quit was called.
func (w *Workbench) Done() bool { return w.quit }

// Context returns the workbench context.
func (w *Workbench) Context() context.Context { return w.ctx }

// Registry returns the panel registry.
func (w *Workbench) Registry() *card.Registry { return w.registry }

// Canvas returns the canvas controller.
func (w *Workbench) Canvas() *canvas.Controller { return w.canvas }

// Dispatcher returns the pointer dispatcher.
func (w *Workbench) Dispatcher() *card.Dispatcher { return w.dispatcher }

// Playback returns the playback clock, or nil when the timeline is invalid.
func (w *Workbench) Playback() *usecase.Playback { return w.playback }

// Panels returns the panels in creation order.
func (w *Workbench) Panels() []*card.Panel {
	out := make([]*card.Panel, len(w.panels))
	copy(out, w.panels)
	return out
}

// MetricOf returns the metric shown by a panel.
func (w *Workbench) MetricOf(id entity.PanelID) (entity.MetricKey, bool) {
	key, ok := w.metrics[id]
	return key, ok
}
