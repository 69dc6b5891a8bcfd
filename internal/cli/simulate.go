package cli

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/bnema/cardboard/internal/application/port"
	"github.com/bnema/cardboard/internal/application/usecase"
	"github.com/bnema/cardboard/internal/cli/styles"
	"github.com/bnema/cardboard/internal/domain/entity"
	"github.com/bnema/cardboard/internal/infrastructure/config"
	"github.com/bnema/cardboard/internal/infrastructure/persistence/kvrepo"
	"github.com/bnema/cardboard/internal/infrastructure/persistence/memory"
	"github.com/bnema/cardboard/internal/infrastructure/render/svg"
	"github.com/bnema/cardboard/internal/infrastructure/script"
	"github.com/bnema/cardboard/internal/logging"
	"github.com/bnema/cardboard/internal/ui"
	"github.com/bnema/cardboard/internal/ui/scene"
)

// SimulateOptions control a headless replay run.
type SimulateOptions struct {
	// NewStore returns the store a script runs against. Nil gives every
	// script its own empty in-memory store.
	NewStore func() port.KeyValueStore
	// Parallelism caps concurrent scripts. Zero or less means no limit.
	Parallelism int
	// SVGDir receives one snapshot per script when set.
	SVGDir string
	// Start is the simulated wall clock at the first step.
	Start time.Time
}

// SimulationResult is the final layout of one replayed script.
type SimulationResult struct {
	Script    string
	Rows      []styles.PanelRow
	Transform entity.CanvasTransform
	SVGPath   string
}

// Simulate replays scripts concurrently, each on its own workbench.
// Results keep the order of scripts.
func Simulate(ctx context.Context, cfg *config.Config, scripts []*script.Script, opts SimulateOptions) ([]SimulationResult, error) {
	if opts.Start.IsZero() {
		opts.Start = time.Now()
	}

	results := make([]SimulationResult, len(scripts))
	g, gctx := errgroup.WithContext(ctx)
	if opts.Parallelism > 0 {
		g.SetLimit(opts.Parallelism)
	}
	for i, s := range scripts {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			res, err := simulateOne(gctx, cfg, s, opts)
			if err != nil {
				return fmt.Errorf("%s: %w", s.Name, err)
			}
			results[i] = res
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

func simulateOne(ctx context.Context, cfg *config.Config, s *script.Script, opts SimulateOptions) (SimulationResult, error) {
	ctx = logging.WithScript(ctx, s.Name)

	var store port.KeyValueStore
	if opts.NewStore != nil {
		store = opts.NewStore()
	} else {
		store = memory.NewKVStore()
	}

	clock := ui.NewClock(opts.Start)
	sc := scene.New()
	wb, err := ui.NewWorkbench(&ui.Dependencies{
		Ctx:          ctx,
		Config:       cfg,
		Viewport:     port.FixedViewport{Width: s.Viewport.Width, Height: s.Viewport.Height},
		Sink:         sc,
		PanelsUC:     usecase.NewManagePanelStateUseCase(kvrepo.NewPanelStateRepository(store)),
		CanvasUC:     usecase.NewManageCanvasUseCase(kvrepo.NewCanvasStateRepository(store)),
		VisibilityUC: usecase.NewManageMetricVisibilityUseCase(kvrepo.NewMetricVisibilityRepository(store)),
		ResetUC:      usecase.NewResetStateUseCase(store),
		Now:          clock.Now,
	})
	if err != nil {
		return SimulationResult{}, err
	}
	if err := wb.BuildScenePanels(); err != nil {
		return SimulationResult{}, err
	}
	if err := wb.Replay(s, clock); err != nil {
		return SimulationResult{}, err
	}

	res := SimulationResult{
		Script:    s.Name,
		Transform: wb.Canvas().Transform(),
	}
	for _, p := range wb.Panels() {
		if !p.Visible() {
			continue
		}
		st := p.State()
		res.Rows = append(res.Rows, styles.PanelRow{
			ID:     string(p.ID()),
			X:      st.Position.X,
			Y:      st.Position.Y,
			Width:  st.Size.Width,
			Height: st.Size.Height,
			Pinned: st.IsPinned,
		})
	}

	if opts.SVGDir != "" {
		res.SVGPath = filepath.Join(opts.SVGDir, snapshotName(s.Name))
		err := svg.WriteFile(res.SVGPath, svg.Frame{
			Width:     s.Viewport.Width,
			Height:    s.Viewport.Height,
			Transform: sc.Transform(),
			Panels:    sc.Panels(),
			Caption:   s.Name,
		})
		if err != nil {
			return SimulationResult{}, err
		}
	}

	logging.FromContext(ctx).Info().
		Int("cards", len(res.Rows)).
		Int("zoom", res.Transform.ZoomPercent()).
		Msg("simulation finished")
	return res, nil
}

// snapshotName turns a script name or path into an svg file name.
func snapshotName(name string) string {
	base := filepath.Base(name)
	base = strings.TrimSuffix(base, filepath.Ext(base))
	base = strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '-', r == '_':
			return r
		default:
			return '-'
		}
	}, base)
	if base == "" || base == "." {
		base = "script"
	}
	return base + ".svg"
}
