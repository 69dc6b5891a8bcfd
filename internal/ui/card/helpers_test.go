package card

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/bnema/cardboard/internal/application/port"
	"github.com/bnema/cardboard/internal/domain/entity"
	"github.com/bnema/cardboard/internal/logging"
)

func testContext() context.Context {
	logger := logging.NewFromConfigValues("debug", "console")
	return logging.WithContext(context.Background(), logger)
}

type memStore struct {
	states map[entity.PanelID]entity.PanelState
	saves  map[entity.PanelID]int
}

func newMemStore() *memStore {
	return &memStore{
		states: make(map[entity.PanelID]entity.PanelState),
		saves:  make(map[entity.PanelID]int),
	}
}

func (s *memStore) Load(_ context.Context, id entity.PanelID, defaults entity.PanelState) entity.PanelState {
	if st, ok := s.states[id]; ok {
		return st
	}
	return defaults
}

func (s *memStore) Save(_ context.Context, id entity.PanelID, state entity.PanelState) error {
	s.states[id] = state
	s.saves[id]++
	return nil
}

type recordingSink struct {
	events []entity.PanelEvent
}

func (r *recordingSink) PanelChanged(_ context.Context, ev entity.PanelEvent) {
	r.events = append(r.events, ev)
}

func (r *recordingSink) TransformChanged(context.Context, entity.CanvasTransform) {}

func (r *recordingSink) count(id entity.PanelID, kind entity.PanelEventKind) int {
	n := 0
	for _, ev := range r.events {
		if ev.PanelID == id && ev.Kind == kind {
			n++
		}
	}
	return n
}

type fixture struct {
	ctx   context.Context
	reg   *Registry
	store *memStore
	sink  *recordingSink
	env   Env
}

func newFixture() *fixture {
	f := &fixture{
		ctx:   testContext(),
		reg:   NewRegistry(),
		store: newMemStore(),
		sink:  &recordingSink{},
	}
	f.env = Env{
		Registry: f.reg,
		Viewport: port.FixedViewport{Width: 1000, Height: 800},
		Store:    f.store,
		Sink:     f.sink,
	}
	return f
}

func (f *fixture) panel(t *testing.T, id string, x, y float64) *Panel {
	t.Helper()
	p, err := NewPanel(f.ctx, f.env, Options{
		ID:           entity.PanelID(id),
		Title:        id,
		Defaults:     &entity.PanelState{Position: entity.Point{X: x, Y: y}, Size: entity.Size{Width: 250, Height: 200}},
		Capabilities: entity.CardCapabilities(),
	})
	require.NoError(t, err)
	return p
}
