package canvas

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	portmocks "github.com/bnema/cardboard/internal/application/port/mocks"
	"github.com/bnema/cardboard/internal/domain/entity"
	"github.com/bnema/cardboard/internal/logging"
	"github.com/bnema/cardboard/internal/ui/card"
	"github.com/bnema/cardboard/internal/ui/input"
	"github.com/bnema/cardboard/internal/ui/mainloop"
)

func testContext() context.Context {
	logger := logging.NewFromConfigValues("debug", "console")
	return logging.WithContext(context.Background(), logger)
}

type recordingStore struct {
	saved []entity.CanvasTransform
	err   error
}

func (s *recordingStore) Save(_ context.Context, t entity.CanvasTransform) error {
	s.saved = append(s.saved, t)
	return s.err
}

type fixture struct {
	ctx   context.Context
	reg   *card.Registry
	store *recordingStore
	queue *mainloop.Queue
	ctrl  *Controller
}

func newFixture(initial entity.CanvasTransform) *fixture {
	f := &fixture{
		ctx:   testContext(),
		reg:   card.NewRegistry(),
		store: &recordingStore{},
		queue: mainloop.NewQueue(),
	}
	f.ctrl = NewController(f.ctx, f.reg, f.store, nil, mainloop.NewCoalescer(f.queue.Post), Options{}, initial)
	return f
}

func TestController_PublishesInitialTransform(t *testing.T) {
	f := newFixture(entity.NewTransform(10, 20, 2))
	assert.Equal(t, entity.NewTransform(10, 20, 2), f.reg.Transform())
	assert.Empty(t, f.store.saved, "restoring is not a change")
}

func TestController_WheelZoomKeepsFocalPoint(t *testing.T) {
	f := newFixture(entity.NewTransform(30, -10, 1.5))
	focal := f.reg.ScreenToCanvas(400, 300)

	f.ctrl.Wheel(f.ctx, 400, 300, -500)

	tr := f.ctrl.Transform()
	assert.InDelta(t, 2.0, tr.ZoomScale, 1e-9)
	back := tr.CanvasToScreen(focal.X, focal.Y)
	assert.InDelta(t, 400, back.X, 1e-9)
	assert.InDelta(t, 300, back.Y, 1e-9)
	assert.Equal(t, tr, f.reg.Transform())
}

func TestController_WheelClampsZoom(t *testing.T) {
	f := newFixture(entity.DefaultTransform())

	f.ctrl.Wheel(f.ctx, 0, 0, 1e6)
	assert.Equal(t, entity.ZoomMin, f.ctrl.Transform().ZoomScale)

	f.ctrl.Wheel(f.ctx, 0, 0, -1e6)
	assert.Equal(t, entity.ZoomMax, f.ctrl.Transform().ZoomScale)
}

func TestController_PersistenceIsCoalesced(t *testing.T) {
	f := newFixture(entity.DefaultTransform())

	f.ctrl.Wheel(f.ctx, 0, 0, -100)
	f.ctrl.Wheel(f.ctx, 0, 0, -100)
	f.ctrl.Wheel(f.ctx, 0, 0, -100)
	assert.Empty(t, f.store.saved)

	f.queue.Drain()
	require.Len(t, f.store.saved, 1)
	assert.Equal(t, f.ctrl.Transform(), f.store.saved[0])
}

func TestController_PersistErrorIsLogged(t *testing.T) {
	f := newFixture(entity.DefaultTransform())
	f.store.err = errors.New("readonly")

	f.ctrl.Wheel(f.ctx, 0, 0, -100)
	assert.NotPanics(t, func() { f.queue.Drain() })
}

func TestController_PressDragPans(t *testing.T) {
	f := newFixture(entity.DefaultTransform())

	f.ctrl.PointerDown(f.ctx, input.PointerEvent{X: 100, Y: 100, Button: input.ButtonPrimary})
	f.ctrl.PointerMove(f.ctx, input.PointerEvent{X: 130, Y: 90})
	f.ctrl.PointerMove(f.ctx, input.PointerEvent{X: 140, Y: 80})
	f.ctrl.PointerUp(f.ctx, input.PointerEvent{X: 140, Y: 80})
	f.ctrl.PointerMove(f.ctx, input.PointerEvent{X: 500, Y: 500})

	assert.Equal(t, entity.NewTransform(40, -20, 1), f.ctrl.Transform())
}

func TestController_ModifierHoverPans(t *testing.T) {
	f := newFixture(entity.DefaultTransform())
	f.ctrl.SetModifier(true)

	f.ctrl.PointerMove(f.ctx, input.PointerEvent{X: 10, Y: 10})
	assert.Equal(t, entity.DefaultTransform(), f.ctrl.Transform(), "first move only records")
	f.ctrl.PointerMove(f.ctx, input.PointerEvent{X: 25, Y: 5})
	assert.Equal(t, entity.NewTransform(15, -5, 1), f.ctrl.Transform())

	f.ctrl.SetModifier(false)
	f.ctrl.PointerMove(f.ctx, input.PointerEvent{X: 100, Y: 100})
	assert.Equal(t, entity.NewTransform(15, -5, 1), f.ctrl.Transform())
}

func TestController_ShiftInEventPans(t *testing.T) {
	f := newFixture(entity.DefaultTransform())

	assert.True(t, f.ctrl.PanModifierHeld(input.PointerEvent{Mods: input.ModShift}))
	f.ctrl.PointerMove(f.ctx, input.PointerEvent{X: 0, Y: 0, Mods: input.ModShift})
	f.ctrl.PointerMove(f.ctx, input.PointerEvent{X: 7, Y: 3, Mods: input.ModShift})

	assert.Equal(t, entity.NewTransform(7, 3, 1), f.ctrl.Transform())
}

func TestController_PinchZooms(t *testing.T) {
	f := newFixture(entity.DefaultTransform())

	f.ctrl.TouchStart(f.ctx, []input.Touch{{X: 100, Y: 100}, {X: 200, Y: 100}})
	f.ctrl.TouchMove(f.ctx, []input.Touch{{X: 75, Y: 100}, {X: 225, Y: 100}})

	tr := f.ctrl.Transform()
	assert.InDelta(t, 1.5, tr.ZoomScale, 1e-9)
	mid := tr.ScreenToCanvas(150, 100)
	assert.InDelta(t, 150, mid.X, 1e-9)
	assert.InDelta(t, 100, mid.Y, 1e-9)
}

func TestController_SmallPinchPans(t *testing.T) {
	f := newFixture(entity.DefaultTransform())

	f.ctrl.TouchStart(f.ctx, []input.Touch{{X: 100, Y: 100}, {X: 200, Y: 100}})
	f.ctrl.TouchMove(f.ctx, []input.Touch{{X: 110, Y: 120}, {X: 212, Y: 120}})

	tr := f.ctrl.Transform()
	assert.Equal(t, 1.0, tr.ZoomScale)
	assert.InDelta(t, 11, tr.PanOffsetX, 1e-9)
	assert.InDelta(t, 20, tr.PanOffsetY, 1e-9)
}

func TestController_TouchEndStopsGesture(t *testing.T) {
	f := newFixture(entity.DefaultTransform())

	f.ctrl.TouchStart(f.ctx, []input.Touch{{X: 100, Y: 100}, {X: 200, Y: 100}})
	f.ctrl.TouchEnd(f.ctx, 1)
	f.ctrl.TouchMove(f.ctx, []input.Touch{{X: 0, Y: 100}, {X: 300, Y: 100}})
	f.ctrl.TouchStart(f.ctx, []input.Touch{{X: 1, Y: 1}})

	assert.Equal(t, entity.DefaultTransform(), f.ctrl.Transform())
}

func TestController_NotifiesSink(t *testing.T) {
	ctx := testContext()
	sink := portmocks.NewMockPanelEventSink(t)
	sink.EXPECT().TransformChanged(mock.Anything, entity.NewTransform(5, 0, 1)).Once()

	ctrl := NewController(ctx, card.NewRegistry(), nil, sink, nil, Options{}, entity.DefaultTransform())
	ctrl.PointerDown(ctx, input.PointerEvent{})
	ctrl.PointerMove(ctx, input.PointerEvent{X: 5})
	ctrl.PointerMove(ctx, input.PointerEvent{X: 5})
}

func TestController_PanAffectsDragMath(t *testing.T) {
	ctx := testContext()
	reg := card.NewRegistry()
	ctrl := NewController(ctx, reg, nil, nil, nil, Options{}, entity.DefaultTransform())
	p, err := card.NewPanel(ctx, card.Env{Registry: reg}, card.Options{ID: "a", Capabilities: entity.CardCapabilities()})
	require.NoError(t, err)

	ctrl.SetTransform(ctx, entity.NewTransform(100, 0, 2))
	s := reg.CanvasToScreen(30, 30)
	require.True(t, p.PointerDown(ctx, card.TargetHeader, s.X, s.Y))
	p.PointerMove(ctx, s.X+20, s.Y)

	assert.Equal(t, entity.Point{X: 30, Y: 20}, p.State().Position)
}

func TestController_RestoreDoesNotPersist(t *testing.T) {
	f := newFixture(entity.NewTransform(10, 20, 2))

	f.ctrl.Restore(f.ctx, entity.DefaultTransform())
	f.queue.Drain()

	assert.Equal(t, entity.DefaultTransform(), f.ctrl.Transform())
	assert.Equal(t, entity.DefaultTransform(), f.reg.Transform())
	assert.Empty(t, f.store.saved)
	assert.False(t, f.ctrl.ShowingAll())
}
