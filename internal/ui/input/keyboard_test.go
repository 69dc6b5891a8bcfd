package input

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/bnema/cardboard/internal/logging"
)

func testContext() context.Context {
	logger := logging.NewFromConfigValues("debug", "console")
	return logging.WithContext(context.Background(), logger)
}

func recordActions(h *KeyboardHandler) *[]Action {
	var got []Action
	h.SetOnAction(func(_ context.Context, a Action) error {
		got = append(got, a)
		return nil
	})
	return &got
}

func TestKeyboardHandler_SpaceTogglesThenRewinds(t *testing.T) {
	h := NewKeyboardHandler(testContext())
	got := recordActions(h)
	t0 := time.Unix(0, 0)

	h.KeyDown(KeySpace, t0)
	h.KeyDown(KeySpace, t0.Add(100*time.Millisecond))
	h.KeyDown(KeySpace, t0.Add(200*time.Millisecond))
	h.KeyDown(KeySpace, t0.Add(300*time.Millisecond))

	assert.Equal(t, []Action{
		ActionTogglePause,
		ActionTogglePause,
		ActionRewind,
		ActionTogglePause,
	}, *got)
}

func TestKeyboardHandler_SlowSpacesOnlyToggle(t *testing.T) {
	h := NewKeyboardHandler(testContext())
	got := recordActions(h)
	t0 := time.Unix(0, 0)

	for i := 0; i < 3; i++ {
		h.KeyDown(KeySpace, t0.Add(time.Duration(i)*time.Second))
	}

	assert.Equal(t, []Action{ActionTogglePause, ActionTogglePause, ActionTogglePause}, *got)
}

func TestKeyboardHandler_ResetWord(t *testing.T) {
	h := NewKeyboardHandler(testContext())
	got := recordActions(h)

	for _, r := range "idkfa" {
		h.KeyDown(string(r), time.Time{})
	}

	assert.Equal(t, []Action{ActionResetState}, *got)
}

func TestKeyboardHandler_ZTogglesShowAll(t *testing.T) {
	h := NewKeyboardHandler(testContext())
	got := recordActions(h)

	assert.True(t, h.KeyDown("Z", time.Time{}))
	assert.False(t, h.KeyDown("q", time.Time{}))
	assert.False(t, h.KeyDown("pgdown", time.Time{}))

	assert.Equal(t, []Action{ActionToggleShowAll}, *got)
}

func TestKeyboardHandler_ShiftModifier(t *testing.T) {
	h := NewKeyboardHandler(testContext())
	var states []bool
	h.SetOnModifier(func(held bool) { states = append(states, held) })

	h.KeyDown("Shift", time.Time{})
	h.KeyUp("shift")

	assert.Equal(t, []bool{true, false}, states)
}

func TestKeyboardHandler_HandlerErrorIsSwallowed(t *testing.T) {
	h := NewKeyboardHandler(testContext())
	h.SetOnAction(func(context.Context, Action) error { return errors.New("boom") })

	assert.NotPanics(t, func() { h.KeyDown(KeyEscape, time.Time{}) })
}

func TestModifierHas(t *testing.T) {
	m := ModShift | ModCtrl
	assert.True(t, m.Has(ModShift))
	assert.True(t, m.Has(ModCtrl))
	assert.False(t, m.Has(ModAlt))
	assert.False(t, m.Has(ModNone))
}
