package input

import (
	"context"
	"strings"
	"sync"
	"time"
	"unicode/utf8"

	"github.com/bnema/cardboard/internal/logging"
)

// Action represents what happens when a key or key sequence is triggered.
type Action string

// Predefined actions of the canvas keyboard.
const (
	ActionTogglePause   Action = "toggle_pause"
	ActionRewind        Action = "rewind"
	ActionToggleShowAll Action = "toggle_show_all"
	ActionResetState    Action = "reset_state"
	ActionQuit          Action = "quit"
)

// Key names understood by the handler. Single printable characters are
// passed as themselves.
const (
	KeySpace  = "space"
	KeyShift  = "shift"
	KeyEscape = "esc"
)

// rewindTaps is the number of quick space presses that rewind.
const rewindTaps = 3

// ResetWord is the typed word that clears all saved state.
const ResetWord = "idkfa"

// ActionHandler is called when a keyboard action is triggered.
// It receives the context and the action to perform.
// Return an error if the action fails.
type ActionHandler func(ctx context.Context, action Action) error

// KeyboardHandler processes key presses and dispatches actions.
type KeyboardHandler struct {
	taps     *TapCounter
	sequence *SequenceDetector

	onAction   ActionHandler
	onModifier func(held bool)

	ctx context.Context
	mu  sync.RWMutex
}

// NewKeyboardHandler creates a new keyboard handler.
func NewKeyboardHandler(ctx context.Context) *KeyboardHandler {
	log := logging.FromContext(ctx)
	log.Debug().Msg("creating keyboard handler")

	return &KeyboardHandler{
		taps:     NewTapCounter(DefaultTapWindow),
		sequence: NewSequenceDetector(map[string]Action{ResetWord: ActionResetState}),
		ctx:      ctx,
	}
}

// SetOnAction sets the callback for when actions are triggered.
func (h *KeyboardHandler) SetOnAction(fn ActionHandler) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.onAction = fn
}

// SetOnModifier sets the callback for pan modifier (Shift) changes.
func (h *KeyboardHandler) SetOnModifier(fn func(held bool)) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.onModifier = fn
}

// KeyDown handles a key press at now. It returns true if the key was consumed.
func (h *KeyboardHandler) KeyDown(key string, now time.Time) bool {
	log := logging.FromContext(h.ctx)
	name := strings.ToLower(key)

	switch name {
	case KeyShift:
		h.modifier(true)
		return true
	case KeySpace, " ":
		if h.taps.Tap(now) >= rewindTaps {
			h.taps.Reset()
			h.dispatch(ActionRewind)
		} else {
			h.dispatch(ActionTogglePause)
		}
		return true
	case KeyEscape, "ctrl+c":
		h.dispatch(ActionQuit)
		return true
	}

	if utf8.RuneCountInString(key) != 1 {
		log.Trace().Str("key", key).Msg("unhandled key")
		return false
	}

	r, _ := utf8.DecodeRuneInString(key)
	if action, ok := h.sequence.Feed(r); ok {
		log.Info().Str("action", string(action)).Msg("key sequence triggered")
		h.dispatch(action)
		return true
	}
	if name == "z" {
		h.dispatch(ActionToggleShowAll)
		return true
	}
	return false
}

// KeyUp handles a key release.
func (h *KeyboardHandler) KeyUp(key string) {
	if strings.EqualFold(key, KeyShift) {
		h.modifier(false)
	}
}

func (h *KeyboardHandler) modifier(held bool) {
	h.mu.RLock()
	fn := h.onModifier
	h.mu.RUnlock()
	if fn != nil {
		fn(held)
	}
}

func (h *KeyboardHandler) dispatch(action Action) {
	h.mu.RLock()
	handler := h.onAction
	h.mu.RUnlock()

	if handler == nil {
		return
	}
	if err := handler(h.ctx, action); err != nil {
		logging.FromContext(h.ctx).Error().
			Err(err).
			Str("action", string(action)).
			Msg("keyboard action handler error")
	}
}
