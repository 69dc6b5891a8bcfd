// Package input turns raw pointer and keyboard events into canvas actions.
package input

// Button identifies the pointer button of an event.
type Button int

const (
	// ButtonNone is used for moves without a pressed button.
	ButtonNone Button = iota
	// ButtonPrimary is the left mouse button or a single touch.
	ButtonPrimary
	// ButtonMiddle is the wheel button.
	ButtonMiddle
	// ButtonSecondary is the right mouse button.
	ButtonSecondary
)

// Modifier represents keyboard modifier flags held during an event.
type Modifier uint

const (
	// ModNone indicates no modifier is pressed.
	ModNone Modifier = 0
	// ModShift indicates the Shift key is pressed.
	ModShift Modifier = 1 << iota
	// ModCtrl indicates the Control key is pressed.
	ModCtrl
	// ModAlt indicates the Alt key is pressed.
	ModAlt
)

// Has reports whether all bits of m are set.
func (m Modifier) Has(flag Modifier) bool {
	return m&flag == flag && flag != ModNone
}

// PointerEvent is a pointer event in screen coordinates.
type PointerEvent struct {
	X, Y   float64
	Button Button
	Mods   Modifier
}

// Touch is one active touch point in screen coordinates.
type Touch struct {
	X, Y float64
}
