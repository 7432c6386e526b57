// Package actor contains the node's three state machines as pure logic.
// This package has NO I/O: inputs are latched onto an actor before Step is
// called, and side effects are derived from state edges by the task wrappers.
// Each Step advances a machine by exactly one transition check.
package actor

// ButtonState names the button machine's states.
type ButtonState int

const (
	// ButtonIdle: button up, nothing pending.
	ButtonIdle ButtonState = iota
	// ButtonNotifying: press edge detected; held presses stay here.
	ButtonNotifying
	// ButtonReleased: release edge detected; returns to Idle next step.
	ButtonReleased
)

func (s ButtonState) String() string {
	switch s {
	case ButtonIdle:
		return "Idle"
	case ButtonNotifying:
		return "Notifying"
	case ButtonReleased:
		return "Released"
	default:
		return "Unknown"
	}
}

// Button tracks a sampled push button. Debouncing comes from the coarse
// sampling period: the wrapper latches Pressed once per debounce interval,
// so bounce shorter than one interval never reaches the machine.
type Button struct {
	// State changes only inside Step.
	State ButtonState
	// Pressed is the latest latched sample, set by the wrapper before Step.
	Pressed bool
	// PressCount increments only on a qualifying press edge.
	PressCount uint32
}

// NewButton returns a button machine in Idle with no presses recorded.
func NewButton() *Button {
	return &Button{}
}

// Step advances the machine by one transition check against the latched
// Pressed input. Repeated steps in the same state have no effect, which is
// what makes the wrapper's side effects edge-triggered.
func (b *Button) Step() {
	switch b.State {
	case ButtonIdle:
		if b.Pressed {
			b.State = ButtonNotifying
			b.PressCount++
		}
	case ButtonNotifying:
		if !b.Pressed {
			b.State = ButtonReleased
		}
	case ButtonReleased:
		if b.Pressed {
			// Pressed again before we settled back to Idle.
			b.State = ButtonNotifying
			b.PressCount++
		} else {
			b.State = ButtonIdle
		}
	}
}
