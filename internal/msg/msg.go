// Package msg defines the messages exchanged between the node's actors.
// These are in-process contracts only; they never leave the process.
package msg

// ButtonMessage is sent from the button task to the control task on a
// qualifying edge. It is a pure tag with no payload.
type ButtonMessage int

const (
	// ButtonPressed signals a debounced press edge.
	ButtonPressed ButtonMessage = iota
	// ButtonReleased signals a debounced release edge.
	ButtonReleased
)

func (m ButtonMessage) String() string {
	switch m {
	case ButtonPressed:
		return "PRESSED"
	case ButtonReleased:
		return "RELEASED"
	default:
		return "UNKNOWN"
	}
}

// MaintenanceMessage is the health snapshot sent from the maintenance task
// to the control task once per maintenance cycle.
type MaintenanceMessage struct {
	// SystemOK is the result of the most recent self-check.
	SystemOK bool
	// LEDState is the LED level after the cycle's toggle.
	LEDState bool
	// TickCount is the monotonic heartbeat counter at report time.
	TickCount int32
}
