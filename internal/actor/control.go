package actor

import "github.com/sweeney/pico-controller/internal/msg"

// Control is the safety-relevant consumer on the realtime loop. The wrapper
// feeds it observations while draining the inbound channels, then calls Step.
// Enabled and ErrorFlag are pure functions of the accumulated observations,
// so a replayed message history always reproduces the same state.
type Control struct {
	// CycleCount increments exactly once per Step.
	CycleCount uint32
	// Enabled is the run/pause output; each observed press toggles it.
	Enabled bool
	// ErrorFlag mirrors the health of the most recent maintenance report.
	ErrorFlag bool
}

// NewControl returns a control machine that is enabled and error-free.
func NewControl() *Control {
	return &Control{Enabled: true}
}

// ObserveButton folds a button event into the control state. A press
// toggles Enabled; a release changes nothing.
func (c *Control) ObserveButton(m msg.ButtonMessage) {
	if m == msg.ButtonPressed {
		c.Enabled = !c.Enabled
	}
}

// ObserveMaintenance folds a maintenance report into the control state.
func (c *Control) ObserveMaintenance(m msg.MaintenanceMessage) {
	c.ErrorFlag = !m.SystemOK
}

// Step advances one control cycle. The work here is constant-time so the
// enclosing loop can hold its period.
func (c *Control) Step() {
	c.CycleCount++
}
