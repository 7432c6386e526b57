package actor

// MaintenanceState names the maintenance machine's states.
type MaintenanceState int

const (
	MaintenanceIdle MaintenanceState = iota
	MaintenanceChecking
	MaintenanceToggling
	MaintenanceReporting
)

func (s MaintenanceState) String() string {
	switch s {
	case MaintenanceIdle:
		return "Idle"
	case MaintenanceChecking:
		return "Checking"
	case MaintenanceToggling:
		return "Toggling"
	case MaintenanceReporting:
		return "Reporting"
	default:
		return "Unknown"
	}
}

// Maintenance is the periodic self-check machine. It is not input-driven:
// every Step advances exactly one position in the fixed cycle
// Idle -> Checking -> Toggling -> Reporting -> Idle.
type Maintenance struct {
	State MaintenanceState
	// TickCount is the monotonic health heartbeat, incremented once per
	// Step regardless of cycle position. Wraps as int32.
	TickCount int32
	// LEDState flips exactly once per full cycle, on entry to Toggling.
	LEDState bool
	// SystemOK is re-evaluated on entry to Checking.
	SystemOK bool
}

// NewMaintenance returns a maintenance machine in Idle, healthy, LED off.
func NewMaintenance() *Maintenance {
	return &Maintenance{SystemOK: true}
}

// Step advances one position in the cycle and bumps the heartbeat counter.
func (m *Maintenance) Step() {
	m.TickCount++

	switch m.State {
	case MaintenanceIdle:
		m.State = MaintenanceChecking
		m.SystemOK = m.healthy()
	case MaintenanceChecking:
		m.State = MaintenanceToggling
		m.LEDState = !m.LEDState
	case MaintenanceToggling:
		m.State = MaintenanceReporting
	case MaintenanceReporting:
		m.State = MaintenanceIdle
	}
}

// healthy is the self-check run on entry to Checking. The node has no
// diagnosable subsystems of its own, so the check deterministically passes;
// the cycle and reporting machinery stay exercised either way.
func (m *Maintenance) healthy() bool {
	return true
}
