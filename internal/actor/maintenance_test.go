package actor

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMaintenanceDefaults(t *testing.T) {
	m := NewMaintenance()
	assert.Equal(t, MaintenanceIdle, m.State)
	assert.Zero(t, m.TickCount)
	assert.False(t, m.LEDState)
	assert.True(t, m.SystemOK)
}

func TestMaintenanceFullCycle(t *testing.T) {
	m := NewMaintenance()

	wantStates := []MaintenanceState{
		MaintenanceChecking,
		MaintenanceToggling,
		MaintenanceReporting,
		MaintenanceIdle,
	}
	for i, want := range wantStates {
		m.Step()
		assert.Equal(t, want, m.State, "after step %d", i+1)
	}

	// One full cycle: LED flipped exactly once, heartbeat advanced by 4.
	assert.True(t, m.LEDState)
	assert.Equal(t, int32(4), m.TickCount)
	assert.True(t, m.SystemOK)
}

func TestMaintenanceLEDFlipsOncePerCycle(t *testing.T) {
	m := NewMaintenance()

	var flips int
	prev := m.LEDState
	for i := 0; i < 16; i++ { // four full cycles
		m.Step()
		if m.LEDState != prev {
			flips++
			prev = m.LEDState
		}
	}

	assert.Equal(t, 4, flips)
	assert.False(t, m.LEDState, "even number of cycles ends with LED off")
	assert.Equal(t, int32(16), m.TickCount)
	assert.Equal(t, MaintenanceIdle, m.State)
}

func TestMaintenanceLEDFlipsOnTogglingEntry(t *testing.T) {
	m := NewMaintenance()

	m.Step() // Idle -> Checking
	assert.False(t, m.LEDState, "LED untouched before Toggling")
	m.Step() // Checking -> Toggling
	assert.True(t, m.LEDState, "LED flips on entry to Toggling")
	m.Step() // Toggling -> Reporting
	m.Step() // Reporting -> Idle
	assert.True(t, m.LEDState, "LED untouched for the rest of the cycle")
}
