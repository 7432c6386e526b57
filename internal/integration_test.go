package internal

import (
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sweeney/pico-controller/internal/channel"
	"github.com/sweeney/pico-controller/internal/config"
	"github.com/sweeney/pico-controller/internal/gpio"
	"github.com/sweeney/pico-controller/internal/msg"
	"github.com/sweeney/pico-controller/internal/status"
	"github.com/sweeney/pico-controller/internal/task"
)

// TestIntegrationButtonToControl drives the full producer/consumer path with
// fakes: three debounce ticks pressed, three released, the control task
// stepping in between. The control side must observe exactly one press and
// one release, in that order, with nothing dropped.
func TestIntegrationButtonToControl(t *testing.T) {
	pin := gpio.NewFakeInput(true, true, true, false, false, false)
	buttonToControl := channel.New[msg.ButtonMessage](config.DefaultButtonChannelCap)
	maintToControl := channel.New[msg.MaintenanceMessage](config.DefaultMaintenanceChannelCap)

	tracker := status.NewTracker(time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC))
	buttonTask := task.NewButtonTask(pin, buttonToControl, zerolog.Nop())
	controlTask := task.NewControlTask(buttonToControl, maintToControl, tracker, zerolog.Nop())

	// The control loop runs far faster than the debounce tick; interleave
	// several control steps per button step to mimic that.
	for i := 0; i < 6; i++ {
		buttonTask.Step()
		for j := 0; j < 20; j++ {
			controlTask.Step()
		}
	}

	snap := tracker.Snapshot()
	assert.Equal(t, uint32(1), snap.Presses, "exactly one press observed")
	assert.Equal(t, uint32(1), snap.Releases, "exactly one release observed")
	assert.Zero(t, buttonTask.Drops())
	assert.False(t, snap.Enabled, "one press toggles the run/pause switch once")
	assert.Equal(t, uint32(120), snap.CycleCount)
}

// TestIntegrationMaintenanceToControl runs three full maintenance cycles
// against the control task and checks the LED trace and report flow.
func TestIntegrationMaintenanceToControl(t *testing.T) {
	led := gpio.NewFakeOutput()
	buttonToControl := channel.New[msg.ButtonMessage](config.DefaultButtonChannelCap)
	maintToControl := channel.New[msg.MaintenanceMessage](config.DefaultMaintenanceChannelCap)

	tracker := status.NewTracker(time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC))
	maintTask := task.NewMaintenanceTask(led, maintToControl, zerolog.Nop())
	controlTask := task.NewControlTask(buttonToControl, maintToControl, tracker, zerolog.Nop())

	// Ten control steps per maintenance step, matching the 1ms/100ms ratio.
	for i := 0; i < 12; i++ {
		maintTask.Step()
		for j := 0; j < 10; j++ {
			controlTask.Step()
		}
	}

	assert.Equal(t, []bool{true, false, true}, led.Writes, "LED toggles once per cycle")
	assert.Zero(t, maintTask.Drops(), "a live consumer means no dropped reports")

	snap := tracker.Snapshot()
	require.NotNil(t, snap.LastReport)
	assert.True(t, snap.LastReport.SystemOK)
	assert.True(t, snap.LastReport.LEDState)
	assert.Equal(t, int32(11), snap.LastReport.TickCount, "third report snapshots the eleventh tick")
	assert.False(t, snap.ErrorFlag)
}

// TestIntegrationChannelBackpressure stops the consumer and verifies the
// producers degrade by dropping, never by blocking.
func TestIntegrationChannelBackpressure(t *testing.T) {
	pin := gpio.NewFakeInput(
		// Six press/release cycles, each producing two events.
		true, false, true, false, true, false,
		true, false, true, false, true, false,
	)
	buttonToControl := channel.New[msg.ButtonMessage](config.DefaultButtonChannelCap)
	buttonTask := task.NewButtonTask(pin, buttonToControl, zerolog.Nop())

	// No consumer: 12 events against capacity 4.
	for i := 0; i < 12; i++ {
		buttonTask.Step()
	}

	assert.Equal(t, config.DefaultButtonChannelCap, buttonToControl.Len())
	assert.Equal(t, uint64(8), buttonTask.Drops())

	// The queued prefix is intact and ordered.
	want := []msg.ButtonMessage{
		msg.ButtonPressed, msg.ButtonReleased,
		msg.ButtonPressed, msg.ButtonReleased,
	}
	for _, w := range want {
		m, ok := buttonToControl.TryReceive()
		require.True(t, ok)
		assert.Equal(t, w, m)
	}
}
