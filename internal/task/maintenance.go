package task

import (
	"github.com/rs/zerolog"

	"github.com/sweeney/pico-controller/internal/actor"
	"github.com/sweeney/pico-controller/internal/channel"
	"github.com/sweeney/pico-controller/internal/gpio"
	"github.com/sweeney/pico-controller/internal/msg"
)

// MaintenanceTask pairs the maintenance machine with the LED output and the
// report channel. It runs on the cooperative core at the maintenance period;
// the machine advances one cycle position per Step.
type MaintenanceTask struct {
	Actor *actor.Maintenance
	led   gpio.OutputPin
	out   *channel.Channel[msg.MaintenanceMessage]
	log   zerolog.Logger
	drops uint64
}

// NewMaintenanceTask creates a maintenance task around a fresh machine.
func NewMaintenanceTask(led gpio.OutputPin, out *channel.Channel[msg.MaintenanceMessage], log zerolog.Logger) *MaintenanceTask {
	return &MaintenanceTask{
		Actor: actor.NewMaintenance(),
		led:   led,
		out:   out,
		log:   log,
	}
}

// Step runs one maintenance tick: entry to Toggling drives the LED, entry
// to Reporting pushes a health snapshot.
func (t *MaintenanceTask) Step() {
	old := t.Actor.State
	t.Actor.Step()
	if t.Actor.State == old {
		return
	}

	switch t.Actor.State {
	case actor.MaintenanceToggling:
		if err := t.led.Write(t.Actor.LEDState); err != nil {
			t.log.Error().Err(err).Msg("maintenance: led write failed")
			return
		}
		t.log.Debug().Bool("led", t.Actor.LEDState).Msg("maintenance: led toggled")

	case actor.MaintenanceReporting:
		m := msg.MaintenanceMessage{
			SystemOK:  t.Actor.SystemOK,
			LEDState:  t.Actor.LEDState,
			TickCount: t.Actor.TickCount,
		}
		if !t.out.TrySend(m) {
			t.drops++
			t.log.Warn().
				Uint64("dropped_total", t.drops).
				Msg("maintenance: channel full, report dropped")
			return
		}
		t.log.Debug().
			Bool("system_ok", m.SystemOK).
			Bool("led", m.LEDState).
			Int32("tick", m.TickCount).
			Msg("maintenance: report sent")
	}
}

// Drops reports how many reports were discarded against a full channel.
func (t *MaintenanceTask) Drops() uint64 {
	return t.drops
}
