package task

import (
	"github.com/rs/zerolog"

	"github.com/sweeney/pico-controller/internal/actor"
	"github.com/sweeney/pico-controller/internal/channel"
	"github.com/sweeney/pico-controller/internal/msg"
	"github.com/sweeney/pico-controller/internal/status"
)

// DefaultStatusEvery is how many control cycles pass between status log
// lines: once per second at the 1 kHz reference period.
const DefaultStatusEvery = 1000

// ControlTask is the consumer side of both channels. Each Step drains them
// completely, folds the messages into the control machine, then advances it.
// The drain is bounded by the channel capacities, so every Step does a
// constant amount of work and the deadline loop can hold its period.
type ControlTask struct {
	Actor           *actor.Control
	fromButton      *channel.Channel[msg.ButtonMessage]
	fromMaintenance *channel.Channel[msg.MaintenanceMessage]
	tracker         *status.Tracker
	log             zerolog.Logger

	// StatusEvery controls the periodic status log line; 0 disables it.
	StatusEvery uint32

	presses    uint32
	releases   uint32
	lastReport *msg.MaintenanceMessage
}

// NewControlTask creates a control task around a fresh machine.
// tracker may be nil when no status accounting is wanted.
func NewControlTask(
	fromButton *channel.Channel[msg.ButtonMessage],
	fromMaintenance *channel.Channel[msg.MaintenanceMessage],
	tracker *status.Tracker,
	log zerolog.Logger,
) *ControlTask {
	return &ControlTask{
		Actor:           actor.NewControl(),
		fromButton:      fromButton,
		fromMaintenance: fromMaintenance,
		tracker:         tracker,
		log:             log,
		StatusEvery:     DefaultStatusEvery,
	}
}

// Step runs one control cycle.
func (t *ControlTask) Step() {
	for {
		m, ok := t.fromButton.TryReceive()
		if !ok {
			break
		}
		t.log.Debug().Stringer("event", m).Msg("control: button event")
		if m == msg.ButtonPressed {
			t.presses++
		} else {
			t.releases++
		}
		t.Actor.ObserveButton(m)
	}

	for {
		m, ok := t.fromMaintenance.TryReceive()
		if !ok {
			break
		}
		t.log.Debug().
			Bool("system_ok", m.SystemOK).
			Bool("led", m.LEDState).
			Int32("tick", m.TickCount).
			Msg("control: maintenance report")
		report := m
		t.lastReport = &report
		t.Actor.ObserveMaintenance(m)
	}

	t.Actor.Step()

	if t.tracker == nil {
		return
	}
	t.tracker.UpdateControl(status.ControlState{
		CycleCount: t.Actor.CycleCount,
		Enabled:    t.Actor.Enabled,
		ErrorFlag:  t.Actor.ErrorFlag,
		Presses:    t.presses,
		Releases:   t.releases,
		LastReport: t.lastReport,
	})
	if t.StatusEvery > 0 && t.Actor.CycleCount%t.StatusEvery == 0 {
		t.logStatus()
	}
}

func (t *ControlTask) logStatus() {
	snap := t.tracker.Snapshot()
	ev := t.log.Info().
		Uint32("cycles", snap.CycleCount).
		Bool("enabled", snap.Enabled).
		Bool("error_flag", snap.ErrorFlag).
		Uint32("presses", snap.Presses).
		Uint32("releases", snap.Releases).
		Uint64("deadline_misses", snap.DeadlineMisses).
		Dur("uptime", snap.Uptime())
	if snap.LastReport != nil {
		ev = ev.Bool("system_ok", snap.LastReport.SystemOK).
			Int32("maintenance_tick", snap.LastReport.TickCount)
	}
	ev.Msg("control: status")
}
