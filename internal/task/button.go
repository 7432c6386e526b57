// Package task binds the pure state machines to their hardware and channels
// and provides the two scheduling domains that drive them: a hard-deadline
// loop for the control task and a cooperative multiplexer for the rest.
//
// Every side effect here is edge-triggered: wrappers compare the actor's
// state before and after Step and act only on the tick where it changed.
package task

import (
	"github.com/rs/zerolog"

	"github.com/sweeney/pico-controller/internal/actor"
	"github.com/sweeney/pico-controller/internal/channel"
	"github.com/sweeney/pico-controller/internal/gpio"
	"github.com/sweeney/pico-controller/internal/msg"
)

// ButtonTask pairs the button machine with its input pin and outbound
// channel. Step samples the pin once, latches the value, advances the
// machine, and pushes a message on a qualifying edge. It runs on the
// cooperative core at the debounce interval.
type ButtonTask struct {
	Actor *actor.Button
	pin   gpio.InputPin
	out   *channel.Channel[msg.ButtonMessage]
	log   zerolog.Logger
	drops uint64
}

// NewButtonTask creates a button task around a fresh machine.
func NewButtonTask(pin gpio.InputPin, out *channel.Channel[msg.ButtonMessage], log zerolog.Logger) *ButtonTask {
	return &ButtonTask{
		Actor: actor.NewButton(),
		pin:   pin,
		out:   out,
		log:   log,
	}
}

// Step runs one debounce tick.
func (t *ButtonTask) Step() {
	pressed, err := t.pin.Read()
	if err != nil {
		// Leave the latched input as-is; the machine sees the last
		// good sample until the pin recovers.
		t.log.Error().Err(err).Msg("button: pin read failed")
		return
	}
	t.Actor.Pressed = pressed

	old := t.Actor.State
	t.Actor.Step()
	if t.Actor.State == old {
		return
	}

	t.log.Debug().
		Stringer("from", old).
		Stringer("to", t.Actor.State).
		Msg("button: state change")

	switch t.Actor.State {
	case actor.ButtonNotifying:
		t.send(msg.ButtonPressed)
	case actor.ButtonReleased:
		t.send(msg.ButtonReleased)
	}
}

func (t *ButtonTask) send(m msg.ButtonMessage) {
	if !t.out.TrySend(m) {
		t.drops++
		t.log.Warn().
			Stringer("event", m).
			Uint64("dropped_total", t.drops).
			Msg("button: channel full, event dropped")
		return
	}
	t.log.Debug().Stringer("event", m).Msg("button: event sent")
}

// Drops reports how many events were discarded against a full channel.
func (t *ButtonTask) Drops() uint64 {
	return t.drops
}
