// Command pico-controller runs the dual-core control node: a 1 kHz control
// loop on one goroutine and a cooperative button/maintenance scheduler on
// another, joined by bounded non-blocking channels.
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/samber/lo"
	"github.com/sourcegraph/conc"
	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/sweeney/pico-controller/internal/channel"
	"github.com/sweeney/pico-controller/internal/config"
	"github.com/sweeney/pico-controller/internal/gpio"
	"github.com/sweeney/pico-controller/internal/msg"
	"github.com/sweeney/pico-controller/internal/status"
	"github.com/sweeney/pico-controller/internal/task"
)

func main() {
	configPath := flag.String("config", "", "path to controller.yaml (optional)")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatal().Err(err).Msg("load config")
	}
	setupLogging(cfg)

	if err := run(cfg); err != nil {
		log.Fatal().Err(err).Msg("fatal")
	}
}

func setupLogging(cfg config.Config) {
	level, err := zerolog.ParseLevel(cfg.LogLevel)
	if err != nil {
		level = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(level)

	var w io.Writer = zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339}
	if !lo.IsEmpty(cfg.LogFile) {
		w = &lumberjack.Logger{
			Filename:   cfg.LogFile,
			MaxSize:    10, // MB
			MaxBackups: 3,
		}
	}
	log.Logger = log.Output(w)
}

func run(cfg config.Config) error {
	button, err := gpio.NewRealInput(cfg.GPIOChip, cfg.ButtonPin)
	if err != nil {
		return fmt.Errorf("init button pin: %w", err)
	}
	led, err := gpio.NewRealOutput(cfg.GPIOChip, cfg.LEDPin)
	if err != nil {
		button.Close()
		return fmt.Errorf("init led pin: %w", err)
	}

	log.Info().
		Str("variant", cfg.Variant).
		Dur("control_period", cfg.ControlPeriod).
		Dur("maintenance_period", cfg.MaintenancePeriod).
		Dur("button_debounce", cfg.ButtonDebounce).
		Int("button_pin", cfg.ButtonPin).
		Int("led_pin", cfg.LEDPin).
		Int("button_channel_cap", cfg.ButtonChannelCap).
		Int("maintenance_channel_cap", cfg.MaintenanceChannelCap).
		Msg("starting dual-core control node")

	buttonToControl := channel.New[msg.ButtonMessage](cfg.ButtonChannelCap)
	maintToControl := channel.New[msg.MaintenanceMessage](cfg.MaintenanceChannelCap)

	tracker := status.NewTracker(time.Now())

	controlTask := task.NewControlTask(buttonToControl, maintToControl, tracker,
		log.With().Str("task", "control").Logger())
	buttonTask := task.NewButtonTask(button, buttonToControl,
		log.With().Str("task", "button").Logger())
	maintTask := task.NewMaintenanceTask(led, maintToControl,
		log.With().Str("task", "maintenance").Logger())

	controlLoop := task.NewDeadlineLoop("control", cfg.ControlPeriod, controlTask.Step, tracker,
		log.With().Str("core", "0").Logger())
	coreB := task.NewCooperative(log.With().Str("core", "1").Logger(),
		task.Periodic{Name: "button", Period: cfg.ButtonDebounce, Step: buttonTask.Step},
		task.Periodic{Name: "maintenance", Period: cfg.MaintenancePeriod, Step: maintTask.Step},
	)

	// The node has no shutdown path: both cores run until power-off.
	ctx := context.Background()
	var wg conc.WaitGroup
	wg.Go(func() { controlLoop.Run(ctx) })
	wg.Go(func() { coreB.Run(ctx) })
	wg.Wait()
	return nil
}
