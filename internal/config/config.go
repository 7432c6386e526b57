// Package config resolves the node's tuning constants once at startup.
// Values come from an optional YAML file plus CONTROLLER_* environment
// overrides; defaults match the reference firmware. The node never reloads
// or revalidates configuration at runtime.
package config

import (
	"fmt"
	"time"

	"github.com/samber/lo"
	"github.com/spf13/viper"
)

// Board variants select the wiring defaults (GPIO chip label and pins).
const (
	VariantPico  = "pico"
	VariantPico2 = "pico2"
)

// Default periods, matching the reference firmware.
const (
	DefaultControlPeriodMs     = 1   // 1 kHz control loop
	DefaultMaintenancePeriodMs = 100 // 10 Hz maintenance cycle
	DefaultButtonDebounceMs    = 50  // button sampling interval
)

// Channel capacities. These bound the control task's per-cycle drain work.
const (
	DefaultButtonChannelCap      = 4
	DefaultMaintenanceChannelCap = 2
)

// Config is the resolved, immutable node configuration.
type Config struct {
	ControlPeriod     time.Duration
	MaintenancePeriod time.Duration
	ButtonDebounce    time.Duration

	ButtonChannelCap      int
	MaintenanceChannelCap int

	Variant   string
	GPIOChip  string
	ButtonPin int
	LEDPin    int

	LogLevel string
	LogFile  string // empty: log to stderr only
}

// Load resolves the configuration. path may be empty, in which case only
// defaults and environment overrides apply.
func Load(path string) (Config, error) {
	v := viper.New()
	v.SetEnvPrefix("CONTROLLER")
	v.AutomaticEnv()

	v.SetDefault("control_period_ms", DefaultControlPeriodMs)
	v.SetDefault("maintenance_period_ms", DefaultMaintenancePeriodMs)
	v.SetDefault("button_debounce_ms", DefaultButtonDebounceMs)
	v.SetDefault("button_channel_cap", DefaultButtonChannelCap)
	v.SetDefault("maintenance_channel_cap", DefaultMaintenanceChannelCap)
	v.SetDefault("variant", VariantPico)
	v.SetDefault("log_level", "info")

	if !lo.IsEmpty(path) {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("read config %s: %w", path, err)
		}
	}

	cfg := Config{
		ControlPeriod:         time.Duration(v.GetInt("control_period_ms")) * time.Millisecond,
		MaintenancePeriod:     time.Duration(v.GetInt("maintenance_period_ms")) * time.Millisecond,
		ButtonDebounce:        time.Duration(v.GetInt("button_debounce_ms")) * time.Millisecond,
		ButtonChannelCap:      v.GetInt("button_channel_cap"),
		MaintenanceChannelCap: v.GetInt("maintenance_channel_cap"),
		Variant:               v.GetString("variant"),
		ButtonPin:             v.GetInt("button_pin"),
		LEDPin:                v.GetInt("led_pin"),
		LogLevel:              v.GetString("log_level"),
		LogFile:               v.GetString("log_file"),
	}

	wiring, ok := variants[cfg.Variant]
	if !ok {
		return Config{}, fmt.Errorf("unknown board variant %q", cfg.Variant)
	}
	cfg.GPIOChip = wiring.chip
	if cfg.ButtonPin == 0 {
		cfg.ButtonPin = wiring.buttonPin
	}
	if cfg.LEDPin == 0 {
		cfg.LEDPin = wiring.ledPin
	}

	if err := cfg.validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// variant wiring defaults. Explicit button_pin/led_pin settings override.
var variants = map[string]struct {
	chip      string
	buttonPin int
	ledPin    int
}{
	VariantPico:  {chip: "gpiochip0", buttonPin: 2, ledPin: 25},
	VariantPico2: {chip: "gpiochip0", buttonPin: 2, ledPin: 22},
}

func (c Config) validate() error {
	if c.ControlPeriod <= 0 {
		return fmt.Errorf("control period must be positive, got %v", c.ControlPeriod)
	}
	if c.MaintenancePeriod <= 0 {
		return fmt.Errorf("maintenance period must be positive, got %v", c.MaintenancePeriod)
	}
	if c.ButtonDebounce <= 0 {
		return fmt.Errorf("button debounce must be positive, got %v", c.ButtonDebounce)
	}
	if c.ButtonChannelCap <= 0 || c.MaintenanceChannelCap <= 0 {
		return fmt.Errorf("channel capacities must be positive, got %d and %d",
			c.ButtonChannelCap, c.MaintenanceChannelCap)
	}
	if c.ButtonPin == c.LEDPin {
		return fmt.Errorf("button and led cannot share pin %d", c.ButtonPin)
	}
	return nil
}
