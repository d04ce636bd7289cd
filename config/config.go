// Package config holds the tunable parameters of the firmware. Defaults
// match the shipped hardware; a TOML file can override them on host builds
// and during bench bring-up.
package config

import (
	"github.com/BurntSushi/toml"

	"airdrums-go/x/mathx"
)

type Config struct {
	Transport Transport `toml:"transport"`
	Gesture   Gesture   `toml:"gesture"`
	Playback  Playback  `toml:"playback"`
	Buttons   Buttons   `toml:"buttons"`
}

type Transport struct {
	// HeaderBudgetMS bounds the ready wait before the header phase. Short
	// on purpose: absence of data is a normal cycle outcome.
	HeaderBudgetMS uint32 `toml:"header_budget_ms"`
	// PayloadBudgetMS bounds the ready re-wait before the payload phase.
	PayloadBudgetMS uint32 `toml:"payload_budget_ms"`
	// DrainBound caps the busy-flag wait during engine recovery.
	DrainBound int `toml:"drain_bound"`

	EngineMode uint8  `toml:"engine_mode"`
	EngineHz   uint32 `toml:"engine_hz"`
}

type Gesture struct {
	// HitThreshold is the monitored-axis angular rate, in raw milli-rad/s,
	// below which a swing counts as a strike. Negative: the strike motion
	// is a downward rotation.
	HitThreshold int32 `toml:"hit_threshold"`
	// YawOffsetDeg is the initial calibration offset.
	YawOffsetDeg float64 `toml:"yaw_offset_deg"`
	// ReportIntervalUS is requested from the hub for both report types.
	ReportIntervalUS uint32 `toml:"report_interval_us"`
}

type Playback struct {
	// Calibration scales the per-sample delay to the actual core clock.
	// One knob for every playback path.
	Calibration float64 `toml:"calibration"`
}

type Buttons struct {
	DebounceMS uint32 `toml:"debounce_ms"`
}

// Default returns the shipped configuration.
func Default() Config {
	return Config{
		Transport: Transport{
			HeaderBudgetMS:  20,
			PayloadBudgetMS: 500,
			DrainBound:      1000,
			EngineMode:      3,
			EngineHz:        1_250_000,
		},
		Gesture: Gesture{
			HitThreshold:     -2500,
			ReportIntervalUS: 10_000,
		},
		Playback: Playback{Calibration: 1.0},
		Buttons:  Buttons{DebounceMS: 50},
	}
}

// Load reads a TOML file over the defaults. Missing fields keep their
// default values; out-of-range fields are clamped, not rejected.
func Load(path string) (Config, error) {
	cfg := Default()
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return Default(), err
	}
	cfg.normalize()
	return cfg, nil
}

func (c *Config) normalize() {
	c.Transport.HeaderBudgetMS = mathx.Clamp(c.Transport.HeaderBudgetMS, 1, 1000)
	c.Transport.PayloadBudgetMS = mathx.Clamp(c.Transport.PayloadBudgetMS, 1, 5000)
	c.Transport.DrainBound = mathx.Clamp(c.Transport.DrainBound, 1, 100_000)
	c.Transport.EngineMode = mathx.Clamp(c.Transport.EngineMode, 0, 3)
	if c.Transport.EngineHz == 0 {
		c.Transport.EngineHz = Default().Transport.EngineHz
	}
	if c.Gesture.ReportIntervalUS == 0 {
		c.Gesture.ReportIntervalUS = Default().Gesture.ReportIntervalUS
	}
	if c.Playback.Calibration <= 0 {
		c.Playback.Calibration = 1.0
	}
	c.Buttons.DebounceMS = mathx.Clamp(c.Buttons.DebounceMS, 1, 1000)
}
