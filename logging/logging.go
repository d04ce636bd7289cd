// Package logging configures the process-wide zerolog setup. Components
// never log through a global; they receive a child logger from New so the
// read path stays testable with zerolog.Nop().
package logging

import (
	"io"
	"os"
	"strings"
	"sync"

	"github.com/rs/zerolog"
)

const (
	EnvLogLevel   = "AIRDRUMS_LOG_LEVEL"
	EnvLogNoColor = "AIRDRUMS_LOG_NOCOLOR"
)

type Profile int

const (
	ProfileRuntime Profile = iota
	ProfileTest
)

var (
	configureOnce sync.Once
	root          zerolog.Logger = zerolog.Nop()
)

func ConfigureRuntime() { Configure(ProfileRuntime, os.Stderr) }

func Configure(profile Profile, out io.Writer) {
	configureOnce.Do(func() {
		level := zerolog.InfoLevel
		if profile == ProfileTest {
			level = zerolog.DebugLevel
		}
		if lvl, ok := parseLevel(os.Getenv(EnvLogLevel)); ok {
			level = lvl
		}
		w := zerolog.ConsoleWriter{Out: out, NoColor: os.Getenv(EnvLogNoColor) != ""}
		root = zerolog.New(w).Level(level).With().Timestamp().Logger()
	})
}

// New returns a child logger tagged with a component name.
func New(component string) zerolog.Logger {
	return root.With().Str("component", component).Logger()
}

func parseLevel(raw string) (zerolog.Level, bool) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "trace":
		return zerolog.TraceLevel, true
	case "debug":
		return zerolog.DebugLevel, true
	case "info":
		return zerolog.InfoLevel, true
	case "warn", "warning":
		return zerolog.WarnLevel, true
	case "error":
		return zerolog.ErrorLevel, true
	case "off", "disabled":
		return zerolog.Disabled, true
	default:
		return zerolog.NoLevel, false
	}
}
