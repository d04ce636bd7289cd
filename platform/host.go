//go:build !rp2040

package platform

import (
	"os"

	"airdrums-go/errcode"
	"airdrums-go/hal"
)

// Open on a host returns a quiescent board: the sensor link reports no
// data, the DAC discards samples, and the console writes to stdout. The
// drumsim binary injects scripted hardware instead of using this.
func Open() (*Board, error) {
	return &Board{
		Engine: &nullEngine{},
		CS:     &nullPin{level: true},
		Ready:  &nullPin{level: true}, // never asserted (active low)
		Reset:  &nullPin{level: true},
		Wake:   &nullPin{level: true},

		KickButton: &nullPin{level: true},
		ZeroButton: &nullPin{level: true},

		DAC:     nullDAC{},
		Console: &stdoutPort{},

		Clock: hal.NewWallClock(),
		Delay: hal.SleepDelayer{},
	}, nil
}

type nullPin struct{ level bool }

func (p *nullPin) ConfigureInput(pull hal.Pull) error { return nil }
func (p *nullPin) ConfigureOutput(initial bool) error { p.level = initial; return nil }
func (p *nullPin) Set(level bool)                     { p.level = level }
func (p *nullPin) Get() bool                          { return p.level }
func (p *nullPin) Number() int                        { return -1 }

// nullEngine exchanges zeros and never goes busy.
type nullEngine struct {
	enabled bool
	cfg     hal.EngineConfig
}

func (e *nullEngine) Enabled() bool { return e.enabled }
func (e *nullEngine) Master() bool  { return e.enabled }
func (e *nullEngine) Busy() bool    { return false }
func (e *nullEngine) Disable() { e.enabled = false }
func (e *nullEngine) Enable() { e.enabled = true }

func (e *nullEngine) Configure(cfg hal.EngineConfig) error {
	e.cfg = cfg
	return nil
}

func (e *nullEngine) Tx(w, r []byte) error {
	if !e.enabled {
		return errcode.EngineFault
	}
	for i := range r {
		r[i] = 0
	}
	return nil
}

func (e *nullEngine) Transfer(b byte) (byte, error) {
	if !e.enabled {
		return 0, errcode.EngineFault
	}
	return 0, nil
}

type nullDAC struct{}

func (nullDAC) Write(sample uint16) {}

// stdoutPort is write-only; Buffered always reports an idle line.
type stdoutPort struct{}

func (*stdoutPort) Buffered() int               { return 0 }
func (*stdoutPort) Read(p []byte) (int, error)  { return 0, nil }
func (*stdoutPort) Write(p []byte) (int, error) { return os.Stdout.Write(p) }
