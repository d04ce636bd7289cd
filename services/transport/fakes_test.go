package transport

import (
	"github.com/rs/zerolog"

	"airdrums-go/hal"
)

func noplog() zerolog.Logger { return zerolog.Nop() }

// --- fake time: a clock whose delayer advances it ---

type testClock struct {
	ms     uint32
	delays int
}

func (c *testClock) Millis() uint32 { return c.ms }
func (c *testClock) DelayMS(ms uint32) {
	c.ms += ms
	c.delays++
}
func (c *testClock) DelayUS(us uint32) { c.ms += us / 1000 }

var (
	_ hal.Clock   = (*testClock)(nil)
	_ hal.Delayer = (*testClock)(nil)
)

// --- fake pin ---

type fakePin struct {
	level   bool
	falls   int // high->low transitions
	rises   int // low->high transitions
	writes  int
	readFn  func() bool // optional override for Get
	history []bool
}

func (p *fakePin) ConfigureInput(hal.Pull) error    { return nil }
func (p *fakePin) ConfigureOutput(init bool) error  { p.level = init; return nil }
func (p *fakePin) Number() int                      { return 0 }
func (p *fakePin) Get() bool {
	if p.readFn != nil {
		return p.readFn()
	}
	return p.level
}
func (p *fakePin) Set(level bool) {
	if p.level && !level {
		p.falls++
	}
	if !p.level && level {
		p.rises++
	}
	p.level = level
	p.writes++
	p.history = append(p.history, level)
}

// newCSPin starts deasserted (high, chip-select is active low).
func newCSPin() *fakePin { return &fakePin{level: true} }

// newReadyPin starts asserted (low) unless told otherwise.
func newReadyPin(asserted bool) *fakePin { return &fakePin{level: !asserted} }

// --- fake serial engine ---

type fakeEngine struct {
	enabled bool
	master  bool
	busyFor int // Busy() answers true this many times, then false

	responses [][]byte // scripted read-side bytes, one slice per Tx
	writes    [][]byte // captured write-side bytes
	txErr     error

	disables   int
	enables    int
	configures int
	lastCfg    hal.EngineConfig

	// csDuringTx records the chip-select level seen by each exchange.
	cs         *fakePin
	csDuringTx []bool
}

func newFakeEngine() *fakeEngine { return &fakeEngine{enabled: true, master: true} }

func (e *fakeEngine) Tx(w, r []byte) error {
	e.writes = append(e.writes, append([]byte(nil), w...))
	if e.cs != nil {
		e.csDuringTx = append(e.csDuringTx, e.cs.level)
	}
	if e.txErr != nil {
		return e.txErr
	}
	if len(e.responses) > 0 {
		copy(r, e.responses[0])
		e.responses = e.responses[1:]
	}
	return nil
}

func (e *fakeEngine) Transfer(b byte) (byte, error) {
	var r [1]byte
	err := e.Tx([]byte{b}, r[:])
	return r[0], err
}

func (e *fakeEngine) Enabled() bool { return e.enabled }
func (e *fakeEngine) Master() bool  { return e.master }
func (e *fakeEngine) Busy() bool {
	if e.busyFor > 0 {
		e.busyFor--
		return true
	}
	return false
}
func (e *fakeEngine) Disable() { e.enabled = false; e.disables++ }
func (e *fakeEngine) Enable()  { e.enabled = true; e.enables++ }
func (e *fakeEngine) Configure(cfg hal.EngineConfig) error {
	e.configures++
	e.lastCfg = cfg
	e.master = true
	return nil
}

var _ hal.Engine = (*fakeEngine)(nil)

// newTransport wires a transport over fakes with ready asserted.
func newTransport(eng *fakeEngine) (*Transport, *fakePin, *fakePin, *testClock) {
	clk := &testClock{}
	cs := newCSPin()
	ready := newReadyPin(true)
	eng.cs = cs
	pins := Pins{CS: cs, Ready: ready, Reset: &fakePin{level: true}, Wake: &fakePin{level: true}}
	tr := New(eng, pins, clk, clk, DefaultConfig(), noplog())
	return tr, cs, ready, clk
}
