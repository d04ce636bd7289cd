package drumkit

import (
	"github.com/rs/zerolog"

	"airdrums-go/errcode"
	"airdrums-go/hal"
	"airdrums-go/types"
)

func noplog() zerolog.Logger { return zerolog.Nop() }

// testClock is a hand-advanced millisecond clock that also serves as the
// loop delayer, so delays move fake time forward.
type testClock struct {
	ms     uint32
	delays int
}

func (c *testClock) Millis() uint32 { return c.ms }

func (c *testClock) DelayMS(ms uint32) {
	c.ms += ms
	c.delays++
}

type fakePin struct {
	level bool
}

func (p *fakePin) ConfigureInput(pull hal.Pull) error { return nil }
func (p *fakePin) ConfigureOutput(initial bool) error { p.level = initial; return nil }
func (p *fakePin) Set(level bool)                     { p.level = level }
func (p *fakePin) Get() bool                          { return p.level }
func (p *fakePin) Number() int                        { return 0 }

type fakeLink struct {
	resets int
}

func (l *fakeLink) HardwareReset() { l.resets++ }

type fakeTrigger struct {
	played []types.Category
}

func (t *fakeTrigger) Play(cat types.Category) { t.played = append(t.played, cat) }

// fakeHub scripts the session layer. Samples queued in pending are
// delivered one per Service call, synchronously, like the real decoder.
type fakeHub struct {
	openErr  error
	opens    int
	services int
	enabled  map[types.SensorKind]uint32
	cb       func(*types.SensorSample)
	pending  []types.SensorSample
}

func (h *fakeHub) Open() error {
	h.opens++
	return h.openErr
}

func (h *fakeHub) Service() {
	h.services++
	if h.cb != nil && len(h.pending) > 0 {
		s := h.pending[0]
		h.pending = h.pending[1:]
		h.cb(&s)
	}
}

func (h *fakeHub) SetSampleCallback(fn func(*types.SensorSample)) { h.cb = fn }

func (h *fakeHub) EnableReport(kind types.SensorKind, intervalUS uint32) error {
	if h.enabled == nil {
		h.enabled = make(map[types.SensorKind]uint32)
	}
	h.enabled[kind] = intervalUS
	return nil
}

type countServicer struct {
	calls int
}

func (s *countServicer) Service() { s.calls++ }

var errOpen = &errcode.E{C: errcode.OpenFailed, Op: "hub.open", Msg: "no response"}
