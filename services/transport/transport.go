// Package transport moves framed packets across the synchronous serial
// link to the sensor hub, gated by the hub's data-ready line. It owns the
// chip-select and ready-line pins for the life of the process and heals
// the serial engine in place when it desyncs.
package transport

import (
	"encoding/binary"

	"github.com/rs/zerolog"

	"airdrums-go/errcode"
	"airdrums-go/hal"
)

// headerLen is the fixed frame header size. Bytes 0-1 carry the packet
// length, little-endian, with bit 15 reused as the continuation flag.
const headerLen = 4

// maxFrameLen is the largest length the header can encode once the
// continuation bit is masked off.
const maxFrameLen = 0x7FFF

// Header is a decoded frame header.
type Header struct {
	Length       uint16
	Continuation bool
}

// DecodeHeader reads the length and continuation flag from the first four
// bytes of an exchange.
func DecodeHeader(b []byte) Header {
	raw := binary.LittleEndian.Uint16(b[:2])
	return Header{
		Length:       raw &^ 0x8000,
		Continuation: raw&0x8000 != 0,
	}
}

// Config carries the transport's timing and engine parameters.
type Config struct {
	HeaderBudgetMS  uint32 // ready wait before the header phase
	PayloadBudgetMS uint32 // ready wait before the payload phase and sends
	DrainBound      int    // recovery busy-flag cap

	Engine hal.EngineConfig
}

// DefaultConfig matches the shipped sensor hub wiring.
func DefaultConfig() Config {
	return Config{
		HeaderBudgetMS:  20,
		PayloadBudgetMS: 500,
		DrainBound:      1000,
		Engine:          hal.EngineConfig{Mode: 3, Frequency: 1_250_000},
	}
}

// Pins groups the dedicated lines the transport owns. All are active low
// except WAKE, which must be held high from before reset until the hub
// first asserts ready.
type Pins struct {
	CS    hal.Pin
	Ready hal.Pin
	Reset hal.Pin
	Wake  hal.Pin
}

// Transport is the frame-level interface over one sensor hub link.
type Transport struct {
	eng   hal.Engine
	pins  Pins
	ready *ReadyLine
	clk   hal.Clock
	dly   hal.Delayer
	cfg   Config
	log   zerolog.Logger

	// Scratch buffers so exchanges allocate nothing per call.
	txHdr [headerLen]byte
	tx    []byte
	rx    []byte
}

// New wires a transport. The logger may be zerolog.Nop().
func New(eng hal.Engine, pins Pins, clk hal.Clock, dly hal.Delayer, cfg Config, log zerolog.Logger) *Transport {
	if cfg.HeaderBudgetMS == 0 {
		cfg.HeaderBudgetMS = DefaultConfig().HeaderBudgetMS
	}
	if cfg.PayloadBudgetMS == 0 {
		cfg.PayloadBudgetMS = DefaultConfig().PayloadBudgetMS
	}
	if cfg.DrainBound <= 0 {
		cfg.DrainBound = DefaultConfig().DrainBound
	}
	if cfg.Engine.Frequency == 0 {
		cfg.Engine = DefaultConfig().Engine
	}
	return &Transport{
		eng:   eng,
		pins:  pins,
		ready: NewReadyLine(pins.Ready, clk, dly),
		clk:   clk,
		dly:   dly,
		cfg:   cfg,
		log:   log,
	}
}

// Ready exposes the ready line for callers that sequence around it.
func (t *Transport) Ready() *ReadyLine { return t.ready }

// NowMicros returns a microsecond timestamp derived from the millisecond
// tick. It wraps at 2^32 µs; use difference arithmetic only.
func (t *Transport) NowMicros() uint32 { return t.clk.Millis() * 1000 }

// Receive reads one frame into buf. It returns the total frame length
// (header included) and a receive timestamp. errcode.NoData covers every
// empty-cycle outcome: ready timeout, malformed or oversize header, or an
// engine fault that recovery could not clear. The transport never
// truncates: an oversize frame is left unread for the hub to re-send.
func (t *Transport) Receive(buf []byte) (int, uint32, error) {
	if len(buf) < headerLen {
		return 0, 0, &errcode.E{C: errcode.NoData, Op: "receive", Msg: "buffer smaller than header"}
	}
	if !t.ready.Wait(t.cfg.HeaderBudgetMS) {
		return 0, 0, errcode.NoData
	}
	if err := t.ensureConfigured(); err != nil {
		t.log.Warn().Err(err).Msg("engine recovery failed, skipping cycle")
		return 0, 0, &errcode.E{C: errcode.NoData, Op: "receive", Err: err}
	}

	var hdr [headerLen]byte
	if err := t.exchange(t.txHdr[:], hdr[:]); err != nil {
		t.log.Warn().Err(err).Msg("header exchange failed")
		return 0, 0, &errcode.E{C: errcode.NoData, Op: "receive", Err: err}
	}

	h := DecodeHeader(hdr[:])
	if h.Continuation {
		// Decoded but not reassembled here; the session layer sees the
		// flag in the header bytes.
		t.log.Debug().Uint16("len", h.Length).Msg("continuation frame")
	}
	if h.Length < headerLen {
		t.log.Debug().Uint16("len", h.Length).Msg("malformed header")
		return 0, 0, &errcode.E{C: errcode.NoData, Op: "receive", Err: errcode.Malformed}
	}
	if int(h.Length) > len(buf) {
		t.log.Debug().Uint16("len", h.Length).Int("cap", len(buf)).Msg("frame exceeds buffer")
		return 0, 0, &errcode.E{C: errcode.NoData, Op: "receive", Err: errcode.Oversize}
	}

	copy(buf, hdr[:])
	if h.Length == headerLen {
		return headerLen, t.NowMicros(), nil
	}

	// Deasserting chip-select after the header phase also deasserts the
	// ready line, so payload readiness is a fresh signaling event.
	if !t.ready.Wait(t.cfg.PayloadBudgetMS) {
		t.log.Debug().Msg("payload ready wait timed out")
		return 0, 0, errcode.NoData
	}
	n := int(h.Length) - headerLen
	if err := t.exchange(t.zeros(n), buf[headerLen:h.Length]); err != nil {
		t.log.Warn().Err(err).Msg("payload exchange failed")
		return 0, 0, &errcode.E{C: errcode.NoData, Op: "receive", Err: err}
	}
	return int(h.Length), t.NowMicros(), nil
}

// Send writes one frame as a single chip-select-framed exchange. It
// returns 0 with errcode.Timeout if the hub never signals ready to
// receive within the payload budget.
func (t *Transport) Send(p []byte) (int, error) {
	if len(p) == 0 {
		return 0, nil
	}
	if len(p) > maxFrameLen {
		return 0, &errcode.E{C: errcode.Oversize, Op: "send"}
	}
	if !t.ready.Wait(t.cfg.PayloadBudgetMS) {
		return 0, errcode.Timeout
	}
	if err := t.ensureConfigured(); err != nil {
		return 0, &errcode.E{C: errcode.EngineFault, Op: "send", Err: err}
	}
	if err := t.exchange(p, t.sink(len(p))); err != nil {
		return 0, &errcode.E{C: errcode.Error, Op: "send", Err: err}
	}
	return len(p), nil
}

// exchange brackets one duplex transfer with the chip-select line. The
// select is always released, success or failure.
func (t *Transport) exchange(w, r []byte) error {
	t.pins.CS.Set(false)
	err := t.eng.Tx(w, r)
	t.pins.CS.Set(true)
	return err
}

// zeros returns an n-byte all-zero write buffer for read-side exchanges.
func (t *Transport) zeros(n int) []byte {
	if cap(t.tx) < n {
		t.tx = make([]byte, n)
	}
	t.tx = t.tx[:n]
	for i := range t.tx {
		t.tx[i] = 0
	}
	return t.tx
}

// sink returns an n-byte receive buffer whose contents are discarded.
func (t *Transport) sink(n int) []byte {
	if cap(t.rx) < n {
		t.rx = make([]byte, n)
	}
	return t.rx[:n]
}
