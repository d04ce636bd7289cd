//go:build !rp2040

// drumsim exercises the firmware core on a host: it pumps scripted
// frames through the transport and a synthesized swing sequence through
// the classifier, printing what a real kit would play. Useful for
// checking zone geometry and timing without hardware.
package main

import (
	"math"
	"os"

	"airdrums-go/hal"
	"airdrums-go/logging"
	"airdrums-go/services/gesture"
	"airdrums-go/services/player"
	"airdrums-go/services/transport"
	"airdrums-go/types"
)

func main() {
	logging.Configure(logging.ProfileTest, os.Stderr)
	log := logging.New("drumsim")

	runTransportDemo()
	runSwingDemo()

	log.Info().Msg("done")
}

// ---- transport demo: scripted frames through the real receive path ----

// simEngine plays back a scripted exchange per Tx call.
type simEngine struct {
	enabled   bool
	responses [][]byte
}

func (e *simEngine) Enabled() bool { return e.enabled }
func (e *simEngine) Master() bool  { return e.enabled }
func (e *simEngine) Busy() bool    { return false }
func (e *simEngine) Disable() { e.enabled = false }
func (e *simEngine) Enable()  { e.enabled = true }

func (e *simEngine) Configure(cfg hal.EngineConfig) error { return nil }

func (e *simEngine) Tx(w, r []byte) error {
	if len(e.responses) == 0 {
		return nil
	}
	copy(r, e.responses[0])
	e.responses = e.responses[1:]
	return nil
}

func (e *simEngine) Transfer(b byte) (byte, error) { return 0, nil }

type simPin struct{ level bool }

func (p *simPin) ConfigureInput(hal.Pull) error { return nil }
func (p *simPin) ConfigureOutput(initial bool) error {
	p.level = initial
	return nil
}
func (p *simPin) Set(level bool) { p.level = level }
func (p *simPin) Get() bool      { return p.level }
func (p *simPin) Number() int    { return -1 }

// tickDelayer advances a shared Ticker instead of sleeping, so simulated
// time is exact and the run finishes instantly.
type tickDelayer struct{ tk *hal.Ticker }

func (d tickDelayer) DelayMS(ms uint32) {
	for i := uint32(0); i < ms; i++ {
		d.tk.Tick()
	}
}

func (d tickDelayer) DelayUS(us uint32) {
	if us >= 1000 {
		d.DelayMS(us / 1000)
	}
}

func frame(payload []byte) []byte {
	n := len(payload) + 4
	f := make([]byte, n)
	f[0] = byte(n)
	f[1] = byte(n >> 8)
	copy(f[4:], payload)
	return f
}

func runTransportDemo() {
	log := logging.New("drumsim.transport")

	tk := &hal.Ticker{}
	dly := tickDelayer{tk: tk}
	eng := &simEngine{}

	payload := []byte{0xF1, 0x00, 0x84, 0x12}
	eng.responses = [][]byte{
		frame(payload)[:4], // header phase
		frame(payload),     // payload phase
	}

	ready := &simPin{level: false} // asserted (active low)
	link := transport.New(eng, transport.Pins{
		CS:    &simPin{level: true},
		Ready: ready,
		Reset: &simPin{level: true},
		Wake:  &simPin{level: true},
	}, tk, dly, transport.DefaultConfig(), log)

	var buf [256]byte
	n, tUS, err := link.Receive(buf[:])
	log.Info().Int("n", n).Uint32("t_us", tUS).Err(err).
		Hex("frame", buf[:max(n, 0)]).Msg("frame received")

	ready.level = true // deasserted: next cycle is a clean no-data pass
	n, _, err = link.Receive(buf[:])
	log.Info().Int("n", n).Err(err).Msg("idle cycle")
}

// ---- swing demo: synthetic strikes through classifier and player ----

// countDAC tallies samples instead of producing sound.
type countDAC struct{ samples int }

func (d *countDAC) Write(uint16) { d.samples++ }

// nopDelayer keeps playback from actually pacing in the sim.
type nopDelayer struct{}

func (nopDelayer) DelayMS(uint32) {}
func (nopDelayer) DelayUS(uint32) {}

func orientQ(yawDeg, pitchDeg float64) types.Quaternion {
	hy := yawDeg * math.Pi / 180 / 2
	hp := pitchDeg * math.Pi / 180 / 2
	cy, sy := math.Cos(hy), math.Sin(hy)
	cp, sp := math.Cos(hp), math.Sin(hp)
	return types.Quaternion{Real: cy * cp, I: -sy * sp, J: cy * sp, K: sy * cp}
}

func runSwingDemo() {
	log := logging.New("drumsim.swing")

	cls := gesture.New(gesture.Config{}, log)
	dac := &countDAC{}
	trig := player.New(dac, nopDelayer{}, player.SynthBank(), player.Config{}, log)

	swings := []struct {
		yaw, pitch float64
	}{
		{60, 0},   // snare
		{10, 10},  // high tom
		{10, 60},  // crash
		{320, 60}, // ride
		{250, 10}, // low tom
		{150, 0},  // dead zone, no voice
	}

	for _, sw := range swings {
		cls.Feed(&types.SensorSample{Kind: types.SensorRotation, Q: orientQ(sw.yaw, sw.pitch)})
		cat := cls.Feed(&types.SensorSample{Kind: types.SensorGyro, Gyro: types.Vec3{Y: -3.0}})
		if cat != types.CategoryNone {
			trig.Play(cat)
		}
		log.Info().
			Float64("yaw", sw.yaw).Float64("pitch", sw.pitch).
			Str("drum", cat.String()).Msg("swing")
		// release the latch before the next swing
		cls.Feed(&types.SensorSample{Kind: types.SensorGyro, Gyro: types.Vec3{Y: 0}})
	}
	log.Info().Int("dac_samples", dac.samples).Msg("playback totals")
}
