// Package player maps hit categories to stored waveforms and drives them
// out through the DAC. Playback is a blocking, sample-by-sample timed
// loop with no yield point: while a voice plays, the transport is not
// polled and a frame arriving mid-playback is missed and re-sent by the
// hub. That is an accepted limitation of the single-threaded design, not
// something to paper over here.
package player

import (
	"github.com/rs/zerolog"

	"airdrums-go/hal"
	"airdrums-go/types"
)

// Bank holds one waveform per category slot (0..7). Empty slots are
// silent.
type Bank [8]types.Waveform

// Config tunes playback pacing.
type Config struct {
	// Calibration scales the per-sample delay to the actual core clock.
	// 1.0 means the nominal microsecond delay is accurate.
	Calibration float64
}

type Player struct {
	dac   hal.DAC
	dly   hal.Delayer
	bank  Bank
	calib float64
	log   zerolog.Logger
}

func New(dac hal.DAC, dly hal.Delayer, bank Bank, cfg Config, log zerolog.Logger) *Player {
	if cfg.Calibration <= 0 {
		cfg.Calibration = 1.0
	}
	return &Player{dac: dac, dly: dly, bank: bank, calib: cfg.Calibration, log: log}
}

// Play blocks until the category's waveform has been written out.
// CategoryNone, out-of-range categories, and empty slots are no-ops.
func (p *Player) Play(cat types.Category) {
	if int(cat) >= len(p.bank) {
		return
	}
	wf := p.bank[cat]
	if len(wf.Data) == 0 || wf.Rate == 0 {
		return
	}
	p.log.Debug().Str("drum", cat.String()).Int("samples", len(wf.Data)).Msg("play")

	periodUS := uint32(p.calib * 1_000_000 / float64(wf.Rate))
	if periodUS == 0 {
		periodUS = 1
	}
	for _, s := range wf.Data {
		p.dac.Write(s)
		p.dly.DelayUS(periodUS)
	}
}
