package player

import (
	"math"

	"airdrums-go/types"
)

// synthRate is the render rate of the built-in bank, matching the stored
// sample sets it stands in for.
const synthRate = 8000

// SynthBank fills every slot with a short synthesized voice: a decaying
// sine burst, pitched per drum, centered on the 12-bit DAC midpoint.
// It is the bring-up bank used until real sample sets are flashed.
func SynthBank() Bank {
	var b Bank
	for cat := types.CategorySnare; cat <= types.CategoryLowTom; cat++ {
		b[cat] = synthVoice(voiceHz(cat), voiceMS(cat))
	}
	return b
}

func voiceHz(cat types.Category) float64 {
	switch cat {
	case types.CategoryKick:
		return 60
	case types.CategoryLowTom:
		return 110
	case types.CategoryMidTom:
		return 160
	case types.CategoryHighTom:
		return 220
	case types.CategorySnare:
		return 330
	case types.CategoryRide:
		return 520
	case types.CategoryHiHat:
		return 900
	default: // crash
		return 700
	}
}

func voiceMS(cat types.Category) int {
	switch cat {
	case types.CategoryCrash, types.CategoryRide:
		return 300
	case types.CategoryKick:
		return 150
	default:
		return 120
	}
}

func synthVoice(hz float64, ms int) types.Waveform {
	n := synthRate * ms / 1000
	data := make([]uint16, n)
	for i := range data {
		t := float64(i) / synthRate
		env := math.Exp(-6 * t / (float64(ms) / 1000))
		v := math.Sin(2*math.Pi*hz*t) * env
		data[i] = uint16(2048 + v*2047)
	}
	return types.Waveform{Data: data, Rate: synthRate}
}
