package drumkit

import "airdrums-go/hal"

// Button debounces one momentary, active-low input. Pressed reports the
// press edge exactly once; the button must be released before it can fire
// again.
type Button struct {
	pin hal.Pin
	clk hal.Clock

	debounceMS uint32
	lastSample uint32
	latched    bool
}

func NewButton(pin hal.Pin, clk hal.Clock, debounceMS uint32) *Button {
	if debounceMS == 0 {
		debounceMS = 50
	}
	return &Button{pin: pin, clk: clk, debounceMS: debounceMS}
}

func (b *Button) Pressed() bool {
	now := b.clk.Millis()
	if now-b.lastSample <= b.debounceMS {
		return false
	}
	b.lastSample = now

	pressed := !b.pin.Get() // active low
	if pressed && !b.latched {
		b.latched = true
		return true
	}
	if !pressed {
		b.latched = false
	}
	return false
}
