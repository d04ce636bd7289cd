package transport

import "airdrums-go/hal"

// ReadyLine samples the hub's active-low data-ready signal. The core only
// ever reads the pin.
type ReadyLine struct {
	pin hal.Pin
	clk hal.Clock
	dly hal.Delayer
}

func NewReadyLine(pin hal.Pin, clk hal.Clock, dly hal.Delayer) *ReadyLine {
	return &ReadyLine{pin: pin, clk: clk, dly: dly}
}

// Asserted reports the instantaneous line state. Active low.
func (r *ReadyLine) Asserted() bool { return !r.pin.Get() }

// Wait blocks until the line asserts or budgetMS elapses, polling at 1 ms
// granularity. The immediate check runs before the loop: the line can
// assert briefly between poll iterations, and an edge that landed just
// before the call would otherwise be missed.
func (r *ReadyLine) Wait(budgetMS uint32) bool {
	if r.Asserted() {
		return true
	}
	start := r.clk.Millis()
	for r.clk.Millis()-start < budgetMS {
		r.dly.DelayMS(1)
		if r.Asserted() {
			return true
		}
	}
	return false
}
