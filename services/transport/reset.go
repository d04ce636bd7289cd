package transport

// HardwareReset pulses the hub's reset line. WAKE is held high throughout:
// the hub samples it during reset to select its host interface, and the
// core never uses it for anything else. The hub needs roughly 100 ms after
// release before it will respond; the caller owns that settle delay so
// bring-up sequencing stays in one place.
func (t *Transport) HardwareReset() {
	t.pins.Wake.Set(true)

	t.pins.Reset.Set(true)
	t.dly.DelayMS(1)
	t.pins.Reset.Set(false)
	t.dly.DelayMS(10)
	t.pins.Reset.Set(true)
}
