// Package platform binds the hardware contracts in hal to a concrete
// board. The rp2040 build wires real machine peripherals; every other
// build gets a quiescent board so the firmware core links and runs on a
// host (sensor link down, console idle).
package platform

import "airdrums-go/hal"

// Board is everything main needs from the hardware.
type Board struct {
	Engine hal.Engine
	CS     hal.Pin
	Ready  hal.Pin
	Reset  hal.Pin
	Wake   hal.Pin

	KickButton hal.Pin
	ZeroButton hal.Pin

	DAC     hal.DAC
	Console hal.Port

	Clock hal.Clock
	Delay hal.Delayer
}
