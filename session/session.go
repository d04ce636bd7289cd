// Package session declares the boundary to the sensor-hub session
// protocol. The protocol itself (advertisement handling, channel
// bookkeeping, report decoding) lives outside this firmware core; the
// core only promises it a duplex byte-exchange with bounded timing and
// consumes decoded samples back from it.
package session

import "airdrums-go/types"

// HAL is the contract the session layer drives the link through. Read
// returns (0, 0, NoData) when nothing arrived this cycle; that is a
// normal outcome, not an error. Timestamps are wrap-around microseconds.
type HAL interface {
	Receive(buf []byte) (n int, tUS uint32, err error)
	Send(p []byte) (n int, err error)
	NowMicros() uint32
}

// Hub is the session-protocol surface the service loop uses.
type Hub interface {
	// Open performs the one-time handshake after hardware reset. An
	// error here is surfaced as errcode.OpenFailed; the device keeps
	// running with sensor-driven hits disabled.
	Open() error
	// Service pumps the link once: at most one receive cycle plus any
	// pending decode work. Decoded samples reach the callback
	// synchronously, on the caller's thread.
	Service()
	// SetSampleCallback registers the consumer of decoded samples.
	SetSampleCallback(fn func(*types.SensorSample))
	// EnableReport asks the hub to stream one report type at the given
	// interval.
	EnableReport(kind types.SensorKind, intervalUS uint32) error
}
