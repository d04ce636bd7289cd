// Package hal declares the hardware contracts the core runs against.
// Platform code (see platform/) supplies real pins and the serial engine;
// tests supply fakes. Nothing in here touches registers directly.
package hal

import "tinygo.org/x/drivers"

// Pin is one digital line. Level conventions (active-low etc.) belong to
// the consumer, not the pin.
type Pin interface {
	ConfigureInput(pull Pull) error
	ConfigureOutput(initial bool) error
	Set(level bool)
	Get() bool
	Number() int
}

type Pull uint8

const (
	PullNone Pull = iota
	PullUp
	PullDown
)

// EngineConfig is the full serial-engine setup, written atomically while
// the engine is disabled.
type EngineConfig struct {
	Mode      uint8  // clock polarity/phase, 0..3
	Frequency uint32 // Hz
}

// Engine is the synchronous serial engine behind the sensor link. The
// embedded drivers.SPI supplies the duplex byte exchange (write w while
// reading r, one byte per clock). The remaining methods expose the
// enable/role/busy state the transport needs for self-healing.
type Engine interface {
	drivers.SPI

	Enabled() bool
	Master() bool
	Busy() bool

	Disable()
	Enable()
	Configure(cfg EngineConfig) error
}

// Clock is a monotonic millisecond counter. Values wrap at 2^32 ms;
// consumers must use difference arithmetic only.
type Clock interface {
	Millis() uint32
}

// Delayer provides bounded blocking waits. The core never sleeps through
// any other mechanism, so a fake delayer gives tests full control of time.
type Delayer interface {
	DelayMS(ms uint32)
	DelayUS(us uint32)
}

// DAC accepts one playback sample code at a time.
type DAC interface {
	Write(sample uint16)
}

// Port is a byte-oriented console line (debug UART or equivalent).
type Port interface {
	Buffered() int
	Read(p []byte) (int, error)
	Write(p []byte) (int, error)
}
