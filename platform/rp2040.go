//go:build rp2040

package platform

import (
	"machine"
	"time"

	uartx "github.com/jangala-dev/tinygo-uartx/uartx"

	"airdrums-go/hal"
)

// Default wiring for the Pico carrier. SPI0 to the sensor hub, PWM audio
// on GP16, console on UART0.
const (
	pinSCK   = machine.GPIO18
	pinSDO   = machine.GPIO19
	pinSDI   = machine.GPIO16
	pinCS    = machine.GPIO17
	pinReady = machine.GPIO20
	pinReset = machine.GPIO21
	pinWake  = machine.GPIO22

	pinKick = machine.GPIO14
	pinZero = machine.GPIO15

	pinAudio = machine.GPIO28

	pinUARTTX = machine.GPIO0
	pinUARTRX = machine.GPIO1
)

// Open configures every peripheral and returns the populated board.
func Open() (*Board, error) {
	eng := &rpEngine{hw: machine.SPI0}

	dac, err := newPWMDAC(pinAudio)
	if err != nil {
		return nil, err
	}

	uartx.UART0.Configure(uartx.UARTConfig{
		BaudRate: 115200,
		TX:       pinUARTTX,
		RX:       pinUARTRX,
	})

	return &Board{
		Engine: eng,
		CS:     &rpPin{p: pinCS, n: int(pinCS)},
		Ready:  &rpPin{p: pinReady, n: int(pinReady)},
		Reset:  &rpPin{p: pinReset, n: int(pinReset)},
		Wake:   &rpPin{p: pinWake, n: int(pinWake)},

		KickButton: &rpPin{p: pinKick, n: int(pinKick)},
		ZeroButton: &rpPin{p: pinZero, n: int(pinZero)},

		DAC:     dac,
		Console: &rpPort{u: uartx.UART0},

		Clock: hal.NewWallClock(),
		Delay: hal.SleepDelayer{},
	}, nil
}

// ---- GPIO ----

type rpPin struct {
	p machine.Pin
	n int
}

func (r *rpPin) Number() int { return r.n }

func (r *rpPin) ConfigureInput(pull hal.Pull) error {
	var mode machine.PinMode
	switch pull {
	case hal.PullUp:
		mode = machine.PinInputPullup
	case hal.PullDown:
		mode = machine.PinInputPulldown
	default:
		mode = machine.PinInput
	}
	r.p.Configure(machine.PinConfig{Mode: mode})
	return nil
}

func (r *rpPin) ConfigureOutput(initial bool) error {
	r.p.Configure(machine.PinConfig{Mode: machine.PinOutput})
	r.p.Set(initial)
	return nil
}

func (r *rpPin) Set(b bool) { r.p.Set(b) }
func (r *rpPin) Get() bool  { return r.p.Get() }

// ---- Serial engine ----

// rpEngine adapts machine.SPI0 to hal.Engine. The RP2040 SPI block has
// no separate enable bit exposed through machine, so the enabled flag is
// tracked here and a disabled engine simply refuses exchanges.
type rpEngine struct {
	hw      *machine.SPI
	cfg     hal.EngineConfig
	enabled bool
}

func (e *rpEngine) Enabled() bool { return e.enabled }
func (e *rpEngine) Master() bool  { return e.enabled } // slave mode is never configured
func (e *rpEngine) Busy() bool    { return false }

func (e *rpEngine) Disable() { e.enabled = false }
func (e *rpEngine) Enable() { e.enabled = true }

func (e *rpEngine) Configure(cfg hal.EngineConfig) error {
	err := e.hw.Configure(machine.SPIConfig{
		Frequency: cfg.Frequency,
		Mode:      cfg.Mode,
		SCK:       pinSCK,
		SDO:       pinSDO,
		SDI:       pinSDI,
	})
	if err != nil {
		return err
	}
	e.cfg = cfg
	return nil
}

func (e *rpEngine) Tx(w, r []byte) error {
	if !e.enabled {
		return machine.ErrTxInvalidSliceSize
	}
	return e.hw.Tx(w, r)
}

func (e *rpEngine) Transfer(b byte) (byte, error) {
	if !e.enabled {
		return 0, machine.ErrTxInvalidSliceSize
	}
	return e.hw.Transfer(b)
}

// ---- Audio ----

// pwmDAC renders 12-bit sample codes as PWM duty on the audio pin. The
// carrier is far above the 8 kHz sample rate, so the RC filter on the
// board recovers the waveform.
type pwmDAC struct {
	pwm *machine.PWM
	ch  uint8
	top uint32
}

func newPWMDAC(pin machine.Pin) (*pwmDAC, error) {
	slice, err := machine.PWMPeripheral(pin)
	if err != nil {
		return nil, err
	}
	pwm := pwmFromSlice(slice)
	if err := pwm.Configure(machine.PWMConfig{Period: uint64(4 * time.Microsecond)}); err != nil {
		return nil, err
	}
	ch, err := pwm.Channel(pin)
	if err != nil {
		return nil, err
	}
	return &pwmDAC{pwm: pwm, ch: ch, top: pwm.Top()}, nil
}

func pwmFromSlice(slice uint8) *machine.PWM {
	switch slice {
	case 0:
		return machine.PWM0
	case 1:
		return machine.PWM1
	case 2:
		return machine.PWM2
	case 3:
		return machine.PWM3
	case 4:
		return machine.PWM4
	case 5:
		return machine.PWM5
	case 6:
		return machine.PWM6
	default:
		return machine.PWM7
	}
}

func (d *pwmDAC) Write(sample uint16) {
	// 12-bit code scaled to the PWM range.
	duty := uint32(sample&0x0FFF) * d.top / 0x0FFF
	d.pwm.Set(d.ch, duty)
}

// ---- Console ----

type rpPort struct{ u *uartx.UART }

func (p *rpPort) Buffered() int               { return p.u.Buffered() }
func (p *rpPort) Read(b []byte) (int, error)  { return p.u.Read(b) }
func (p *rpPort) Write(b []byte) (int, error) { return p.u.Write(b) }
