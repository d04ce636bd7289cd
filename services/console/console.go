// Package console is the line-oriented debug/calibration surface on the
// debug UART. It replaces the scattered debug prints of earlier firmware
// with a small command set the bench can drive.
package console

import (
	"fmt"
	"strconv"

	"github.com/google/shlex"
	"github.com/rs/zerolog"

	"airdrums-go/hal"
	"airdrums-go/types"
)

// Calibrator is the slice of the classifier the console touches.
type Calibrator interface {
	SetYawOffset(deg float64)
	YawOffset() float64
	Orientation() types.Orientation
	LastCategory() types.Category
}

// Trigger fires one percussion voice. Satisfied by the player.
type Trigger interface {
	Play(cat types.Category)
}

const maxLine = 128

type Console struct {
	port hal.Port
	cal  Calibrator
	trig Trigger
	log  zerolog.Logger

	line []byte
	buf  [16]byte
}

func New(port hal.Port, cal Calibrator, trig Trigger, log zerolog.Logger) *Console {
	return &Console{port: port, cal: cal, trig: trig, log: log, line: make([]byte, 0, maxLine)}
}

// Service drains buffered console bytes and executes any completed lines.
// It never blocks: with no input it returns immediately.
func (c *Console) Service() {
	for c.port.Buffered() > 0 {
		n, err := c.port.Read(c.buf[:])
		if n <= 0 || err != nil {
			return
		}
		for _, b := range c.buf[:n] {
			switch b {
			case '\n':
				c.Exec(string(c.line))
				c.line = c.line[:0]
			case '\r':
				// ignore
			default:
				if len(c.line) < maxLine {
					c.line = append(c.line, b)
				}
			}
		}
	}
}

// Exec runs one command line.
func (c *Console) Exec(line string) {
	args, err := shlex.Split(line)
	if err != nil {
		c.printf("parse error: %v\n", err)
		return
	}
	if len(args) == 0 {
		return
	}
	switch args[0] {
	case "status":
		o := c.cal.Orientation()
		c.printf("yaw=%.1f pitch=%.1f roll=%.1f offset=%.1f last=%s\n",
			o.Yaw, o.Pitch, o.Roll, c.cal.YawOffset(), c.cal.LastCategory())
	case "zero":
		c.cal.SetYawOffset(0)
		c.printf("yaw offset reset\n")
	case "offset":
		if len(args) != 2 {
			c.printf("usage: offset <degrees>\n")
			return
		}
		deg, err := strconv.ParseFloat(args[1], 64)
		if err != nil {
			c.printf("bad offset %q\n", args[1])
			return
		}
		c.cal.SetYawOffset(deg)
		c.printf("yaw offset=%.1f\n", deg)
	case "hit":
		if len(args) != 2 {
			c.printf("usage: hit <drum>\n")
			return
		}
		cat, ok := types.ParseCategory(args[1])
		if !ok {
			c.printf("unknown drum %q\n", args[1])
			return
		}
		c.trig.Play(cat)
	case "help":
		c.printf("commands: status zero offset hit help\n")
	default:
		c.printf("unknown command %q\n", args[0])
	}
}

func (c *Console) printf(format string, args ...any) {
	fmt.Fprintf(portWriter{c.port}, format, args...)
}

type portWriter struct{ p hal.Port }

func (w portWriter) Write(b []byte) (int, error) { return w.p.Write(b) }
