package hal

import "time"

// WallClock is a host-side Clock backed by the runtime clock. Used by the
// simulator binary and anywhere a hardware tick is unavailable.
type WallClock struct {
	start time.Time
}

func NewWallClock() *WallClock { return &WallClock{start: time.Now()} }

func (c *WallClock) Millis() uint32 {
	return uint32(time.Since(c.start) / time.Millisecond)
}

// SleepDelayer implements Delayer with time.Sleep.
type SleepDelayer struct{}

func (SleepDelayer) DelayMS(ms uint32) { time.Sleep(time.Duration(ms) * time.Millisecond) }
func (SleepDelayer) DelayUS(us uint32) { time.Sleep(time.Duration(us) * time.Microsecond) }

var (
	_ Clock   = (*WallClock)(nil)
	_ Delayer = SleepDelayer{}
)
