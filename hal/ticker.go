package hal

import "sync/atomic"

// Ticker is the millisecond time base. A periodic timer interrupt calls
// Tick; everything else only reads. This is the only state shared across
// interrupt context, and it is a single-writer atomic counter, so no
// further synchronization is required anywhere in the core.
type Ticker struct {
	ms uint32
}

// Tick advances the counter by one millisecond. Interrupt context only.
func (t *Ticker) Tick() { atomic.AddUint32(&t.ms, 1) }

// Millis implements Clock.
func (t *Ticker) Millis() uint32 { return atomic.LoadUint32(&t.ms) }

var _ Clock = (*Ticker)(nil)
