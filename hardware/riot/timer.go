// Package riot implements the timer and I/O port portion of the 6532 PIA
// used in the VCS: the four-interval programmable timer (TIM1T/TIM8T/
// TIM64T/T1024T, read back via INTIM/INSTAT) and the SWCHA/SWACNT/SWCHB/
// SWBCNT switch registers.
package riot

import "github.com/retrosilicon/vcs2600/hardware/vcserr"

// status bits of INSTAT.
const (
	statusUnderflowed    = 0x80 // bit 7: PA7 interrupt / underflow latch
	statusUnderflowedAck = 0x40 // bit 6: underflow since last INSTAT read
)

// Timer implements the PIA's programmable interval timer.
type Timer struct {
	value    uint8
	status   uint8
	interval int
	elapsed  int
	block    bool
}

// NewTimer returns a Timer in an arbitrary but valid power-on state.
func NewTimer() *Timer {
	return &Timer{interval: 1, elapsed: 1}
}

// Value returns INTIM: the timer's current count.
func (t *Timer) Value() uint8 { return t.value }

// Status returns the pre-read value of INSTAT, without clearing any bits;
// callers that model the CPU read side effect should use ReadStatus.
func (t *Timer) Status() uint8 { return t.status }

// ReadStatus returns INSTAT and clears bit 6 (the latched "underflowed
// since last read" bit), exactly as the real INSTAT register does on read.
func (t *Timer) ReadStatus() uint8 {
	v := t.status
	t.status &^= statusUnderflowedAck
	return v
}

// Reload handles a write to TIM1T/TIM8T/TIM64T/T1024T: it loads INTIM with
// the written byte, sets the prescaler to the matching interval, clears
// the underflow latch, and suppresses ticking for the rest of the
// instruction that performed the write.
func (t *Timer) Reload(value uint8, interval int) {
	switch interval {
	case 1, 8, 64, 1024:
	default:
		panic(vcserr.Errorf(vcserr.InvalidTimerInterval, interval))
	}

	t.value = value
	t.interval = interval
	t.status &^= statusUnderflowed
	t.elapsed = 1
	t.block = true
}

// ClearBlock lifts the post-reload suppression; the console calls this once
// per instruction after the CPU cycles of that instruction have ticked the
// timer, so that a TIM*T write only blocks the remainder of the
// instruction that issued it.
func (t *Timer) ClearBlock() {
	t.block = false
}

// Tick advances the timer by one CPU cycle. It is a no-op while the
// post-reload block is in effect.
func (t *Timer) Tick() {
	if t.block {
		return
	}

	t.elapsed--
	if t.elapsed > 0 {
		return
	}

	if t.value == 0 {
		t.interval = 1
		t.status |= statusUnderflowed | statusUnderflowedAck
	}

	t.value--
	t.elapsed = t.interval
}

// Interval returns the current prescaler value, one of {1, 8, 64, 1024}.
func (t *Timer) Interval() int { return t.interval }

// Elapsed returns the number of CPU cycles remaining before the next
// decrement; always <= Interval().
func (t *Timer) Elapsed() int { return t.elapsed }
