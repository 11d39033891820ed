package riot_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/retrosilicon/vcs2600/hardware/riot"
)

func TestTimerReloadAndUnderflow(t *testing.T) {
	tm := riot.NewTimer()
	tm.Reload(2, 1)
	tm.ClearBlock()

	tm.Tick() // elapsed 1 -> 0, value 2 -> 1
	assert.Equal(t, uint8(1), tm.Value())

	tm.Tick() // value 1 -> 0
	assert.Equal(t, uint8(0), tm.Value())

	tm.Tick() // value 0 underflows: interval resets to 1, status latches
	assert.Equal(t, uint8(0xff), tm.Value())
	assert.Equal(t, 1, tm.Interval())
	assert.Equal(t, uint8(0x80|0x40), tm.Status())
}

func TestTimerReloadBlocksUntilClearBlock(t *testing.T) {
	tm := riot.NewTimer()
	tm.Reload(5, 8)
	before := tm.Value()
	tm.Tick()
	tm.Tick()
	assert.Equal(t, before, tm.Value(), "ticks before ClearBlock must not advance the timer")

	tm.ClearBlock()
	tm.Tick()
	assert.Equal(t, before-1, tm.Value(), "first tick after ClearBlock decrements the value")
	assert.Equal(t, 8, tm.Elapsed())
}

func TestTimerReadStatusClearsOnlyAckBit(t *testing.T) {
	tm := riot.NewTimer()
	tm.Reload(0, 1)
	tm.ClearBlock()
	tm.Tick()

	status := tm.Status()
	assert.NotZero(t, status&0x80, "underflow latch")
	assert.NotZero(t, status&0x40, "ack bit")

	got := tm.ReadStatus()
	assert.Equal(t, status, got, "ReadStatus returns the pre-clear value")
	assert.NotZero(t, tm.Status()&0x80, "underflow latch survives a read")
	assert.Zero(t, tm.Status()&0x40, "ack bit clears on read")
}

func TestTimerRejectsInvalidInterval(t *testing.T) {
	tm := riot.NewTimer()
	assert.Panics(t, func() { tm.Reload(1, 3) })
}

func TestTimerElapsedNeverExceedsInterval(t *testing.T) {
	tm := riot.NewTimer()
	tm.Reload(10, 64)
	tm.ClearBlock()
	for i := 0; i < 200; i++ {
		tm.Tick()
		assert.LessOrEqual(t, tm.Elapsed(), tm.Interval())
	}
}
