package controller_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/retrosilicon/vcs2600/hardware/controller"
)

// fakeVCS is a minimal controller.VCS that records the masked writes a
// Controller makes, so each port's nibble can be checked independently.
type fakeVCS struct {
	swcha      uint8
	inpt       [6]uint8
}

func newFakeVCS() *fakeVCS { return &fakeVCS{swcha: 0xff} }

func (f *fakeVCS) SetSWCHA(mask, bits uint8) {
	f.swcha = (f.swcha &^ mask) | (bits & mask)
}
func (f *fakeVCS) SetInput(port int, value uint8) { f.inpt[port] = value }

func TestDigitalJoystickPort0Directions(t *testing.T) {
	vcs := newFakeVCS()
	j := controller.NewDigitalJoystick(controller.Port0)
	j.SetUp(true)
	j.SetRight(true)
	j.Poll(vcs)

	assert.Zero(t, vcs.swcha&0x80, "up held: bit clear (active low)")
	assert.Zero(t, vcs.swcha&0x10, "right held: bit clear (active low)")
	assert.NotZero(t, vcs.swcha&0x20, "left not held: bit set")
	assert.NotZero(t, vcs.swcha&0x40, "down not held: bit set")
}

func TestDigitalJoystickFireButtonMailbox(t *testing.T) {
	vcs := newFakeVCS()
	j := controller.NewDigitalJoystick(controller.Port1)
	j.Poll(vcs)
	assert.Equal(t, uint8(0x80), vcs.inpt[5], "released reads 0x80")

	j.SetFire(true)
	j.Poll(vcs)
	assert.Equal(t, uint8(0x00), vcs.inpt[5], "pressed reads 0x00")
}

func TestTwoJoysticksDoNotClobberEachOthersNibble(t *testing.T) {
	vcs := newFakeVCS()
	p0 := controller.NewDigitalJoystick(controller.Port0)
	p1 := controller.NewDigitalJoystick(controller.Port1)

	p0.SetUp(true)
	p1.SetDown(true)

	p0.Poll(vcs)
	p1.Poll(vcs)

	assert.Zero(t, vcs.swcha&0x80, "player 0 up still held after player 1 polls")
	assert.Zero(t, vcs.swcha&0x04, "player 1 down held")
	assert.NotZero(t, vcs.swcha&0x40, "player 0 down not held")
	assert.NotZero(t, vcs.swcha&0x08, "player 1 up not held")
}
