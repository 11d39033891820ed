package tia_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/retrosilicon/vcs2600/hardware/memory/addresses"
	"github.com/retrosilicon/vcs2600/hardware/television"
	"github.com/retrosilicon/vcs2600/hardware/tia"
)

func TestTickReleasesHaltExactlyAtLineBoundary(t *testing.T) {
	fb := television.NewFramebuffer()
	chip := tia.New(fb)

	// 228 color cycles per line / 3 per Tick = 76 ticks per line.
	var released bool
	for i := 0; i < 75; i++ {
		r, _ := chip.Tick()
		released = released || r
	}
	assert.False(t, released, "line not yet complete")

	r, _ := chip.Tick()
	assert.True(t, r, "76th tick completes the line")
	assert.Equal(t, 1, chip.Scanline)
	assert.Equal(t, 0, chip.Cycle)
}

func TestFrameWrapsAfter262Scanlines(t *testing.T) {
	fb := television.NewFramebuffer()
	chip := tia.New(fb)

	var frameComplete bool
	for line := 0; line < tia.ScanlinesPerFrame; line++ {
		for i := 0; i < 76; i++ {
			_, f := chip.Tick()
			frameComplete = frameComplete || f
		}
	}
	assert.True(t, frameComplete)
	assert.Equal(t, 0, chip.Scanline)
}

func TestRSYNCResetsCycleOnly(t *testing.T) {
	fb := television.NewFramebuffer()
	chip := tia.New(fb)
	chip.Tick()
	chip.Tick()
	require.NotEqual(t, 0, chip.Cycle)

	chip.Write(addresses.RSYNC, 0)
	assert.Equal(t, 0, chip.Cycle)
}

func TestCollisionLatchesAreMonotonicUntilCXCLR(t *testing.T) {
	fb := television.NewFramebuffer()
	chip := tia.New(fb)

	// Ball and playfield both covering playfield cell 0 (columns 0-3): PF0
	// bit4 set lights cell 0; ball reset at the start of H-blank puts it at
	// column 2 (the missile/ball fixup), which also falls in cell 0.
	chip.Write(addresses.PF0, 0x10)
	chip.Write(addresses.COLUBK, 0x00)
	chip.Write(addresses.COLUPF, 0x1e)
	chip.Write(addresses.ENABL, 0x02)
	chip.Write(addresses.RESBL, 0)

	// Advance to the end of the first visible scanline so composeScanline runs.
	for chip.Scanline < tia.FirstVisibleScanline+1 {
		chip.Tick()
	}

	before := chip.Read(addresses.CXBLPF)
	assert.NotZero(t, before&0x80, "ball-playfield collision latched")

	// Without CXCLR, continuing to render more lines must not clear it.
	for i := 0; i < 76; i++ {
		chip.Tick()
	}
	assert.Equal(t, before, chip.Read(addresses.CXBLPF))

	chip.Write(addresses.CXCLR, 0)
	assert.Zero(t, chip.Read(addresses.CXBLPF))
}

func TestSetInputRoundTripsThroughINPT(t *testing.T) {
	fb := television.NewFramebuffer()
	chip := tia.New(fb)
	chip.SetInput(4, 0x80)
	assert.Equal(t, uint8(0x80), chip.Read(addresses.INPT4))
}

func TestHMOVEAppliesSignedMotionModuloWidth(t *testing.T) {
	fb := television.NewFramebuffer()
	chip := tia.New(fb)

	chip.Write(addresses.RESBL, 0) // ball reset during blank -> pos = 2
	chip.Write(addresses.HMBL, 0xd0) // top nibble 0xd -> -3 after sign extend
	chip.Write(addresses.HMOVE, 0)

	// 2 - 3 wraps to column 159; enable the ball and observe it via
	// collision with playfield cell 19 (PF2 bit 7, columns 156-159), which
	// an unmoved ball at column 2 would not touch.
	chip.Write(addresses.PF2, 0x80)
	chip.Write(addresses.ENABL, 0x02)

	for chip.Scanline < tia.FirstVisibleScanline+1 {
		chip.Tick()
	}
	assert.NotZero(t, chip.Read(addresses.CXBLPF)&0x80)
}
