// Package tia implements the Television Interface Adapter: the electron
// beam state machine, per-scanline pixel composition, collision detection
// and the strobe registers that drive them. It knows nothing about the CPU
// beyond the fact that WSYNC halt release is reported back to whoever calls
// Tick; the bus is responsible for actually latching the CPU's halt flag.
package tia

import (
	"github.com/retrosilicon/vcs2600/hardware/memory/addresses"
	"github.com/retrosilicon/vcs2600/hardware/television"
)

// Beam timing constants, in color cycles and scanlines.
const (
	ColorCyclesPerCPUCycle = 3
	ColorCyclesPerLine     = 228
	ScanlinesPerFrame      = 262
	HBlankCycles           = 68

	FirstVisibleScanline = 40
	LastVisibleScanline  = 231

	playerResetFixup  = 3
	missileResetFixup = 2
)

type player struct {
	pos         int
	graphics    uint8
	oldGraphics uint8
	nusiz       uint8
	refp        bool
	vdel        bool
	hm          int8
}

type missile struct {
	pos          int
	enabled      bool
	nusiz        uint8
	lockToPlayer bool
	hm           int8
}

type ball struct {
	pos        int
	enabled    bool
	oldEnabled bool
	vdel       bool
	hm         int8
}

// TIA is the beam/composition engine. Its exported fields (Scanline, Cycle)
// are read-only state for tests and debuggers; all mutation goes through
// Write/Tick.
type TIA struct {
	Scanline int
	Cycle    int

	vsync        bool
	vsyncWasHigh bool
	vblank       bool

	colup0, colup1, colupf, colubk uint8
	ctrlpf                         uint8
	pf0, pf1, pf2                  uint8

	p0, p1 player
	m0, m1 missile
	bl     ball

	cxm0p, cxm1p, cxp0fb, cxp1fb uint8
	cxm0fb, cxm1fb, cxblpf, cxppmm uint8

	inpt             [6]uint8
	audc, audf, audv [2]uint8

	fb   *television.Framebuffer
	line [television.Width]television.RGB
}

// New returns a TIA that composes into fb.
func New(fb *television.Framebuffer) *TIA {
	return &TIA{fb: fb}
}

// Write handles a write to one of the TIA's write-window registers (offsets
// 0x00-0x2c, already normalised). WSYNC is handled by the bus directly since
// it latches CPU state, not TIA state; every other address lands here.
func (t *TIA) Write(offset uint16, value uint8) {
	switch offset {
	case addresses.VSYNC:
		t.vsync = value&0x02 != 0
	case addresses.VBLANK:
		t.vblank = value&0x02 != 0
	case addresses.RSYNC:
		t.Cycle = 0
	case addresses.NUSIZ0:
		t.p0.nusiz, t.m0.nusiz = value, value
	case addresses.NUSIZ1:
		t.p1.nusiz, t.m1.nusiz = value, value
	case addresses.COLUP0:
		t.colup0 = value
	case addresses.COLUP1:
		t.colup1 = value
	case addresses.COLUPF:
		t.colupf = value
	case addresses.COLUBK:
		t.colubk = value
	case addresses.CTRLPF:
		t.ctrlpf = value
	case addresses.REFP0:
		t.p0.refp = value&0x08 != 0
	case addresses.REFP1:
		t.p1.refp = value&0x08 != 0
	case addresses.PF0:
		t.pf0 = value
	case addresses.PF1:
		t.pf1 = value
	case addresses.PF2:
		t.pf2 = value
	case addresses.RESP0:
		t.p0.pos = t.resetPosition(playerResetFixup)
	case addresses.RESP1:
		t.p1.pos = t.resetPosition(playerResetFixup)
	case addresses.RESM0:
		t.m0.pos = t.resetPosition(missileResetFixup)
	case addresses.RESM1:
		t.m1.pos = t.resetPosition(missileResetFixup)
	case addresses.RESBL:
		t.bl.pos = t.resetPosition(missileResetFixup)
	case addresses.AUDC0:
		t.audc[0] = value
	case addresses.AUDC1:
		t.audc[1] = value
	case addresses.AUDF0:
		t.audf[0] = value
	case addresses.AUDF1:
		t.audf[1] = value
	case addresses.AUDV0:
		t.audv[0] = value
	case addresses.AUDV1:
		t.audv[1] = value
	case addresses.GRP0:
		t.p0.oldGraphics, t.p0.graphics = t.p0.graphics, value
	case addresses.GRP1:
		t.p1.oldGraphics, t.p1.graphics = t.p1.graphics, value
	case addresses.ENAM0:
		t.m0.enabled = value&0x02 != 0
	case addresses.ENAM1:
		t.m1.enabled = value&0x02 != 0
	case addresses.ENABL:
		t.bl.oldEnabled, t.bl.enabled = t.bl.enabled, value&0x02 != 0
	case addresses.HMP0:
		t.p0.hm = hmNibble(value)
	case addresses.HMP1:
		t.p1.hm = hmNibble(value)
	case addresses.HMM0:
		t.m0.hm = hmNibble(value)
	case addresses.HMM1:
		t.m1.hm = hmNibble(value)
	case addresses.HMBL:
		t.bl.hm = hmNibble(value)
	case addresses.VDELP0:
		t.p0.vdel = value&0x01 != 0
	case addresses.VDELP1:
		t.p1.vdel = value&0x01 != 0
	case addresses.VDELBL:
		t.bl.vdel = value&0x01 != 0
	case addresses.RESMP0:
		t.m0.lockToPlayer = value&0x02 != 0
	case addresses.RESMP1:
		t.m1.lockToPlayer = value&0x02 != 0
	case addresses.HMOVE:
		t.applyMotion()
	case addresses.HMCLR:
		t.p0.hm, t.p1.hm, t.m0.hm, t.m1.hm, t.bl.hm = 0, 0, 0, 0, 0
	case addresses.CXCLR:
		t.clearCollisions()
	}
}

// Read handles a read from one of the TIA's read-window registers (offsets
// 0x30-0x3d).
func (t *TIA) Read(offset uint16) uint8 {
	switch offset {
	case addresses.CXM0P:
		return t.cxm0p
	case addresses.CXM1P:
		return t.cxm1p
	case addresses.CXP0FB:
		return t.cxp0fb
	case addresses.CXP1FB:
		return t.cxp1fb
	case addresses.CXM0FB:
		return t.cxm0fb
	case addresses.CXM1FB:
		return t.cxm1fb
	case addresses.CXBLPF:
		return t.cxblpf
	case addresses.CXPPMM:
		return t.cxppmm
	case addresses.INPT0, addresses.INPT1, addresses.INPT2,
		addresses.INPT3, addresses.INPT4, addresses.INPT5:
		return t.inpt[offset-addresses.INPT0]
	}
	return 0
}

// SetInput lets a controller drive one of the six INPTx mailbox registers
// (paddles and the two fire buttons); index is 0..5.
func (t *TIA) SetInput(index int, value uint8) {
	t.inpt[index] = value
}

func hmNibble(value uint8) int8 {
	raw := value >> 4
	if raw&0x08 != 0 {
		return int8(raw) - 16
	}
	return int8(raw)
}

// beamColumn reports the current visible-pixel column (0..159) and whether
// the beam is still inside horizontal blank.
func (t *TIA) beamColumn() (col int, inBlank bool) {
	if t.Cycle < HBlankCycles {
		return 0, true
	}
	return t.Cycle - HBlankCycles, false
}

// resetPosition implements the RESPx/RESMx/RESBL strobe: the object's X
// becomes the current beam column, or the edge-of-blank fixup value if the
// beam is still inside H-blank.
func (t *TIA) resetPosition(blankFixup int) int {
	col, inBlank := t.beamColumn()
	if inBlank {
		return blankFixup
	}
	return col
}

func wrapColumn(pos int, hm int8) int {
	p := (pos + int(hm)) % television.Width
	if p < 0 {
		p += television.Width
	}
	return p
}

// applyMotion implements HMOVE: every object moves by its signed HMxx
// nibble, wrapping modulo the visible width.
func (t *TIA) applyMotion() {
	t.p0.pos = wrapColumn(t.p0.pos, t.p0.hm)
	t.p1.pos = wrapColumn(t.p1.pos, t.p1.hm)
	t.m0.pos = wrapColumn(t.m0.pos, t.m0.hm)
	t.m1.pos = wrapColumn(t.m1.pos, t.m1.hm)
	t.bl.pos = wrapColumn(t.bl.pos, t.bl.hm)
}

func (t *TIA) clearCollisions() {
	t.cxm0p, t.cxm1p, t.cxp0fb, t.cxp1fb = 0, 0, 0, 0
	t.cxm0fb, t.cxm1fb, t.cxblpf, t.cxppmm = 0, 0, 0, 0
}

// Tick advances the beam by one CPU cycle, which is three color cycles.
// releaseHalt is true if WSYNC was satisfied (a line completed) during any
// of those three color cycles; frameComplete is true if the beam wrapped
// from scanline 261 back to 0.
func (t *TIA) Tick() (releaseHalt, frameComplete bool) {
	for i := 0; i < ColorCyclesPerCPUCycle; i++ {
		r, f := t.colorCycle()
		releaseHalt = releaseHalt || r
		frameComplete = frameComplete || f
	}
	return releaseHalt, frameComplete
}

func (t *TIA) colorCycle() (releaseHalt, frameComplete bool) {
	t.Cycle++
	if t.Cycle >= ColorCyclesPerLine {
		releaseHalt = true
		t.Scanline++
		if t.Scanline >= ScanlinesPerFrame {
			t.Scanline = 0
			frameComplete = true
		}
		if t.Scanline >= FirstVisibleScanline && t.Scanline <= LastVisibleScanline {
			t.composeScanline()
			t.fb.SetRow(t.Scanline-FirstVisibleScanline, t.line)
		}
		t.Cycle = 0
	}

	if t.vsyncWasHigh && !t.vsync {
		t.Scanline = 2
	}
	t.vsyncWasHigh = t.vsync

	return releaseHalt, frameComplete
}
