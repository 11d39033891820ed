package tia

import "github.com/retrosilicon/vcs2600/hardware/television"

// composeScanline fills t.line with the 160 composed pixels for the current
// visible row, per the priority/playfield/sprite/missile/ball rules and
// recording every pairwise object collision along the way.
func (t *TIA) composeScanline() {
	background := paletteColor(t.colubk)
	priority := t.ctrlpf&0x04 != 0
	score := t.ctrlpf&0x02 != 0

	for col := 0; col < television.Width; col++ {
		pf := t.playfieldBit(col)
		p0 := t.playerBit(&t.p0, col)
		p1 := t.playerBit(&t.p1, col)
		m0 := t.missileBit(&t.m0, col)
		m1 := t.missileBit(&t.m1, col)
		bl := t.ballBit(col)

		t.recordCollisions(pf, p0, p1, m0, m1, bl)

		pixel := background
		drawPlayfield := func() {
			if !pf {
				return
			}
			if score {
				if col < television.Width/2 {
					pixel = paletteColor(t.colup0)
				} else {
					pixel = paletteColor(t.colup1)
				}
			} else {
				pixel = paletteColor(t.colupf)
			}
		}
		drawObjects := func() {
			switch {
			case p0:
				pixel = paletteColor(t.colup0)
			case m0:
				pixel = paletteColor(t.colup0)
			case p1:
				pixel = paletteColor(t.colup1)
			case m1:
				pixel = paletteColor(t.colup1)
			case bl:
				pixel = paletteColor(t.colupf)
			}
		}

		if priority {
			drawObjects()
			drawPlayfield()
		} else {
			drawPlayfield()
			drawObjects()
		}

		t.line[col] = pixel
	}
}

// playfieldBit reports whether the 20-cell playfield pattern is set at
// visible column col (0..159). The left half is PF0 bits 4..7, then PF1 bits
// 7..0 (reversed from storage order, as real hardware wires it), then PF2
// bits 0..7; the right half repeats or mirrors that pattern per CTRLPF bit 0.
func (t *TIA) playfieldBit(col int) bool {
	half := col
	if col >= television.Width/2 {
		half = col - television.Width/2
		if t.ctrlpf&0x01 != 0 {
			half = television.Width/2 - 1 - half
		}
	}
	return t.pfCellBit(half / 4)
}

func (t *TIA) pfCellBit(cell int) bool {
	switch {
	case cell < 4:
		return t.pf0&(1<<(4+cell)) != 0
	case cell < 12:
		bit := 7 - (cell - 4)
		return t.pf1&(1<<uint(bit)) != 0
	default:
		bit := cell - 12
		return t.pf2&(1<<uint(bit)) != 0
	}
}

// copySpec is one copy of a player/missile sprite: an X offset from the
// object's base position and a pixel-width multiplier.
type copySpec struct {
	offset, width int
}

// copiesFor decodes a NUSIZx register's low 3 bits into the copy layout
// players and missiles share: single/double/triple copies at various
// spacings, or a single double/quadruple-width copy.
func copiesFor(nusiz uint8) []copySpec {
	switch nusiz & 0x07 {
	case 0x1:
		return []copySpec{{0, 1}, {16, 1}}
	case 0x2:
		return []copySpec{{0, 1}, {32, 1}}
	case 0x3:
		return []copySpec{{0, 1}, {16, 1}, {32, 1}}
	case 0x4:
		return []copySpec{{0, 1}, {64, 1}}
	case 0x5:
		return []copySpec{{0, 2}}
	case 0x6:
		return []copySpec{{0, 1}, {32, 1}, {64, 1}}
	case 0x7:
		return []copySpec{{0, 4}}
	default:
		return []copySpec{{0, 1}}
	}
}

func (t *TIA) playerBit(p *player, col int) bool {
	graphics := p.graphics
	if p.vdel {
		graphics = p.oldGraphics
	}
	if graphics == 0 {
		return false
	}

	for _, cs := range copiesFor(p.nusiz) {
		rel := wrapColumn(col-p.pos-cs.offset, 0)
		if rel >= 8*cs.width {
			continue
		}
		idx := rel / cs.width
		if p.refp {
			idx = 7 - idx
		}
		if graphics&(1<<uint(7-idx)) != 0 {
			return true
		}
	}
	return false
}

func (t *TIA) missileBit(m *missile, col int) bool {
	if !m.enabled {
		return false
	}
	width := 1 << ((m.nusiz >> 4) & 0x03)
	// Missiles follow the NUSIZ copy offsets; the double/quad player widths
	// do not apply to them.
	for _, cs := range copiesFor(m.nusiz) {
		rel := wrapColumn(col-m.pos-cs.offset, 0)
		if rel < width {
			return true
		}
	}
	return false
}

func (t *TIA) ballBit(col int) bool {
	enabled := t.bl.enabled
	if t.bl.vdel {
		enabled = t.bl.oldEnabled
	}
	if !enabled {
		return false
	}
	width := 1 << ((t.ctrlpf >> 4) & 0x03)
	rel := wrapColumn(col-t.bl.pos, 0)
	return rel < width
}

// recordCollisions sets the high (D7) and low (D6) bits of each of the
// eight collision-latch registers for every pair of objects overlapping at
// this pixel. Latches are only ever OR'd in here; CXCLR is the sole way to
// clear them, keeping them monotonic between strobes.
func (t *TIA) recordCollisions(pf, p0, p1, m0, m1, bl bool) {
	set := func(reg *uint8, d7, d6 bool) {
		if d7 {
			*reg |= 0x80
		}
		if d6 {
			*reg |= 0x40
		}
	}
	set(&t.cxm0p, m0 && p1, m0 && p0)
	set(&t.cxm1p, m1 && p0, m1 && p1)
	set(&t.cxp0fb, p0 && pf, p0 && bl)
	set(&t.cxp1fb, p1 && pf, p1 && bl)
	set(&t.cxm0fb, m0 && pf, m0 && bl)
	set(&t.cxm1fb, m1 && pf, m1 && bl)
	set(&t.cxblpf, bl && pf, false)
	set(&t.cxppmm, p0 && p1, m0 && m1)
}
