// Package cartridge loads a flat ROM image into the 4 KiB cartridge
// window. Bank-switching schemes beyond the default (a single fixed 4 KiB,
// or 2 KiB mirrored twice to fill it) are out of scope for this core.
package cartridge

import "github.com/retrosilicon/vcs2600/hardware/vcserr"

// Size is the number of bytes in the cartridge ROM window.
const Size = 4096

// Cartridge holds the raw ROM bytes mapped into 0x1000-0x1fff.
type Cartridge struct {
	rom [Size]uint8
}

// Load builds a Cartridge from a flat binary image. Images of exactly 4096
// bytes are mapped directly; images of exactly 2048 bytes are mirrored
// twice to fill the window, matching how the VCS's address decoding
// repeats a half-size bank on real hardware. Any other length is rejected.
func Load(data []byte) (*Cartridge, error) {
	c := &Cartridge{}

	switch len(data) {
	case Size:
		copy(c.rom[:], data)
	case Size / 2:
		copy(c.rom[:Size/2], data)
		copy(c.rom[Size/2:], data)
	default:
		return nil, vcserr.Errorf(vcserr.CartridgeSize, len(data))
	}

	return c, nil
}

// Read returns the byte at offset within the ROM window. Only the low 12
// bits of offset are used, so bus addresses 0x1000-0x1fff map to 0..0xfff.
func (c *Cartridge) Read(offset uint16) uint8 {
	return c.rom[offset&0x0fff]
}

// Write is a no-op: the default mapper has no writable registers, and ROM
// itself is not writable. Present so Cartridge can sit behind the same
// write path as every other bus-mapped device.
func (c *Cartridge) Write(offset uint16, value uint8) {}
