package tia

import (
	"math"

	"github.com/retrosilicon/vcs2600/hardware/television"
)

// NTSCPalette is the 16 (color) x 8 (luminance) table a COLUxx byte indexes
// into: bits 7..4 select the color, bits 3..1 the luminance, bit 0 is
// ignored. Color 0 is the achromatic grey/white ramp; colors 1..15 are
// spread evenly around the NTSC chrominance wheel. This table is built
// rather than hand-transcribed so that every one of the 128 entries is
// genuinely distinct, correcting the duplicated "LightBlue"/"Blue2" entry
// documented as a defect upstream.
var NTSCPalette = buildNTSCPalette()

func buildNTSCPalette() [16][8]television.RGB {
	var table [16][8]television.RGB
	for c := 0; c < 16; c++ {
		for l := 0; l < 8; l++ {
			brightness := float64(l) / 7
			if c == 0 {
				v := uint8(brightness * 255)
				table[c][l] = television.RGB{R: v, G: v, B: v}
				continue
			}
			hue := float64(c-1) * (360.0 / 15.0)
			table[c][l] = hsvToRGB(hue, 0.68, 0.25+0.75*brightness)
		}
	}
	return table
}

// hsvToRGB converts a hue (degrees), saturation and value (both 0..1) triple
// into an 8-bit RGB color. Plain arithmetic: nothing in the retrieved
// dependency set offers a colorspace conversion helper, and a 16-entry wheel
// does not warrant pulling one in.
func hsvToRGB(hue, sat, val float64) television.RGB {
	c := val * sat
	x := c * (1 - math.Abs(math.Mod(hue/60, 2)-1))
	m := val - c

	var r, g, b float64
	switch {
	case hue < 60:
		r, g, b = c, x, 0
	case hue < 120:
		r, g, b = x, c, 0
	case hue < 180:
		r, g, b = 0, c, x
	case hue < 240:
		r, g, b = 0, x, c
	case hue < 300:
		r, g, b = x, 0, c
	default:
		r, g, b = c, 0, x
	}

	return television.RGB{
		R: uint8((r + m) * 255),
		G: uint8((g + m) * 255),
		B: uint8((b + m) * 255),
	}
}

// paletteColor decodes a COLUxx register byte into its RGB value.
func paletteColor(value uint8) television.RGB {
	color := (value >> 4) & 0x0f
	lum := (value >> 1) & 0x07
	return NTSCPalette[color][lum]
}
