// Package television holds the composed video output of the TIA: a
// 160x192 RGB framebuffer, row 0 at the top of the visible area.
package television

import (
	"image"
	"image/color"
	"image/png"
	"io"

	"golang.org/x/image/draw"
)

// Width and Height are the dimensions of the visible picture the TIA
// composes, in pixels.
const (
	Width  = 160
	Height = 192
)

// RGB is one 24-bit framebuffer pixel.
type RGB struct {
	R, G, B uint8
}

// Framebuffer is the composed picture for one frame.
type Framebuffer struct {
	pixels [Height][Width]RGB
}

// NewFramebuffer returns an all-black framebuffer.
func NewFramebuffer() *Framebuffer {
	return &Framebuffer{}
}

// SetPixel writes one composed pixel. row is 0..191 (Height-1), col is
// 0..159 (Width-1).
func (f *Framebuffer) SetPixel(row, col int, c RGB) {
	f.pixels[row][col] = c
}

// Pixel reads one composed pixel back.
func (f *Framebuffer) Pixel(row, col int) RGB {
	return f.pixels[row][col]
}

// Row returns the composed row as a slice, for bulk copy into a scanline.
func (f *Framebuffer) Row(row int) []RGB {
	return f.pixels[row][:]
}

// SetRow overwrites a whole composed row at once.
func (f *Framebuffer) SetRow(row int, pixels [Width]RGB) {
	f.pixels[row] = pixels
}

// Image converts the framebuffer into a standard library image.Image so it
// can be handed to any Go imaging code (encoders, resizers, test golden
// files) without the core depending on a display surface.
func (f *Framebuffer) Image() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, Width, Height))
	for row := 0; row < Height; row++ {
		for col := 0; col < Width; col++ {
			p := f.pixels[row][col]
			img.SetRGBA(col, row, color.RGBA{R: p.R, G: p.G, B: p.B, A: 0xff})
		}
	}
	return img
}

// SnapshotPNG encodes the current framebuffer as a PNG, using
// golang.org/x/image/draw to normalise through a draw.Image pipeline
// first. This exists purely as a debugging/tooling convenience (e.g. dumping
// a frame from a test); the core never opens a window or display surface.
func (f *Framebuffer) SnapshotPNG(w io.Writer) error {
	src := f.Image()
	dst := image.NewRGBA(src.Bounds())
	draw.Draw(dst, dst.Bounds(), src, image.Point{}, draw.Src)
	return png.Encode(w, dst)
}
