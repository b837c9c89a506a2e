// Package glyph holds the immutable digit and separator bitmaps together
// with the seven-segment activation and LED-dot geometry tables.
//
// All glyphs are rasterized once at package initialization from the segment
// geometry; the render paths never mutate them.
package glyph

import "image"

// Glyph raster dimensions. Digits are DigitWidth×Height, the colon
// separator is SeparatorWidth×Height.
const (
	DigitWidth     = 9
	SeparatorWidth = 2
	Height         = 32
)

// Raster parameters for the seven-segment strokes.
const (
	stroke = 4
	padY   = 1
)

// Bitmap is a width×Height grid of on/off pixel flags. Rows are stored as
// bit masks, MSB left, so widths up to 16 are representable.
type Bitmap struct {
	width int
	rows  [Height]uint16
}

// NewBitmap returns an empty bitmap of the given width (at most 16).
func NewBitmap(width int) Bitmap {
	if width > 16 {
		width = 16
	}
	return Bitmap{width: width}
}

// Width of the bitmap in pixels.
func (b *Bitmap) Width() int {
	return b.width
}

// Set turns the pixel at (x, y) on. Out of bounds writes are dropped.
func (b *Bitmap) Set(x, y int) {
	if !(image.Point{X: x, Y: y}).In(image.Rect(0, 0, b.width, Height)) {
		return
	}
	b.rows[y] |= 1 << uint(15-x)
}

// On reports whether the pixel at (x, y) is set.
func (b *Bitmap) On(x, y int) bool {
	if !(image.Point{X: x, Y: y}).In(image.Rect(0, 0, b.width, Height)) {
		return false
	}
	return b.rows[y]&(1<<uint(15-x)) != 0
}

var (
	digits    [10]Bitmap
	separator Bitmap
)

func init() {
	buildGlyphs()
}

func buildGlyphs() {
	for d := range digits {
		digits[d] = rasterize(d)
	}

	separator = NewBitmap(SeparatorWidth)
	for y := 10; y < 13; y++ {
		for x := 0; x < SeparatorWidth; x++ {
			separator.Set(x, y)
		}
	}
	for y := 19; y < 22; y++ {
		for x := 0; x < SeparatorWidth; x++ {
			separator.Set(x, y)
		}
	}
}

// rasterize renders the lit segments of a digit with fixed stroke
// thickness and vertical padding.
func rasterize(d int) Bitmap {
	b := NewBitmap(DigitWidth)

	const (
		w    = DigitWidth
		h    = Height
		midY = h / 2
	)

	box := func(x0, y0, x1, y1 int) {
		for y := y0; y < y1; y++ {
			for x := x0; x < x1; x++ {
				b.Set(x, y)
			}
		}
	}

	if Active(d, SegA) {
		box(0, padY, w, padY+stroke)
	}
	if Active(d, SegD) {
		box(0, h-padY-stroke, w, h-padY)
	}
	if Active(d, SegG) {
		box(0, midY-stroke/2, w, midY-stroke/2+stroke)
	}
	if Active(d, SegF) {
		box(0, padY, stroke, midY)
	}
	if Active(d, SegB) {
		box(w-stroke, padY, w, midY)
	}
	if Active(d, SegE) {
		box(0, midY, stroke, h-padY)
	}
	if Active(d, SegC) {
		box(w-stroke, midY, w, h-padY)
	}

	return b
}

// Digit returns the bitmap for a digit. Values outside 0..9 are clamped.
func Digit(d int) *Bitmap {
	if d < 0 {
		d = 0
	}
	if d > 9 {
		d = 9
	}
	return &digits[d]
}

// Separator returns the colon bitmap.
func Separator() *Bitmap {
	return &separator
}
