package pixel

import (
	"encoding/binary"
	"image"
	"image/color"
)

// Frame is a fixed-size grid of packed CRGB16 colors representing the
// logical panel. Pixels are stored two bytes per cell.
//
// Frame implements draw.Image so the standard image packages can composite
// into it, but the render paths use the packed SetV/VAt accessors.
type Frame struct {
	// Rect is the frame bounding box.
	Rect image.Rectangle

	// Pix are the packed pixels.
	Pix []byte

	// Stride is the Pix stride (in bytes) between vertically adjacent pixels.
	Stride int

	// Order is the pixel byte order.
	Order binary.ByteOrder
}

// NewFrame returns a cleared w×h frame.
func NewFrame(w, h int) *Frame {
	return &Frame{
		Rect:   image.Rect(0, 0, w, h),
		Pix:    make([]byte, w*2*h),
		Stride: w * 2,
		Order:  binary.BigEndian,
	}
}

func (p *Frame) Bounds() image.Rectangle {
	return p.Rect
}

func (p *Frame) ColorModel() color.Model {
	return CRGB16Model
}

// Clear resets every pixel to black.
func (p *Frame) Clear() {
	for i := range p.Pix {
		p.Pix[i] = 0x00
	}
}

// Fill sets every pixel to the given color.
func (p *Frame) Fill(c CRGB16) {
	var bytes [2]byte
	p.Order.PutUint16(bytes[:], c.V)
	for i, l := 0, len(p.Pix); i < l; i += 2 {
		copy(p.Pix[i:], bytes[:])
	}
}

// SetV sets the pixel at (x, y). Out of bounds writes are dropped; glyph
// edges and interpolation overshoot are expected to produce them.
func (p *Frame) SetV(x, y int, c CRGB16) {
	if !(image.Point{X: x, Y: y}).In(p.Rect) {
		return
	}
	p.Order.PutUint16(p.Pix[x*2+y*p.Stride:], c.V)
}

// VAt returns the pixel at (x, y), or black when out of bounds.
func (p *Frame) VAt(x, y int) CRGB16 {
	if !(image.Point{X: x, Y: y}).In(p.Rect) {
		return CRGB16{}
	}
	return CRGB16{p.Order.Uint16(p.Pix[x*2+y*p.Stride:])}
}

func (p *Frame) At(x, y int) color.Color {
	if !(image.Point{X: x, Y: y}).In(p.Rect) {
		return color.Transparent
	}
	return CRGB16{p.Order.Uint16(p.Pix[x*2+y*p.Stride:])}
}

func (p *Frame) Set(x, y int, c color.Color) {
	if !(image.Point{X: x, Y: y}).In(p.Rect) {
		return
	}
	v := crgb16Model(c).(CRGB16).V
	p.Order.PutUint16(p.Pix[x*2+y*p.Stride:], v)
}

// Dim scales every pixel's channels by level/255. Used for whole-frame
// fades during mode transitions.
func (p *Frame) Dim(level uint8) {
	if level == 0xff {
		return
	}
	for i, l := 0, len(p.Pix); i < l; i += 2 {
		v := p.Order.Uint16(p.Pix[i:])
		if v == 0 {
			continue
		}
		p.Order.PutUint16(p.Pix[i:], CRGB16{v}.Scale(level).V)
	}
}

// Snapshot appends a copy of the raw pixel buffer to dst and returns it.
// The copy is safe to hand to other goroutines.
func (p *Frame) Snapshot(dst []byte) []byte {
	return append(dst[:0], p.Pix...)
}

// Interface checks.
var (
	_ image.Image = (*Frame)(nil)
	_ color.Color = CRGB16{}
)
