package morphclock

import (
	"image"
	"image/color"

	"periph.io/x/conn/v3/display"

	"github.com/dotglow/morphclock/pixel"
)

// DrawerSink adapts a periph.io display.Drawer to the compositor. Each
// block write becomes one Draw call with a uniform source, which maps to a
// partial update on drivers that support windowed writes.
type DrawerSink struct {
	d   display.Drawer
	uni image.Uniform
}

var _ Sink = (*DrawerSink)(nil)

// NewDrawerSink returns a sink writing to d.
func NewDrawerSink(d display.Drawer) *DrawerSink {
	return &DrawerSink{d: d}
}

// Fill implements Sink.
func (s *DrawerSink) Fill(x, y, w, h int, c pixel.CRGB16) error {
	r := image.Rect(x, y, x+w, y+h).Intersect(s.d.Bounds())
	if r.Empty() {
		return nil
	}
	cr, cg, cb := c.RGB()
	s.uni.C = color.RGBA{R: cr, G: cg, B: cb, A: 0xff}
	return s.d.Draw(r, &s.uni, image.Point{})
}

// Halt turns the underlying display off.
func (s *DrawerSink) Halt() error {
	return s.d.Halt()
}

// Bounds returns the physical surface size, for geometry fitting.
func (s *DrawerSink) Bounds() image.Rectangle {
	return s.d.Bounds()
}
