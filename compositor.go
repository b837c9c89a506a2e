package morphclock

import (
	"github.com/dotglow/morphclock/pixel"
)

// Sink receives physical pixel writes from the compositor.
type Sink interface {
	// Fill paints a w x h block of physical pixels at (x, y) in a single
	// color. Implementations clip to their own bounds.
	Fill(x, y, w, h int, c pixel.CRGB16) error
}

// Geometry maps logical framebuffer cells onto physical pixels. Pitch is
// the distance between adjacent cell origins and may differ per axis to
// fill a surface with another aspect ratio; Dot is the painted block size.
type Geometry struct {
	PitchX int
	PitchY int
	Dot    int
	InsetX int
	InsetY int
}

// Gap returns the unpainted spacing between cells along the tighter axis.
func (g Geometry) Gap() int {
	p := g.PitchX
	if g.PitchY < p {
		p = g.PitchY
	}
	return p - g.Dot
}

// FitGeometry computes a cell mapping for a logical w x h grid on a
// physW x physH surface, honoring the requested dot size and gap where they
// fit and shrinking them when they do not. The grid is centered on the
// surface.
func FitGeometry(w, h, physW, physH, dot, gap int) Geometry {
	if dot < 1 {
		dot = 1
	}
	if gap < 0 {
		gap = 0
	}

	pitchX := dot + gap
	pitchY := dot + gap

	// Shrink until the grid fits. Gap gives way before the dot does.
	for w*pitchX-gap > physW || h*pitchY-gap > physH {
		if gap > 0 {
			gap--
		} else if dot > 1 {
			dot--
		} else {
			break
		}
		pitchX = dot + gap
		pitchY = dot + gap
	}

	// Spread leftover pitch over the wider axis.
	if extra := physW/w - pitchX; extra > 0 {
		pitchX += extra
	}
	if extra := physH/h - pitchY; extra > 0 {
		pitchY += extra
	}

	return Geometry{
		PitchX: pitchX,
		PitchY: pitchY,
		Dot:    dot,
		InsetX: (physW - (w*pitchX - gap)) / 2,
		InsetY: (physH - (h*pitchY - gap)) / 2,
	}
}

// Compositor diffs a framebuffer against the previously flushed frame and
// writes only the changed cells to the sink, each as a Dot x Dot block.
type Compositor struct {
	sink   Sink
	geom   Geometry
	shadow []byte
	force  bool
}

// NewCompositor returns a compositor writing through sink with the given
// cell geometry.
func NewCompositor(sink Sink, geom Geometry) *Compositor {
	return &Compositor{
		sink:  sink,
		geom:  geom,
		force: true,
	}
}

// Geometry returns the active cell mapping.
func (c *Compositor) Geometry() Geometry {
	return c.geom
}

// SetGeometry replaces the cell mapping and invalidates the shadow, so the
// next flush repaints every cell at the new positions.
func (c *Compositor) SetGeometry(geom Geometry) {
	c.geom = geom
	c.force = true
}

// Invalidate forces the next flush to repaint every cell.
func (c *Compositor) Invalidate() {
	c.force = true
}

// Flush writes every cell of f that differs from the previous flush. The
// shadow is committed even when the sink fails; the first sink error is
// returned after the pass completes, and the following flush diffs against
// what was attempted, not retried.
func (c *Compositor) Flush(f *pixel.Frame) error {
	if len(c.shadow) != len(f.Pix) {
		c.shadow = make([]byte, len(f.Pix))
		c.force = true
	}

	var firstErr error
	w, h := f.Rect.Dx(), f.Rect.Dy()
	for y := 0; y < h; y++ {
		row := y * f.Stride
		for x := 0; x < w; x++ {
			off := row + x*2
			if !c.force &&
				f.Pix[off] == c.shadow[off] &&
				f.Pix[off+1] == c.shadow[off+1] {
				continue
			}
			err := c.sink.Fill(
				c.geom.InsetX+x*c.geom.PitchX,
				c.geom.InsetY+y*c.geom.PitchY,
				c.geom.Dot, c.geom.Dot,
				f.VAt(x, y),
			)
			if err != nil && firstErr == nil {
				firstErr = err
			}
		}
	}

	copy(c.shadow, f.Pix)
	c.force = false
	return firstErr
}
