package morphclock

import (
	"time"

	"github.com/dotglow/morphclock/glyph"
	"github.com/dotglow/morphclock/pixel"
)

// Slot origins of the dot-rendered HH:MM:SS face. Each slot is an 8x20
// segment cell; the face sits 6 rows below the panel top to leave room for
// status annotations on larger surfaces.
var segSlotX = [6]int{3, 12, 25, 34, 47, 56}

const segTop = 6

func (e *Engine) advanceSegments(delta time.Duration) {
	for i := range e.segs {
		e.segs[i].Update(delta)
	}
}

// retargetSegments starts a cross-fade on the hour and minute slots. The
// seconds slots change every tick of the clock and snap instead, so the
// face is never a wall of six simultaneous animations.
func (e *Engine) retargetSegments(digits [6]int, snap bool) {
	for i := range e.segs {
		if snap || i >= 4 {
			e.segs[i].SetCurrent(digits[i])
		} else {
			e.segs[i].SetTarget(digits[i])
		}
	}
}

func (e *Engine) renderSegments(now time.Time) {
	e.frame.Clear()
	base := pixel.NewRGB(e.cfg.BaseColor)

	for i, x0 := range segSlotX {
		d := e.segs[i]
		for s := glyph.Segment(0); s < glyph.NumSegments; s++ {
			if b := d.SegmentBrightness(s); b > 0 {
				drawSegment(e.frame, s, x0, segTop, b, base)
			}
		}
	}

	if e.colonVisible(now) {
		for _, x := range [4]int{21, 22, 43, 44} {
			e.frame.SetV(x, segTop+5, base)
			e.frame.SetV(x, segTop+6, base)
			e.frame.SetV(x, segTop+12, base)
			e.frame.SetV(x, segTop+13, base)
		}
	}
}

// drawSegment samples the segment line as evenly spaced LED dots. A glow
// pass paints the orthogonal neighbors of every dot at a third of the
// brightness, then the cores go on top so overlapping glow never dims a
// lit LED of the same segment.
func drawSegment(dst *pixel.Frame, s glyph.Segment, x0, y0 int, brightness uint8, base pixel.CRGB16) {
	ln := s.Line()
	core := base.Scale(brightness)
	glow := base.Scale(brightness / 3)

	for pass := 0; pass < 2; pass++ {
		for i := 0; i < ln.Leds; i++ {
			x := x0 + ln.X1 + (ln.X2-ln.X1)*i/(ln.Leds-1)
			y := y0 + ln.Y1 + (ln.Y2-ln.Y1)*i/(ln.Leds-1)
			if pass == 0 {
				dst.SetV(x-1, y, glow)
				dst.SetV(x+1, y, glow)
				dst.SetV(x, y-1, glow)
				dst.SetV(x, y+1, glow)
			} else {
				dst.SetV(x, y, core)
			}
		}
	}
}
