package morphclock

import (
	"time"

	"github.com/dotglow/morphclock/glyph"
	"github.com/dotglow/morphclock/pixel"
)

// Slot origins of the HH:MM:SS face on the 64 pixel wide panel.
var (
	classicX      = [6]int{0, 10, 22, 32, 44, 54}
	classicColonX = [2]int{19, 41}
)

// classicDuration is the bitmap morph time at MorphSpeed 1. The speed
// multiplier divides it.
const classicDuration = 660 * time.Millisecond

// slotAnim tracks one digit slot of the classic face. Between time changes
// the slot shows from; after a retarget it animates toward to.
type slotAnim struct {
	from      int
	to        int
	t         float64
	animating bool
}

func (e *Engine) morphDuration() time.Duration {
	return classicDuration / time.Duration(e.cfg.MorphSpeed)
}

func (e *Engine) advanceClassic(delta time.Duration) {
	d := e.morphDuration()
	for i := range e.classic {
		s := &e.classic[i]
		if !s.animating {
			continue
		}
		s.t += float64(delta) / float64(d)
		if s.t >= 1 {
			s.from = s.to
			s.t = 0
			s.animating = false
		}
	}
}

func (e *Engine) retargetClassic(digits [6]int, snap bool) {
	for i := range e.classic {
		s := &e.classic[i]
		if snap {
			s.from = digits[i]
			s.to = digits[i]
			s.t = 0
			s.animating = false
			continue
		}
		if digits[i] == s.to {
			continue
		}
		s.from = s.to
		s.to = digits[i]
		s.t = 0
		s.animating = true
	}
}

func (e *Engine) renderClassic(now time.Time) {
	e.frame.Clear()
	base := pixel.NewRGB(e.cfg.BaseColor)

	for i, x := range classicX {
		s := &e.classic[i]
		if !s.animating {
			drawBitmap(e.frame, glyph.Digit(s.from), x, 0, base)
			continue
		}
		switch e.cfg.Style {
		case MorphParticle:
			e.morpher.Particle(e.frame, glyph.Digit(s.from), glyph.Digit(s.to), x, 0, s.t, base)
		default:
			e.morpher.Spawn(e.frame, glyph.Digit(s.to), x, 0, s.t, base)
		}
	}

	if e.colonVisible(now) {
		sep := glyph.Separator()
		for _, x := range classicColonX {
			drawBitmap(e.frame, sep, x, 0, base)
		}
	}
}

func drawBitmap(dst *pixel.Frame, g *glyph.Bitmap, x0, y0 int, c pixel.CRGB16) {
	for y := 0; y < glyph.Height; y++ {
		for x := 0; x < g.Width(); x++ {
			if g.On(x, y) {
				dst.SetV(x0+x, y0+y, c)
			}
		}
	}
}
