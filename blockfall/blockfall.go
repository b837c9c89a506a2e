// Package blockfall animates clock digits assembling from falling pixels.
// It renders an HH:MM face where every pixel of a digit drops in from the
// top of the panel and lands on its final row, colored per digit value.
package blockfall

import (
	"github.com/dotglow/morphclock/glyph"
	"github.com/dotglow/morphclock/pixel"
)

// Per-digit colors in RGB565.
var palette = [10]pixel.CRGB16{
	{V: 0xF800}, // 0 red
	{V: 0x07E0}, // 1 green
	{V: 0x001F}, // 2 blue
	{V: 0x07FF}, // 3 cyan
	{V: 0xF81F}, // 4 magenta
	{V: 0xFFE0}, // 5 yellow
	{V: 0xFD20}, // 6 orange
	{V: 0xA000}, // 7 purple
	{V: 0xFFFF}, // 8 white
	{V: 0x07E0}, // 9 green
}

// Digit origins and the colon origin of the 42 pixel wide HH:MM face,
// centered on a 64 pixel panel.
var (
	slotX  = [4]int{11, 21, 34, 44}
	textIx = [4]int{0, 1, 3, 4}
)

const colonX = 31

// Animator drops the digits of an HH:MM face in from the top of the panel.
// A changed time text restarts the fall for all digits.
type Animator struct {
	text string
	step int
	pts  [glyph.MaxPoints]glyph.Point
}

// New returns an animator with no time set; it draws an empty panel until
// the first Update.
func New() *Animator {
	return &Animator{}
}

// Reset rewinds the animation so the digits rebuild from an empty panel on
// the next Update.
func (a *Animator) Reset() {
	a.text = ""
	a.step = 0
}

// Update advances the fall one tick and redraws the face into dst. It
// reports whether every pixel has landed. Only the HH:MM part of the text
// is displayed; seconds are ignored.
func (a *Animator) Update(dst *pixel.Frame, text string, use24h, showColon bool) bool {
	if len(text) >= 5 && text[:5] != a.text {
		a.text = text[:5]
		a.step = 0
	}

	dst.Clear()
	if a.text == "" {
		return true
	}

	done := a.step >= glyph.Height-1

	for k, x0 := range slotX {
		c := a.text[textIx[k]]
		if c < '0' || c > '9' {
			continue
		}
		d := int(c - '0')
		a.drawFalling(dst, glyph.Digit(d), x0, palette[d])
	}

	if showColon {
		drawColon(dst, pixel.New(255, 255, 255))
	}

	if !done {
		a.step += 2
		if a.step > glyph.Height-1 {
			a.step = glyph.Height - 1
		}
	}
	return done
}

// drawFalling paints each glyph pixel on its way down. A pixel destined
// for row fy starts falling once step passes its delay and lands exactly
// when step reaches the panel height, so the whole face settles at once.
func (a *Animator) drawFalling(dst *pixel.Frame, g *glyph.Bitmap, x0 int, c pixel.CRGB16) {
	n := g.Points(a.pts[:])
	for i := 0; i < n; i++ {
		fy := int(a.pts[i].Y)
		cur := a.step - (glyph.Height - 1 - fy)
		if cur < 0 {
			continue
		}
		if cur > fy {
			cur = fy
		}
		dst.SetV(x0+int(a.pts[i].X), cur, c)
	}
}

func drawColon(dst *pixel.Frame, c pixel.CRGB16) {
	sep := glyph.Separator()
	for y := 0; y < glyph.Height; y++ {
		for x := 0; x < sep.Width(); x++ {
			if sep.On(x, y) {
				dst.SetV(colonX+x, y, c)
			}
		}
	}
}
