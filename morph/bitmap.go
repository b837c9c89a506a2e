package morph

import (
	"math"

	"github.com/dotglow/morphclock/glyph"
	"github.com/dotglow/morphclock/pixel"
)

// Morpher renders bitmap digit transitions into a frame. The point scratch
// buffers are owned by the Morpher and reused across calls, so the render
// path does not allocate.
type Morpher struct {
	from  [glyph.MaxPoints]glyph.Point
	to    [glyph.MaxPoints]glyph.Point
	match [glyph.MaxPoints]int
	used  [glyph.MaxPoints]bool
}

// Spawn draws the target glyph at (x0, y0) with every active pixel
// converging from the glyph center. Position uses quadratic ease-out while
// the alpha fades in linearly with t, so the glyph brightens steadily as
// it assembles. At t=0 nothing is drawn; at t=1 the glyph is complete and
// opaque.
func (m *Morpher) Spawn(dst *pixel.Frame, g *glyph.Bitmap, x0, y0 int, t float64, base pixel.CRGB16) {
	t = clamp01(t)
	alpha := uint8(math.Round(255 * t))
	if alpha == 0 {
		return
	}

	n := g.Points(m.to[:])
	te := EaseOutQuad(t)
	sx := float64(g.Width()-1) / 2
	sy := float64(glyph.Height-1) / 2
	c := base.Scale(alpha)

	for i := 0; i < n; i++ {
		x := int(math.Round(sx + (float64(m.to[i].X)-sx)*te))
		y := int(math.Round(sy + (float64(m.to[i].Y)-sy)*te))
		dst.SetV(x0+x, y0+y, c)
	}
}

// Particle draws a transition from one glyph to another at (x0, y0).
// Active pixels of from are matched one-to-one to the nearest unused
// pixels of to and travel in straight lines; pixels that exist only in the
// target fade in, pixels that exist only in the source fade out. Matched
// pixels stay opaque, the motion itself carries the effect.
func (m *Morpher) Particle(dst *pixel.Frame, from, to *glyph.Bitmap, x0, y0 int, t float64, base pixel.CRGB16) {
	fn := from.Points(m.from[:])
	tn := to.Points(m.to[:])
	t = clamp01(t)

	pairs := m.matchPoints(fn, tn)

	for i := 0; i < pairs; i++ {
		a := m.from[i]
		b := m.to[m.match[i]]
		x := int(math.Round(float64(a.X) + (float64(b.X)-float64(a.X))*t))
		y := int(math.Round(float64(a.Y) + (float64(b.Y)-float64(a.Y))*t))
		dst.SetV(x0+x, y0+y, base)
	}

	if alpha := uint8(math.Round(255 * t)); tn > fn && alpha > 0 {
		c := base.Scale(alpha)
		for j := 0; j < tn; j++ {
			if m.used[j] {
				continue
			}
			dst.SetV(x0+int(m.to[j].X), y0+int(m.to[j].Y), c)
		}
	}

	if alpha := uint8(math.Round(255 * (1 - t))); fn > tn && alpha > 0 {
		c := base.Scale(alpha)
		for i := tn; i < fn; i++ {
			dst.SetV(x0+int(m.from[i].X), y0+int(m.from[i].Y), c)
		}
	}
}

// matchPoints greedily assigns, in from scan order, each of the first
// min(fn, tn) source points to its nearest unused target point by squared
// distance; ties resolve to the first candidate in to scan order. Greedy
// matching is an accepted O(n·m) approximation; the glyphs are small and
// the motion only needs to look plausible, not optimal.
func (m *Morpher) matchPoints(fn, tn int) int {
	for j := 0; j < tn; j++ {
		m.used[j] = false
	}

	pairs := fn
	if tn < pairs {
		pairs = tn
	}

	for i := 0; i < pairs; i++ {
		bestJ := -1
		bestD := math.MaxInt
		for j := 0; j < tn; j++ {
			if m.used[j] {
				continue
			}
			d := dist2(m.from[i], m.to[j])
			if d < bestD {
				bestD = d
				bestJ = j
			}
		}
		if bestJ < 0 {
			bestJ = 0
		}
		m.match[i] = bestJ
		m.used[bestJ] = true
	}

	return pairs
}

func dist2(a, b glyph.Point) int {
	dx := int(a.X) - int(b.X)
	dy := int(a.Y) - int(b.Y)
	return dx*dx + dy*dy
}
