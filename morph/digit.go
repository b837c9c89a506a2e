package morph

import (
	"math"
	"time"

	"github.com/dotglow/morphclock/glyph"
)

// Duration is the fixed segment cross-fade time. The configurable morph
// speed multiplier applies to the bitmap morphs only, not to this path.
const Duration = 100 * time.Millisecond

// Digit fades the seven segments of one display slot between a current and
// a target digit. It is either idle (showing current) or morphing; calling
// SetTarget while morphing discards the previous target and restarts.
type Digit struct {
	current  int
	target   int
	progress float64
	morphing bool
	elapsed  time.Duration
	duration time.Duration
}

// NewDigit returns an idle digit showing 0.
func NewDigit() *Digit {
	return &Digit{duration: Duration}
}

// SetTarget starts a morph toward n, clamped to 0..9. Setting the digit
// that is already current is a no-op, even mid-morph; any other target
// replaces the one in flight and restarts progress.
func (d *Digit) SetTarget(n int) {
	n = clampDigit(n)
	if n == d.current {
		return
	}
	d.target = n
	d.progress = 0
	d.elapsed = 0
	d.morphing = true
}

// SetCurrent snaps the slot to n without animation, canceling any morph in
// flight. Used for initialization and for slots that must never animate.
func (d *Digit) SetCurrent(n int) {
	n = clampDigit(n)
	d.current = n
	d.target = n
	d.progress = 0
	d.elapsed = 0
	d.morphing = false
}

// Update advances the morph by the elapsed wall-clock delta. Idle digits
// ignore it.
func (d *Digit) Update(delta time.Duration) {
	if !d.morphing {
		return
	}

	d.elapsed += delta

	if d.elapsed >= d.duration {
		d.current = d.target
		d.progress = 1
		d.morphing = false
		d.elapsed = 0
		return
	}

	d.progress = EaseInOutCubic(float64(d.elapsed) / float64(d.duration))
}

// SegmentBrightness returns the render brightness of a segment: full on or
// off when idle, fading in or out while morphing. Segments lit in both the
// current and target digit stay at full brightness for the whole morph.
func (d *Digit) SegmentBrightness(s glyph.Segment) uint8 {
	curOn := glyph.Active(d.current, s)
	tgtOn := glyph.Active(d.target, s)

	if !d.morphing {
		if curOn {
			return 255
		}
		return 0
	}

	switch {
	case curOn && tgtOn:
		return 255
	case curOn && !tgtOn:
		return uint8(math.Round(255 * (1 - d.progress)))
	case !curOn && tgtOn:
		return uint8(math.Round(255 * d.progress))
	default:
		return 0
	}
}

// Current returns the displayed digit.
func (d *Digit) Current() int {
	return d.current
}

// Target returns the digit being morphed toward.
func (d *Digit) Target() int {
	return d.target
}

// Progress returns the eased morph progress in [0, 1].
func (d *Digit) Progress() float64 {
	return d.progress
}

// Morphing reports whether a morph is in flight.
func (d *Digit) Morphing() bool {
	return d.morphing
}

func clampDigit(n int) int {
	if n < 0 {
		return 0
	}
	if n > 9 {
		return 9
	}
	return n
}
