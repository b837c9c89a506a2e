package blockfall

import (
	"testing"

	"github.com/dotglow/morphclock/glyph"
	"github.com/dotglow/morphclock/pixel"
)

func lit(f *pixel.Frame) int {
	n := 0
	for y := 0; y < glyph.Height; y++ {
		for x := 0; x < 64; x++ {
			if f.VAt(x, y).V != 0 {
				n++
			}
		}
	}
	return n
}

func TestFallCompletes(t *testing.T) {
	a := New()
	f := pixel.NewFrame(64, 32)

	if done := a.Update(f, "12:34:00", true, false); done {
		t.Fatal("animation reported done on the first frame")
	}
	early := lit(f)

	var done bool
	for i := 0; i < 64 && !done; i++ {
		done = a.Update(f, "12:34:00", true, false)
	}
	if !done {
		t.Fatal("animation never completed")
	}
	if got := lit(f); got <= early {
		t.Errorf("settled frame has %d pixels, want more than the first frame's %d", got, early)
	}

	// Settled digits sit at their final rows in their per-value colors.
	var pts [glyph.MaxPoints]glyph.Point
	g := glyph.Digit(1)
	n := g.Points(pts[:])
	for i := 0; i < n; i++ {
		x, y := slotX[0]+int(pts[i].X), int(pts[i].Y)
		if got := f.VAt(x, y); got != palette[1] {
			t.Fatalf("pixel (%d,%d) = %04x, want %04x", x, y, got.V, palette[1].V)
		}
	}
}

func TestTimeChangeRestartsFall(t *testing.T) {
	a := New()
	f := pixel.NewFrame(64, 32)

	for done := false; !done; {
		done = a.Update(f, "12:34:00", true, false)
	}
	if done := a.Update(f, "12:35:00", true, false); done {
		t.Fatal("new time did not restart the animation")
	}
}

func TestResetRewinds(t *testing.T) {
	a := New()
	f := pixel.NewFrame(64, 32)

	for done := false; !done; {
		done = a.Update(f, "12:34:00", true, false)
	}
	a.Reset()
	if done := a.Update(f, "12:34:00", true, false); done {
		t.Fatal("reset did not rewind the animation")
	}
}

func TestColon(t *testing.T) {
	a := New()
	f := pixel.NewFrame(64, 32)

	a.Update(f, "12:34:00", true, true)
	sep := glyph.Separator()
	found := false
	for y := 0; y < glyph.Height && !found; y++ {
		for x := 0; x < sep.Width(); x++ {
			if sep.On(x, y) && f.VAt(colonX+x, y).V != 0 {
				found = true
				break
			}
		}
	}
	if !found {
		t.Error("colon not drawn when requested")
	}

	f.Clear()
	a.Update(f, "12:34:00", true, false)
	for y := 0; y < glyph.Height; y++ {
		for x := 0; x < sep.Width(); x++ {
			if sep.On(x, y) && f.VAt(colonX+x, y).V != 0 {
				t.Fatal("colon drawn although hidden")
			}
		}
	}
}
