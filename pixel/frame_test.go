package pixel

import "testing"

func TestFrameBounds(t *testing.T) {
	f := NewFrame(64, 32)

	red := New(0xff, 0, 0)
	for _, p := range [][2]int{{-1, 0}, {0, -1}, {64, 0}, {0, 32}, {1000, 1000}} {
		f.SetV(p[0], p[1], red) // must be a silent no-op
	}
	for _, b := range f.Pix {
		if b != 0 {
			t.Fatal("out of bounds write modified the frame")
		}
	}

	if c := f.VAt(-1, -1); c.V != 0 {
		t.Errorf("expected out of bounds read to be black, got %#04x", c.V)
	}

	f.SetV(63, 31, red)
	if c := f.VAt(63, 31); c != red {
		t.Errorf("expected %#04x at (63,31), got %#04x", red.V, c.V)
	}
}

func TestFrameClear(t *testing.T) {
	f := NewFrame(8, 8)
	f.Fill(New(0, 0xff, 0))
	f.Clear()
	for _, b := range f.Pix {
		if b != 0 {
			t.Fatal("Clear left non-zero pixels")
		}
	}
}

func TestFrameDim(t *testing.T) {
	f := NewFrame(4, 1)
	white := New(0xff, 0xff, 0xff)
	f.SetV(0, 0, white)

	f.Dim(255)
	if f.VAt(0, 0) != white {
		t.Error("Dim(255) must not change pixels")
	}

	f.Dim(128)
	r, _, _ := f.VAt(0, 0).RGB()
	if r < 120 || r > 136 {
		t.Errorf("expected half brightness after Dim(128), got red=%d", r)
	}

	f.Dim(0)
	if f.VAt(0, 0).V != 0 {
		t.Error("Dim(0) must clear pixels to black")
	}
}

func TestFrameSnapshot(t *testing.T) {
	f := NewFrame(16, 4)
	f.SetV(3, 2, New(0, 0, 0xff))

	snap := f.Snapshot(nil)
	if len(snap) != len(f.Pix) {
		t.Fatalf("expected snapshot of %d bytes, got %d", len(f.Pix), len(snap))
	}

	// The snapshot is a copy, not an alias.
	off := 3*2 + 2*f.Stride
	f.SetV(3, 2, New(0xff, 0, 0))
	if snap[off] == f.Pix[off] {
		t.Error("snapshot aliases the live frame")
	}
}
