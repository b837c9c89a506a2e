package pixel

import "testing"

func TestCRGB16(t *testing.T) {
	for _, c := range []CRGB16{{0x0000}, {0xF800}, {0x07E0}, {0x001F}, {0xFFFF}} {
		t.Run("", func(it *testing.T) {
			r, g, b, a := c.RGBA()
			if a != 0xffff {
				it.Errorf("expected alpha to be 0xffff, got %#04x", a)
			}
			cr, cg, cb := c.RGB()
			if uint32(cr)<<8|uint32(cr) != r {
				it.Errorf("expected red to be %#04x, got %#02x", r, cr)
			}
			if uint32(cg)<<8|uint32(cg) != g {
				it.Errorf("expected green to be %#04x, got %#02x", g, cg)
			}
			if uint32(cb)<<8|uint32(cb) != b {
				it.Errorf("expected blue to be %#04x, got %#02x", b, cb)
			}
		})
	}
}

func TestNew(t *testing.T) {
	tests := []struct {
		r, g, b uint8
		want    uint16
	}{
		{0x00, 0x00, 0x00, 0x0000},
		{0xff, 0x00, 0x00, 0xF800},
		{0x00, 0xff, 0x00, 0x07E0},
		{0x00, 0x00, 0xff, 0x001F},
		{0xff, 0xff, 0xff, 0xFFFF},
	}
	for _, tt := range tests {
		if c := New(tt.r, tt.g, tt.b); c.V != tt.want {
			t.Errorf("New(%#02x, %#02x, %#02x) = %#04x, expected %#04x", tt.r, tt.g, tt.b, c.V, tt.want)
		}
	}
	if c := NewRGB(0xFF0000); c.V != 0xF800 {
		t.Errorf("NewRGB(0xFF0000) = %#04x, expected 0xF800", c.V)
	}
}

func TestScale(t *testing.T) {
	white := New(0xff, 0xff, 0xff)

	if c := white.Scale(0); c.V != 0 {
		t.Errorf("expected Scale(0) to be black, got %#04x", c.V)
	}
	if c := white.Scale(255); c != white {
		t.Errorf("expected Scale(255) to be identity, got %#04x", c.V)
	}

	// Half intensity must land on half the channel value, within 565
	// quantization.
	r, g, b := white.Scale(128).RGB()
	for _, v := range []uint8{r, g, b} {
		if v < 120 || v > 136 {
			t.Errorf("expected half intensity near 128, got %d", v)
		}
	}

	// Scaling must be monotonic per channel.
	prev := uint8(0)
	for i := 0; i < 256; i++ {
		rr, _, _ := white.Scale(uint8(i)).RGB()
		if rr < prev {
			t.Fatalf("red channel not monotonic at intensity %d: %d < %d", i, rr, prev)
		}
		prev = rr
	}
}
