package pixel

import "image/color"

// CRGB16Model converts arbitrary colors to the packed 5-6-5 RGB model.
var CRGB16Model color.Model = color.ModelFunc(crgb16Model)

// CRGB16 represents a 16-bit 5-6-5 RGB color.
type CRGB16 struct {
	// CRed, 5, CGreen, 6, CBlue, 5
	V uint16
}

// New packs 8-bit per channel values into a CRGB16.
func New(r, g, b uint8) CRGB16 {
	return CRGB16{uint16(r&0xF8)<<8 | uint16(g&0xFC)<<3 | uint16(b)>>3}
}

// NewRGB packs a 24-bit 0xRRGGBB value into a CRGB16.
func NewRGB(rgb uint32) CRGB16 {
	return New(uint8(rgb>>16), uint8(rgb>>8), uint8(rgb))
}

// RGB unpacks the color into 8-bit channels. The high bits are duplicated
// into the low bits, so full intensity unpacks as 0xff per channel.
func (c CRGB16) RGB() (r, g, b uint8) {
	r = uint8(c.V >> 8 & 0xF8)
	g = uint8(c.V >> 3 & 0xFC)
	b = uint8(c.V << 3)
	r |= r >> 5
	g |= g >> 6
	b |= b >> 5
	return
}

// Scale returns the color with every channel scaled linearly by
// intensity/255, without gamma correction. Scale(0) is black and
// Scale(255) returns the color unchanged.
func (c CRGB16) Scale(intensity uint8) CRGB16 {
	switch intensity {
	case 0:
		return CRGB16{}
	case 0xff:
		return c
	}
	r, g, b := c.RGB()
	v := uint16(intensity)
	return New(
		uint8(uint16(r)*v/255),
		uint8(uint16(g)*v/255),
		uint8(uint16(b)*v/255),
	)
}

func (c CRGB16) RGBA() (r, g, b, a uint32) {
	// Build a 5- or 6-bit value at the top of the low byte of each component.
	red := (c.V & 0xF800) >> 8
	grn := (c.V & 0x07E0) >> 3
	blu := (c.V & 0x001F) << 3
	// Duplicate the high bits in the low bits.
	red |= red >> 5
	grn |= grn >> 6
	blu |= blu >> 5
	// Duplicate the whole value in the high byte.
	red |= red << 8
	grn |= grn << 8
	blu |= blu << 8
	return uint32(red), uint32(grn), uint32(blu), 0xffff
}

func crgb16Model(c color.Color) color.Color {
	if c, ok := c.(CRGB16); ok {
		return c
	}
	r, g, b, _ := c.RGBA()
	r = r & 0xF800
	g = (g & 0xFC00) >> 5
	b = (b & 0xF800) >> 11
	return CRGB16{uint16(r | g | b)}
}
