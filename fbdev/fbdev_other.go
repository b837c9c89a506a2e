//go:build !linux

package fbdev

import (
	"image"

	"github.com/dotglow/morphclock/pixel"
)

// Device is a memory-mapped framebuffer. It cannot be opened on this
// platform.
type Device struct{}

// Open is only supported on Linux.
func Open(_ string) (*Device, error) {
	return nil, ErrNotSupported
}

func (d *Device) Bounds() image.Rectangle { return image.Rectangle{} }

func (d *Device) Image() *pixel.Frame { return nil }

func (d *Device) Fill(_, _, _, _ int, _ pixel.CRGB16) error { return ErrNotSupported }

func (d *Device) Close() error { return ErrNotSupported }
