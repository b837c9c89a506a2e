// Package fbdev drives a Linux framebuffer device (fbdev) as a clock
// display sink.
//
// Only 16 bits-per-pixel devices in RGB565 or BGR565 layout are supported;
// the mapped memory is written directly, there is no page flipping. On
// other operating systems Open returns ErrNotSupported.
package fbdev

import "errors"

// ErrNotSupported is returned when the device or platform cannot be used.
var ErrNotSupported = errors.New("fbdev: not supported")
