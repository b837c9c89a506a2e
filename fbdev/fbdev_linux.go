package fbdev

import (
	"encoding/binary"
	"fmt"
	"image"
	"os"
	"syscall"
	"unsafe"

	"github.com/dotglow/morphclock/pixel"
)

const (
	// From <linux/fb.h>
	fbioGetVScreenInfo = 0x4600
	fbioGetFScreenInfo = 0x4602
)

// Device is a memory-mapped framebuffer.
type Device struct {
	frame   pixel.Frame
	f       *os.File
	fd      uintptr
	info    fixScreenInfo
	screen  varScreenInfo
	swapped bool
}

// Open a framebuffer device by name, typically /dev/fb[0..x].
func Open(name string) (*Device, error) {
	f, err := os.OpenFile(name, os.O_RDWR, os.ModeDevice)
	if err != nil {
		return nil, err
	}

	d := &Device{
		f:  f,
		fd: f.Fd(),
	}
	if err = d.ioctl(fbioGetFScreenInfo, unsafe.Pointer(&d.info)); err != nil {
		_ = f.Close()
		return nil, err
	}
	if err = d.ioctl(fbioGetVScreenInfo, unsafe.Pointer(&d.screen)); err != nil {
		_ = f.Close()
		return nil, err
	}
	if d.swapped, err = parsePixelLayout(&d.screen); err != nil {
		_ = f.Close()
		return nil, err
	}

	if d.frame.Pix, err = syscall.Mmap(int(d.fd), 0, int(d.info.SmemLen), syscall.PROT_READ|syscall.PROT_WRITE, syscall.MAP_SHARED); err != nil {
		_ = f.Close()
		return nil, err
	}

	d.frame.Rect = image.Rect(0, 0, int(d.screen.Xres), int(d.screen.Yres))
	d.frame.Stride = int(d.info.LineLength)
	d.frame.Order = binary.LittleEndian
	return d, nil
}

// Bounds is the physical surface size.
func (d *Device) Bounds() image.Rectangle {
	return d.frame.Rect
}

// Image exposes the mapped memory as a drawable image, used for the status
// line below the clock face.
func (d *Device) Image() *pixel.Frame {
	return &d.frame
}

// Fill paints a solid block, clipped to the surface.
func (d *Device) Fill(x, y, w, h int, c pixel.CRGB16) error {
	v := c.V
	if d.swapped {
		cr, cg, cb := c.RGB()
		v = uint16(cb>>3)<<11 | uint16(cg>>2)<<5 | uint16(cr>>3)
	}

	r := image.Rect(x, y, x+w, y+h).Intersect(d.frame.Rect)
	for yy := r.Min.Y; yy < r.Max.Y; yy++ {
		off := yy*d.frame.Stride + r.Min.X*2
		for xx := r.Min.X; xx < r.Max.X; xx++ {
			d.frame.Order.PutUint16(d.frame.Pix[off:], v)
			off += 2
		}
	}
	return nil
}

// Close unmaps the framebuffer memory and closes the device.
func (d *Device) Close() error {
	if err := syscall.Munmap(d.frame.Pix); err != nil {
		return err
	}
	return d.f.Close()
}

func (d *Device) ioctl(cmd uintptr, arg unsafe.Pointer) error {
	if _, _, errno := syscall.Syscall(syscall.SYS_IOCTL, d.fd, cmd, uintptr(arg)); errno != 0 {
		return &os.SyscallError{
			Syscall: "SYS_IOCTL",
			Err:     errno,
		}
	}
	return nil
}

// parsePixelLayout reports whether the 16bpp layout stores blue in the high
// bits (BGR565). Anything other than 565 is rejected.
func parsePixelLayout(info *varScreenInfo) (swapped bool, err error) {
	if info.BitsPerPixel != 16 {
		return false, fmt.Errorf("fbdev: %d bpp: %w", info.BitsPerPixel, ErrNotSupported)
	}
	switch {
	case info.Blue.Offset == 0 &&
		info.Blue.Length == 5 &&
		info.Green.Offset == 5 &&
		info.Green.Length == 6 &&
		info.Red.Offset == 11 &&
		info.Red.Length == 5:
		return false, nil

	case info.Red.Offset == 0 &&
		info.Red.Length == 5 &&
		info.Green.Offset == 5 &&
		info.Green.Length == 6 &&
		info.Blue.Offset == 11 &&
		info.Blue.Length == 5:
		return true, nil
	}
	return false, fmt.Errorf("fbdev: unsupported color layout: %w", ErrNotSupported)
}

type fixScreenInfo struct {
	ID         [16]byte  // Identification string eg "TT Builtin"
	SmemStart  uintptr   // Start of frame buffer mem
	SmemLen    uint32    // Length of frame buffer mem
	Type       uint32    // FB_TYPE_
	TypeAux    uint32    // Interleave for interleaved Planes
	Visual     uint32    // FB_VISUAL_
	Xpanstep   uint16    // Zero if no hardware panning
	Ypanstep   uint16    // Zero if no hardware panning
	Ywrapstep  uint16    // Zero if no hardware ywrap
	LineLength uint32    // Length of a line in bytes
	MmioStart  uintptr   // Start of Memory Mapped I/O (physical address)
	MmioLen    uint32    // Length of Memory Mapped I/O
	Accel      uint32    // Type of acceleration available
	Reserved   [3]uint16 // Reserved for future compatibility
}

type bitField struct {
	Offset   uint32 // Beginning of bitfield
	Length   uint32 // Length of bitfield
	MsbRight uint32 // != 0 : Most significant bit is right
}

// varScreenInfo contains device independent changeable information about a
// frame buffer device and a specific video mode.
type varScreenInfo struct {
	Xres                    uint32
	Yres                    uint32
	XresVirtual             uint32
	YresVirtual             uint32
	Xoffset                 uint32
	Yoffset                 uint32
	BitsPerPixel            uint32
	Grayscale               uint32
	Red, Green, Blue, Alpha bitField
	Nonstd                  uint32
	Activate                uint32
	Height                  uint32
	Width                   uint32
	AccelFlags              uint32
	Pixclock                uint32
	LeftMargin              uint32
	RightMargin             uint32
	UpperMargin             uint32
	LowerMargin             uint32
	HsyncLen                uint32
	VsyncLen                uint32
	Sync                    uint32
	Vmode                   uint32
	Rotate                  uint32
	Colorspace              uint32
	Reserved                [4]uint32
}
