// Package morphclock implements a morphing dot-matrix clock engine for a
// 64x32 logical LED panel. The engine renders the current time into a
// framebuffer using one of several animation modes, then flushes only the
// changed cells to a display sink.
package morphclock

import (
	"errors"
	"os"
)

var debug bool

func init() {
	debug = os.Getenv("MORPHCLOCK_DEBUG") != ""
}

// Errors
var (
	ErrNoSink = errors.New("morphclock: no display sink configured")
	ErrNoTime = errors.New("morphclock: no time source configured")
)
