package morphclock

import "time"

// MorphStyle selects the bitmap transition used by the classic mode.
type MorphStyle uint8

// Bitmap morph styles.
const (
	// MorphSpawn builds the new glyph from its center, ignoring the
	// previous digit.
	MorphSpawn MorphStyle = iota

	// MorphParticle moves the pixels of the old glyph into the new one.
	MorphParticle
)

func (s MorphStyle) String() string {
	if s == MorphParticle {
		return "particle"
	}
	return "spawn"
}

// Config holds the user-adjustable render parameters. Values are clamped
// when applied, so a Config populated from untrusted input is safe to use
// as-is.
type Config struct {
	// Mode is the active display mode.
	Mode Mode

	// BaseColor is the 0xRRGGBB clock color for modes that use a single
	// color.
	BaseColor uint32

	// DotDiameter is the physical size in pixels of one logical cell,
	// clamped to 1..10.
	DotDiameter int

	// DotGap is the physical spacing between logical cells, clamped
	// to 0..8.
	DotGap int

	// MorphSpeed divides the bitmap morph duration; 1 is normal speed.
	// The segment cross-fade has a fixed duration and is not affected.
	MorphSpeed int

	// Style selects the classic mode's transition animation.
	Style MorphStyle

	// Use24h selects 24-hour time display.
	Use24h bool

	// BlinkColon blinks the separators once per second.
	BlinkColon bool

	// AutoRotate cycles through the display modes on a timer.
	AutoRotate bool

	// RotateInterval is the time between automatic mode switches.
	RotateInterval time.Duration
}

// DefaultConfig returns the power-on configuration.
func DefaultConfig() Config {
	return Config{
		Mode:           ModeClassic,
		BaseColor:      0x00ff00,
		DotDiameter:    4,
		DotGap:         1,
		MorphSpeed:     1,
		Style:          MorphSpawn,
		Use24h:         true,
		BlinkColon:     true,
		RotateInterval: 5 * time.Minute,
	}
}

func (c *Config) clamp() {
	c.Mode %= modeCount
	if c.DotDiameter < 1 {
		c.DotDiameter = 1
	} else if c.DotDiameter > 10 {
		c.DotDiameter = 10
	}
	if c.DotGap < 0 {
		c.DotGap = 0
	} else if c.DotGap > 8 {
		c.DotGap = 8
	}
	if c.MorphSpeed < 1 {
		c.MorphSpeed = 1
	}
	if c.Style > MorphParticle {
		c.Style = MorphSpawn
	}
	if c.RotateInterval <= 0 {
		c.RotateInterval = 5 * time.Minute
	}
}

// Store persists the configuration between runs. The engine saves through
// it when the active mode changes; everything else is the owner's business.
type Store interface {
	Load() (Config, error)
	Save(Config) error
}

// TimeSource supplies the wall-clock text to display. The changed flag is
// the only trigger for starting digit morphs, so a source that always
// reports false freezes the clock face.
type TimeSource interface {
	// TimeText returns the current "HH:MM:SS" text and whether it differs
	// from the previous call.
	TimeText() (text string, changed bool)
}

// AmbientSource supplies an optional annotation for the status line, such
// as a temperature reading.
type AmbientSource interface {
	Annotation() string
}

// SystemTime is a TimeSource backed by the local system clock.
type SystemTime struct {
	// Use24h selects 24-hour formatting.
	Use24h bool

	last string
}

var _ TimeSource = (*SystemTime)(nil)

// TimeText implements TimeSource.
func (s *SystemTime) TimeText() (string, bool) {
	layout := "15:04:05"
	if !s.Use24h {
		layout = "03:04:05"
	}
	text := time.Now().Format(layout)
	changed := text != s.last
	s.last = text
	return text, changed
}
