package morphclock

import (
	"log"
	"time"

	"github.com/dotglow/morphclock/morph"
	"github.com/dotglow/morphclock/pixel"
)

// Logical panel dimensions.
const (
	Width  = 64
	Height = 32
)

// Mode transition fade parameters: brightness steps down to the floor and
// back up to full, one step per tick.
const (
	fadeFloor = 128
	fadeStep  = 16
)

// BlockAnimator is the falling-block glyph renderer behind ModeBlockFall.
// The engine treats it as a black box: it hands over the framebuffer and
// the time text every tick and only looks at the completion flag.
type BlockAnimator interface {
	// Update advances the animation one tick and redraws into dst. It
	// reports whether the glyphs have finished assembling.
	Update(dst *pixel.Frame, text string, use24h, showColon bool) (done bool)

	// Reset rewinds the animation so the digits rebuild from an empty
	// panel.
	Reset()
}

// Options configures a new Engine. Sink and Time are required; the rest
// are optional collaborators.
type Options struct {
	// Sink receives the physical pixel writes.
	Sink Sink

	// Geometry is the initial logical-to-physical cell mapping. The zero
	// value maps one logical cell to one physical pixel.
	Geometry Geometry

	// Time supplies the clock text.
	Time TimeSource

	// Store persists the active mode across restarts.
	Store Store

	// Ambient annotates the status line.
	Ambient AmbientSource

	// Block renders ModeBlockFall. Without it that mode shows an empty
	// panel.
	Block BlockAnimator

	// Config is the initial configuration; the zero value means defaults.
	Config Config
}

// Engine owns the framebuffer and all animation state. It is single
// threaded: Tick must never be re-entered concurrently.
type Engine struct {
	frame   *pixel.Frame
	comp    *Compositor
	cfg     Config
	clock   TimeSource
	store   Store
	ambient AmbientSource
	block   BlockAnimator

	mode         Mode
	fadeLevel    uint8
	fadingOut    bool
	inTransition bool
	lastRotation time.Time
	lastTick     time.Time
	started      bool

	text    string
	morpher morph.Morpher
	classic [6]slotAnim
	segs    [6]*morph.Digit
}

// New returns an engine rendering through the given sink.
func New(o Options) (*Engine, error) {
	if o.Sink == nil {
		return nil, ErrNoSink
	}
	if o.Time == nil {
		return nil, ErrNoTime
	}

	cfg := o.Config
	if cfg == (Config{}) {
		cfg = DefaultConfig()
	}
	cfg.clamp()

	geom := o.Geometry
	if geom.Dot == 0 {
		geom = Geometry{PitchX: 1, PitchY: 1, Dot: 1}
	}

	e := &Engine{
		frame:     pixel.NewFrame(Width, Height),
		comp:      NewCompositor(o.Sink, geom),
		cfg:       cfg,
		clock:     o.Time,
		store:     o.Store,
		ambient:   o.Ambient,
		block:     o.Block,
		mode:      cfg.Mode,
		fadeLevel: 255,
	}
	for i := range e.segs {
		e.segs[i] = morph.NewDigit()
	}
	if e.mode == ModeBlockFall && e.block != nil {
		e.block.Reset()
	}
	return e, nil
}

// Tick runs one render pass: poll the time source, advance animations by
// the wall-clock delta, render the active mode and flush the changed cells.
// The returned error is the sink's; the engine itself never fails a tick.
func (e *Engine) Tick(now time.Time) error {
	var delta time.Duration
	if e.started {
		delta = now.Sub(e.lastTick)
		if delta < 0 {
			delta = 0
		}
	} else {
		e.started = true
		e.lastRotation = now
	}
	e.lastTick = now

	if text, changed := e.clock.TimeText(); changed {
		e.onTimeChanged(text)
	}

	if e.cfg.AutoRotate && now.Sub(e.lastRotation) >= e.cfg.RotateInterval {
		e.SwitchMode(e.mode.Next())
		e.lastRotation = now
	}

	switch e.mode {
	case ModeBlockFall:
		if e.block != nil {
			e.block.Update(e.frame, e.text, e.cfg.Use24h, e.colonVisible(now))
		} else {
			e.frame.Clear()
		}
	case ModeSegmentDot:
		e.advanceSegments(delta)
		e.renderSegments(now)
	default:
		e.advanceClassic(delta)
		e.renderClassic(now)
	}

	if e.inTransition || e.fadeLevel < 255 {
		e.advanceFade()
		if e.fadeLevel < 255 {
			e.frame.Dim(e.fadeLevel)
		}
	}

	return e.comp.Flush(e.frame)
}

func (e *Engine) onTimeChanged(text string) {
	digits, ok := parseDigits(text)
	if !ok {
		return
	}
	snap := e.text == ""
	e.text = text
	e.retargetClassic(digits, snap)
	e.retargetSegments(digits, snap)
}

// parseDigits extracts the six digits of an "HH:MM:SS" text.
func parseDigits(text string) ([6]int, bool) {
	var d [6]int
	if len(text) < 8 {
		return d, false
	}
	for i, j := range [6]int{0, 1, 3, 4, 6, 7} {
		c := text[j]
		if c < '0' || c > '9' {
			return d, false
		}
		d[i] = int(c - '0')
	}
	return d, true
}

func (e *Engine) colonVisible(now time.Time) bool {
	return !e.cfg.BlinkColon || now.Second()%2 == 0
}

// SwitchMode activates another display mode. Switching to the mode that is
// already active is a no-op. The block-fall mode rebuilds itself from an
// empty panel, so it skips the brightness fade the other modes run. The
// choice is persisted through the store.
func (e *Engine) SwitchMode(m Mode) {
	m %= modeCount
	if m == e.mode {
		return
	}
	if debug {
		log.Printf("morphclock: mode %s -> %s", e.mode, m)
	}

	e.mode = m
	e.cfg.Mode = m
	e.frame.Clear()

	if m == ModeBlockFall && e.block != nil {
		e.block.Reset()
	} else {
		e.inTransition = true
		e.fadingOut = true
	}

	if e.store != nil {
		if err := e.store.Save(e.cfg); err != nil && debug {
			log.Printf("morphclock: persist config: %v", err)
		}
	}
}

func (e *Engine) advanceFade() {
	if e.fadingOut {
		if e.fadeLevel > fadeFloor+fadeStep {
			e.fadeLevel -= fadeStep
		} else {
			e.fadeLevel = fadeFloor
			e.fadingOut = false
		}
		return
	}
	if e.fadeLevel > 255-fadeStep {
		e.fadeLevel = 255
		e.inTransition = false
	} else {
		e.fadeLevel += fadeStep
	}
}

// ApplyConfig replaces the configuration. A mode change goes through
// SwitchMode; everything else takes effect on the next tick.
func (e *Engine) ApplyConfig(c Config) {
	c.clamp()
	mode := c.Mode
	c.Mode = e.mode
	e.cfg = c
	if mode != e.mode {
		e.SwitchMode(mode)
	}
}

// Config returns the active configuration.
func (e *Engine) Config() Config {
	return e.cfg
}

// Mode returns the active display mode.
func (e *Engine) Mode() Mode {
	return e.mode
}

// SetGeometry replaces the cell mapping; the next flush repaints in full.
func (e *Engine) SetGeometry(g Geometry) {
	e.comp.SetGeometry(g)
}

// Snapshot appends a copy of the framebuffer contents to dst for remote
// mirroring. The copy is detached from the live frame.
func (e *Engine) Snapshot(dst []byte) []byte {
	return e.frame.Snapshot(dst)
}

// RenderParams reports the applied cell mapping for diagnostics.
type RenderParams struct {
	PitchX int
	PitchY int
	Dot    int
	Gap    int
}

// RenderParams returns the cell mapping in effect.
func (e *Engine) RenderParams() RenderParams {
	g := e.comp.Geometry()
	return RenderParams{
		PitchX: g.PitchX,
		PitchY: g.PitchY,
		Dot:    g.Dot,
		Gap:    g.Gap(),
	}
}

// StatusText composes the date line shown below the panel, with the
// ambient annotation appended when a source is configured.
func (e *Engine) StatusText(now time.Time) string {
	s := now.Format("Mon 02 Jan")
	if e.ambient != nil {
		if a := e.ambient.Annotation(); a != "" {
			s += "  " + a
		}
	}
	return s
}
