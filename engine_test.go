package morphclock

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dotglow/morphclock/pixel"
)

type scriptClock struct {
	text    string
	changed bool
}

func (c *scriptClock) TimeText() (string, bool) {
	ch := c.changed
	c.changed = false
	return c.text, ch
}

func (c *scriptClock) set(text string) {
	c.text = text
	c.changed = true
}

type fakeBlock struct {
	resets  int
	updates int
}

func (b *fakeBlock) Update(dst *pixel.Frame, text string, use24h, showColon bool) bool {
	b.updates++
	return true
}

func (b *fakeBlock) Reset() { b.resets = b.resets + 1 }

type memStore struct {
	saved []Config
}

func (s *memStore) Load() (Config, error) { return DefaultConfig(), nil }

func (s *memStore) Save(c Config) error {
	s.saved = append(s.saved, c)
	return nil
}

func newTestEngine(t *testing.T, o Options) (*Engine, *scriptClock) {
	t.Helper()
	clock := &scriptClock{}
	clock.set("12:34:56")
	if o.Sink == nil {
		o.Sink = &recordSink{}
	}
	o.Time = clock
	e, err := New(o)
	require.NoError(t, err)
	return e, clock
}

func TestNewRequiresCollaborators(t *testing.T) {
	_, err := New(Options{Time: &scriptClock{}})
	assert.ErrorIs(t, err, ErrNoSink)

	_, err = New(Options{Sink: &recordSink{}})
	assert.ErrorIs(t, err, ErrNoTime)
}

func TestTickRendersTime(t *testing.T) {
	e, _ := newTestEngine(t, Options{})
	now := time.Unix(1000, 0)
	require.NoError(t, e.Tick(now))

	// The first observed time snaps into place without animation.
	want := [6]int{1, 2, 3, 4, 5, 6}
	for i, s := range e.classic {
		assert.Equal(t, want[i], s.from)
		assert.False(t, s.animating)
	}
	for i, d := range e.segs {
		assert.Equal(t, want[i], d.Current())
	}
}

func TestTimeChangeStartsMorph(t *testing.T) {
	e, clock := newTestEngine(t, Options{})
	now := time.Unix(1000, 0)
	require.NoError(t, e.Tick(now))

	clock.set("12:34:57")
	require.NoError(t, e.Tick(now.Add(33*time.Millisecond)))

	assert.True(t, e.classic[5].animating)
	assert.Equal(t, 7, e.classic[5].to)
	assert.False(t, e.classic[0].animating, "unchanged slots stay idle")
}

func TestSecondsSlotsSnapInSegmentMode(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Mode = ModeSegmentDot
	e, clock := newTestEngine(t, Options{Config: cfg})
	now := time.Unix(1000, 0)
	require.NoError(t, e.Tick(now))

	clock.set("12:35:57")
	require.NoError(t, e.Tick(now.Add(33*time.Millisecond)))

	assert.True(t, e.segs[3].Morphing(), "minute slot animates")
	assert.False(t, e.segs[5].Morphing(), "seconds slot snaps")
	assert.Equal(t, 7, e.segs[5].Current())
}

func TestSwitchModeToBlockFall(t *testing.T) {
	block := &fakeBlock{}
	store := &memStore{}
	e, _ := newTestEngine(t, Options{Block: block, Store: store})
	require.NoError(t, e.Tick(time.Unix(1000, 0)))

	resets := block.resets
	e.SwitchMode(ModeBlockFall)

	assert.Equal(t, ModeBlockFall, e.Mode())
	assert.Equal(t, resets+1, block.resets, "block animator rebuilds from empty")
	assert.False(t, e.inTransition, "block mode skips the fade")
	for y := 0; y < Height; y++ {
		for x := 0; x < Width; x++ {
			assert.Equal(t, uint16(0), e.frame.VAt(x, y).V)
		}
	}
	if assert.Len(t, store.saved, 1) {
		assert.Equal(t, ModeBlockFall, store.saved[0].Mode)
	}
}

func TestSwitchModeSameIsNoop(t *testing.T) {
	store := &memStore{}
	e, _ := newTestEngine(t, Options{Store: store})
	require.NoError(t, e.Tick(time.Unix(1000, 0)))

	e.SwitchMode(e.Mode())
	assert.False(t, e.inTransition)
	assert.Empty(t, store.saved)
}

func TestSwitchModeFades(t *testing.T) {
	e, _ := newTestEngine(t, Options{})
	now := time.Unix(1000, 0)
	require.NoError(t, e.Tick(now))

	e.SwitchMode(ModeSegmentDot)
	assert.True(t, e.inTransition)

	sawDip := false
	for i := 0; i < 40 && (e.inTransition || e.fadeLevel < 255); i++ {
		now = now.Add(33 * time.Millisecond)
		require.NoError(t, e.Tick(now))
		if e.fadeLevel < 255 {
			sawDip = true
		}
		assert.GreaterOrEqual(t, e.fadeLevel, uint8(fadeFloor))
	}
	assert.True(t, sawDip)
	assert.False(t, e.inTransition)
	assert.Equal(t, uint8(255), e.fadeLevel)
}

func TestAutoRotate(t *testing.T) {
	cfg := DefaultConfig()
	cfg.AutoRotate = true
	cfg.RotateInterval = time.Minute
	e, _ := newTestEngine(t, Options{Config: cfg, Block: &fakeBlock{}})

	now := time.Unix(1000, 0)
	require.NoError(t, e.Tick(now))
	assert.Equal(t, ModeClassic, e.Mode())

	require.NoError(t, e.Tick(now.Add(61*time.Second)))
	assert.Equal(t, ModeBlockFall, e.Mode())

	require.NoError(t, e.Tick(now.Add(62*time.Second)))
	assert.Equal(t, ModeBlockFall, e.Mode(), "rotation timer restarts after a switch")
}

func TestApplyConfigClamps(t *testing.T) {
	e, _ := newTestEngine(t, Options{})

	cfg := e.Config()
	cfg.DotDiameter = 99
	cfg.DotGap = -3
	cfg.MorphSpeed = 0
	e.ApplyConfig(cfg)

	got := e.Config()
	assert.Equal(t, 10, got.DotDiameter)
	assert.Equal(t, 0, got.DotGap)
	assert.Equal(t, 1, got.MorphSpeed)
}

func TestApplyConfigSwitchesMode(t *testing.T) {
	store := &memStore{}
	e, _ := newTestEngine(t, Options{Store: store})
	require.NoError(t, e.Tick(time.Unix(1000, 0)))

	cfg := e.Config()
	cfg.Mode = ModeSegmentDot
	e.ApplyConfig(cfg)

	assert.Equal(t, ModeSegmentDot, e.Mode())
	assert.Equal(t, ModeSegmentDot, e.Config().Mode)
	if assert.Len(t, store.saved, 1) {
		assert.Equal(t, ModeSegmentDot, store.saved[0].Mode)
	}
}

func TestSnapshotIsDetached(t *testing.T) {
	e, _ := newTestEngine(t, Options{})
	require.NoError(t, e.Tick(time.Unix(1000, 0)))

	snap := e.Snapshot(nil)
	assert.Len(t, snap, Width*Height*2)

	before := make([]byte, len(snap))
	copy(before, snap)
	e.frame.Fill(pixel.New(255, 255, 255))
	assert.Equal(t, before, snap)
}

func TestRenderParams(t *testing.T) {
	e, _ := newTestEngine(t, Options{Geometry: Geometry{PitchX: 5, PitchY: 7, Dot: 4, InsetX: 1, InsetY: 2}})
	p := e.RenderParams()
	assert.Equal(t, RenderParams{PitchX: 5, PitchY: 7, Dot: 4, Gap: 1}, p)
}
