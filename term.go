package morphclock

import (
	"github.com/gdamore/tcell/v2"

	"github.com/dotglow/morphclock/pixel"
)

// TermSink renders physical pixels as terminal cells. A pixel spans two
// columns so the panel keeps a roughly square aspect in common fonts.
type TermSink struct {
	screen tcell.Screen
}

var _ Sink = (*TermSink)(nil)

// NewTermSink returns a sink drawing on the given screen. The caller owns
// the screen lifecycle.
func NewTermSink(screen tcell.Screen) *TermSink {
	return &TermSink{screen: screen}
}

// Fill implements Sink.
func (s *TermSink) Fill(x, y, w, h int, c pixel.CRGB16) error {
	cr, cg, cb := c.RGB()
	style := tcell.StyleDefault.Background(tcell.NewRGBColor(int32(cr), int32(cg), int32(cb)))
	for yy := y; yy < y+h; yy++ {
		for xx := x; xx < x+w; xx++ {
			s.screen.SetContent(xx*2, yy, ' ', nil, style)
			s.screen.SetContent(xx*2+1, yy, ' ', nil, style)
		}
	}
	return nil
}

// Show pushes the pending cell updates to the terminal. Call it once per
// flushed frame.
func (s *TermSink) Show() {
	s.screen.Show()
}
