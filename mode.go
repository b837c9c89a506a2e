package morphclock

// Mode selects which rendering path owns the framebuffer.
type Mode uint8

// Display modes, in rotation order.
const (
	// ModeClassic renders large digit bitmaps with a pixel morph between
	// time changes.
	ModeClassic Mode = iota

	// ModeBlockFall hands the framebuffer to an external block animator
	// that assembles the digits from falling pixels.
	ModeBlockFall

	// ModeSegmentDot renders digits as glowing LED dots with a per-segment
	// brightness cross-fade.
	ModeSegmentDot

	modeCount
)

func (m Mode) String() string {
	switch m % modeCount {
	case ModeBlockFall:
		return "blockfall"
	case ModeSegmentDot:
		return "segmentdot"
	default:
		return "classic"
	}
}

// Next returns the mode that follows m in the auto-rotation cycle.
func (m Mode) Next() Mode {
	return (m + 1) % modeCount
}
