package glyph

// Segment identifies one of the seven strokes of a digit:
//
//	 aaa
//	f   b
//	f   b
//	 ggg
//	e   c
//	e   c
//	 ddd
type Segment uint8

// Segments in standard order.
const (
	SegA Segment = iota
	SegB
	SegC
	SegD
	SegE
	SegF
	SegG

	NumSegments = 7
)

// segTable maps a digit to the bitmask of its lit segments.
var segTable = [10]uint8{
	0: 1<<SegA | 1<<SegB | 1<<SegC | 1<<SegD | 1<<SegE | 1<<SegF,
	1: 1<<SegB | 1<<SegC,
	2: 1<<SegA | 1<<SegB | 1<<SegD | 1<<SegE | 1<<SegG,
	3: 1<<SegA | 1<<SegB | 1<<SegC | 1<<SegD | 1<<SegG,
	4: 1<<SegB | 1<<SegC | 1<<SegF | 1<<SegG,
	5: 1<<SegA | 1<<SegC | 1<<SegD | 1<<SegF | 1<<SegG,
	6: 1<<SegA | 1<<SegC | 1<<SegD | 1<<SegE | 1<<SegF | 1<<SegG,
	7: 1<<SegA | 1<<SegB | 1<<SegC,
	8: 1<<SegA | 1<<SegB | 1<<SegC | 1<<SegD | 1<<SegE | 1<<SegF | 1<<SegG,
	9: 1<<SegA | 1<<SegB | 1<<SegC | 1<<SegD | 1<<SegF | 1<<SegG,
}

// Active reports whether the segment is lit for the given digit. Digits
// outside 0..9 have no lit segments.
func Active(digit int, s Segment) bool {
	if digit < 0 || digit > 9 {
		return false
	}
	return segTable[digit]&(1<<s) != 0
}

// Dot-rendered digit cell dimensions. Segment line coordinates below are
// relative to this cell.
const (
	CellWidth  = 8
	CellHeight = 20
)

// Line is the LED-dot geometry of one segment: its endpoints inside the
// digit cell and the number of evenly spaced LEDs along it.
type Line struct {
	X1, Y1 int
	X2, Y2 int
	Leds   int
}

// Horizontal segments carry 4 LEDs, vertical segments 5.
var segLines = [NumSegments]Line{
	SegA: {6, 1, 1, 1, 4},
	SegB: {6, 2, 6, 8, 5},
	SegC: {6, 11, 6, 17, 5},
	SegD: {6, 18, 1, 18, 4},
	SegE: {1, 11, 1, 17, 5},
	SegF: {1, 2, 1, 8, 5},
	SegG: {6, 9, 1, 9, 4},
}

// Line returns the LED-dot geometry of the segment.
func (s Segment) Line() Line {
	return segLines[s%NumSegments]
}
