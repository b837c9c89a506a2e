package glyph

// MaxPoints bounds the number of active pixels extracted from a single
// bitmap. A full 16×Height raster would hold 512 pixels, but the widest
// glyph is 9 pixels and far from solid; 420 leaves generous headroom.
const MaxPoints = 420

// Point is an active pixel coordinate inside a glyph bitmap.
type Point struct {
	X, Y int8
}

// Points writes the coordinates of all set pixels into dst in scan order
// (top to bottom, left to right) and returns the number written. Pixels
// beyond len(dst) are discarded.
func (b *Bitmap) Points(dst []Point) int {
	n := 0
	for y := 0; y < Height; y++ {
		row := b.rows[y]
		if row == 0 {
			continue
		}
		for x := 0; x < b.width; x++ {
			if row&(1<<uint(15-x)) == 0 {
				continue
			}
			if n == len(dst) {
				return n
			}
			dst[n] = Point{X: int8(x), Y: int8(y)}
			n++
		}
	}
	return n
}
