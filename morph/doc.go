// Package morph implements the digit transition animations: the bitmap
// spawn and particle morphs, and the per-slot segment cross-fade state
// machine used by the dot-rendered clock face.
package morph
