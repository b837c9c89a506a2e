// Package pixel implements the packed 16-bit color model and the logical
// framebuffer used by the clock rendering engine.
package pixel
