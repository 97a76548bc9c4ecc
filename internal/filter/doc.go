// Package filter provides the pixel filters used by the signal emulation
// pipeline:
//   - Gaussian blur (separable, edge-extended)
//   - Feathered rectangular selection masks
//   - Per-channel levels remapping
//
// All filters operate on premultiplied RGBA8 buffers laid out like
// image.RGBA.Pix, or on 8-bit coverage masks with one byte per pixel.
package filter
