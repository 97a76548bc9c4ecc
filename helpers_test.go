package tapeheads

import (
	"image"
	"image/color"
	"testing"
)

// Test helper functions shared across package tests.

// solidImage creates an opaque NRGBA image filled with c.
func solidImage(w, h int, c color.NRGBA) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.SetNRGBA(x, y, c)
		}
	}
	return img
}

// gradientImage creates an opaque image whose red channel encodes x, green
// encodes y and blue mixes both, so any shift or resample is visible.
func gradientImage(w, h int) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.SetNRGBA(x, y, color.NRGBA{
				R: uint8(x * 7),
				G: uint8(y * 3),
				B: uint8((x + y) * 5),
				A: 255,
			})
		}
	}
	return img
}

// canonicalFrame returns a 720x576 gradient frame and its only layer.
func canonicalFrame(t *testing.T) (*Frame, *Layer) {
	t.Helper()
	return NewFrame(gradientImage(CanonicalWidth, CanonicalHeight))
}

// rowsEqual reports whether row y of a and b hold the same bytes.
func rowsEqual(a, b *Pixmap, y int) bool {
	ra, rb := a.Row(y), b.Row(y)
	for i := range ra {
		if ra[i] != rb[i] {
			return false
		}
	}
	return true
}

// assertSingleLayer fails unless f holds exactly one layer, which is l.
func assertSingleLayer(t *testing.T, f *Frame, l *Layer) {
	t.Helper()
	if f.Len() != 1 {
		t.Fatalf("frame has %d layers, want 1", f.Len())
	}
	if f.Layers()[0] != l {
		t.Fatal("returned layer is not the frame's only layer")
	}
}

// absDiff returns |a - b| for bytes.
func absDiff(a, b uint8) int {
	if a > b {
		return int(a - b)
	}
	return int(b - a)
}
