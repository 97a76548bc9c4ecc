package tapeheads

import (
	"image"

	"github.com/gogpu/tapeheads/internal/blend"
)

// Compose blends overlay onto a copy of base with overlay's top-left corner
// at the given point, and returns the flattened result. The result always
// has base's size; overlay pixels falling outside base are dropped.
//
// Compose is pure: neither input is modified.
func Compose(base, overlay *Pixmap, at image.Point, mode BlendMode) *Pixmap {
	out := base.Clone()
	composeInto(out, overlay, at, mode.op())
	return out
}

// composeInto blends overlay onto dst in place.
func composeInto(dst, overlay *Pixmap, at image.Point, op blend.Mode) {
	if dst.Empty() || overlay.Empty() {
		return
	}
	dr := image.Rect(0, 0, overlay.Width(), overlay.Height()).Add(at).Intersect(dst.Bounds())
	if dr.Empty() {
		return
	}
	sp := dr.Min.Sub(at)
	blend.Composite(
		blend.Span{Pix: dst.Data(), Stride: dst.Stride(), X: dr.Min.X, Y: dr.Min.Y},
		blend.Span{Pix: overlay.Data(), Stride: overlay.Stride(), X: sp.X, Y: sp.Y},
		dr.Dx(), dr.Dy(), op,
	)
}
