package tapeheads

import (
	"image"

	"github.com/gogpu/tapeheads/internal/blend"
	"github.com/gogpu/tapeheads/internal/filter"
)

// Selection is a rectangular region with an optional feathered edge.
// Selections are plain values scoped to the call that makes them; there is
// no frame-wide active selection to clear afterwards.
type Selection struct {
	Rect    image.Rectangle
	Feather float64
}

// SelectRect returns a hard-edged selection of r.
func SelectRect(r image.Rectangle) Selection {
	return Selection{Rect: r}
}

// SelectRow returns a hard-edged selection of row y, width pixels wide.
func SelectRow(y, width int) Selection {
	return Selection{Rect: image.Rect(0, y, width, y+1)}
}

// Mask renders the selection into a width x height coverage mask.
func (s Selection) Mask(width, height int) []uint8 {
	r := s.Rect
	return filter.FeatherRect(width, height, r.Min.X, r.Min.Y, r.Max.X, r.Max.Y, s.Feather)
}

// Clear erases the selected pixels of pm to transparency, honouring the
// feathered edge.
func (s Selection) Clear(pm *Pixmap) {
	if s.Feather <= 0 {
		clearRect(pm, s.Rect.Intersect(pm.Bounds()))
		return
	}
	blend.EraseMask(pm.Data(), s.Mask(pm.Width(), pm.Height()), pm.Width(), pm.Height())
}

// Float lifts the selected pixels out of pm: the returned pixmap holds them
// (scaled by selection coverage) and pm is left transparent where they were.
// The floating pixmap covers the selection rectangle clipped to pm, whose
// top-left corner is returned as the float's position.
func (s Selection) Float(pm *Pixmap) (*Pixmap, image.Point) {
	r := s.Rect.Intersect(pm.Bounds())
	if r.Empty() {
		return NewPixmap(0, 0), r.Min
	}

	float := NewPixmap(r.Dx(), r.Dy())
	if s.Feather <= 0 {
		for y := r.Min.Y; y < r.Max.Y; y++ {
			copy(float.Row(y-r.Min.Y), pm.Row(y)[r.Min.X*4:r.Max.X*4])
		}
		clearRect(pm, r)
		return float, r.Min
	}

	mask := s.Mask(pm.Width(), pm.Height())
	for y := r.Min.Y; y < r.Max.Y; y++ {
		src := pm.Row(y)
		dst := float.Row(y - r.Min.Y)
		for x := r.Min.X; x < r.Max.X; x++ {
			m := mask[y*pm.Width()+x]
			si, di := x*4, (x-r.Min.X)*4
			for c := 0; c < 4; c++ {
				dst[di+c] = uint8((uint16(src[si+c])*uint16(m) + 127) / 255)
			}
		}
	}
	blend.EraseMask(pm.Data(), mask, pm.Width(), pm.Height())
	return float, r.Min
}

// Anchor merges a floating pixmap back into pm at position at, over the
// existing pixels.
func Anchor(pm, float *Pixmap, at image.Point) {
	composeInto(pm, float, at, blend.ModeNormal)
}

// clearRect zeroes r, which must lie inside pm.
func clearRect(pm *Pixmap, r image.Rectangle) {
	for y := r.Min.Y; y < r.Max.Y; y++ {
		clear(pm.Row(y)[r.Min.X*4 : r.Max.X*4])
	}
}
