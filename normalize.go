package tapeheads

import "image"

// Canonical broadcast frame size: the 576 active lines of a 625-line PAL
// frame, sampled 720 pixels wide.
const (
	CanonicalWidth  = 720
	CanonicalHeight = 576
)

// IsCanonical reports whether the frame is exactly 720x576.
func IsCanonical(f *Frame) bool {
	return f.width == CanonicalWidth && f.height == CanonicalHeight
}

// Normalize rescales the whole frame to 720x576 in one pass, independently
// in X and Y. The down kernel is used when the frame is wider than the
// canonical width, the up kernel otherwise. A canonical frame is left
// untouched.
func Normalize(f *Frame, down, up Interpolation) error {
	if IsCanonical(f) {
		return nil
	}

	interp := up
	if f.width > CanonicalWidth {
		interp = down
	}
	Logger().Debug("tapeheads: normalize",
		"from", image.Pt(f.width, f.height),
		"to", image.Pt(CanonicalWidth, CanonicalHeight),
		"interpolation", interp)

	if f.width <= 0 || f.height <= 0 {
		return hostError("normalize", ErrEmptyLayer)
	}

	scaled := make([]*Pixmap, len(f.layers))
	offsets := make([]image.Point, len(f.layers))
	for i, l := range f.layers {
		r := scaleRect(l.Bounds(), f.width, f.height)
		pm, err := Scale(l.pixmap, r.Dx(), r.Dy(), interp)
		if err != nil {
			return hostError("normalize", err)
		}
		scaled[i] = pm
		offsets[i] = r.Min
	}

	for i, l := range f.layers {
		l.pixmap = scaled[i]
		l.offset = offsets[i]
	}
	f.width, f.height = CanonicalWidth, CanonicalHeight
	return nil
}

// scaleRect maps r from a width x height canvas onto the canonical canvas,
// flooring each edge and keeping at least one pixel in each direction.
func scaleRect(r image.Rectangle, width, height int) image.Rectangle {
	sx := func(v int) int { return floorDiv(v*CanonicalWidth, width) }
	sy := func(v int) int { return floorDiv(v*CanonicalHeight, height) }

	out := image.Rect(sx(r.Min.X), sy(r.Min.Y), sx(r.Max.X), sy(r.Max.Y))
	if out.Dx() < 1 {
		out.Max.X = out.Min.X + 1
	}
	if out.Dy() < 1 {
		out.Max.Y = out.Min.Y + 1
	}
	return out
}

// floorDiv divides rounding toward negative infinity.
func floorDiv(a, b int) int {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}
