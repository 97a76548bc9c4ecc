package tapeheads

import (
	"fmt"
	"image"
	"image/color"

	"github.com/gogpu/tapeheads/internal/filter"
)

// ShiftProfile lists horizontal offsets, in pixels, for consecutive rows:
// offset i applies to the i-th row below the start row.
type ShiftProfile []int

// Built-in tape-head shift profiles.
var (
	// GlitchProfile is a tracking glitch that tails off over six lines.
	GlitchProfile = ShiftProfile{9, 9, 6, 4, 2, 1}
	// MessyHeadChangeProfile is the noise left where the video heads switch
	// near the bottom of the picture.
	MessyHeadChangeProfile = ShiftProfile{21, 23, 5, 5, 6}
)

const (
	// DefaultGlitchRow is the default first row of the glitch.
	DefaultGlitchRow = 146
	// MaxGlitchRow is the last valid first row of the glitch.
	MaxGlitchRow = 545
	// MessyHeadChangeRow is the first row of the head change noise.
	MessyHeadChangeRow = 545
)

// interlaceBlurRadius is the blur radius applied to the shifted fields.
const interlaceBlurRadius = 1.0

var black = color.NRGBA{A: 255}

// ShiftRows shifts consecutive rows of layer to the right, starting at
// startRow, by the offsets in profile. Rows are frame rows, so a layer
// offset from the canvas origin is shifted where its pixels appear on the
// frame. Rows are moved on a copy of layer;
// the layer itself is blacked out to serve as backdrop, so the gap a shifted
// row leaves on its left shows black. Rows outside the frame are skipped.
// The merged layer is returned and replaces layer in the frame.
func ShiftRows(f *Frame, layer *Layer, profile ShiftProfile, startRow int) (*Layer, error) {
	if !f.Contains(layer) {
		return nil, hostError("shift rows", ErrLayerNotInFrame)
	}
	Logger().Debug("tapeheads: shift rows", "start", startRow, "offsets", []int(profile))

	shifted := layer.Copy(layer.name + " copy")
	shifted.SetMode(BlendNormal)
	if err := f.AddLayer(shifted, layer); err != nil {
		return nil, hostError("shift rows", err)
	}
	defer f.discard(shifted)

	layer.pixmap.Fill(black)

	pm := shifted.pixmap
	for i, dx := range profile {
		y := startRow + i - layer.offset.Y
		if y < 0 || y >= pm.Height() {
			continue
		}
		shiftRow(pm, y, dx)
	}

	merged, err := f.MergeDown(shifted)
	if err != nil {
		return nil, hostError("shift rows", err)
	}
	return merged, nil
}

// Interlace emulates scan-field structure: every even frame row of a copy
// of layer is shifted one pixel to the right, the copy is softened with a
// small blur and merged back over layer. The merged layer is returned and
// replaces layer in the frame.
func Interlace(f *Frame, layer *Layer) (*Layer, error) {
	if !f.Contains(layer) {
		return nil, hostError("interlace", ErrLayerNotInFrame)
	}
	Logger().Debug("tapeheads: interlace", "rows", layer.pixmap.Height())

	fields := layer.Copy(layer.name + " copy")
	fields.SetMode(BlendNormal)
	if err := f.AddLayer(fields, layer); err != nil {
		return nil, hostError("interlace", err)
	}
	defer f.discard(fields)

	shiftEvenRows(fields.pixmap, layer.offset.Y)
	blurFields(fields.pixmap)

	merged, err := f.MergeDown(fields)
	if err != nil {
		return nil, hostError("interlace", err)
	}
	return merged, nil
}

// shiftRow floats row y of pm and anchors it dx pixels to the right.
// Pixels pushed past the right edge are dropped; the vacated left edge is
// transparent.
func shiftRow(pm *Pixmap, y, dx int) {
	sel := SelectRow(y, pm.Width())
	float, at := sel.Float(pm)
	Anchor(pm, float, at.Add(image.Pt(dx, 0)))
}

// shiftEvenRows shifts the rows of pm that land on even frame rows one
// pixel to the right. offsetY is pm's vertical position on the frame.
func shiftEvenRows(pm *Pixmap, offsetY int) {
	for y := offsetY & 1; y < pm.Height(); y += 2 {
		shiftRow(pm, y, 1)
	}
}

// blurFields applies the interlace blur to pm in place.
func blurFields(pm *Pixmap) {
	sigma := filter.SigmaFromBlurRadius(interlaceBlurRadius)
	filter.Blur(pm.Data(), pm.Width(), pm.Height(), sigma, sigma)
}

// ValidateGlitchRow reports whether row is a valid glitch start row.
func ValidateGlitchRow(row int) error {
	if row < 0 || row > MaxGlitchRow {
		return fmt.Errorf("%w: %d not in [0, %d]", ErrGlitchRowRange, row, MaxGlitchRow)
	}
	return nil
}
