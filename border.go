package tapeheads

import (
	"fmt"
	"image"
	"image/color"
)

// BorderProfile describes the matte that hides the parts of a frame a real
// display would not show.
type BorderProfile struct {
	Name        string
	OuterWidth  int
	OuterHeight int
	// Cutout is the visible picture area, in canvas coordinates.
	Cutout  image.Rectangle
	Feather float64
	Fill    color.NRGBA
}

// Border feather radius shared by the built-in profiles.
const borderFeather = 2.0

// Built-in border profiles for a 720x576 canvas.
var (
	PALBorder = BorderProfile{
		Name:        "PAL border",
		OuterWidth:  CanonicalWidth,
		OuterHeight: CanonicalHeight,
		Cutout:      image.Rect(9, 0, 9+702, 0+576),
		Feather:     borderFeather,
		Fill:        color.NRGBA{A: 255},
	}
	VHSBorder = BorderProfile{
		Name:        "VHS border",
		OuterWidth:  CanonicalWidth,
		OuterHeight: CanonicalHeight,
		Cutout:      image.Rect(10, 26, 10+700, 26+524),
		Feather:     borderFeather,
		Fill:        color.NRGBA{A: 255},
	}
)

// Validate reports whether the cutout lies inside the matte and the matte
// has a positive size.
func (p BorderProfile) Validate() error {
	outer := image.Rect(0, 0, p.OuterWidth, p.OuterHeight)
	if outer.Empty() {
		return fmt.Errorf("%w: empty %dx%d matte", ErrCutoutBounds, p.OuterWidth, p.OuterHeight)
	}
	if p.Cutout.Empty() || !p.Cutout.In(outer) {
		return fmt.Errorf("%w: %v not in %v", ErrCutoutBounds, p.Cutout, outer)
	}
	return nil
}

// ApplyBorder adds a matte filled with the profile's color directly above
// layer, cuts the feathered cutout out of it so layer shows through, and
// merges the matte down. The merged layer is returned and replaces layer in
// the frame.
func ApplyBorder(f *Frame, layer *Layer, p BorderProfile) (*Layer, error) {
	if err := p.Validate(); err != nil {
		return nil, hostError("border", err)
	}
	if !f.Contains(layer) {
		return nil, hostError("border", ErrLayerNotInFrame)
	}
	Logger().Debug("tapeheads: border", "profile", p.Name, "cutout", p.Cutout, "feather", p.Feather)

	matte := NewPixmap(p.OuterWidth, p.OuterHeight)
	matte.Fill(p.Fill)
	matteLayer := NewLayer(p.Name, matte)
	if err := f.AddLayer(matteLayer, layer); err != nil {
		return nil, hostError("border", err)
	}
	defer f.discard(matteLayer)

	sel := Selection{Rect: p.Cutout, Feather: p.Feather}
	sel.Clear(matte)

	merged, err := f.MergeDown(matteLayer)
	if err != nil {
		return nil, hostError("border", err)
	}
	return merged, nil
}
