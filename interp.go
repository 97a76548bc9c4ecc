package tapeheads

import (
	"fmt"
	"math"

	xdraw "golang.org/x/image/draw"
	"golang.org/x/text/cases"
)

// Interpolation selects the resampling kernel used when scaling.
type Interpolation uint8

const (
	// InterpNone picks the nearest source pixel.
	InterpNone Interpolation = iota
	// InterpLinear uses a bilinear (tent) kernel.
	InterpLinear
	// InterpCubic uses the Catmull-Rom cubic kernel.
	InterpCubic
	// InterpLanczos uses a three-lobe windowed sinc kernel.
	InterpLanczos
)

var interpNames = [...]string{
	InterpNone:    "none",
	InterpLinear:  "linear",
	InterpCubic:   "cubic",
	InterpLanczos: "lanczos",
}

// String returns the lower-case name of the interpolation.
func (i Interpolation) String() string {
	if int(i) < len(interpNames) {
		return interpNames[i]
	}
	return fmt.Sprintf("Interpolation(%d)", uint8(i))
}

// ParseInterpolation parses an interpolation name case-insensitively.
// "sinc" and "sinc-lanczos" are accepted as aliases for lanczos.
func ParseInterpolation(name string) (Interpolation, error) {
	folded := cases.Fold().String(name)
	for i, n := range interpNames {
		if folded == n {
			return Interpolation(i), nil
		}
	}
	switch folded {
	case "nearest":
		return InterpNone, nil
	case "bilinear":
		return InterpLinear, nil
	case "catmull-rom", "bicubic":
		return InterpCubic, nil
	case "sinc", "sinc-lanczos":
		return InterpLanczos, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownInterpolation, name)
}

// MarshalText implements encoding.TextMarshaler.
func (i Interpolation) MarshalText() ([]byte, error) {
	if int(i) >= len(interpNames) {
		return nil, fmt.Errorf("%w: %d", ErrUnknownInterpolation, uint8(i))
	}
	return []byte(i.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (i *Interpolation) UnmarshalText(text []byte) error {
	v, err := ParseInterpolation(string(text))
	if err != nil {
		return err
	}
	*i = v
	return nil
}

// lanczos3 is the three-lobe Lanczos kernel. Its weights are exactly zero
// at non-zero integer distances, so a 1:1 pass reproduces the source.
var lanczos3 = &xdraw.Kernel{Support: 3, At: lanczos3At}

func lanczos3At(t float64) float64 {
	t = math.Abs(t)
	switch {
	case t == 0:
		return 1
	case t >= 3:
		return 0
	case t == math.Trunc(t):
		return 0
	}
	px := math.Pi * t
	return 3 * math.Sin(px) * math.Sin(px/3) / (px * px)
}

// scaler returns the x/image/draw scaler for the interpolation.
func (i Interpolation) scaler() (xdraw.Scaler, error) {
	switch i {
	case InterpNone:
		return xdraw.NearestNeighbor, nil
	case InterpLinear:
		return xdraw.BiLinear, nil
	case InterpCubic:
		return xdraw.CatmullRom, nil
	case InterpLanczos:
		return lanczos3, nil
	default:
		return nil, fmt.Errorf("%w: %d", ErrUnknownInterpolation, uint8(i))
	}
}

// Scale resamples pm to width x height with the given kernel and returns a
// new pixmap. Scaling to the current size returns a copy.
func Scale(pm *Pixmap, width, height int, interp Interpolation) (*Pixmap, error) {
	if pm.Empty() || width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: scale %dx%d to %dx%d", ErrEmptyLayer, pm.Width(), pm.Height(), width, height)
	}
	s, err := interp.scaler()
	if err != nil {
		return nil, err
	}
	if width == pm.Width() && height == pm.Height() {
		return pm.Clone(), nil
	}

	out := NewPixmap(width, height)
	dst := out.RGBA()
	s.Scale(dst, dst.Rect, pm.RGBA(), pm.Bounds(), xdraw.Src, nil)
	return out, nil
}

// roundTrip scales pm down to width x height and back to its own size,
// discarding detail the smaller size cannot hold.
func roundTrip(pm *Pixmap, width, height int, down, up Interpolation) (*Pixmap, error) {
	small, err := Scale(pm, width, height, down)
	if err != nil {
		return nil, err
	}
	return Scale(small, pm.Width(), pm.Height(), up)
}
