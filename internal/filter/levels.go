package filter

import "math"

// Levels remaps one color channel: input values in [LowIn, HighIn] are
// stretched onto [LowOut, HighOut] through a gamma curve.
type Levels struct {
	LowIn, HighIn   uint8
	Gamma           float64
	LowOut, HighOut uint8
}

// IdentityLevels returns a remap that leaves the channel unchanged.
func IdentityLevels() Levels {
	return Levels{LowIn: 0, HighIn: 255, Gamma: 1, LowOut: 0, HighOut: 255}
}

// Map applies the remap to a single straight-alpha channel value.
func (l Levels) Map(v uint8) uint8 {
	lowIn, highIn := float64(l.LowIn), float64(l.HighIn)
	var t float64
	switch {
	case highIn <= lowIn:
		if float64(v) >= highIn {
			t = 1
		}
	default:
		t = (math.Min(math.Max(float64(v), lowIn), highIn) - lowIn) / (highIn - lowIn)
	}

	if l.Gamma > 0 && l.Gamma != 1 {
		t = math.Pow(t, 1/l.Gamma)
	}

	lowOut, highOut := float64(l.LowOut), float64(l.HighOut)
	return clampUint8(float32(lowOut + (highOut-lowOut)*t))
}

// LUT returns the 256-entry lookup table for the remap.
func (l Levels) LUT() [256]uint8 {
	var lut [256]uint8
	for i := range lut {
		lut[i] = l.Map(uint8(i))
	}
	return lut
}

// ApplyLevels remaps the red, green and blue channels of a premultiplied
// RGBA8 buffer in place. Color is un-premultiplied before the lookup and
// re-premultiplied afterwards; alpha is untouched.
func ApplyLevels(pix []uint8, r, g, b Levels) {
	lr, lg, lb := r.LUT(), g.LUT(), b.LUT()

	for i := 0; i+3 < len(pix); i += 4 {
		a := pix[i+3]
		switch a {
		case 0:
			continue
		case 255:
			pix[i+0] = lr[pix[i+0]]
			pix[i+1] = lg[pix[i+1]]
			pix[i+2] = lb[pix[i+2]]
		default:
			pix[i+0] = premul(lr[unpremul(pix[i+0], a)], a)
			pix[i+1] = premul(lg[unpremul(pix[i+1], a)], a)
			pix[i+2] = premul(lb[unpremul(pix[i+2], a)], a)
		}
	}
}

func unpremul(c, a uint8) uint8 {
	v := (uint32(c)*255 + uint32(a)/2) / uint32(a)
	if v > 255 {
		return 255
	}
	return uint8(v)
}

func premul(c, a uint8) uint8 {
	return uint8((uint32(c)*uint32(a) + 127) / 255)
}
