package tapeheads

import "github.com/gogpu/tapeheads/internal/filter"

// LevelsTransform remaps one color channel: input values in [LowIn, HighIn]
// are stretched onto [LowOut, HighOut] through a 1/Gamma power curve.
type LevelsTransform struct {
	LowIn, HighIn   uint8
	Gamma           float64
	LowOut, HighOut uint8
}

// WhitePoint returns the transform that maps full intensity to highOut and
// leaves black at zero, scaling linearly in between.
func WhitePoint(highOut uint8) LevelsTransform {
	return LevelsTransform{LowIn: 0, HighIn: 255, Gamma: 1, LowOut: 0, HighOut: highOut}
}

// Map applies the transform to one straight-alpha channel value.
func (t LevelsTransform) Map(v uint8) uint8 {
	return t.levels().Map(v)
}

func (t LevelsTransform) levels() filter.Levels {
	return filter.Levels{
		LowIn:   t.LowIn,
		HighIn:  t.HighIn,
		Gamma:   t.Gamma,
		LowOut:  t.LowOut,
		HighOut: t.HighOut,
	}
}

// ChannelLevels holds one LevelsTransform per color channel.
type ChannelLevels struct {
	R, G, B LevelsTransform
}

// Luminance and chrominance white points. Each channel pair sums to 255,
// so a white pixel split into both bands and added back stays white.
var (
	LumaLevels = ChannelLevels{
		R: WhitePoint(76),
		G: WhitePoint(150),
		B: WhitePoint(29),
	}
	ChromaLevels = ChannelLevels{
		R: WhitePoint(179),
		G: WhitePoint(105),
		B: WhitePoint(226),
	}
)

// Apply remaps pm's color channels in place.
func (c ChannelLevels) Apply(pm *Pixmap) {
	filter.ApplyLevels(pm.Data(), c.R.levels(), c.G.levels(), c.B.levels())
}
