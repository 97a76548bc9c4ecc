package tapeheads

import (
	"fmt"
	"log/slog"
)

// PALOptions configures the PAL effect.
type PALOptions struct {
	// Border adds the PAL picture-area matte.
	Border bool
	// Interlace adds the alternating-line shift-and-blur artifact.
	Interlace bool
	// Format is FormatPALS or FormatPALD.
	Format Format
	// Down and Up are the kernels used when shrinking and enlarging.
	Down, Up Interpolation
}

// DefaultPALOptions returns the PAL defaults: border and interlace on,
// PAL-S, cubic down-scaling and Lanczos up-scaling.
func DefaultPALOptions() PALOptions {
	return PALOptions{
		Border:    true,
		Interlace: true,
		Format:    FormatPALS,
		Down:      InterpCubic,
		Up:        InterpLanczos,
	}
}

// VHSOptions configures the VHS effect.
type VHSOptions struct {
	// Border adds the VHS picture-area matte.
	Border bool
	// MessyHeadChange adds head-switch noise near the bottom of the frame.
	MessyHeadChange bool
	// Glitch adds a tracking glitch starting at GlitchRow.
	Glitch bool
	// GlitchRow is the first glitched row, in [0, MaxGlitchRow].
	GlitchRow int
	// Down and Up are the kernels used when shrinking and enlarging.
	Down, Up Interpolation
}

// DefaultVHSOptions returns the VHS defaults: border, head change and
// glitch on, glitch at row 146, cubic down-scaling and Lanczos up-scaling.
func DefaultVHSOptions() VHSOptions {
	return VHSOptions{
		Border:          true,
		MessyHeadChange: true,
		Glitch:          true,
		GlitchRow:       DefaultGlitchRow,
		Down:            InterpCubic,
		Up:              InterpLanczos,
	}
}

// step is one stage of an effect pipeline. It receives the current layer
// and returns the layer that replaces it.
type step struct {
	name string
	run  func(*Layer) (*Layer, error)
}

// checkInput rejects frames and settings the effects cannot process,
// before any change.
func checkInput(f *Frame, layer *Layer, down, up Interpolation) error {
	switch f.mode {
	case ColorRGB, ColorGray:
	default:
		return fmt.Errorf("%w: %s", ErrInvalidInputFormat, f.mode)
	}
	if layer == nil || layer.pixmap.Empty() {
		return ErrEmptyLayer
	}
	if !f.Contains(layer) {
		return ErrLayerNotInFrame
	}
	for _, k := range []Interpolation{down, up} {
		if _, err := k.scaler(); err != nil {
			return err
		}
	}
	return nil
}

// run normalizes the frame and applies steps in order inside one
// transaction. Either every step succeeds or the frame is left as it was.
func run(effect string, f *Frame, layer *Layer, down, up Interpolation, steps []step) (*Layer, error) {
	log := Logger().With("effect", effect)

	err := f.Transaction(func() error {
		if err := Normalize(f, down, up); err != nil {
			return err
		}
		for _, s := range steps {
			log.Debug("tapeheads: step", "step", s.name)
			next, err := s.run(layer)
			if err != nil {
				return err
			}
			layer = next
		}
		return nil
	})
	if err != nil {
		log.Warn("tapeheads: effect rolled back", slog.Any("error", err))
		return nil, err
	}

	log.Info("tapeheads: effect applied", "layers", f.Len(), "size", f.Bounds().Size())
	return layer, nil
}

// PAL makes the frame look PAL encoded: the frame is scaled to 720x576,
// optionally matted to the PAL picture area, split into a high resolution
// luminance band and a low resolution chrominance band that are added back
// together, and optionally given an interlace artifact.
//
// PAL modifies f in place and returns the layer that replaces layer. On
// error f is left unchanged.
func PAL(f *Frame, layer *Layer, opts PALOptions) (*Layer, error) {
	if err := checkInput(f, layer, opts.Down, opts.Up); err != nil {
		return nil, err
	}
	if opts.Format != FormatPALS && opts.Format != FormatPALD {
		return nil, fmt.Errorf("%w: pal effect needs pal-s or pal-d, got %s", ErrUnknownFormat, opts.Format)
	}
	profile, err := ProfileFor(opts.Format)
	if err != nil {
		return nil, err
	}

	var steps []step
	if opts.Border {
		steps = append(steps, step{"border", func(l *Layer) (*Layer, error) {
			return ApplyBorder(f, l, PALBorder)
		}})
	}
	steps = append(steps, step{"band split", func(l *Layer) (*Layer, error) {
		return SplitBands(f, l, profile, opts.Down, opts.Up)
	}})
	if opts.Interlace {
		steps = append(steps, step{"interlace", func(l *Layer) (*Layer, error) {
			return Interlace(f, l)
		}})
	}

	return run("pal", f, layer, opts.Down, opts.Up, steps)
}

// VHS makes the frame look like it came from a PAL VHS tape: the frame is
// scaled to 720x576, optionally matted to the VHS picture area, optionally
// given head-switch noise and a tracking glitch, then band-limited with the
// VHS profile.
//
// VHS modifies f in place and returns the layer that replaces layer. On
// error f is left unchanged.
func VHS(f *Frame, layer *Layer, opts VHSOptions) (*Layer, error) {
	if err := checkInput(f, layer, opts.Down, opts.Up); err != nil {
		return nil, err
	}
	if opts.Glitch {
		if err := ValidateGlitchRow(opts.GlitchRow); err != nil {
			return nil, err
		}
	}

	var steps []step
	if opts.Border {
		steps = append(steps, step{"border", func(l *Layer) (*Layer, error) {
			return ApplyBorder(f, l, VHSBorder)
		}})
	}
	if opts.MessyHeadChange {
		steps = append(steps, step{"head change", func(l *Layer) (*Layer, error) {
			return ShiftRows(f, l, MessyHeadChangeProfile, MessyHeadChangeRow)
		}})
	}
	if opts.Glitch {
		steps = append(steps, step{"glitch", func(l *Layer) (*Layer, error) {
			return ShiftRows(f, l, GlitchProfile, opts.GlitchRow)
		}})
	}
	steps = append(steps, step{"band split", func(l *Layer) (*Layer, error) {
		return SplitBands(f, l, VHSProfile, opts.Down, opts.Up)
	}})

	return run("vhs", f, layer, opts.Down, opts.Up, steps)
}
