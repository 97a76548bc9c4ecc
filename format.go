package tapeheads

import (
	"fmt"
	"image"

	"golang.org/x/text/cases"
)

// Format identifies a signal format profile.
type Format uint8

const (
	// FormatPALS is simple PAL: chroma at a third of the line resolution.
	FormatPALS Format = iota
	// FormatPALD is delay-line PAL. Averaging adjacent lines is modelled
	// by halving the vertical resolution of both bands.
	FormatPALD
	// FormatVHS is PAL VHS tape: both bands heavily band-limited.
	FormatVHS
)

var formatNames = [...]string{
	FormatPALS: "pal-s",
	FormatPALD: "pal-d",
	FormatVHS:  "vhs",
}

// String returns the lower-case profile name.
func (f Format) String() string {
	if int(f) < len(formatNames) {
		return formatNames[f]
	}
	return fmt.Sprintf("Format(%d)", uint8(f))
}

// ParseFormat parses a profile name case-insensitively.
func ParseFormat(name string) (Format, error) {
	folded := cases.Fold().String(name)
	for i, n := range formatNames {
		if folded == n {
			return Format(i), nil
		}
	}
	switch folded {
	case "pal", "pals":
		return FormatPALS, nil
	case "pald":
		return FormatPALD, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownFormat, name)
}

// MarshalText implements encoding.TextMarshaler.
func (f Format) MarshalText() ([]byte, error) {
	if int(f) >= len(formatNames) {
		return nil, fmt.Errorf("%w: %d", ErrUnknownFormat, uint8(f))
	}
	return []byte(f.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (f *Format) UnmarshalText(text []byte) error {
	v, err := ParseFormat(string(text))
	if err != nil {
		return err
	}
	*f = v
	return nil
}

// FormatProfile pairs a format with the levels that split a frame into its
// luminance and chrominance bands.
type FormatProfile struct {
	Format Format
	Luma   ChannelLevels
	Chroma ChannelLevels
}

// Built-in profiles.
var (
	PALSProfile = FormatProfile{Format: FormatPALS, Luma: LumaLevels, Chroma: ChromaLevels}
	PALDProfile = FormatProfile{Format: FormatPALD, Luma: LumaLevels, Chroma: ChromaLevels}
	VHSProfile  = FormatProfile{Format: FormatVHS, Luma: LumaLevels, Chroma: ChromaLevels}
)

// ProfileFor returns the built-in profile for a format.
func ProfileFor(f Format) (FormatProfile, error) {
	switch f {
	case FormatPALS:
		return PALSProfile, nil
	case FormatPALD:
		return PALDProfile, nil
	case FormatVHS:
		return VHSProfile, nil
	}
	return FormatProfile{}, fmt.Errorf("%w: %d", ErrUnknownFormat, uint8(f))
}

// BandSizes returns the reduced chroma and luma sizes for a width x height
// layer:
//
//	PAL-S  chroma w/3 x h        luma (w - w/3) x h
//	PAL-D  chroma w/3 x h/2      luma (w - w/3) x h/2
//	VHS    chroma w*0.1625 x h   luma w*0.4625 x h
//
// Fractions are floored, computed in integer arithmetic (0.1625 = 13/80,
// 0.4625 = 37/80) so results do not depend on float rounding. Any dimension
// that floors to zero is clamped to one pixel.
func (p FormatProfile) BandSizes(width, height int) (chroma, luma image.Point) {
	switch p.Format {
	case FormatPALD:
		chroma = image.Pt(width/3, height/2)
		luma = image.Pt(width-width/3, height/2)
	case FormatVHS:
		chroma = image.Pt(width*13/80, height)
		luma = image.Pt(width*37/80, height)
	default:
		chroma = image.Pt(width/3, height)
		luma = image.Pt(width-width/3, height)
	}
	return atLeastOne(chroma), atLeastOne(luma)
}

func atLeastOne(p image.Point) image.Point {
	if p.X < 1 {
		p.X = 1
	}
	if p.Y < 1 {
		p.Y = 1
	}
	return p
}
