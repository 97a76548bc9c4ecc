// Package blend implements the compositing operators used to flatten layers.
//
// All operations work on premultiplied RGBA8 buffers, 4 bytes per pixel,
// laid out like image.RGBA.Pix.
package blend

// Mode represents a layer compositing mode.
type Mode uint8

const (
	// ModeNormal composites source over destination.
	ModeNormal Mode = iota
	// ModeAdditive adds source to destination, clamping at 255.
	ModeAdditive
	// ModeErase removes destination coverage where source is opaque.
	ModeErase
)

// String returns a string representation of the mode.
func (m Mode) String() string {
	switch m {
	case ModeNormal:
		return "normal"
	case ModeAdditive:
		return "additive"
	case ModeErase:
		return "erase"
	default:
		return "unknown"
	}
}

// Func is the signature for blend operations.
// All values are premultiplied alpha, 0-255.
type Func func(sr, sg, sb, sa, dr, dg, db, da byte) (r, g, b, a byte)

// GetFunc returns the blend function for the given mode.
// Returns source-over for unknown modes.
func GetFunc(mode Mode) Func {
	switch mode {
	case ModeAdditive:
		return blendPlus
	case ModeErase:
		return blendDestinationOut
	default:
		return blendSourceOver
	}
}
