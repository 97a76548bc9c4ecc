package tapeheads

import (
	"errors"
	"strings"
)

// Sentinel errors returned by tapeheads. Step failures wrap one of these
// with the step name, so callers should match with errors.Is.
var (
	// ErrInvalidInputFormat is returned when a frame is neither RGB nor
	// grayscale. It is reported before the frame is touched.
	ErrInvalidInputFormat = errors.New("tapeheads: input is neither RGB nor grayscale")

	// ErrHostOperation is returned when a layer primitive fails. The
	// effect is aborted and the frame rolled back.
	ErrHostOperation = errors.New("tapeheads: layer operation failed")

	// ErrLayerNotInFrame is returned when a step is given a layer that is
	// not part of the frame's stack.
	ErrLayerNotInFrame = errors.New("tapeheads: layer is not in frame")

	// ErrEmptyLayer is returned when a layer has no pixels.
	ErrEmptyLayer = errors.New("tapeheads: layer has no pixels")

	// ErrGlitchRowRange is returned when a glitch start row lies outside
	// [0, MaxGlitchRow].
	ErrGlitchRowRange = errors.New("tapeheads: glitch row out of range")

	// ErrCutoutBounds is returned when a border cutout is not contained in
	// the canonical canvas.
	ErrCutoutBounds = errors.New("tapeheads: border cutout outside canvas")

	// ErrUnknownInterpolation is returned for an interpolation value or
	// name that does not name a kernel.
	ErrUnknownInterpolation = errors.New("tapeheads: unknown interpolation")

	// ErrUnknownFormat is returned for a format name that does not name a
	// profile.
	ErrUnknownFormat = errors.New("tapeheads: unknown format profile")
)

// stepError is a host operation failure of one pipeline step.
type stepError struct {
	step  string
	cause error
}

func (e *stepError) Error() string {
	return "tapeheads: " + e.step + ": " + strings.TrimPrefix(e.cause.Error(), "tapeheads: ")
}

func (e *stepError) Unwrap() []error { return []error{ErrHostOperation, e.cause} }

// hostError wraps cause as a host operation failure of the named step.
// The result matches both ErrHostOperation and cause under errors.Is.
func hostError(step string, cause error) error {
	return &stepError{step: step, cause: cause}
}
