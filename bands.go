package tapeheads

// SplitBands approximates a luminance/chrominance split of layer, band-limits
// each band by resampling it down and back up, and adds the bands back
// together.
//
// The layer itself becomes the luminance band. A copy placed directly above
// it in additive mode becomes the chrominance band. Each band's channels are
// remapped with the profile's white points, the chrominance band is
// resampled through its smaller size and the luminance band through its
// near-full size, then the chrominance layer is merged down. The merged
// layer is returned and replaces layer in the frame.
func SplitBands(f *Frame, layer *Layer, p FormatProfile, down, up Interpolation) (*Layer, error) {
	if !f.Contains(layer) {
		return nil, hostError("band split", ErrLayerNotInFrame)
	}

	w, h := layer.pixmap.Width(), layer.pixmap.Height()
	chromaSize, lumaSize := p.BandSizes(w, h)
	Logger().Debug("tapeheads: band split",
		"format", p.Format,
		"chroma", chromaSize,
		"luma", lumaSize,
		"down", down,
		"up", up)

	chroma := layer.Copy("Chrominance")
	chroma.SetMode(BlendAdditive)
	if err := f.AddLayer(chroma, layer); err != nil {
		return nil, hostError("band split", err)
	}
	defer f.discard(chroma)

	p.Luma.Apply(layer.pixmap)
	p.Chroma.Apply(chroma.pixmap)

	lumaPix, err := roundTrip(layer.pixmap, lumaSize.X, lumaSize.Y, down, up)
	if err != nil {
		return nil, hostError("band split", err)
	}
	chromaPix, err := roundTrip(chroma.pixmap, chromaSize.X, chromaSize.Y, down, up)
	if err != nil {
		return nil, hostError("band split", err)
	}
	layer.pixmap = lumaPix
	chroma.pixmap = chromaPix

	merged, err := f.MergeDown(chroma)
	if err != nil {
		return nil, hostError("band split", err)
	}
	return merged, nil
}
