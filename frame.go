package tapeheads

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"

	"github.com/gogpu/tapeheads/internal/blend"
)

// ColorMode is the color model of a frame.
type ColorMode uint8

const (
	// ColorRGB is a true-color frame, with or without alpha.
	ColorRGB ColorMode = iota
	// ColorGray is a grayscale frame.
	ColorGray
	// ColorIndexed is a palette frame. Effects reject it.
	ColorIndexed
	// ColorOther is any other color model (CMYK, ...). Effects reject it.
	ColorOther
)

// String returns a string representation of the color mode.
func (m ColorMode) String() string {
	switch m {
	case ColorRGB:
		return "RGB"
	case ColorGray:
		return "Gray"
	case ColorIndexed:
		return "Indexed"
	default:
		return "Other"
	}
}

// colorModeOf classifies an image by its concrete type and color model.
func colorModeOf(img image.Image) ColorMode {
	switch img.(type) {
	case *image.Gray, *image.Gray16:
		return ColorGray
	case *image.Paletted:
		return ColorIndexed
	case *image.CMYK:
		return ColorOther
	}
	switch img.ColorModel() {
	case color.GrayModel, color.Gray16Model:
		return ColorGray
	case color.CMYKModel:
		return ColorOther
	}
	if _, ok := img.ColorModel().(color.Palette); ok {
		return ColorIndexed
	}
	return ColorRGB
}

// BlendMode is the mode a layer is composited with onto the layer below.
type BlendMode uint8

const (
	// BlendNormal composites the layer over the layer below.
	BlendNormal BlendMode = iota
	// BlendAdditive adds the layer to the layer below.
	BlendAdditive
)

// String returns a string representation of the blend mode.
func (m BlendMode) String() string {
	return m.op().String()
}

func (m BlendMode) op() blend.Mode {
	if m == BlendAdditive {
		return blend.ModeAdditive
	}
	return blend.ModeNormal
}

// Layer is a named pixel buffer positioned on a frame.
//
// Thread safety: Layer is not safe for concurrent access.
type Layer struct {
	name   string
	pixmap *Pixmap
	offset image.Point
	mode   BlendMode
}

// NewLayer creates a layer at the frame origin in normal mode.
func NewLayer(name string, pm *Pixmap) *Layer {
	return &Layer{name: name, pixmap: pm}
}

// Name returns the layer name.
func (l *Layer) Name() string { return l.name }

// Pixmap returns the layer's pixel buffer.
func (l *Layer) Pixmap() *Pixmap { return l.pixmap }

// Offset returns the position of the layer's top-left corner on the frame.
func (l *Layer) Offset() image.Point { return l.offset }

// Bounds returns the layer's bounding box in frame coordinates.
func (l *Layer) Bounds() image.Rectangle {
	return image.Rect(0, 0, l.pixmap.Width(), l.pixmap.Height()).Add(l.offset)
}

// Mode returns the layer's blend mode.
func (l *Layer) Mode() BlendMode { return l.mode }

// SetMode sets the layer's blend mode.
func (l *Layer) SetMode(m BlendMode) { l.mode = m }

// SetOffset moves the layer.
func (l *Layer) SetOffset(p image.Point) { l.offset = p }

// Copy returns a deep copy of the layer under a new name.
func (l *Layer) Copy(name string) *Layer {
	return &Layer{
		name:   name,
		pixmap: l.pixmap.Clone(),
		offset: l.offset,
		mode:   l.mode,
	}
}

// Frame is a canvas holding an ordered stack of layers, bottom first.
//
// Thread safety: Frame is not safe for concurrent access.
type Frame struct {
	width  int
	height int
	mode   ColorMode
	layers []*Layer
}

// NewFrame creates a frame with a single layer holding img.
// The frame's color mode is taken from img.
func NewFrame(img image.Image) (*Frame, *Layer) {
	b := img.Bounds()
	f := &Frame{
		width:  b.Dx(),
		height: b.Dy(),
		mode:   colorModeOf(img),
	}
	l := NewLayer("Background", FromImage(img))
	f.layers = append(f.layers, l)
	return f, l
}

// NewBlankFrame creates a frame with no layers.
func NewBlankFrame(width, height int, mode ColorMode) *Frame {
	return &Frame{width: width, height: height, mode: mode}
}

// Width returns the canvas width.
func (f *Frame) Width() int { return f.width }

// Height returns the canvas height.
func (f *Frame) Height() int { return f.height }

// Bounds returns the canvas rectangle.
func (f *Frame) Bounds() image.Rectangle { return image.Rect(0, 0, f.width, f.height) }

// ColorMode returns the frame's color mode.
func (f *Frame) ColorMode() ColorMode { return f.mode }

// Layers returns the layer stack, bottom first. The slice is a copy.
func (f *Frame) Layers() []*Layer {
	return append([]*Layer(nil), f.layers...)
}

// Len returns the number of layers.
func (f *Frame) Len() int { return len(f.layers) }

func (f *Frame) index(l *Layer) int {
	for i, c := range f.layers {
		if c == l {
			return i
		}
	}
	return -1
}

// Contains reports whether l is in the frame's stack.
func (f *Frame) Contains(l *Layer) bool { return f.index(l) >= 0 }

// AddLayer inserts l directly above below. A nil below puts l on top.
func (f *Frame) AddLayer(l, below *Layer) error {
	if l == nil || l.pixmap.Empty() {
		return ErrEmptyLayer
	}
	if f.Contains(l) {
		return fmt.Errorf("tapeheads: layer %q already in frame", l.name)
	}
	if below == nil {
		f.layers = append(f.layers, l)
		return nil
	}
	i := f.index(below)
	if i < 0 {
		return ErrLayerNotInFrame
	}
	f.layers = append(f.layers, nil)
	copy(f.layers[i+2:], f.layers[i+1:])
	f.layers[i+1] = l
	return nil
}

// RemoveLayer deletes l from the stack.
func (f *Frame) RemoveLayer(l *Layer) error {
	i := f.index(l)
	if i < 0 {
		return ErrLayerNotInFrame
	}
	f.layers = append(f.layers[:i], f.layers[i+1:]...)
	return nil
}

// discard removes l if it is still in the stack. Steps defer it for every
// transient layer they create.
func (f *Frame) discard(l *Layer) {
	if f.Contains(l) {
		_ = f.RemoveLayer(l)
	}
}

// MergeDown composites l onto the layer directly below it using l's blend
// mode and replaces both with the result, clipped to the canvas. The merged
// layer keeps the lower layer's name and blend mode.
func (f *Frame) MergeDown(l *Layer) (*Layer, error) {
	i := f.index(l)
	if i < 0 {
		return nil, ErrLayerNotInFrame
	}
	if i == 0 {
		return nil, fmt.Errorf("tapeheads: layer %q has no layer below", l.name)
	}
	below := f.layers[i-1]

	canvas := NewPixmap(f.width, f.height)
	merged := Compose(canvas, below.pixmap, below.offset, BlendNormal)
	merged = Compose(merged, l.pixmap, l.offset, l.mode)

	result := &Layer{name: below.name, pixmap: merged, mode: below.mode}
	f.layers[i-1] = result
	f.layers = append(f.layers[:i], f.layers[i+1:]...)
	return result, nil
}

// Flatten composites every layer onto a transparent canvas.
func (f *Frame) Flatten() *Pixmap {
	out := NewPixmap(f.width, f.height)
	for i, l := range f.layers {
		mode := l.mode
		if i == 0 {
			mode = BlendNormal
		}
		out = Compose(out, l.pixmap, l.offset, mode)
	}
	return out
}

// Image returns the flattened frame. Grayscale frames export *image.Gray;
// all others export *image.NRGBA.
func (f *Frame) Image() image.Image {
	flat := f.Flatten().RGBA()
	if f.mode == ColorGray {
		g := image.NewGray(flat.Rect)
		draw.Draw(g, g.Rect, flat, image.Point{}, draw.Src)
		return g
	}
	n := image.NewNRGBA(flat.Rect)
	draw.Draw(n, n.Rect, flat, image.Point{}, draw.Src)
	return n
}

// frameState is a deep copy of a frame used to roll back a transaction.
type frameState struct {
	width, height int
	layers        []*Layer
	contents      []Layer
}

func (f *Frame) snapshot() frameState {
	s := frameState{width: f.width, height: f.height}
	s.layers = append(s.layers, f.layers...)
	for _, l := range f.layers {
		c := *l
		c.pixmap = l.pixmap.Clone()
		s.contents = append(s.contents, c)
	}
	return s
}

func (f *Frame) restore(s frameState) {
	f.width, f.height = s.width, s.height
	f.layers = append(f.layers[:0], s.layers...)
	for i, l := range s.layers {
		*l = s.contents[i]
	}
}

// Transaction runs fn as one undoable unit: if fn returns an error, the
// frame's size, stack and every pre-existing layer's pixels are restored.
func (f *Frame) Transaction(fn func() error) error {
	saved := f.snapshot()
	if err := fn(); err != nil {
		f.restore(saved)
		return err
	}
	return nil
}
