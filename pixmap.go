package tapeheads

import (
	"image"
	"image/color"
	"image/draw"
)

// Pixmap represents a rectangular pixel buffer.
// Pixels are stored as premultiplied RGBA, 4 bytes per pixel, which makes
// the backing slice layout-compatible with image.RGBA.
type Pixmap struct {
	width  int
	height int
	data   []uint8
}

// NewPixmap creates a new fully transparent pixmap with the given dimensions.
func NewPixmap(width, height int) *Pixmap {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	return &Pixmap{
		width:  width,
		height: height,
		data:   make([]uint8, width*height*4),
	}
}

// Width returns the width of the pixmap.
func (p *Pixmap) Width() int {
	return p.width
}

// Height returns the height of the pixmap.
func (p *Pixmap) Height() int {
	return p.height
}

// Data returns the raw premultiplied RGBA pixel data.
func (p *Pixmap) Data() []uint8 {
	return p.data
}

// Stride returns the number of bytes per row.
func (p *Pixmap) Stride() int {
	return p.width * 4
}

// Empty reports whether the pixmap holds no pixels.
func (p *Pixmap) Empty() bool {
	return p == nil || p.width == 0 || p.height == 0
}

// SetPixel sets a single pixel from a straight-alpha color.
func (p *Pixmap) SetPixel(x, y int, c color.NRGBA) {
	if x < 0 || x >= p.width || y < 0 || y >= p.height {
		return
	}
	pc := color.RGBAModel.Convert(c).(color.RGBA)
	i := (y*p.width + x) * 4
	p.data[i+0] = pc.R
	p.data[i+1] = pc.G
	p.data[i+2] = pc.B
	p.data[i+3] = pc.A
}

// GetPixel returns a single pixel as a straight-alpha color.
// Out-of-bounds coordinates return transparent black.
func (p *Pixmap) GetPixel(x, y int) color.NRGBA {
	if x < 0 || x >= p.width || y < 0 || y >= p.height {
		return color.NRGBA{}
	}
	i := (y*p.width + x) * 4
	return color.NRGBAModel.Convert(color.RGBA{
		R: p.data[i+0],
		G: p.data[i+1],
		B: p.data[i+2],
		A: p.data[i+3],
	}).(color.NRGBA)
}

// Fill fills the entire pixmap with a color.
func (p *Pixmap) Fill(c color.NRGBA) {
	pc := color.RGBAModel.Convert(c).(color.RGBA)
	for i := 0; i < len(p.data); i += 4 {
		p.data[i+0] = pc.R
		p.data[i+1] = pc.G
		p.data[i+2] = pc.B
		p.data[i+3] = pc.A
	}
}

// Row returns the bytes backing row y. The slice aliases the pixmap.
func (p *Pixmap) Row(y int) []uint8 {
	stride := p.Stride()
	return p.data[y*stride : (y+1)*stride]
}

// Clone returns a deep copy of the pixmap.
func (p *Pixmap) Clone() *Pixmap {
	c := &Pixmap{
		width:  p.width,
		height: p.height,
		data:   make([]uint8, len(p.data)),
	}
	copy(c.data, p.data)
	return c
}

// Equal reports whether two pixmaps have identical size and pixels.
func (p *Pixmap) Equal(o *Pixmap) bool {
	if p.width != o.width || p.height != o.height {
		return false
	}
	for i := range p.data {
		if p.data[i] != o.data[i] {
			return false
		}
	}
	return true
}

// RGBA returns an image.RGBA view sharing the pixmap's memory.
func (p *Pixmap) RGBA() *image.RGBA {
	return &image.RGBA{
		Pix:    p.data,
		Stride: p.Stride(),
		Rect:   image.Rect(0, 0, p.width, p.height),
	}
}

// FromImage creates a pixmap from an image.
func FromImage(img image.Image) *Pixmap {
	b := img.Bounds()
	pm := NewPixmap(b.Dx(), b.Dy())
	draw.Draw(pm.RGBA(), pm.RGBA().Rect, img, b.Min, draw.Src)
	return pm
}

// At implements the image.Image interface.
func (p *Pixmap) At(x, y int) color.Color {
	return p.GetPixel(x, y)
}

// Bounds implements the image.Image interface.
func (p *Pixmap) Bounds() image.Rectangle {
	return image.Rect(0, 0, p.width, p.height)
}

// ColorModel implements the image.Image interface.
func (p *Pixmap) ColorModel() color.Model {
	return color.NRGBAModel
}
