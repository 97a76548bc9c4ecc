package blend

// Span describes a rectangular pixel region inside a premultiplied RGBA8
// buffer. Stride is the number of bytes per row of the backing buffer.
type Span struct {
	Pix    []uint8
	Stride int
	X, Y   int
}

// offset returns the byte offset of pixel (x, y) relative to the span origin.
func (s Span) offset(x, y int) int {
	return (s.Y+y)*s.Stride + (s.X+x)*4
}

// Composite blends a width x height block of src onto dst in place.
// The caller is responsible for clipping both spans to their buffers.
func Composite(dst, src Span, width, height int, mode Mode) {
	fn := GetFunc(mode)
	for y := 0; y < height; y++ {
		di := dst.offset(0, y)
		si := src.offset(0, y)
		for x := 0; x < width; x++ {
			d := dst.Pix[di : di+4 : di+4]
			s := src.Pix[si : si+4 : si+4]
			d[0], d[1], d[2], d[3] = fn(s[0], s[1], s[2], s[3], d[0], d[1], d[2], d[3])
			di += 4
			si += 4
		}
	}
}

// EraseMask removes coverage from dst proportionally to mask, which holds
// one byte per pixel with stride width. The mask and dst must share size.
func EraseMask(dst []uint8, mask []uint8, width, height int) {
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			m := mask[y*width+x]
			if m == 0 {
				continue
			}
			i := (y*width + x) * 4
			d := dst[i : i+4 : i+4]
			d[0], d[1], d[2], d[3] = blendDestinationOut(0, 0, 0, m, d[0], d[1], d[2], d[3])
		}
	}
}
