package filter

// Test helper functions shared across filter tests.

// solidBuffer creates a premultiplied RGBA8 buffer filled with one pixel value.
func solidBuffer(w, h int, r, g, b, a uint8) []uint8 {
	pix := make([]uint8, w*h*4)
	for i := 0; i < len(pix); i += 4 {
		pix[i+0] = r
		pix[i+1] = g
		pix[i+2] = b
		pix[i+3] = a
	}
	return pix
}

// pixelAt returns the four bytes of pixel (x, y).
func pixelAt(pix []uint8, w, x, y int) [4]uint8 {
	i := (y*w + x) * 4
	return [4]uint8{pix[i], pix[i+1], pix[i+2], pix[i+3]}
}

// absInt returns the absolute value of an int.
func absInt(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
