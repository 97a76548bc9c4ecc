package filter

// FeatherRect renders a rectangular selection [x0,x1) x [y0,y1) into an
// 8-bit coverage mask of size width x height, one byte per pixel.
//
// A positive radius softens the rectangle edge with a Gaussian falloff that
// reaches zero coverage radius pixels away from the hard edge. The canvas
// edge repeats its value, so a rectangle touching the canvas edge stays
// fully selected there.
func FeatherRect(width, height, x0, y0, x1, y1 int, radius float64) []uint8 {
	mask := make([]uint8, width*height)
	if width <= 0 || height <= 0 {
		return mask
	}

	kernel := CachedGaussianKernel(SigmaFromRadius(radius))
	fx := featherProfile(width, x0, x1, kernel)
	fy := featherProfile(height, y0, y1, kernel)

	for y := 0; y < height; y++ {
		if fy[y] == 0 {
			continue
		}
		row := mask[y*width : (y+1)*width]
		for x := 0; x < width; x++ {
			row[x] = clampUint8(fx[x] * fy[y] * 255)
		}
	}
	return mask
}

// featherProfile convolves the 1D indicator of [lo,hi) over n samples with
// kernel, extending the indicator's edge values past the ends.
func featherProfile(n, lo, hi int, kernel []float32) []float32 {
	inside := func(i int) float32 {
		i = clampInt(i, 0, n-1)
		if i >= lo && i < hi {
			return 1
		}
		return 0
	}

	half := len(kernel) / 2
	out := make([]float32, n)
	for i := 0; i < n; i++ {
		var sum float32
		for k, w := range kernel {
			sum += inside(i+k-half) * w
		}
		if sum > 1 {
			sum = 1
		}
		out[i] = sum
	}
	return out
}
