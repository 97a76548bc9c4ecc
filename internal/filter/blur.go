package filter

import "sync"

// Blur applies a separable Gaussian blur to a premultiplied RGBA8 buffer
// in place. Sigmas are standard deviations; a sigma <= 0 skips that axis.
// Samples beyond the buffer edge repeat the edge pixel.
//
// Blurring premultiplied values keeps transparent pixels from bleeding
// their (meaningless) color into opaque neighbours.
func Blur(pix []uint8, width, height int, sigmaX, sigmaY float64) {
	if width <= 0 || height <= 0 || len(pix) < width*height*4 {
		return
	}
	if sigmaX <= 0 && sigmaY <= 0 {
		return
	}

	temp := getTempBuffer(width, height)
	defer putTempBuffer(temp)

	kernelX := CachedGaussianKernel(sigmaX)
	kernelY := CachedGaussianKernel(sigmaY)

	// Pass 1: horizontal (pix -> temp)
	blurHorizontal(pix, temp, width, height, kernelX)

	// Pass 2: vertical (temp -> pix)
	blurVertical(temp, pix, width, height, kernelY)
}

// blurHorizontal applies 1D horizontal convolution.
// Reads from src, writes to temp buffer.
func blurHorizontal(src []uint8, temp []float32, width, height int, kernel []float32) {
	kernelSize := len(kernel)
	halfKernel := kernelSize / 2

	for y := 0; y < height; y++ {
		row := y * width
		for x := 0; x < width; x++ {
			var r, g, b, a float32

			for k := 0; k < kernelSize; k++ {
				kx := clampInt(x+k-halfKernel, 0, width-1)
				srcIdx := (row + kx) * 4
				weight := kernel[k]

				r += float32(src[srcIdx+0]) * weight
				g += float32(src[srcIdx+1]) * weight
				b += float32(src[srcIdx+2]) * weight
				a += float32(src[srcIdx+3]) * weight
			}

			tempIdx := (row + x) * 4
			temp[tempIdx+0] = r
			temp[tempIdx+1] = g
			temp[tempIdx+2] = b
			temp[tempIdx+3] = a
		}
	}
}

// blurVertical applies 1D vertical convolution.
// Reads from temp buffer, writes to dst.
func blurVertical(temp []float32, dst []uint8, width, height int, kernel []float32) {
	kernelSize := len(kernel)
	halfKernel := kernelSize / 2

	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			var r, g, b, a float32

			for k := 0; k < kernelSize; k++ {
				ky := clampInt(y+k-halfKernel, 0, height-1)
				tempIdx := (ky*width + x) * 4
				weight := kernel[k]

				r += temp[tempIdx+0] * weight
				g += temp[tempIdx+1] * weight
				b += temp[tempIdx+2] * weight
				a += temp[tempIdx+3] * weight
			}

			// Premultiplied color never exceeds alpha.
			dstIdx := (y*width + x) * 4
			alpha := clampUint8(a)
			dst[dstIdx+0] = minUint8(clampUint8(r), alpha)
			dst[dstIdx+1] = minUint8(clampUint8(g), alpha)
			dst[dstIdx+2] = minUint8(clampUint8(b), alpha)
			dst[dstIdx+3] = alpha
		}
	}
}

// floatBuffer wraps a slice for sync.Pool to avoid allocation warnings.
type floatBuffer struct {
	data []float32
}

// Temporary buffer pool for blur operations, sized for one 720x576 frame.
var tempBufferPool = sync.Pool{
	New: func() interface{} {
		return &floatBuffer{data: make([]float32, 720*576*4)}
	},
}

// getTempBuffer retrieves a temporary buffer from the pool.
// The buffer is guaranteed to have at least width*height*4 elements.
func getTempBuffer(width, height int) []float32 {
	size := width * height * 4
	wrapper := tempBufferPool.Get().(*floatBuffer)

	if len(wrapper.data) < size {
		tempBufferPool.Put(wrapper)
		return make([]float32, size)
	}

	return wrapper.data[:size]
}

// putTempBuffer returns a temporary buffer to the pool.
func putTempBuffer(buf []float32) {
	if cap(buf) <= 16*1024*1024 {
		tempBufferPool.Put(&floatBuffer{data: buf[:cap(buf)]})
	}
}

// clampInt clamps an integer to [minVal, maxVal].
func clampInt(v, minVal, maxVal int) int {
	if v < minVal {
		return minVal
	}
	if v > maxVal {
		return maxVal
	}
	return v
}

// clampUint8 clamps a float32 to [0, 255] and converts to uint8.
func clampUint8(v float32) uint8 {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return uint8(v + 0.5) // Round to nearest
}

func minUint8(a, b uint8) uint8 {
	if a < b {
		return a
	}
	return b
}
