package filter

import (
	"math"
	"sync"
)

// gimpRadiusScale is sqrt(2 * ln(255)): the distance, in standard
// deviations, at which a Gaussian falls to 1/255 of its peak.
var gimpRadiusScale = math.Sqrt(2 * math.Log(255))

// SigmaFromRadius converts an edge radius (the distance over which a
// Gaussian falloff reaches 1/255) into a standard deviation.
func SigmaFromRadius(radius float64) float64 {
	if radius <= 0 {
		return 0
	}
	return radius / gimpRadiusScale
}

// SigmaFromBlurRadius converts a blur radius into a standard deviation.
// The radius is widened by one pixel first, so a radius of 1.0 still
// reaches the immediate neighbours.
func SigmaFromBlurRadius(radius float64) float64 {
	if radius <= 0 {
		return 0
	}
	return SigmaFromRadius(math.Abs(radius) + 1)
}

// GaussianKernel generates a 1D Gaussian kernel for the given sigma.
// The kernel is normalized so all values sum to 1.0.
//
// The kernel size is computed as 2 * ceil(sigma * 3) + 1, which covers
// 99.7% of the Gaussian distribution (3 standard deviations).
//
// For sigma <= 0, returns a single-element kernel [1.0] (identity).
func GaussianKernel(sigma float64) []float32 {
	if sigma <= 0 {
		return []float32{1.0}
	}

	halfSize := int(math.Ceil(sigma * 3))
	size := halfSize*2 + 1

	kernel := make([]float32, size)

	// G(x) = exp(-x²/(2σ²)); the constant factor is dropped by normalization.
	twoSigmaSq := 2 * sigma * sigma
	sum := float64(0)

	for i := 0; i < size; i++ {
		x := float64(i - halfSize)
		val := math.Exp(-(x * x) / twoSigmaSq)
		kernel[i] = float32(val)
		sum += val
	}

	if sum > 0 {
		invSum := float32(1.0 / sum)
		for i := range kernel {
			kernel[i] *= invSum
		}
	}

	return kernel
}

// kernelCache caches computed Gaussian kernels to avoid recomputation.
// Key is sigma * 1000, value is kernel.
type kernelCache struct {
	mu     sync.RWMutex
	cache  map[int][]float32
	maxLen int
}

var defaultKernelCache = newKernelCache(16)

// newKernelCache creates a kernel cache with the given maximum entries.
func newKernelCache(maxLen int) *kernelCache {
	return &kernelCache{
		cache:  make(map[int][]float32),
		maxLen: maxLen,
	}
}

// get retrieves a kernel from cache or generates and caches it.
func (c *kernelCache) get(sigma float64) []float32 {
	key := int(math.Round(sigma * 1000))

	c.mu.RLock()
	if kernel, ok := c.cache[key]; ok {
		c.mu.RUnlock()
		return kernel
	}
	c.mu.RUnlock()

	kernel := GaussianKernel(float64(key) / 1000)

	c.mu.Lock()
	if len(c.cache) >= c.maxLen {
		for k := range c.cache {
			delete(c.cache, k)
		}
	}
	c.cache[key] = kernel
	c.mu.Unlock()

	return kernel
}

// CachedGaussianKernel returns a cached Gaussian kernel for sigma.
// Sigma is quantized to 0.001 so equal inputs always share one kernel.
func CachedGaussianKernel(sigma float64) []float32 {
	return defaultKernelCache.get(sigma)
}
