package simplelife

import "math"

// buildKernel constructs a normalized (2r+1)x(2r+1) convolution kernel with
// linear radial falloff: weight 1 at the center, 0 at euclidean distance r
// and beyond. The weights are scaled so they sum to 1, which keeps the
// convolution a convex combination of cell values.
func buildKernel(radius int) []float32 {
	size := 2*radius + 1
	kernel := make([]float32, size*size)

	var sum float32
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			dx := float64(x - radius)
			dy := float64(y - radius)
			dist := math.Sqrt(dx*dx + dy*dy)
			value := float32(math.Max(0, 1-dist/float64(radius)))
			kernel[y*size+x] = value
			sum += value
		}
	}

	for i := range kernel {
		kernel[i] /= sum
	}
	return kernel
}
