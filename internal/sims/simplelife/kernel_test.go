package simplelife

import (
	"math"
	"testing"
)

func TestKernelNormalized(t *testing.T) {
	for _, radius := range []int{1, 2, 3, 5, 8, 13} {
		kernel := buildKernel(radius)
		size := 2*radius + 1
		if len(kernel) != size*size {
			t.Fatalf("radius %d: kernel has %d weights, want %d", radius, len(kernel), size*size)
		}

		var sum float64
		for i, w := range kernel {
			if w < 0 {
				t.Fatalf("radius %d: negative weight %g at index %d", radius, w, i)
			}
			sum += float64(w)
		}
		if math.Abs(sum-1) > 1e-5 {
			t.Fatalf("radius %d: kernel sums to %g, want 1", radius, sum)
		}
	}
}

func TestKernelRadialSymmetry(t *testing.T) {
	radius := 3
	kernel := buildKernel(radius)
	size := 2*radius + 1

	at := func(dx, dy int) float32 {
		return kernel[(radius+dy)*size+(radius+dx)]
	}

	for dy := 0; dy <= radius; dy++ {
		for dx := 0; dx <= radius; dx++ {
			base := at(dx, dy)
			if at(-dx, dy) != base || at(dx, -dy) != base || at(-dx, -dy) != base {
				t.Fatalf("kernel not symmetric at offset (%d,%d)", dx, dy)
			}
			// Transposing the offset must not change the weight either.
			if at(dy, dx) != base {
				t.Fatalf("kernel not transpose-symmetric at offset (%d,%d)", dx, dy)
			}
		}
	}
}

func TestKernelCenterIsPeak(t *testing.T) {
	radius := 4
	kernel := buildKernel(radius)
	size := 2*radius + 1
	center := kernel[radius*size+radius]

	for i, w := range kernel {
		if i != radius*size+radius && w > center {
			t.Fatalf("weight %g at index %d exceeds center weight %g", w, i, center)
		}
	}
	if center <= 0 {
		t.Fatalf("center weight %g must be positive", center)
	}
}

func TestKernelZeroBeyondRadius(t *testing.T) {
	radius := 5
	kernel := buildKernel(radius)
	size := 2*radius + 1

	for dy := -radius; dy <= radius; dy++ {
		for dx := -radius; dx <= radius; dx++ {
			dist := math.Sqrt(float64(dx*dx + dy*dy))
			w := kernel[(radius+dy)*size+(radius+dx)]
			if dist >= float64(radius) && w != 0 {
				t.Fatalf("offset (%d,%d) at distance %.2f has weight %g, want 0", dx, dy, dist, w)
			}
			if dist < float64(radius) && w <= 0 {
				t.Fatalf("offset (%d,%d) at distance %.2f has weight %g, want positive", dx, dy, dist, w)
			}
		}
	}
}
