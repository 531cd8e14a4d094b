package simplelife

import (
	"runtime"
	"sync"
)

// parallelWorkFloor is the per-step cell*weight product count below which the
// convolution runs on a single goroutine; small grids lose more to goroutine
// scheduling than they gain.
const parallelWorkFloor = 1 << 21

// computePotential fills w.potential with the wrapped convolution of the
// grid under the kernel. Every output cell is a convex combination of grid
// values, so the potential stays inside [min(grid), max(grid)].
//
// The convolution only reads the pre-step grid and each row writes a disjoint
// slice of the output, so rows can be split across workers without locking.
func (w *World) computePotential() {
	size := 2*w.kernelRadius + 1
	work := w.w * w.h * size * size

	workers := runtime.NumCPU()
	if work < parallelWorkFloor || workers <= 1 {
		w.convolveRows(0, w.h)
		return
	}
	if workers > w.h {
		workers = w.h
	}

	rowsPer := (w.h + workers - 1) / workers
	var wg sync.WaitGroup
	for start := 0; start < w.h; start += rowsPer {
		end := start + rowsPer
		if end > w.h {
			end = w.h
		}
		wg.Add(1)
		go func(y0, y1 int) {
			defer wg.Done()
			w.convolveRows(y0, y1)
		}(start, end)
	}
	wg.Wait()
}

// convolveRows computes potential rows [y0, y1) with toroidal wrapping in
// both axes.
func (w *World) convolveRows(y0, y1 int) {
	width, height := w.w, w.h
	radius := w.kernelRadius
	size := 2*radius + 1
	grid := w.grid.Values()

	for y := y0; y < y1; y++ {
		for x := 0; x < width; x++ {
			var sum float32
			for ky := 0; ky < size; ky++ {
				gy := (y + ky - radius) % height
				if gy < 0 {
					gy += height
				}
				gridRow := gy * width
				kernelRow := ky * size
				for kx := 0; kx < size; kx++ {
					gx := (x + kx - radius) % width
					if gx < 0 {
						gx += width
					}
					sum += grid[gridRow+gx] * w.kernel[kernelRow+kx]
				}
			}
			w.potential[y*width+x] = sum
		}
	}
}
