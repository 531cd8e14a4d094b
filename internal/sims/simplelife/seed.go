package simplelife

import (
	"math"

	"github.com/aquilax/go-perlin"

	pkgcore "simplelife/pkg/core"
)

const (
	perlinAlpha   = 2
	perlinBeta    = 2
	perlinOctaves = 3

	stampValue = 0.9
	stampCount = 5
	stampPitch = 10
)

// reseed clears the grid and paints a fresh starting pattern: a randomized
// density field inside a disc around the center, plus a diagonal line of
// fixed 2x2 blocks on grids larger than 50x50. The blocks are deterministic
// seed structures; the field depends on the injected random source.
func (w *World) reseed(rng *pkgcore.RNG, seed int64) {
	w.grid.Clear()

	cx := w.w / 2
	cy := w.h / 2
	maxR := float64(int(float64(min(w.w, w.h)) * w.cfg.Params.SeedRadiusFraction))
	density := w.cfg.Params.SeedDensity
	grid := w.grid.Values()

	var noise *perlin.Perlin
	if w.cfg.Params.SeedMode == SeedModeNoise {
		noise = perlin.NewPerlin(perlinAlpha, perlinBeta, perlinOctaves, seed)
	}

	for y := 0; y < w.h; y++ {
		for x := 0; x < w.w; x++ {
			dx := float64(x - cx)
			dy := float64(y - cy)
			if math.Sqrt(dx*dx+dy*dy) >= maxR {
				continue
			}

			var r float64
			if noise != nil {
				r = noiseSample(noise, x, y, w.cfg.Params.NoiseScale)
			} else {
				r = rng.Float64()
			}

			switch {
			case r < density:
				grid[y*w.w+x] = float32(r*0.5 + 0.3)
			case r < density+0.2:
				grid[y*w.w+x] = float32(r * 0.3)
			}
		}
	}

	w.stampBlocks(cx, cy)
}

// noiseSample maps Perlin noise at the cell into [0, 1].
func noiseSample(noise *perlin.Perlin, x, y int, scale float64) float64 {
	n := (noise.Noise2D(float64(x)*scale, float64(y)*scale) + 1) / 2
	if n < 0 {
		return 0
	}
	if n > 1 {
		return 1
	}
	return n
}

// stampBlocks places five 2x2 blocks of high-value cells along the main
// diagonal through the center, 10 cells apart. Blocks that would land within
// 2 cells of a border are skipped, not clipped. Grids of 50 cells or fewer
// on either axis get no blocks.
func (w *World) stampBlocks(cx, cy int) {
	if w.w <= 50 || w.h <= 50 {
		return
	}
	grid := w.grid.Values()
	for i := 0; i < stampCount; i++ {
		bx := cx + (i-stampCount/2)*stampPitch
		by := cy + (i-stampCount/2)*stampPitch
		if bx <= 2 || bx >= w.w-2 || by <= 2 || by >= w.h-2 {
			continue
		}
		for yi := 0; yi < 2; yi++ {
			for xi := 0; xi < 2; xi++ {
				grid[(by+yi)*w.w+(bx+xi)] = stampValue
			}
		}
	}
}
