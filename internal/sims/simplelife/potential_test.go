package simplelife

import (
	"math"
	"testing"

	pkgcore "simplelife/pkg/core"
)

func fillRandom(world *World, seed int64) {
	rng := pkgcore.NewRNG(seed)
	grid := world.Values()
	for i := range grid {
		grid[i] = rng.Float32()
	}
}

func TestPotentialUniformField(t *testing.T) {
	world := testWorld(t, 10, 10, 2, 0.05)
	grid := world.Values()
	for i := range grid {
		grid[i] = 0.5
	}

	world.computePotential()
	for i, u := range world.Potential() {
		if math.Abs(float64(u)-0.5) > 1e-5 {
			t.Fatalf("cell %d: potential %g on a uniform 0.5 field, want 0.5", i, u)
		}
	}
}

func TestPotentialConvexBounds(t *testing.T) {
	world := testWorld(t, 24, 16, 3, 0.05)
	fillRandom(world, 7)

	lo, hi := float32(1), float32(0)
	for _, v := range world.Values() {
		if v < lo {
			lo = v
		}
		if v > hi {
			hi = v
		}
	}

	world.computePotential()
	for i, u := range world.Potential() {
		if u < lo-1e-5 || u > hi+1e-5 {
			t.Fatalf("cell %d: potential %g escapes grid range [%g, %g]", i, u, lo, hi)
		}
	}
}

func TestPotentialTranslationInvariance(t *testing.T) {
	const w, h = 20, 14
	base := testWorld(t, w, h, 3, 0.05)
	fillRandom(base, 11)
	base.computePotential()
	basePotential := append([]float32(nil), base.Potential()...)

	// Shift the whole grid one column right and one row down; on a torus the
	// potential must shift the same way.
	shifted := testWorld(t, w, h, 3, 0.05)
	src := base.Values()
	dst := shifted.Values()
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			dst[((y+1)%h)*w+(x+1)%w] = src[y*w+x]
		}
	}
	shifted.computePotential()

	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			want := basePotential[y*w+x]
			got := shifted.Potential()[((y+1)%h)*w+(x+1)%w]
			if math.Abs(float64(want-got)) > 1e-5 {
				t.Fatalf("cell (%d,%d): shifted potential %g, want %g", x, y, got, want)
			}
		}
	}
}

func TestPotentialParallelMatchesSerial(t *testing.T) {
	// Large enough that computePotential takes the worker path.
	world := testWorld(t, 200, 120, 5, 0.05)
	fillRandom(world, 23)

	world.convolveRows(0, 120)
	serial := append([]float32(nil), world.Potential()...)

	world.computePotential()
	for i, u := range world.Potential() {
		if u != serial[i] {
			t.Fatalf("cell %d: parallel potential %g differs from serial %g", i, u, serial[i])
		}
	}
}
