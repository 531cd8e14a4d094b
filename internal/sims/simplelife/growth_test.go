package simplelife

import (
	"math"
	"testing"
)

func testWorld(t *testing.T, w, h, radius int, dt float64) *World {
	t.Helper()
	cfg := DefaultConfig()
	cfg.Width = w
	cfg.Height = h
	cfg.KernelRadius = radius
	cfg.Dt = dt
	world, err := NewWithConfig(cfg)
	if err != nil {
		t.Fatalf("NewWithConfig: %v", err)
	}
	return world
}

func TestGrowthSymmetricAboutHalf(t *testing.T) {
	world := testWorld(t, 10, 10, 1, 0.05)
	for _, d := range []float32{0.1, 0.25, 0.4, 0.5} {
		lo := world.growth(0.5 - d)
		hi := world.growth(0.5 + d)
		if math.Abs(float64(lo-hi)) > 1e-6 {
			t.Fatalf("growth(0.5-%g)=%g but growth(0.5+%g)=%g", d, lo, d, hi)
		}
	}
}

func TestGrowthPeakAtHalf(t *testing.T) {
	world := testWorld(t, 10, 10, 1, 0.05)

	peak := world.growth(0.5)
	if math.Abs(float64(peak)-0.25) > 1e-6 {
		t.Fatalf("growth(0.5) = %g, want 0.25", peak)
	}

	for u := float32(0); u <= 1; u += 0.01 {
		if g := world.growth(u); g > peak+1e-6 {
			t.Fatalf("growth(%g) = %g exceeds the peak %g", u, g, peak)
		}
	}
}

func TestGrowthNegativeOutsideAliveBand(t *testing.T) {
	world := testWorld(t, 10, 10, 1, 0.05)

	if g := world.growth(0); g != -0.2 {
		t.Fatalf("growth(0) = %g, want -0.2", g)
	}
	if g := world.growth(1); math.Abs(float64(g)+0.2) > 1e-6 {
		t.Fatalf("growth(1) = %g, want -0.2", g)
	}
	// The band edges sit where 1.8*u*(1-u) = 0.2.
	if g := world.growth(0.06); g >= 0 {
		t.Fatalf("growth(0.06) = %g, want negative", g)
	}
	if g := world.growth(0.94); g >= 0 {
		t.Fatalf("growth(0.94) = %g, want negative", g)
	}
	if g := world.growth(0.3); g <= 0 {
		t.Fatalf("growth(0.3) = %g, want positive", g)
	}
}
