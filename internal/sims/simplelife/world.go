package simplelife

import (
	"fmt"

	"simplelife/internal/core"
	pkgcore "simplelife/pkg/core"
)

// World is a continuous-state cellular automaton on a toroidal grid. Each
// cell holds a value in [0, 1]; every step a normalized radial kernel
// aggregates the neighborhood into a potential, a growth function maps the
// potential to a rate of change, and the result is integrated with explicit
// Euler and clamped.
type World struct {
	cfg Config

	w, h         int
	kernelRadius int
	dt           float32

	growthRate  float32
	growthShift float32
	activeThr   float32

	grid      *core.FloatGrid
	kernel    []float32
	potential []float32
	display   []uint8

	active  int
	extinct bool
}

// New returns a World with the provided dimensions, kernel radius and time
// step, using default growth and seeding parameters.
func New(w, h, kernelRadius int, dt float64) (*World, error) {
	cfg := DefaultConfig()
	cfg.Width = w
	cfg.Height = h
	cfg.KernelRadius = kernelRadius
	cfg.Dt = dt
	return NewWithConfig(cfg)
}

// NewWithConfig returns a World configured from the provided options. The
// grid starts zero-filled; call Reset to seed a starting pattern.
func NewWithConfig(cfg Config) (*World, error) {
	if cfg.Width <= 0 || cfg.Height <= 0 {
		return nil, fmt.Errorf("simplelife: grid dimensions must be positive, got %dx%d", cfg.Width, cfg.Height)
	}
	if cfg.KernelRadius <= 0 {
		return nil, fmt.Errorf("simplelife: kernel radius must be positive, got %d", cfg.KernelRadius)
	}
	if cfg.Dt <= 0 {
		return nil, fmt.Errorf("simplelife: dt must be positive, got %g", cfg.Dt)
	}

	total := cfg.Width * cfg.Height
	w := &World{
		cfg:          cfg,
		w:            cfg.Width,
		h:            cfg.Height,
		kernelRadius: cfg.KernelRadius,
		dt:           float32(cfg.Dt),
		growthRate:   float32(cfg.Params.GrowthRate),
		growthShift:  float32(cfg.Params.GrowthShift),
		activeThr:    float32(cfg.Params.ActiveThreshold),
		grid:         core.NewFloatGrid(cfg.Width, cfg.Height),
		kernel:       buildKernel(cfg.KernelRadius),
		potential:    make([]float32, total),
		display:      make([]uint8, total),
	}
	return w, nil
}

// Name returns the simulation identifier.
func (w *World) Name() string { return "simplelife" }

// Size reports the grid dimensions.
func (w *World) Size() core.Size { return core.Size{W: w.w, H: w.h} }

// Cells exposes the quantized display buffer (value * 255 per cell).
func (w *World) Cells() []uint8 { return w.display }

// Values exposes the raw continuous field.
func (w *World) Values() []float32 { return w.grid.Values() }

// Kernel exposes the normalized convolution weights, side length 2r+1.
func (w *World) Kernel() []float32 { return w.kernel }

// Potential exposes the field computed by the most recent Step.
func (w *World) Potential() []float32 { return w.potential }

// Extinct reports whether the last Step left no cell above the activity
// threshold. It is a reported condition, not an error; stepping an extinct
// grid is valid and keeps it at zero.
func (w *World) Extinct() bool { return w.extinct }

// ActiveCells returns the number of cells above the activity threshold after
// the most recent Step or Reset.
func (w *World) ActiveCells() int { return w.active }

// Reset clears the grid and seeds a fresh starting pattern using
// deterministic randomness derived from the seed. A zero seed falls back to
// the configured one.
func (w *World) Reset(seed int64) {
	effective := seed
	if effective == 0 {
		effective = w.cfg.Seed
	}
	rng := pkgcore.NewRNG(effective)
	w.reseed(rng, effective)
	w.scanActivity()
	w.rebuildDisplay()
}

// Step advances the automaton by one tick: convolve, grow, clamp, and scan
// for extinction.
func (w *World) Step() {
	w.computePotential()

	grid := w.grid.Values()
	for i := range grid {
		v := grid[i] + w.dt*w.growth(w.potential[i])
		if v < 0 {
			v = 0
		} else if v > 1 {
			v = 1
		}
		grid[i] = v
	}

	w.scanActivity()
	w.rebuildDisplay()
}

func (w *World) scanActivity() {
	active := 0
	for _, v := range w.grid.Values() {
		if v > w.activeThr {
			active++
		}
	}
	w.active = active
	w.extinct = active == 0
}

func init() {
	core.Register("simplelife", func(cfg map[string]string) core.Sim {
		w, err := NewWithConfig(FromMap(cfg))
		if err != nil {
			// FromMap only accepts valid values, so this is unreachable
			// unless the defaults themselves are broken.
			panic(err)
		}
		return w
	})
}
