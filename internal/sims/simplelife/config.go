package simplelife

import "strconv"

// Seeding modes accepted by the reseed step.
const (
	SeedModeUniform = "uniform"
	SeedModeNoise   = "noise"
)

// Params holds the tunable constants of the growth dynamic and the reseed
// heuristic. The growth constants and activity threshold are empirically
// tuned; changing them changes which patterns survive.
type Params struct {
	GrowthRate      float64
	GrowthShift     float64
	ActiveThreshold float64

	SeedRadiusFraction float64
	SeedDensity        float64
	SeedMode           string
	NoiseScale         float64
}

// Config controls the simulation dimensions and integration step.
type Config struct {
	Width        int
	Height       int
	KernelRadius int
	Dt           float64

	Seed int64

	Params Params
}

// DefaultConfig returns the standard configuration.
func DefaultConfig() Config {
	return Config{
		Width:        400,
		Height:       400,
		KernelRadius: 13,
		Dt:           0.05,
		Seed:         1337,
		Params: Params{
			GrowthRate:         1.8,
			GrowthShift:        0.2,
			ActiveThreshold:    0.01,
			SeedRadiusFraction: 0.3,
			SeedDensity:        0.3,
			SeedMode:           SeedModeUniform,
			NoiseScale:         0.08,
		},
	}
}

// FromMap populates the config from a string map (flag-style key/value pairs).
func FromMap(cfg map[string]string) Config {
	c := DefaultConfig()
	if cfg == nil {
		return c
	}
	if v, ok := cfg["w"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Width = parsed
		}
	}
	if v, ok := cfg["h"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Height = parsed
		}
	}
	if v, ok := cfg["radius"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.KernelRadius = parsed
		}
	}
	if v, ok := cfg["dt"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil && parsed > 0 {
			c.Dt = parsed
		}
	}
	if v, ok := cfg["seed"]; ok {
		if parsed, err := strconv.ParseInt(v, 10, 64); err == nil {
			c.Seed = parsed
		}
	}
	if v, ok := cfg["growth_rate"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil {
			c.Params.GrowthRate = parsed
		}
	}
	if v, ok := cfg["growth_shift"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil {
			c.Params.GrowthShift = parsed
		}
	}
	if v, ok := cfg["active_threshold"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil && parsed >= 0 {
			c.Params.ActiveThreshold = parsed
		}
	}
	if v, ok := cfg["seed_radius_fraction"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil && parsed >= 0 && parsed <= 1 {
			c.Params.SeedRadiusFraction = parsed
		}
	}
	if v, ok := cfg["seed_density"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil && parsed >= 0 && parsed <= 1 {
			c.Params.SeedDensity = parsed
		}
	}
	if v, ok := cfg["seed_mode"]; ok {
		if v == SeedModeUniform || v == SeedModeNoise {
			c.Params.SeedMode = v
		}
	}
	if v, ok := cfg["noise_scale"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil && parsed > 0 {
			c.Params.NoiseScale = parsed
		}
	}
	return c
}
