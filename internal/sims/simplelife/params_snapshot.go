package simplelife

import (
	"strconv"

	"simplelife/internal/core"
)

// Parameters reports the current configuration for the HUD panel.
func (w *World) Parameters() core.ParameterSnapshot {
	params := w.cfg.Params
	groups := []core.ParameterGroup{
		{
			Name: "World",
			Params: []core.Parameter{
				intParam("w", "Width", w.cfg.Width),
				intParam("h", "Height", w.cfg.Height),
				int64Param("seed", "Seed", w.cfg.Seed),
			},
		},
		{
			Name: "Engine",
			Params: []core.Parameter{
				intParam("radius", "Kernel radius", w.kernelRadius),
				floatParam("dt", "Time step", float64(w.dt)),
			},
		},
		{
			Name: "Growth",
			Params: []core.Parameter{
				floatParam("growth_rate", "Growth rate", params.GrowthRate),
				floatParam("growth_shift", "Growth shift", params.GrowthShift),
				floatParam("active_threshold", "Active threshold", params.ActiveThreshold),
			},
		},
		{
			Name: "Seeding",
			Params: []core.Parameter{
				floatParam("seed_radius_fraction", "Seed radius fraction", params.SeedRadiusFraction),
				floatParam("seed_density", "Seed density", params.SeedDensity),
				stringParam("seed_mode", "Seed mode", params.SeedMode),
				floatParam("noise_scale", "Noise scale", params.NoiseScale),
			},
		},
	}
	return core.ParameterSnapshot{Groups: groups}
}

// ParameterControls lists the tunables adjustable from the HUD while the
// simulation runs. Only dt is safe to change mid-run; the kernel and grid
// are fixed for the world's lifetime.
func (w *World) ParameterControls() []core.ParameterControl {
	return []core.ParameterControl{
		{
			Key:    "dt",
			Label:  "Time step",
			Type:   core.ParamTypeFloat,
			Step:   0.01,
			Min:    0.01,
			Max:    0.5,
			HasMin: true,
			HasMax: true,
		},
		{
			Key:    "seed_density",
			Label:  "Seed density",
			Type:   core.ParamTypeFloat,
			Step:   0.05,
			Min:    0,
			Max:    1,
			HasMin: true,
			HasMax: true,
		},
	}
}

// SetFloatParameter updates a float tunable by key. It returns false for
// unknown keys or out-of-range values.
func (w *World) SetFloatParameter(key string, value float64) bool {
	switch key {
	case "dt":
		if value <= 0 {
			return false
		}
		w.cfg.Dt = value
		w.dt = float32(value)
		return true
	case "seed_density":
		if value < 0 || value > 1 {
			return false
		}
		w.cfg.Params.SeedDensity = value
		return true
	default:
		return false
	}
}

func intParam(key, label string, value int) core.Parameter {
	return core.Parameter{
		Key:   key,
		Label: label,
		Type:  core.ParamTypeInt,
		Value: strconv.Itoa(value),
	}
}

func int64Param(key, label string, value int64) core.Parameter {
	return core.Parameter{
		Key:   key,
		Label: label,
		Type:  core.ParamTypeInt,
		Value: strconv.FormatInt(value, 10),
	}
}

func floatParam(key, label string, value float64) core.Parameter {
	return core.Parameter{
		Key:   key,
		Label: label,
		Type:  core.ParamTypeFloat,
		Value: strconv.FormatFloat(value, 'f', -1, 64),
	}
}

func stringParam(key, label, value string) core.Parameter {
	return core.Parameter{
		Key:   key,
		Label: label,
		Type:  core.ParamTypeString,
		Value: value,
	}
}
