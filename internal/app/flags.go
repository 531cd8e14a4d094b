package app

import (
	"flag"
	"strconv"
)

// Config represents the command-line parameters for the interactive viewer.
type Config struct {
	Sim      string
	Scale    int
	TPS      int
	Seed     int64
	HUDWidth int

	Width        int
	Height       int
	KernelRadius int
	Dt           float64
	SeedMode     string
}

// NewConfig returns a Config populated with sensible defaults. Zero values
// for the simulation options defer to the sim's own defaults.
func NewConfig() *Config {
	return &Config{Sim: "simplelife", Scale: 2, TPS: 60, Seed: 42, HUDWidth: 220}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.StringVar(&c.Sim, "sim", c.Sim, "simulation to run")
	fs.IntVar(&c.Scale, "scale", c.Scale, "pixel scale multiplier")
	fs.IntVar(&c.TPS, "tps", c.TPS, "ticks per second")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "seed for simulation reset")
	fs.IntVar(&c.HUDWidth, "hud", c.HUDWidth, "parameter panel width in pixels (0 disables)")
	fs.IntVar(&c.Width, "w", c.Width, "grid width (0 uses the sim default)")
	fs.IntVar(&c.Height, "h", c.Height, "grid height (0 uses the sim default)")
	fs.IntVar(&c.KernelRadius, "radius", c.KernelRadius, "kernel radius (0 uses the sim default)")
	fs.Float64Var(&c.Dt, "dt", c.Dt, "time step (0 uses the sim default)")
	fs.StringVar(&c.SeedMode, "seed-mode", c.SeedMode, "reseed mode: uniform or noise")
}

// SimOptions converts the set simulation options to the string map consumed
// by sim factories. Unset options are omitted.
func (c *Config) SimOptions() map[string]string {
	opts := map[string]string{}
	if c.Width > 0 {
		opts["w"] = strconv.Itoa(c.Width)
	}
	if c.Height > 0 {
		opts["h"] = strconv.Itoa(c.Height)
	}
	if c.KernelRadius > 0 {
		opts["radius"] = strconv.Itoa(c.KernelRadius)
	}
	if c.Dt > 0 {
		opts["dt"] = strconv.FormatFloat(c.Dt, 'f', -1, 64)
	}
	if c.SeedMode != "" {
		opts["seed_mode"] = c.SeedMode
	}
	opts["seed"] = strconv.FormatInt(c.Seed, 10)
	return opts
}
