// Command frames runs the automaton headless and periodically dumps the
// grid as binary PGM files.
package main

import (
	"flag"
	"fmt"
	"log"
	"path/filepath"

	"simplelife/internal/sims/simplelife"
	"simplelife/pkg/pgm"
)

func main() {
	width := flag.Int("w", 200, "grid width")
	height := flag.Int("h", 200, "grid height")
	radius := flag.Int("radius", 13, "kernel radius")
	dt := flag.Float64("dt", 0.05, "time step")
	seed := flag.Int64("seed", 42, "reseed seed")
	steps := flag.Int("steps", 500, "steps to simulate")
	every := flag.Int("every", 20, "save a frame every N steps (0 disables)")
	outDir := flag.String("out", ".", "output directory for frames")
	prefix := flag.String("prefix", "simplelife_frame", "frame file name prefix")
	flag.Parse()

	cfg := simplelife.DefaultConfig()
	cfg.Width = *width
	cfg.Height = *height
	cfg.KernelRadius = *radius
	cfg.Dt = *dt

	world, err := simplelife.NewWithConfig(cfg)
	if err != nil {
		log.Fatal(err)
	}
	world.Reset(*seed)

	total := cfg.Width * cfg.Height
	wasExtinct := false
	frame := 0

	for i := 1; i <= *steps; i++ {
		world.Step()

		if world.Extinct() && !wasExtinct {
			log.Printf("step %d: all cells fell below the activity threshold", i)
		}
		wasExtinct = world.Extinct()

		if *every > 0 && i%*every == 0 {
			frame++
			snap := world.Snapshot()
			path := filepath.Join(*outDir, fmt.Sprintf("%s_%04d.pgm", *prefix, frame))
			nonZero, err := pgm.EncodeFile(path, snap.Width, snap.Height, snap.Values)
			if err != nil {
				log.Fatal(err)
			}
			log.Printf("step %d: saved %s (%d of %d pixels non-zero, %.2f%% cells active)",
				i, path, nonZero, total, 100*float64(world.ActiveCells())/float64(total))
		}
	}
}
