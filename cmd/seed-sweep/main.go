// Command seed-sweep searches the seeding and integration parameter space
// for configurations whose patterns survive the longest, running scenarios
// across a worker pool and ranking the results.
package main

import (
	"flag"
	"fmt"
	"log"
	"runtime"
	"sort"
	"sync"
	"time"

	"simplelife/internal/sims/simplelife"
)

type paramSet struct {
	density  float64
	fraction float64
	dt       float64
	mode     string
}

func (p paramSet) String() string {
	return fmt.Sprintf("density=%.2f fraction=%.2f dt=%.3f mode=%s", p.density, p.fraction, p.dt, p.mode)
}

type scenarioResult struct {
	params         paramSet
	survivedSteps  int
	extinct        bool
	finalActivePct float64
	peakActivePct  float64
}

func main() {
	steps := flag.Int("steps", 400, "ticks to simulate per scenario")
	width := flag.Int("w", 100, "grid width")
	height := flag.Int("h", 100, "grid height")
	radius := flag.Int("radius", 13, "kernel radius")
	seed := flag.Int64("seed", 42, "reseed seed")
	workers := flag.Int("workers", runtime.NumCPU(), "number of worker goroutines")
	flag.Parse()

	densityOptions := []float64{0.2, 0.3, 0.4}
	fractionOptions := []float64{0.2, 0.3, 0.4}
	dtOptions := []float64{0.03, 0.05, 0.08}
	modeOptions := []string{simplelife.SeedModeUniform, simplelife.SeedModeNoise}

	var sets []paramSet
	for _, density := range densityOptions {
		for _, fraction := range fractionOptions {
			for _, dt := range dtOptions {
				for _, mode := range modeOptions {
					sets = append(sets, paramSet{density: density, fraction: fraction, dt: dt, mode: mode})
				}
			}
		}
	}

	log.Printf("sweeping %d scenarios across %d workers", len(sets), *workers)
	start := time.Now()

	jobs := make(chan paramSet)
	results := make(chan scenarioResult)

	var wg sync.WaitGroup
	for i := 0; i < *workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for set := range jobs {
				results <- runScenario(set, *width, *height, *radius, *seed, *steps)
			}
		}()
	}
	go func() {
		for _, set := range sets {
			jobs <- set
		}
		close(jobs)
		wg.Wait()
		close(results)
	}()

	var collected []scenarioResult
	for res := range results {
		collected = append(collected, res)
	}

	sort.Slice(collected, func(i, j int) bool {
		if collected[i].survivedSteps != collected[j].survivedSteps {
			return collected[i].survivedSteps > collected[j].survivedSteps
		}
		return collected[i].finalActivePct > collected[j].finalActivePct
	})

	log.Printf("sweep finished in %s", time.Since(start).Round(time.Millisecond))
	for i, res := range collected {
		if i >= 10 {
			break
		}
		status := "alive"
		if res.extinct {
			status = fmt.Sprintf("extinct@%d", res.survivedSteps)
		}
		fmt.Printf("%2d. %s  %s  final=%.2f%% peak=%.2f%%\n",
			i+1, res.params, status, res.finalActivePct, res.peakActivePct)
	}
}

func runScenario(set paramSet, width, height, radius int, seed int64, steps int) scenarioResult {
	cfg := simplelife.DefaultConfig()
	cfg.Width = width
	cfg.Height = height
	cfg.KernelRadius = radius
	cfg.Dt = set.dt
	cfg.Params.SeedDensity = set.density
	cfg.Params.SeedRadiusFraction = set.fraction
	cfg.Params.SeedMode = set.mode

	world, err := simplelife.NewWithConfig(cfg)
	if err != nil {
		log.Fatal(err)
	}
	world.Reset(seed)

	total := float64(width * height)
	result := scenarioResult{params: set, survivedSteps: steps}

	for i := 1; i <= steps; i++ {
		world.Step()
		activePct := 100 * float64(world.ActiveCells()) / total
		if activePct > result.peakActivePct {
			result.peakActivePct = activePct
		}
		if world.Extinct() {
			result.extinct = true
			result.survivedSteps = i
			break
		}
	}
	result.finalActivePct = 100 * float64(world.ActiveCells()) / total
	return result
}
