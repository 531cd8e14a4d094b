//go:build ebiten

package app

import (
	"fmt"
	"image/color"
	"log"
	"time"

	"simplelife/internal/core"
	"simplelife/internal/render"
	"simplelife/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

type paletteProvider interface {
	Palette() []color.RGBA
}

type censusProvider interface {
	ActiveCells() int
	Extinct() bool
}

// Game adapts a core simulation to the ebiten.Game interface.
type Game struct {
	sim     core.Sim
	painter *render.GridPainter
	overlay *ui.Overlay
	hud     *ui.HUD
	meter   *core.StepMeter

	palette  []color.RGBA
	scale    int
	hudWidth int

	paused     bool
	tickOnce   bool
	seed       int64
	wasExtinct bool
}

// New constructs a Game for the provided simulation.
func New(sim core.Sim, scale, hudWidth int, seed int64) *Game {
	size := sim.Size()
	g := &Game{
		sim:      sim,
		painter:  render.NewGridPainter(size.W, size.H),
		overlay:  ui.NewOverlay(sim, scale),
		hud:      ui.NewHUD(sim, hudWidth),
		meter:    core.NewStepMeter(),
		scale:    scale,
		hudWidth: hudWidth,
		seed:     seed,
	}
	if provider, ok := sim.(paletteProvider); ok {
		g.palette = provider.Palette()
	}
	return g
}

// Reset reinitializes the simulation state with the provided seed.
func (g *Game) Reset(seed int64) {
	g.seed = seed
	g.sim.Reset(seed)
	g.tickOnce = false
	g.wasExtinct = false
}

// Update handles per-frame logic and advances the simulation.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.paused = !g.paused
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEnter) {
		g.paused = false
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyN) {
		g.tickOnce = true
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.Reset(g.seed)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyS) {
		g.Reset(time.Now().UnixNano())
	}

	if g.overlay != nil {
		g.overlay.Update()
	}
	if g.hud != nil {
		g.hud.Update()
	}

	if (!g.paused) || g.tickOnce {
		g.sim.Step()
		g.tickOnce = false
		g.afterStep()
	}
	return nil
}

// afterStep updates the rate readout and reports extinction transitions.
func (g *Game) afterStep() {
	census, ok := g.sim.(censusProvider)
	if ok {
		extinct := census.Extinct()
		if extinct && !g.wasExtinct {
			log.Printf("all cells fell below the activity threshold; press R or S to reseed")
		}
		g.wasExtinct = extinct
	}

	if g.meter.Tick() {
		title := fmt.Sprintf("simplelife — %.1f steps/s", g.meter.Rate())
		if ok {
			size := g.sim.Size()
			total := size.W * size.H
			if total > 0 {
				title += fmt.Sprintf(" — %.2f%% active", 100*float64(census.ActiveCells())/float64(total))
			}
		}
		ebiten.SetWindowTitle(title)
	}
}

// Draw renders the current simulation state.
func (g *Game) Draw(screen *ebiten.Image) {
	g.painter.Blit(screen, g.sim.Cells(), g.palette, g.scale)
	if g.overlay != nil {
		g.overlay.Draw(screen)
	}
	if g.hud != nil {
		size := g.sim.Size()
		g.hud.Draw(screen, size.W*g.scale, size.H*g.scale)
	}
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	s := g.sim.Size()
	return s.W*g.scale + g.hudWidth, s.H * g.scale
}
