//go:build ebiten

package ui

import (
	"simplelife/internal/core"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

type potentialProvider interface {
	Potential() []float32
}

// Overlay draws optional debugging visuals on top of the base simulation.
// Key 1 toggles a heatmap of the convolution potential.
type Overlay struct {
	sim   core.Sim
	scale int

	showPotential bool
	heatImg       *ebiten.Image
	heatBuf       []byte
}

// NewOverlay constructs a new overlay instance.
func NewOverlay(sim core.Sim, scale int) *Overlay {
	return &Overlay{sim: sim, scale: scale}
}

// Update handles overlay toggle input.
func (o *Overlay) Update() {
	if inpututil.IsKeyJustPressed(ebiten.KeyDigit1) {
		o.showPotential = !o.showPotential
	}
}

// Draw renders the overlay onto the provided screen.
func (o *Overlay) Draw(screen *ebiten.Image) {
	if !o.showPotential {
		return
	}
	provider, ok := o.sim.(potentialProvider)
	if !ok {
		return
	}
	size := o.sim.Size()
	total := size.W * size.H
	if total == 0 {
		return
	}

	field := provider.Potential()
	if len(field) != total {
		return
	}

	if o.heatImg == nil || o.heatImg.Bounds().Dx() != size.W || o.heatImg.Bounds().Dy() != size.H {
		o.heatImg = ebiten.NewImage(size.W, size.H)
		o.heatBuf = make([]byte, 4*total)
	}

	for i, v := range field {
		if v < 0 {
			v = 0
		} else if v > 1 {
			v = 1
		}
		alpha := uint8(v * 200)
		base := i * 4
		o.heatBuf[base+0] = alpha
		o.heatBuf[base+1] = uint8(v * 60)
		o.heatBuf[base+2] = 0
		o.heatBuf[base+3] = alpha
	}
	o.heatImg.WritePixels(o.heatBuf)

	scale := o.scale
	if scale <= 0 {
		scale = 1
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(scale), float64(scale))
	screen.DrawImage(o.heatImg, op)
}
