//go:build ebiten

package ui

import (
	"fmt"
	"image/color"
	"strconv"

	"simplelife/internal/core"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"
)

type parameterProvider interface {
	Parameters() core.ParameterSnapshot
}

const (
	hudLineHeight = 14
	hudPadding    = 8
)

// HUD renders the parameter panel to the right of the simulation view.
// Tab cycles the selected control; the minus and equal keys nudge it down
// and up by its step.
type HUD struct {
	sim        core.Sim
	width      int
	panel      *ebiten.Image
	lastHeight int
	snapshot   core.ParameterSnapshot

	controls    []core.ParameterControl
	values      []float64
	selected    int
	floatSetter core.FloatParameterSetter
}

// NewHUD constructs a HUD for the provided simulation and panel width. A
// zero width disables the panel entirely.
func NewHUD(sim core.Sim, width int) *HUD {
	if width <= 0 {
		return nil
	}
	h := &HUD{sim: sim, width: width}
	if provider, ok := sim.(core.ParameterControlsProvider); ok {
		h.controls = provider.ParameterControls()
		h.values = make([]float64, len(h.controls))
	}
	if setter, ok := sim.(core.FloatParameterSetter); ok {
		h.floatSetter = setter
	}
	return h
}

// Update refreshes the cached parameter snapshot and handles HUD input.
func (h *HUD) Update() {
	if h == nil {
		return
	}
	provider, ok := h.sim.(parameterProvider)
	if !ok {
		h.snapshot = core.ParameterSnapshot{}
		return
	}
	h.snapshot = provider.Parameters()
	h.refreshControlValues()
	h.handleInput()
}

// Draw paints the HUD panel anchored at offsetX on the screen.
func (h *HUD) Draw(screen *ebiten.Image, offsetX, height int) {
	if h == nil || h.width <= 0 || height <= 0 {
		return
	}
	if h.panel == nil || h.panel.Bounds().Dx() != h.width || h.lastHeight != height {
		h.panel = ebiten.NewImage(h.width, height)
		h.lastHeight = height
	}
	h.panel.Fill(color.RGBA{R: 16, G: 16, B: 20, A: 255})

	y := hudPadding + hudLineHeight
	face := basicfont.Face7x13
	for _, group := range h.snapshot.Groups {
		text.Draw(h.panel, group.Name, face, hudPadding, y, color.RGBA{R: 220, G: 220, B: 160, A: 255})
		y += hudLineHeight
		for _, param := range group.Params {
			line := fmt.Sprintf("%s: %s", param.Label, param.Value)
			text.Draw(h.panel, line, face, hudPadding+6, y, color.White)
			y += hudLineHeight
		}
		y += hudLineHeight / 2
	}

	if len(h.controls) > 0 {
		y += hudLineHeight / 2
		text.Draw(h.panel, "Tune (tab, -/=)", face, hudPadding, y, color.RGBA{R: 220, G: 220, B: 160, A: 255})
		y += hudLineHeight
		for i, ctrl := range h.controls {
			marker := " "
			if i == h.selected {
				marker = ">"
			}
			line := fmt.Sprintf("%s %s: %s", marker, ctrl.Label, formatControlValue(ctrl, h.values[i]))
			text.Draw(h.panel, line, face, hudPadding, y, color.White)
			y += hudLineHeight
		}
	}

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(float64(offsetX), 0)
	screen.DrawImage(h.panel, op)
}

func (h *HUD) refreshControlValues() {
	if len(h.controls) == 0 {
		return
	}
	paramMap := map[string]core.Parameter{}
	for _, group := range h.snapshot.Groups {
		for _, param := range group.Params {
			paramMap[param.Key] = param
		}
	}
	for i, ctrl := range h.controls {
		param, ok := paramMap[ctrl.Key]
		if !ok {
			continue
		}
		if parsed, err := strconv.ParseFloat(param.Value, 64); err == nil {
			h.values[i] = parsed
		}
	}
}

func (h *HUD) handleInput() {
	if len(h.controls) == 0 || h.floatSetter == nil {
		return
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyTab) {
		h.selected = (h.selected + 1) % len(h.controls)
	}
	direction := 0
	if inpututil.IsKeyJustPressed(ebiten.KeyMinus) {
		direction = -1
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEqual) {
		direction = 1
	}
	if direction == 0 {
		return
	}

	ctrl := h.controls[h.selected]
	target := h.values[h.selected] + float64(direction)*ctrl.Step
	if ctrl.HasMin && target < ctrl.Min {
		target = ctrl.Min
	}
	if ctrl.HasMax && target > ctrl.Max {
		target = ctrl.Max
	}
	if h.floatSetter.SetFloatParameter(ctrl.Key, target) {
		h.values[h.selected] = target
	}
}

func formatControlValue(ctrl core.ParameterControl, v float64) string {
	if ctrl.Step >= 1 {
		return strconv.FormatFloat(v, 'f', 0, 64)
	}
	return strconv.FormatFloat(v, 'f', 3, 64)
}
