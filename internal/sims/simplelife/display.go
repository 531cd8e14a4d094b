package simplelife

import "image/color"

var rampPalette = buildRampPalette()

// Palette exposes the 256-entry color ramp matching the quantized display
// buffer: black through blue, with a warm tint on high-density cells.
func (w *World) Palette() []color.RGBA {
	return rampPalette
}

func buildRampPalette() []color.RGBA {
	palette := make([]color.RGBA, 256)
	for i := range palette {
		v := float32(i) / 255
		r, g, b := rampColor(v)
		palette[i] = color.RGBA{R: r, G: g, B: b, A: 255}
	}
	return palette
}

// rampColor maps a cell value in [0, 1] to its display color. Blue tracks
// the value linearly; green and red rise with the square and cube so only
// dense regions pick up the warm tint.
func rampColor(v float32) (r, g, b uint8) {
	b = uint8(v * 255)
	g = uint8(v * v * 100)
	r = uint8(v * v * v * 50)
	return r, g, b
}

// RenderBuffer packs the current field into one 24-bit 0xRRGGBB value per
// cell, row-major, for display consumers. Pure view transform; simulation
// state is untouched.
func (w *World) RenderBuffer() []uint32 {
	grid := w.grid.Values()
	buf := make([]uint32, len(grid))
	for i, v := range grid {
		r, g, b := rampColor(v)
		buf[i] = uint32(r)<<16 | uint32(g)<<8 | uint32(b)
	}
	return buf
}

func (w *World) rebuildDisplay() {
	grid := w.grid.Values()
	for i, v := range grid {
		w.display[i] = uint8(v * 255)
	}
}
