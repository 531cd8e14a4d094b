package simplelife

import "testing"

func TestRenderBufferRamp(t *testing.T) {
	world := testWorld(t, 4, 1, 1, 0.05)
	grid := world.Values()
	grid[0] = 0
	grid[1] = 0.25
	grid[2] = 0.5
	grid[3] = 1

	buf := world.RenderBuffer()
	if buf[0] != 0 {
		t.Fatalf("value 0 maps to %#06x, want black", buf[0])
	}
	// Full density: blue 255, green 100, red 50.
	if buf[3] != 0x3264ff {
		t.Fatalf("value 1 maps to %#06x, want 0x3264ff", buf[3])
	}

	// The blue channel tracks the value monotonically.
	prevBlue := uint32(0)
	for i := 1; i < 4; i++ {
		blue := buf[i] & 0xff
		if blue <= prevBlue {
			t.Fatalf("blue channel not increasing: cell %d has %d after %d", i, blue, prevBlue)
		}
		prevBlue = blue
	}

	// Green and red stay subordinate to blue on every cell.
	for i, packed := range buf {
		red := (packed >> 16) & 0xff
		green := (packed >> 8) & 0xff
		blue := packed & 0xff
		if red > green && green != 0 || green > blue && blue != 0 {
			t.Fatalf("cell %d: channels r=%d g=%d b=%d break the blue-dominant ramp", i, red, green, blue)
		}
	}
}

func TestPaletteMatchesRamp(t *testing.T) {
	world := testWorld(t, 2, 2, 1, 0.05)
	palette := world.Palette()
	if len(palette) != 256 {
		t.Fatalf("palette has %d entries, want 256", len(palette))
	}

	if c := palette[0]; c.R != 0 || c.G != 0 || c.B != 0 {
		t.Fatalf("palette[0] = %+v, want black", c)
	}
	if c := palette[255]; c.R != 50 || c.G != 100 || c.B != 255 {
		t.Fatalf("palette[255] = %+v, want r=50 g=100 b=255", c)
	}
	for i, c := range palette {
		if c.A != 255 {
			t.Fatalf("palette[%d] alpha %d, want opaque", i, c.A)
		}
	}
}

func TestCellsQuantizeValues(t *testing.T) {
	world := testWorld(t, 3, 1, 1, 0.05)
	grid := world.Values()
	grid[0] = 0
	grid[1] = 0.5
	grid[2] = 1

	world.Step() // rebuilds the display from the stepped values

	// After one step the zero cell stays zero and the full cell decays a
	// touch; check the quantization tracks the float values exactly.
	for i, v := range world.Values() {
		want := uint8(v * 255)
		if got := world.Cells()[i]; got != want {
			t.Fatalf("cell %d: display %d for value %g, want %d", i, got, v, want)
		}
	}
}
