package core

// FloatGrid stores a 2D field of continuous cell values in row-major order.
// Values are expected to stay within [0, 1]; the grid itself does not clamp.
type FloatGrid struct {
	W, H int
	data []float32
}

// NewFloatGrid allocates a zero-filled grid with the given dimensions.
func NewFloatGrid(w, h int) *FloatGrid {
	if w <= 0 {
		w = 1
	}
	if h <= 0 {
		h = 1
	}
	return &FloatGrid{W: w, H: h, data: make([]float32, w*h)}
}

// Values exposes the backing slice so callers can read/write cells directly.
func (g *FloatGrid) Values() []float32 { return g.data }

// Index returns the linear slice index for coordinates (x, y).
func (g *FloatGrid) Index(x, y int) int { return y*g.W + x }

// Wrap applies toroidal wrapping to the provided coordinates.
func (g *FloatGrid) Wrap(x, y int) (int, int) {
	x = (x%g.W + g.W) % g.W
	y = (y%g.H + g.H) % g.H
	return x, y
}

// At returns the value at (x, y) after toroidal wrapping.
func (g *FloatGrid) At(x, y int) float32 {
	x, y = g.Wrap(x, y)
	return g.data[y*g.W+x]
}

// Clear fills the grid with zeros.
func (g *FloatGrid) Clear() {
	for i := range g.data {
		g.data[i] = 0
	}
}
