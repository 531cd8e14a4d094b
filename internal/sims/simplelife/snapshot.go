package simplelife

// Snapshot is a copy of the field state handed to external sinks such as the
// PGM writer. Mutating it does not affect the running world.
type Snapshot struct {
	Width  int
	Height int
	Values []float32
}

// Snapshot returns a detached copy of the current grid plus its dimensions.
func (w *World) Snapshot() Snapshot {
	return Snapshot{
		Width:  w.w,
		Height: w.h,
		Values: append([]float32(nil), w.grid.Values()...),
	}
}
