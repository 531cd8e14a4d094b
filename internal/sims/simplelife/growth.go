package simplelife

// growth maps a neighborhood potential to a signed rate of change. With the
// default constants this is 1.8*u*(1-u) - 0.2: a downward-shifted parabola
// whose positive band keeps mid-potential cells alive and decays the rest.
func (w *World) growth(u float32) float32 {
	return w.growthRate*u*(1-u) - w.growthShift
}
