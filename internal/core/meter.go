package core

import "time"

// StepMeter measures the achieved simulation step rate over one-second
// windows, for window titles and periodic progress logs.
type StepMeter struct {
	window time.Duration
	start  time.Time
	ticks  int
	rate   float64
}

// NewStepMeter constructs a meter that reports once per second.
func NewStepMeter() *StepMeter {
	return &StepMeter{window: time.Second}
}

// Tick records one completed step. It returns true when a full window has
// elapsed and a fresh rate is available via Rate.
func (m *StepMeter) Tick() bool {
	now := time.Now()
	if m.start.IsZero() {
		m.start = now
	}
	m.ticks++
	elapsed := now.Sub(m.start)
	if elapsed < m.window {
		return false
	}
	m.rate = float64(m.ticks) / elapsed.Seconds()
	m.ticks = 0
	m.start = now
	return true
}

// Rate returns the most recently completed window's steps per second.
func (m *StepMeter) Rate() float64 { return m.rate }
