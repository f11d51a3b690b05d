package sim

import (
	"github.com/san-kum/gravlab/internal/nbody"
)

// Metric accumulates a scalar over the course of a run.
type Metric interface {
	Name() string
	Observe(bodies []nbody.Body, t float64)
	Value() float64
	Reset()
}

// Observer is called once per tick with the post-step snapshot.
type Observer interface {
	OnTick(bodies []nbody.Body, t float64)
}

// Config controls a headless run.
type Config struct {
	Dt       float64
	Duration float64
	// ValidateState aborts the run as soon as a NaN/Inf component
	// appears (the coincident-body singularity).
	ValidateState bool
	// RecordEvery keeps one frame out of every RecordEvery ticks in
	// the result (0 or 1 keeps all of them).
	RecordEvery int
}

// Result holds the recorded trajectory of one run.
type Result struct {
	Times       []float64
	Frames      [][]nbody.Body
	Metrics     map[string]float64
	EnergyDrift float64
	StepsTaken  int
	Err         error
}
