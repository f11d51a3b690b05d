package sim

import (
	"context"
	"fmt"
	"math"

	"github.com/san-kum/gravlab/internal/nbody"
)

// Runner drives one System through a fixed-duration run. It owns no
// physics of its own: each tick it advances the system once, then
// hands the fresh snapshot to metrics and observers.
type Runner struct {
	sys       *nbody.System
	metrics   []Metric
	observers []Observer
}

func New(sys *nbody.System) *Runner {
	return &Runner{
		sys:       sys,
		metrics:   make([]Metric, 0),
		observers: make([]Observer, 0),
	}
}

func (r *Runner) AddMetric(m Metric)     { r.metrics = append(r.metrics, m) }
func (r *Runner) AddObserver(o Observer) { r.observers = append(r.observers, o) }

// Run advances the system from t=0 to cfg.Duration in cfg.Dt ticks,
// recording frames along the way. The returned Result holds whatever
// was recorded even when the run ends early (cancellation or a
// degenerate state).
func (r *Runner) Run(ctx context.Context, cfg Config) (*Result, error) {
	if err := validateConfig(cfg); err != nil {
		return nil, err
	}

	steps := int(cfg.Duration / cfg.Dt)
	every := cfg.RecordEvery
	if every < 1 {
		every = 1
	}

	result := &Result{
		Times:   make([]float64, 0, steps/every+1),
		Frames:  make([][]nbody.Body, 0, steps/every+1),
		Metrics: make(map[string]float64),
	}

	for _, m := range r.metrics {
		m.Reset()
	}

	t := 0.0
	initial := r.sys.Snapshot()
	result.Times = append(result.Times, t)
	result.Frames = append(result.Frames, initial)
	initialEnergy := r.sys.Energy()

	// Metrics see the t=0 state so drift baselines come from the
	// initial conditions, not the first tick.
	for _, m := range r.metrics {
		m.Observe(initial, t)
	}

	for i := 0; i < steps; i++ {
		select {
		case <-ctx.Done():
			result.Err = ctx.Err()
			return result, ctx.Err()
		default:
		}

		if err := r.sys.Step(cfg.Dt); err != nil {
			stepErr := &nbody.StepError{Step: i, Time: t, Wrapped: err}
			result.Err = stepErr
			return result, stepErr
		}
		t += cfg.Dt
		result.StepsTaken++

		if cfg.ValidateState {
			if err := r.sys.Validate(); err != nil {
				stepErr := &nbody.StepError{Step: i, Time: t, Wrapped: err}
				result.Err = stepErr
				return result, stepErr
			}
		}

		snapshot := r.sys.Snapshot()
		for _, m := range r.metrics {
			m.Observe(snapshot, t)
		}
		for _, obs := range r.observers {
			obs.OnTick(snapshot, t)
		}

		if (i+1)%every == 0 {
			result.Times = append(result.Times, t)
			result.Frames = append(result.Frames, snapshot)
		}
	}

	// A tick count that isn't a multiple of RecordEvery would otherwise
	// leave the final state out of the trajectory.
	if steps%every != 0 {
		result.Times = append(result.Times, t)
		result.Frames = append(result.Frames, r.sys.Snapshot())
	}

	finalEnergy := r.sys.Energy()
	if initialEnergy != 0 {
		result.EnergyDrift = math.Abs(finalEnergy-initialEnergy) / math.Abs(initialEnergy)
	}

	for _, m := range r.metrics {
		result.Metrics[m.Name()] = m.Value()
	}

	return result, nil
}

func validateConfig(cfg Config) error {
	if cfg.Dt <= 0 {
		return fmt.Errorf("dt must be positive, got %f", cfg.Dt)
	}
	if cfg.Duration <= 0 {
		return fmt.Errorf("duration must be positive, got %f", cfg.Duration)
	}
	return nil
}
