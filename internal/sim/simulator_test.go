package sim

import (
	"context"
	"errors"
	"math"
	"testing"

	"github.com/san-kum/gravlab/internal/nbody"
	"github.com/san-kum/gravlab/internal/vec"
)

func testSystem(t *testing.T) *nbody.System {
	t.Helper()
	sys, err := nbody.New(nbody.G, []nbody.Body{
		{Mass: 1e10, Position: vec.Vec3{}},
		{Mass: 1e10, Position: vec.Vec3{X: 2}, Velocity: vec.Vec3{Y: 0.5}},
		{Mass: 1e10, Position: vec.Vec3{Y: 2}, Velocity: vec.Vec3{Y: -0.5}},
	})
	if err != nil {
		t.Fatalf("system setup failed: %v", err)
	}
	return sys
}

func TestRunnerRun(t *testing.T) {
	r := New(testSystem(t))

	cfg := Config{Dt: 0.1, Duration: 1.0}
	result, err := r.Run(context.Background(), cfg)
	if err != nil {
		t.Fatalf("run failed: %v", err)
	}

	if result.StepsTaken != 10 {
		t.Errorf("expected 10 steps, got %d", result.StepsTaken)
	}
	if len(result.Frames) != 11 {
		t.Errorf("expected 11 frames, got %d", len(result.Frames))
	}
	if len(result.Times) != 11 {
		t.Errorf("expected 11 times, got %d", len(result.Times))
	}
	for i, frame := range result.Frames {
		if len(frame) != 3 {
			t.Fatalf("frame %d: expected 3 bodies, got %d", i, len(frame))
		}
	}
}

func TestRunnerInvalidConfig(t *testing.T) {
	r := New(testSystem(t))

	tests := []struct {
		name string
		cfg  Config
	}{
		{"zero dt", Config{Dt: 0, Duration: 1.0}},
		{"negative dt", Config{Dt: -0.1, Duration: 1.0}},
		{"zero duration", Config{Dt: 0.1, Duration: 0}},
		{"negative duration", Config{Dt: 0.1, Duration: -1.0}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := r.Run(context.Background(), tt.cfg); err == nil {
				t.Error("expected error, got nil")
			}
		})
	}
}

func TestRunnerRecordEvery(t *testing.T) {
	r := New(testSystem(t))

	cfg := Config{Dt: 0.01, Duration: 1.0, RecordEvery: 10}
	result, err := r.Run(context.Background(), cfg)
	if err != nil {
		t.Fatalf("run failed: %v", err)
	}

	if result.StepsTaken != 100 {
		t.Errorf("expected 100 steps, got %d", result.StepsTaken)
	}
	// Initial frame plus every tenth tick.
	if len(result.Frames) != 11 {
		t.Errorf("expected 11 frames, got %d", len(result.Frames))
	}
}

func TestRunnerValidateStateAborts(t *testing.T) {
	sys, err := nbody.New(nbody.G, []nbody.Body{
		{Mass: 1e10, Position: vec.Vec3{X: 1}},
		{Mass: 1e10, Position: vec.Vec3{X: 1}},
	})
	if err != nil {
		t.Fatalf("system setup failed: %v", err)
	}
	r := New(sys)

	result, err := r.Run(context.Background(), Config{Dt: 0.1, Duration: 10, ValidateState: true})
	if !errors.Is(err, nbody.ErrNonFinite) {
		t.Fatalf("expected ErrNonFinite, got %v", err)
	}

	var stepErr *nbody.StepError
	if !errors.As(err, &stepErr) {
		t.Fatal("expected a StepError")
	}
	if stepErr.Step != 0 {
		t.Errorf("expected failure at step 0, got %d", stepErr.Step)
	}
	if result == nil || result.Err == nil {
		t.Error("partial result should carry the error")
	}
}

func TestRunnerContextCancel(t *testing.T) {
	r := New(testSystem(t))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := r.Run(ctx, Config{Dt: 0.01, Duration: 100})
	if !errors.Is(err, context.Canceled) {
		t.Errorf("expected context.Canceled, got %v", err)
	}
}

type countingMetric struct {
	count int
}

func (c *countingMetric) Name() string                      { return "ticks" }
func (c *countingMetric) Observe(_ []nbody.Body, _ float64) { c.count++ }
func (c *countingMetric) Value() float64                    { return float64(c.count) }
func (c *countingMetric) Reset()                            { c.count = 0 }

func TestRunnerMetrics(t *testing.T) {
	r := New(testSystem(t))

	metric := &countingMetric{}
	r.AddMetric(metric)

	result, err := r.Run(context.Background(), Config{Dt: 0.1, Duration: 1.0})
	if err != nil {
		t.Fatalf("run failed: %v", err)
	}

	// Initial state plus one observation per tick.
	if got, ok := result.Metrics["ticks"]; !ok || got != 11 {
		t.Errorf("expected 11 tick observations, got %v (present=%v)", got, ok)
	}
}

type timeRecordingMetric struct {
	times []float64
}

func (m *timeRecordingMetric) Name() string                      { return "times" }
func (m *timeRecordingMetric) Observe(_ []nbody.Body, t float64) { m.times = append(m.times, t) }
func (m *timeRecordingMetric) Value() float64                    { return float64(len(m.times)) }
func (m *timeRecordingMetric) Reset()                            { m.times = nil }

func TestRunnerMetricsObserveInitialState(t *testing.T) {
	r := New(testSystem(t))

	metric := &timeRecordingMetric{}
	r.AddMetric(metric)

	if _, err := r.Run(context.Background(), Config{Dt: 0.1, Duration: 0.5}); err != nil {
		t.Fatalf("run failed: %v", err)
	}

	if len(metric.times) == 0 || metric.times[0] != 0 {
		t.Fatalf("expected first observation at t=0, got %v", metric.times)
	}
}

func TestRunnerRecordsFinalFrame(t *testing.T) {
	r := New(testSystem(t))

	// 10 ticks with a cadence of 3: recordings land at ticks 3, 6 and
	// 9, so the final state needs the tail append.
	cfg := Config{Dt: 0.1, Duration: 1.0, RecordEvery: 3}
	result, err := r.Run(context.Background(), cfg)
	if err != nil {
		t.Fatalf("run failed: %v", err)
	}

	if len(result.Frames) != 5 {
		t.Fatalf("expected 5 frames, got %d", len(result.Frames))
	}
	last := result.Times[len(result.Times)-1]
	want := float64(result.StepsTaken) * cfg.Dt
	if math.Abs(last-want) > 1e-12 {
		t.Errorf("last recorded time = %g, want %g", last, want)
	}
}
