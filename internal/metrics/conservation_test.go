package metrics

import (
	"math"
	"testing"

	"github.com/san-kum/gravlab/internal/nbody"
	"github.com/san-kum/gravlab/internal/vec"
)

func pair() []nbody.Body {
	return []nbody.Body{
		{Mass: 1e10, Velocity: vec.Vec3{X: 1}},
		{Mass: 1e10, Position: vec.Vec3{X: 2}, Velocity: vec.Vec3{X: -1}},
	}
}

func TestTotalEnergy(t *testing.T) {
	bodies := pair()

	ke := 0.5*1e10 + 0.5*1e10
	pe := -nbody.G * 1e10 * 1e10 / 2
	expected := ke + pe

	if got := TotalEnergy(nbody.G, bodies); math.Abs(got-expected) > math.Abs(expected)*1e-12 {
		t.Errorf("expected energy %g, got %g", expected, got)
	}
}

func TestTotalMomentum(t *testing.T) {
	if got := TotalMomentum(pair()); got.Length() > 1e-6 {
		t.Errorf("expected zero net momentum, got %v", got)
	}
}

func TestEnergyDrift(t *testing.T) {
	m := NewEnergyDrift(nbody.G)
	bodies := pair()

	m.Observe(bodies, 0)
	if m.Value() != 0 {
		t.Errorf("first observation should have zero drift, got %g", m.Value())
	}

	// Double one body's speed and the total energy moves.
	bodies[0].Velocity = vec.Vec3{X: 2}
	m.Observe(bodies, 1)
	if m.Value() <= 0 {
		t.Error("expected positive drift after energy change")
	}

	m.Reset()
	if m.Value() != 0 {
		t.Error("expected zero drift after reset")
	}
}

func TestMomentumDrift(t *testing.T) {
	m := NewMomentumDrift()
	bodies := pair()

	m.Observe(bodies, 0)
	bodies[1].Velocity = vec.Vec3{}
	m.Observe(bodies, 1)

	if math.Abs(m.Value()-1e10) > 1 {
		t.Errorf("expected drift 1e10, got %g", m.Value())
	}
}
