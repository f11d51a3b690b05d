package metrics

import (
	"math"

	"github.com/san-kum/gravlab/internal/nbody"
	"github.com/san-kum/gravlab/internal/vec"
)

// TotalEnergy computes kinetic plus pairwise potential energy of a
// body snapshot under gravitational constant g.
func TotalEnergy(g float64, bodies []nbody.Body) float64 {
	ke := 0.0
	pe := 0.0
	for i, bi := range bodies {
		ke += 0.5 * bi.Mass * bi.Velocity.Dot(bi.Velocity)
		for j := i + 1; j < len(bodies); j++ {
			r := bodies[j].Position.Sub(bi.Position).Length()
			pe -= g * bi.Mass * bodies[j].Mass / r
		}
	}
	return ke + pe
}

// TotalMomentum computes Σ m·v of a body snapshot.
func TotalMomentum(bodies []nbody.Body) vec.Vec3 {
	var p vec.Vec3
	for _, b := range bodies {
		p = p.Add(b.Velocity.Scale(b.Mass))
	}
	return p
}

// EnergyDrift tracks the maximum relative deviation of total energy
// from its value at the first observation.
type EnergyDrift struct {
	g        float64
	initial  float64
	maxDrift float64
	samples  int
}

func NewEnergyDrift(g float64) *EnergyDrift {
	return &EnergyDrift{g: g}
}

func (e *EnergyDrift) Name() string { return "energy_drift" }

func (e *EnergyDrift) Observe(bodies []nbody.Body, t float64) {
	energy := TotalEnergy(e.g, bodies)

	if e.samples == 0 {
		e.initial = energy
	}
	e.samples++

	if e.initial != 0 {
		drift := math.Abs(energy-e.initial) / math.Abs(e.initial)
		e.maxDrift = math.Max(e.maxDrift, drift)
	}
}

func (e *EnergyDrift) Value() float64 { return e.maxDrift }

func (e *EnergyDrift) Reset() {
	e.initial = 0
	e.maxDrift = 0
	e.samples = 0
}

// MomentumDrift tracks the maximum deviation of total linear momentum
// from its value at the first observation. With no external forces it
// should stay at floating-point noise.
type MomentumDrift struct {
	initial  vec.Vec3
	maxDrift float64
	samples  int
}

func NewMomentumDrift() *MomentumDrift {
	return &MomentumDrift{}
}

func (m *MomentumDrift) Name() string { return "momentum_drift" }

func (m *MomentumDrift) Observe(bodies []nbody.Body, t float64) {
	p := TotalMomentum(bodies)

	if m.samples == 0 {
		m.initial = p
	}
	m.samples++

	m.maxDrift = math.Max(m.maxDrift, p.Sub(m.initial).Length())
}

func (m *MomentumDrift) Value() float64 { return m.maxDrift }

func (m *MomentumDrift) Reset() {
	m.initial = vec.Vec3{}
	m.maxDrift = 0
	m.samples = 0
}
