package nbody

import (
	"fmt"

	"github.com/san-kum/gravlab/internal/vec"
)

// G is Newton's gravitational constant in SI units.
const G = 6.67430e-11

// parallelThreshold is the body count above which the force pass is
// split across goroutines. Direct summation is O(n²), so small sets
// (the typical three bodies) stay on one goroutine.
const parallelThreshold = 64

// System holds the fixed-size body list and advances it in place.
type System struct {
	g      float64
	bodies []Body
	forces []vec.Vec3
}

// New validates the body list and builds a System using gravitational
// constant g. The slice is copied; the caller keeps ownership of its
// own copy. Bodies with mass <= 0 are rejected.
func New(g float64, bodies []Body) (*System, error) {
	if len(bodies) == 0 {
		return nil, ErrNoBodies
	}
	for i, b := range bodies {
		if b.Mass <= 0 {
			return nil, fmt.Errorf("body %d: %w (got %g)", i, ErrNonPositiveMass, b.Mass)
		}
	}

	owned := make([]Body, len(bodies))
	copy(owned, bodies)

	return &System{
		g:      g,
		bodies: owned,
		forces: make([]vec.Vec3, len(bodies)),
	}, nil
}

func (s *System) NumBodies() int { return len(s.bodies) }
func (s *System) Gravity() float64 { return s.g }

// Body returns the body at index i by value.
func (s *System) Body(i int) Body { return s.bodies[i] }

// Snapshot copies the current body list for the render layer.
func (s *System) Snapshot() []Body {
	out := make([]Body, len(s.bodies))
	copy(out, s.bodies)
	return out
}

// ForceOn computes the net gravitational force on body i from all
// other bodies at their current positions.
//
// The pairwise term uses the two-division form
//
//	F = d * (G*mi*mj/r² / r)
//
// with no zero-separation guard: coincident bodies yield non-finite
// components, which Validate reports after the fact. Each ordered
// pair is computed independently; nothing is cached or symmetrized.
func (s *System) ForceOn(i int) vec.Vec3 {
	var net vec.Vec3
	bi := s.bodies[i]
	for j := range s.bodies {
		if j == i {
			continue
		}
		bj := s.bodies[j]
		d := bj.Position.Sub(bi.Position)
		r := d.Length()
		mag := s.g * bi.Mass * bj.Mass / (r * r)
		net = net.Add(d.Scale(mag / r))
	}
	return net
}

// Step advances every body by dt seconds with semi-implicit Euler:
// all net forces are accumulated from pre-tick positions first, then
// each body's velocity is updated from its force and its position
// from the already-updated velocity. dt must not be negative; a zero
// dt leaves the state unchanged.
func (s *System) Step(dt float64) error {
	if dt < 0 {
		return fmt.Errorf("%w: %g", ErrNegativeStep, dt)
	}

	n := len(s.bodies)
	if n >= parallelThreshold {
		parallelFor(n, func(start, end int) {
			for i := start; i < end; i++ {
				s.forces[i] = s.ForceOn(i)
			}
		})
	} else {
		for i := 0; i < n; i++ {
			s.forces[i] = s.ForceOn(i)
		}
	}

	// Write pass. No force computation happens past this point, so
	// updated state never leaks into another body's force.
	for i := range s.bodies {
		b := &s.bodies[i]
		acc := s.forces[i].Scale(1 / b.Mass)
		b.Velocity = b.Velocity.Add(acc.Scale(dt))
		b.Position = b.Position.Add(b.Velocity.Scale(dt))
	}

	return nil
}

// Validate scans every body for NaN/Inf components. Hosts run it
// after stepping to catch the coincident-body singularity, which the
// force law itself does not guard against.
func (s *System) Validate() error {
	for i, b := range s.bodies {
		if !b.IsFinite() {
			return fmt.Errorf("body %d: %w", i, ErrNonFinite)
		}
	}
	return nil
}
