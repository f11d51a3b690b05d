package nbody

import "github.com/san-kum/gravlab/internal/vec"

// Energy returns kinetic plus gravitational potential energy. Each
// unordered pair contributes its potential once.
func (s *System) Energy() float64 {
	ke := 0.0
	pe := 0.0

	for i, bi := range s.bodies {
		ke += 0.5 * bi.Mass * bi.Velocity.Dot(bi.Velocity)

		for j := i + 1; j < len(s.bodies); j++ {
			bj := s.bodies[j]
			r := bj.Position.Sub(bi.Position).Length()
			pe -= s.g * bi.Mass * bj.Mass / r
		}
	}

	return ke + pe
}

// Momentum returns total linear momentum Σ m·v.
func (s *System) Momentum() vec.Vec3 {
	var p vec.Vec3
	for _, b := range s.bodies {
		p = p.Add(b.Velocity.Scale(b.Mass))
	}
	return p
}

// AngularMomentum returns Σ m·(r × v) about the origin.
func (s *System) AngularMomentum() vec.Vec3 {
	var l vec.Vec3
	for _, b := range s.bodies {
		l = l.Add(b.Position.Cross(b.Velocity).Scale(b.Mass))
	}
	return l
}
