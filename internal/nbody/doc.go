// Package nbody implements direct-summation Newtonian gravity for a
// small, fixed set of point masses.
//
// A [System] owns an ordered body list and advances it with
// semi-implicit (symplectic) Euler steps:
//
//	sys, _ := nbody.New(nbody.G, bodies)
//	for running {
//		sys.Step(dt)
//		render(sys.Snapshot())
//	}
//
// Forces are recomputed per ordered pair with no softening term and no
// guard against coincident bodies; a zero separation propagates
// non-finite components into the state, which [System.Validate]
// detects.
//
// # Thread Safety
//
// A System is not safe for concurrent use. Step runs to completion on
// the caller's goroutine; Snapshot must not be called while a Step is
// in flight.
package nbody
