package nbody

import (
	"fmt"

	"github.com/san-kum/gravlab/internal/vec"
)

// Color is an RGB triple in [0,1], carried for the render layer.
// It never enters any physics computation.
type Color struct {
	R, G, B float64
}

// Hex renders the color as a #rrggbb string.
func (c Color) Hex() string {
	clamp := func(v float64) int {
		if v < 0 {
			return 0
		}
		if v > 1 {
			return 255
		}
		return int(v * 255)
	}
	return fmt.Sprintf("#%02x%02x%02x", clamp(c.R), clamp(c.G), clamp(c.B))
}

// Body is one point mass. Radius and Color are presentation
// attributes stored alongside the physics state.
type Body struct {
	Mass     float64
	Position vec.Vec3
	Velocity vec.Vec3
	Radius   float64
	Color    Color
}

// IsFinite reports whether position and velocity are free of NaN/Inf.
func (b Body) IsFinite() bool {
	return b.Position.IsFinite() && b.Velocity.IsFinite()
}
