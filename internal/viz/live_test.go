package viz

import (
	"testing"

	"github.com/san-kum/gravlab/internal/config"
	"github.com/san-kum/gravlab/internal/vec"
)

func TestDrawJoinsTrailPoints(t *testing.T) {
	sc := config.GetPreset("classic")
	m, err := NewModel(sc, 30)
	if err != nil {
		t.Fatal(err)
	}

	// Two trail samples two world units apart. With the default
	// camera they project to (64, 48) and (96, 48); a point-by-point
	// render would leave the 30 sub-pixels in between dark.
	m.trails[0] = []vec.Vec3{{X: -1}, {X: 1}}
	m.draw()

	for x := 64; x <= 96; x++ {
		if !lit(m.canvas, x, 48) {
			t.Errorf("trail gap at sub-pixel (%d, 48)", x)
		}
	}
}

func TestDrawRestartsTrailAfterOffscreenPoint(t *testing.T) {
	sc := config.GetPreset("classic")
	m, err := NewModel(sc, 30)
	if err != nil {
		t.Fatal(err)
	}

	// The middle sample is far outside the view frustum; the trail
	// must not draw a segment through it.
	m.trails[0] = []vec.Vec3{{X: -1}, {X: 1000}, {X: 1}}
	m.draw()

	if !lit(m.canvas, 64, 48) || !lit(m.canvas, 96, 48) {
		t.Fatal("visible trail points not drawn")
	}
}
