package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/san-kum/gravlab/internal/nbody"
	"github.com/san-kum/gravlab/internal/vec"
)

const (
	DefaultDt       = 0.01
	DefaultDuration = 30.0
	DefaultG        = nbody.G
)

// Scenario is a complete simulation setup loadable from YAML.
type Scenario struct {
	Name     string       `yaml:"name"`
	G        float64      `yaml:"g"`
	Dt       float64      `yaml:"dt"`
	Duration float64      `yaml:"duration"`
	Bodies   []BodyConfig `yaml:"bodies"`
}

// BodyConfig is one body entry in a scenario file. Color is a
// #rrggbb hex string.
type BodyConfig struct {
	Mass     float64    `yaml:"mass"`
	Position [3]float64 `yaml:"position"`
	Velocity [3]float64 `yaml:"velocity"`
	Radius   float64    `yaml:"radius"`
	Color    string     `yaml:"color"`
}

// Default returns the classic three-body scenario.
func Default() *Scenario {
	return GetPreset("classic")
}

func Load(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	sc := &Scenario{
		G:        DefaultG,
		Dt:       DefaultDt,
		Duration: DefaultDuration,
	}
	if err := yaml.Unmarshal(data, sc); err != nil {
		return nil, err
	}
	return sc, nil
}

func Save(path string, sc *Scenario) error {
	data, err := yaml.Marshal(sc)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// ToBodies converts the scenario's body entries to simulation bodies.
func (s *Scenario) ToBodies() []nbody.Body {
	bodies := make([]nbody.Body, len(s.Bodies))
	for i, b := range s.Bodies {
		bodies[i] = nbody.Body{
			Mass:     b.Mass,
			Position: vec.Vec3{X: b.Position[0], Y: b.Position[1], Z: b.Position[2]},
			Velocity: vec.Vec3{X: b.Velocity[0], Y: b.Velocity[1], Z: b.Velocity[2]},
			Radius:   b.Radius,
			Color:    ParseColor(b.Color),
		}
	}
	return bodies
}

// ParseColor turns a #rrggbb string into an RGB triple in [0,1].
// Malformed input falls back to a neutral grey.
func ParseColor(hex string) nbody.Color {
	var r, g, b uint8
	if len(hex) == 7 && hex[0] == '#' {
		n, err := fmt.Sscanf(hex, "#%02x%02x%02x", &r, &g, &b)
		if err == nil && n == 3 {
			return nbody.Color{R: float64(r) / 255, G: float64(g) / 255, B: float64(b) / 255}
		}
	}
	return nbody.Color{R: 0.7, G: 0.7, B: 0.7}
}
