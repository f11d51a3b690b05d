package config

import "sort"

// Presets are the built-in scenarios. "classic" is the original
// three-body setup: equal 1e10 kg masses on a right angle, outer two
// moving tangentially.
var Presets = map[string]*Scenario{
	"classic": {
		Name:     "classic",
		G:        DefaultG,
		Dt:       DefaultDt,
		Duration: DefaultDuration,
		Bodies: []BodyConfig{
			{Mass: 1e10, Position: [3]float64{0, 0, 0}, Velocity: [3]float64{0, 0, 0}, Radius: 0.1, Color: "#ff0000"},
			{Mass: 1e10, Position: [3]float64{2, 0, 0}, Velocity: [3]float64{0, 0.5, 0}, Radius: 0.1, Color: "#00ff00"},
			{Mass: 1e10, Position: [3]float64{0, 2, 0}, Velocity: [3]float64{0, -0.5, 0}, Radius: 0.1, Color: "#0000ff"},
		},
	},
	"binary": {
		Name:     "binary",
		G:        DefaultG,
		Dt:       DefaultDt,
		Duration: 60.0,
		Bodies: []BodyConfig{
			{Mass: 1e10, Position: [3]float64{-1, 0, 0}, Velocity: [3]float64{0, -0.2, 0}, Radius: 0.1, Color: "#ffcc00"},
			{Mass: 1e10, Position: [3]float64{1, 0, 0}, Velocity: [3]float64{0, 0.2, 0}, Radius: 0.1, Color: "#00ccff"},
		},
	},
	// The Chenciner-Montgomery figure-eight choreography (G=1, unit
	// masses). Stable over many periods even with a first-order
	// integrator at small dt.
	"figure-eight": {
		Name:     "figure-eight",
		G:        1,
		Dt:       0.001,
		Duration: 20.0,
		Bodies: []BodyConfig{
			{Mass: 1, Position: [3]float64{0.97000436, -0.24308753, 0}, Velocity: [3]float64{0.466203685, 0.43236573, 0}, Radius: 0.05, Color: "#ff0000"},
			{Mass: 1, Position: [3]float64{-0.97000436, 0.24308753, 0}, Velocity: [3]float64{0.466203685, 0.43236573, 0}, Radius: 0.05, Color: "#00ff00"},
			{Mass: 1, Position: [3]float64{0, 0, 0}, Velocity: [3]float64{-0.93240737, -0.86473146, 0}, Radius: 0.05, Color: "#0000ff"},
		},
	},
}

// GetPreset returns a copy of the named preset, so callers can apply
// overrides without touching the shared table.
func GetPreset(name string) *Scenario {
	sc, ok := Presets[name]
	if !ok {
		return nil
	}
	out := *sc
	out.Bodies = make([]BodyConfig, len(sc.Bodies))
	copy(out.Bodies, sc.Bodies)
	return &out
}

func ListPresets() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
