package main

import (
	"context"
	"fmt"
	"math"
	"os"
	"text/tabwriter"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/guptarohit/asciigraph"
	"github.com/spf13/cobra"

	"github.com/san-kum/gravlab/internal/config"
	"github.com/san-kum/gravlab/internal/metrics"
	"github.com/san-kum/gravlab/internal/nbody"
	"github.com/san-kum/gravlab/internal/sim"
	"github.com/san-kum/gravlab/internal/storage"
	"github.com/san-kum/gravlab/internal/vec"
	"github.com/san-kum/gravlab/internal/viz"
)

var (
	dataDir     string
	configFile  string
	preset      string
	dt          float64
	duration    float64
	gravConst   float64
	recordEvery int
	noValidate  bool
	frameRate   int
	// plot flags
	plotBody  int
	plotCoord string
	// export flags
	exportOut string
	// bench flags
	benchBodies int
	benchSteps  int
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "gravlab",
		Short: "newtonian n-body gravity lab",
	}

	rootCmd.PersistentFlags().StringVar(&dataDir, "data", ".gravlab", "data directory")

	runCmd := &cobra.Command{
		Use:   "run",
		Short: "run a headless simulation and record the trajectory",
		RunE:  runSimulation,
	}
	runCmd.Flags().StringVar(&preset, "preset", "classic", "built-in scenario")
	runCmd.Flags().StringVar(&configFile, "config", "", "scenario file (yaml)")
	runCmd.Flags().Float64Var(&dt, "dt", 0, "timestep override")
	runCmd.Flags().Float64Var(&duration, "time", 0, "duration override")
	runCmd.Flags().Float64Var(&gravConst, "g", 0, "gravitational constant override")
	runCmd.Flags().IntVar(&recordEvery, "record-every", 1, "keep one frame per N ticks")
	runCmd.Flags().BoolVar(&noValidate, "no-validate", false, "skip NaN/Inf checks each tick")

	liveCmd := &cobra.Command{
		Use:   "live",
		Short: "run with live terminal visualization",
		RunE:  runLive,
	}
	liveCmd.Flags().StringVar(&preset, "preset", "classic", "built-in scenario")
	liveCmd.Flags().StringVar(&configFile, "config", "", "scenario file (yaml)")
	liveCmd.Flags().IntVar(&frameRate, "fps", 60, "frames per second")

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "list recorded runs",
		RunE:  listRuns,
	}

	plotCmd := &cobra.Command{
		Use:   "plot [run_id]",
		Short: "plot a body coordinate from a recorded run",
		Args:  cobra.ExactArgs(1),
		RunE:  plotRun,
	}
	plotCmd.Flags().IntVar(&plotBody, "body", 0, "body index")
	plotCmd.Flags().StringVar(&plotCoord, "coord", "x", "coordinate (x|y|z)")

	exportCmd := &cobra.Command{
		Use:   "export [run_id]",
		Short: "export a recorded run as JSON",
		Args:  cobra.ExactArgs(1),
		RunE:  exportRun,
	}
	exportCmd.Flags().StringVar(&exportOut, "out", "", "output file (default stdout)")

	benchCmd := &cobra.Command{
		Use:   "bench",
		Short: "measure integrator throughput",
		RunE:  benchSystem,
	}
	benchCmd.Flags().IntVar(&benchBodies, "bodies", 128, "number of bodies")
	benchCmd.Flags().IntVar(&benchSteps, "steps", 10000, "steps to run")

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list built-in scenarios",
		Run: func(cmd *cobra.Command, args []string) {
			for _, name := range config.ListPresets() {
				sc := config.GetPreset(name)
				fmt.Printf("%-14s %d bodies, G=%g\n", name, len(sc.Bodies), sc.G)
			}
		},
	}

	rootCmd.AddCommand(runCmd, liveCmd, listCmd, plotCmd, exportCmd, benchCmd, presetsCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// loadScenario resolves preset/config file plus flag overrides.
func loadScenario(cmd *cobra.Command) (*config.Scenario, error) {
	var sc *config.Scenario
	if configFile != "" {
		loaded, err := config.Load(configFile)
		if err != nil {
			return nil, fmt.Errorf("failed to load scenario: %w", err)
		}
		sc = loaded
	} else {
		sc = config.GetPreset(preset)
		if sc == nil {
			return nil, fmt.Errorf("unknown preset: %s (available: %v)", preset, config.ListPresets())
		}
	}

	if cmd.Flags().Changed("dt") {
		sc.Dt = dt
	}
	if cmd.Flags().Changed("time") {
		sc.Duration = duration
	}
	if cmd.Flags().Changed("g") {
		sc.G = gravConst
	}
	return sc, nil
}

func runSimulation(cmd *cobra.Command, args []string) error {
	sc, err := loadScenario(cmd)
	if err != nil {
		return err
	}

	st := storage.New(dataDir)
	if err := st.Init(); err != nil {
		return err
	}

	sys, err := nbody.New(sc.G, sc.ToBodies())
	if err != nil {
		return err
	}

	runner := sim.New(sys)
	runner.AddMetric(metrics.NewEnergyDrift(sc.G))
	runner.AddMetric(metrics.NewMomentumDrift())

	fmt.Printf("running %s (%d bodies)...\n", sc.Name, sys.NumBodies())
	start := time.Now()

	result, err := runner.Run(context.Background(), sim.Config{
		Dt:            sc.Dt,
		Duration:      sc.Duration,
		ValidateState: !noValidate,
		RecordEvery:   recordEvery,
	})
	if err != nil {
		return err
	}

	elapsed := time.Since(start)

	runID, err := st.Save(sc.Name, sc.G, sc.Dt, sc.Duration, result)
	if err != nil {
		return err
	}

	fmt.Printf("completed in %v\n", elapsed)
	fmt.Printf("run id: %s\n", runID)
	fmt.Printf("steps: %d, frames recorded: %d\n", result.StepsTaken, len(result.Frames))
	fmt.Printf("energy drift: %.3e\n", result.EnergyDrift)
	fmt.Println("\nmetrics:")
	for name, val := range result.Metrics {
		fmt.Printf("  %s: %.6g\n", name, val)
	}

	return nil
}

func runLive(cmd *cobra.Command, args []string) error {
	sc, err := loadScenario(cmd)
	if err != nil {
		return err
	}

	model, err := viz.NewModel(sc, frameRate)
	if err != nil {
		return err
	}

	p := tea.NewProgram(model, tea.WithAltScreen())
	_, err = p.Run()
	return err
}

func listRuns(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	runs, err := st.List()
	if err != nil {
		return err
	}

	if len(runs) == 0 {
		fmt.Println("no runs found")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tSCENARIO\tTIME\tDURATION\tDT\tBODIES\tSTEPS")

	for _, run := range runs {
		fmt.Fprintf(w, "%s\t%s\t%s\t%.2fs\t%.4fs\t%d\t%d\n",
			run.ID,
			run.Scenario,
			run.Timestamp.Format("2006-01-02 15:04:05"),
			run.Duration,
			run.Dt,
			run.NumBodies,
			run.Steps,
		)
	}

	return w.Flush()
}

func plotRun(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)

	meta, err := st.Load(args[0])
	if err != nil {
		return err
	}

	rows, _, err := st.LoadTrajectory(args[0])
	if err != nil {
		return err
	}
	if len(rows) == 0 {
		return fmt.Errorf("run %s has no trajectory", args[0])
	}

	if plotBody < 0 || plotBody >= meta.NumBodies {
		return fmt.Errorf("body index %d out of range (run has %d bodies)", plotBody, meta.NumBodies)
	}

	coordOffset := map[string]int{"x": 0, "y": 1, "z": 2}
	off, ok := coordOffset[plotCoord]
	if !ok {
		return fmt.Errorf("unknown coordinate %q (want x, y or z)", plotCoord)
	}

	// 6 columns per body: px py pz vx vy vz.
	col := plotBody*6 + off
	series := make([]float64, 0, len(rows))
	for _, row := range rows {
		if col < len(row) {
			series = append(series, row[col])
		}
	}

	fmt.Printf("%s: body %d, position %s\n\n", args[0], plotBody, plotCoord)
	fmt.Println(asciigraph.Plot(series, asciigraph.Height(16), asciigraph.Width(72)))
	return nil
}

func exportRun(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)

	if exportOut != "" {
		if err := st.ExportJSONFile(args[0], exportOut); err != nil {
			return err
		}
		fmt.Printf("exported %s to %s\n", args[0], exportOut)
		return nil
	}
	return st.ExportJSON(args[0], os.Stdout)
}

func benchSystem(cmd *cobra.Command, args []string) error {
	sys, err := nbody.New(nbody.G, ringOfBodies(benchBodies))
	if err != nil {
		return err
	}

	fmt.Printf("stepping %d bodies for %d ticks...\n", benchBodies, benchSteps)
	start := time.Now()

	for i := 0; i < benchSteps; i++ {
		if err := sys.Step(0.001); err != nil {
			return err
		}
	}

	elapsed := time.Since(start)
	fmt.Printf("elapsed: %v\n", elapsed)
	fmt.Printf("steps/sec: %.0f\n", float64(benchSteps)/elapsed.Seconds())
	return nil
}

// ringOfBodies lays n equal masses on a circle with tangential
// velocities, the setup used for throughput measurements.
func ringOfBodies(n int) []nbody.Body {
	bodies := make([]nbody.Body, n)
	for i := range bodies {
		angle := float64(i) * 2 * math.Pi / float64(n)
		bodies[i] = nbody.Body{
			Mass:     1e9,
			Position: vec.Vec3{X: 10 * math.Cos(angle), Y: 10 * math.Sin(angle)},
			Velocity: vec.Vec3{X: -math.Sin(angle) * 0.5, Y: math.Cos(angle) * 0.5},
			Radius:   0.05,
		}
	}
	return bodies
}
