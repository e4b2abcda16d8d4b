package main

import (
	"context"
	"fmt"
	"os"
	"sort"
	"text/tabwriter"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/guptarohit/asciigraph"
	"github.com/mselway/skyrocket/internal/config"
	"github.com/mselway/skyrocket/internal/metrics"
	"github.com/mselway/skyrocket/internal/plan"
	"github.com/mselway/skyrocket/internal/sim"
	"github.com/mselway/skyrocket/internal/viz"
	"github.com/spf13/cobra"
)

var (
	configFile string
	preset     string
	dt         float64
	duration   float64
	seed       int64
	numRockets int
	frameRate  int
	trailLen   int
	themeName  string
	numRuns    int
)

// main is the entry point for the skyrocket CLI; it registers commands and
// flags and defaults to the live flight view when no subcommand is given.
// It exits the process with status 1 if command execution returns an error.
func main() {
	rootCmd := &cobra.Command{
		Use:   "skyrocket",
		Short: "terminal rocket flight simulator",
		RunE:  runLive,
	}
	rootCmd.Flags().StringVar(&configFile, "config", "", "config file path (yaml)")
	rootCmd.Flags().StringVar(&preset, "preset", "", "use preset configuration")
	rootCmd.Flags().Int64Var(&seed, "seed", 0, "random seed (0 picks one)")
	rootCmd.Flags().IntVar(&numRockets, "rockets", config.DefaultRockets, "rockets on the pad at start")
	rootCmd.Flags().IntVar(&frameRate, "fps", config.DefaultFPS, "frame rate")
	rootCmd.Flags().IntVar(&trailLen, "trail", config.DefaultTrail, "trail length in points")
	rootCmd.Flags().StringVar(&themeName, "theme", config.DefaultTheme, "color theme")

	liveCmd := &cobra.Command{
		Use:   "live",
		Short: "fly with live visualization",
		RunE:  runLive,
	}
	liveCmd.Flags().StringVar(&configFile, "config", "", "config file path (yaml)")
	liveCmd.Flags().StringVar(&preset, "preset", "", "use preset configuration")
	liveCmd.Flags().Int64Var(&seed, "seed", 0, "random seed (0 picks one)")
	liveCmd.Flags().IntVar(&numRockets, "rockets", config.DefaultRockets, "rockets on the pad at start")
	liveCmd.Flags().IntVar(&frameRate, "fps", config.DefaultFPS, "frame rate")
	liveCmd.Flags().IntVar(&trailLen, "trail", config.DefaultTrail, "trail length in points")
	liveCmd.Flags().StringVar(&themeName, "theme", config.DefaultTheme, "color theme")

	runCmd := &cobra.Command{
		Use:   "run",
		Short: "fly headless and plot the flight",
		RunE:  runSimulation,
	}
	runCmd.Flags().StringVar(&configFile, "config", "", "config file path (yaml)")
	runCmd.Flags().StringVar(&preset, "preset", "", "use preset configuration")
	runCmd.Flags().Float64Var(&dt, "dt", config.DefaultDt, "timestep")
	runCmd.Flags().Float64Var(&duration, "time", config.DefaultDuration, "duration")
	runCmd.Flags().Int64Var(&seed, "seed", 0, "random seed (0 picks one)")
	runCmd.Flags().IntVar(&numRockets, "rockets", config.DefaultRockets, "rockets on the pad at start")

	planCmd := &cobra.Command{
		Use:   "plan",
		Short: "inspect the flight plan a seed generates",
		RunE:  inspectPlan,
	}
	planCmd.Flags().Int64Var(&seed, "seed", time.Now().UnixNano(), "random seed")

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list preset configurations",
		RunE:  listPresetConfigs,
	}

	benchCmd := &cobra.Command{
		Use:   "bench",
		Short: "fly an ensemble of seeds in parallel",
		RunE:  benchFlights,
	}
	benchCmd.Flags().IntVar(&numRuns, "runs", 8, "number of parallel flights")
	benchCmd.Flags().StringVar(&configFile, "config", "", "config file path (yaml)")
	benchCmd.Flags().StringVar(&preset, "preset", "", "use preset configuration")
	benchCmd.Flags().Float64Var(&dt, "dt", config.DefaultDt, "timestep")
	benchCmd.Flags().Float64Var(&duration, "time", config.DefaultDuration, "duration")
	benchCmd.Flags().Int64Var(&seed, "seed", 0, "seed of the first flight (0 picks one)")

	rootCmd.AddCommand(runCmd, liveCmd, planCmd, presetsCmd, benchCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
func resolveConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg := config.DefaultConfig()

	// Load preset if specified
	if preset != "" {
		p := config.GetPreset(preset)
		if p == nil {
			return nil, fmt.Errorf("unknown preset: %s (available: %v)", preset, config.ListPresets())
		}
		cfg = p
	}

	// Load config file if specified (overrides preset)
	if configFile != "" {
		loaded, err := config.Load(configFile)
		if err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
		cfg = loaded
	}

	// CLI flags override both
	if cmd.Flags().Changed("dt") {
		cfg.Run.Dt = dt
	}
	if cmd.Flags().Changed("time") {
		cfg.Run.Duration = duration
	}
	if cmd.Flags().Changed("seed") {
		cfg.Run.Seed = seed
	}
	if cmd.Flags().Changed("rockets") {
		cfg.Run.Rockets = numRockets
	}
	if cmd.Flags().Changed("fps") {
		cfg.Display.FPS = frameRate
	}
	if cmd.Flags().Changed("trail") {
		cfg.Display.Trail = trailLen
	}
	if cmd.Flags().Changed("theme") {
		cfg.Display.Theme = themeName
	}

	if cfg.Run.Seed == 0 {
		cfg.Run.Seed = time.Now().UnixNano()
	}

	return cfg, nil
}

// launchRockets puts n rockets with independent draws in the air before
// the first frame.
func launchRockets(engine *sim.Engine, source sim.DrawSource, n int) {
	for i := 0; i < n; i++ {
		p, _ := plan.Generate(source.Draw(plan.DrawLen))
		engine.Launch(p)
	}
}

func runLive(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}

	viz.SetTheme(cfg.Display.Theme)

	engine := sim.New(cfg.RocketPhysics())
	engine.AddMetric(metrics.NewApex())
	engine.AddMetric(metrics.NewTopSpeed())

	source := sim.NewSeededSource(cfg.Run.Seed)
	launchRockets(engine, source, cfg.Run.Rockets)

	m := viz.NewModel(engine, source, cfg.Display.FPS, cfg.Display.Trail)
	prog := tea.NewProgram(m)
	if _, err := prog.Run(); err != nil {
		return err
	}
	return nil
}

func runSimulation(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}

	engine := sim.New(cfg.RocketPhysics())
	engine.AddMetric(metrics.NewApex())
	engine.AddMetric(metrics.NewTopSpeed())
	engine.AddMetric(metrics.NewDrift())
	engine.AddMetric(metrics.NewTimeAloft())
	engine.AddMetric(metrics.NewFlights())

	source := sim.NewSeededSource(cfg.Run.Seed)
	launchRockets(engine, source, cfg.Run.Rockets)

	runner := sim.NewRunner(engine, source)

	fmt.Printf("flying %d rocket(s) for %.1fs (seed %d)...\n", cfg.Run.Rockets, cfg.Run.Duration, cfg.Run.Seed)
	start := time.Now()

	result, err := runner.Run(context.Background(), cfg.Run.Dt, cfg.Run.Duration)
	if err != nil {
		return err
	}

	elapsed := time.Since(start)

	fmt.Printf("completed in %v\n", elapsed)
	fmt.Printf("steps: %d\n", result.Steps)
	fmt.Printf("launches: %d\n\n", result.Launches)

	plots := []struct {
		data    []float64
		caption string
	}{
		{result.Altitude, "lead rocket altitude"},
		{result.Speed, "lead rocket speed"},
		{result.Fuel, "lead rocket fuel"},
	}
	for _, p := range plots {
		graph := asciigraph.Plot(p.data,
			asciigraph.Height(10),
			asciigraph.Width(80),
			asciigraph.Caption(p.caption),
		)
		fmt.Println(graph)
		fmt.Println()
	}

	fmt.Println("metrics:")
	names := make([]string, 0, len(result.Metrics))
	for name := range result.Metrics {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		fmt.Printf("  %s: %.3f\n", name, result.Metrics[name])
	}

	return nil
}

func inspectPlan(cmd *cobra.Command, args []string) error {
	source := sim.NewSeededSource(seed)
	draw := source.Draw(plan.DrawLen)
	p, consumed := plan.Generate(draw)

	changes := 0
	if consumed > 1 {
		changes = consumed / 3
	}

	fmt.Printf("seed: %d\n", seed)
	fmt.Printf("draw consumed: %d of %d\n", consumed, plan.DrawLen)
	fmt.Printf("thrust changes: %d\n\n", changes)

	if len(p) == 0 {
		fmt.Println("empty plan: the rocket coasts on its launch thrust")
		return nil
	}

	ticks := make([]int, 0, len(p))
	for tick := range p {
		ticks = append(ticks, tick)
	}
	sort.Ints(ticks)

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "TICK\tLEFT\tRIGHT")
	for _, tick := range ticks {
		t := p[tick]
		fmt.Fprintf(w, "%d\t%.1f\t%.1f\n", tick, t.Left, t.Right)
	}
	return w.Flush()
}

func listPresetConfigs(cmd *cobra.Command, args []string) error {
	names := config.ListPresets()
	sort.Strings(names)

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "NAME\tGRAVITY\tFUEL\tTHRUST\tROCKETS\tTHEME")
	for _, name := range names {
		cfg := config.GetPreset(name)
		fmt.Fprintf(w, "%s\t%.0f\t%.0f\t%.0f\t%d\t%s\n",
			name,
			cfg.Physics.Gravity,
			cfg.Physics.Fuel,
			cfg.Physics.Thrust,
			cfg.Run.Rockets,
			cfg.Display.Theme,
		)
	}
	return w.Flush()
}

func benchFlights(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}

	ensemble := sim.NewEnsemble(cfg.RocketPhysics(), numRuns, cfg.Run.Seed)

	fmt.Printf("flying %d seeds for %.1fs each...\n\n", numRuns, cfg.Run.Duration)
	start := time.Now()

	results, err := ensemble.Run(context.Background(), cfg.Run.Dt, cfg.Run.Duration)
	if err != nil {
		return err
	}

	elapsed := time.Since(start)

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "SEED\tLAUNCHES\tAPEX\tTOP SPEED")
	totalSteps := 0
	for i, res := range results {
		totalSteps += res.Steps
		fmt.Fprintf(w, "%d\t%d\t%.1f\t%.1f\n",
			cfg.Run.Seed+int64(i),
			res.Launches,
			maxSample(res.Altitude),
			maxSample(res.Speed),
		)
	}
	if err := w.Flush(); err != nil {
		return err
	}

	fmt.Printf("\n%d flights in %v (%.0f steps/sec)\n",
		len(results), elapsed, float64(totalSteps)/elapsed.Seconds())
	return nil
}

func maxSample(vals []float64) float64 {
	max := 0.0
	for _, v := range vals {
		if v > max {
			max = v
		}
	}
	return max
}
