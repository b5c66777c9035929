package main

import (
	"context"
	"encoding/csv"
	"fmt"
	"math/rand"
	"os"
	"os/signal"
	"sort"
	"strconv"
	"syscall"
	"text/tabwriter"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/guptarohit/asciigraph"
	"github.com/spf13/cobra"

	"github.com/san-kum/spinwheel/internal/analysis"
	"github.com/san-kum/spinwheel/internal/config"
	"github.com/san-kum/spinwheel/internal/control"
	"github.com/san-kum/spinwheel/internal/export"
	"github.com/san-kum/spinwheel/internal/metrics"
	"github.com/san-kum/spinwheel/internal/scenario"
	"github.com/san-kum/spinwheel/internal/server"
	"github.com/san-kum/spinwheel/internal/sim"
	"github.com/san-kum/spinwheel/internal/store"
	"github.com/san-kum/spinwheel/internal/viz"
	"github.com/san-kum/spinwheel/internal/wheel"
)

var (
	dataDir    string
	configFile string
	preset     string

	dt          float64
	duration    float64
	seed        int64
	initOmega   float64
	theme       string
	governed    bool
	kp          float64
	ki          float64
	kd          float64
	targetOmega float64
	label       string

	numRuns  int
	outFile  string
	snapTime float64
	braille  bool
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "spinwheel",
		Short: "spinning wheel physics playground",
		RunE:  runLive,
	}

	rootCmd.PersistentFlags().StringVar(&dataDir, "data", ".spinwheel", "data directory")

	addSimFlags := func(cmd *cobra.Command) {
		cmd.Flags().Float64Var(&dt, "dt", config.DefaultDt, "timestep")
		cmd.Flags().Float64Var(&duration, "time", config.DefaultDuration, "duration")
		cmd.Flags().Int64Var(&seed, "seed", time.Now().UnixNano(), "random seed")
		cmd.Flags().Float64Var(&initOmega, "omega", config.DefaultInitOmega, "initial wheel angular velocity")
		cmd.Flags().BoolVar(&governed, "governed", false, "enable the speed governor")
		cmd.Flags().Float64Var(&kp, "kp", 2.0, "governor kp")
		cmd.Flags().Float64Var(&ki, "ki", 0.1, "governor ki")
		cmd.Flags().Float64Var(&kd, "kd", 0.0, "governor kd")
		cmd.Flags().Float64Var(&targetOmega, "target", 1.5, "governor target angular velocity")
		cmd.Flags().StringVar(&configFile, "config", "", "config file path (yaml)")
		cmd.Flags().StringVar(&preset, "preset", "", "use preset configuration")
	}

	runCmd := &cobra.Command{
		Use:   "run",
		Short: "run a headless simulation and store the result",
		RunE:  runSimulation,
	}
	addSimFlags(runCmd)
	runCmd.Flags().StringVar(&label, "label", "wheel", "run label")

	liveCmd := &cobra.Command{
		Use:   "live",
		Short: "interactive terminal view",
		RunE:  runLive,
	}
	addSimFlags(liveCmd)
	liveCmd.Flags().StringVar(&theme, "theme", config.DefaultTheme, "color theme")

	serveCmd := &cobra.Command{
		Use:   "serve",
		Short: "serve the wheel over websockets",
		RunE:  runServe,
	}
	addSimFlags(serveCmd)

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "list stored runs",
		RunE:  listRuns,
	}

	plotCmd := &cobra.Command{
		Use:   "plot [run_id]",
		Short: "plot run results",
		Args:  cobra.ExactArgs(1),
		RunE:  plotRun,
	}

	analyzeCmd := &cobra.Command{
		Use:   "analyze [run_id]",
		Short: "frequency analysis of the ball's speed",
		Args:  cobra.ExactArgs(1),
		RunE:  analyzeRun,
	}

	exportCSVCmd := &cobra.Command{
		Use:   "export-csv [run_id]",
		Short: "export run data to CSV",
		Args:  cobra.ExactArgs(1),
		RunE:  exportCSV,
	}

	exportJSONCmd := &cobra.Command{
		Use:   "export-json [run_id]",
		Short: "export run data to JSON",
		Args:  cobra.ExactArgs(1),
		RunE:  exportJSONRun,
	}

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list available presets",
		Run: func(cmd *cobra.Command, args []string) {
			for _, p := range config.ListPresets() {
				fmt.Println(p)
			}
		},
	}

	benchCmd := &cobra.Command{
		Use:   "bench",
		Short: "benchmark step throughput and run an ensemble",
		RunE:  benchWheel,
	}
	benchCmd.Flags().IntVar(&numRuns, "runs", 8, "ensemble size")
	benchCmd.Flags().Int64Var(&seed, "seed", 42, "first ensemble seed")

	scenarioCmd := &cobra.Command{
		Use:   "scenario [file]",
		Short: "run a scripted scenario",
		Args:  cobra.ExactArgs(1),
		RunE:  runScenario,
	}
	scenarioCmd.Flags().StringVar(&label, "label", "", "run label (defaults to scenario name)")

	snapshotCmd := &cobra.Command{
		Use:   "snapshot [run_id]",
		Short: "render an SVG: a wheel frame, or a stored run's ball path",
		Args:  cobra.MaximumNArgs(1),
		RunE:  snapshot,
	}
	addSimFlags(snapshotCmd)
	snapshotCmd.Flags().StringVar(&outFile, "out", "", "output file (stdout if empty)")
	snapshotCmd.Flags().Float64Var(&snapTime, "at", 2.0, "seconds to simulate before the frame")
	snapshotCmd.Flags().BoolVar(&braille, "braille", false, "render through the terminal canvas")

	rootCmd.AddCommand(runCmd, liveCmd, serveCmd, listCmd, plotCmd, analyzeCmd,
		exportCSVCmd, exportJSONCmd, presetsCmd, benchCmd, scenarioCmd, snapshotCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// loadSettings resolves the effective configuration: preset first, then
// config file, then explicit CLI flags on top.
func loadSettings(cmd *cobra.Command) (*config.Config, error) {
	cfg := config.DefaultConfig()

	if preset != "" {
		p := config.GetPreset(preset)
		if p == nil {
			return nil, fmt.Errorf("unknown preset: %s (available: %v)", preset, config.ListPresets())
		}
		cfg = p
	}

	if configFile != "" {
		fileCfg, err := config.Load(configFile)
		if err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
		cfg = fileCfg
	}

	if cmd.Flags().Changed("dt") {
		cfg.Dt = dt
	}
	if cmd.Flags().Changed("time") {
		cfg.Duration = duration
	}
	if cmd.Flags().Changed("seed") || cfg.Seed == 0 {
		cfg.Seed = seed
	}
	if cmd.Flags().Changed("omega") {
		cfg.InitOmega = initOmega
	}
	if cmd.Flags().Changed("governed") {
		cfg.Governor.Enabled = governed
	}
	if cmd.Flags().Changed("kp") {
		cfg.Governor.Kp = kp
	}
	if cmd.Flags().Changed("ki") {
		cfg.Governor.Ki = ki
	}
	if cmd.Flags().Changed("kd") {
		cfg.Governor.Kd = kd
	}
	if cmd.Flags().Changed("target") {
		cfg.Governor.TargetOmega = targetOmega
	}
	if cmd.Flags().Changed("theme") {
		cfg.Theme = theme
	}

	return cfg, nil
}

func governorFor(cfg *config.Config) (sim.Governor, string) {
	if !cfg.Governor.Enabled {
		return control.NewNone(), "none"
	}
	g := cfg.Governor
	return control.NewPID(g.Kp, g.Ki, g.Kd, g.TargetOmega), "pid"
}

func defaultMetrics() []sim.Metric {
	return []sim.Metric{
		metrics.NewContainment(),
		metrics.NewEnergy(),
		metrics.NewContact(),
		metrics.NewSticking(),
		metrics.NewSpinEffort(),
	}
}

func runSimulation(cmd *cobra.Command, args []string) error {
	cfg, err := loadSettings(cmd)
	if err != nil {
		return err
	}

	st := store.New(dataDir)
	if err := st.Init(); err != nil {
		return err
	}

	w := cfg.NewWheel(rand.New(rand.NewSource(cfg.Seed)))
	runner := sim.New(w)
	for _, m := range defaultMetrics() {
		runner.AddMetric(m)
	}
	gov, govName := governorFor(cfg)
	runner.SetGovernor(gov)

	fmt.Println("running wheel simulation...")
	start := time.Now()

	result, err := runner.Run(context.Background(), sim.Config{
		Dt:            cfg.Dt,
		Duration:      cfg.Duration,
		Seed:          cfg.Seed,
		ValidateState: true,
	})
	if err != nil {
		return err
	}

	elapsed := time.Since(start)

	runID, err := st.Save(label, sim.Config{Dt: cfg.Dt, Duration: cfg.Duration, Seed: cfg.Seed}, govName, result)
	if err != nil {
		return err
	}

	fmt.Printf("completed in %v\n", elapsed)
	fmt.Printf("run id: %s\n", runID)
	fmt.Printf("steps: %d\n", result.StepsTaken)
	for _, se := range result.Errors {
		fmt.Printf("step error: %v\n", se)
	}

	fmt.Println("\nmetrics:")
	names := make([]string, 0, len(result.Metrics))
	for name := range result.Metrics {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		fmt.Printf("  %s: %.6f\n", name, result.Metrics[name])
	}

	return nil
}

func runLive(cmd *cobra.Command, args []string) error {
	cfg, err := loadSettings(cmd)
	if err != nil {
		return err
	}

	w := cfg.NewWheel(rand.New(rand.NewSource(cfg.Seed)))
	var gov sim.Governor
	if cfg.Governor.Enabled {
		gov, _ = governorFor(cfg)
	}

	m := viz.NewModel(w, gov, viz.GetTheme(cfg.Theme))
	p := tea.NewProgram(m, tea.WithAltScreen())
	_, err = p.Run()
	return err
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg, err := loadSettings(cmd)
	if err != nil {
		return err
	}

	w := cfg.NewWheel(rand.New(rand.NewSource(cfg.Seed)))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	return server.New(server.LoadConfig(), w).Run(ctx)
}

func listRuns(cmd *cobra.Command, args []string) error {
	st := store.New(dataDir)
	runs, err := st.List()
	if err != nil {
		return err
	}

	if len(runs) == 0 {
		fmt.Println("no runs found")
		return nil
	}

	sort.Slice(runs, func(i, j int) bool { return runs[i].Timestamp.Before(runs[j].Timestamp) })

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tLABEL\tTIME\tDURATION\tDT\tGOVERNOR")

	for _, run := range runs {
		fmt.Fprintf(w, "%s\t%s\t%s\t%.2fs\t%.4fs\t%s\n",
			run.ID,
			run.Label,
			run.Timestamp.Format("2006-01-02 15:04:05"),
			run.Duration,
			run.Dt,
			run.Governor,
		)
	}

	return w.Flush()
}

func plotRun(cmd *cobra.Command, args []string) error {
	runID := args[0]

	st := store.New(dataDir)
	meta, err := st.Load(runID)
	if err != nil {
		return err
	}

	states, _, err := st.LoadStates(runID)
	if err != nil {
		return err
	}

	if len(states) == 0 {
		return fmt.Errorf("no data to plot")
	}

	fmt.Printf("run: %s\n", meta.ID)
	fmt.Printf("samples: %d\n\n", len(states))

	plots := []struct {
		caption string
		data    []float64
	}{
		{"wheel omega (rad/s)", column(states, 1)},
		{"ball speed (px/s)", analysis.Speed(states)},
		{"ball spin omega (rad/s)", column(states, 7)},
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

	return nil
}

func column(states [][]float64, idx int) []float64 {
	data := make([]float64, len(states))
	for i := range states {
		if idx < len(states[i]) {
			data[i] = states[i][idx]
		}
	}
	return data
}

func analyzeRun(cmd *cobra.Command, args []string) error {
	runID := args[0]

	st := store.New(dataDir)
	meta, err := st.Load(runID)
	if err != nil {
		return err
	}

	states, _, err := st.LoadStates(runID)
	if err != nil {
		return err
	}

	if len(states) == 0 {
		return fmt.Errorf("no data")
	}

	fmt.Printf("frequency analysis: %s\n\n", meta.ID)

	ps := analysis.PowerSpectrum(analysis.Speed(states))
	plotData := ps[:len(ps)/4]

	graph := asciigraph.Plot(plotData,
		asciigraph.Height(15),
		asciigraph.Width(80),
		asciigraph.Caption("power spectrum (ball speed)"),
	)
	fmt.Println(graph)
	fmt.Println()

	freq := analysis.DominantFrequency(plotData, meta.Duration)
	fmt.Printf("dominant frequency: %.3f hz\n", freq)
	if freq > 0 {
		fmt.Printf("period: %.3f s\n", 1.0/freq)
	}

	return nil
}

func exportCSV(cmd *cobra.Command, args []string) error {
	runID := args[0]

	st := store.New(dataDir)
	states, times, err := st.LoadStates(runID)
	if err != nil {
		return err
	}

	if len(states) == 0 {
		return fmt.Errorf("no data to export")
	}

	w := csv.NewWriter(os.Stdout)
	defer w.Flush()

	header := append([]string{"time"}, sim.Columns...)
	if err := w.Write(header); err != nil {
		return err
	}

	for i := range states {
		row := []string{strconv.FormatFloat(times[i], 'f', 6, 64)}
		for _, val := range states[i] {
			row = append(row, strconv.FormatFloat(val, 'f', 6, 64))
		}
		if err := w.Write(row); err != nil {
			return err
		}
	}

	return nil
}

func exportJSONRun(cmd *cobra.Command, args []string) error {
	runID := args[0]

	st := store.New(dataDir)
	meta, err := st.Load(runID)
	if err != nil {
		return err
	}

	states, times, err := st.LoadStates(runID)
	if err != nil {
		return err
	}

	return store.ExportJSONStdout(meta, states, times)
}

func benchWheel(cmd *cobra.Command, args []string) error {
	fmt.Println("step throughput:")
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "DURATION\tDT\tSTEPS\tTIME\tSTEPS/SEC")

	for _, dur := range []float64{1.0, 5.0, 10.0} {
		for _, step := range []float64{0.001, 0.01, 1.0 / 60.0} {
			wh := wheel.New(wheel.DefaultConfig(), rand.New(rand.NewSource(seed)))
			runner := sim.New(wh)

			start := time.Now()
			result, err := runner.Run(context.Background(), sim.Config{Dt: step, Duration: dur, Seed: seed})
			if err != nil {
				return err
			}
			elapsed := time.Since(start)

			stepsPerSec := float64(result.StepsTaken) / elapsed.Seconds()
			fmt.Fprintf(w, "%.1fs\t%.4fs\t%d\t%v\t%.0f\n",
				dur, step, result.StepsTaken, elapsed, stepsPerSec)
		}
	}
	if err := w.Flush(); err != nil {
		return err
	}

	fmt.Printf("\nensemble (%d seeded runs):\n", numRuns)
	ensemble := sim.NewEnsemble(func(s int64) *wheel.Wheel {
		return wheel.New(wheel.DefaultConfig(), rand.New(rand.NewSource(s)))
	}, numRuns, seed)
	ensemble.SetMetrics(defaultMetrics)

	results, err := ensemble.Run(context.Background(), sim.Config{Dt: config.DefaultDt, Duration: 5.0})
	if err != nil {
		return err
	}

	ew := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(ew, "SEED\tCONTAINMENT\tCONTACT\tSTICKING")
	for i, r := range results {
		fmt.Fprintf(ew, "%d\t%.3f\t%.3f\t%.3f\n",
			seed+int64(i),
			r.Metrics["containment_margin"],
			r.Metrics["contact_fraction"],
			r.Metrics["sticking_fraction"],
		)
	}
	return ew.Flush()
}

func runScenario(cmd *cobra.Command, args []string) error {
	sc, err := scenario.Load(args[0])
	if err != nil {
		return err
	}

	st := store.New(dataDir)
	if err := st.Init(); err != nil {
		return err
	}

	w := wheel.New(wheel.DefaultConfig(), rand.New(rand.NewSource(sc.Seed)))
	runner := sim.New(w)
	for _, m := range defaultMetrics() {
		runner.AddMetric(m)
	}
	script := sc.Script()
	runner.SetGovernor(script)

	fmt.Printf("scenario: %s\n", sc.Name)
	if sc.Description != "" {
		fmt.Println(sc.Description)
	}

	result, err := runner.Run(context.Background(), sc.RunConfig())
	if err != nil {
		return err
	}

	runLabel := label
	if runLabel == "" {
		runLabel = sc.Name
	}
	runID, err := st.Save(runLabel, sc.RunConfig(), "script", result)
	if err != nil {
		return err
	}

	fmt.Printf("events fired: %d/%d\n", script.Fired(), len(sc.Events))
	fmt.Printf("run id: %s\n", runID)

	fmt.Println("\nmetrics:")
	names := make([]string, 0, len(result.Metrics))
	for name := range result.Metrics {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		fmt.Printf("  %s: %.6f\n", name, result.Metrics[name])
	}

	return nil
}

func snapshot(cmd *cobra.Command, args []string) error {
	var svg string

	if len(args) == 1 {
		st := store.New(dataDir)
		states, _, err := st.LoadStates(args[0])
		if err != nil {
			return err
		}
		svg = export.BallPathToSVG(states, 800, 800, "#00ff00")
		if svg == "" {
			return fmt.Errorf("not enough data in run %s", args[0])
		}
	} else {
		cfg, err := loadSettings(cmd)
		if err != nil {
			return err
		}

		w := cfg.NewWheel(rand.New(rand.NewSource(cfg.Seed)))
		runner := sim.New(w)
		if snapTime > 0 {
			err = runner.RunWithCallback(context.Background(),
				sim.Config{Dt: cfg.Dt, Duration: snapTime},
				func(*wheel.Wheel, float64) bool { return true })
			if err != nil {
				return err
			}
		}

		if braille {
			canvas := viz.NewCanvas(100, 50)
			viz.RenderWheel(canvas, w)
			svg = export.CanvasToSVG(canvas, 4)
		} else {
			svg = export.FrameToSVG(w)
		}
	}

	if outFile == "" {
		fmt.Println(svg)
		return nil
	}
	return os.WriteFile(outFile, []byte(svg), 0644)
}
