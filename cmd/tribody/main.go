package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/guptarohit/asciigraph"
	"github.com/spf13/cobra"

	"github.com/san-kum/tribody/internal/config"
	"github.com/san-kum/tribody/internal/metrics"
	"github.com/san-kum/tribody/internal/physics"
	"github.com/san-kum/tribody/internal/sim"
	"github.com/san-kum/tribody/internal/store"
	"github.com/san-kum/tribody/internal/viz"
)

var (
	dataDir    string
	configFile string
	preset     string
	seed       int64
	duration   float64
	frameDt    float64
	timeScale  float64
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "tribody",
		Short: "three-body gravity sandbox",
		RunE:  runLive,
	}

	rootCmd.PersistentFlags().StringVar(&dataDir, "data", ".tribody", "data directory")
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "config file path (yaml)")
	rootCmd.PersistentFlags().StringVar(&preset, "preset", "", "preset configuration (random, binary, figure-eight)")
	rootCmd.PersistentFlags().Int64Var(&seed, "seed", config.DefaultSeed, "random seed")

	runCmd := &cobra.Command{
		Use:   "run",
		Short: "run headless and record the trajectory",
		RunE:  runHeadless,
	}
	runCmd.Flags().Float64Var(&duration, "time", 30.0, "simulated duration (seconds)")
	runCmd.Flags().Float64Var(&frameDt, "dt", 1.0/60.0, "frame interval (seconds)")
	runCmd.Flags().Float64Var(&timeScale, "scale", config.DefaultTimeScale, "time scale factor")

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "list recorded runs",
		RunE:  listRuns,
	}

	plotCmd := &cobra.Command{
		Use:   "plot [run_id]",
		Short: "plot a recorded run",
		Args:  cobra.ExactArgs(1),
		RunE:  plotRun,
	}

	exportCmd := &cobra.Command{
		Use:   "export [run_id]",
		Short: "export a recorded run as json",
		Args:  cobra.ExactArgs(1),
		RunE:  exportRun,
	}

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list available presets",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Println(strings.Join(config.ListPresets(), "\n"))
		},
	}

	rootCmd.AddCommand(runCmd, listCmd, plotCmd, exportCmd, presetsCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg := config.Default()

	if preset != "" {
		cfg = config.GetPreset(preset)
		if cfg == nil {
			return nil, fmt.Errorf("unknown preset %q (try: %s)",
				preset, strings.Join(config.ListPresets(), ", "))
		}
	}
	if configFile != "" {
		loaded, err := config.Load(configFile)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}
	if cmd.Flags().Changed("seed") {
		cfg.Seed = seed
	}
	return cfg, nil
}

func runLive(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	s, err := sim.New(cfg)
	if err != nil {
		return err
	}
	return viz.Run(s, cfg)
}

func runHeadless(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	if cmd.Flags().Changed("scale") {
		cfg.Step.TimeScale = timeScale
	}

	s, err := sim.New(cfg)
	if err != nil {
		return err
	}
	gravity := physics.NewGravity(cfg.Gravity.G, cfg.Gravity.Softening)
	s.AddMetric(metrics.NewEnergyDrift(gravity))
	s.AddMetric(metrics.NewMeanEnergy(gravity))

	st := store.New(dataDir)
	if err := st.Init(); err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	fmt.Printf("running %s for %.1fs...\n", cfg.Preset, duration)
	start := time.Now()

	result, err := s.Run(ctx, duration, frameDt)
	if err != nil {
		return err
	}

	runID, err := st.Save(cfg.Preset, frameDt, duration, cfg.Seed, cfg.Step.TimeScale, result)
	if err != nil {
		return err
	}

	fmt.Printf("completed in %v\n", time.Since(start))
	fmt.Printf("run id: %s\n", runID)
	fmt.Printf("frames: %d\n", result.StepsTaken)
	if result.Collided {
		fmt.Println("stopped early: bodies collided")
	}
	fmt.Println("\nmetrics:")
	fmt.Printf("  energy_drift_final: %.6f\n", result.EnergyDrift)
	for name, val := range result.Metrics {
		fmt.Printf("  %s: %.6f\n", name, val)
	}
	return nil
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

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tPRESET\tTIME\tDURATION\tFRAMES\tCOLLIDED\tDRIFT")
	for _, run := range runs {
		fmt.Fprintf(w, "%s\t%s\t%s\t%.1fs\t%d\t%v\t%.5f\n",
			run.ID,
			run.Preset,
			run.Timestamp.Format("2006-01-02 15:04:05"),
			run.Duration,
			run.Steps,
			run.Collided,
			run.EnergyDrift,
		)
	}
	return w.Flush()
}

var plotLabels = []string{
	"body 0 x", "body 0 y",
	"body 1 x", "body 1 y",
	"body 2 x", "body 2 y",
}

func plotRun(cmd *cobra.Command, args []string) error {
	st := store.New(dataDir)
	meta, err := st.Load(args[0])
	if err != nil {
		return err
	}
	states, _, err := st.LoadStates(args[0])
	if err != nil {
		return err
	}
	if len(states) == 0 {
		return fmt.Errorf("no data to plot for %s", meta.ID)
	}

	fmt.Printf("run: %s\npreset: %s\nsamples: %d\n\n", meta.ID, meta.Preset, len(states))

	// Position columns per body: x, y at offsets 0, 1 of each 4-wide
	// body block.
	for plot, label := range plotLabels {
		bodyIdx := plot / 2
		col := bodyIdx*4 + plot%2

		data := make([]float64, len(states))
		for i := range states {
			if col < len(states[i]) {
				data[i] = states[i][col]
			}
		}

		graph := asciigraph.Plot(data,
			asciigraph.Height(8),
			asciigraph.Width(80),
			asciigraph.Caption(label),
		)
		fmt.Println(graph)
		fmt.Println()
	}
	return nil
}

func exportRun(cmd *cobra.Command, args []string) error {
	st := store.New(dataDir)
	return st.ExportJSON(os.Stdout, args[0])
}
