package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"text/tabwriter"

	"github.com/guptarohit/asciigraph"
	"github.com/spf13/cobra"

	"github.com/jsolberg/pointmass/internal/analysis"
	"github.com/jsolberg/pointmass/internal/config"
	"github.com/jsolberg/pointmass/internal/export"
	"github.com/jsolberg/pointmass/internal/scenario"
	"github.com/jsolberg/pointmass/internal/storage"
	"github.com/jsolberg/pointmass/internal/viz"
)

var (
	configFile string
	preset     string
	dataDir    string
	shot       string
	springKind string
	dt         float64
	duration   float64
	saveRun    bool
	svgOut     string
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "pointmass",
		Short: "particle physics demos",
	}

	runCmd := &cobra.Command{
		Use:   "run [scenario]",
		Short: "run a scenario and print its summary",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(args)
			if err != nil {
				return err
			}
			return runScenario(cfg)
		},
	}

	liveCmd := &cobra.Command{
		Use:   "live [scenario]",
		Short: "watch a scenario in a live terminal view",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(args)
			if err != nil {
				return err
			}
			s, err := scenario.Build(cfg)
			if err != nil {
				return err
			}
			return viz.Run(cfg.Scenario, s, scenario.Config(cfg))
		},
	}

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list scenario presets",
		Run: func(cmd *cobra.Command, args []string) {
			w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "SCENARIO\tPRESET\tDURATION")
			for scenarioName, presets := range config.Presets {
				for name, cfg := range presets {
					fmt.Fprintf(w, "%s\t%s\t%.1fs\n", scenarioName, name, cfg.Duration)
				}
			}
			w.Flush()
		},
	}

	runsCmd := &cobra.Command{
		Use:   "runs",
		Short: "list saved runs",
		RunE: func(cmd *cobra.Command, args []string) error {
			store := storage.New(dataDir)
			runs, err := store.List()
			if err != nil {
				return err
			}
			w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "ID\tSCENARIO\tSTEPS\tSAVED")
			for _, r := range runs {
				fmt.Fprintf(w, "%s\t%s\t%d\t%s\n",
					r.ID, r.Scenario, r.Steps, r.Timestamp.Format("2006-01-02 15:04:05"))
			}
			return w.Flush()
		},
	}

	for _, cmd := range []*cobra.Command{runCmd, liveCmd} {
		cmd.Flags().StringVarP(&configFile, "config", "c", "", "YAML config file")
		cmd.Flags().StringVarP(&preset, "preset", "p", "", "preset name")
		cmd.Flags().StringVar(&shot, "shot", "", "ballistic shot type (pistol, artillery, fireball, laser)")
		cmd.Flags().StringVar(&springKind, "spring", "", "spring kind (spring, bungee, anchored)")
		cmd.Flags().Float64Var(&dt, "dt", 0, "step size in seconds")
		cmd.Flags().Float64Var(&duration, "duration", 0, "run length in seconds")
	}
	runCmd.Flags().BoolVar(&saveRun, "save", false, "persist the run under the data directory")
	runCmd.Flags().StringVar(&svgOut, "svg", "", "write a side-view trajectory plot to this SVG file")
	rootCmd.PersistentFlags().StringVar(&dataDir, "data", "data", "data directory for saved runs")

	rootCmd.AddCommand(runCmd, liveCmd, presetsCmd, runsCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// loadConfig layers, in order: defaults, config file, preset, then
// individual flags.
func loadConfig(args []string) (*config.Config, error) {
	var cfg *config.Config
	var err error

	if configFile != "" {
		cfg, err = config.Load(configFile)
		if err != nil {
			return nil, err
		}
	} else {
		cfg = config.DefaultConfig()
	}

	if len(args) > 0 {
		cfg.Scenario = args[0]
	}

	if preset != "" {
		p := config.GetPreset(cfg.Scenario, preset)
		if p == nil {
			return nil, fmt.Errorf("no preset %q for scenario %q", preset, cfg.Scenario)
		}
		c := *p
		cfg = &c
	}

	if shot != "" {
		cfg.Shot = shot
	}
	if springKind != "" {
		cfg.Spring.Kind = springKind
	}
	if dt > 0 {
		cfg.Dt = dt
	}
	if duration > 0 {
		cfg.Duration = duration
	}
	if dataDir != "" {
		cfg.DataDir = dataDir
	}

	return cfg, cfg.Validate()
}

func runScenario(cfg *config.Config) error {
	s, err := scenario.Build(cfg)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	simCfg := scenario.Config(cfg)
	result, err := s.Run(ctx, simCfg)
	if err != nil {
		return err
	}
	for _, e := range result.Errors {
		fmt.Fprintf(os.Stderr, "warning: %v\n", e)
	}

	summary, err := analysis.Summarize(result, 0)
	if err != nil {
		return err
	}

	fmt.Printf("%s (%d steps at dt=%.4fs)\n\n", cfg.Scenario, result.StepsTaken, simCfg.Dt)
	fmt.Println(summary.Format())

	heights := make([]float64, len(result.Positions))
	for i, frame := range result.Positions {
		heights[i] = frame[0].Y
	}
	if len(heights) > 1 {
		fmt.Println()
		fmt.Println(asciigraph.Plot(heights,
			asciigraph.Height(12),
			asciigraph.Width(72),
			asciigraph.Caption("height (m)"),
		))
	}

	if svgOut != "" {
		svg, err := export.TrajectorySVG(result, 0, 800, 400)
		if err != nil {
			return err
		}
		if err := os.WriteFile(svgOut, []byte(svg), 0644); err != nil {
			return err
		}
		fmt.Printf("\nwrote %s\n", svgOut)
	}

	if saveRun {
		store := storage.New(cfg.DataDir)
		if err := store.Init(); err != nil {
			return err
		}
		runID, err := store.Save(cfg.Scenario, simCfg, result)
		if err != nil {
			return err
		}
		fmt.Printf("\nsaved run %s\n", runID)
	}
	return nil
}
