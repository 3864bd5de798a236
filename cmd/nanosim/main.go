package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/kiran-v/nanosim/internal/config"
	"github.com/kiran-v/nanosim/internal/delivery"
	"github.com/kiran-v/nanosim/internal/design"
	"github.com/kiran-v/nanosim/internal/sim"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	size        float64
	payloadName string
	targetFlag  []float64
	seed        int64
	runs        int
	jsonOut     bool
	trace       bool
	configFile  string
	preset      string
	verbose     bool
	// Sweep grid
	sweepMin  float64
	sweepMax  float64
	sweepStep float64
)

var (
	titleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#00ccff"))
	labelStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#888899"))
	okStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#00ff88"))
	warnStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#ffaa00"))
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "nanosim",
		Short: "nanobot design and delivery simulation lab",
	}

	designCmd := &cobra.Command{
		Use:   "design",
		Short: "design a nanobot and print its specifications",
		RunE:  runDesign,
	}
	designCmd.Flags().Float64Var(&size, "size", config.DefaultSize, "vehicle size (nm)")
	designCmd.Flags().StringVar(&payloadName, "payload", config.DefaultPayload, "payload type")
	designCmd.Flags().BoolVar(&jsonOut, "json", false, "emit the design as JSON")

	simulateCmd := &cobra.Command{
		Use:   "simulate",
		Short: "simulate delivery of a designed nanobot",
		RunE:  runSimulate,
	}
	simulateCmd.Flags().Float64Var(&size, "size", config.DefaultSize, "vehicle size (nm)")
	simulateCmd.Flags().StringVar(&payloadName, "payload", config.DefaultPayload, "payload type")
	simulateCmd.Flags().Float64SliceVar(&targetFlag, "target", []float64{1, 1, 1}, "target coordinates x,y,z")
	simulateCmd.Flags().Int64Var(&seed, "seed", time.Now().UnixNano(), "random seed")
	simulateCmd.Flags().IntVar(&runs, "runs", config.DefaultRuns, "parallel runs over consecutive seeds")
	simulateCmd.Flags().StringVar(&configFile, "config", "", "config file path (yaml)")
	simulateCmd.Flags().StringVar(&preset, "preset", "", "use preset configuration")
	simulateCmd.Flags().BoolVar(&trace, "trace", false, "log positions during the run")
	simulateCmd.Flags().BoolVar(&jsonOut, "json", false, "emit the full result as JSON")
	simulateCmd.Flags().BoolVar(&verbose, "verbose", false, "verbose logging")

	sweepCmd := &cobra.Command{
		Use:   "sweep",
		Short: "sweep vehicle sizes for a payload",
		RunE:  runSweep,
	}
	sweepCmd.Flags().StringVar(&payloadName, "payload", config.DefaultPayload, "payload type")
	sweepCmd.Flags().Float64SliceVar(&targetFlag, "target", []float64{1, 1, 1}, "target coordinates x,y,z")
	sweepCmd.Flags().Float64Var(&sweepMin, "min", 5, "minimum size (nm)")
	sweepCmd.Flags().Float64Var(&sweepMax, "max", 100, "maximum size (nm)")
	sweepCmd.Flags().Float64Var(&sweepStep, "step", 5, "size increment (nm)")
	sweepCmd.Flags().Int64Var(&seed, "seed", 42, "random seed shared by every point")

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list preset configurations",
		RunE: func(cmd *cobra.Command, args []string) error {
			names := config.ListPresets()
			if len(names) == 0 {
				fmt.Println("no presets")
				return nil
			}
			w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "NAME\tSIZE\tPAYLOAD\tRUNS")
			for _, name := range names {
				p := config.GetPreset(name)
				fmt.Fprintf(w, "%s\t%.0fnm\t%s\t%d\n", name, p.Size, p.Payload, p.Runs)
			}
			return w.Flush()
		},
	}

	rootCmd.AddCommand(designCmd, simulateCmd, sweepCmd, presetsCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func runDesign(cmd *cobra.Command, args []string) error {
	bot, err := design.Design(size, design.ParsePayload(payloadName))
	if err != nil {
		return err
	}

	if jsonOut {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(bot)
	}

	fmt.Println(titleStyle.Render("nanobot design"))
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "%s\t%.1f nm\n", labelStyle.Render("size"), bot.Size)
	fmt.Fprintf(w, "%s\t%s\n", labelStyle.Render("payload"), bot.Payload)
	fmt.Fprintf(w, "%s\t%s\n", labelStyle.Render("mechanism"), bot.Mechanism)
	fmt.Fprintf(w, "%s\t%.4f\n", labelStyle.Render("efficiency"), bot.Efficiency)
	fmt.Fprintf(w, "%s\t%.4f\n", labelStyle.Render("size factor"), bot.Factors.SizeFactor)
	fmt.Fprintf(w, "%s\tweight %.2f, stability %.2f, diffusion %.2f\n",
		labelStyle.Render("payload factors"),
		bot.Factors.PayloadFactors.Weight,
		bot.Factors.PayloadFactors.Stability,
		bot.Factors.PayloadFactors.Diffusion,
	)
	if err := w.Flush(); err != nil {
		return err
	}

	fmt.Println()
	fmt.Println(titleStyle.Render("design specs"))
	fmt.Printf("  surface: %s charge, %s hydrophobicity\n",
		bot.Specs.SurfaceChemistry.Charge, bot.Specs.SurfaceChemistry.Hydrophobicity)
	fmt.Printf("  coating: %s, %.1f nm, %s\n",
		bot.Specs.Coating.Material, bot.Specs.Coating.ThicknessNM, bot.Specs.Coating.DegradationRate)
	fmt.Printf("  stability: %.0f-%.0f C, pH %.1f-%.1f, %d days shelf life\n",
		bot.Specs.Stability.TemperatureRange.Min, bot.Specs.Stability.TemperatureRange.Max,
		bot.Specs.Stability.PHRange.Min, bot.Specs.Stability.PHRange.Max,
		bot.Specs.Stability.ShelfLifeDays)
	fmt.Println("  manufacturing:")
	for i, step := range bot.Specs.Manufacturing {
		fmt.Printf("    %d. %s\n", i+1, step)
	}
	return nil
}

func runSimulate(cmd *cobra.Command, args []string) error {
	if preset != "" {
		cfg := config.GetPreset(preset)
		if cfg == nil {
			return fmt.Errorf("unknown preset: %s (available: %s)", preset, strings.Join(config.ListPresets(), ", "))
		}
		size = cfg.Size
		payloadName = cfg.Payload
		targetFlag = cfg.Target[:]
		runs = cfg.Runs
	}

	if configFile != "" {
		cfg, err := config.Load(configFile)
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		if !cmd.Flags().Changed("size") {
			size = cfg.Size
		}
		if !cmd.Flags().Changed("payload") {
			payloadName = cfg.Payload
		}
		if !cmd.Flags().Changed("target") {
			targetFlag = cfg.Target[:]
		}
		if !cmd.Flags().Changed("runs") && cfg.Runs > 0 {
			runs = cfg.Runs
		}
		if cfg.Seed != 0 && !cmd.Flags().Changed("seed") {
			seed = cfg.Seed
		}
	}

	target, err := parseTarget(targetFlag)
	if err != nil {
		return err
	}

	logger, err := newLogger(verbose || trace)
	if err != nil {
		return err
	}
	defer logger.Sync()

	bot, err := design.Design(size, design.ParsePayload(payloadName))
	if err != nil {
		return err
	}

	logger.Info("designed nanobot",
		zap.Float64("size_nm", bot.Size),
		zap.String("payload", string(bot.Payload)),
		zap.String("mechanism", string(bot.Mechanism)),
		zap.Float64("efficiency", bot.Efficiency),
	)

	if runs > 1 {
		return runEnsemble(bot, target, logger)
	}

	var observers []sim.Observer
	if trace {
		observers = append(observers, &traceObserver{log: logger, every: 100})
	}

	start := time.Now()
	result, err := delivery.SimulateSeed(bot, target, seed, observers...)
	if err != nil {
		return err
	}

	logger.Info("simulation complete",
		zap.Duration("elapsed", time.Since(start)),
		zap.Int("steps", result.Steps),
		zap.Bool("target_reached", result.TargetReached),
	)

	if jsonOut {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(result)
	}

	printResult(result)
	return nil
}

func runEnsemble(bot *design.Nanobot, target sim.Vec, logger *zap.Logger) error {
	start := time.Now()
	results, err := delivery.NewEnsemble(bot, target, runs, seed).Run(context.Background())
	if err != nil {
		return err
	}
	summary := delivery.Summarize(results)

	logger.Info("ensemble complete",
		zap.Duration("elapsed", time.Since(start)),
		zap.Int("runs", summary.Runs),
	)

	if jsonOut {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(summary)
	}

	fmt.Println(titleStyle.Render("ensemble summary"))
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "%s\t%d\n", labelStyle.Render("runs"), summary.Runs)
	fmt.Fprintf(w, "%s\t%.4f\n", labelStyle.Render("mean success rate"), summary.MeanSuccessRate)
	fmt.Fprintf(w, "%s\t%.1f%%\n", labelStyle.Render("reached target"), summary.ReachedFraction*100)
	fmt.Fprintf(w, "%s\t%.1f\n", labelStyle.Render("mean steps"), summary.MeanSteps)
	return w.Flush()
}

func runSweep(cmd *cobra.Command, args []string) error {
	target, err := parseTarget(targetFlag)
	if err != nil {
		return err
	}

	sizes := delivery.SizeRange(sweepMin, sweepMax, sweepStep)
	if len(sizes) == 0 {
		return fmt.Errorf("empty size range [%g, %g] step %g", sweepMin, sweepMax, sweepStep)
	}

	points, err := delivery.SweepSizes(design.ParsePayload(payloadName), sizes, target, seed)
	if err != nil {
		return err
	}

	fmt.Println(titleStyle.Render(fmt.Sprintf("size sweep (%s)", payloadName)))
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "SIZE\tMECHANISM\tEFFICIENCY\tSUCCESS\tSTEPS\tREACHED")

	best := points[0]
	for _, p := range points {
		fmt.Fprintf(w, "%.1f\t%s\t%.4f\t%.4f\t%d\t%v\n",
			p.Size, p.Mechanism, p.Efficiency, p.SuccessRate, p.Steps, p.TargetReached)
		if p.SuccessRate > best.SuccessRate {
			best = p
		}
	}
	if err := w.Flush(); err != nil {
		return err
	}

	fmt.Printf("\nbest: %s\n", okStyle.Render(
		fmt.Sprintf("%.1f nm (%s, success %.4f)", best.Size, best.Mechanism, best.SuccessRate)))
	return nil
}

func printResult(result *delivery.Result) {
	status := okStyle.Render("reached")
	if !result.TargetReached {
		status = warnStyle.Render("exhausted")
	}

	fmt.Println(titleStyle.Render("delivery simulation"))
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "%s\t%s\n", labelStyle.Render("status"), status)
	fmt.Fprintf(w, "%s\t%d\n", labelStyle.Render("steps"), result.Steps)
	fmt.Fprintf(w, "%s\t%.4f\n", labelStyle.Render("success rate"), result.SuccessRate)
	fmt.Fprintf(w, "%s\t%.4f\n", labelStyle.Render("total distance"), result.Analysis.TotalDistance)
	fmt.Fprintf(w, "%s\t%.6f\n", labelStyle.Render("average velocity"), result.Analysis.AverageVelocity)
	fmt.Fprintf(w, "%s\t%.4f\n", labelStyle.Render("path linearity"), result.Analysis.PathLinearity)
	fmt.Fprintf(w, "%s\t%.6f\n", labelStyle.Render("brownian intensity"), result.Analysis.EnvironmentalImpact.BrownianIntensity)
	w.Flush()
}

func parseTarget(coords []float64) (sim.Vec, error) {
	if len(coords) != 3 {
		return sim.Vec{}, fmt.Errorf("target needs exactly 3 coordinates, got %d", len(coords))
	}
	return sim.Vec{coords[0], coords[1], coords[2]}, nil
}

func newLogger(verbose bool) (*zap.Logger, error) {
	cfg := zap.NewDevelopmentConfig()
	if !verbose {
		cfg.Level = zap.NewAtomicLevelAt(zap.WarnLevel)
	}
	return cfg.Build()
}

// traceObserver logs the vehicle position every few steps.
type traceObserver struct {
	log   *zap.Logger
	every int
}

func (t *traceObserver) OnStep(step int, pos sim.Vec, velocity float64) {
	if t.every > 0 && step%t.every != 0 {
		return
	}
	t.log.Info("step",
		zap.Int("n", step),
		zap.Float64("x", pos[0]),
		zap.Float64("y", pos[1]),
		zap.Float64("z", pos[2]),
		zap.Float64("velocity", velocity),
	)
}
