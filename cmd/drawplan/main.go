package main

import (
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/drawplan/drawdown-calculator/internal/calculation"
	"github.com/drawplan/drawdown-calculator/internal/config"
	"github.com/drawplan/drawdown-calculator/internal/output"
)

var (
	configPath string
	formatName string
	verbose    bool
)

// consoleLogger adapts the stdlib logger to the engine's interface.
// Debug output is gated behind --verbose.
type consoleLogger struct {
	debug bool
}

func (l consoleLogger) Debugf(format string, args ...any) {
	if l.debug {
		log.Printf("DEBUG "+format, args...)
	}
}
func (l consoleLogger) Infof(format string, args ...any)  { log.Printf("INFO "+format, args...) }
func (l consoleLogger) Warnf(format string, args ...any)  { log.Printf("WARN "+format, args...) }
func (l consoleLogger) Errorf(format string, args ...any) { log.Printf("ERROR "+format, args...) }

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "drawplan",
		Short: "Retirement distribution simulation engine",
		Long: `drawplan projects year-by-year retirement cash flow and account
balances from retirement to end of life, deterministically or as a
Monte Carlo simulation with confidence bands.`,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			// A missing .env file is fine; it only supplies defaults.
			_ = godotenv.Load()
			if configPath == "" {
				configPath = os.Getenv("DRAWPLAN_CONFIG")
			}
		},
	}

	root.PersistentFlags().StringVarP(&configPath, "config", "c", "", "path to YAML configuration (or DRAWPLAN_CONFIG)")
	root.PersistentFlags().StringVarP(&formatName, "format", "f", "console", "output format")
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")

	root.AddCommand(newSimulateCmd())
	root.AddCommand(newMonteCarloCmd())
	root.AddCommand(newExampleCmd())
	return root
}

func newSimulateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "simulate",
		Short: "Run a deterministic projection",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.NewInputParser().LoadFromFile(configPath)
			if err != nil {
				return err
			}

			engine := calculation.NewEngine()
			engine.SetLogger(consoleLogger{debug: verbose})

			result, err := engine.RunDeterministic(cfg)
			if err != nil {
				return err
			}

			formatter := output.GetFormatterByName(formatName)
			if formatter == nil {
				return fmt.Errorf("unknown output format %q", formatName)
			}
			data, err := formatter.FormatProjection(result)
			if err != nil {
				return err
			}
			_, err = cmd.OutOrStdout().Write(data)
			return err
		},
	}
}

func newMonteCarloCmd() *cobra.Command {
	var trials int
	var seed int64

	cmd := &cobra.Command{
		Use:   "montecarlo",
		Short: "Run a Monte Carlo simulation with percentile bands",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.NewInputParser().LoadFromFile(configPath)
			if err != nil {
				return err
			}
			if trials > 0 {
				cfg.MonteCarlo.NumSimulations = trials
			}
			// An explicit --seed 0 requests a random seed; an unset
			// flag keeps the configured one.
			if cmd.Flags().Changed("seed") {
				cfg.MonteCarlo.Seed = seed
			}

			engine := calculation.NewEngine()
			engine.SetLogger(consoleLogger{debug: verbose})

			bar := progressbar.NewOptions(cfg.MonteCarlo.NumSimulations,
				progressbar.OptionSetDescription("simulating"),
				progressbar.OptionSetWriter(os.Stderr),
				progressbar.OptionClearOnFinish(),
			)
			engine.OnTrialDone = func(completed, total int) {
				_ = bar.Set(completed)
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			summary, err := engine.RunMonteCarlo(ctx, cfg)
			if err != nil {
				return err
			}

			formatter := output.GetFormatterByName(formatName)
			if formatter == nil {
				return fmt.Errorf("unknown output format %q", formatName)
			}
			data, err := formatter.FormatMonteCarlo(summary)
			if err != nil {
				return err
			}
			_, err = cmd.OutOrStdout().Write(data)
			return err
		},
	}

	cmd.Flags().IntVarP(&trials, "trials", "n", 0, "override the configured trial count")
	cmd.Flags().Int64Var(&seed, "seed", 0, "override the configured seed (0 draws a random one)")
	return cmd
}

func newExampleCmd() *cobra.Command {
	var outPath string

	cmd := &cobra.Command{
		Use:   "example",
		Short: "Emit a complete example configuration",
		RunE: func(cmd *cobra.Command, args []string) error {
			parser := config.NewInputParser()
			if outPath != "" {
				if err := parser.WriteExampleConfiguration(outPath); err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Example configuration written to %s\n", outPath)
				return nil
			}

			data, err := yaml.Marshal(parser.CreateExampleConfiguration())
			if err != nil {
				return err
			}
			_, err = cmd.OutOrStdout().Write(data)
			return err
		},
	}

	cmd.Flags().StringVarP(&outPath, "out", "o", "", "write the example configuration to a file")
	return cmd
}
