// Package cmd implements the flightrisk CLI commands using Cobra.
package cmd

import (
	"errors"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
)

// ErrUnsafe is returned when an evaluation concludes R5 (very low safety).
// The error has already been reported in the output; callers only need the
// non-zero exit status.
var ErrUnsafe = errors.New("very low safety level")

var (
	cfgFile         string
	verbose         bool
	format          string
	output          string
	metricsTextfile string
)

var rootCmd = &cobra.Command{
	Use:   "flightrisk",
	Short: "Fuzzy risk assessment for UAV flight scenarios",
	Long: `flightrisk scores the safety of an unmanned aerial vehicle flight scenario.

Experts rate seven risk criteria with linguistic terms (T1..T5), a confidence
and a weight. The ratings are fuzzified, aggregated under a scenario
(S1 pessimistic .. S4 optimistic), adjusted for the external threat level
(C1..C5) and turned into a conclusion from R1 (high safety) to R5 (very low).`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return setupLogging()
	},
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute runs the root command and returns any error.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file path (default: .flightrisk.yml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose output")
	rootCmd.PersistentFlags().StringVarP(&format, "format", "f", "terminal", "output format (terminal|json|markdown)")
	rootCmd.PersistentFlags().StringVarP(&output, "output", "o", "", "write output to file instead of stdout")
	rootCmd.PersistentFlags().StringVar(&metricsTextfile, "metrics-textfile", "", "also write Prometheus textfile metrics to this path")
}

func setupLogging() error {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}

	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	})
	slog.SetDefault(slog.New(handler))

	return nil
}
