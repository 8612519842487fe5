package cmd

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/spf13/cobra"

	"github.com/toyinlola/flightrisk/pkg/compare"
	"github.com/toyinlola/flightrisk/pkg/interfaces"
	"github.com/toyinlola/flightrisk/pkg/scorer"
)

var (
	cmpScenarios  []string
	cmpThreats    []string
	cmpOverrides  []string
	cmpConcurrent int
)

var compareCmd = &cobra.Command{
	Use:   "compare [assessment.yml]",
	Short: "Score one assessment across scenarios and threat levels",
	Long: `Compare evaluates the same assessment under every requested scenario and
threat level and prints the resulting matrix. By default that is all four
scenarios against all five threat levels.

  flightrisk compare mission.yml
  flightrisk compare mission.yml --scenarios S1,S3 --threats C3,C5

Exits with code 1 when any cell concludes R5 (very low safety).`,
	Args: cobra.MaximumNArgs(1),
	RunE: runCompare,
}

func init() {
	compareCmd.Flags().StringSliceVar(&cmpScenarios, "scenarios", nil, "scenarios to compare (default: all)")
	compareCmd.Flags().StringSliceVar(&cmpThreats, "threats", nil, "threat levels to compare (default: all)")
	compareCmd.Flags().StringArrayVar(&cmpOverrides, "set", nil, "override a criterion: CRITERION=TERM[:CONFIDENCE[:WEIGHT]]")
	compareCmd.Flags().IntVar(&cmpConcurrent, "concurrency", 0, "maximum parallel evaluations (0 = unlimited)")
	rootCmd.AddCommand(compareCmd)
}

func runCompare(cmd *cobra.Command, args []string) error {
	var path string
	if len(args) > 0 {
		path = args[0]
	}

	in, err := loadInputs(path, cmpOverrides, "", "")
	if err != nil {
		return fmt.Errorf("compare: %w", err)
	}

	scenarios := interfaces.Scenarios()
	if len(cmpScenarios) > 0 {
		scenarios = scenarios[:0]
		for _, s := range cmpScenarios {
			scenarios = append(scenarios, interfaces.Scenario(strings.ToUpper(strings.TrimSpace(s))))
		}
	}
	threats := interfaces.ThreatLevels()
	if len(cmpThreats) > 0 {
		threats = threats[:0]
		for _, th := range cmpThreats {
			threats = append(threats, interfaces.ThreatLevel(strings.ToUpper(strings.TrimSpace(th))))
		}
	}

	calc := scorer.NewCalculator(in.cfg.CalculatorOptions()...)
	engine := compare.NewEngine(calc, compare.WithConcurrency(cmpConcurrent))

	results, err := engine.Run(cmd.Context(), in.assessments, scenarios, threats)
	if err != nil {
		return fmt.Errorf("compare: %w", err)
	}
	slog.Info("comparison complete", "evaluations", len(results))

	return emit(cmd, in.cfg, results)
}
