package cmd

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/toyinlola/flightrisk/pkg/interfaces"
	"github.com/toyinlola/flightrisk/pkg/scorer"
)

var (
	evalScenario  string
	evalThreat    string
	evalOverrides []string
)

var evaluateCmd = &cobra.Command{
	Use:   "evaluate [assessment.yml]",
	Short: "Score one flight scenario",
	Long: `Evaluate runs the fuzzy pipeline for one scenario and threat level.

Criteria come from an assessment file, --set overrides, or both. Anything
left unspecified defaults to term T3, confidence 0.5 and the seed weight.

  flightrisk evaluate mission.yml --threat C4
  flightrisk evaluate --scenario S1 --set K4=T5:0.9:8 --set K5=T2

Exits with code 1 when the conclusion is R5 (very low safety).`,
	Args: cobra.MaximumNArgs(1),
	RunE: runEvaluate,
}

func init() {
	evaluateCmd.Flags().StringVarP(&evalScenario, "scenario", "s", "", "aggregation scenario (S1|S2|S3|S4)")
	evaluateCmd.Flags().StringVarP(&evalThreat, "threat", "t", "", "threat level (C1..C5)")
	evaluateCmd.Flags().StringArrayVar(&evalOverrides, "set", nil, "override a criterion: CRITERION=TERM[:CONFIDENCE[:WEIGHT]]")
	rootCmd.AddCommand(evaluateCmd)
}

func runEvaluate(cmd *cobra.Command, args []string) error {
	var path string
	if len(args) > 0 {
		path = args[0]
	}

	// 1. Resolve configuration and inputs.
	in, err := loadInputs(path, evalOverrides, evalScenario, evalThreat)
	if err != nil {
		return fmt.Errorf("evaluate: %w", err)
	}

	// 2. Run the pipeline.
	calc := scorer.NewCalculator(in.cfg.CalculatorOptions()...)
	res, err := calc.Evaluate(cmd.Context(), in.assessments, in.scenario, in.threat)
	if err != nil {
		return fmt.Errorf("evaluate: %w", err)
	}

	slog.Info("evaluation complete",
		"scenario", res.Scenario,
		"threat", res.Threat,
		"aggregate", res.Aggregate,
		"adjusted", res.Adjusted,
		"conclusion", res.Conclusion,
	)

	// 3. Render.
	return emit(cmd, in.cfg, []interfaces.EvaluationResult{*res})
}
