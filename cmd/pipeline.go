package cmd

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/toyinlola/flightrisk/pkg/cli"
	"github.com/toyinlola/flightrisk/pkg/interfaces"
	"github.com/toyinlola/flightrisk/pkg/metrics"
	"github.com/toyinlola/flightrisk/pkg/report"
)

// inputs is everything a command needs to run the pipeline.
type inputs struct {
	cfg         *cli.Config
	assessments []interfaces.Assessment
	scenario    interfaces.Scenario
	threat      interfaces.ThreatLevel
}

// loadInputs resolves configuration, the optional assessment file and --set
// overrides. Precedence for scenario and threat: flag, then file, then config.
func loadInputs(path string, overrides []string, scenarioFlag, threatFlag string) (*inputs, error) {
	cfg, err := cli.LoadConfig(cfgFile)
	if err != nil {
		return nil, err
	}
	slog.Debug("config loaded",
		"defaults.scenario", cfg.Defaults.Scenario,
		"defaults.threat", cfg.Defaults.Threat,
		"scoring.clamp_confidence", cfg.Scoring.IsClampEnabled(),
	)

	file := &cli.AssessmentFile{}
	if path != "" {
		slog.Info("loading assessment", "path", path)
		file, err = cli.LoadAssessment(path)
		if err != nil {
			return nil, err
		}
	}

	for _, raw := range overrides {
		o, err := cli.ParseOverride(raw)
		if err != nil {
			return nil, err
		}
		file.Apply(o)
	}

	in := &inputs{
		cfg:         cfg,
		assessments: file.Assessments(),
		scenario:    cfg.Defaults.Scenario,
		threat:      cfg.Defaults.Threat,
	}
	if file.Scenario != "" {
		in.scenario = file.Scenario
	}
	if file.Threat != "" {
		in.threat = file.Threat
	}
	if scenarioFlag != "" {
		in.scenario = interfaces.Scenario(scenarioFlag)
	}
	if threatFlag != "" {
		in.threat = interfaces.ThreatLevel(threatFlag)
	}

	for _, a := range in.assessments {
		slog.Debug("assessment", "criterion", a.Criterion, "term", a.Term, "confidence", a.Confidence, "weight", a.Weight)
	}
	return in, nil
}

// emit renders the report, writes metrics if requested and reports R5.
func emit(cmd *cobra.Command, cfg *cli.Config, results []interfaces.EvaluationResult) error {
	rpt := report.NewGenerator().Generate(results...)

	name := format
	if fl := cmd.Flag("format"); fl == nil || !fl.Changed {
		name = cfg.Output.Format
	}
	f := selectFormatter(name)

	w := cmd.OutOrStdout()
	if output != "" {
		file, err := os.Create(output)
		if err != nil {
			return fmt.Errorf("cmd: creating output file: %w", err)
		}
		defer file.Close() // best-effort cleanup
		w = file
	}

	if err := f.Format(w, rpt); err != nil {
		return fmt.Errorf("cmd: writing report: %w", err)
	}

	textfile := metricsTextfile
	if textfile == "" {
		textfile = cfg.Output.MetricsTextfile
	}
	if textfile != "" {
		rec := metrics.NewRecorder()
		for _, r := range results {
			rec.Record(r)
		}
		if err := rec.WriteTextfile(textfile); err != nil {
			return err
		}
		slog.Info("metrics written", "path", textfile)
	}

	for _, r := range results {
		if r.Conclusion == interfaces.ConclusionVeryLow {
			return ErrUnsafe
		}
	}
	return nil
}

// selectFormatter returns the appropriate report formatter for the given format name.
func selectFormatter(name string) interfaces.Formatter {
	switch name {
	case "json":
		return report.NewJSONFormatter()
	case "markdown":
		return report.NewMarkdownFormatter()
	default:
		return report.NewTerminalFormatter()
	}
}
