package cmd

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/toyinlola/flightrisk/pkg/interfaces"
	"github.com/toyinlola/flightrisk/pkg/scorer"
)

var tablesCmd = &cobra.Command{
	Use:   "tables",
	Short: "Print the criteria, terms, threat exponents and thresholds",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		calc := scorer.NewCalculator()
		tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)

		fmt.Fprintln(tw, "CRITERION\tNAME\tSEED WEIGHT")
		for i, c := range scorer.DefaultCriteria() {
			fmt.Fprintf(tw, "%s\t%s\t%.0f\n", c.ID, c.Name, scorer.DefaultWeightSeed(i))
		}
		fmt.Fprintln(tw)

		fmt.Fprintln(tw, "TERM\tLABEL\tRANGE")
		for _, t := range calc.Terms().Terms() {
			fmt.Fprintf(tw, "%s\t%s\t[%.0f, %.0f]\n", t.ID, t.Label, t.Lo, t.Hi)
		}
		fmt.Fprintln(tw)

		exps := calc.Exponents()
		fmt.Fprintln(tw, "THREAT\tEXPONENT\t")
		for _, level := range interfaces.ThreatLevels() {
			fmt.Fprintf(tw, "%s\t%.4f\t\n", level, exps[level])
		}
		fmt.Fprintln(tw)

		th := calc.Thresholds()
		fmt.Fprintln(tw, "CONCLUSION\tLABEL\tWHEN")
		fmt.Fprintf(tw, "%s\t%s\tr > %.2f\n", interfaces.ConclusionHigh, interfaces.ConclusionHigh.Label(), th.High)
		fmt.Fprintf(tw, "%s\t%s\tr > %.2f\n", interfaces.ConclusionAboveAverage, interfaces.ConclusionAboveAverage.Label(), th.AboveAverage)
		fmt.Fprintf(tw, "%s\t%s\tr > %.2f\n", interfaces.ConclusionAverage, interfaces.ConclusionAverage.Label(), th.Average)
		fmt.Fprintf(tw, "%s\t%s\tr > %.2f\n", interfaces.ConclusionLow, interfaces.ConclusionLow.Label(), th.Low)
		fmt.Fprintf(tw, "%s\t%s\totherwise\n", interfaces.ConclusionVeryLow, interfaces.ConclusionVeryLow.Label())

		return tw.Flush()
	},
}

func init() {
	rootCmd.AddCommand(tablesCmd)
}
