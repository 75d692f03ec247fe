// ABOUTME: Show command printing one period and its bounds
// ABOUTME: Supports stepping to following or preceding periods with --next and --prev

package main

import (
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/harper/calendr/internal/period"
)

var showCmd = &cobra.Command{
	Use:     "show <kind> [date]",
	Aliases: []string{"s"},
	Short:   "Show the period of a kind containing a date",
	Long: "Show the period of a kind (" + fixedKinds() + ") containing a date,\n" +
		"or a smart view such as today, yesterday, last-week or next-month.",
	Args: cobra.RangeArgs(1, 2),
	RunE: func(cmd *cobra.Command, args []string) error {
		next, _ := cmd.Flags().GetInt("next")
		prev, _ := cmd.Flags().GetInt("prev")

		p, err := resolvePeriod(args)
		if err != nil {
			return err
		}
		printPeriod(cmd.OutOrStdout(), navigate(p, next, prev))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(showCmd)
	showCmd.ValidArgsFunction = completePeriod
	showCmd.Flags().Int("next", 0, "move forward this many periods")
	showCmd.Flags().Int("prev", 0, "move back this many periods")
}

// printPeriod writes a period summary with its label, bounds and span.
func printPeriod(w io.Writer, p period.Period) {
	bold := color.New(color.Bold).SprintFunc()
	faint := color.New(color.Faint).SprintFunc()
	green := color.New(color.FgGreen).SprintFunc()

	layout := cfg.GetDateLayout()
	fmt.Fprintf(w, "%s %s", bold(p.Kind()), p)
	if p.IsCurrent() {
		fmt.Fprintf(w, " %s", green("(current)"))
	}
	fmt.Fprintln(w)
	fmt.Fprintf(w, "  %s %s\n", faint("begin:"), p.Format(layout))
	fmt.Fprintf(w, "  %s   %s\n", faint("end:"), p.End().Format(layout))
	span := p.Span()
	fmt.Fprintf(w, "  %s  %s (%s)\n", faint("span:"), span, span.Format())
}
