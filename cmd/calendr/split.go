// ABOUTME: Split command listing the sub-periods of a period
// ABOUTME: Prints keyed sub-periods in color or as a glamour-rendered markdown table

package main

import (
	"fmt"

	"github.com/charmbracelet/glamour"
	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/harper/calendr/internal/render"
)

var splitCmd = &cobra.Command{
	Use:   "split <kind> [date]",
	Short: "List the sub-periods of a period",
	Long: `List the sub-periods of a period with their keys: hours of a day, days of a week,
weeks of a month (including weeks straddling its edges) and months of a year.`,
	Args: cobra.RangeArgs(1, 2),
	RunE: func(cmd *cobra.Command, args []string) error {
		markdown, _ := cmd.Flags().GetBool("markdown")

		p, err := resolvePeriod(args)
		if err != nil {
			return err
		}
		out := cmd.OutOrStdout()
		layout := cfg.GetDateLayout()

		if markdown {
			table, err := render.PeriodTable(p, layout)
			if err != nil {
				return err
			}
			rendered, err := glamour.Render(table, cfg.GetStyle())
			if err != nil {
				return fmt.Errorf("failed to render markdown: %w", err)
			}
			fmt.Fprint(out, rendered)
			return nil
		}

		it, err := p.Iterator()
		if err != nil {
			return err
		}
		faint := color.New(color.Faint).SprintFunc()
		cyan := color.New(color.FgCyan).SprintFunc()
		for it.Next() {
			sub := it.Period()
			marker := " "
			if sub.IsCurrent() {
				marker = "*"
			}
			fmt.Fprintf(out, "%s %s %-10s %s\n", marker, cyan(fmt.Sprintf("%3d", it.Key())), sub, faint(sub.Format(layout)))
		}
		return it.Err()
	},
}

func init() {
	rootCmd.AddCommand(splitCmd)
	splitCmd.ValidArgsFunction = completePeriod
	splitCmd.Flags().BoolP("markdown", "m", false, "render as a markdown table")
}
