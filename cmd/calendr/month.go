// ABOUTME: Month command drawing a calendar grid
// ABOUTME: Marks today and days with events; --extended prints the whole-weeks range

package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/harper/calendr/internal/event"
	"github.com/harper/calendr/internal/period"
	"github.com/harper/calendr/internal/render"
)

var monthCmd = &cobra.Command{
	Use:     "month [date]",
	Aliases: []string{"cal"},
	Short:   "Draw the month containing a date",
	Long:    "Draw the month containing a date as a grid of whole weeks starting on the configured first weekday.",
	Args:    cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		next, _ := cmd.Flags().GetInt("next")
		prev, _ := cmd.Flags().GetInt("prev")
		extended, _ := cmd.Flags().GetBool("extended")
		eventsPath, _ := cmd.Flags().GetString("events")

		m, err := resolvePeriod(append([]string{"month"}, args...))
		if err != nil {
			return err
		}
		m = navigate(m, next, prev)

		var events []event.Basic
		if eventsPath != "" {
			events, err = loadEvents(eventsPath)
			if err != nil {
				return err
			}
		}

		grid, err := render.MonthGrid(m, render.GridOptions{
			Today: factory.Now(),
			Marked: func(day period.Period) bool {
				return len(event.Filter(day, events)) > 0
			},
		})
		if err != nil {
			return err
		}
		out := cmd.OutOrStdout()
		fmt.Fprint(out, grid)

		if extended {
			faint := color.New(color.Faint).SprintFunc()
			weeks := factory.ExtendToWeeks(m)
			layout := cfg.GetDateLayout()
			fmt.Fprintf(out, "\n%s %s\n", faint("from:"), weeks.Format(layout))
			fmt.Fprintf(out, "%s   %s\n", faint("to:"), weeks.End().Format(layout))
			fmt.Fprintf(out, "%s %d\n", faint("days:"), len(weeks.Days()))
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(monthCmd)
	monthCmd.Flags().Int("next", 0, "move forward this many months")
	monthCmd.Flags().Int("prev", 0, "move back this many months")
	monthCmd.Flags().BoolP("extended", "x", false, "print the range of whole weeks covering the month")
	monthCmd.Flags().StringP("events", "e", "", "YAML events file whose days are highlighted")
}
