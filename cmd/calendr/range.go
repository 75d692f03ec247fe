// ABOUTME: Range command for free-form periods between two dates
// ABOUTME: Accepts an end date or an ISO-8601 --span and can list days or stepped instants

package main

import (
	"errors"
	"fmt"

	"github.com/fatih/color"
	iso "github.com/rickb777/period"
	"github.com/spf13/cobra"

	"github.com/harper/calendr/internal/period"
)

var (
	rangeSpan iso.Period
	rangeStep iso.Period
)

var rangeCmd = &cobra.Command{
	Use:     "range <from> [to]",
	Aliases: []string{"r"},
	Short:   "Show a free range between two dates",
	Long: `Show a free range between two dates, or from a date over an ISO-8601 span
such as P2W or PT90M. Navigating a range moves it by its own span.`,
	Args: cobra.RangeArgs(1, 2),
	RunE: func(cmd *cobra.Command, args []string) error {
		next, _ := cmd.Flags().GetInt("next")
		prev, _ := cmd.Flags().GetInt("prev")
		days, _ := cmd.Flags().GetBool("days")

		r, err := resolveRange(args)
		if err != nil {
			return err
		}
		r = navigate(r, next, prev)

		out := cmd.OutOrStdout()
		printPeriod(out, r)

		layout := cfg.GetDateLayout()
		faint := color.New(color.Faint).SprintFunc()
		if days {
			for _, d := range r.Days() {
				fmt.Fprintf(out, "  %s %s\n", d.Format(layout), faint(d))
			}
		}
		if !rangeStep.IsZero() {
			for t := range r.Instants(rangeStep) {
				fmt.Fprintf(out, "  %s\n", t.Format(layout))
			}
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(rangeCmd)
	rangeCmd.Flags().Var(&rangeSpan, "span", "ISO-8601 length of the range, used when no end date is given (e.g. P1W)")
	rangeCmd.Flags().Var(&rangeStep, "step", "list instants of the range stepped by this ISO-8601 period (e.g. PT1H)")
	rangeCmd.Flags().Int("next", 0, "move forward this many spans")
	rangeCmd.Flags().Int("prev", 0, "move back this many spans")
	rangeCmd.Flags().Bool("days", false, "list the days starting within the range")
}

func resolveRange(args []string) (period.Period, error) {
	from, err := parseInstant(args[0])
	if err != nil {
		return period.Period{}, err
	}
	if len(args) == 2 {
		to, err := parseInstant(args[1])
		if err != nil {
			return period.Period{}, err
		}
		return factory.CreateRange(from, to), nil
	}
	if rangeSpan.IsZero() {
		return period.Period{}, errors.New("range needs an end date or a --span")
	}
	to, ok := rangeSpan.AddTo(from)
	if !ok {
		return period.Period{}, fmt.Errorf("span %s cannot be added exactly to %s", rangeSpan, from.Format(cfg.GetDateLayout()))
	}
	return factory.CreateRange(from, to), nil
}
