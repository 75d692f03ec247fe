// ABOUTME: Contains and compare commands testing period relations
// ABOUTME: Answers membership of a timestamp and equality or inclusion between two periods

package main

import (
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var containsCmd = &cobra.Command{
	Use:   "contains <kind> <date> <timestamp>",
	Short: "Tell whether a period contains a timestamp",
	Long:  "Tell whether the period of a kind at a date contains a timestamp. Periods include their begin and exclude their end.",
	Args:  cobra.ExactArgs(3),
	RunE: func(cmd *cobra.Command, args []string) error {
		p, err := resolvePeriod(args[:2])
		if err != nil {
			return err
		}
		at, err := parseInstant(args[2])
		if err != nil {
			return err
		}
		out := cmd.OutOrStdout()
		printAnswer(out, p.Contains(at))
		fmt.Fprintf(out, "  %s %s [%s, %s)\n", p.Kind(), p, p.Format(cfg.GetDateLayout()), p.End().Format(cfg.GetDateLayout()))
		return nil
	},
}

var compareCmd = &cobra.Command{
	Use:   "compare <kind> <date> <kind> <date>",
	Short: "Compare two periods",
	Long:  "Report whether two periods are equal, whether the first strictly includes the second, and whether they overlap.",
	Args:  cobra.ExactArgs(4),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := resolvePeriod(args[:2])
		if err != nil {
			return err
		}
		b, err := resolvePeriod(args[2:])
		if err != nil {
			return err
		}
		out := cmd.OutOrStdout()
		fmt.Fprint(out, "equal:     ")
		printAnswer(out, a.Equal(b))
		fmt.Fprint(out, "includes:  ")
		printAnswer(out, a.Includes(b, true))
		fmt.Fprint(out, "overlaps:  ")
		printAnswer(out, a.Includes(b, false))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(containsCmd)
	rootCmd.AddCommand(compareCmd)
}

func printAnswer(w io.Writer, ok bool) {
	if ok {
		fmt.Fprintln(w, color.GreenString("yes"))
		return
	}
	fmt.Fprintln(w, color.RedString("no"))
}
