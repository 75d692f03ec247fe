// ABOUTME: Events command filtering an events file by period
// ABOUTME: Lists events overlapping a period, plain or as a markdown table

package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/glamour"
	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/harper/calendr/internal/event"
	"github.com/harper/calendr/internal/render"
)

var eventsCmd = &cobra.Command{
	Use:     "events <file> [kind] [date]",
	Aliases: []string{"ev"},
	Short:   "List events of a YAML file overlapping a period",
	Long: `List events of a YAML file overlapping a period (default: this week).

The file holds a list under "events", each with a summary, a begin and an optional end.`,
	Args: cobra.RangeArgs(1, 3),
	RunE: func(cmd *cobra.Command, args []string) error {
		markdown, _ := cmd.Flags().GetBool("markdown")

		events, err := loadEvents(args[0])
		if err != nil {
			return err
		}
		periodArgs := args[1:]
		if len(periodArgs) == 0 {
			periodArgs = []string{"week"}
		}
		p, err := resolvePeriod(periodArgs)
		if err != nil {
			return err
		}

		matches := event.Filter(p, events)
		out := cmd.OutOrStdout()
		layout := cfg.GetDateLayout()

		if markdown {
			rendered, err := glamour.Render(render.EventTable(p, matches, layout), cfg.GetStyle())
			if err != nil {
				return fmt.Errorf("failed to render markdown: %w", err)
			}
			fmt.Fprint(out, rendered)
			return nil
		}

		if len(matches) == 0 {
			fmt.Fprintln(out, "No events found")
			return nil
		}

		faint := color.New(color.Faint).SprintFunc()
		yellow := color.New(color.FgYellow).SprintFunc()
		for _, e := range matches {
			idShort := e.ID
			if len(idShort) > 8 {
				idShort = idShort[:8]
			}
			fmt.Fprintf(out, "%s %s", faint(idShort), e.Begin().Format(layout))
			if end, ok := e.End(); ok {
				fmt.Fprintf(out, " %s %s", faint("->"), end.Format(layout))
			}
			fmt.Fprintf(out, "  %s", e.Summary)
			if e.ContainsPeriod(p) {
				fmt.Fprintf(out, " %s", yellow("(all "+p.Kind().String()+")"))
			}
			fmt.Fprintln(out)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(eventsCmd)
	eventsCmd.Flags().BoolP("markdown", "m", false, "render as a markdown table")
}

// loadEvents reads a YAML events file.
func loadEvents(path string) ([]event.Basic, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open events: %w", err)
	}
	defer f.Close()

	events, err := event.ReadYAML(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return events, nil
}
