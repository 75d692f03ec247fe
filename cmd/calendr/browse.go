// ABOUTME: Cobra command for browsing months interactively.
// ABOUTME: Launches the bubbletea month browser, optionally highlighting events.
package main

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/harper/calendr/internal/event"
	"github.com/harper/calendr/internal/tui"
)

var browseCmd = &cobra.Command{
	Use:   "browse [date]",
	Short: "Browse months interactively",
	Long:  "Browse months in an interactive calendar, starting at the month containing a date.",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		eventsPath, _ := cmd.Flags().GetString("events")

		m, err := resolvePeriod(append([]string{"month"}, args...))
		if err != nil {
			return err
		}
		var events []event.Basic
		if eventsPath != "" {
			if events, err = loadEvents(eventsPath); err != nil {
				return err
			}
		}

		if _, err := tea.NewProgram(tui.NewBrowseModel(m, events)).Run(); err != nil {
			return fmt.Errorf("TUI error: %w", err)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(browseCmd)
	browseCmd.Flags().StringP("events", "e", "", "YAML events file whose days are highlighted")
}
