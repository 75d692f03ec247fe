// ABOUTME: Cobra command for interactive calendr preference configuration.
// ABOUTME: Launches a bubbletea TUI wizard to pick the first weekday and date layout.
package main

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/harper/calendr/internal/config"
	"github.com/harper/calendr/internal/tui"
)

var setupCmd = &cobra.Command{
	Use:   "setup",
	Short: "Configure calendar preferences",
	Long:  "Interactive wizard to configure the first day of the week and the date layout.",
	RunE:  runSetup,
}

func init() {
	rootCmd.AddCommand(setupCmd)
}

func runSetup(cmd *cobra.Command, args []string) error {
	// Start from the file alone so flags and CALENDR_* values stay one-off.
	saved, err := config.LoadFile()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	model := tui.NewSetupModel(saved.FirstWeekday, saved.DateLayout)

	p := tea.NewProgram(model)
	result, err := p.Run()
	if err != nil {
		return fmt.Errorf("TUI error: %w", err)
	}

	final := result.(tui.SetupModel)
	if !final.ShouldSave() {
		fmt.Fprintln(cmd.OutOrStdout(), "Setup canceled.")
		return nil
	}

	if err := savePreferences(saved, final); err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Config saved to %s\n", config.GetConfigPath())
	return nil
}

// savePreferences stores the wizard's answers on top of the saved config.
func savePreferences(saved *config.Config, final tui.SetupModel) error {
	saved.FirstWeekday, saved.DateLayout = final.Result()
	if err := saved.Save(); err != nil {
		return fmt.Errorf("failed to save config: %w", err)
	}
	return nil
}
