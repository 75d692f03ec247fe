// ABOUTME: Interactive TUI wizard for configuring calendar preferences.
// ABOUTME: 2-step bubbletea model collecting the first weekday and date layout.
package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/harper/calendr/internal/config"
)

// Step represents the current wizard step.
type Step int

const (
	StepWeekday Step = iota
	StepLayout
	StepDone
)

// SetupModel is the bubbletea model for the setup wizard.
type SetupModel struct {
	step     Step
	inputs   [2]textinput.Model
	invalid  bool
	quitting bool
}

var (
	titleStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("99"))
	brandStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("212"))
	stepStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	successStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("82"))
	promptStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
)

// previewTime is formatted with the chosen layout so the user sees its effect.
var previewTime = time.Date(2012, time.February, 29, 13, 4, 5, 0, time.UTC)

// NewSetupModel creates a new setup wizard model, pre-filling with existing config values.
func NewSetupModel(firstWeekday, dateLayout string) SetupModel {
	weekdayInput := textinput.New()
	weekdayInput.Placeholder = strings.ToLower(time.Monday.String())
	weekdayInput.Focus()
	weekdayInput.Width = 50
	if firstWeekday != "" {
		weekdayInput.SetValue(firstWeekday)
	}

	layoutInput := textinput.New()
	layoutInput.Placeholder = config.DefaultDateLayout
	layoutInput.Width = 50
	if dateLayout != "" {
		layoutInput.SetValue(dateLayout)
	}

	return SetupModel{
		step:   StepWeekday,
		inputs: [2]textinput.Model{weekdayInput, layoutInput},
	}
}

// Init implements tea.Model.
func (m SetupModel) Init() tea.Cmd {
	return textinput.Blink
}

// Update implements tea.Model.
func (m SetupModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC, tea.KeyEscape:
			m.quitting = true
			return m, tea.Quit
		}

		if m.step == StepWeekday || m.step == StepLayout {
			return m.updateInput(msg)
		}
	default:
		// Forward other messages (e.g. cursor blink) to the active input
		if m.step == StepWeekday || m.step == StepLayout {
			idx := int(m.step)
			var cmd tea.Cmd
			m.inputs[idx], cmd = m.inputs[idx].Update(msg)
			return m, cmd
		}
	}

	return m, nil
}

func (m SetupModel) updateInput(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.Type == tea.KeyEnter {
		return m.handleEnter()
	}

	idx := int(m.step)
	var cmd tea.Cmd
	m.inputs[idx], cmd = m.inputs[idx].Update(msg)
	return m, cmd
}

func (m SetupModel) handleEnter() (tea.Model, tea.Cmd) {
	idx := int(m.step)

	if m.step == StepWeekday {
		val := strings.TrimSpace(m.inputs[0].Value())
		if val == "" {
			val = strings.ToLower(time.Monday.String())
		}
		wd, err := config.ParseWeekday(val)
		if err != nil {
			m.invalid = true
			return m, nil
		}
		m.inputs[0].SetValue(strings.ToLower(wd.String()))
	}

	if m.step == StepLayout {
		val := strings.TrimSpace(m.inputs[1].Value())
		if val == "" {
			m.inputs[1].SetValue(config.DefaultDateLayout)
		}
	}

	m.invalid = false
	m.inputs[idx].Blur()

	switch m.step {
	case StepWeekday:
		m.step = StepLayout
		m.inputs[1].Focus()
		return m, textinput.Blink
	case StepLayout:
		m.step = StepDone
		return m, tea.Quit
	}

	return m, nil
}

// View implements tea.Model.
func (m SetupModel) View() string {
	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(brandStyle.Render("   CALENDR"))
	b.WriteString(titleStyle.Render(" - Setup"))
	b.WriteString("\n\n")
	b.WriteString("Configure calendar preferences.\n\n")

	switch m.step {
	case StepWeekday:
		b.WriteString(stepStyle.Render("Step 1 of 2: First Day of the Week"))
		b.WriteString("\n")
		b.WriteString(promptStyle.Render("(weekday name or 0-6 from sunday, press Enter for monday)"))
		b.WriteString("\n")
		b.WriteString(m.inputs[0].View())
		b.WriteString("\n")
		if m.invalid {
			b.WriteString(errorStyle.Render("Not a weekday, try again."))
			b.WriteString("\n")
		}

	case StepLayout:
		b.WriteString(fmt.Sprintf("  First weekday: %s\n\n", m.inputs[0].Value()))
		b.WriteString(stepStyle.Render("Step 2 of 2: Date Layout"))
		b.WriteString("\n")
		b.WriteString(promptStyle.Render(fmt.Sprintf("(Go time layout, press Enter for default: %s)", config.DefaultDateLayout)))
		b.WriteString("\n")
		b.WriteString(m.inputs[1].View())
		b.WriteString("\n")
		if layout := strings.TrimSpace(m.inputs[1].Value()); layout != "" {
			b.WriteString(promptStyle.Render("  preview: " + previewTime.Format(layout)))
			b.WriteString("\n")
		}

	case StepDone:
		b.WriteString(successStyle.Render("Setup complete, preferences saved."))
		b.WriteString("\n\n")
		b.WriteString(fmt.Sprintf("  First weekday: %s\n", m.inputs[0].Value()))
		b.WriteString(fmt.Sprintf("  Date layout:   %s\n", m.inputs[1].Value()))
		b.WriteString("\n")
	}

	return b.String()
}

// Result returns the entered values.
func (m SetupModel) Result() (firstWeekday, dateLayout string) {
	return m.inputs[0].Value(), m.inputs[1].Value()
}

// ShouldSave returns true if the wizard completed and the user did not cancel.
func (m SetupModel) ShouldSave() bool {
	return m.step == StepDone && !m.quitting
}
