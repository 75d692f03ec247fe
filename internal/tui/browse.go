// ABOUTME: Interactive month browser built on the period navigation API.
// ABOUTME: Arrow keys move between months and years; t jumps to the current month.
package tui

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/harper/calendr/internal/event"
	"github.com/harper/calendr/internal/period"
	"github.com/harper/calendr/internal/render"
)

var helpStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))

// BrowseModel is the bubbletea model showing one month at a time.
type BrowseModel struct {
	start  period.Period
	month  period.Period
	events []event.Basic
}

// NewBrowseModel starts browsing at month. Days holding one of events are
// highlighted.
func NewBrowseModel(month period.Period, events []event.Basic) BrowseModel {
	return BrowseModel{start: month, month: month, events: events}
}

// Init implements tea.Model.
func (m BrowseModel) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m BrowseModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}
	switch key.String() {
	case "ctrl+c", "esc", "q":
		return m, tea.Quit
	case "left", "h", "p":
		m.month = m.month.Previous()
	case "right", "l", "n":
		m.month = m.month.Next()
	case "up", "k":
		m.month = shiftMonths(m.month, -12)
	case "down", "j":
		m.month = shiftMonths(m.month, 12)
	case "t":
		if current, err := currentMonth(m.month.Factory()); err == nil {
			m.month = current
		}
	case "s":
		m.month = m.start
	}
	return m, nil
}

// currentMonth returns the month containing the factory's current time.
func currentMonth(f *period.Factory) (period.Period, error) {
	if f == nil {
		return period.Period{}, period.ErrNoFactory
	}
	now := f.Now()
	return f.CreateMonth(time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location()))
}

func shiftMonths(p period.Period, n int) period.Period {
	for ; n < 0; n++ {
		p = p.Previous()
	}
	for ; n > 0; n-- {
		p = p.Next()
	}
	return p
}

// View implements tea.Model.
func (m BrowseModel) View() string {
	now := m.month.Factory().Now()
	grid, err := render.MonthGrid(m.month, render.GridOptions{
		Today: now,
		Marked: func(day period.Period) bool {
			for _, e := range m.events {
				if day.ContainsEvent(e) {
					return true
				}
			}
			return false
		},
	})
	if err != nil {
		return errorStyle.Render(err.Error()) + "\n"
	}

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(grid)
	if n := len(event.Filter(m.month, m.events)); n > 0 {
		b.WriteString(stepStyle.Render(pluralEvents(n)))
		b.WriteString("\n")
	}
	b.WriteString("\n")
	b.WriteString(helpStyle.Render("←/→ month  ↑/↓ year  t today  s start  q quit"))
	b.WriteString("\n")
	return b.String()
}

// Month returns the month on display.
func (m BrowseModel) Month() period.Period {
	return m.month
}

func pluralEvents(n int) string {
	if n == 1 {
		return "1 event this month"
	}
	return fmt.Sprintf("%d events this month", n)
}
