// ABOUTME: Terminal and markdown renderings of periods and events
// ABOUTME: Draws month grids with lipgloss and builds markdown tables for glamour

package render

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/harper/calendr/internal/config"
	"github.com/harper/calendr/internal/event"
	"github.com/harper/calendr/internal/period"
)

// ErrNeedMonth is returned when MonthGrid is given another kind of period.
var ErrNeedMonth = errors.New("render: month grid needs a month")

var (
	titleStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("99")).Align(lipgloss.Center)
	headerStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	outsideStyle = lipgloss.NewStyle().Faint(true)
	todayStyle   = lipgloss.NewStyle().Reverse(true)
	markedStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("212"))
)

// GridOptions tunes MonthGrid.
type GridOptions struct {
	// Today is highlighted when it falls on a displayed day.
	Today time.Time
	// Marked reports days to emphasise, typically days with events.
	Marked func(day period.Period) bool
}

// MonthGrid draws month as rows of weeks headed by abbreviated weekday names
// in the factory's week order. Days outside the month are dimmed.
func MonthGrid(month period.Period, opts GridOptions) (string, error) {
	if month.Kind() != period.Month {
		return "", fmt.Errorf("%w, got a %s", ErrNeedMonth, month.Kind())
	}
	f := month.Factory()
	if f == nil {
		return "", period.ErrNoFactory
	}

	// The last column has no trailing separator.
	width := 7*config.GridCellWidth - 1
	var b strings.Builder
	b.WriteString(titleStyle.Width(width).Render(month.Format("January 2006")))
	b.WriteString("\n")

	names := make([]string, 7)
	for i := range names {
		wd := time.Weekday((int(f.FirstWeekday()) + i) % 7)
		names[i] = wd.String()[:2]
	}
	b.WriteString(headerStyle.Render(strings.Join(names, " ")))
	b.WriteString("\n")

	for _, week := range month.All() {
		cells := make([]string, 0, 7)
		for _, day := range week.All() {
			cells = append(cells, dayCell(month, day, opts))
		}
		b.WriteString(strings.Join(cells, " "))
		b.WriteString("\n")
	}
	return b.String(), nil
}

func dayCell(month, day period.Period, opts GridOptions) string {
	cell := fmt.Sprintf("%*d", config.GridCellWidth-1, day.Begin().Day())
	switch {
	case !opts.Today.IsZero() && day.Contains(opts.Today):
		return todayStyle.Render(cell)
	case !month.Contains(day.Begin()):
		return outsideStyle.Render(cell)
	case opts.Marked != nil && opts.Marked(day):
		return markedStyle.Render(cell)
	default:
		return cell
	}
}

// PeriodTable returns a markdown table of p's sub-periods.
func PeriodTable(p period.Period, layout string) (string, error) {
	it, err := p.Iterator()
	if err != nil {
		return "", err
	}

	var b strings.Builder
	fmt.Fprintf(&b, "# %s %s\n\n", title(p.Kind()), p)
	b.WriteString("| Key | Label | Begin | End |\n")
	b.WriteString("|----:|-------|-------|-----|\n")
	for it.Next() {
		sub := it.Period()
		fmt.Fprintf(&b, "| %d | %s | %s | %s |\n", it.Key(), escape(sub.String()), sub.Format(layout), sub.End().Format(layout))
	}
	return b.String(), it.Err()
}

// EventTable returns a markdown table of events inside p.
func EventTable(p period.Period, events []event.Basic, layout string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# Events in %s %s\n\n", p.Kind(), p)
	if len(events) == 0 {
		b.WriteString("_No events._\n")
		return b.String()
	}
	b.WriteString("| Begin | End | Summary |\n")
	b.WriteString("|-------|-----|---------|\n")
	for _, e := range events {
		end := "-"
		if t, ok := e.End(); ok {
			end = t.Format(layout)
		}
		fmt.Fprintf(&b, "| %s | %s | %s |\n", e.Begin().Format(layout), end, escape(e.Summary))
	}
	return b.String()
}

func title(k period.Kind) string {
	s := k.String()
	return strings.ToUpper(s[:1]) + s[1:]
}

func escape(s string) string {
	return strings.ReplaceAll(s, "|", `\|`)
}
