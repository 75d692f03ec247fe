// ABOUTME: Time utility functions mapping instants and names to periods
// ABOUTME: Provides helpers for smart views like today, yesterday, this week

package timeutil

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/harper/calendr/internal/period"
)

// ErrBadTimestamp is returned when user input matches no known layout.
var ErrBadTimestamp = errors.New("unrecognised timestamp")

// ErrUnknownName is returned by ParsePeriod for names it does not know.
var ErrUnknownName = errors.New("unknown period name")

// Names lists the period names ParsePeriod understands.
var Names = []string{
	"today", "yesterday", "tomorrow",
	"week", "last-week", "next-week",
	"month", "last-month", "next-month",
	"year",
}

// layouts accepted by ParseAnchor, most specific first.
var layouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02T15:04",
	"2006-01-02 15:04",
	"2006-01-02",
	"2006-01",
	"2006",
}

// Floor returns the latest legal begin of a k period at or before t, in t's
// location.
func Floor(f *period.Factory, k period.Kind, t time.Time) (time.Time, error) {
	y, m, d := t.Date()
	loc := t.Location()
	switch k {
	case period.Second:
		return time.Date(y, m, d, t.Hour(), t.Minute(), t.Second(), 0, loc), nil
	case period.Minute:
		return time.Date(y, m, d, t.Hour(), t.Minute(), 0, 0, loc), nil
	case period.Hour:
		return time.Date(y, m, d, t.Hour(), 0, 0, 0, loc), nil
	case period.Day:
		return time.Date(y, m, d, 0, 0, 0, 0, loc), nil
	case period.Week:
		return f.FindFirstDayOfWeek(t), nil
	case period.Month:
		return time.Date(y, m, 1, 0, 0, 0, 0, loc), nil
	case period.Year:
		return time.Date(y, time.January, 1, 0, 0, 0, 0, loc), nil
	default:
		return time.Time{}, fmt.Errorf("floor %s: %w", k, errors.ErrUnsupported)
	}
}

// PeriodAt returns the k period containing t.
func PeriodAt(f *period.Factory, k period.Kind, t time.Time) (period.Period, error) {
	begin, err := Floor(f, k, t)
	if err != nil {
		return period.Period{}, err
	}
	return f.Create(k, begin)
}

// Today returns the day containing the factory's current time. It fails in
// zones where that day has no midnight.
func Today(f *period.Factory) (period.Period, error) {
	return PeriodAt(f, period.Day, f.Now())
}

// Yesterday returns the day before Today
func Yesterday(f *period.Factory) (period.Period, error) {
	return shifted(Today(f))(-1)
}

// ThisWeek returns the week containing the factory's current time
// Note: the week starts on the factory's first weekday
func ThisWeek(f *period.Factory) (period.Period, error) {
	return PeriodAt(f, period.Week, f.Now())
}

// ThisMonth returns the month containing the factory's current time
func ThisMonth(f *period.Factory) (period.Period, error) {
	return PeriodAt(f, period.Month, f.Now())
}

// ThisYear returns the year containing the factory's current time
func ThisYear(f *period.Factory) (period.Period, error) {
	return PeriodAt(f, period.Year, f.Now())
}

// shifted returns a func moving p by n periods, or reporting err.
func shifted(p period.Period, err error) func(n int) (period.Period, error) {
	return func(n int) (period.Period, error) {
		if err != nil {
			return period.Period{}, err
		}
		for ; n > 0; n-- {
			p = p.Next()
		}
		for ; n < 0; n++ {
			p = p.Previous()
		}
		return p, nil
	}
}

// ParsePeriod converts one of Names to the period it designates. Unknown
// names return an error wrapping ErrUnknownName.
func ParsePeriod(f *period.Factory, name string) (period.Period, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "today":
		return Today(f)
	case "yesterday":
		return Yesterday(f)
	case "tomorrow":
		return shifted(Today(f))(1)
	case "week":
		return ThisWeek(f)
	case "last-week":
		return shifted(ThisWeek(f))(-1)
	case "next-week":
		return shifted(ThisWeek(f))(1)
	case "month":
		return ThisMonth(f)
	case "last-month":
		return shifted(ThisMonth(f))(-1)
	case "next-month":
		return shifted(ThisMonth(f))(1)
	case "year":
		return ThisYear(f)
	default:
		return period.Period{}, fmt.Errorf("%w: %q", ErrUnknownName, name)
	}
}

// ParseAnchor parses user input as a timestamp. Inputs without an offset are
// read in loc.
func ParseAnchor(s string, loc *time.Location) (time.Time, error) {
	s = strings.TrimSpace(s)
	if loc == nil {
		loc = time.Local
	}
	for _, layout := range layouts {
		if t, err := time.ParseInLocation(layout, s, loc); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("%w: %q", ErrBadTimestamp, s)
}
