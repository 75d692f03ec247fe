// ABOUTME: Factory minting validated periods of every kind
// ABOUTME: Owns the first-weekday setting and the week alignment algorithm

package period

import (
	"fmt"
	"time"
)

// DefaultFirstWeekday is the first day of the week of a new Factory.
const DefaultFirstWeekday = time.Monday

// Factory is the only way to build periods. It is not safe to call
// SetFirstWeekday while other goroutines use the factory.
type Factory struct {
	firstWeekday time.Weekday
	now          func() time.Time
}

// NewFactory returns a factory whose weeks start on Monday.
func NewFactory() *Factory {
	return &Factory{firstWeekday: DefaultFirstWeekday, now: time.Now}
}

// FirstWeekday returns the configured first day of the week.
func (f *Factory) FirstWeekday() time.Weekday {
	return f.firstWeekday
}

// SetFirstWeekday changes the first day of the week (0 is Sunday). Periods
// already built keep their bounds.
func (f *Factory) SetFirstWeekday(weekday int) error {
	if weekday < 0 || weekday > 6 {
		return fmt.Errorf("%w: %d", ErrInvalidWeekday, weekday)
	}
	f.firstWeekday = time.Weekday(weekday)
	return nil
}

// Now returns the time used by Period.IsCurrent.
func (f *Factory) Now() time.Time {
	if f == nil || f.now == nil {
		return time.Now()
	}
	return f.now()
}

// SetClock replaces the clock behind Now. A nil clock restores time.Now.
func (f *Factory) SetClock(now func() time.Time) {
	if now == nil {
		now = time.Now
	}
	f.now = now
}

// IsValid reports whether t is a legal begin for a period of kind k.
func (f *Factory) IsValid(k Kind, t time.Time) bool {
	return k.valid(t, f.firstWeekday)
}

// Create builds a fixed-kind period anchored at begin. A Range cannot be
// built from a single timestamp; use CreateRange.
func (f *Factory) Create(k Kind, begin time.Time) (Period, error) {
	if !k.IsFixed() {
		return Period{}, unsupported("create from one timestamp", k)
	}
	if !f.IsValid(k, begin) {
		return Period{}, fmt.Errorf("%w: %s", invalidAnchorError(k), begin.Format(time.RFC3339))
	}
	return fixed(k, begin, f), nil
}

func (f *Factory) CreateSecond(begin time.Time) (Period, error) { return f.Create(Second, begin) }
func (f *Factory) CreateMinute(begin time.Time) (Period, error) { return f.Create(Minute, begin) }
func (f *Factory) CreateHour(begin time.Time) (Period, error) { return f.Create(Hour, begin) }
func (f *Factory) CreateDay(begin time.Time) (Period, error) { return f.Create(Day, begin) }
func (f *Factory) CreateWeek(begin time.Time) (Period, error) { return f.Create(Week, begin) }
func (f *Factory) CreateMonth(begin time.Time) (Period, error) { return f.Create(Month, begin) }
func (f *Factory) CreateYear(begin time.Time) (Period, error) { return f.Create(Year, begin) }

// CreateRange builds a Range between two arbitrary timestamps. The bounds are
// not reordered.
func (f *Factory) CreateRange(begin, end time.Time) Period {
	return ranged(begin, end, f)
}

// FindFirstDayOfWeek steps back one calendar day at a time from t's midnight
// until it reaches the configured first weekday.
func (f *Factory) FindFirstDayOfWeek(t time.Time) time.Time {
	day := midnight(t)
	for day.Weekday() != f.firstWeekday {
		day = day.AddDate(0, 0, -1)
	}
	return day
}

// FirstDayOfFirstWeek returns the begin of the week holding p's first instant.
func (f *Factory) FirstDayOfFirstWeek(p Period) time.Time {
	return f.FindFirstDayOfWeek(p.begin)
}

// LastDayOfLastWeek returns the midnight of the last day of the week holding
// p's last day.
func (f *Factory) LastDayOfLastWeek(p Period) time.Time {
	return f.FindFirstDayOfWeek(p.end.Add(-time.Nanosecond)).AddDate(0, 0, 6)
}

// ExtendToWeeks returns the Range covering every whole week that p touches,
// as a month view grid shows it. The end is exclusive.
func (f *Factory) ExtendToWeeks(p Period) Period {
	return f.CreateRange(f.FirstDayOfFirstWeek(p), f.LastDayOfLastWeek(p).AddDate(0, 0, 1))
}
