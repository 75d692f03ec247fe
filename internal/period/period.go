// ABOUTME: Period value type: a validated half-open [begin, end) interval of one kind
// ABOUTME: Implements navigation, containment, inclusion, event overlap and formatting

package period

import (
	"iter"
	"strconv"
	"time"

	iso "github.com/rickb777/period"
)

// equalLayout is the precision at which two periods are compared.
const equalLayout = "2006-01-02-15-04-05"

// Period is an immutable time interval of a given kind. The zero value is
// empty and has no factory; real periods come from a Factory.
type Period struct {
	kind  Kind
	begin time.Time
	end   time.Time

	// Range only: signed span as whole calendar days then clock time.
	spanDays  int
	spanClock time.Duration

	factory *Factory
}

// Event is the capability a calendar event exposes to periods.
type Event interface {
	Begin() time.Time
	// End returns false when the event has no end.
	End() (time.Time, bool)
	ContainsPeriod(p Period) bool
	IsDuring(p Period) bool
}

// fixed builds a fixed-kind period without checking the anchor.
func fixed(k Kind, begin time.Time, f *Factory) Period {
	end, _ := intervals[k].AddTo(begin)
	return Period{kind: k, begin: begin, end: end, factory: f}
}

// ranged builds a Range and records its span.
func ranged(begin, end time.Time, f *Factory) Period {
	days, clock := spanBetween(begin, end)
	return Period{
		kind:      Range,
		begin:     begin,
		end:       end,
		spanDays:  days,
		spanClock: clock,
		factory:   f,
	}
}

// spanBetween splits end-begin into calendar days and remaining clock time,
// both carrying the same sign.
func spanBetween(begin, end time.Time) (int, time.Duration) {
	by, bm, bd := begin.Date()
	ey, em, ed := end.Date()
	from := time.Date(by, bm, bd, 0, 0, 0, 0, time.UTC)
	to := time.Date(ey, em, ed, 0, 0, 0, 0, time.UTC)
	days := int(to.Sub(from) / (24 * time.Hour))

	for days > 0 && begin.AddDate(0, 0, days).After(end) {
		days--
	}
	for days < 0 && begin.AddDate(0, 0, days).Before(end) {
		days++
	}
	return days, end.Sub(begin.AddDate(0, 0, days))
}

// Kind returns the period kind.
func (p Period) Kind() Kind { return p.kind }

// Begin returns the inclusive lower bound.
func (p Period) Begin() time.Time { return p.begin }

// End returns the exclusive upper bound.
func (p Period) End() time.Time { return p.end }

// Factory returns the factory that minted the period.
func (p Period) Factory() *Factory { return p.factory }

// Duration returns the elapsed time between begin and end.
func (p Period) Duration() time.Duration { return p.end.Sub(p.begin) }

// Interval returns the canonical interval of the period's kind. Ranges have
// no canonical interval; use Span instead.
func (p Period) Interval() (iso.Period, error) {
	return p.kind.Interval()
}

// Span returns the ISO-8601 distance from begin to end. For fixed kinds this
// is the canonical interval; for a Range it is days plus clock time, negative
// when the bounds are reversed. Sub-second remainders are dropped.
func (p Period) Span() iso.Period {
	if p.kind != Range {
		return intervals[p.kind]
	}
	days, clock := p.spanDays, p.spanClock
	neg := days < 0 || (days == 0 && clock < 0)
	if neg {
		days, clock = -days, -clock
	}
	clock = clock.Truncate(time.Second)
	h := int(clock / time.Hour)
	m := int(clock % time.Hour / time.Minute)
	s := int(clock % time.Minute / time.Second)
	span := iso.New(0, 0, 0, days, h, m, s)
	if neg {
		span = span.Negate()
	}
	return span
}

// Contains reports whether begin <= t < end.
func (p Period) Contains(t time.Time) bool {
	return !t.Before(p.begin) && t.Before(p.end)
}

// Equal reports whether both periods have the same kind and the same begin,
// compared to the second.
func (p Period) Equal(o Period) bool {
	return p.kind == o.kind && p.begin.Format(equalLayout) == o.begin.Format(equalLayout)
}

// Includes reports whether o lies within p. When strict is false it reports
// any overlap: either period nesting the other, or p containing one of o's
// bounds.
func (p Period) Includes(o Period, strict bool) bool {
	if strict {
		return !p.begin.After(o.begin) && !p.end.Before(o.end)
	}
	return p.Includes(o, true) ||
		o.Includes(p, true) ||
		p.Contains(o.begin) ||
		p.Contains(o.end)
}

// ContainsEvent reports whether e overlaps p. An event ending exactly when p
// begins does not overlap it.
func (p Period) ContainsEvent(e Event) bool {
	if e == nil {
		return false
	}
	if e.ContainsPeriod(p) || e.IsDuring(p) || p.Contains(e.Begin()) {
		return true
	}
	end, ok := e.End()
	return ok && p.Contains(end) && end.Format(time.RFC3339) != p.begin.Format(time.RFC3339)
}

// Format formats the begin timestamp with a time layout.
func (p Period) Format(layout string) string {
	return p.begin.Format(layout)
}

// IsCurrent reports whether the period contains the factory's current time.
func (p Period) IsCurrent() bool {
	return p.Contains(p.factory.Now())
}

// Next returns the following period of the same kind. A Range moves by its
// own span.
func (p Period) Next() Period {
	if p.kind == Range {
		return ranged(p.shift(p.begin, 1), p.shift(p.end, 1), p.factory)
	}
	return fixed(p.kind, p.end, p.factory)
}

// Previous returns the preceding period of the same kind.
func (p Period) Previous() Period {
	if p.kind == Range {
		return ranged(p.shift(p.begin, -1), p.shift(p.end, -1), p.factory)
	}
	begin, _ := intervals[p.kind].Negate().AddTo(p.begin)
	return fixed(p.kind, begin, p.factory)
}

// shift moves t by the range span, forward when dir is 1 and back when -1.
func (p Period) shift(t time.Time, dir int) time.Time {
	return t.AddDate(0, 0, dir*p.spanDays).Add(time.Duration(dir) * p.spanClock)
}

// Days returns the days whose midnight falls inside the period.
func (p Period) Days() []Period {
	var days []Period
	d := midnight(p.begin)
	if d.Before(p.begin) {
		d = d.AddDate(0, 0, 1)
	}
	for ; p.Contains(d); d = d.AddDate(0, 0, 1) {
		days = append(days, fixed(Day, d, p.factory))
	}
	return days
}

// Instants yields begin and every following timestamp reached by adding step
// while it stays before end. A step that does not move forward yields nothing.
func (p Period) Instants(step iso.Period) iter.Seq[time.Time] {
	return func(yield func(time.Time) bool) {
		if !step.IsPositive() || step.IsZero() {
			return
		}
		for t := p.begin; t.Before(p.end); {
			if !yield(t) {
				return
			}
			next, _ := step.AddTo(t)
			if !next.After(t) {
				return
			}
			t = next
		}
	}
}

// String renders the period the way a calendar labels it: the weekday for a
// day, the month name for a month, the ISO week number for a week.
func (p Period) String() string {
	switch p.kind {
	case Second:
		return p.begin.Format("05")
	case Minute:
		return p.begin.Format("04")
	case Hour:
		return strconv.Itoa(p.begin.Hour())
	case Day:
		return p.begin.Weekday().String()
	case Week:
		_, w := p.begin.ISOWeek()
		return strconv.Itoa(w)
	case Month:
		return p.begin.Month().String()
	case Year:
		return strconv.Itoa(p.begin.Year())
	}
	return p.begin.Format(time.RFC3339) + "/" + p.end.Format(time.RFC3339)
}
