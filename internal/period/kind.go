// ABOUTME: Period kinds (second through year, plus range) and their per-kind tables
// ABOUTME: Supplies validity predicates, canonical ISO-8601 intervals and decomposition targets

package period

import (
	"fmt"
	"strings"
	"time"

	iso "github.com/rickb777/period"
)

// Kind is the granularity of a period.
type Kind uint8

const (
	Second Kind = iota
	Minute
	Hour
	Day
	Week
	Month
	Year
	Range
)

// Kinds lists every kind from the finest to the open-ended range.
var Kinds = []Kind{Second, Minute, Hour, Day, Week, Month, Year, Range}

var kindNames = [...]string{
	Second: "second",
	Minute: "minute",
	Hour:   "hour",
	Day:    "day",
	Week:   "week",
	Month:  "month",
	Year:   "year",
	Range:  "range",
}

// Canonical intervals of the fixed kinds.
var intervals = map[Kind]iso.Period{
	Second: iso.NewHMS(0, 0, 1),
	Minute: iso.NewHMS(0, 1, 0),
	Hour:   iso.NewHMS(1, 0, 0),
	Day:    iso.NewYMD(0, 0, 1),
	Week:   iso.NewYMWD(0, 0, 1, 0),
	Month:  iso.NewYMD(0, 1, 0),
	Year:   iso.NewYMD(1, 0, 0),
}

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return fmt.Sprintf("Kind(%d)", uint8(k))
}

// ParseKind maps a kind name (case-insensitive, singular or plural) to a Kind.
func ParseKind(s string) (Kind, error) {
	name := strings.TrimSuffix(strings.ToLower(strings.TrimSpace(s)), "s")
	for _, k := range Kinds {
		if k.String() == name {
			return k, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownKind, s)
}

// MarshalText implements encoding.TextMarshaler.
func (k Kind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

// IsFixed reports whether the kind has a canonical interval.
func (k Kind) IsFixed() bool {
	_, ok := intervals[k]
	return ok
}

// Interval returns the canonical ISO-8601 interval of the kind.
// Range has none and returns an error wrapping errors.ErrUnsupported.
func (k Kind) Interval() (iso.Period, error) {
	p, ok := intervals[k]
	if !ok {
		return iso.Zero, unsupported("interval", k)
	}
	return p, nil
}

// SubKind returns the kind a period of this kind decomposes into.
func (k Kind) SubKind() (Kind, bool) {
	switch k {
	case Minute:
		return Second, true
	case Hour:
		return Minute, true
	case Day:
		return Hour, true
	case Week:
		return Day, true
	case Month:
		return Week, true
	case Year:
		return Month, true
	}
	return 0, false
}

// valid applies the kind's anchor predicate. firstWeekday only matters for Week.
func (k Kind) valid(t time.Time, firstWeekday time.Weekday) bool {
	switch k {
	case Minute:
		return t.Second() == 0
	case Hour:
		return t.Minute() == 0 && t.Second() == 0
	case Day:
		return isMidnight(t)
	case Week:
		return isMidnight(t) && t.Weekday() == firstWeekday
	case Month:
		return t.Day() == 1 && isMidnight(t)
	case Year:
		return t.YearDay() == 1 && isMidnight(t)
	}
	return true
}

func isMidnight(t time.Time) bool {
	h, m, s := t.Clock()
	return h == 0 && m == 0 && s == 0
}

// midnight truncates t to the start of its calendar day in its own location.
func midnight(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}
