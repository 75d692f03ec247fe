// ABOUTME: Lazy decomposition of a period into its next-finer kind
// ABOUTME: Iterator keeps only the current sub-period and can be reset and replayed

package period

import "iter"

// Iterator walks the sub-periods of a period: a day yields its hours, a month
// its weeks, and so on. Use it like bufio.Scanner:
//
//	it, err := day.Iterator()
//	for it.Next() {
//		hour := it.Period()
//	}
type Iterator struct {
	parent  Period
	current Period
	started bool
	valid   bool
	count   int
	err     error
}

// Iterator returns a decomposition iterator. Seconds and ranges cannot be
// decomposed.
func (p Period) Iterator() (*Iterator, error) {
	if _, ok := p.kind.SubKind(); !ok {
		return nil, unsupported("iterate", p.kind)
	}
	if p.factory == nil {
		return nil, ErrNoFactory
	}
	return &Iterator{parent: p}, nil
}

// Next moves to the next sub-period and reports whether there is one.
func (it *Iterator) Next() bool {
	if it.err != nil {
		return false
	}
	if !it.started {
		it.started = true
		first, err := it.first()
		if err != nil {
			it.err = err
			return false
		}
		it.current, it.valid, it.count = first, true, 1
		return true
	}
	if !it.valid {
		return false
	}
	next := it.current.Next()
	if !it.keep(next) {
		it.current, it.valid = Period{}, false
		return false
	}
	it.current = next
	it.count++
	return true
}

func (it *Iterator) first() (Period, error) {
	p := it.parent
	f := p.factory
	if p.kind == Month {
		return f.CreateWeek(f.FindFirstDayOfWeek(p.begin))
	}
	sub, _ := p.kind.SubKind()
	return f.Create(sub, p.begin)
}

// keep applies the stop rule of the parent kind to a candidate sub-period.
func (it *Iterator) keep(next Period) bool {
	p := it.parent
	switch p.kind {
	case Month:
		// The week that bleeds into the next month has already been yielded.
		return next.begin.Month() == p.begin.Month()
	case Week:
		return it.count < 7 && next.begin.Weekday() != p.begin.Weekday()
	}
	return p.Contains(next.begin)
}

// Period returns the current sub-period.
func (it *Iterator) Period() Period {
	return it.current
}

// Key returns the calendar number of the current sub-period: second of the
// minute, minute of the hour, hour of the day, day of the month, ISO week or
// month number.
func (it *Iterator) Key() int {
	b := it.current.begin
	switch it.current.kind {
	case Second:
		return b.Second()
	case Minute:
		return b.Minute()
	case Hour:
		return b.Hour()
	case Day:
		return b.Day()
	case Week:
		_, w := b.ISOWeek()
		return w
	case Month:
		return int(b.Month())
	}
	return 0
}

// Err returns the error that stopped the iteration, if any.
func (it *Iterator) Err() error {
	return it.err
}

// Reset rewinds the iterator. The next traversal rebuilds every sub-period.
func (it *Iterator) Reset() {
	it.current = Period{}
	it.started, it.valid = false, false
	it.count = 0
	it.err = nil
}

// All yields the sub-periods keyed as by Iterator.Key. Each range over the
// sequence starts a fresh traversal; kinds without sub-periods yield nothing.
func (p Period) All() iter.Seq2[int, Period] {
	return func(yield func(int, Period) bool) {
		it, err := p.Iterator()
		if err != nil {
			return
		}
		for it.Next() {
			if !yield(it.Key(), it.Period()) {
				return
			}
		}
	}
}

// Split returns every sub-period in order.
func (p Period) Split() ([]Period, error) {
	it, err := p.Iterator()
	if err != nil {
		return nil, err
	}
	var subs []Period
	for it.Next() {
		subs = append(subs, it.Period())
	}
	return subs, it.Err()
}
