// ABOUTME: Sentinel errors for period construction and unsupported operations
// ABOUTME: Each fixed kind has its own invalid-anchor error wrapping ErrInvalidAnchor

package period

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidAnchor is wrapped by every kind-specific anchor error.
	ErrInvalidAnchor = errors.New("period: invalid anchor")

	ErrNotASecond = fmt.Errorf("%w: not a second", ErrInvalidAnchor)
	ErrNotAMinute = fmt.Errorf("%w: not a minute", ErrInvalidAnchor)
	ErrNotAnHour  = fmt.Errorf("%w: not an hour", ErrInvalidAnchor)
	ErrNotADay    = fmt.Errorf("%w: not a day", ErrInvalidAnchor)
	ErrNotAWeek   = fmt.Errorf("%w: not a week", ErrInvalidAnchor)
	ErrNotAMonth  = fmt.Errorf("%w: not a month", ErrInvalidAnchor)
	ErrNotAYear   = fmt.Errorf("%w: not a year", ErrInvalidAnchor)

	// ErrInvalidWeekday is returned when a first weekday is outside 0-6.
	ErrInvalidWeekday = errors.New("period: weekday must be between 0 and 6")

	// ErrUnknownKind is returned when parsing a kind name fails.
	ErrUnknownKind = errors.New("period: unknown kind")

	// ErrNoFactory is returned by operations that need a factory on a zero Period.
	ErrNoFactory = errors.New("period: no factory")
)

// invalidAnchorError returns the sentinel matching kind.
func invalidAnchorError(k Kind) error {
	switch k {
	case Second:
		return ErrNotASecond
	case Minute:
		return ErrNotAMinute
	case Hour:
		return ErrNotAnHour
	case Day:
		return ErrNotADay
	case Week:
		return ErrNotAWeek
	case Month:
		return ErrNotAMonth
	case Year:
		return ErrNotAYear
	default:
		return ErrInvalidAnchor
	}
}

// unsupported wraps errors.ErrUnsupported with the operation and kind.
func unsupported(op string, k Kind) error {
	return fmt.Errorf("period: %s on %s: %w", op, k, errors.ErrUnsupported)
}
