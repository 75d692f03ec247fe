// ABOUTME: Basic calendar event implementing the period.Event capability
// ABOUTME: Provides overlap filtering and YAML decoding of event lists

package event

import (
	"errors"
	"fmt"
	"io"
	"slices"
	"time"

	"github.com/google/uuid"
	"gopkg.in/yaml.v3"

	"github.com/harper/calendr/internal/period"
)

// ErrEndBeforeBegin is returned for events whose end precedes their begin.
var ErrEndBeforeBegin = errors.New("event: end before begin")

// Basic is a plain event with an optional end.
type Basic struct {
	ID      string     `yaml:"id,omitempty" json:"id"`
	Summary string     `yaml:"summary" json:"summary"`
	From    time.Time  `yaml:"begin" json:"begin"`
	Until   *time.Time `yaml:"end,omitempty" json:"end,omitempty"`
}

var _ period.Event = Basic{}

// New creates an event lasting from begin to end with a generated ID.
func New(summary string, begin, end time.Time) Basic {
	return Basic{
		ID:      uuid.New().String(),
		Summary: summary,
		From:    begin,
		Until:   &end,
	}
}

// NewInstant creates an event without an end.
func NewInstant(summary string, at time.Time) Basic {
	return Basic{
		ID:      uuid.New().String(),
		Summary: summary,
		From:    at,
	}
}

// Begin returns when the event starts.
func (e Basic) Begin() time.Time {
	return e.From
}

// End returns when the event stops, and false if it has no end.
func (e Basic) End() (time.Time, bool) {
	if e.Until == nil {
		return time.Time{}, false
	}
	return *e.Until, true
}

// Contains reports whether t falls within the event. An event without an end
// only contains its begin.
func (e Basic) Contains(t time.Time) bool {
	end, ok := e.End()
	if !ok {
		return t.Equal(e.From)
	}
	return !t.Before(e.From) && t.Before(end)
}

// ContainsPeriod reports whether the event spans all of p.
func (e Basic) ContainsPeriod(p period.Period) bool {
	end, ok := e.End()
	return ok && !e.From.After(p.Begin()) && !end.Before(p.End())
}

// IsDuring reports whether the event happens entirely within p.
func (e Basic) IsDuring(p period.Period) bool {
	end, ok := e.End()
	if !ok {
		return p.Contains(e.From)
	}
	return !e.From.Before(p.Begin()) && end.Before(p.End())
}

// Validate checks the event bounds.
func (e Basic) Validate() error {
	if end, ok := e.End(); ok && end.Before(e.From) {
		return fmt.Errorf("%w: %q", ErrEndBeforeBegin, e.Summary)
	}
	return nil
}

// Filter returns the events overlapping p, sorted by begin.
func Filter(p period.Period, events []Basic) []Basic {
	var out []Basic
	for _, e := range events {
		if p.ContainsEvent(e) {
			out = append(out, e)
		}
	}
	slices.SortStableFunc(out, func(a, b Basic) int {
		return a.From.Compare(b.From)
	})
	return out
}

// document is the on-disk layout of an events file.
type document struct {
	Events []Basic `yaml:"events"`
}

// ReadYAML decodes an events document, assigning IDs to events without one.
func ReadYAML(r io.Reader) ([]Basic, error) {
	var doc document
	if err := yaml.NewDecoder(r).Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, nil
		}
		return nil, fmt.Errorf("decode events: %w", err)
	}
	for i := range doc.Events {
		if doc.Events[i].ID == "" {
			doc.Events[i].ID = uuid.New().String()
		}
		if err := doc.Events[i].Validate(); err != nil {
			return nil, err
		}
	}
	return doc.Events, nil
}
