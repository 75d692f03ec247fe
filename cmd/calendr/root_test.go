// ABOUTME: Tests running the command tree end to end
// ABOUTME: Pins the clock and config directory so output is deterministic

package main

import (
	"bytes"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"testing"
	"time"
	_ "time/tzdata"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/harper/calendr/internal/config"
	"github.com/harper/calendr/internal/period"
)

// testNow is Wednesday 2012-02-15 13:45:30 UTC.
var testNow = time.Date(2012, time.February, 15, 13, 45, 30, 0, time.UTC)

func resetFlags(cmd *cobra.Command) {
	reset := func(f *pflag.Flag) {
		_ = f.Value.Set(f.DefValue)
		f.Changed = false
	}
	cmd.Flags().VisitAll(reset)
	cmd.PersistentFlags().VisitAll(reset)
	for _, c := range cmd.Commands() {
		resetFlags(c)
	}
}

// execute runs the CLI with args in an isolated config directory, dates
// read in UTC and the clock stopped at testNow.
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	return executeAt(t, testNow, args...)
}

// executeAt is execute with the clock stopped at now. Dates are read in UTC
// unless args pass --tz.
func executeAt(t *testing.T, now time.Time, args ...string) (string, error) {
	t.Helper()
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	for _, key := range []string{"CALENDR_FIRST_WEEKDAY", "CALENDR_DATE_LAYOUT", "CALENDR_TIMEZONE"} {
		t.Setenv(key, "")
		require.NoError(t, os.Unsetenv(key))
	}
	t.Setenv("CALENDR_STYLE", "notty")

	noColor := color.NoColor
	color.NoColor = true
	oldClock := clock
	clock = func() time.Time { return now }
	t.Cleanup(func() {
		color.NoColor = noColor
		clock = oldClock
	})

	resetFlags(rootCmd)
	var buf bytes.Buffer
	rootCmd.SetOut(&buf)
	rootCmd.SetErr(&buf)
	if !slices.Contains(args, "--tz") {
		args = append(args, "--tz", "UTC")
	}
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return buf.String(), err
}

func TestShowDay(t *testing.T) {
	out, err := execute(t, "show", "day", "2012-02-15")
	require.NoError(t, err)
	assert.Contains(t, out, "day Wednesday (current)")
	assert.Contains(t, out, "begin: 2012-02-15 00:00:00")
	assert.Contains(t, out, "end:   2012-02-16 00:00:00")
	assert.Contains(t, out, "span:  P1D")
}

func TestShowNavigation(t *testing.T) {
	out, err := execute(t, "show", "week", "2012-02-15", "--next", "1")
	require.NoError(t, err)
	assert.Contains(t, out, "week 8")
	assert.Contains(t, out, "begin: 2012-02-20 00:00:00")
	assert.NotContains(t, out, "current")

	out, err = execute(t, "show", "month", "2012-03-10", "--prev", "2")
	require.NoError(t, err)
	assert.Contains(t, out, "month January")
}

func TestShowSmartViews(t *testing.T) {
	out, err := execute(t, "show", "today")
	require.NoError(t, err)
	assert.Contains(t, out, "day Wednesday (current)")

	out, err = execute(t, "show", "last-month")
	require.NoError(t, err)
	assert.Contains(t, out, "month January")

	out, err = execute(t, "show", "hour")
	require.NoError(t, err)
	assert.Contains(t, out, "begin: 2012-02-15 13:00:00")
}

func TestShowTodayWithoutMidnight(t *testing.T) {
	// Sao Paulo skipped 00:00 on 2018-11-04, so that day has no legal begin.
	now := time.Date(2018, time.November, 4, 13, 0, 0, 0, time.UTC)

	_, err := executeAt(t, now, "show", "today", "--tz", "America/Sao_Paulo")
	assert.True(t, errors.Is(err, period.ErrNotADay), "got %v", err)

	out, err := executeAt(t, now, "show", "month", "--tz", "America/Sao_Paulo")
	require.NoError(t, err)
	assert.Contains(t, out, "month November (current)")
}

func TestShowFirstWeekdayFlag(t *testing.T) {
	out, err := execute(t, "show", "week", "2012-02-15", "--first-weekday", "sunday")
	require.NoError(t, err)
	assert.Contains(t, out, "begin: 2012-02-12 00:00:00")

	_, err = execute(t, "show", "week", "--first-weekday", "funday")
	assert.True(t, errors.Is(err, config.ErrInvalidConfig), "got %v", err)
}

func TestShowStrict(t *testing.T) {
	_, err := execute(t, "show", "month", "2012-02-15", "--strict")
	assert.True(t, errors.Is(err, period.ErrNotAMonth), "got %v", err)
	assert.True(t, errors.Is(err, period.ErrInvalidAnchor))

	out, err := execute(t, "show", "month", "2012-02", "--strict")
	require.NoError(t, err)
	assert.Contains(t, out, "month February")
}

func TestShowErrors(t *testing.T) {
	_, err := execute(t, "show", "fortnight")
	assert.True(t, errors.Is(err, period.ErrUnknownKind), "got %v", err)

	_, err = execute(t, "show", "range")
	assert.True(t, errors.Is(err, errors.ErrUnsupported), "got %v", err)

	_, err = execute(t, "show", "day", "15/02/2012")
	assert.Error(t, err)
}

func TestSplit(t *testing.T) {
	out, err := execute(t, "split", "week", "2012-02-15")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	require.Len(t, lines, 7)
	assert.Contains(t, lines[0], " 13 Monday")
	assert.Contains(t, lines[2], "*  15 Wednesday")
	assert.Contains(t, lines[6], " 19 Sunday")
}

func TestSplitUnsupported(t *testing.T) {
	_, err := execute(t, "split", "second")
	assert.True(t, errors.Is(err, errors.ErrUnsupported), "got %v", err)
}

func TestSplitMarkdown(t *testing.T) {
	out, err := execute(t, "split", "week", "2012-02-15", "--markdown")
	require.NoError(t, err)
	assert.Contains(t, out, "Wednesday")
	assert.Contains(t, out, "2012-02-19 00:00:00")
}

func TestMonth(t *testing.T) {
	out, err := execute(t, "month", "2012-02-15", "--extended")
	require.NoError(t, err)
	assert.Contains(t, out, "February 2012")
	assert.Contains(t, out, "Mo Tu We Th Fr Sa Su")
	assert.Contains(t, out, "from: 2012-01-30 00:00:00")
	assert.Contains(t, out, "to:   2012-03-05 00:00:00")
	assert.Contains(t, out, "days: 35")
}

func TestRangeBetweenDates(t *testing.T) {
	out, err := execute(t, "range", "2012-01-01", "2012-01-03", "--next", "1")
	require.NoError(t, err)
	assert.Contains(t, out, "range 2012-01-03T00:00:00Z/2012-01-05T00:00:00Z")
	assert.Contains(t, out, "span:  P2D")
}

func TestRangeWithSpan(t *testing.T) {
	out, err := execute(t, "range", "2012-01-01", "--span", "P1W", "--days")
	require.NoError(t, err)
	assert.Contains(t, out, "end:   2012-01-08 00:00:00")
	assert.Contains(t, out, "2012-01-01 00:00:00 Sunday")
	assert.Contains(t, out, "2012-01-07 00:00:00 Saturday")
	assert.NotContains(t, out, "2012-01-08 00:00:00 Sunday")
}

func TestRangeWithStep(t *testing.T) {
	out, err := execute(t, "range", "2012-01-01", "--span", "PT3H", "--step", "PT1H")
	require.NoError(t, err)
	assert.Contains(t, out, "\n  2012-01-01 00:00:00\n")
	assert.Contains(t, out, "\n  2012-01-01 02:00:00\n")
	assert.NotContains(t, out, "\n  2012-01-01 03:00:00")
}

func TestRangeNeedsEnd(t *testing.T) {
	_, err := execute(t, "range", "2012-01-01")
	assert.ErrorContains(t, err, "--span")
}

func TestContains(t *testing.T) {
	out, err := execute(t, "contains", "day", "2012-02-15", "2012-02-15 23:59")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "yes"), "got %q", out)

	out, err = execute(t, "contains", "day", "2012-02-15", "2012-02-16")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "no"), "the end is excluded, got %q", out)
}

func TestCompare(t *testing.T) {
	out, err := execute(t, "compare", "month", "2012-02", "day", "2012-02-29")
	require.NoError(t, err)
	assert.Contains(t, out, "equal:     no")
	assert.Contains(t, out, "includes:  yes")
	assert.Contains(t, out, "overlaps:  yes")

	out, err = execute(t, "compare", "day", "2012-02-29", "day", "2012-02-29 18:00")
	require.NoError(t, err)
	assert.Contains(t, out, "equal:     yes")
}

func writeEvents(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "events.yaml")
	doc := `events:
  - summary: Standup
    begin: 2012-02-14T09:00:00Z
    end: 2012-02-14T09:15:00Z
  - summary: Conference
    begin: 2012-02-10T00:00:00Z
    end: 2012-02-25T00:00:00Z
  - summary: Offsite
    begin: 2012-02-21T09:00:00Z
`
	require.NoError(t, os.WriteFile(path, []byte(doc), 0644))
	return path
}

func TestEvents(t *testing.T) {
	path := writeEvents(t)

	out, err := execute(t, "events", path, "week", "2012-02-15")
	require.NoError(t, err)
	assert.Contains(t, out, "Standup")
	assert.Contains(t, out, "Conference (all week)")
	assert.NotContains(t, out, "Offsite")

	out, err = execute(t, "events", path, "day", "2012-03-01")
	require.NoError(t, err)
	assert.Contains(t, out, "No events found")

	out, err = execute(t, "events", path, "week", "2012-02-15", "--markdown")
	require.NoError(t, err)
	assert.Contains(t, out, "Standup")
}

func TestEventsMissingFile(t *testing.T) {
	_, err := execute(t, "events", filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorContains(t, err, "failed to open events")
}

func TestMonthMarksEvents(t *testing.T) {
	out, err := execute(t, "month", "2012-02-15", "--events", writeEvents(t))
	require.NoError(t, err)
	assert.Contains(t, out, "February 2012")
}

func TestExportJSON(t *testing.T) {
	out, err := execute(t, "export", "week", "2012-02-15")
	require.NoError(t, err)

	var doc struct {
		ID           string `json:"id"`
		FirstWeekday string `json:"first_weekday"`
		Period       struct {
			Kind  string    `json:"kind"`
			Label string    `json:"label"`
			Begin time.Time `json:"begin"`
			Span  string    `json:"span"`
			Parts []struct {
				Kind  string `json:"kind"`
				Key   int    `json:"key"`
				Label string `json:"label"`
			} `json:"parts"`
		} `json:"period"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &doc))
	assert.NotEmpty(t, doc.ID)
	assert.Equal(t, "Monday", doc.FirstWeekday)
	assert.Equal(t, "week", doc.Period.Kind)
	assert.Equal(t, "7", doc.Period.Label)
	assert.Equal(t, "P1W", doc.Period.Span)
	assert.True(t, doc.Period.Begin.Equal(time.Date(2012, time.February, 13, 0, 0, 0, 0, time.UTC)))
	require.Len(t, doc.Period.Parts, 7)
	assert.Equal(t, "day", doc.Period.Parts[0].Kind)
	assert.Equal(t, 13, doc.Period.Parts[0].Key)
	assert.Equal(t, "Monday", doc.Period.Parts[0].Label)
}

func TestExportYAML(t *testing.T) {
	out, err := execute(t, "export", "year", "2012-06-01", "--format", "yaml")
	require.NoError(t, err)

	var doc struct {
		Period struct {
			Kind  string `yaml:"kind"`
			Parts []struct {
				Key   int    `yaml:"key"`
				Label string `yaml:"label"`
			} `yaml:"parts"`
		} `yaml:"period"`
	}
	require.NoError(t, yaml.Unmarshal([]byte(out), &doc))
	assert.Equal(t, "year", doc.Period.Kind)
	require.Len(t, doc.Period.Parts, 12)
	assert.Equal(t, 12, doc.Period.Parts[11].Key)
	assert.Equal(t, "December", doc.Period.Parts[11].Label)
}

func TestExportUnknownFormat(t *testing.T) {
	_, err := execute(t, "export", "day", "--format", "xml")
	assert.ErrorContains(t, err, "unknown format")
}

// failingWriter rejects every write.
type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) {
	return 0, errors.New("disk full")
}

func TestWriteExportReportsWriteErrors(t *testing.T) {
	doc := exportDocument{ID: "x", FirstWeekday: "Monday", Period: exportedPeriod{Kind: period.Day, Label: "Wednesday"}}
	for _, format := range []string{"json", "yaml"} {
		err := writeExport(failingWriter{}, format, doc)
		assert.ErrorContains(t, err, "disk full", format)
	}

	var buf bytes.Buffer
	require.NoError(t, writeExport(&buf, "yaml", doc))
	assert.Contains(t, buf.String(), "label: Wednesday")
}
