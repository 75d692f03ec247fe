// ABOUTME: Root Cobra command and global flags
// ABOUTME: Loads config, builds the period factory and resolves period arguments

package main

import (
	"errors"
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/harper/calendr/internal/config"
	"github.com/harper/calendr/internal/period"
	"github.com/harper/calendr/internal/timeutil"
)

var (
	firstWeekdayFlag string
	layoutFlag       string
	timezoneFlag     string
	strictFlag       bool

	cfg     *config.Config
	factory *period.Factory
	loc     *time.Location

	// clock overrides the factory clock when set. Its readings are moved
	// into the --tz location.
	clock func() time.Time
)

var rootCmd = &cobra.Command{
	Use:   "calendr",
	Short: "Calendar periods from seconds to years",
	Long: `
 ██████╗ █████╗ ██╗     ███████╗███╗   ██╗██████╗ ██████╗
██╔════╝██╔══██╗██║     ██╔════╝████╗  ██║██╔══██╗██╔══██╗
██║     ███████║██║     █████╗  ██╔██╗ ██║██║  ██║██████╔╝
██║     ██╔══██║██║     ██╔══╝  ██║╚██╗██║██║  ██║██╔══██╗
╚██████╗██║  ██║███████╗███████╗██║ ╚████║██████╔╝██║  ██║
 ╚═════╝╚═╝  ╚═╝╚══════╝╚══════╝╚═╝  ╚═══╝╚═════╝ ╚═╝  ╚═╝

Navigate, split and compare calendar periods.

Seconds, minutes, hours, days, weeks, months, years and free ranges.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		loaded, err := config.Load()
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		if firstWeekdayFlag != "" {
			loaded.FirstWeekday = firstWeekdayFlag
		}
		if layoutFlag != "" {
			loaded.DateLayout = layoutFlag
		}
		if timezoneFlag != "" {
			loaded.Timezone = timezoneFlag
		}
		if err := loaded.Validate(); err != nil {
			return err
		}

		f, err := loaded.Factory()
		if err != nil {
			return err
		}
		now := time.Now
		if clock != nil {
			now = clock
		}
		zone := loaded.GetLocation()
		f.SetClock(func() time.Time { return now().In(zone) })
		cfg, factory, loc = loaded, f, zone
		return nil
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&firstWeekdayFlag, "first-weekday", "", "first day of the week, name or 0-6 from sunday (default: monday)")
	rootCmd.PersistentFlags().StringVar(&layoutFlag, "layout", "", "Go time layout for printed dates (default: "+config.DefaultDateLayout+")")
	rootCmd.PersistentFlags().StringVar(&timezoneFlag, "tz", "", "IANA time zone for dates given without an offset (default: local)")
	rootCmd.PersistentFlags().BoolVar(&strictFlag, "strict", false, "reject dates that are not the exact start of the requested period")
}

// parseInstant reads a timestamp argument. "now", "today", "yesterday" and
// "tomorrow" are relative to the factory clock.
func parseInstant(s string) (time.Time, error) {
	now := factory.Now().In(loc)
	switch s {
	case "", "now", "today":
		return now, nil
	case "yesterday":
		return now.AddDate(0, 0, -1), nil
	case "tomorrow":
		return now.AddDate(0, 0, 1), nil
	}
	return timeutil.ParseAnchor(s, loc)
}

// resolvePeriod turns "<kind> [date]" arguments into a period. The kind may
// also be a smart view name such as "today" or "last-week". Without --strict
// the date is floored to the start of its period.
func resolvePeriod(args []string) (period.Period, error) {
	if len(args) == 0 {
		return period.Period{}, fmt.Errorf("missing period kind")
	}
	k, err := period.ParseKind(args[0])
	if err != nil {
		if len(args) > 1 {
			return period.Period{}, err
		}
		p, perr := timeutil.ParsePeriod(factory, args[0])
		if errors.Is(perr, timeutil.ErrUnknownName) {
			return period.Period{}, err
		}
		return p, perr
	}

	var date string
	if len(args) > 1 {
		date = args[1]
	}
	at, err := parseInstant(date)
	if err != nil {
		return period.Period{}, err
	}
	if strictFlag {
		return factory.Create(k, at)
	}
	return timeutil.PeriodAt(factory, k, at)
}

// navigate moves p forward by next and backward by prev steps.
func navigate(p period.Period, next, prev int) period.Period {
	for ; next > 0; next-- {
		p = p.Next()
	}
	for ; prev > 0; prev-- {
		p = p.Previous()
	}
	return p
}

// fixedKinds lists the kinds a single date can designate, for help text.
func fixedKinds() string {
	var names []string
	for _, k := range period.Kinds {
		if k.IsFixed() {
			names = append(names, k.String())
		}
	}
	return strings.Join(names, ", ")
}

// completePeriod offers kind and period names for the first argument of
// commands taking "<kind> [date]".
func completePeriod(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	if len(args) > 0 {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}
	var names []string
	for _, k := range period.Kinds {
		names = append(names, k.String())
	}
	for _, n := range timeutil.Names {
		if !slices.Contains(names, n) {
			names = append(names, n)
		}
	}
	names = slices.DeleteFunc(names, func(n string) bool {
		return !strings.HasPrefix(n, toComplete)
	})
	return names, cobra.ShellCompDirectiveNoFileComp
}
