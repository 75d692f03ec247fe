// ABOUTME: Export command writing a period and its sub-periods to stdout
// ABOUTME: Outputs JSON or YAML for scripting and import into other tools

package main

import (
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/harper/calendr/internal/period"
)

// exportedPeriod is the serialised form of a period.
type exportedPeriod struct {
	Kind  period.Kind      `json:"kind" yaml:"kind"`
	Label string           `json:"label" yaml:"label"`
	Key   *int             `json:"key,omitempty" yaml:"key,omitempty"`
	Begin time.Time        `json:"begin" yaml:"begin"`
	End   time.Time        `json:"end" yaml:"end"`
	Span  string           `json:"span" yaml:"span"`
	Parts []exportedPeriod `json:"parts,omitempty" yaml:"parts,omitempty"`
}

// exportDocument wraps an export with an identifier and the week settings used.
type exportDocument struct {
	ID           string         `json:"id" yaml:"id"`
	FirstWeekday string         `json:"first_weekday" yaml:"first_weekday"`
	Period       exportedPeriod `json:"period" yaml:"period"`
}

var exportCmd = &cobra.Command{
	Use:   "export <kind> [date]",
	Short: "Export a period and its sub-periods to stdout",
	Long:  "Export a period and its keyed sub-periods as JSON or YAML to standard output",
	Args:  cobra.RangeArgs(1, 2),
	RunE: func(cmd *cobra.Command, args []string) error {
		format, _ := cmd.Flags().GetString("format")

		p, err := resolvePeriod(args)
		if err != nil {
			return err
		}
		doc := exportDocument{
			ID:           uuid.New().String(),
			FirstWeekday: factory.FirstWeekday().String(),
			Period:       exportOf(p),
		}
		for key, sub := range p.All() {
			part := exportOf(sub)
			part.Key = &key
			doc.Period.Parts = append(doc.Period.Parts, part)
		}

		return writeExport(cmd.OutOrStdout(), format, doc)
	},
}

// writeExport encodes doc to w as json or yaml.
func writeExport(w io.Writer, format string, doc exportDocument) error {
	switch format {
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(doc)
	case "yaml":
		enc := yaml.NewEncoder(w)
		if err := enc.Encode(doc); err != nil {
			_ = enc.Close()
			return err
		}
		// Close flushes the document.
		return enc.Close()
	default:
		return fmt.Errorf("unknown format %q (use json or yaml)", format)
	}
}

func init() {
	rootCmd.AddCommand(exportCmd)
	exportCmd.ValidArgsFunction = completePeriod
	exportCmd.Flags().StringP("format", "f", "json", "output format: json or yaml")
}

func exportOf(p period.Period) exportedPeriod {
	return exportedPeriod{
		Kind:  p.Kind(),
		Label: p.String(),
		Begin: p.Begin(),
		End:   p.End(),
		Span:  p.Span().String(),
	}
}
