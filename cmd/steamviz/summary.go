package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/lixenwraith/steamviz/aggregate"
	"github.com/lixenwraith/steamviz/dashboard"
	"github.com/lixenwraith/steamviz/selection"
	"github.com/lixenwraith/steamviz/status"
)

// summaryReport is the YAML document printed by 'steamviz summary'
type summaryReport struct {
	Catalog   string                 `yaml:"catalog"`
	Selection *selection.Rect        `yaml:"selection,omitempty"`
	Summary   dashboard.Summary      `yaml:"summary"`
	Stats     aggregate.Stats        `yaml:"stats"`
	Ranking   aggregate.TagFrequency `yaml:"ranking"`
	Trend     aggregate.YearSeries   `yaml:"trend"`
	Recompute string                 `yaml:"recompute"`
}

func newSummaryCmd(opts *globalOptions) *cobra.Command {
	var sf *selectionFlags
	cmd := &cobra.Command{
		Use:   "summary [catalog]",
		Short: "Print the linked views for a selection as YAML",
		Long: `Apply a selection without the terminal UI and print the counter, the
statistics, the tag ranking and the release trend as YAML.

Without --price or --rate the whole catalog is summarized.

Examples:
  steamviz summary --price 0:20 --rate 0.8:
  steamviz summary games.db --price 40:`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			h, err := openHeadless(cmd, opts, args)
			if err != nil {
				return err
			}
			defer h.close()

			v := h.co.SetSelection(sf.rect())
			report := summaryReport{
				Catalog:   h.path,
				Summary:   v.Summary,
				Stats:     v.Stats,
				Ranking:   v.Ranking,
				Trend:     v.Series,
				Recompute: recomputeTime(h.metrics).String(),
			}
			if v.HasSelection {
				r := v.Selection
				report.Selection = &r
			}

			enc := yaml.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent(2)
			if err := enc.Encode(report); err != nil {
				return fmt.Errorf("encode summary: %w", err)
			}
			return enc.Close()
		},
	}
	sf = addSelectionFlags(cmd)
	return cmd
}

func recomputeTime(r *status.Registry) time.Duration {
	return r.Timing(status.KeyRecomputeTime).Last().Round(time.Microsecond)
}
