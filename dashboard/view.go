package dashboard

import (
	"fmt"

	"github.com/lixenwraith/steamviz/aggregate"
	"github.com/lixenwraith/steamviz/catalog"
	"github.com/lixenwraith/steamviz/selection"
)

// State is the coordinator state
type State uint8

const (
	StateIdle State = iota
	StateFiltered
)

func (s State) String() string {
	if s == StateFiltered {
		return "filtered"
	}
	return "idle"
}

// Summary is the selected-over-total counter
type Summary struct {
	Selected int  `json:"selected" yaml:"selected"`
	Total    int  `json:"total" yaml:"total"`
	Filtered bool `json:"filtered" yaml:"filtered"`
}

func (s Summary) String() string {
	return fmt.Sprintf("%d/%d", s.Selected, s.Total)
}

// View is everything the renderers draw. A View is a snapshot: the coordinator
// replaces it on every update and never mutates a published one
type View struct {
	State        State
	Selection    selection.Rect
	HasSelection bool

	// Records is the filtered set in catalog order, shared with the catalog
	Records []catalog.GameRecord
	Series  aggregate.YearSeries
	// Window is the year range Series was computed over
	Window  aggregate.Window
	Ranking aggregate.TagFrequency
	Summary Summary
	Stats   aggregate.Stats

	Inspect bool
	Surface selection.Surface

	// Seq increments once per recompute
	Seq uint64
}

// Options tune the aggregates
type Options struct {
	Window aggregate.Window
	TopN   int
}

// DefaultOptions matches the dashboard's default layout
func DefaultOptions() Options {
	return Options{Window: aggregate.DefaultWindow, TopN: aggregate.DefaultTopN}
}

// Recompute derives a View from the catalog and the engine's selection
// Pure: neither argument is modified and the result depends only on them
func Recompute(c *catalog.Catalog, e *selection.Engine, opts Options) View {
	records := e.FilteredSet(c)
	rect, ok := e.Selection()

	v := View{
		State:        StateIdle,
		Selection:    rect,
		HasSelection: ok,
		Records:      records,
		Series:       aggregate.ComputeYearSeriesIn(records, opts.Window),
		Window:       opts.Window,
		Ranking:      aggregate.ComputeTagFrequencyN(records, opts.TopN),
		Summary:      Summary{Selected: len(records), Total: c.Len(), Filtered: ok},
		Stats:        aggregate.ComputeStats(records),
	}
	if ok {
		v.State = StateFiltered
	}
	return v
}
