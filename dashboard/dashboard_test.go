package dashboard

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/steamviz/aggregate"
	"github.com/lixenwraith/steamviz/catalog"
	"github.com/lixenwraith/steamviz/selection"
	"github.com/lixenwraith/steamviz/status"
)

func scenario() *catalog.Catalog {
	return catalog.New([]catalog.GameRecord{
		{Name: "a", Price: 10, PositiveRate: 0.9, Year: 2020, Genres: []string{"Indie"}},
		{Name: "b", Price: 50, PositiveRate: 0.5, Year: 2021, Genres: []string{"Action"}},
		{Name: "c", Price: 10, PositiveRate: 0.95, Year: 2020, Genres: []string{"Indie", "RPG"}},
	})
}

// 80 cells over $0..$80 and 20 rows over 0..1
func surface() selection.Surface {
	return selection.NewSurface(80, 20, 0, 80, 0, 1)
}

// price [0,20], rate [0.8,1] expressed in surface cells: rows 0..4 are rates 1..0.8
func scenarioRect() *selection.SurfaceRect {
	return &selection.SurfaceRect{X0: 0.0001, Y0: 0.0001, X1: 20, Y1: 4}
}

type recorder struct {
	views []View
}

func (r *recorder) Publish(v View) { r.views = append(r.views, v) }

func TestCoordinator_StartsIdle(t *testing.T) {
	co := NewCoordinator(scenario(), surface())
	v := co.View()

	assert.Equal(t, StateIdle, v.State)
	assert.False(t, v.HasSelection)
	assert.Len(t, v.Records, 3)
	assert.Equal(t, "3/3", v.Summary.String())
	assert.Equal(t, uint64(1), v.Seq)
}

func TestCoordinator_SelectionScenario(t *testing.T) {
	co := NewCoordinator(scenario(), surface())
	rec := &recorder{}
	co.AddSink(rec)

	v := co.Handle(SelectionEvent(EventSelectionEnd, scenarioRect()))

	assert.Equal(t, StateFiltered, v.State)
	require.Len(t, v.Records, 2)
	assert.Equal(t, "a", v.Records[0].Name)
	assert.Equal(t, "c", v.Records[1].Name)
	assert.Equal(t, "2/3", v.Summary.String())
	assert.True(t, v.Summary.Filtered)

	require.Equal(t, 1, v.Series.Len())
	assert.Equal(t, 2020, v.Series.Years[0].Year)
	assert.Equal(t, 2, v.Series.Years[0].Counts["Indie"])
	assert.Equal(t, 1, v.Series.Years[0].Counts["RPG"])
	assert.Equal(t, aggregate.TagFrequency{{Tag: "Indie", Count: 2}, {Tag: "RPG", Count: 1}}, v.Ranking)

	// published synchronously before Handle returned
	require.Len(t, rec.views, 1)
	assert.Equal(t, v, rec.views[0])
}

func TestCoordinator_ClearShowsFullCount(t *testing.T) {
	for _, ev := range []Event{
		SelectionEvent(EventSelectionEnd, nil),
		SelectionEvent(EventSelectionMove, &selection.SurfaceRect{X0: 5, Y0: 5, X1: 5, Y1: 9}),
		{Type: EventReset},
	} {
		t.Run(ev.Type.String(), func(t *testing.T) {
			co := NewCoordinator(scenario(), surface())
			co.Handle(SelectionEvent(EventSelectionEnd, scenarioRect()))

			v := co.Handle(ev)
			assert.Equal(t, StateIdle, v.State)
			assert.Equal(t, "3/3", v.Summary.String())
			assert.Len(t, v.Records, 3)
		})
	}
}

func TestCoordinator_EmptySelection(t *testing.T) {
	co := NewCoordinator(scenario(), surface())
	// price 60..70 holds no record
	v := co.Handle(SelectionEvent(EventSelectionEnd, &selection.SurfaceRect{X0: 60, Y0: 1, X1: 70, Y1: 10}))

	assert.Equal(t, StateFiltered, v.State)
	assert.Empty(t, v.Records)
	assert.Equal(t, 0, v.Series.Len())
	assert.Empty(t, v.Ranking)
	assert.Equal(t, "0/3", v.Summary.String())
}

func TestCoordinator_ResetIdempotent(t *testing.T) {
	co := NewCoordinator(scenario(), surface())
	co.Handle(SelectionEvent(EventSelectionEnd, scenarioRect()))

	first := co.Reset()
	second := co.Reset()

	first.Seq, second.Seq = 0, 0
	assert.Equal(t, first, second)

	idle := NewCoordinator(scenario(), surface()).View()
	idle.Seq = 0
	assert.Equal(t, idle, first)
}

func TestCoordinator_ModifierLeavesSelection(t *testing.T) {
	co := NewCoordinator(scenario(), surface())
	before := co.Handle(SelectionEvent(EventSelectionEnd, scenarioRect()))

	down := co.Handle(Event{Type: EventModifierDown})
	assert.True(t, down.Inspect)
	assert.True(t, co.InspectActive())

	up := co.Handle(Event{Type: EventModifierUp})
	assert.False(t, up.Inspect)

	assert.Equal(t, before.Selection, up.Selection)
	assert.Equal(t, before.Records, up.Records)
	assert.Equal(t, before.Seq, up.Seq, "modifier events do not recompute")
}

func TestCoordinator_RepeatedPressIsIdempotent(t *testing.T) {
	co := NewCoordinator(scenario(), surface())
	co.Handle(Event{Type: EventModifierDown})
	co.Handle(Event{Type: EventModifierDown})
	assert.True(t, co.InspectActive())
	co.Handle(Event{Type: EventModifierUp})
	assert.False(t, co.InspectActive())
}

func TestCoordinator_LastMoveWins(t *testing.T) {
	co := NewCoordinator(scenario(), surface())
	co.Handle(SelectionEvent(EventSelectionStart, &selection.SurfaceRect{X0: 0.0001, Y0: 0.0001, X1: 0.0001, Y1: 0.0001}))
	co.Handle(SelectionEvent(EventSelectionMove, &selection.SurfaceRect{X0: 0.0001, Y0: 0.0001, X1: 70, Y1: 19}))
	co.Handle(SelectionEvent(EventSelectionMove, scenarioRect()))
	v := co.Handle(SelectionEvent(EventSelectionEnd, scenarioRect()))

	direct := NewCoordinator(scenario(), surface())
	want := direct.Handle(SelectionEvent(EventSelectionEnd, scenarioRect()))

	assert.Equal(t, want.Records, v.Records)
	assert.Equal(t, want.Series, v.Series)
	assert.Equal(t, want.Ranking, v.Ranking)
}

func TestCoordinator_Resize(t *testing.T) {
	co := NewCoordinator(scenario(), surface())
	co.Handle(SelectionEvent(EventSelectionEnd, scenarioRect()))
	seq := co.View().Seq

	v := co.Handle(ResizeEvent(40, 10))
	assert.Equal(t, 40, v.Surface.Width)
	assert.Equal(t, 10, co.Surface().Height)
	assert.Equal(t, seq, v.Seq)
	assert.Len(t, v.Records, 2, "selection is kept in data space")
}

func TestCoordinator_SetSelectionDirect(t *testing.T) {
	co := NewCoordinator(scenario(), surface())
	v := co.SetSelection(&selection.Rect{PriceMin: 20, PriceMax: 0, RateMin: 1, RateMax: 0.8})
	assert.Equal(t, "2/3", v.Summary.String())
	assert.Equal(t, selection.Rect{PriceMin: 0, PriceMax: 20, RateMin: 0.8, RateMax: 1}, v.Selection)

	v = co.SetSelection(nil)
	assert.Equal(t, StateIdle, v.State)
}

func TestCoordinator_Metrics(t *testing.T) {
	reg := status.NewRegistry()
	co := NewCoordinator(scenario(), surface(), WithMetrics(reg))
	co.Handle(SelectionEvent(EventSelectionEnd, scenarioRect()))
	co.Handle(Event{Type: EventModifierDown})

	assert.Equal(t, int64(2), reg.Count(status.KeyEvents).Load())
	assert.Equal(t, int64(2), reg.Count(status.KeyRecomputes).Load())
	assert.Equal(t, int64(2), reg.Count(status.KeySelected).Load())
}

func TestCoordinator_UnknownEventIgnored(t *testing.T) {
	co := NewCoordinator(scenario(), surface())
	before := co.View()
	assert.Equal(t, before, co.Handle(Event{}))
}

func TestRecompute_Pure(t *testing.T) {
	c := scenario()
	var e selection.Engine
	e.SetSelection(&selection.Rect{PriceMin: 0, PriceMax: 20, RateMin: 0.8, RateMax: 1})

	a := Recompute(c, &e, DefaultOptions())
	b := Recompute(c, &e, DefaultOptions())
	assert.Equal(t, a, b)
	assert.Equal(t, aggregate.DefaultWindow, a.Window)
	assert.Equal(t, 3, c.Len())
	assert.True(t, e.Active())
}

func TestInspectController(t *testing.T) {
	var ic InspectController
	assert.False(t, ic.Active())
	ic.Press()
	ic.Press()
	assert.True(t, ic.Active())
	ic.Release()
	assert.False(t, ic.Active())
	ic.Release()
	assert.False(t, ic.Active())
}

func TestEventType_String(t *testing.T) {
	assert.Equal(t, "selection_move", EventSelectionMove.String())
	assert.Equal(t, "unknown", EventType(200).String())
	assert.True(t, EventSelectionStart.IsSelection())
	assert.False(t, EventReset.IsSelection())
}
