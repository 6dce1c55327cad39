// Package dashboard coordinates the linked views: it owns the selection,
// recomputes the aggregates on every change and publishes the resulting View
package dashboard

import (
	"log/slog"
	"time"

	"github.com/lixenwraith/steamviz/catalog"
	"github.com/lixenwraith/steamviz/selection"
	"github.com/lixenwraith/steamviz/status"
)

// Sink receives every published View, synchronously and in order
type Sink interface {
	Publish(View)
}

// SinkFunc adapts a function to Sink
type SinkFunc func(View)

func (f SinkFunc) Publish(v View) { f(v) }

// Coordinator is the single state container of a dashboard session
// Not safe for concurrent use: one goroutine drives Handle
type Coordinator struct {
	catalog *catalog.Catalog
	engine  selection.Engine
	inspect InspectController
	surface selection.Surface
	opts    Options

	sinks   []Sink
	log     *slog.Logger
	metrics *status.Registry

	view View
	seq  uint64
}

// Option configures a Coordinator
type Option func(*Coordinator)

// WithLogger sets the transition logger
func WithLogger(l *slog.Logger) Option {
	return func(c *Coordinator) { c.log = l }
}

// WithMetrics sets the metrics registry
func WithMetrics(r *status.Registry) Option {
	return func(c *Coordinator) { c.metrics = r }
}

// WithOptions overrides the aggregate options
func WithOptions(o Options) Option {
	return func(c *Coordinator) { c.opts = o }
}

// NewCoordinator starts a session in Idle with full-catalog aggregates
func NewCoordinator(c *catalog.Catalog, surface selection.Surface, opts ...Option) *Coordinator {
	co := &Coordinator{
		catalog: c,
		surface: surface,
		opts:    DefaultOptions(),
	}
	for _, o := range opts {
		o(co)
	}
	if co.log == nil {
		co.log = slog.New(slog.DiscardHandler)
	}
	if co.metrics == nil {
		co.metrics = status.NewRegistry()
	}
	co.recompute()
	return co
}

// AddSink registers a View consumer
func (c *Coordinator) AddSink(s Sink) {
	c.sinks = append(c.sinks, s)
}

// View returns the last published View
func (c *Coordinator) View() View {
	return c.view
}

// Surface returns the current scatter geometry
func (c *Coordinator) Surface() selection.Surface {
	return c.surface
}

// InspectActive reports inspect mode
func (c *Coordinator) InspectActive() bool {
	return c.inspect.Active()
}

// Catalog returns the session catalog
func (c *Coordinator) Catalog() *catalog.Catalog {
	return c.catalog
}

// Handle applies one event and publishes the resulting View before returning
func (c *Coordinator) Handle(ev Event) View {
	c.metrics.Count(status.KeyEvents).Add(1)

	switch {
	case ev.Type.IsSelection():
		c.applySurfaceRect(ev.Rect)
		c.recompute()
	case ev.Type == EventReset:
		c.engine.Clear()
		c.recompute()
	case ev.Type == EventModifierDown:
		c.inspect.Press()
		c.republish()
	case ev.Type == EventModifierUp:
		c.inspect.Release()
		c.republish()
	case ev.Type == EventResize:
		c.surface = c.surface.Resize(ev.Width, ev.Height)
		c.republish()
	default:
		return c.view
	}

	c.log.Debug("dashboard event",
		"event", ev.Type.String(),
		"state", c.view.State.String(),
		"selected", c.view.Summary.Selected,
		"total", c.view.Summary.Total,
		"inspect", c.view.Inspect,
		"seq", c.view.Seq,
	)
	return c.view
}

// Reset returns to Idle
func (c *Coordinator) Reset() View {
	return c.Handle(Event{Type: EventReset})
}

// SetSelection applies a data-space rect directly, bypassing the surface
// Used by the non-interactive commands. nil clears
func (c *Coordinator) SetSelection(r *selection.Rect) View {
	c.engine.SetSelection(r)
	c.recompute()
	return c.view
}

// applySurfaceRect converts and stores a gesture rect. Anything that does not
// resolve to a proper data rect clears the selection
func (c *Coordinator) applySurfaceRect(sr *selection.SurfaceRect) {
	if sr == nil {
		c.engine.Clear()
		return
	}
	r, ok := c.surface.ToData(*sr)
	if !ok {
		c.engine.Clear()
		return
	}
	c.engine.SetSelection(&r)
}

func (c *Coordinator) recompute() {
	start := time.Now()
	v := Recompute(c.catalog, &c.engine, c.opts)
	c.metrics.ObserveDuration(status.KeyRecomputeTime, time.Since(start))
	c.metrics.Count(status.KeyRecomputes).Add(1)
	c.metrics.Count(status.KeySelected).Store(int64(v.Summary.Selected))

	c.seq++
	v.Seq = c.seq
	c.view = v
	c.republish()
}

// republish refreshes the non-derived fields and hands the View to every sink
func (c *Coordinator) republish() {
	c.view.Inspect = c.inspect.Active()
	c.view.Surface = c.surface
	for _, s := range c.sinks {
		s.Publish(c.view)
	}
}
