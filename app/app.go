// Package app runs the interactive dashboard session on a tcell screen
package app

import (
	"context"
	"fmt"
	"maps"

	"github.com/gdamore/tcell/v2"
	"github.com/google/uuid"

	"github.com/lixenwraith/steamviz/audio"
	"github.com/lixenwraith/steamviz/catalog"
	"github.com/lixenwraith/steamviz/config"
	"github.com/lixenwraith/steamviz/core"
	"github.com/lixenwraith/steamviz/dashboard"
	"github.com/lixenwraith/steamviz/export"
	"github.com/lixenwraith/steamviz/input"
	"github.com/lixenwraith/steamviz/logger"
	"github.com/lixenwraith/steamviz/render"
	"github.com/lixenwraith/steamviz/render/renderers"
	"github.com/lixenwraith/steamviz/selection"
	"github.com/lixenwraith/steamviz/status"
)

// Event channel depth between the poller and the loop
const eventBuffer = 256

// Options wires an App. Screen and Audio are optional
type Options struct {
	Config  *config.Config
	Catalog *catalog.Catalog
	Logger  *logger.Logger
	Metrics *status.Registry

	// Screen defaults to the real terminal
	Screen tcell.Screen
	// Audio is nil when cues are disabled
	Audio *audio.Player
}

// App is one dashboard session
type App struct {
	SessionID string

	screen   tcell.Screen
	co       *dashboard.Coordinator
	machine  *input.Machine
	orch     *render.RenderOrchestrator
	layout   render.Layout
	snapshot *export.Snapshot
	audio    *audio.Player
	log      *logger.Logger
	metrics  *status.Registry

	// Pointer and mode state owned by the loop goroutine
	hover      *render.Point
	drag       *render.DragSpan
	dragActive bool
	sticky     bool
	held       bool
	showStats  bool
	message    string
	dirty      bool
}

// New initializes the screen and builds the session; Close releases it
func New(opts Options) (*App, error) {
	cfg := opts.Config
	if cfg == nil {
		cfg = config.DefaultConfig()
	}
	if opts.Catalog == nil {
		return nil, fmt.Errorf("app: no catalog")
	}

	palette, err := render.NewPalette(cfg.Palette)
	if err != nil {
		return nil, err
	}

	machine := input.NewMachine()
	if mod, ok := input.ModifierByName(cfg.Inspect.Modifier); ok {
		machine.SetModifier(mod)
	}
	bindings := maps.Clone(cfg.Keys)
	if bindings == nil {
		bindings = map[string]string{}
	}
	if cfg.Inspect.ToggleKey != "" {
		bindings[cfg.Inspect.ToggleKey] = "toggle_inspect"
	}
	overrides, err := input.ParseBindings(bindings)
	if err != nil {
		return nil, fmt.Errorf("key bindings: %w", err)
	}
	machine.SetKeyTable(input.MergeKeyTable(input.DefaultKeyTable(), overrides))

	screen := opts.Screen
	if screen == nil {
		if screen, err = tcell.NewScreen(); err != nil {
			return nil, fmt.Errorf("open terminal: %w", err)
		}
	}
	if err := screen.Init(); err != nil {
		return nil, fmt.Errorf("init terminal: %w", err)
	}
	screen.EnableMouse(tcell.MouseMotionEvents)
	screen.HideCursor()
	core.SetCrashScreen(screen)

	a := &App{
		SessionID: uuid.NewString(),
		screen:    screen,
		machine:   machine,
		audio:     opts.Audio,
		metrics:   opts.Metrics,
		log:       opts.Logger,
		dirty:     true,
	}
	if a.log == nil {
		a.log = logger.Discard()
	}
	a.log = a.log.WithSession(a.SessionID)
	if a.metrics == nil {
		a.metrics = status.NewRegistry()
	}

	w, h := screen.Size()
	a.layout = render.ComputeLayout(w, h)
	surface := selection.NewSurface(a.layout.Scatter.W, a.layout.Scatter.H,
		0, cfg.Axes.PriceMax, cfg.Axes.RateMin, cfg.Axes.RateMax)

	a.co = dashboard.NewCoordinator(opts.Catalog, surface,
		dashboard.WithLogger(a.log.Logger),
		dashboard.WithMetrics(a.metrics),
		dashboard.WithOptions(dashboard.Options{Window: cfg.Trend, TopN: cfg.Ranking.TopN}),
	)
	a.co.AddSink(dashboard.SinkFunc(func(dashboard.View) { a.dirty = true }))

	a.snapshot = &export.Snapshot{
		Dir:     cfg.Snapshot.Dir,
		Size:    export.Size{Width: cfg.Snapshot.Width, Height: cfg.Snapshot.Height},
		Catalog: opts.Catalog,
		Palette: palette,
	}

	trend := renderers.NewTrendRenderer(palette, cfg.Trend)
	a.orch = render.NewRenderOrchestrator(screen)
	a.orch.Register(renderers.NewHeaderRenderer(), render.PriorityBackground)
	a.orch.Register(renderers.NewTooSmallRenderer(), render.PriorityBackground)
	a.orch.Register(renderers.NewScatterRenderer(opts.Catalog, palette, cfg.Axes.RatingsMax), render.PriorityMarks)
	a.orch.Register(renderers.NewSelectionRenderer(), render.PrioritySelection)
	a.orch.Register(trend, render.PriorityCharts)
	a.orch.Register(renderers.NewRankingRenderer(palette), render.PriorityCharts)
	a.orch.Register(renderers.NewStatusBarRenderer(), render.PriorityUI)
	a.orch.Register(renderers.NewTooltipRenderer(opts.Catalog, palette, trend), render.PriorityTooltip)

	a.log.Info("session started",
		"records", opts.Catalog.Len(),
		"width", w,
		"height", h,
		"audio", a.audioAvailable(),
	)
	return a, nil
}

// Coordinator exposes the session state
func (a *App) Coordinator() *dashboard.Coordinator {
	return a.co
}

// Buffer exposes the last rendered frame
func (a *App) Buffer() *render.RenderBuffer {
	return a.orch.Buffer()
}

// Close restores the terminal and releases audio
func (a *App) Close() {
	core.SetCrashScreen(nil)
	a.screen.Fini()
	if a.audio != nil {
		a.audio.Close()
	}
	a.log.Info("session ended", "metrics", a.metrics.Snapshot())
}

// Run drives the session until quit or ctx cancellation
// Screen events are read by a poller goroutine; the loop handles them in
// arrival order, coalescing pointer motion bursts, then redraws once
func (a *App) Run(ctx context.Context) error {
	events := make(chan tcell.Event, eventBuffer)
	done := make(chan struct{})
	defer close(done)

	core.Go(func() { a.poll(events, done) })

	a.draw()
	for {
		select {
		case <-ctx.Done():
			return nil
		case ev, ok := <-events:
			if !ok {
				return nil
			}
			batch, dropped := coalesce(ev, events)
			if dropped > 0 {
				a.metrics.Count(status.KeyCoalesced).Add(int64(dropped))
			}
			for _, e := range batch {
				if a.handle(e) {
					return nil
				}
			}
			if a.dirty {
				a.draw()
			}
		}
	}
}

// poll forwards screen events until the screen closes
func (a *App) poll(events chan<- tcell.Event, done <-chan struct{}) {
	defer close(events)
	var filter motionFilter
	for {
		ev := a.screen.PollEvent()
		if ev == nil {
			return
		}
		select {
		case events <- ev:
			filter.forwarded(ev)
			continue
		case <-done:
			return
		default:
		}
		// full: shed idle motion, block for anything else
		if filter.sheddable(ev) {
			a.metrics.Count(status.KeyDropped).Add(1)
			continue
		}
		select {
		case events <- ev:
			filter.forwarded(ev)
		case <-done:
			return
		}
	}
}

func (a *App) audioAvailable() bool {
	return a.audio != nil && a.audio.Available()
}

func (a *App) draw() {
	a.dirty = false
	muted := a.audio != nil && a.audio.Muted()
	a.orch.RenderFrame(render.RenderContext{
		View:           a.co.View(),
		Layout:         a.layout,
		Hover:          a.hover,
		Drag:           a.drag,
		AudioAvailable: a.audioAvailable(),
		Muted:          muted,
		ShowStats:      a.showStats,
		Message:        a.message,
		Metrics:        a.metrics,
	})
}
