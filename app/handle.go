package app

import (
	"fmt"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/steamviz/audio"
	"github.com/lixenwraith/steamviz/dashboard"
	"github.com/lixenwraith/steamviz/input"
	"github.com/lixenwraith/steamviz/render"
)

// handle applies one screen event; returns true on quit
func (a *App) handle(ev tcell.Event) bool {
	for _, in := range a.machine.Process(ev) {
		a.dirty = true
		switch in.Type {
		case input.IntentQuit:
			return true
		case input.IntentResize:
			a.resize(in.Width, in.Height)
		case input.IntentReset:
			a.drag, a.dragActive = nil, false
			a.message = ""
			a.co.Reset()
			a.cue(audio.CueClear)
		case input.IntentToggleInspect:
			a.sticky = !a.sticky
			a.syncInspect()
		case input.IntentModifierDown:
			a.held = true
			a.syncInspect()
		case input.IntentModifierUp:
			a.held = false
			a.syncInspect()
		case input.IntentHover:
			a.hover = &render.Point{X: in.X, Y: in.Y}
		case input.IntentToggleMute:
			a.toggleMute()
		case input.IntentToggleStats:
			a.showStats = !a.showStats
		case input.IntentSnapshot:
			a.writeSnapshot()
		case input.IntentDragStart, input.IntentDragMove, input.IntentDragEnd:
			a.dragGesture(in)
		}
	}
	return false
}

func (a *App) resize(w, h int) {
	a.layout = render.ComputeLayout(w, h)
	a.orch.Resize(w, h)
	if !a.layout.TooSmall {
		a.co.Handle(dashboard.ResizeEvent(a.layout.Scatter.W, a.layout.Scatter.H))
	}
	a.drag, a.dragActive = nil, false
	a.machine.Reset()
}

// syncInspect derives inspect mode from the toggle and the held modifier and
// notifies the coordinator on every change. The machine routes by the toggle
// only since it tracks the held modifier itself
func (a *App) syncInspect() {
	if a.sticky {
		a.machine.SetMode(input.ModeInspect)
	} else {
		a.machine.SetMode(input.ModeSelect)
	}

	want := a.sticky || a.held
	if want == a.co.InspectActive() {
		return
	}
	if want {
		a.co.Handle(dashboard.Event{Type: dashboard.EventModifierDown})
		a.cue(audio.CueInspect)
		return
	}
	a.co.Handle(dashboard.Event{Type: dashboard.EventModifierUp})
	a.hover = nil
}

// dragGesture maps a gesture onto the scatter surface
// Gestures starting outside the scatter plot are ignored to their release
func (a *App) dragGesture(in input.Intent) {
	if a.layout.TooSmall {
		return
	}
	if in.Type == input.IntentDragStart {
		a.dragActive = a.layout.Scatter.Contains(in.X, in.Y)
	}
	if !a.dragActive {
		return
	}

	ax, ay := a.layout.SurfaceCell(in.AnchorX, in.AnchorY)
	cx, cy := a.layout.SurfaceCell(in.X, in.Y)
	rect := a.co.Surface().CellRect(ax, ay, cx, cy)

	var t dashboard.EventType
	switch in.Type {
	case input.IntentDragStart:
		t = dashboard.EventSelectionStart
	case input.IntentDragMove:
		t = dashboard.EventSelectionMove
	default:
		t = dashboard.EventSelectionEnd
	}

	if t == dashboard.EventSelectionEnd {
		a.drag, a.dragActive = nil, false
	} else {
		a.drag = &render.DragSpan{AnchorX: ax, AnchorY: ay, X: cx, Y: cy}
	}
	v := a.co.Handle(dashboard.SelectionEvent(t, &rect))

	if t == dashboard.EventSelectionEnd {
		if v.HasSelection {
			a.cue(audio.CueSelect)
		} else {
			a.cue(audio.CueClear)
		}
	}
}

func (a *App) cue(c audio.CueType) {
	if a.audio != nil {
		a.audio.Play(c)
	}
}

func (a *App) toggleMute() {
	if !a.audioAvailable() {
		a.message = "audio unavailable"
		return
	}
	if a.audio.ToggleMute() {
		a.message = "muted"
	} else {
		a.message = "sound on"
	}
}

func (a *App) writeSnapshot() {
	paths, err := a.snapshot.Write(a.co.View())
	if err != nil {
		a.log.WithError(err).Warn("snapshot failed")
		a.message = "snapshot failed"
		return
	}
	a.log.Info("snapshot written", "files", paths)
	a.message = fmt.Sprintf("saved %d svg to %s", len(paths), a.snapshot.Dir)
}
