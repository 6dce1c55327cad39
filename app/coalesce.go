package app

import "github.com/gdamore/tcell/v2"

// coalesce drains the events already queued behind first. Inside a run of
// mouse events sharing buttons and modifiers only the first and the last are
// kept: the first carries any press, the last the final position
func coalesce(first tcell.Event, pending <-chan tcell.Event) ([]tcell.Event, int) {
	batch := []tcell.Event{first}
	for n := len(pending); n > 0; n-- {
		ev, ok := <-pending
		if !ok {
			break
		}
		batch = append(batch, ev)
	}

	out := batch[:0:0]
	dropped := 0
	for i, ev := range batch {
		if i > 0 && i < len(batch)-1 && sameRun(batch[i-1], ev) && sameRun(ev, batch[i+1]) {
			dropped++
			continue
		}
		out = append(out, ev)
	}
	return out, dropped
}

func sameRun(a, b tcell.Event) bool {
	ma, ok := a.(*tcell.EventMouse)
	if !ok {
		return false
	}
	mb, ok := b.(*tcell.EventMouse)
	if !ok {
		return false
	}
	return ma.Buttons() == mb.Buttons() && ma.Modifiers() == mb.Modifiers()
}

// motionFilter decides which mouse events the poller may shed when the queue
// is full. Only motion with no button held, following a forwarded event that
// also had no button and the same modifiers, carries nothing new: a release
// reports ButtonNone too and must get through
type motionFilter struct {
	buttons tcell.ButtonMask
	mods    tcell.ModMask
}

// sheddable reports whether ev repeats the idle pointer state
func (f *motionFilter) sheddable(ev tcell.Event) bool {
	m, ok := ev.(*tcell.EventMouse)
	if !ok {
		return false
	}
	return m.Buttons() == tcell.ButtonNone && f.buttons == tcell.ButtonNone && m.Modifiers() == f.mods
}

// forwarded records the pointer state of an event handed to the loop
func (f *motionFilter) forwarded(ev tcell.Event) {
	if m, ok := ev.(*tcell.EventMouse); ok {
		f.buttons, f.mods = m.Buttons(), m.Modifiers()
	}
}
