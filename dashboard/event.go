package dashboard

import "github.com/lixenwraith/steamviz/selection"

// EventType discriminates coordinator inputs
type EventType uint8

const (
	EventNone EventType = iota

	// Selection gesture on the scatter surface; Rect nil means cleared
	EventSelectionStart
	EventSelectionMove
	EventSelectionEnd

	EventReset        // Return to Idle
	EventModifierDown // Inspect modifier engaged
	EventModifierUp   // Inspect modifier released
	EventResize       // Scatter surface geometry changed
)

var eventNames = [...]string{
	EventNone:           "none",
	EventSelectionStart: "selection_start",
	EventSelectionMove:  "selection_move",
	EventSelectionEnd:   "selection_end",
	EventReset:          "reset",
	EventModifierDown:   "modifier_down",
	EventModifierUp:     "modifier_up",
	EventResize:         "resize",
}

func (t EventType) String() string {
	if int(t) < len(eventNames) {
		return eventNames[t]
	}
	return "unknown"
}

// IsSelection reports the three selection gesture events
func (t EventType) IsSelection() bool {
	return t == EventSelectionStart || t == EventSelectionMove || t == EventSelectionEnd
}

// Event is a pure-data coordinator input
type Event struct {
	Type EventType

	// Selection events, in surface coordinates
	Rect *selection.SurfaceRect

	// Resize
	Width, Height int
}

// SelectionEvent builds a selection gesture event. A nil rect clears
func SelectionEvent(t EventType, r *selection.SurfaceRect) Event {
	return Event{Type: t, Rect: r}
}

// ResizeEvent builds a surface resize
func ResizeEvent(width, height int) Event {
	return Event{Type: EventResize, Width: width, Height: height}
}
