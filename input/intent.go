package input

// IntentType discriminates semantic actions
type IntentType uint8

const (
	IntentNone IntentType = iota

	// System-level intents
	IntentQuit   // Ctrl+C, q
	IntentResize // Terminal resize event

	// Dashboard commands
	IntentReset         // r, Esc: drop the selection
	IntentToggleInspect // i: for terminals that do not report modifiers
	IntentToggleMute    // m
	IntentSnapshot      // s: export the current views as SVG
	IntentToggleStats   // Tab: status bar metrics

	// Selection gesture, in screen cells
	IntentDragStart // Left button pressed
	IntentDragMove  // Moved with left button held
	IntentDragEnd   // Left button released

	// Inspect mode
	IntentHover        // Pointer moved while inspecting
	IntentModifierDown // Inspect modifier observed pressed
	IntentModifierUp   // Inspect modifier observed released
)

var intentNames = [...]string{
	IntentNone:          "none",
	IntentQuit:          "quit",
	IntentResize:        "resize",
	IntentReset:         "reset",
	IntentToggleInspect: "toggle_inspect",
	IntentToggleMute:    "toggle_mute",
	IntentSnapshot:      "snapshot",
	IntentToggleStats:   "toggle_stats",
	IntentDragStart:     "drag_start",
	IntentDragMove:      "drag_move",
	IntentDragEnd:       "drag_end",
	IntentHover:         "hover",
	IntentModifierDown:  "modifier_down",
	IntentModifierUp:    "modifier_up",
}

func (t IntentType) String() string {
	if int(t) < len(intentNames) {
		return intentNames[t]
	}
	return "unknown"
}

// Intent represents a parsed semantic action
// Pure data struct with no function pointers or dashboard dependencies
type Intent struct {
	Type IntentType

	// Pointer position in screen cells
	X, Y int

	// Drag anchor, set on DragMove and DragEnd
	AnchorX, AnchorY int

	// Resize
	Width, Height int
}
