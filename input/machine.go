package input

import (
	"github.com/gdamore/tcell/v2"
)

// Machine is the input state machine
// Parses tcell events into semantic Intents
type Machine struct {
	mode     InputMode
	state    InputState
	keyTable *KeyTable

	// Modifier that engages inspect mode, and its last observed state
	modifier tcell.ModMask
	modHeld  bool

	// Drag anchor and last pointer cell
	anchorX, anchorY int
	lastX, lastY     int
}

// NewMachine creates a machine with default bindings and alt as inspect modifier
func NewMachine() *Machine {
	return &Machine{
		mode:     ModeSelect,
		state:    StateIdle,
		keyTable: DefaultKeyTable(),
		modifier: tcell.ModAlt,
	}
}

// SetKeyTable replaces the active bindings
func (m *Machine) SetKeyTable(kt *KeyTable) {
	m.keyTable = kt
}

// SetModifier selects the inspect modifier
func (m *Machine) SetModifier(mod tcell.ModMask) {
	m.modifier = mod
}

// ModifierByName maps "alt", "ctrl" or "shift" to a tcell mask
func ModifierByName(name string) (tcell.ModMask, bool) {
	switch name {
	case "alt":
		return tcell.ModAlt, true
	case "ctrl":
		return tcell.ModCtrl, true
	case "shift":
		return tcell.ModShift, true
	}
	return tcell.ModNone, false
}

// SetMode updates pointer routing
// A drag already in progress runs to its release regardless of mode
func (m *Machine) SetMode(mode InputMode) {
	m.mode = mode
}

// Mode returns the current routing mode
func (m *Machine) Mode() InputMode {
	return m.mode
}

// Dragging reports a selection gesture in progress
func (m *Machine) Dragging() bool {
	return m.state == StateDragging
}

// Reset drops any gesture in progress
func (m *Machine) Reset() {
	m.state = StateIdle
}

// Process parses a tcell event into zero or more intents, in order
// A single mouse event can carry both a modifier transition and a pointer action
func (m *Machine) Process(ev tcell.Event) []Intent {
	switch ev := ev.(type) {
	case *tcell.EventResize:
		w, h := ev.Size()
		return []Intent{{Type: IntentResize, Width: w, Height: h}}
	case *tcell.EventKey:
		if intent := m.processKey(ev); intent != nil {
			return []Intent{*intent}
		}
	case *tcell.EventMouse:
		return m.processMouse(ev)
	case *tcell.EventError:
		return []Intent{{Type: IntentQuit}}
	}
	return nil
}

func (m *Machine) processKey(ev *tcell.EventKey) *Intent {
	entry, ok := m.keyTable.Lookup(ev.Key(), ev.Rune())
	if !ok || entry.Behavior == BehaviorNone {
		return nil
	}

	switch entry.Behavior {
	case BehaviorSystem:
		return &Intent{Type: entry.IntentType}
	case BehaviorAction, BehaviorMode:
		// Esc mid-drag cancels the gesture before resetting
		if entry.IntentType == IntentReset {
			m.Reset()
		}
		return &Intent{Type: entry.IntentType}
	}
	return nil
}

func (m *Machine) processMouse(ev *tcell.EventMouse) []Intent {
	var out []Intent

	held := ev.Modifiers()&m.modifier != 0
	if held != m.modHeld {
		m.modHeld = held
		if held {
			out = append(out, Intent{Type: IntentModifierDown})
		} else {
			out = append(out, Intent{Type: IntentModifierUp})
		}
	}

	x, y := ev.Position()
	pressed := ev.Buttons()&tcell.Button1 != 0

	switch m.state {
	case StateDragging:
		if pressed {
			if x != m.lastX || y != m.lastY {
				m.lastX, m.lastY = x, y
				out = append(out, m.dragIntent(IntentDragMove))
			}
			return out
		}
		m.state = StateIdle
		m.lastX, m.lastY = x, y
		return append(out, m.dragIntent(IntentDragEnd))

	case StateIdle:
		// The mode a gesture starts in decides where it goes
		inspecting := m.mode == ModeInspect || m.modHeld
		if inspecting {
			if ev.Buttons()&(tcell.WheelUp|tcell.WheelDown|tcell.WheelLeft|tcell.WheelRight) == 0 {
				out = append(out, Intent{Type: IntentHover, X: x, Y: y})
			}
			return out
		}
		if pressed {
			m.state = StateDragging
			m.anchorX, m.anchorY = x, y
			m.lastX, m.lastY = x, y
			out = append(out, Intent{Type: IntentDragStart, X: x, Y: y, AnchorX: x, AnchorY: y})
		}
	}
	return out
}

func (m *Machine) dragIntent(t IntentType) Intent {
	return Intent{Type: t, X: m.lastX, Y: m.lastY, AnchorX: m.anchorX, AnchorY: m.anchorY}
}
