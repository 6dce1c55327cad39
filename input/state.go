package input

// InputMode selects where pointer input goes
// Kept in sync by the app loop from the dashboard's inspect flag
type InputMode uint8

const (
	ModeSelect  InputMode = iota // Pointer drives the selection surface
	ModeInspect                  // Pointer drives hover inspection
)

func (m InputMode) String() string {
	if m == ModeInspect {
		return "INSPECT"
	}
	return "SELECT"
}

// InputState tracks the pointer gesture
type InputState uint8

const (
	StateIdle     InputState = iota // No button held
	StateDragging                   // Left button held since DragStart
)
