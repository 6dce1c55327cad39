package render

import (
	"github.com/lixenwraith/steamviz/dashboard"
	"github.com/lixenwraith/steamviz/status"
)

// Point is a screen cell
type Point struct {
	X, Y int
}

// DragSpan is a selection gesture in progress, in surface cells
type DragSpan struct {
	AnchorX, AnchorY int
	X, Y             int
}

// RenderContext provides frame state for renderers, passed by value
type RenderContext struct {
	View   dashboard.View
	Layout Layout

	// Hover is the pointer cell while inspecting, nil otherwise
	Hover *Point
	// Drag is the live gesture outline, nil when not dragging
	Drag *DragSpan

	AudioAvailable bool
	Muted          bool
	ShowStats      bool
	Message        string

	Metrics *status.Registry
}

// Inspecting reports inspect mode with a known pointer position
func (ctx RenderContext) Inspecting() bool {
	return ctx.View.Inspect && ctx.Hover != nil
}
