package selection

import "github.com/lixenwraith/steamviz/catalog"

// Engine holds the current selection: a normalized rect or none
// Zero value has no selection. Owned and mutated by a single controller
type Engine struct {
	rect   Rect
	active bool
}

// SetSelection replaces the selection wholesale. nil, and rects that are
// degenerate after normalization, clear it
func (e *Engine) SetSelection(r *Rect) {
	if r == nil {
		e.Clear()
		return
	}
	n := r.Normalize()
	if n.Degenerate() {
		e.Clear()
		return
	}
	e.rect = n
	e.active = true
}

// Clear drops the selection
func (e *Engine) Clear() {
	e.rect = Rect{}
	e.active = false
}

// Selection returns the current rect; ok is false when nothing is selected
func (e *Engine) Selection() (Rect, bool) {
	return e.rect, e.active
}

// Active reports whether a selection is set
func (e *Engine) Active() bool {
	return e.active
}

// Matches applies the membership predicate; everything matches without a selection
func (e *Engine) Matches(g catalog.GameRecord) bool {
	return !e.active || e.rect.Contains(g)
}

// FilteredSet returns the records inside the selection in catalog order, or
// the whole catalog when nothing is selected
func (e *Engine) FilteredSet(c *catalog.Catalog) []catalog.GameRecord {
	if !e.active {
		return c.Records()
	}
	return c.Filter(e.rect.Contains)
}
