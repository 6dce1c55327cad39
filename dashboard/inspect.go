package dashboard

// InspectController owns the inspect-mode flag
// While active, pointer input goes to hover inspection instead of the selection surface
// Presses and releases are level-triggered: only the latest one matters
type InspectController struct {
	active bool
}

// Press engages inspect mode
func (c *InspectController) Press() {
	c.active = true
}

// Release returns to selection mode
func (c *InspectController) Release() {
	c.active = false
}

// Active reports the current mode
func (c *InspectController) Active() bool {
	return c.active
}
