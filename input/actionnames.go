package input

import "slices"

// actionRegistry maps canonical action names to KeyEntry structs
// Used by the keymap loader to resolve configured action strings to bindings
var actionRegistry = map[string]KeyEntry{
	// Unbind sentinel
	"none": {},

	"quit":           {BehaviorSystem, IntentQuit},
	"reset":          {BehaviorAction, IntentReset},
	"toggle_inspect": {BehaviorMode, IntentToggleInspect},
	"toggle_mute":    {BehaviorAction, IntentToggleMute},
	"snapshot":       {BehaviorAction, IntentSnapshot},
	"toggle_stats":   {BehaviorAction, IntentToggleStats},
}

// ActionEntry resolves a canonical action name to its KeyEntry
// Returns zero KeyEntry and false if name is unknown
func ActionEntry(name string) (KeyEntry, bool) {
	entry, ok := actionRegistry[name]
	return entry, ok
}

// IsActionName returns true if name is a registered action
func IsActionName(name string) bool {
	_, ok := actionRegistry[name]
	return ok
}

// ActionNames returns all registered action names, sorted
func ActionNames() []string {
	names := make([]string, 0, len(actionRegistry))
	for name := range actionRegistry {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}
