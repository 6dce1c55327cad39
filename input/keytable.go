package input

import (
	"maps"

	"github.com/gdamore/tcell/v2"
)

// KeyBehavior classifies how a key is processed
type KeyBehavior uint8

const (
	BehaviorNone   KeyBehavior = iota
	BehaviorSystem             // Acts regardless of mode
	BehaviorAction             // Dashboard command
	BehaviorMode               // Changes pointer routing
)

// KeyEntry describes a key's behavior without function pointers
type KeyEntry struct {
	Behavior   KeyBehavior
	IntentType IntentType
}

// KeyTable maps keys to behaviors
type KeyTable struct {
	// Special keys (Ctrl+*, arrows, Esc, Tab)
	SpecialKeys map[tcell.Key]KeyEntry

	// Printable rune bindings
	Runes map[rune]KeyEntry
}

// DefaultKeyTable returns the default key bindings
func DefaultKeyTable() *KeyTable {
	return &KeyTable{
		SpecialKeys: map[tcell.Key]KeyEntry{
			tcell.KeyCtrlC:  {BehaviorSystem, IntentQuit},
			tcell.KeyCtrlQ:  {BehaviorSystem, IntentQuit},
			tcell.KeyEscape: {BehaviorAction, IntentReset},
			tcell.KeyTab:    {BehaviorAction, IntentToggleStats},
		},
		Runes: map[rune]KeyEntry{
			'q': {BehaviorSystem, IntentQuit},
			'r': {BehaviorAction, IntentReset},
			'i': {BehaviorMode, IntentToggleInspect},
			'm': {BehaviorAction, IntentToggleMute},
			's': {BehaviorAction, IntentSnapshot},
		},
	}
}

// Clone returns a deep copy of the KeyTable with independent maps
func (kt *KeyTable) Clone() *KeyTable {
	return &KeyTable{
		SpecialKeys: cloneOrEmpty(kt.SpecialKeys),
		Runes:       cloneOrEmpty(kt.Runes),
	}
}

// Lookup resolves a key event to its binding
func (kt *KeyTable) Lookup(key tcell.Key, r rune) (KeyEntry, bool) {
	if key == tcell.KeyRune {
		entry, ok := kt.Runes[r]
		return entry, ok
	}
	entry, ok := kt.SpecialKeys[key]
	return entry, ok
}

func cloneOrEmpty[K comparable](m map[K]KeyEntry) map[K]KeyEntry {
	if m == nil {
		return make(map[K]KeyEntry)
	}
	return maps.Clone(m)
}
