package input

import (
	"unicode"

	"github.com/gdamore/tcell/v2"
)

// KeyEntry is the binding for one terminal key
type KeyEntry struct {
	Key    Key
	Intent IntentType
}

// KeyTable maps terminal keys to game keys and intents
type KeyTable struct {
	// Special keys (Esc, Tab, Ctrl+*)
	SpecialKeys map[tcell.Key]KeyEntry

	// Rune bindings, matched case-insensitively
	Runes map[rune]KeyEntry
}

// DefaultKeyTable returns the default bindings
func DefaultKeyTable() *KeyTable {
	return &KeyTable{
		SpecialKeys: map[tcell.Key]KeyEntry{
			tcell.KeyCtrlC:  {Intent: IntentQuit},
			tcell.KeyCtrlQ:  {Intent: IntentQuit},
			tcell.KeyCtrlS:  {Intent: IntentToggleMute},
			tcell.KeyEscape: {Key: KeyEscape},
			tcell.KeyTab:    {Key: KeyTab},
		},
		Runes: map[rune]KeyEntry{
			'w': {Key: KeyW},
			'a': {Key: KeyA},
			's': {Key: KeyS},
			'r': {Key: KeyR},
			'q': {Key: KeyQ},
			'f': {Key: KeyF},
			' ': {Key: KeySpace},
		},
	}
}

// Resolve looks up the binding for a terminal key event
func (t *KeyTable) Resolve(ev *tcell.EventKey) (KeyEntry, bool) {
	if ev.Key() == tcell.KeyRune {
		entry, ok := t.Runes[unicode.ToLower(ev.Rune())]
		return entry, ok
	}
	entry, ok := t.SpecialKeys[ev.Key()]
	return entry, ok
}
