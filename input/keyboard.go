package input

import (
	"sync"
	"time"

	"github.com/gdamore/tcell/v2"
)

// Keyboard turns terminal key presses into per-tick snapshots
// Terminals deliver presses and auto-repeats but no releases, so a key counts as held
// until its window passes without a repeat. The first press gets holdWindow to bridge
// the initial repeat delay; once repeats arrive the shorter repeatWindow applies.
type Keyboard struct {
	mu           sync.Mutex
	table        *KeyTable
	holdWindow   time.Duration
	repeatWindow time.Duration

	lastPress [keyCount]time.Time
	repeating uint16 // keys that received at least one repeat
	pending   uint16 // presses since the last snapshot
}

// NewKeyboard creates a keyboard using table and the two hold windows
// A repeatWindow outside (0, holdWindow] falls back to holdWindow
func NewKeyboard(table *KeyTable, holdWindow, repeatWindow time.Duration) *Keyboard {
	if table == nil {
		table = DefaultKeyTable()
	}
	if repeatWindow <= 0 || repeatWindow > holdWindow {
		repeatWindow = holdWindow
	}
	return &Keyboard{
		table:        table,
		holdWindow:   holdWindow,
		repeatWindow: repeatWindow,
	}
}

// HandleEvent records a terminal key event and returns its application intent
// Safe to call from the terminal polling goroutine
func (k *Keyboard) HandleEvent(ev *tcell.EventKey) IntentType {
	entry, ok := k.table.Resolve(ev)
	if !ok {
		return IntentNone
	}
	if entry.Key != KeyNone {
		k.Press(entry.Key, ev.When())
	}
	return entry.Intent
}

// Press records key going down (or repeating) at the given time
func (k *Keyboard) Press(key Key, at time.Time) {
	if key == KeyNone || key >= keyCount {
		return
	}
	k.mu.Lock()
	defer k.mu.Unlock()

	// Auto-repeat of a held key is not a fresh press
	if k.heldAt(key, at) {
		k.repeating |= 1 << key
	} else {
		k.pending |= 1 << key
		k.repeating &^= 1 << key
	}
	k.lastPress[key] = at
}

// Snapshot returns the state at now and clears the just-pressed set
func (k *Keyboard) Snapshot(now time.Time) Snapshot {
	k.mu.Lock()
	defer k.mu.Unlock()

	var s Snapshot
	for key := KeyW; key < keyCount; key++ {
		if k.heldAt(key, now) {
			s.held |= 1 << key
		}
	}
	s.just = k.pending
	s.held |= k.pending
	k.pending = 0
	return s
}

// Reset forgets all key state
func (k *Keyboard) Reset() {
	k.mu.Lock()
	defer k.mu.Unlock()
	k.lastPress = [keyCount]time.Time{}
	k.repeating = 0
	k.pending = 0
}

func (k *Keyboard) heldAt(key Key, now time.Time) bool {
	last := k.lastPress[key]
	if last.IsZero() {
		return false
	}
	window := k.holdWindow
	if k.repeating&(1<<key) != 0 {
		window = k.repeatWindow
	}
	return now.Sub(last) <= window
}
