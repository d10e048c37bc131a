package input

import (
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/void-drift/parameter"
)

func TestSnapshotBuilders(t *testing.T) {
	s := NewSnapshot(KeyW, KeyA).Press(KeyEscape)
	if !s.Pressed(KeyW) || !s.Pressed(KeyA) || !s.Pressed(KeyEscape) {
		t.Error("held keys missing")
	}
	if s.JustPressed(KeyW) {
		t.Error("W should be held, not just pressed")
	}
	if !s.JustPressed(KeyEscape) {
		t.Error("Esc should be just pressed")
	}
	if s.Pressed(KeySpace) {
		t.Error("Space not pressed")
	}
	if !(Snapshot{}).Empty() || s.Empty() {
		t.Error("Empty mismatch")
	}
}

func TestKeyboardHoldWindow(t *testing.T) {
	kb := NewKeyboard(nil, 100*time.Millisecond, 100*time.Millisecond)
	t0 := time.Unix(1000, 0)

	kb.Press(KeyW, t0)

	s := kb.Snapshot(t0.Add(10 * time.Millisecond))
	if !s.Pressed(KeyW) || !s.JustPressed(KeyW) {
		t.Fatalf("first snapshot: held=%v just=%v", s.Pressed(KeyW), s.JustPressed(KeyW))
	}

	s = kb.Snapshot(t0.Add(50 * time.Millisecond))
	if !s.Pressed(KeyW) {
		t.Error("W should still be held inside the window")
	}
	if s.JustPressed(KeyW) {
		t.Error("just-pressed must clear after one snapshot")
	}

	s = kb.Snapshot(t0.Add(200 * time.Millisecond))
	if s.Pressed(KeyW) {
		t.Error("W should be released after the window")
	}
}

func TestKeyboardRepeatIsNotFreshPress(t *testing.T) {
	kb := NewKeyboard(nil, 100*time.Millisecond, 100*time.Millisecond)
	t0 := time.Unix(1000, 0)

	kb.Press(KeySpace, t0)
	kb.Snapshot(t0)

	kb.Press(KeySpace, t0.Add(30*time.Millisecond))
	s := kb.Snapshot(t0.Add(40 * time.Millisecond))
	if !s.Pressed(KeySpace) {
		t.Error("repeat should keep Space held")
	}
	if s.JustPressed(KeySpace) {
		t.Error("repeat inside the window is not a fresh press")
	}

	kb.Press(KeySpace, t0.Add(time.Second))
	s = kb.Snapshot(t0.Add(time.Second))
	if !s.JustPressed(KeySpace) {
		t.Error("press after release should be fresh")
	}
}

func TestKeyboardFirstRepeatAfterDelayIsHeld(t *testing.T) {
	kb := NewKeyboard(nil, parameter.KeyHoldWindow, parameter.KeyRepeatWindow)
	t0 := time.Unix(1000, 0)

	kb.Press(KeyEscape, t0)
	s := kb.Snapshot(t0)
	if !s.JustPressed(KeyEscape) {
		t.Fatal("initial press not fresh")
	}

	// No repeat has arrived yet; the terminal is still in its initial delay
	s = kb.Snapshot(t0.Add(200 * time.Millisecond))
	if !s.Pressed(KeyEscape) {
		t.Error("Esc released during the initial repeat delay")
	}

	kb.Press(KeyEscape, t0.Add(250*time.Millisecond))
	s = kb.Snapshot(t0.Add(260 * time.Millisecond))
	if !s.Pressed(KeyEscape) {
		t.Error("Esc not held after first repeat")
	}
	if s.JustPressed(KeyEscape) {
		t.Error("first auto-repeat counted as a fresh press")
	}

	// A slow terminal repeating after 600ms is still a hold
	kb.Reset()
	kb.Press(KeyEscape, t0)
	kb.Snapshot(t0)
	kb.Press(KeyEscape, t0.Add(600*time.Millisecond))
	if s := kb.Snapshot(t0.Add(600 * time.Millisecond)); s.JustPressed(KeyEscape) {
		t.Error("600ms repeat counted as a fresh press")
	}
}

func TestKeyboardReleaseAfterRepeatsUsesRepeatWindow(t *testing.T) {
	kb := NewKeyboard(nil, 700*time.Millisecond, 150*time.Millisecond)
	t0 := time.Unix(1000, 0)

	kb.Press(KeyW, t0)
	for at := 400 * time.Millisecond; at <= 600*time.Millisecond; at += 50 * time.Millisecond {
		kb.Press(KeyW, t0.Add(at))
	}
	kb.Snapshot(t0.Add(600 * time.Millisecond))

	if s := kb.Snapshot(t0.Add(700 * time.Millisecond)); !s.Pressed(KeyW) {
		t.Error("W released inside the repeat window")
	}
	if s := kb.Snapshot(t0.Add(800 * time.Millisecond)); s.Pressed(KeyW) {
		t.Error("W still held after repeats stopped")
	}

	// The next press starts over with the long window
	kb.Press(KeyW, t0.Add(time.Second))
	s := kb.Snapshot(t0.Add(time.Second))
	if !s.JustPressed(KeyW) {
		t.Error("press after release should be fresh")
	}
	if s := kb.Snapshot(t0.Add(time.Second + 500*time.Millisecond)); !s.Pressed(KeyW) {
		t.Error("new press did not get the initial hold window")
	}
}

func TestNewKeyboardClampsRepeatWindow(t *testing.T) {
	kb := NewKeyboard(nil, 100*time.Millisecond, time.Second)
	if kb.repeatWindow != 100*time.Millisecond {
		t.Errorf("repeat window = %v, want clamp to hold window", kb.repeatWindow)
	}
	kb = NewKeyboard(nil, 100*time.Millisecond, 0)
	if kb.repeatWindow != 100*time.Millisecond {
		t.Errorf("repeat window = %v, want hold window fallback", kb.repeatWindow)
	}
}

func TestKeyboardShortTapSurvivesSnapshot(t *testing.T) {
	kb := NewKeyboard(nil, 0, 0)
	t0 := time.Unix(1000, 0)

	kb.Press(KeyEscape, t0)
	s := kb.Snapshot(t0.Add(time.Second))
	if !s.JustPressed(KeyEscape) || !s.Pressed(KeyEscape) {
		t.Error("tap between snapshots must be visible once")
	}
	s = kb.Snapshot(t0.Add(2 * time.Second))
	if s.Pressed(KeyEscape) || s.JustPressed(KeyEscape) {
		t.Error("tap must not be seen twice")
	}
}

func TestKeyboardHandleEvent(t *testing.T) {
	kb := NewKeyboard(DefaultKeyTable(), time.Second, time.Second)

	tests := []struct {
		name   string
		ev     *tcell.EventKey
		key    Key
		intent IntentType
	}{
		{"lower w", tcell.NewEventKey(tcell.KeyRune, 'w', tcell.ModNone), KeyW, IntentNone},
		{"upper S", tcell.NewEventKey(tcell.KeyRune, 'S', tcell.ModNone), KeyS, IntentNone},
		{"space", tcell.NewEventKey(tcell.KeyRune, ' ', tcell.ModNone), KeySpace, IntentNone},
		{"tab", tcell.NewEventKey(tcell.KeyTab, 0, tcell.ModNone), KeyTab, IntentNone},
		{"esc", tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone), KeyEscape, IntentNone},
		{"ctrl c", tcell.NewEventKey(tcell.KeyCtrlC, 0, tcell.ModCtrl), KeyNone, IntentQuit},
		{"ctrl q", tcell.NewEventKey(tcell.KeyCtrlQ, 0, tcell.ModCtrl), KeyNone, IntentQuit},
		{"unbound", tcell.NewEventKey(tcell.KeyRune, 'z', tcell.ModNone), KeyNone, IntentNone},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			kb.Reset()
			intent := kb.HandleEvent(tt.ev)
			if intent != tt.intent {
				t.Errorf("intent = %v, want %v", intent, tt.intent)
			}
			s := kb.Snapshot(tt.ev.When())
			if tt.key != KeyNone && !s.JustPressed(tt.key) {
				t.Errorf("%v not recorded", tt.key)
			}
			if tt.key == KeyNone && !s.Empty() {
				t.Error("unexpected key recorded")
			}
		})
	}
}

func TestKeyString(t *testing.T) {
	if KeySpace.String() != "Space" || Key(200).String() != "Unknown" {
		t.Error("String mismatch")
	}
}
