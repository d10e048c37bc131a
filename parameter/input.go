package parameter

import "time"

// Terminals report key presses and auto-repeat, never releases
const (
	// KeyHoldWindow keeps a key down after its first press until auto-repeat starts
	// Must exceed the terminal initial repeat delay, commonly 250 to 660ms
	KeyHoldWindow = 700 * time.Millisecond

	// KeyRepeatWindow keeps a key down after each repeat once repeats are flowing
	// Must exceed the repeat interval, commonly 30 to 100ms
	KeyRepeatWindow = 150 * time.Millisecond
)
