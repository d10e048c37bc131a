package input

// Key is a game key tracked by the keyboard snapshot
type Key uint8

const (
	KeyNone Key = iota
	KeyW
	KeyA
	KeyS
	KeyR
	KeyQ
	KeyF
	KeySpace
	KeyTab
	KeyEscape
	keyCount
)

var keyNames = [keyCount]string{
	KeyNone:   "None",
	KeyW:      "W",
	KeyA:      "A",
	KeyS:      "S",
	KeyR:      "R",
	KeyQ:      "Q",
	KeyF:      "F",
	KeySpace:  "Space",
	KeyTab:    "Tab",
	KeyEscape: "Esc",
}

func (k Key) String() string {
	if k >= keyCount {
		return "Unknown"
	}
	return keyNames[k]
}

// IntentType is an application-level command that bypasses the simulation
type IntentType uint8

const (
	IntentNone IntentType = iota
	IntentQuit
	IntentToggleMute
)
