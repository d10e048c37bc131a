package input

// Snapshot is the keyboard state for one tick
// Held keys are down for the whole tick; just-pressed keys went down since the previous snapshot
type Snapshot struct {
	held uint16
	just uint16
}

// NewSnapshot returns a snapshot with keys held but not freshly pressed
func NewSnapshot(held ...Key) Snapshot {
	var s Snapshot
	for _, k := range held {
		s.held |= 1 << k
	}
	return s
}

// Press returns a copy with k held and marked pressed this tick
func (s Snapshot) Press(k Key) Snapshot {
	s.held |= 1 << k
	s.just |= 1 << k
	return s
}

// Pressed reports whether k is down
func (s Snapshot) Pressed(k Key) bool {
	return s.held&(1<<k) != 0
}

// JustPressed reports whether k went down since the previous tick
func (s Snapshot) JustPressed(k Key) bool {
	return s.just&(1<<k) != 0
}

// Empty reports no key activity
func (s Snapshot) Empty() bool {
	return s.held == 0 && s.just == 0
}
