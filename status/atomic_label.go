package status

import "sync/atomic"

// MaxLabelLen bounds labels shown in the HUD
const MaxLabelLen = 20

// AtomicLabel is a short string published by the simulation and read by render/observer goroutines
type AtomicLabel struct {
	ptr atomic.Pointer[string]
}

// Store sets the label, truncated to MaxLabelLen bytes
func (s *AtomicLabel) Store(val string) {
	if len(val) > MaxLabelLen {
		val = val[:MaxLabelLen]
	}
	s.ptr.Store(&val)
}

// Load returns the label, empty if never stored
func (s *AtomicLabel) Load() string {
	if p := s.ptr.Load(); p != nil {
		return *p
	}
	return ""
}
