package engine

// System is one unit of per-tick logic placed in a schedule phase
type System interface {
	// Name returns a short identifier used in logs
	Name() string

	// Update runs once per tick when the phase is enabled
	Update()
}
