package component

// HealthComponent is a hit-point pool decreased by collision damage
// No healing and no cap; the reaper decides when a depleted entity is removed
type HealthComponent struct {
	Value float64
}

// NewHealth returns a pool holding hp
func NewHealth(hp float64) HealthComponent {
	return HealthComponent{Value: hp}
}

// Apply subtracts dmg from the pool
func (h *HealthComponent) Apply(dmg float64) {
	h.Value -= dmg
}

// Dead reports a depleted pool
func (h HealthComponent) Dead() bool {
	return h.Value <= 0
}
