package component

import "github.com/lixenwraith/void-drift/core"

// ColliderComponent is a bounding sphere centered on the entity translation
// Radius is fixed at spawn; Hits is rewritten by the collision system every tick
// and only holds ids observed during the current CollisionDetection phase
type ColliderComponent struct {
	Radius float64
	Hits   []core.Entity
}

// NewCollider creates a collider with an empty hit list
func NewCollider(radius float64) ColliderComponent {
	return ColliderComponent{
		Radius: radius,
		Hits:   make([]core.Entity, 0, 4),
	}
}

// CollisionDamageComponent is the amount subtracted from every entity this one collides with
type CollisionDamageComponent struct {
	Amount float64
}
