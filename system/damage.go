package system

import (
	"github.com/lixenwraith/void-drift/engine"
)

// DamageSystem applies collision damage from the hit lists built this tick
// Receivers are an explicit list of tags; untagged colliders deal damage but never take it
type DamageSystem struct {
	world *engine.World
}

// NewDamageSystem creates a new damage system
func NewDamageSystem(world *engine.World) engine.System {
	return &DamageSystem{world: world}
}

func (s *DamageSystem) Name() string {
	return "damage"
}

// Update subtracts the damage of every hit from each receiver
// Entities already at zero health still deal and receive damage
func (s *DamageSystem) Update() {
	c := &s.world.Components
	s.apply(c.Asteroid, false)
	s.apply(c.Spaceship, true)
	s.apply(c.SpaceshipMissile, false)
}

func (s *DamageSystem) apply(tag engine.QueryableStore, shieldable bool) {
	c := &s.world.Components
	receivers := s.world.Query().
		With(tag).
		With(c.Health).
		With(c.Collider).
		Execute()

	for _, e := range receivers {
		if shieldable && c.SpaceshipShield.HasEntity(e) {
			continue
		}
		col, _ := c.Collider.GetComponent(e)
		if len(col.Hits) == 0 {
			continue
		}
		health, ok := c.Health.GetComponent(e)
		if !ok {
			continue
		}
		for _, other := range col.Hits {
			if dmg, ok := c.CollisionDamage.GetComponent(other); ok {
				health.Apply(dmg.Amount)
			}
		}
		c.Health.SetComponent(e, health)
	}
}
