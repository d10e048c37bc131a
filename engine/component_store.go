package engine

import "github.com/lixenwraith/void-drift/component"

// ComponentStore holds typed pointers to every component store
// Built once with the world; pointers stay valid for the world lifetime
type ComponentStore struct {
	// Kinematics
	Transform    *Store[component.TransformComponent]
	Velocity     *Store[component.VelocityComponent]
	Acceleration *Store[component.AccelerationComponent]

	// Combat
	Collider        *Store[component.ColliderComponent]
	CollisionDamage *Store[component.CollisionDamageComponent]
	Health          *Store[component.HealthComponent]

	// Tags
	Spaceship        *Store[component.SpaceshipComponent]
	SpaceshipMissile *Store[component.SpaceshipMissileComponent]
	SpaceshipShield  *Store[component.SpaceshipShieldComponent]
	Asteroid         *Store[component.AsteroidComponent]

	// Visual
	Scene *Store[component.SceneComponent]

	// Hierarchy
	Parent   *Store[component.ParentComponent]
	Children *Store[component.ChildrenComponent]
}

func newComponentStore() ComponentStore {
	return ComponentStore{
		Transform:    NewStore[component.TransformComponent](),
		Velocity:     NewStore[component.VelocityComponent](),
		Acceleration: NewStore[component.AccelerationComponent](),

		Collider:        NewStore[component.ColliderComponent](),
		CollisionDamage: NewStore[component.CollisionDamageComponent](),
		Health:          NewStore[component.HealthComponent](),

		Spaceship:        NewStore[component.SpaceshipComponent](),
		SpaceshipMissile: NewStore[component.SpaceshipMissileComponent](),
		SpaceshipShield:  NewStore[component.SpaceshipShieldComponent](),
		Asteroid:         NewStore[component.AsteroidComponent](),

		Scene: NewStore[component.SceneComponent](),

		Parent:   NewStore[component.ParentComponent](),
		Children: NewStore[component.ChildrenComponent](),
	}
}

// all lists every store for lifecycle operations
func (c *ComponentStore) all() []AnyStore {
	return []AnyStore{
		c.Transform, c.Velocity, c.Acceleration,
		c.Collider, c.CollisionDamage, c.Health,
		c.Spaceship, c.SpaceshipMissile, c.SpaceshipShield, c.Asteroid,
		c.Scene,
		c.Parent, c.Children,
	}
}
