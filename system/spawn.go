package system

import (
	"github.com/go-gl/mathgl/mgl64"

	"github.com/lixenwraith/void-drift/asset"
	"github.com/lixenwraith/void-drift/component"
	"github.com/lixenwraith/void-drift/core"
	"github.com/lixenwraith/void-drift/engine"
	"github.com/lixenwraith/void-drift/vmath"
)

// MovingObject is the component bundle shared by everything that flies and collides
type MovingObject struct {
	Transform    vmath.Transform
	Velocity     mgl64.Vec3
	Acceleration mgl64.Vec3
	Radius       float64
	Health       float64
	Damage       float64
	Scene        string
}

// spawnMovingObject creates an entity from b; the caller adds the tag
func spawnMovingObject(w *engine.World, b MovingObject) core.Entity {
	e := w.CreateEntity()
	c := &w.Components
	c.Transform.SetComponent(e, component.TransformComponent{Transform: b.Transform})
	c.Velocity.SetComponent(e, component.VelocityComponent{Value: b.Velocity})
	c.Acceleration.SetComponent(e, component.AccelerationComponent{Value: b.Acceleration})
	c.Collider.SetComponent(e, component.NewCollider(b.Radius))
	c.Health.SetComponent(e, component.NewHealth(b.Health))
	c.CollisionDamage.SetComponent(e, component.CollisionDamageComponent{Amount: b.Damage})
	if b.Scene != "" && w.Resources.Asset != nil {
		if scene, ok := w.Resources.Asset.Registry.Scene(b.Scene); ok {
			c.Scene.SetComponent(e, component.SceneComponent{Scene: scene})
		}
	}
	return e
}

// SpawnSpaceship creates the player ship at the configured start position
func SpawnSpaceship(w *engine.World) core.Entity {
	t := w.Resources.Config.Tuning.Spaceship
	e := spawnMovingObject(w, MovingObject{
		Transform: vmath.NewTransform(t.StartPosition()),
		Radius:    t.ColliderRadius,
		Health:    t.Health,
		Damage:    t.Damage,
		Scene:     asset.Spaceship,
	})
	w.Components.Spaceship.SetComponent(e, component.SpaceshipComponent{})
	w.PushEvent(engine.EventSpaceshipSpawned, e)
	return e
}

// SpawnMissile launches a missile from a ship transform
// Spawn point and velocity are along the negated forward axis
func SpawnMissile(w *engine.World, ship vmath.Transform) core.Entity {
	t := w.Resources.Config.Tuning.Missile
	back := ship.Forward().Mul(-1)

	tr := ship
	tr.Translation = ship.Translation.Add(back.Mul(t.SpawnOffset))

	e := spawnMovingObject(w, MovingObject{
		Transform: tr,
		Velocity:  back.Mul(t.Speed),
		Radius:    t.ColliderRadius,
		Health:    t.Health,
		Damage:    t.Damage,
		Scene:     asset.Missile,
	})
	w.Components.SpaceshipMissile.SetComponent(e, component.SpaceshipMissileComponent{})
	w.PushEvent(engine.EventMissileFired, &engine.MissileFiredPayload{Entity: e, Position: tr.Translation})
	return e
}

// SpawnAsteroid creates an asteroid with random placement from the world random source
func SpawnAsteroid(w *engine.World) core.Entity {
	tuning := w.Resources.Config.Tuning
	rng := w.Resources.Rand

	tr := vmath.NewTransform(vmath.RandomOnDisk(rng, tuning.Spawner.Radius))
	tr.Rotation = vmath.RandomOrientation(rng)

	e := spawnMovingObject(w, MovingObject{
		Transform: tr,
		Velocity:  vmath.RandomPlanarVelocity(rng, tuning.Spawner.SpeedMin, tuning.Spawner.SpeedMax),
		Radius:    tuning.Asteroid.ColliderRadius,
		Health:    tuning.Asteroid.Health,
		Damage:    tuning.Asteroid.Damage,
		Scene:     asset.Asteroid,
	})
	w.Components.Asteroid.SetComponent(e, component.AsteroidComponent{})
	w.PushEvent(engine.EventAsteroidSpawned, e)
	return e
}
