package component

// SpaceshipComponent marks the single player entity
type SpaceshipComponent struct{}

// SpaceshipMissileComponent marks a projectile fired by the spaceship
type SpaceshipMissileComponent struct{}

// SpaceshipShieldComponent marks a spaceship as immune to collision damage
type SpaceshipShieldComponent struct{}

// AsteroidComponent marks a drifting asteroid
type AsteroidComponent struct{}
