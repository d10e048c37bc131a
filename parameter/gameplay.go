package parameter

// Spaceship
const (
	SpaceshipStartX = 0.0
	SpaceshipStartY = 0.0
	SpaceshipStartZ = -20.0

	// SpaceshipSpeed is linear thrust in units/s
	SpaceshipSpeed = 25.0
	// SpaceshipRotationSpeed is yaw rate in rad/s
	SpaceshipRotationSpeed = 2.5
	// SpaceshipRollSpeed is roll rate in rad/s
	SpaceshipRollSpeed = 2.5

	SpaceshipColliderRadius = 7.5
	SpaceshipHealth         = 10.0
	SpaceshipDamage         = 5.0
)

// Missile
const (
	MissileSpeed              = 50.0
	MissileForwardSpawnOffset = 10.0
	MissileColliderRadius     = 0.5
	MissileHealth             = 1.0
	MissileDamage             = 1.0
)

// Asteroid
const (
	AsteroidColliderRadius = 2.5
	AsteroidHealth         = 80.0
	AsteroidDamage         = 35.0
)

// Asteroid spawner
const (
	// SpawnIntervalSeconds is the spawner timer period
	SpawnIntervalSeconds = 1.0
	// SpawnRadius is the radius of the XZ disk asteroids appear on
	SpawnRadius = 50.0
	AsteroidSpeedMin = 5.0
	AsteroidSpeedMax = 15.0
)

// DespawnDistance is the distance from origin past which non-ship entities are reaped
const DespawnDistance = 100.0
