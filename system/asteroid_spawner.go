package system

import (
	"time"

	"github.com/lixenwraith/void-drift/engine"
)

// AsteroidSpawnerSystem drops one asteroid per elapsed spawn interval
type AsteroidSpawnerSystem struct {
	world *engine.World

	elapsed time.Duration
}

// NewAsteroidSpawnerSystem creates a new asteroid spawner system
func NewAsteroidSpawnerSystem(world *engine.World) engine.System {
	return &AsteroidSpawnerSystem{world: world}
}

func (s *AsteroidSpawnerSystem) Name() string {
	return "asteroid_spawner"
}

// Update advances the repeating timer by this tick's delta
func (s *AsteroidSpawnerSystem) Update() {
	interval := s.interval()
	if interval <= 0 {
		return
	}
	s.elapsed += s.world.Resources.Time.DeltaTime
	for s.elapsed >= interval {
		s.elapsed -= interval
		SpawnAsteroid(s.world)
	}
}

func (s *AsteroidSpawnerSystem) interval() time.Duration {
	return time.Duration(s.world.Resources.Config.Tuning.Spawner.IntervalSeconds * float64(time.Second))
}
