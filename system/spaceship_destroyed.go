package system

import (
	"errors"

	"github.com/lixenwraith/void-drift/engine"
)

// SpaceshipDestroyedSystem ends the run once the ship has been reaped
type SpaceshipDestroyedSystem struct {
	world *engine.World
}

// NewSpaceshipDestroyedSystem creates a new spaceship destroyed system
func NewSpaceshipDestroyedSystem(world *engine.World) engine.System {
	return &SpaceshipDestroyedSystem{world: world}
}

func (s *SpaceshipDestroyedSystem) Name() string {
	return "spaceship_destroyed"
}

// Update requests GameOver; the transition applies at the start of the next tick
func (s *SpaceshipDestroyedSystem) Update() {
	if _, err := singleSpaceship(s.world); !errors.Is(err, ErrNoSpaceship) {
		return
	}
	if state := s.world.Resources.State; state != nil {
		state.Request(engine.TriggerShipDestroyed)
	}
}
