package system

import (
	"errors"
	"fmt"

	"github.com/lixenwraith/void-drift/engine"
)

// Register places every gameplay system in its phase, binds the run-state hooks,
// starts the run state and spawns the first ship
// Within CollisionDetection the collision pass is registered before damage
func Register(w *engine.World, sched *engine.Schedule) error {
	sched.AddSystem(engine.PhaseStateInput, NewStateInputSystem(w))
	sched.AddSystem(engine.PhaseUserInput, NewSpaceshipSystem(w))
	sched.AddSystem(engine.PhaseEntityUpdates, NewSpaceshipDestroyedSystem(w))
	sched.AddSystem(engine.PhaseEntityUpdates, NewAsteroidSpawnerSystem(w))
	sched.AddSystem(engine.PhaseDespawnEntities, NewDespawnSystem(w))
	sched.AddSystem(engine.PhaseCollisionDetection, NewCollisionSystem(w))
	sched.AddSystem(engine.PhaseCollisionDetection, NewDamageSystem(w))
	sched.AddSystem(engine.PhaseIntegration, NewMovementSystem(w))
	sched.AddSystem(engine.PhaseTelemetry, NewStatusSystem(w))

	state := w.Resources.State
	if state == nil {
		return errors.New("register systems: world has no run state")
	}
	state.RegisterAction(engine.ActionWipeHealth, WipeHealth)
	state.RegisterAction(engine.ActionSpawnSpaceship, func(w *engine.World) {
		SpawnSpaceship(w)
	})
	if err := state.Start(); err != nil {
		return fmt.Errorf("register systems: %w", err)
	}

	SpawnSpaceship(w)
	return nil
}
