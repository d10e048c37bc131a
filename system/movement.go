package system

import (
	"github.com/lixenwraith/void-drift/engine"
	"github.com/lixenwraith/void-drift/physics"
)

// MovementSystem integrates kinematics with explicit Euler
// Position uses the velocity from before this tick's acceleration step
type MovementSystem struct {
	world *engine.World
}

// NewMovementSystem creates a new movement system
func NewMovementSystem(world *engine.World) engine.System {
	return &MovementSystem{world: world}
}

func (s *MovementSystem) Name() string {
	return "movement"
}

// Update advances positions, then velocities
func (s *MovementSystem) Update() {
	dt := s.world.Resources.Time.DeltaTime.Seconds()
	if dt <= 0 {
		return
	}
	c := &s.world.Components

	moving := s.world.Query().
		With(c.Velocity).
		With(c.Transform).
		Execute()
	for _, e := range moving {
		vel, _ := c.Velocity.GetComponent(e)
		tr, ok := c.Transform.GetComponent(e)
		if !ok {
			continue
		}
		tr.Translation = physics.IntegratePosition(tr.Translation, vel.Value, dt)
		c.Transform.SetComponent(e, tr)
	}

	accelerating := s.world.Query().
		With(c.Acceleration).
		With(c.Velocity).
		Execute()
	for _, e := range accelerating {
		acc, _ := c.Acceleration.GetComponent(e)
		vel, ok := c.Velocity.GetComponent(e)
		if !ok {
			continue
		}
		vel.Value = physics.IntegrateVelocity(vel.Value, acc.Value, dt)
		c.Velocity.SetComponent(e, vel)
	}
}
