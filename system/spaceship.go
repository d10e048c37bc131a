package system

import (
	"errors"
	"log"

	"github.com/lixenwraith/void-drift/component"
	"github.com/lixenwraith/void-drift/core"
	"github.com/lixenwraith/void-drift/engine"
	"github.com/lixenwraith/void-drift/input"
)

// SpaceshipSystem turns the keyboard snapshot into ship motion, missiles and shield
// Steps run in order movement, weapon, shield so the weapon sees this tick's heading
type SpaceshipSystem struct {
	world *engine.World

	violations *violationLog
	// multiple ships logged once per occurrence
	multiReported bool
	// set when a restart applies; the Space press that restarted must not also fire
	restarted bool
}

// NewSpaceshipSystem creates a new spaceship system
func NewSpaceshipSystem(world *engine.World) engine.System {
	s := &SpaceshipSystem{
		world:      world,
		violations: newViolationLog(),
	}
	if state := world.Resources.State; state != nil {
		state.OnChange(func(_, _ engine.State, trigger engine.Trigger) {
			if trigger == engine.TriggerRestart {
				s.restarted = true
			}
		})
	}
	return s
}

func (s *SpaceshipSystem) Name() string {
	return "spaceship"
}

// Update drives the single ship; no ship or several ships skip the tick
func (s *SpaceshipSystem) Update() {
	ship, err := singleSpaceship(s.world)
	if err != nil {
		if errors.Is(err, ErrMultipleSpaceships) && !s.multiReported {
			log.Printf("spaceship: %v: %d tagged entities", err, s.world.Components.Spaceship.CountEntities())
			s.multiReported = true
		}
		return
	}
	s.multiReported = false

	snap := s.world.Resources.Input.Snapshot
	s.move(ship, snap)
	if s.restarted {
		s.restarted = false
	} else {
		s.fire(ship, snap)
	}
	s.raiseShield(ship, snap)
}

func (s *SpaceshipSystem) move(ship core.Entity, snap input.Snapshot) {
	c := &s.world.Components
	tr, ok := c.Transform.GetComponent(ship)
	if !ok {
		s.violations.report(ship, "spaceship without transform")
		return
	}
	vel, ok := c.Velocity.GetComponent(ship)
	if !ok {
		s.violations.report(ship, "spaceship without velocity")
		return
	}

	t := s.world.Resources.Config.Tuning.Spaceship
	dt := s.world.Resources.Time.DeltaTime.Seconds()

	var yaw, roll, thrust float64
	if snap.Pressed(input.KeyS) {
		yaw = -t.RotationSpeed * dt
	} else if snap.Pressed(input.KeyA) {
		yaw = t.RotationSpeed * dt
	}
	if snap.Pressed(input.KeyR) {
		thrust = -t.Speed
	} else if snap.Pressed(input.KeyW) {
		thrust = t.Speed
	}
	if snap.Pressed(input.KeyQ) {
		roll = -t.RollSpeed * dt
	} else if snap.Pressed(input.KeyF) {
		roll = t.RollSpeed * dt
	}

	tr.RotateY(yaw)
	tr.RotateLocalZ(roll)
	c.Transform.SetComponent(ship, tr)

	// Velocity is overwritten, never accumulated
	vel.Value = tr.Forward().Mul(-thrust)
	c.Velocity.SetComponent(ship, vel)
}

func (s *SpaceshipSystem) fire(ship core.Entity, snap input.Snapshot) {
	if !snap.Pressed(input.KeySpace) {
		return
	}
	tr, ok := s.world.Components.Transform.GetComponent(ship)
	if !ok {
		return
	}
	SpawnMissile(s.world, tr.Transform)
}

func (s *SpaceshipSystem) raiseShield(ship core.Entity, snap input.Snapshot) {
	if !snap.Pressed(input.KeyTab) {
		return
	}
	shields := s.world.Components.SpaceshipShield
	if shields.HasEntity(ship) {
		return
	}
	shields.SetComponent(ship, component.SpaceshipShieldComponent{})
	s.world.PushEvent(engine.EventShieldRaised, ship)
}
