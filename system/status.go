package system

import (
	"sync/atomic"

	"github.com/lixenwraith/void-drift/engine"
	"github.com/lixenwraith/void-drift/status"
)

// StatusSystem publishes HUD metrics and keeps the asteroid score
type StatusSystem struct {
	world *engine.World

	statHealth    *status.AtomicFloat
	statShield    *atomic.Bool
	statAlive     *atomic.Bool
	statAsteroids *atomic.Int64
	statMissiles  *atomic.Int64
	statScore     *atomic.Int64
}

// NewStatusSystem creates a new status system
func NewStatusSystem(world *engine.World) engine.System {
	reg := world.Resources.Status
	return &StatusSystem{
		world:         world,
		statHealth:    reg.Floats.Get(status.KeyShipHealth),
		statShield:    reg.Bools.Get(status.KeyShipShield),
		statAlive:     reg.Bools.Get(status.KeyShipAlive),
		statAsteroids: reg.Ints.Get(status.KeyAsteroids),
		statMissiles:  reg.Ints.Get(status.KeyMissiles),
		statScore:     reg.Ints.Get(status.KeyAsteroidsShot),
	}
}

func (s *StatusSystem) Name() string {
	return "status"
}

// Update samples the world after integration
func (s *StatusSystem) Update() {
	c := &s.world.Components
	s.statAsteroids.Store(int64(c.Asteroid.CountEntities()))
	s.statMissiles.Store(int64(c.SpaceshipMissile.CountEntities()))

	ship, err := singleSpaceship(s.world)
	if err != nil {
		s.statAlive.Store(false)
		s.statShield.Store(false)
		s.statHealth.Set(0)
		return
	}
	s.statAlive.Store(true)
	s.statShield.Store(c.SpaceshipShield.HasEntity(ship))
	if h, ok := c.Health.GetComponent(ship); ok {
		s.statHealth.Set(h.Value)
	}
}

// EventTypes returns the event types StatusSystem handles
func (s *StatusSystem) EventTypes() []engine.EventType {
	return []engine.EventType{
		engine.EventEntityReaped,
		engine.EventStateChanged,
	}
}

// HandleEvent counts shot asteroids and resets the score on restart
func (s *StatusSystem) HandleEvent(ev engine.GameEvent) {
	switch ev.Type {
	case engine.EventEntityReaped:
		if p, ok := ev.Payload.(*engine.EntityReapedPayload); ok && p.Kind == engine.KindAsteroid && p.Reason == engine.ReapHealth {
			s.statScore.Add(1)
		}
	case engine.EventStateChanged:
		if p, ok := ev.Payload.(*engine.StateChangedPayload); ok && p.Trigger == engine.TriggerRestart {
			s.statScore.Store(0)
		}
	}
}
