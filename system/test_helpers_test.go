package system

import (
	"testing"
	"time"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/lixenwraith/void-drift/component"
	"github.com/lixenwraith/void-drift/core"
	"github.com/lixenwraith/void-drift/engine"
	"github.com/lixenwraith/void-drift/input"
	"github.com/lixenwraith/void-drift/vmath"
)

const tickDt = 100 * time.Millisecond

// sim is a registered world with the spawner effectively disabled
type sim struct {
	t     *testing.T
	w     *engine.World
	sched *engine.Schedule
	rec   *recorder
}

func newSim(t *testing.T) *sim {
	t.Helper()
	w := engine.NewTestWorld()
	w.Resources.Config.Tuning.Spawner.IntervalSeconds = 1e6
	sched := engine.NewSchedule(w)
	if err := Register(w, sched); err != nil {
		t.Fatalf("Register: %v", err)
	}
	rec := &recorder{types: []engine.EventType{
		engine.EventMissileFired,
		engine.EventShieldRaised,
		engine.EventEntityReaped,
		engine.EventAsteroidSpawned,
		engine.EventSpaceshipSpawned,
		engine.EventStateChanged,
	}}
	sched.AddHandler(rec)
	return &sim{t: t, w: w, sched: sched, rec: rec}
}

func (s *sim) tick(snap input.Snapshot) {
	s.w.Resources.Input.Snapshot = snap
	s.sched.Tick(tickDt)
}

func (s *sim) idle(n int) {
	for i := 0; i < n; i++ {
		s.tick(input.Snapshot{})
	}
}

func (s *sim) state() engine.State {
	return s.w.Resources.State.Current()
}

func (s *sim) ship() core.Entity {
	s.t.Helper()
	e, err := singleSpaceship(s.w)
	if err != nil {
		s.t.Fatalf("singleSpaceship: %v", err)
	}
	return e
}

func (s *sim) placeShip(pos mgl64.Vec3, health float64) core.Entity {
	e := s.ship()
	s.w.Components.Transform.SetComponent(e, component.TransformComponent{Transform: vmath.NewTransform(pos)})
	s.w.Components.Health.SetComponent(e, component.NewHealth(health))
	return e
}

func (s *sim) position(e core.Entity) mgl64.Vec3 {
	s.t.Helper()
	tr, ok := s.w.Components.Transform.GetComponent(e)
	if !ok {
		s.t.Fatalf("entity %d has no transform", e)
	}
	return tr.Translation
}

func (s *sim) health(e core.Entity) float64 {
	s.t.Helper()
	h, ok := s.w.Components.Health.GetComponent(e)
	if !ok {
		s.t.Fatalf("entity %d has no health", e)
	}
	return h.Value
}

// spawnBody spawns an untagged moving object
func spawnBody(w *engine.World, pos, vel mgl64.Vec3, radius, health, damage float64) core.Entity {
	return spawnMovingObject(w, MovingObject{
		Transform: vmath.NewTransform(pos),
		Velocity:  vel,
		Radius:    radius,
		Health:    health,
		Damage:    damage,
	})
}

func asteroid(w *engine.World, pos, vel mgl64.Vec3, radius, health, damage float64) core.Entity {
	e := spawnBody(w, pos, vel, radius, health, damage)
	w.Components.Asteroid.SetComponent(e, component.AsteroidComponent{})
	return e
}

func missile(w *engine.World, pos, vel mgl64.Vec3, radius, health, damage float64) core.Entity {
	e := spawnBody(w, pos, vel, radius, health, damage)
	w.Components.SpaceshipMissile.SetComponent(e, component.SpaceshipMissileComponent{})
	return e
}

type recorder struct {
	types  []engine.EventType
	events []engine.GameEvent
}

func (r *recorder) EventTypes() []engine.EventType {
	return r.types
}

func (r *recorder) HandleEvent(ev engine.GameEvent) {
	r.events = append(r.events, ev)
}

func (r *recorder) count(t engine.EventType) int {
	n := 0
	for _, ev := range r.events {
		if ev.Type == t {
			n++
		}
	}
	return n
}

func (r *recorder) reaped(e core.Entity) (*engine.EntityReapedPayload, bool) {
	for _, ev := range r.events {
		if p, ok := ev.Payload.(*engine.EntityReapedPayload); ok && p.Entity == e {
			return p, true
		}
	}
	return nil, false
}

// vecNear compares by absolute distance; ApproxEqualThreshold is relative and rejects near-zero components
func vecNear(a, b mgl64.Vec3) bool {
	return a.Sub(b).Len() < 1e-9
}
