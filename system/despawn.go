package system

import (
	"sync/atomic"

	"github.com/lixenwraith/void-drift/core"
	"github.com/lixenwraith/void-drift/engine"
	"github.com/lixenwraith/void-drift/status"
	"github.com/lixenwraith/void-drift/vmath"
)

// DespawnSystem reaps entities that left the play volume or ran out of health
type DespawnSystem struct {
	world *engine.World

	statReaped *atomic.Int64
}

// NewDespawnSystem creates a new despawn system
func NewDespawnSystem(world *engine.World) engine.System {
	return &DespawnSystem{
		world:      world,
		statReaped: world.Resources.Status.Ints.Get(status.KeyReaped),
	}
}

func (s *DespawnSystem) Name() string {
	return "despawn"
}

// Update runs the distance reap, then the health reap
func (s *DespawnSystem) Update() {
	c := &s.world.Components
	limit := s.world.Resources.Config.Tuning.Despawn.Distance
	limitSq := limit * limit

	// The ship is exempt so flying out of bounds never ends the run
	far := s.world.Query().
		With(c.Transform).
		Without(c.Spaceship).
		Execute()
	for _, e := range far {
		tr, _ := c.Transform.GetComponent(e)
		if vmath.LengthSq(tr.Translation) > limitSq {
			s.statReaped.Add(reap(s.world, e, engine.ReapDistance))
		}
	}

	for _, e := range c.Health.GetAllEntities() {
		health, ok := c.Health.GetComponent(e)
		if ok && health.Dead() {
			s.statReaped.Add(reap(s.world, e, engine.ReapHealth))
		}
	}
}

// WipeHealth removes every entity carrying health
// Registered as the run-state hook on entering and leaving GameOver
func WipeHealth(w *engine.World) {
	var n int64
	for _, e := range w.Components.Health.GetAllEntities() {
		n += reap(w, e, engine.ReapWipe)
	}
	w.Resources.Status.Ints.Get(status.KeyReaped).Add(n)
}

// reap despawns e with its children and announces it; returns 1 if e was alive
func reap(w *engine.World, e core.Entity, reason engine.ReapReason) int64 {
	if !w.IsAlive(e) {
		return 0
	}
	kind := w.KindOf(e)
	w.DespawnRecursive(e)
	w.PushEvent(engine.EventEntityReaped, &engine.EntityReapedPayload{
		Entity: e,
		Kind:   kind,
		Reason: reason,
	})
	return 1
}
