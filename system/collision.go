package system

import (
	"github.com/go-gl/mathgl/mgl64"

	"github.com/lixenwraith/void-drift/component"
	"github.com/lixenwraith/void-drift/core"
	"github.com/lixenwraith/void-drift/engine"
	"github.com/lixenwraith/void-drift/physics"
)

// CollisionSystem rebuilds every collider's hit list from a pairwise sphere test
// No broad phase: every unordered pair is tested each tick
type CollisionSystem struct {
	world *engine.World

	violations *violationLog
	bodies     []body
}

type body struct {
	entity   core.Entity
	position mgl64.Vec3
	collider component.ColliderComponent
}

// NewCollisionSystem creates a new collision system
func NewCollisionSystem(world *engine.World) engine.System {
	return &CollisionSystem{
		world:      world,
		violations: newViolationLog(),
		bodies:     make([]body, 0, 64),
	}
}

func (s *CollisionSystem) Name() string {
	return "collision"
}

// Update clears hits, then publishes each overlapping pair to both sides
func (s *CollisionSystem) Update() {
	c := &s.world.Components
	s.bodies = s.bodies[:0]

	for _, e := range c.Collider.GetAllEntities() {
		col, _ := c.Collider.GetComponent(e)
		col.Hits = col.Hits[:0]

		tr, ok := c.Transform.GetComponent(e)
		if !ok {
			c.Collider.SetComponent(e, col)
			s.violations.report(e, "collider without transform")
			continue
		}
		s.bodies = append(s.bodies, body{entity: e, position: tr.Translation, collider: col})
	}

	for i := 0; i < len(s.bodies); i++ {
		a := &s.bodies[i]
		for j := i + 1; j < len(s.bodies); j++ {
			b := &s.bodies[j]
			if !physics.SpheresOverlap(a.position, a.collider.Radius, b.position, b.collider.Radius) {
				continue
			}
			a.collider.Hits = append(a.collider.Hits, b.entity)
			b.collider.Hits = append(b.collider.Hits, a.entity)
		}
	}

	for i := range s.bodies {
		c.Collider.SetComponent(s.bodies[i].entity, s.bodies[i].collider)
	}
}
