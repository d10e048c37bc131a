package system

import (
	"slices"
	"testing"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/lixenwraith/void-drift/component"
	"github.com/lixenwraith/void-drift/core"
	"github.com/lixenwraith/void-drift/engine"
	"github.com/lixenwraith/void-drift/vmath"
)

func hits(t *testing.T, w *engine.World, e core.Entity) []core.Entity {
	t.Helper()
	c, ok := w.Components.Collider.GetComponent(e)
	if !ok {
		t.Fatalf("entity %d has no collider", e)
	}
	return c.Hits
}

func TestCollisionPublishesBothWays(t *testing.T) {
	w := engine.NewTestWorld()
	a := spawnBody(w, mgl64.Vec3{0, 0, 0}, mgl64.Vec3{}, 1, 1, 0)
	b := spawnBody(w, mgl64.Vec3{1.5, 0, 0}, mgl64.Vec3{}, 1, 1, 0)
	touching := spawnBody(w, mgl64.Vec3{-2, 0, 0}, mgl64.Vec3{}, 1, 1, 0)
	far := spawnBody(w, mgl64.Vec3{50, 0, 0}, mgl64.Vec3{}, 1, 1, 0)

	NewCollisionSystem(w).Update()

	if got := hits(t, w, a); !slices.Contains(got, b) || slices.Contains(got, touching) || slices.Contains(got, a) {
		t.Errorf("a hits = %v", got)
	}
	if got := hits(t, w, b); !slices.Equal(got, []core.Entity{a}) {
		t.Errorf("b hits = %v", got)
	}
	if got := hits(t, w, touching); len(got) != 0 {
		t.Errorf("touching spheres collided: %v", got)
	}
	if got := hits(t, w, far); len(got) != 0 {
		t.Errorf("far hits = %v", got)
	}
}

func TestCollisionClearsStaleHits(t *testing.T) {
	w := engine.NewTestWorld()
	a := spawnBody(w, mgl64.Vec3{}, mgl64.Vec3{}, 1, 1, 0)
	b := spawnBody(w, mgl64.Vec3{}, mgl64.Vec3{}, 1, 1, 0)
	sys := NewCollisionSystem(w)

	sys.Update()
	if len(hits(t, w, a)) != 1 {
		t.Fatal("no initial hit")
	}

	w.Components.Transform.SetComponent(b, component.TransformComponent{Transform: vmath.NewTransform(mgl64.Vec3{10, 0, 0})})
	sys.Update()
	if len(hits(t, w, a)) != 0 || len(hits(t, w, b)) != 0 {
		t.Error("hits survived a tick without overlap")
	}
}

func TestCollisionSkipsColliderWithoutTransform(t *testing.T) {
	w := engine.NewTestWorld()
	a := spawnBody(w, mgl64.Vec3{}, mgl64.Vec3{}, 1, 1, 0)
	ghost := w.CreateEntity()
	w.Components.Collider.SetComponent(ghost, component.ColliderComponent{Radius: 5, Hits: []core.Entity{a}})

	NewCollisionSystem(w).Update()
	if len(hits(t, w, ghost)) != 0 || len(hits(t, w, a)) != 0 {
		t.Error("collider without transform took part in collision")
	}
}

func TestDamageIsOrderIndependent(t *testing.T) {
	run := func(reverse bool) (float64, float64) {
		w := engine.NewTestWorld()
		var a, b core.Entity
		if reverse {
			b = asteroid(w, mgl64.Vec3{}, mgl64.Vec3{}, 1, 20, 7)
			a = asteroid(w, mgl64.Vec3{}, mgl64.Vec3{}, 1, 20, 3)
		} else {
			a = asteroid(w, mgl64.Vec3{}, mgl64.Vec3{}, 1, 20, 3)
			b = asteroid(w, mgl64.Vec3{}, mgl64.Vec3{}, 1, 20, 7)
		}
		NewCollisionSystem(w).Update()
		NewDamageSystem(w).Update()
		ha, _ := w.Components.Health.GetComponent(a)
		hb, _ := w.Components.Health.GetComponent(b)
		return ha.Value, hb.Value
	}

	for _, reverse := range []bool{false, true} {
		ha, hb := run(reverse)
		if ha != 13 || hb != 17 {
			t.Errorf("reverse=%v: health a=%v b=%v, want 13 17", reverse, ha, hb)
		}
	}
}

func TestDamageReceivers(t *testing.T) {
	w := engine.NewTestWorld()
	source := spawnBody(w, mgl64.Vec3{}, mgl64.Vec3{}, 1, 10, 2)
	rock := asteroid(w, mgl64.Vec3{}, mgl64.Vec3{}, 1, 10, 0)
	shot := missile(w, mgl64.Vec3{}, mgl64.Vec3{}, 1, 10, 0)
	ship := spawnBody(w, mgl64.Vec3{}, mgl64.Vec3{}, 1, 10, 0)
	w.Components.Spaceship.SetComponent(ship, component.SpaceshipComponent{})

	NewCollisionSystem(w).Update()
	NewDamageSystem(w).Update()

	tests := []struct {
		name   string
		entity core.Entity
		want   float64
	}{
		{"untagged is not a receiver", source, 10},
		{"asteroid", rock, 8},
		{"missile", shot, 8},
		{"spaceship", ship, 8},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, _ := w.Components.Health.GetComponent(tt.entity)
			if h.Value != tt.want {
				t.Errorf("health = %v, want %v", h.Value, tt.want)
			}
		})
	}
}
