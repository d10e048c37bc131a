package engine

import (
	"sync"

	"github.com/lixenwraith/void-drift/component"
	"github.com/lixenwraith/void-drift/core"
	"github.com/lixenwraith/void-drift/status"
)

// World contains all entities and their components using typed stores
type World struct {
	mu           sync.RWMutex
	nextEntityID core.Entity
	alive        map[core.Entity]struct{}

	Components ComponentStore
	Resources  Resource

	stores []AnyStore
}

// NewWorld creates a world with empty stores and the core resources
// Config, Input, Asset, Rand and State are attached by the caller
func NewWorld() *World {
	w := &World{
		nextEntityID: 1,
		alive:        make(map[core.Entity]struct{}),
		Components:   newComponentStore(),
	}
	w.stores = w.Components.all()
	w.Resources = Resource{
		Time:   &TimeResource{},
		Status: status.NewRegistry(),
		Event:  &EventQueueResource{Queue: NewEventQueue()},
	}
	return w
}

// CreateEntity reserves a new entity ID
func (w *World) CreateEntity() core.Entity {
	w.mu.Lock()
	defer w.mu.Unlock()

	id := w.nextEntityID
	w.nextEntityID++
	w.alive[id] = struct{}{}
	return id
}

// IsAlive reports whether e was created and not yet destroyed
func (w *World) IsAlive(e core.Entity) bool {
	w.mu.RLock()
	defer w.mu.RUnlock()
	_, ok := w.alive[e]
	return ok
}

// EntityCount returns the number of live entities
func (w *World) EntityCount() int {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return len(w.alive)
}

// DestroyEntity removes e and all its components
// Children are orphaned, not destroyed; use DespawnRecursive for subtrees
func (w *World) DestroyEntity(e core.Entity) {
	w.mu.Lock()
	if _, ok := w.alive[e]; !ok {
		w.mu.Unlock()
		return
	}
	delete(w.alive, e)
	w.mu.Unlock()

	if parent, ok := w.Components.Parent.GetComponent(e); ok {
		w.detachChild(parent.Entity, e)
	}
	for _, s := range w.stores {
		s.RemoveEntity(e)
	}
}

// DespawnRecursive removes e and every descendant, children first
func (w *World) DespawnRecursive(e core.Entity) {
	if children, ok := w.Components.Children.GetComponent(e); ok {
		// Each child detaches itself from the list as it goes
		pending := append([]core.Entity(nil), children.Entities...)
		for _, child := range pending {
			w.DespawnRecursive(child)
		}
	}
	w.DestroyEntity(e)
}

// AddChild links child under parent so it is reaped with it
func (w *World) AddChild(parent, child core.Entity) {
	children, _ := w.Components.Children.GetComponent(parent)
	children.Entities = append(children.Entities, child)
	w.Components.Children.SetComponent(parent, children)
	w.Components.Parent.SetComponent(child, component.ParentComponent{Entity: parent})
}

func (w *World) detachChild(parent, child core.Entity) {
	children, ok := w.Components.Children.GetComponent(parent)
	if !ok {
		return
	}
	kept := children.Entities[:0]
	for _, c := range children.Entities {
		if c != child {
			kept = append(kept, c)
		}
	}
	children.Entities = kept
	w.Components.Children.SetComponent(parent, children)
}

// Clear removes all entities and components
func (w *World) Clear() {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.nextEntityID = 1
	w.alive = make(map[core.Entity]struct{})
	for _, s := range w.stores {
		s.ClearAllComponents()
	}
}

// PushEvent emits a game event stamped with the current frame
func (w *World) PushEvent(eventType EventType, payload any) {
	if w.Resources.Event == nil || w.Resources.Event.Queue == nil {
		return
	}
	var frame int64
	if w.Resources.Time != nil {
		frame = w.Resources.Time.FrameNumber
	}
	w.Resources.Event.Queue.Push(GameEvent{
		Type:    eventType,
		Payload: payload,
		Frame:   frame,
	})
}
