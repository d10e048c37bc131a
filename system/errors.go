package system

import (
	"errors"
	"log"
	"sync"

	"github.com/lixenwraith/void-drift/core"
	"github.com/lixenwraith/void-drift/engine"
)

var (
	// ErrNoSpaceship is returned when no entity carries the spaceship tag
	ErrNoSpaceship = errors.New("no spaceship")
	// ErrMultipleSpaceships is returned when more than one entity carries the spaceship tag
	ErrMultipleSpaceships = errors.New("multiple spaceships")
)

// singleSpaceship returns the only spaceship entity
func singleSpaceship(w *engine.World) (core.Entity, error) {
	ships := w.Components.Spaceship.GetAllEntities()
	switch len(ships) {
	case 0:
		return 0, ErrNoSpaceship
	case 1:
		return ships[0], nil
	default:
		return 0, ErrMultipleSpaceships
	}
}

// violationLog reports a broken entity invariant once per entity
type violationLog struct {
	mu   sync.Mutex
	seen map[core.Entity]struct{}
}

func newViolationLog() *violationLog {
	return &violationLog{seen: make(map[core.Entity]struct{})}
}

// report logs msg for e the first time it is seen; returns false on repeats
func (v *violationLog) report(e core.Entity, msg string) bool {
	v.mu.Lock()
	defer v.mu.Unlock()
	if _, ok := v.seen[e]; ok {
		return false
	}
	v.seen[e] = struct{}{}
	log.Printf("invariant violation: entity %d: %s", e, msg)
	return true
}
