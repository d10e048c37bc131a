package engine

import (
	"slices"
	"sort"

	"github.com/lixenwraith/void-drift/core"
)

// QueryBuilder finds entities by component intersection and exclusion
// Starts from the smallest included store and filters through the rest
type QueryBuilder struct {
	world    *World
	with     []QueryableStore
	without  []AnyStore
	executed bool
	results  []core.Entity
}

// Query creates a query builder
//
//	ships := w.Query().
//	    With(w.Components.Transform).
//	    With(w.Components.Velocity).
//	    Without(w.Components.Spaceship).
//	    Execute()
func (w *World) Query() *QueryBuilder {
	return &QueryBuilder{
		world: w,
		with:  make([]QueryableStore, 0, 4),
	}
}

// With requires the component of store
// Panics if called after Execute
func (qb *QueryBuilder) With(store QueryableStore) *QueryBuilder {
	if qb.executed {
		panic("query already executed - cannot modify after Execute()")
	}
	qb.with = append(qb.with, store)
	return qb
}

// Without excludes entities holding the component of store
// Panics if called after Execute
func (qb *QueryBuilder) Without(store AnyStore) *QueryBuilder {
	if qb.executed {
		panic("query already executed - cannot modify after Execute()")
	}
	qb.without = append(qb.without, store)
	return qb
}

// Execute returns matching entities in ascending id order
// Repeated calls return the cached result
func (qb *QueryBuilder) Execute() []core.Entity {
	if qb.executed {
		return qb.results
	}
	qb.executed = true

	if len(qb.with) == 0 {
		qb.results = make([]core.Entity, 0)
		return qb.results
	}

	sort.Slice(qb.with, func(i, j int) bool {
		return qb.with[i].CountEntities() < qb.with[j].CountEntities()
	})

	candidates := qb.with[0].GetAllEntities()
	for i := 1; i < len(qb.with) && len(candidates) > 0; i++ {
		store := qb.with[i]
		filtered := candidates[:0]
		for _, e := range candidates {
			if store.HasEntity(e) {
				filtered = append(filtered, e)
			}
		}
		candidates = filtered
	}

	if len(qb.without) > 0 {
		filtered := candidates[:0]
	next:
		for _, e := range candidates {
			for _, store := range qb.without {
				if store.HasEntity(e) {
					continue next
				}
			}
			filtered = append(filtered, e)
		}
		candidates = filtered
	}

	slices.Sort(candidates)
	qb.results = candidates
	return qb.results
}
