package engine

import "github.com/lixenwraith/void-drift/core"

// AnyStore is the type-erased view World uses for entity-wide operations
type AnyStore interface {
	RemoveEntity(e core.Entity)
	HasEntity(e core.Entity) bool
	CountEntities() int
	ClearAllComponents()
}

// QueryableStore adds enumeration for the query builder
type QueryableStore interface {
	AnyStore
	GetAllEntities() []core.Entity
}
