package component

import "github.com/lixenwraith/void-drift/core"

// ParentComponent links a child entity to its owner
type ParentComponent struct {
	Entity core.Entity
}

// ChildrenComponent lists entities removed together with the owner on recursive despawn
type ChildrenComponent struct {
	Entities []core.Entity
}
