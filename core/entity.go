package core

// Entity is a unique identifier for an entity
// Zero is never issued and marks "no entity"
type Entity uint64

// EntityNone is the reserved null entity
const EntityNone Entity = 0
