package engine

import (
	"github.com/go-gl/mathgl/mgl64"

	"github.com/lixenwraith/void-drift/core"
)

// EventType identifies a game event
type EventType int

const (
	// EventMissileFired signals a missile spawn
	// Trigger: SpaceshipSystem weapon step
	// Consumer: AudioSystem | Payload: *MissileFiredPayload
	EventMissileFired EventType = iota + 1

	// EventShieldRaised signals the first shield insert on a ship
	// Trigger: SpaceshipSystem shield step
	// Consumer: AudioSystem | Payload: core.Entity
	EventShieldRaised

	// EventEntityReaped signals an entity removed by the reaper
	// Trigger: DespawnSystem, WipeHealth
	// Consumer: AudioSystem, ScoreSystem | Payload: *EntityReapedPayload
	EventEntityReaped

	// EventAsteroidSpawned signals a new asteroid
	// Trigger: AsteroidSpawnerSystem
	// Consumer: none | Payload: core.Entity
	EventAsteroidSpawned

	// EventSpaceshipSpawned signals a new player ship
	// Trigger: SpawnSpaceship (startup, OnExit GameOver)
	// Consumer: none | Payload: core.Entity
	EventSpaceshipSpawned

	// EventStateChanged signals a run-state transition
	// Trigger: RunState
	// Consumer: AudioSystem | Payload: *StateChangedPayload
	EventStateChanged
)

var eventNames = map[EventType]string{
	EventMissileFired:     "MissileFired",
	EventShieldRaised:     "ShieldRaised",
	EventEntityReaped:     "EntityReaped",
	EventAsteroidSpawned:  "AsteroidSpawned",
	EventSpaceshipSpawned: "SpaceshipSpawned",
	EventStateChanged:     "StateChanged",
}

func (t EventType) String() string {
	if name, ok := eventNames[t]; ok {
		return name
	}
	return "Unknown"
}

// GameEvent is one queued event
type GameEvent struct {
	Type    EventType
	Payload any
	Frame   int64
}

// EntityKind classifies an entity by its tag
type EntityKind uint8

const (
	KindOther EntityKind = iota
	KindSpaceship
	KindAsteroid
	KindMissile
)

func (k EntityKind) String() string {
	switch k {
	case KindSpaceship:
		return "spaceship"
	case KindAsteroid:
		return "asteroid"
	case KindMissile:
		return "missile"
	default:
		return "other"
	}
}

// KindOf returns the tag kind of e
func (w *World) KindOf(e core.Entity) EntityKind {
	switch {
	case w.Components.Spaceship.HasEntity(e):
		return KindSpaceship
	case w.Components.Asteroid.HasEntity(e):
		return KindAsteroid
	case w.Components.SpaceshipMissile.HasEntity(e):
		return KindMissile
	default:
		return KindOther
	}
}

// ReapReason is why an entity was removed
type ReapReason uint8

const (
	ReapDistance ReapReason = iota
	ReapHealth
	ReapWipe
)

func (r ReapReason) String() string {
	switch r {
	case ReapDistance:
		return "distance"
	case ReapHealth:
		return "health"
	default:
		return "wipe"
	}
}

// EntityReapedPayload describes a removed entity
type EntityReapedPayload struct {
	Entity core.Entity
	Kind   EntityKind
	Reason ReapReason
}

// MissileFiredPayload carries the new missile
type MissileFiredPayload struct {
	Entity   core.Entity
	Position mgl64.Vec3
}

// StateChangedPayload carries a run-state transition
type StateChangedPayload struct {
	From    State
	To      State
	Trigger Trigger
}
