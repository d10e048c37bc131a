package engine

import (
	"math/rand"
	"time"

	"github.com/lixenwraith/void-drift/asset"
	"github.com/lixenwraith/void-drift/config"
	"github.com/lixenwraith/void-drift/input"
	"github.com/lixenwraith/void-drift/status"
)

// Resource holds singleton resources, accessed via World.Resources
type Resource struct {
	Time   *TimeResource
	Config *ConfigResource
	Input  *InputResource
	State  *RunState
	Asset  *AssetResource
	Rand   *RandResource
	Event  *EventQueueResource

	// Telemetry
	Status *status.Registry
}

// TimeResource is updated by the schedule at the start of every tick
type TimeResource struct {
	// GameTime advances only by simulated ticks
	GameTime time.Duration

	// DeltaTime is the duration of the current tick
	DeltaTime time.Duration

	// FrameNumber counts ticks since start
	FrameNumber int64
}

// Update modifies fields in place
func (tr *TimeResource) Update(dt time.Duration) {
	tr.DeltaTime = dt
	tr.GameTime += dt
	tr.FrameNumber++
}

// ConfigResource holds the loaded tuning
type ConfigResource struct {
	Tuning config.Tuning
}

// InputResource holds the keyboard snapshot for the current tick
type InputResource struct {
	Snapshot input.Snapshot
}

// AssetResource exposes the scene registry to spawners
type AssetResource struct {
	Registry *asset.Registry
}

// RandResource is the process-wide random source
type RandResource struct {
	*rand.Rand
}

// NewRandResource creates a source seeded with seed
func NewRandResource(seed int64) *RandResource {
	return &RandResource{Rand: rand.New(rand.NewSource(seed))}
}

// EventQueueResource wraps the event queue for systems access
type EventQueueResource struct {
	Queue *EventQueue
}
