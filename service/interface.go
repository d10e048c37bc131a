package service

import "github.com/lixenwraith/void-drift/engine"

// Service defines the lifecycle interface for infrastructure subsystems
// Services manage long-lived resources outside the tick: the audio device, the observer listener
//
// Lifecycle:
//  1. Construction (via factory)
//  2. Init(args...) - configuration from parsed flags and tuning
//  3. Attach(world, schedule) - optional, for services that consume game events or frames
//  4. Start() - launch background goroutines
//  5. [runtime operation]
//  6. Stop() - halt goroutines, release resources
type Service interface {
	// Name returns the unique identifier for this service
	Name() string

	// Dependencies returns names of services that must Init before this one
	// Return nil or empty slice if no dependencies
	Dependencies() []string

	// Init configures the service from optional args
	// Args are service-specific (config struct, mute state)
	Init(args ...any) error

	// Start begins service operation (launches goroutines if any)
	// Called after all services have initialized
	Start() error

	// Stop halts service operation and releases resources
	// Must be idempotent - safe to call multiple times
	Stop() error
}

// WorldAttacher is implemented by services that hook into the simulation
// Optional interface - services not implementing it are skipped during attach
type WorldAttacher interface {
	Attach(world *engine.World, sched *engine.Schedule)
}

// FramePublisher is implemented by services that consume every rendered frame
// Called on the game loop goroutine after the tick
type FramePublisher interface {
	PublishFrame(world *engine.World)
}
