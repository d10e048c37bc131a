package parameter

import "time"

// Frame timing
const (
	// FrameRate is the default render/tick rate
	FrameRate = 60

	// FrameMaxDelta clamps a single tick so a stalled frame does not tunnel entities
	FrameMaxDelta = 100 * time.Millisecond
)

// ECS limits
const (
	// EventQueueSize is the fixed capacity of the event ring buffer
	EventQueueSize = 1024

	// EventBufferMask is EventQueueSize - 1
	EventBufferMask = EventQueueSize - 1
)
