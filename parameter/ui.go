package parameter

// Render
const (
	// ViewMargin scales the despawn distance to the world half-width shown on the smaller screen axis
	ViewMargin = 1.05

	// HUDHeight is the number of rows reserved for the status line
	HUDHeight = 1
)

// Observer
const (
	// ObserverSendBuffer is the per-client frame backlog before frames are dropped
	ObserverSendBuffer = 8

	// ObserverPath is the websocket endpoint
	ObserverPath = "/observe"
)
