package system

import (
	"github.com/lixenwraith/void-drift/engine"
	"github.com/lixenwraith/void-drift/input"
)

// StateInputSystem maps edge-triggered keys to run-state triggers
// Runs in every state; Esc toggles pause, Space restarts after game over
type StateInputSystem struct {
	world *engine.World
}

// NewStateInputSystem creates a new state input system
func NewStateInputSystem(world *engine.World) engine.System {
	return &StateInputSystem{world: world}
}

func (s *StateInputSystem) Name() string {
	return "state_input"
}

func (s *StateInputSystem) Update() {
	state := s.world.Resources.State
	if state == nil {
		return
	}
	snap := s.world.Resources.Input.Snapshot

	switch state.Current() {
	case engine.StateInPlay, engine.StatePaused:
		if snap.JustPressed(input.KeyEscape) {
			state.Request(engine.TriggerTogglePause)
		}
	case engine.StateGameOver:
		if snap.JustPressed(input.KeySpace) {
			state.Request(engine.TriggerRestart)
		}
	}
}
