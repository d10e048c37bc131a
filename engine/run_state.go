package engine

import (
	_ "embed"
	"fmt"
	"log"

	"github.com/lixenwraith/void-drift/engine/fsm"
	"github.com/lixenwraith/void-drift/status"
)

//go:embed runstate.yaml
var runStateConfig []byte

// State is the global run state gating the in-play phases
type State uint8

const (
	StateInPlay State = iota
	StatePaused
	StateGameOver
)

func (s State) String() string {
	switch s {
	case StateInPlay:
		return "InPlay"
	case StatePaused:
		return "Paused"
	case StateGameOver:
		return "GameOver"
	default:
		return "Unknown"
	}
}

// ParseState resolves a state name
func ParseState(name string) (State, error) {
	switch name {
	case "InPlay":
		return StateInPlay, nil
	case "Paused":
		return StatePaused, nil
	case "GameOver":
		return StateGameOver, nil
	}
	return 0, fmt.Errorf("unknown run state %q", name)
}

// Trigger is a named run-state transition request
type Trigger string

const (
	TriggerTogglePause   Trigger = "TogglePause"
	TriggerShipDestroyed Trigger = "ShipDestroyed"
	TriggerRestart       Trigger = "Restart"
)

// Hook action names referenced by runstate.yaml
const (
	ActionWipeHealth     = "WipeHealth"
	ActionSpawnSpaceship = "SpawnSpaceship"
)

// RunState owns the run-state machine
// Only the game loop goroutine touches it; triggers queue until ApplyTransitions
type RunState struct {
	world   *World
	machine *fsm.Machine[*World]
	current State
	pending []Trigger
	started bool

	listeners []func(from, to State, trigger Trigger)

	statLabel *status.AtomicLabel
}

// NewRunState creates the machine; register hook actions, then call Start
func NewRunState(w *World) *RunState {
	r := &RunState{
		world:     w,
		machine:   fsm.NewMachine[*World](),
		pending:   make([]Trigger, 0, 4),
		statLabel: w.Resources.Status.Labels.Get(status.KeyRunState),
	}
	return r
}

// RegisterAction binds a hook action name used by the machine config
func (r *RunState) RegisterAction(name string, fn func(w *World)) {
	r.machine.RegisterAction(name, fn)
}

// OnChange registers a listener called after every transition
func (r *RunState) OnChange(fn func(from, to State, trigger Trigger)) {
	r.listeners = append(r.listeners, fn)
}

// Start loads the embedded graph and enters the initial state
func (r *RunState) Start() error {
	if err := r.machine.LoadConfig(runStateConfig); err != nil {
		return fmt.Errorf("run state: %w", err)
	}
	r.machine.OnTransition(r.onTransition)
	if err := r.machine.Init(r.world); err != nil {
		return fmt.Errorf("run state: %w", err)
	}

	initial, err := ParseState(r.machine.Current())
	if err != nil {
		return err
	}
	r.current = initial
	r.started = true
	r.statLabel.Store(initial.String())
	return nil
}

func (r *RunState) onTransition(fromName, toName, trigger string) {
	from, _ := ParseState(fromName)
	to, err := ParseState(toName)
	if err != nil {
		log.Printf("run state: %v", err)
		return
	}
	r.current = to
	r.statLabel.Store(to.String())
	log.Printf("run state: %s -> %s (%s)", from, to, trigger)

	for _, fn := range r.listeners {
		fn(from, to, Trigger(trigger))
	}
	r.world.PushEvent(EventStateChanged, &StateChangedPayload{From: from, To: to, Trigger: Trigger(trigger)})
}

// Current returns the active state
func (r *RunState) Current() State {
	return r.current
}

// Is reports whether s is the active state
func (r *RunState) Is(s State) bool {
	return r.current == s
}

// Request queues t for the start of the next tick
// Duplicate requests within a tick collapse
func (r *RunState) Request(t Trigger) {
	for _, p := range r.pending {
		if p == t {
			return
		}
	}
	r.pending = append(r.pending, t)
}

// Pending returns triggers queued for the next tick
func (r *RunState) Pending() []Trigger {
	out := make([]Trigger, len(r.pending))
	copy(out, r.pending)
	return out
}

// ApplyTransitions fires queued triggers in request order
// Triggers with no transition from the state reached so far are dropped
// Triggers requested by hooks wait for the next tick
func (r *RunState) ApplyTransitions() {
	if !r.started || len(r.pending) == 0 {
		return
	}
	pending := r.pending
	r.pending = make([]Trigger, 0, 4)
	for _, t := range pending {
		r.machine.Fire(r.world, string(t))
	}
}
