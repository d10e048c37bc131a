package fsm

import "time"

// StateID is a unique identifier for a node
type StateID int

const (
	StateNone StateID = 0
	StateRoot StateID = 1
)

// TriggerTick is evaluated on every Update instead of on Fire
const TriggerTick = "Tick"

// Machine is a hierarchical finite state machine
// T is the context passed to actions and guards (e.g. *engine.World)
type Machine[T any] struct {
	// Graph, immutable after LoadConfig
	nodes          map[StateID]*Node[T]
	names          map[string]StateID
	InitialStateID StateID

	// Runtime
	activeStateID StateID
	activePath    []StateID
	timeInState   time.Duration

	guardReg  map[string]GuardFunc[T]
	actionReg map[string]ActionFunc[T]

	// observers are called after every completed transition
	observers []TransitionFunc
}

// Node is a state in the hierarchy
type Node[T any] struct {
	ID       StateID
	Name     string
	ParentID StateID

	// Path from Root to this node, used for LCA lookup
	Path []StateID

	OnEnter  []Action[T]
	OnUpdate []Action[T]
	OnExit   []Action[T]

	// Transitions in declaration order
	Transitions []Transition[T]
}

// Transition links a node to a target for a trigger
type Transition[T any] struct {
	TargetID StateID
	Trigger  string
	Guard    GuardFunc[T] // nil = always
}

// Action is a named side effect
type Action[T any] struct {
	Name string
	Func ActionFunc[T]
}

// GuardFunc returns true if the transition may occur
type GuardFunc[T any] func(ctx T) bool

// ActionFunc executes a side effect
type ActionFunc[T any] func(ctx T)

// TransitionFunc observes a completed transition by state name
type TransitionFunc func(from, to, trigger string)
