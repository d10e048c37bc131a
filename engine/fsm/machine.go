package fsm

import (
	"fmt"
	"time"
)

// NewMachine creates an empty machine; register actions and guards, then LoadConfig
func NewMachine[T any]() *Machine[T] {
	return &Machine[T]{
		nodes:     make(map[StateID]*Node[T]),
		names:     make(map[string]StateID),
		guardReg:  make(map[string]GuardFunc[T]),
		actionReg: make(map[string]ActionFunc[T]),
	}
}

// RegisterGuard adds a predicate to the registry
func (m *Machine[T]) RegisterGuard(name string, fn GuardFunc[T]) {
	m.guardReg[name] = fn
}

// RegisterAction adds a side effect to the registry
func (m *Machine[T]) RegisterAction(name string, fn ActionFunc[T]) {
	m.actionReg[name] = fn
}

// OnTransition registers an observer called after every transition
func (m *Machine[T]) OnTransition(fn TransitionFunc) {
	m.observers = append(m.observers, fn)
}

// Init enters the initial state, running OnEnter from Root down
func (m *Machine[T]) Init(ctx T) error {
	node, ok := m.nodes[m.InitialStateID]
	if !ok {
		return fmt.Errorf("initial state ID %d not found", m.InitialStateID)
	}

	m.activeStateID = node.ID
	m.activePath = append(m.activePath[:0], node.Path...)
	m.timeInState = 0

	for _, id := range m.activePath {
		runActions(ctx, m.nodes[id].OnEnter)
	}
	return nil
}

// Update advances time in state, runs OnUpdate and evaluates Tick transitions
func (m *Machine[T]) Update(ctx T, dt time.Duration) {
	if m.activeStateID == StateNone {
		return
	}
	m.timeInState += dt
	runActions(ctx, m.nodes[m.activeStateID].OnUpdate)
	m.Fire(ctx, TriggerTick)
}

// Fire offers a trigger to the active state, bubbling up to Root
// Returns true if a transition was taken
func (m *Machine[T]) Fire(ctx T, trigger string) bool {
	if m.activeStateID == StateNone {
		return false
	}

	for currID := m.activeStateID; currID != StateNone; currID = m.nodes[currID].ParentID {
		for _, trans := range m.nodes[currID].Transitions {
			if trans.Trigger != trigger {
				continue
			}
			if trans.Guard == nil || trans.Guard(ctx) {
				m.transition(ctx, trans.TargetID, trigger)
				return true
			}
		}
	}
	return false
}

// Can reports whether trigger has an outgoing transition from the active state, ignoring guards
func (m *Machine[T]) Can(trigger string) bool {
	for currID := m.activeStateID; currID != StateNone; currID = m.nodes[currID].ParentID {
		for _, trans := range m.nodes[currID].Transitions {
			if trans.Trigger == trigger {
				return true
			}
		}
	}
	return false
}

// transition runs OnExit up to the LCA, then OnEnter down to the target
// A transition to the active state is a no-op
func (m *Machine[T]) transition(ctx T, targetID StateID, trigger string) {
	if m.activeStateID == targetID {
		return
	}
	target := m.nodes[targetID]
	from := m.nodes[m.activeStateID].Name

	lca := -1
	for i := 0; i < len(m.activePath) && i < len(target.Path); i++ {
		if m.activePath[i] != target.Path[i] {
			break
		}
		lca = i
	}

	for i := len(m.activePath) - 1; i > lca; i-- {
		runActions(ctx, m.nodes[m.activePath[i]].OnExit)
	}
	for i := lca + 1; i < len(target.Path); i++ {
		runActions(ctx, m.nodes[target.Path[i]].OnEnter)
	}

	m.activeStateID = targetID
	m.activePath = append(m.activePath[:0], target.Path...)
	m.timeInState = 0

	for _, fn := range m.observers {
		fn(from, target.Name, trigger)
	}
}

func runActions[T any](ctx T, actions []Action[T]) {
	for _, a := range actions {
		a.Func(ctx)
	}
}

// Current returns the active state name, empty before Init
func (m *Machine[T]) Current() string {
	if node, ok := m.nodes[m.activeStateID]; ok && m.activeStateID != StateNone {
		return node.Name
	}
	return ""
}

// TimeInState returns time accumulated by Update since the last transition
func (m *Machine[T]) TimeInState() time.Duration {
	return m.timeInState
}

// StateID resolves a state name
func (m *Machine[T]) StateID(name string) (StateID, bool) {
	id, ok := m.names[name]
	return id, ok
}

// IsIn reports whether name is the active state or one of its ancestors
func (m *Machine[T]) IsIn(name string) bool {
	id, ok := m.names[name]
	if !ok {
		return false
	}
	for _, p := range m.activePath {
		if p == id {
			return true
		}
	}
	return false
}
