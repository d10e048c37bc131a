package fsm

import (
	"bytes"
	"fmt"
	"sort"

	"gopkg.in/yaml.v3"
)

// LoadConfig parses a YAML machine document and builds the graph
// Actions and guards must be registered before loading; unknown names fail the load
func (m *Machine[T]) LoadConfig(data []byte) error {
	var config RootConfig
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&config); err != nil {
		return fmt.Errorf("failed to unmarshal FSM config: %w", err)
	}
	if len(config.States) == 0 {
		return fmt.Errorf("FSM config declares no states")
	}

	m.nodes = make(map[StateID]*Node[T])
	m.names = make(map[string]StateID)
	m.activeStateID = StateNone
	m.activePath = m.activePath[:0]

	m.addNode(StateRoot, "Root", StateNone)
	if _, ok := config.States["Root"]; !ok {
		config.States["Root"] = &StateConfig{}
	}

	// Sorted names give stable IDs
	stateNames := make([]string, 0, len(config.States))
	for name := range config.States {
		if name != "Root" {
			stateNames = append(stateNames, name)
		}
	}
	sort.Strings(stateNames)

	for i, name := range stateNames {
		m.names[name] = StateID(i + 2)
	}

	for _, name := range append([]string{"Root"}, stateNames...) {
		cfg := config.States[name]
		if cfg == nil {
			cfg = &StateConfig{}
		}
		id := m.names[name]

		node := m.nodes[StateRoot]
		if id != StateRoot {
			pName := cfg.Parent
			if pName == "" {
				pName = "Root"
			}
			parentID, ok := m.names[pName]
			if !ok {
				return fmt.Errorf("state '%s' references unknown parent '%s'", name, pName)
			}
			node = m.addNode(id, name, parentID)
		}

		var err error
		if node.OnEnter, err = m.compileActions(cfg.OnEnter); err != nil {
			return fmt.Errorf("state '%s' on_enter: %w", name, err)
		}
		if node.OnUpdate, err = m.compileActions(cfg.OnUpdate); err != nil {
			return fmt.Errorf("state '%s' on_update: %w", name, err)
		}
		if node.OnExit, err = m.compileActions(cfg.OnExit); err != nil {
			return fmt.Errorf("state '%s' on_exit: %w", name, err)
		}
		if err := m.compileTransitions(node, cfg.Transitions); err != nil {
			return fmt.Errorf("state '%s' transitions: %w", name, err)
		}
	}

	if err := m.compilePaths(); err != nil {
		return err
	}

	initialID, ok := m.names[config.InitialState]
	if !ok || initialID == StateRoot {
		return fmt.Errorf("initial state '%s' not found", config.InitialState)
	}
	m.InitialStateID = initialID
	return nil
}

func (m *Machine[T]) addNode(id StateID, name string, parent StateID) *Node[T] {
	node := &Node[T]{
		ID:       id,
		Name:     name,
		ParentID: parent,
	}
	m.nodes[id] = node
	m.names[name] = id
	return node
}

func (m *Machine[T]) compileActions(names []string) ([]Action[T], error) {
	if len(names) == 0 {
		return nil, nil
	}
	actions := make([]Action[T], 0, len(names))
	for _, name := range names {
		fn, ok := m.actionReg[name]
		if !ok {
			return nil, fmt.Errorf("unknown action '%s'", name)
		}
		actions = append(actions, Action[T]{Name: name, Func: fn})
	}
	return actions, nil
}

func (m *Machine[T]) compileTransitions(node *Node[T], configs []TransitionConfig) error {
	for _, tc := range configs {
		if tc.Trigger == "" {
			return fmt.Errorf("transition to '%s' has no trigger", tc.Target)
		}
		targetID, ok := m.names[tc.Target]
		if !ok || targetID == StateRoot {
			return fmt.Errorf("unknown target state '%s'", tc.Target)
		}
		t := Transition[T]{TargetID: targetID, Trigger: tc.Trigger}
		if tc.Guard != "" {
			guard, ok := m.guardReg[tc.Guard]
			if !ok {
				return fmt.Errorf("unknown guard '%s'", tc.Guard)
			}
			t.Guard = guard
		}
		node.Transitions = append(node.Transitions, t)
	}
	return nil
}

// compilePaths fills Node.Path and rejects parent cycles
func (m *Machine[T]) compilePaths() error {
	for id, node := range m.nodes {
		var path []StateID
		seen := make(map[StateID]bool)
		for curr := id; curr != StateNone; curr = m.nodes[curr].ParentID {
			if seen[curr] {
				return fmt.Errorf("state '%s' has a parent cycle", node.Name)
			}
			seen[curr] = true
			path = append(path, curr)
		}
		for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
			path[i], path[j] = path[j], path[i]
		}
		node.Path = path
	}
	return nil
}
