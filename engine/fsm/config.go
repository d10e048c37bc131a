package fsm

// RootConfig is the top-level machine document
type RootConfig struct {
	InitialState string                  `yaml:"initial"`
	States       map[string]*StateConfig `yaml:"states"`
}

// StateConfig declares one state
type StateConfig struct {
	Parent      string             `yaml:"parent,omitempty"`
	OnEnter     []string           `yaml:"on_enter,omitempty"`
	OnUpdate    []string           `yaml:"on_update,omitempty"`
	OnExit      []string           `yaml:"on_exit,omitempty"`
	Transitions []TransitionConfig `yaml:"transitions,omitempty"`
}

// TransitionConfig declares one outgoing transition
type TransitionConfig struct {
	Trigger string `yaml:"trigger"`         // trigger name or "Tick"
	Target  string `yaml:"target"`          // target state name
	Guard   string `yaml:"guard,omitempty"` // registered guard name
}
