package engine

import (
	"sync/atomic"
	"time"

	"github.com/lixenwraith/void-drift/status"
)

// Phase is a named slot in the per-tick pipeline
type Phase uint8

const (
	// PhaseStateInput reads run-state keys; runs in every state
	PhaseStateInput Phase = iota
	PhaseUserInput
	PhaseEntityUpdates
	PhaseDespawnEntities
	PhaseCollisionDetection
	PhaseIntegration
	// PhaseTelemetry publishes metrics; runs in every state
	PhaseTelemetry
	phaseCount
)

var phaseNames = [phaseCount]string{
	PhaseStateInput:         "StateInput",
	PhaseUserInput:          "UserInput",
	PhaseEntityUpdates:      "EntityUpdates",
	PhaseDespawnEntities:    "DespawnEntities",
	PhaseCollisionDetection: "CollisionDetection",
	PhaseIntegration:        "Integration",
	PhaseTelemetry:          "Telemetry",
}

func (p Phase) String() string {
	if p >= phaseCount {
		return "Unknown"
	}
	return phaseNames[p]
}

// Phases returns every phase in execution order
func Phases() []Phase {
	out := make([]Phase, 0, phaseCount)
	for p := PhaseStateInput; p < phaseCount; p++ {
		out = append(out, p)
	}
	return out
}

// Schedule runs systems phase by phase
// Phases are strictly ordered; systems within a phase run in registration order
type Schedule struct {
	world   *World
	systems [phaseCount][]System
	gated   [phaseCount]bool // true = runs only in StateInPlay
	router  *EventRouter

	statTick *atomic.Int64
	statDt   *status.AtomicFloat
}

// NewSchedule creates a schedule with the five gameplay phases gated on InPlay
func NewSchedule(w *World) *Schedule {
	s := &Schedule{
		world:  w,
		router: NewEventRouter(w.Resources.Event.Queue),
	}
	for p := PhaseUserInput; p <= PhaseIntegration; p++ {
		s.gated[p] = true
	}
	s.statTick = w.Resources.Status.Ints.Get(status.KeyTick)
	s.statDt = w.Resources.Status.Floats.Get(status.KeyFrameDelta)
	return s
}

// AddSystem appends sys to phase
// Systems that also implement EventHandler are registered with the router
func (s *Schedule) AddSystem(phase Phase, sys System) {
	if phase >= phaseCount {
		panic("schedule: unknown phase")
	}
	s.systems[phase] = append(s.systems[phase], sys)
	if h, ok := sys.(EventHandler); ok {
		s.router.Register(h)
	}
}

// AddHandler registers an event handler that is not a system
func (s *Schedule) AddHandler(h EventHandler) {
	s.router.Register(h)
}

// Systems returns the systems of phase in run order
func (s *Schedule) Systems(phase Phase) []System {
	out := make([]System, len(s.systems[phase]))
	copy(out, s.systems[phase])
	return out
}

// Router returns the event router dispatched at the end of every tick
func (s *Schedule) Router() *EventRouter {
	return s.router
}

// Enabled reports whether phase runs in the current run state
func (s *Schedule) Enabled(phase Phase) bool {
	if !s.gated[phase] {
		return true
	}
	state := s.world.Resources.State
	return state == nil || state.Is(StateInPlay)
}

// Tick advances the world by dt
// Order: apply requested transitions, run enabled phases, dispatch events
func (s *Schedule) Tick(dt time.Duration) {
	w := s.world
	w.Resources.Time.Update(dt)
	s.statTick.Store(w.Resources.Time.FrameNumber)
	s.statDt.Set(dt.Seconds())

	if state := w.Resources.State; state != nil {
		state.ApplyTransitions()
	}

	for p := PhaseStateInput; p < phaseCount; p++ {
		if !s.Enabled(p) {
			continue
		}
		for _, sys := range s.systems[p] {
			sys.Update()
		}
	}

	s.router.DispatchAll()
}
