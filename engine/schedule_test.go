package engine

import (
	"testing"
	"time"

	"github.com/lixenwraith/void-drift/input"
)

type traceSystem struct {
	name  string
	trace *[]string
	fn    func()
}

func (s *traceSystem) Name() string { return s.name }

func (s *traceSystem) Update() {
	*s.trace = append(*s.trace, s.name)
	if s.fn != nil {
		s.fn()
	}
}

func startedWorld(t *testing.T) (*World, *Schedule, *[]string) {
	t.Helper()
	w := NewTestWorld()
	var hooks []string
	w.Resources.State.RegisterAction(ActionWipeHealth, func(*World) { hooks = append(hooks, ActionWipeHealth) })
	w.Resources.State.RegisterAction(ActionSpawnSpaceship, func(*World) { hooks = append(hooks, ActionSpawnSpaceship) })
	if err := w.Resources.State.Start(); err != nil {
		t.Fatalf("Start: %v", err)
	}
	return w, NewSchedule(w), &hooks
}

func TestSchedulePhaseOrder(t *testing.T) {
	w, s, _ := startedWorld(t)
	var trace []string

	// Registered out of order on purpose
	s.AddSystem(PhaseIntegration, &traceSystem{name: "integrate", trace: &trace})
	s.AddSystem(PhaseCollisionDetection, &traceSystem{name: "collide", trace: &trace})
	s.AddSystem(PhaseCollisionDetection, &traceSystem{name: "damage", trace: &trace})
	s.AddSystem(PhaseUserInput, &traceSystem{name: "ship", trace: &trace})
	s.AddSystem(PhaseDespawnEntities, &traceSystem{name: "despawn", trace: &trace})
	s.AddSystem(PhaseEntityUpdates, &traceSystem{name: "spawner", trace: &trace})
	s.AddSystem(PhaseStateInput, &traceSystem{name: "state", trace: &trace})

	s.Tick(10 * time.Millisecond)

	want := []string{"state", "ship", "spawner", "despawn", "collide", "damage", "integrate"}
	if len(trace) != len(want) {
		t.Fatalf("trace = %v", trace)
	}
	for i := range want {
		if trace[i] != want[i] {
			t.Fatalf("trace = %v, want %v", trace, want)
		}
	}
	if w.Resources.Time.FrameNumber != 1 || w.Resources.Time.DeltaTime != 10*time.Millisecond {
		t.Errorf("time = %+v", w.Resources.Time)
	}
}

func TestScheduleGatesOnRunState(t *testing.T) {
	w, s, _ := startedWorld(t)
	var trace []string
	s.AddSystem(PhaseStateInput, &traceSystem{name: "state", trace: &trace})
	s.AddSystem(PhaseIntegration, &traceSystem{name: "integrate", trace: &trace})

	w.Resources.State.Request(TriggerTogglePause)
	s.Tick(time.Millisecond)
	if !w.Resources.State.Is(StatePaused) {
		t.Fatalf("state = %v", w.Resources.State.Current())
	}
	if len(trace) != 1 || trace[0] != "state" {
		t.Errorf("paused tick ran %v", trace)
	}
	if s.Enabled(PhaseUserInput) || !s.Enabled(PhaseStateInput) {
		t.Error("Enabled mismatch while paused")
	}
}

func TestRunStateTransitionsAndHooks(t *testing.T) {
	w, s, hooks := startedWorld(t)
	rs := w.Resources.State

	if !rs.Is(StateInPlay) {
		t.Fatalf("initial = %v", rs.Current())
	}

	rs.Request(TriggerRestart) // no transition from InPlay
	s.Tick(0)
	if !rs.Is(StateInPlay) {
		t.Fatal("Restart must be ignored in InPlay")
	}

	rs.Request(TriggerShipDestroyed)
	if len(rs.Pending()) != 1 || !rs.Is(StateInPlay) {
		t.Fatal("request must wait for the next tick")
	}
	s.Tick(0)
	if !rs.Is(StateGameOver) {
		t.Fatalf("state = %v, want GameOver", rs.Current())
	}
	if len(*hooks) != 1 || (*hooks)[0] != ActionWipeHealth {
		t.Errorf("OnEnter hooks = %v", *hooks)
	}

	rs.Request(TriggerTogglePause) // no transition from GameOver
	s.Tick(0)
	if !rs.Is(StateGameOver) {
		t.Fatal("pause must be ignored in GameOver")
	}

	*hooks = nil
	rs.Request(TriggerRestart)
	s.Tick(0)
	if !rs.Is(StateInPlay) {
		t.Fatalf("state = %v, want InPlay", rs.Current())
	}
	if len(*hooks) != 2 || (*hooks)[0] != ActionWipeHealth || (*hooks)[1] != ActionSpawnSpaceship {
		t.Errorf("OnExit hooks = %v", *hooks)
	}
}

func TestRunStatePauseToggle(t *testing.T) {
	w, s, _ := startedWorld(t)
	rs := w.Resources.State

	var changes []StateChangedPayload
	rs.OnChange(func(from, to State, trig Trigger) {
		changes = append(changes, StateChangedPayload{From: from, To: to, Trigger: trig})
	})

	rs.Request(TriggerTogglePause)
	rs.Request(TriggerTogglePause) // collapses
	s.Tick(0)
	if !rs.Is(StatePaused) {
		t.Fatalf("state = %v", rs.Current())
	}

	rs.Request(TriggerShipDestroyed) // not valid from Paused
	s.Tick(0)
	if !rs.Is(StatePaused) {
		t.Fatal("ShipDestroyed must be ignored while paused")
	}

	rs.Request(TriggerTogglePause)
	s.Tick(0)
	if !rs.Is(StateInPlay) {
		t.Fatalf("state = %v", rs.Current())
	}
	if len(changes) != 2 || changes[0].To != StatePaused || changes[1].To != StateInPlay {
		t.Errorf("changes = %+v", changes)
	}
}

func TestRunStateStartRequiresActions(t *testing.T) {
	w := NewTestWorld()
	if err := w.Resources.State.Start(); err == nil {
		t.Error("Start must fail when hook actions are not registered")
	}
}

func TestParseState(t *testing.T) {
	for _, st := range []State{StateInPlay, StatePaused, StateGameOver} {
		got, err := ParseState(st.String())
		if err != nil || got != st {
			t.Errorf("ParseState(%s) = %v, %v", st, got, err)
		}
	}
	if _, err := ParseState("Bogus"); err == nil {
		t.Error("expected error")
	}
}

func TestGameStepClampsAndPauses(t *testing.T) {
	w, s, _ := startedWorld(t)
	mock := NewMockTimeProvider(time.Unix(0, 0))
	clock := NewPausableClock(mock)
	g := NewGame(w, s, clock, 50*time.Millisecond)

	mock.Advance(20 * time.Millisecond)
	if dt := g.Step(input.Snapshot{}); dt != 20*time.Millisecond {
		t.Errorf("dt = %v", dt)
	}

	mock.Advance(time.Second)
	if dt := g.Step(input.Snapshot{}); dt != 50*time.Millisecond {
		t.Errorf("clamped dt = %v", dt)
	}

	w.Resources.State.Request(TriggerTogglePause)
	g.Step(input.NewSnapshot().Press(input.KeyEscape))
	if !clock.IsPaused() {
		t.Fatal("clock must pause with the run state")
	}
	if !w.Resources.Input.Snapshot.JustPressed(input.KeyEscape) {
		t.Error("snapshot not published")
	}

	mock.Advance(10 * time.Second)
	if dt := g.Step(input.Snapshot{}); dt != 0 {
		t.Errorf("paused dt = %v", dt)
	}

	w.Resources.State.Request(TriggerTogglePause)
	g.Step(input.Snapshot{})
	mock.Advance(16 * time.Millisecond)
	if dt := g.Step(input.Snapshot{}); dt != 16*time.Millisecond {
		t.Errorf("dt after resume = %v", dt)
	}
}

func TestPausableClock(t *testing.T) {
	mock := NewMockTimeProvider(time.Unix(100, 0))
	c := NewPausableClock(mock)

	mock.Advance(time.Second)
	c.Pause()
	mock.Advance(5 * time.Second)
	if c.Elapsed() != time.Second {
		t.Errorf("elapsed while paused = %v", c.Elapsed())
	}
	if c.TotalPauseDuration() != 5*time.Second {
		t.Errorf("pause total = %v", c.TotalPauseDuration())
	}
	c.Resume()
	mock.Advance(2 * time.Second)
	if c.Elapsed() != 3*time.Second {
		t.Errorf("elapsed after resume = %v", c.Elapsed())
	}
}
