package engine

import (
	"time"

	"github.com/lixenwraith/void-drift/input"
)

// Game drives the schedule from a pausable clock
// Δt is the game time since the previous step, clamped to maxDelta
type Game struct {
	World    *World
	Schedule *Schedule
	Clock    *PausableClock

	maxDelta time.Duration
	last     time.Duration
}

// NewGame wires the clock to the run state: time stops outside InPlay
func NewGame(w *World, sched *Schedule, clock *PausableClock, maxDelta time.Duration) *Game {
	g := &Game{
		World:    w,
		Schedule: sched,
		Clock:    clock,
		maxDelta: maxDelta,
		last:     clock.Elapsed(),
	}
	if w.Resources.State != nil {
		w.Resources.State.OnChange(func(_, to State, _ Trigger) {
			if to == StateInPlay {
				g.Clock.Resume()
			} else {
				g.Clock.Pause()
			}
		})
	}
	return g
}

// Step publishes the keyboard snapshot and runs one tick
func (g *Game) Step(snapshot input.Snapshot) time.Duration {
	now := g.Clock.Elapsed()
	dt := now - g.last
	g.last = now
	if dt < 0 {
		dt = 0
	}
	if g.maxDelta > 0 && dt > g.maxDelta {
		dt = g.maxDelta
	}

	if g.World.Resources.Input != nil {
		g.World.Resources.Input.Snapshot = snapshot
	}
	g.Schedule.Tick(dt)
	return dt
}
