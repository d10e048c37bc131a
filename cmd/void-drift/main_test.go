package main

import (
	"testing"
	"time"

	"github.com/lixenwraith/void-drift/asset"
	"github.com/lixenwraith/void-drift/assets"
	"github.com/lixenwraith/void-drift/config"
	"github.com/lixenwraith/void-drift/engine"
	"github.com/lixenwraith/void-drift/input"
)

func TestNewGameWiring(t *testing.T) {
	registry, err := asset.Load(assets.FS, asset.Required...)
	if err != nil {
		t.Fatal(err)
	}
	provider := engine.NewMockTimeProvider(time.Unix(0, 0))
	game, err := newGame(config.Default(), registry, 7, provider)
	if err != nil {
		t.Fatal(err)
	}

	w := game.World
	if !w.Resources.State.Is(engine.StateInPlay) {
		t.Fatalf("state = %s, want InPlay", w.Resources.State.Current())
	}
	if w.Components.Spaceship.CountEntities() != 1 {
		t.Fatal("expected one spaceship after start")
	}

	provider.Advance(16 * time.Millisecond)
	if dt := game.Step(input.Snapshot{}); dt != 16*time.Millisecond {
		t.Errorf("dt = %v, want 16ms", dt)
	}

	// Large gaps are clamped
	provider.Advance(10 * time.Second)
	if dt := game.Step(input.Snapshot{}); dt != config.Default().Frame.MaxDelta() {
		t.Errorf("dt = %v, want clamp %v", dt, config.Default().Frame.MaxDelta())
	}
}

func TestNewHubRegistersServices(t *testing.T) {
	hub, audioSvc, err := newHub(config.Default())
	if err != nil {
		t.Fatal(err)
	}
	if audioSvc == nil {
		t.Fatal("nil audio service")
	}
	names := hub.Names()
	if len(names) != 2 {
		t.Errorf("services = %v, want audio and observer", names)
	}
}
