package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func TestDefaultIsValid(t *testing.T) {
	if err := Default().Validate(); err != nil {
		t.Fatalf("default tuning rejected: %v", err)
	}
}

func TestDefaultMatchesShipConstants(t *testing.T) {
	d := Default()
	if d.Spaceship.Speed != 25 || d.Spaceship.RotationSpeed != 2.5 || d.Spaceship.RollSpeed != 2.5 {
		t.Errorf("ship speeds = %+v", d.Spaceship)
	}
	if d.Despawn.Distance != 100 {
		t.Errorf("despawn distance = %v", d.Despawn.Distance)
	}
	if got := d.Spaceship.StartPosition(); got.Z() != -20 {
		t.Errorf("start = %v", got)
	}
}

func TestDecodeOverlaysDefaults(t *testing.T) {
	doc := `
spawner:
  interval_seconds: 0.25
  speed_max: 30
frame:
  rate: 30
`
	tu, err := Decode(strings.NewReader(doc))
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if tu.Spawner.IntervalSeconds != 0.25 || tu.Spawner.SpeedMax != 30 {
		t.Errorf("spawner = %+v", tu.Spawner)
	}
	if tu.Spawner.Radius != Default().Spawner.Radius {
		t.Errorf("unset field lost default: %v", tu.Spawner.Radius)
	}
	if tu.Frame.Rate != 30 || tu.Frame.MaxDeltaMs != Default().Frame.MaxDeltaMs {
		t.Errorf("frame = %+v", tu.Frame)
	}
}

func TestDecodeEmptyDocument(t *testing.T) {
	tu, err := Decode(strings.NewReader(""))
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if tu != Default() {
		t.Error("empty document should yield defaults")
	}
}

func TestDecodeRejects(t *testing.T) {
	tests := []struct {
		name string
		doc  string
	}{
		{"unknown key", "spaceship:\n  warp: 9\n"},
		{"negative speed", "spaceship:\n  speed: -1\n"},
		{"zero health", "asteroid:\n  health: 0\n"},
		{"zero rate", "frame:\n  rate: 0\n"},
		{"wrong type", "despawn:\n  distance: far\n"},
		{"speed range inverted", "spawner:\n  speed_min: 20\n  speed_max: 10\n"},
		{"spawn outside reap", "spawner:\n  radius: 150\n"},
		{"volume too loud", "audio:\n  volume: 5\n"},
		{"repeat window above hold window", "input:\n  hold_window_ms: 100\n  repeat_window_ms: 200\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Decode(strings.NewReader(tt.doc))
			if err == nil {
				t.Fatal("expected error")
			}
			if !errors.Is(err, ErrInvalidTuning) {
				t.Errorf("error %v does not wrap ErrInvalidTuning", err)
			}
		})
	}
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tuning.yaml")
	if err := os.WriteFile(path, []byte("missile:\n  speed: 80\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	tu, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if tu.Missile.Speed != 80 {
		t.Errorf("missile speed = %v", tu.Missile.Speed)
	}

	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestDurations(t *testing.T) {
	d := Default()
	if d.Frame.Interval() <= 0 || d.Frame.MaxDelta() <= 0 {
		t.Errorf("frame durations = %v %v", d.Frame.Interval(), d.Frame.MaxDelta())
	}
	if d.Input.HoldWindow() <= 0 || d.Input.RepeatWindow() <= 0 {
		t.Errorf("key windows = %v %v", d.Input.HoldWindow(), d.Input.RepeatWindow())
	}
	// Typical terminals wait 250 to 660ms before the first auto-repeat
	if d.Input.HoldWindow() <= 660*time.Millisecond {
		t.Errorf("hold window %v does not span the initial repeat delay", d.Input.HoldWindow())
	}
}
