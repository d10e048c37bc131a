package audio

import (
	"testing"
	"time"

	"github.com/lixenwraith/void-drift/config"
)

// TestDefaultAudioConfig verifies default configuration
func TestDefaultAudioConfig(t *testing.T) {
	cfg := DefaultAudioConfig()

	if !cfg.Enabled {
		t.Error("expected default config enabled")
	}
	if cfg.SampleRate != 44100 {
		t.Errorf("sample rate %d, want 44100", cfg.SampleRate)
	}
	for st := SoundType(0); st < soundTypeCount; st++ {
		if v := cfg.EffectVolumes[st]; v <= 0 || v > 1 {
			t.Errorf("%s volume %f outside (0, 1]", st, v)
		}
	}
	if cfg.Cooldowns[SoundLaser] != 120*time.Millisecond {
		t.Errorf("laser cooldown %v, want 120ms", cfg.Cooldowns[SoundLaser])
	}
}

// TestConfigFromTuning verifies the tuning audio block overrides defaults
func TestConfigFromTuning(t *testing.T) {
	cfg := ConfigFromTuning(config.Audio{Enabled: false, Volume: -3, MissileCooldownMs: 250})

	if cfg.Enabled {
		t.Error("expected disabled")
	}
	if cfg.MasterVolume != -3 {
		t.Errorf("master volume %f, want -3", cfg.MasterVolume)
	}
	if cfg.Cooldowns[SoundLaser] != 250*time.Millisecond {
		t.Errorf("laser cooldown %v, want 250ms", cfg.Cooldowns[SoundLaser])
	}
	if cfg.SampleRate != 44100 {
		t.Error("sample rate should keep its default")
	}
}
