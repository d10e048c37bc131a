package audio

import (
	"time"

	"github.com/lixenwraith/void-drift/config"
	"github.com/lixenwraith/void-drift/parameter"
)

// AudioConfig holds engine settings
// MasterVolume is a log2 gain applied to every cue, 0 is unity
// EffectVolumes are linear per-cue multipliers in [0, 1]
type AudioConfig struct {
	Enabled       bool
	SampleRate    int
	BufferSize    time.Duration
	MasterVolume  float64
	EffectVolumes [soundTypeCount]float64
	Cooldowns     [soundTypeCount]time.Duration
}

// DefaultAudioConfig returns the built-in settings
func DefaultAudioConfig() *AudioConfig {
	return &AudioConfig{
		Enabled:      true,
		SampleRate:   parameter.AudioSampleRate,
		BufferSize:   parameter.AudioBufferSize,
		MasterVolume: parameter.AudioMasterVolume,
		EffectVolumes: [soundTypeCount]float64{
			SoundLaser:         0.35,
			SoundExplosion:     0.8,
			SoundShipDestroyed: 1.0,
			SoundShield:        0.5,
			SoundPause:         0.4,
			SoundResume:        0.4,
			SoundRestart:       0.5,
		},
		Cooldowns: [soundTypeCount]time.Duration{
			SoundLaser:     parameter.AudioMissileCooldown,
			SoundExplosion: 40 * time.Millisecond,
		},
	}
}

// ConfigFromTuning overlays the tuning audio block on the defaults
func ConfigFromTuning(a config.Audio) *AudioConfig {
	cfg := DefaultAudioConfig()
	cfg.Enabled = a.Enabled
	cfg.MasterVolume = a.Volume
	cfg.Cooldowns[SoundLaser] = a.MissileCooldown()
	return cfg
}
