package audio

import (
	"errors"

	"github.com/lixenwraith/void-drift/engine"
	"github.com/lixenwraith/void-drift/status"
)

// AudioService wraps AudioEngine as a service and turns game events into cues
type AudioService struct {
	audioEngine *AudioEngine
}

// NewService creates a new audio service
func NewService() *AudioService {
	return &AudioService{}
}

// Name implements service.Service
func (s *AudioService) Name() string {
	return "audio"
}

// Dependencies implements service.Service
func (s *AudioService) Dependencies() []string {
	return nil
}

// Init implements service.Service
// args[0]: *AudioConfig (nil uses defaults)
// args[1]: Output (default is the system speaker)
func (s *AudioService) Init(args ...any) error {
	var cfg *AudioConfig
	var out Output = NewSpeakerOutput()

	if len(args) > 0 {
		if c, ok := args[0].(*AudioConfig); ok {
			cfg = c
		}
	}
	if len(args) > 1 {
		if o, ok := args[1].(Output); ok {
			out = o
		}
	}

	s.audioEngine = NewAudioEngine(cfg, out)
	return nil
}

// Start implements service.Service
func (s *AudioService) Start() error {
	if s.audioEngine == nil {
		return nil
	}
	if err := s.audioEngine.Start(); err != nil && !errors.Is(err, ErrAlreadyRunning) {
		return err
	}
	return nil
}

// Stop implements service.Service
func (s *AudioService) Stop() error {
	if s.audioEngine != nil {
		s.audioEngine.Stop()
	}
	return nil
}

// Attach implements service.WorldAttacher
func (s *AudioService) Attach(world *engine.World, _ *engine.Schedule) {
	if s.audioEngine == nil {
		return
	}
	s.audioEngine.bindMuted(world.Resources.Status.Bools.Get(status.KeyAudioMuted))
}

// EventTypes implements engine.EventHandler
func (s *AudioService) EventTypes() []engine.EventType {
	return []engine.EventType{
		engine.EventMissileFired,
		engine.EventShieldRaised,
		engine.EventEntityReaped,
		engine.EventStateChanged,
	}
}

// HandleEvent implements engine.EventHandler
func (s *AudioService) HandleEvent(ev engine.GameEvent) {
	if s.audioEngine == nil {
		return
	}
	if st, ok := CueFor(ev); ok {
		s.audioEngine.Play(st)
	}
}

// ToggleMute flips mute, reporting the new state; false when audio never initialized
func (s *AudioService) ToggleMute() bool {
	if s.audioEngine == nil {
		return false
	}
	return s.audioEngine.ToggleMute()
}

// Engine returns the underlying AudioEngine (nil before Init)
func (s *AudioService) Engine() *AudioEngine {
	return s.audioEngine
}

// CueFor maps a game event to the cue it should play
func CueFor(ev engine.GameEvent) (SoundType, bool) {
	switch ev.Type {
	case engine.EventMissileFired:
		return SoundLaser, true
	case engine.EventShieldRaised:
		return SoundShield, true
	case engine.EventEntityReaped:
		p, ok := ev.Payload.(*engine.EntityReapedPayload)
		if !ok || p.Reason != engine.ReapHealth {
			return 0, false
		}
		switch p.Kind {
		case engine.KindAsteroid:
			return SoundExplosion, true
		case engine.KindSpaceship:
			return SoundShipDestroyed, true
		}
	case engine.EventStateChanged:
		p, ok := ev.Payload.(*engine.StateChangedPayload)
		if !ok {
			return 0, false
		}
		switch {
		case p.Trigger == engine.TriggerRestart:
			return SoundRestart, true
		case p.To == engine.StatePaused:
			return SoundPause, true
		case p.From == engine.StatePaused && p.To == engine.StateInPlay:
			return SoundResume, true
		}
	}
	return 0, false
}
