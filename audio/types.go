package audio

import "errors"

// SoundType represents different sound effects
type SoundType int

const (
	SoundLaser         SoundType = iota // Missile fired
	SoundExplosion                      // Asteroid destroyed by damage
	SoundShipDestroyed                  // Spaceship destroyed by damage
	SoundShield                         // Shield raised
	SoundPause
	SoundResume
	SoundRestart
	soundTypeCount
)

var soundNames = [soundTypeCount]string{
	SoundLaser:         "laser",
	SoundExplosion:     "explosion",
	SoundShipDestroyed: "ship_destroyed",
	SoundShield:        "shield",
	SoundPause:         "pause",
	SoundResume:        "resume",
	SoundRestart:       "restart",
}

func (s SoundType) String() string {
	if s < 0 || s >= soundTypeCount {
		return "unknown"
	}
	return soundNames[s]
}

// Sentinel errors
var (
	ErrAlreadyRunning = errors.New("audio engine already running")
	ErrNoOutput       = errors.New("audio output unavailable")
)
