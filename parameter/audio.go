package parameter

import "time"

// Audio
const (
	// AudioSampleRate is the speaker sample rate in Hz
	AudioSampleRate = 44100

	// AudioBufferSize is the speaker buffer length
	AudioBufferSize = 100 * time.Millisecond

	// AudioMasterVolume is master gain in beep's log2 scale, 0 is unity
	AudioMasterVolume = -1.0

	// AudioMissileCooldown throttles the fire cue under continuous fire
	AudioMissileCooldown = 120 * time.Millisecond
)
