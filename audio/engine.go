package audio

import (
	"log"
	"sync"
	"sync/atomic"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
)

// AudioEngine plays cached cues on an Output with per-cue cooldowns
type AudioEngine struct {
	config *AudioConfig
	cache  *soundCache
	out    Output

	running    atomic.Bool
	muted      atomic.Bool
	silentMode atomic.Bool
	statMuted  atomic.Pointer[atomic.Bool]

	mu         sync.Mutex // Protects lastPlayed
	lastPlayed [soundTypeCount]time.Time
	now        func() time.Time
}

// NewAudioEngine creates an engine on out; a nil cfg uses DefaultAudioConfig
func NewAudioEngine(cfg *AudioConfig, out Output) *AudioEngine {
	if cfg == nil {
		cfg = DefaultAudioConfig()
	}
	ae := &AudioEngine{
		config: cfg,
		cache:  newSoundCache(cfg),
		out:    out,
		now:    time.Now,
	}
	ae.muted.Store(!cfg.Enabled)
	return ae
}

// Start opens the output
// A missing or failing device drops the engine into silent mode instead of failing
func (ae *AudioEngine) Start() error {
	if ae.running.Load() {
		return ErrAlreadyRunning
	}

	if ae.out == nil {
		ae.silentMode.Store(true)
	} else {
		rate := beep.SampleRate(ae.config.SampleRate)
		if err := ae.out.Init(rate, rate.N(ae.config.BufferSize)); err != nil {
			log.Printf("audio: %v: %v, continuing silent", ErrNoOutput, err)
			ae.silentMode.Store(true)
		} else {
			ae.cache.preload()
		}
	}

	ae.running.Store(true)
	return nil
}

// Stop closes the output; safe to call repeatedly
func (ae *AudioEngine) Stop() {
	if !ae.running.Swap(false) {
		return
	}
	if !ae.silentMode.Load() && ae.out != nil {
		ae.out.Close()
	}
}

// Play queues st unless muted, silent or cooling down
// Returns true if the cue was sent to the output
func (ae *AudioEngine) Play(st SoundType) bool {
	if !ae.running.Load() || ae.muted.Load() || ae.silentMode.Load() {
		return false
	}
	if st < 0 || st >= soundTypeCount {
		return false
	}

	if cd := ae.config.Cooldowns[st]; cd > 0 {
		now := ae.now()
		ae.mu.Lock()
		if last := ae.lastPlayed[st]; !last.IsZero() && now.Sub(last) < cd {
			ae.mu.Unlock()
			return false
		}
		ae.lastPlayed[st] = now
		ae.mu.Unlock()
	}

	s := ae.cache.get(st)
	if s == nil {
		return false
	}
	ae.out.Play(&effects.Volume{Streamer: s, Base: 2, Volume: ae.config.MasterVolume})
	return true
}

// ToggleMute flips the mute state and returns the new value
func (ae *AudioEngine) ToggleMute() bool {
	for {
		old := ae.muted.Load()
		if ae.muted.CompareAndSwap(old, !old) {
			ae.publishMuted(!old)
			return !old
		}
	}
}

// IsMuted reports the mute state
func (ae *AudioEngine) IsMuted() bool {
	return ae.muted.Load()
}

// IsRunning reports whether Start succeeded and Stop was not called
func (ae *AudioEngine) IsRunning() bool {
	return ae.running.Load()
}

// IsSilent reports whether the engine runs without a device
func (ae *AudioEngine) IsSilent() bool {
	return ae.silentMode.Load()
}

// bindMuted mirrors the mute state into a status metric
func (ae *AudioEngine) bindMuted(stat *atomic.Bool) {
	ae.statMuted.Store(stat)
	ae.publishMuted(ae.muted.Load())
}

func (ae *AudioEngine) publishMuted(muted bool) {
	if stat := ae.statMuted.Load(); stat != nil {
		stat.Store(muted)
	}
}
