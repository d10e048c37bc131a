package audio

import (
	"sync"

	"github.com/gopxl/beep"
)

// soundCache stores cues rendered once into beep buffers
type soundCache struct {
	mu     sync.RWMutex
	config *AudioConfig
	format beep.Format
	store  [soundTypeCount]*beep.Buffer
}

func newSoundCache(cfg *AudioConfig) *soundCache {
	return &soundCache{
		config: cfg,
		format: beep.Format{
			SampleRate:  beep.SampleRate(cfg.SampleRate),
			NumChannels: 2,
			Precision:   2,
		},
	}
}

// get returns a fresh streamer over the cached buffer, rendering on first use
func (c *soundCache) get(st SoundType) beep.Streamer {
	buf := c.buffer(st)
	if buf == nil {
		return nil
	}
	return buf.Streamer(0, buf.Len())
}

func (c *soundCache) buffer(st SoundType) *beep.Buffer {
	if st < 0 || st >= soundTypeCount {
		return nil
	}

	c.mu.RLock()
	buf := c.store[st]
	c.mu.RUnlock()
	if buf != nil {
		return buf
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	// Double-check after acquiring write lock
	if c.store[st] != nil {
		return c.store[st]
	}

	src := GetSoundEffect(st, c.config)
	if src == nil {
		return nil
	}
	buf = beep.NewBuffer(c.format)
	buf.Append(src)
	c.store[st] = buf
	return buf
}

// preload renders the cues heard during play
func (c *soundCache) preload() {
	c.buffer(SoundLaser)
	c.buffer(SoundExplosion)
}
