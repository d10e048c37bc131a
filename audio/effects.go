package audio

import (
	"math"
	"math/rand"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
)

// WaveType defines oscillator wave shapes
type WaveType int

const (
	WaveSine WaveType = iota
	WaveSquare
	WaveSaw
	WaveNoise
)

// Cue timings
const (
	laserDuration = 90 * time.Millisecond
	laserAttack   = 2 * time.Millisecond
	laserRelease  = 60 * time.Millisecond

	explosionDuration = 350 * time.Millisecond
	explosionAttack   = 5 * time.Millisecond
	explosionRelease  = 300 * time.Millisecond

	shipDestroyedDuration = 900 * time.Millisecond
	shipDestroyedRelease  = 800 * time.Millisecond

	chimeNoteDuration = 110 * time.Millisecond
	chimeAttack       = 5 * time.Millisecond
	chimeRelease      = 80 * time.Millisecond
)

// oscillator generates a raw wave whose frequency glides linearly from freq to endFreq
type oscillator struct {
	freq     float64
	endFreq  float64
	phase    float64
	duration int
	position int
	wave     WaveType
	rate     beep.SampleRate
}

// NewOscillator creates a constant-pitch oscillator
func NewOscillator(freq float64, duration time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	return NewSweep(freq, freq, duration, wave, rate)
}

// NewSweep creates an oscillator gliding from one frequency to another over duration
func NewSweep(from, to float64, duration time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	return &oscillator{
		freq:     from,
		endFreq:  to,
		duration: rate.N(duration),
		wave:     wave,
		rate:     rate,
	}
}

func (o *oscillator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if o.position >= o.duration {
			return i, i > 0
		}

		var val float64
		switch o.wave {
		case WaveSine:
			val = math.Sin(2 * math.Pi * o.phase)
		case WaveSquare:
			if o.phase < 0.5 {
				val = 1.0
			} else {
				val = -1.0
			}
		case WaveSaw:
			val = 2.0 * (o.phase - 0.5)
		case WaveNoise:
			val = rand.Float64()*2 - 1
		}

		samples[i][0] = val
		samples[i][1] = val

		freq := o.freq
		if o.endFreq != o.freq && o.duration > 0 {
			freq += (o.endFreq - o.freq) * float64(o.position) / float64(o.duration)
		}
		o.phase += freq / float64(o.rate)
		o.phase -= math.Floor(o.phase)
		o.position++
	}
	return len(samples), true
}

func (o *oscillator) Err() error { return nil }

// envelope applies linear attack/release shaping to a stream
type envelope struct {
	streamer       beep.Streamer
	position       int
	attackSamples  int
	releaseSamples int
	sustainSamples int
	totalSamples   int
}

// NewEnvelope wraps s with an attack/sustain/release gain curve
func NewEnvelope(s beep.Streamer, duration, attack, release time.Duration, rate beep.SampleRate) beep.Streamer {
	total := rate.N(duration)
	att := rate.N(attack)
	rel := rate.N(release)
	sus := total - att - rel
	if sus < 0 {
		sus = 0
	}

	return &envelope{
		streamer:       s,
		attackSamples:  att,
		releaseSamples: rel,
		sustainSamples: sus,
		totalSamples:   total,
	}
}

func (e *envelope) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = e.streamer.Stream(samples)

	for i := 0; i < n; i++ {
		if e.position >= e.totalSamples {
			return i, i > 0
		}

		vol := 1.0
		if e.position < e.attackSamples && e.attackSamples > 0 {
			vol = float64(e.position) / float64(e.attackSamples)
		}
		releaseStart := e.attackSamples + e.sustainSamples
		if e.position >= releaseStart && e.releaseSamples > 0 {
			vol = float64(e.totalSamples-e.position) / float64(e.releaseSamples)
			if vol < 0 {
				vol = 0
			}
		}

		samples[i][0] *= vol
		samples[i][1] *= vol
		e.position++
	}

	return n, ok
}

func (e *envelope) Err() error { return e.streamer.Err() }

// newVolume scales s linearly; math.Log2(0) is -Inf so zero maps to silent
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol)}
}

func tone(freq float64, wave WaveType, rate beep.SampleRate) beep.Streamer {
	osc := NewOscillator(freq, chimeNoteDuration, wave, rate)
	return NewEnvelope(osc, chimeNoteDuration, chimeAttack, chimeRelease, rate)
}

// CreateLaserSound is a fast falling square zap
func CreateLaserSound(cfg *AudioConfig) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)
	osc := NewSweep(1400, 300, laserDuration, WaveSquare, rate)
	shaped := NewEnvelope(osc, laserDuration, laserAttack, laserRelease, rate)
	return newVolume(shaped, cfg.EffectVolumes[SoundLaser])
}

// CreateExplosionSound is a noise burst over a low rumble
func CreateExplosionSound(cfg *AudioConfig) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)

	noise := NewEnvelope(NewOscillator(0, explosionDuration, WaveNoise, rate),
		explosionDuration, explosionAttack, explosionRelease, rate)
	rumble := NewEnvelope(NewSweep(90, 40, explosionDuration, WaveSine, rate),
		explosionDuration, explosionAttack, explosionRelease, rate)

	// Take bounds the mix to the cue length
	mixed := beep.Take(rate.N(explosionDuration), beep.Mix(newVolume(noise, 0.6), newVolume(rumble, 0.4)))
	return newVolume(mixed, cfg.EffectVolumes[SoundExplosion])
}

// CreateShipDestroyedSound is a long noise tail with a descending saw
func CreateShipDestroyedSound(cfg *AudioConfig) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)

	noise := NewEnvelope(NewOscillator(0, shipDestroyedDuration, WaveNoise, rate),
		shipDestroyedDuration, explosionAttack, shipDestroyedRelease, rate)
	fall := NewEnvelope(NewSweep(220, 30, shipDestroyedDuration, WaveSaw, rate),
		shipDestroyedDuration, explosionAttack, shipDestroyedRelease, rate)

	mixed := beep.Take(rate.N(shipDestroyedDuration), beep.Mix(newVolume(noise, 0.5), newVolume(fall, 0.5)))
	return newVolume(mixed, cfg.EffectVolumes[SoundShipDestroyed])
}

// CreateShieldSound is a rising two-note chime (C5, G5)
func CreateShieldSound(cfg *AudioConfig) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)
	seq := beep.Seq(tone(523.25, WaveSine, rate), tone(783.99, WaveSine, rate))
	return newVolume(seq, cfg.EffectVolumes[SoundShield])
}

// CreatePauseSound is a single falling blip
func CreatePauseSound(cfg *AudioConfig) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)
	seq := beep.Seq(tone(659.25, WaveSine, rate), tone(440, WaveSine, rate))
	return newVolume(seq, cfg.EffectVolumes[SoundPause])
}

// CreateResumeSound mirrors the pause blip upward
func CreateResumeSound(cfg *AudioConfig) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)
	seq := beep.Seq(tone(440, WaveSine, rate), tone(659.25, WaveSine, rate))
	return newVolume(seq, cfg.EffectVolumes[SoundResume])
}

// CreateRestartSound is a square arpeggio (A4, C#5, E5)
func CreateRestartSound(cfg *AudioConfig) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)
	seq := beep.Seq(
		tone(440, WaveSquare, rate),
		tone(554.37, WaveSquare, rate),
		tone(659.25, WaveSquare, rate),
	)
	return newVolume(seq, cfg.EffectVolumes[SoundRestart])
}

// GetSoundEffect returns the streamer for soundType, nil if unknown
func GetSoundEffect(soundType SoundType, cfg *AudioConfig) beep.Streamer {
	switch soundType {
	case SoundLaser:
		return CreateLaserSound(cfg)
	case SoundExplosion:
		return CreateExplosionSound(cfg)
	case SoundShipDestroyed:
		return CreateShipDestroyedSound(cfg)
	case SoundShield:
		return CreateShieldSound(cfg)
	case SoundPause:
		return CreatePauseSound(cfg)
	case SoundResume:
		return CreateResumeSound(cfg)
	case SoundRestart:
		return CreateRestartSound(cfg)
	default:
		return nil
	}
}
