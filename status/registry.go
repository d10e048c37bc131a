package status

import "sync/atomic"

// Metric keys shared by the simulation, HUD and observer
const (
	KeyTick          = "sim.tick"
	KeyRunState      = "sim.state"
	KeyShipHealth    = "ship.health"
	KeyShipShield    = "ship.shield"
	KeyShipAlive     = "ship.alive"
	KeyAsteroids     = "count.asteroids"
	KeyMissiles      = "count.missiles"
	KeyReaped        = "count.reaped"
	KeyAsteroidsShot = "score.asteroids"
	KeyFrameDelta    = "frame.dt"
	KeyAudioMuted    = "audio.muted"
	KeyObservers     = "observer.clients"
)

// Registry groups typed metric maps
// Systems cache pointers at construction and write atomics during Update
type Registry struct {
	Bools  *MetricMap[atomic.Bool]
	Ints   *MetricMap[atomic.Int64]
	Floats *MetricMap[AtomicFloat]
	Labels *MetricMap[AtomicLabel]
}

// NewRegistry creates an empty registry
func NewRegistry() *Registry {
	return &Registry{
		Bools:  NewMetricMap[atomic.Bool](),
		Ints:   NewMetricMap[atomic.Int64](),
		Floats: NewMetricMap[AtomicFloat](),
		Labels: NewMetricMap[AtomicLabel](),
	}
}

// TotalCount returns the number of metrics across all maps
func (r *Registry) TotalCount() int {
	return r.Bools.Count() + r.Ints.Count() + r.Floats.Count() + r.Labels.Count()
}

// Snapshot copies every metric into a plain map keyed by metric name
func (r *Registry) Snapshot() map[string]any {
	out := make(map[string]any, r.TotalCount())
	r.Bools.Range(func(k string, p *atomic.Bool) { out[k] = p.Load() })
	r.Ints.Range(func(k string, p *atomic.Int64) { out[k] = p.Load() })
	r.Floats.Range(func(k string, p *AtomicFloat) { out[k] = p.Get() })
	r.Labels.Range(func(k string, p *AtomicLabel) { out[k] = p.Load() })
	return out
}
