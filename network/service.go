package network

import (
	"log"
	"sync/atomic"

	"github.com/lixenwraith/void-drift/engine"
	"github.com/lixenwraith/void-drift/status"
)

// Service wraps Transport as a hub-managed observer stream
type Service struct {
	config    *Config
	transport *Transport

	statObservers atomic.Pointer[atomic.Int64]
	disabled      atomic.Bool
}

// NewService creates an observer service (disabled by default)
func NewService() *Service {
	return &Service{
		config: DefaultConfig(),
	}
}

// Name implements service.Service
func (s *Service) Name() string {
	return "observer"
}

// Dependencies implements service.Service
func (s *Service) Dependencies() []string {
	return nil
}

// Init implements service.Service
// args[0]: *Config (optional, overrides default)
func (s *Service) Init(args ...any) error {
	if len(args) > 0 {
		if cfg, ok := args[0].(*Config); ok && cfg != nil {
			s.config = cfg
		}
	}

	if !s.config.Enabled() {
		s.disabled.Store(true)
		return nil
	}

	s.transport = NewTransport(s.config)
	s.transport.SetCountHandler(s.onCountChange)
	return nil
}

// Start implements service.Service
func (s *Service) Start() error {
	if s.disabled.Load() || s.transport == nil {
		return nil
	}
	if err := s.transport.Start(); err != nil {
		return err
	}
	log.Printf("observer: listening on ws://%s%s", s.transport.Addr(), s.config.Path)
	return nil
}

// Stop implements service.Service
func (s *Service) Stop() error {
	if s.transport != nil {
		return s.transport.Stop()
	}
	return nil
}

// Attach implements service.WorldAttacher
func (s *Service) Attach(world *engine.World, _ *engine.Schedule) {
	s.statObservers.Store(world.Resources.Status.Ints.Get(status.KeyObservers))
}

// PublishFrame implements service.FramePublisher
// Frames are only built when someone is watching
func (s *Service) PublishFrame(world *engine.World) {
	if s.transport == nil || s.transport.PeerCount() == 0 {
		return
	}
	data, err := BuildFrame(world).Encode()
	if err != nil {
		log.Printf("observer: encode frame: %v", err)
		return
	}
	s.transport.Broadcast(data)
}

func (s *Service) onCountChange(n int) {
	if stat := s.statObservers.Load(); stat != nil {
		stat.Store(int64(n))
	}
}

// PeerCount returns connected observer count
func (s *Service) PeerCount() int {
	if s.transport == nil {
		return 0
	}
	return s.transport.PeerCount()
}

// Addr returns the bound listener address, empty when not serving
func (s *Service) Addr() string {
	if s.transport == nil || s.transport.Addr() == nil {
		return ""
	}
	return s.transport.Addr().String()
}

// IsRunning returns true if the observer endpoint is serving
func (s *Service) IsRunning() bool {
	return s.transport != nil && s.transport.IsRunning()
}
