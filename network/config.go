package network

import (
	"time"

	"github.com/lixenwraith/void-drift/config"
	"github.com/lixenwraith/void-drift/parameter"
)

// Config holds observer server configuration
type Config struct {
	// Address to bind; empty disables the observer
	Address string

	// Path is the websocket endpoint
	Path string

	// Connection limits
	MaxPeers  int
	ReadLimit int64

	// Timing
	WriteTimeout    time.Duration
	PingInterval    time.Duration
	PongTimeout     time.Duration
	ShutdownTimeout time.Duration

	// Buffer sizes
	ReadBufferSize  int
	WriteBufferSize int
	SendQueueSize   int
}

// DefaultConfig returns defaults with the observer disabled
func DefaultConfig() *Config {
	return &Config{
		Address:         "",
		Path:            parameter.ObserverPath,
		MaxPeers:        16,
		ReadLimit:       512,
		WriteTimeout:    5 * time.Second,
		PingInterval:    10 * time.Second,
		PongTimeout:     30 * time.Second,
		ShutdownTimeout: 2 * time.Second,
		ReadBufferSize:  1024,
		WriteBufferSize: 64 * 1024,
		SendQueueSize:   parameter.ObserverSendBuffer,
	}
}

// ConfigFromTuning overlays the tuning observer block on the defaults
func ConfigFromTuning(o config.Observer) *Config {
	cfg := DefaultConfig()
	cfg.Address = o.Addr
	if o.SendBuffer > 0 {
		cfg.SendQueueSize = o.SendBuffer
	}
	return cfg
}

// Enabled reports whether an address is configured
func (c *Config) Enabled() bool {
	return c != nil && c.Address != ""
}
