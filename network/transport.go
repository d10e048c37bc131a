package network

import (
	"context"
	"errors"
	"log"
	"net"
	"net/http"
	"sync"
	"sync/atomic"

	"github.com/gorilla/websocket"
)

// Transport serves the observer websocket endpoint
type Transport struct {
	config   *Config
	listener net.Listener
	server   *http.Server
	upgrader websocket.Upgrader
	peers    *PeerManager

	running atomic.Bool
	wg      sync.WaitGroup
}

// NewTransport creates a transport with the given configuration
func NewTransport(cfg *Config) *Transport {
	t := &Transport{
		config: cfg,
		peers:  NewPeerManager(cfg),
		upgrader: websocket.Upgrader{
			ReadBufferSize:  cfg.ReadBufferSize,
			WriteBufferSize: cfg.WriteBufferSize,
			// Observers are read-only; any origin may watch
			CheckOrigin: func(*http.Request) bool { return true },
		},
	}
	mux := http.NewServeMux()
	mux.HandleFunc(cfg.Path, t.handleUpgrade)
	t.server = &http.Server{Handler: mux}
	return t
}

// Handler exposes the endpoint for embedding in another server
func (t *Transport) Handler() http.Handler {
	return t.server.Handler
}

// SetCountHandler forwards observer count changes
func (t *Transport) SetCountHandler(fn func(int)) {
	t.peers.SetCountHandler(fn)
}

func (t *Transport) handleUpgrade(w http.ResponseWriter, r *http.Request) {
	if t.peers.PeerCount() >= t.config.MaxPeers {
		http.Error(w, ErrMaxPeers.Error(), http.StatusServiceUnavailable)
		return
	}
	conn, err := t.upgrader.Upgrade(w, r, nil)
	if err != nil {
		// Upgrade already replied with an HTTP error
		return
	}
	if _, err := t.peers.Add(conn); err != nil {
		log.Printf("observer: reject %s: %v", r.RemoteAddr, err)
	}
}

// Start binds the listener and serves in the background
func (t *Transport) Start() error {
	if !t.running.CompareAndSwap(false, true) {
		return nil // Already running
	}

	ln, err := net.Listen("tcp", t.config.Address)
	if err != nil {
		t.running.Store(false)
		return err
	}
	t.listener = ln

	t.wg.Add(1)
	go func() {
		defer t.wg.Done()
		if err := t.server.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Printf("observer: serve: %v", err)
		}
	}()
	return nil
}

// Addr returns the bound address, nil before Start
func (t *Transport) Addr() net.Addr {
	if t.listener == nil {
		return nil
	}
	return t.listener.Addr()
}

// Stop shuts the server down and disconnects every observer
func (t *Transport) Stop() error {
	if !t.running.CompareAndSwap(true, false) {
		return nil
	}

	ctx, cancel := context.WithTimeout(context.Background(), t.config.ShutdownTimeout)
	defer cancel()
	err := t.server.Shutdown(ctx)

	t.peers.Close()
	t.wg.Wait()
	return err
}

// Broadcast sends a frame to every observer
func (t *Transport) Broadcast(data []byte) int {
	return t.peers.Broadcast(data)
}

// PeerCount returns connected observer count
func (t *Transport) PeerCount() int {
	return t.peers.PeerCount()
}

// IsRunning returns transport state
func (t *Transport) IsRunning() bool {
	return t.running.Load()
}
