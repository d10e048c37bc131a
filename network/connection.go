package network

import (
	"errors"
	"sync"
	"sync/atomic"
	"time"

	"github.com/gorilla/websocket"
)

// PeerID uniquely identifies a connected observer
type PeerID uint32

// ErrMaxPeers is returned when the observer limit is reached
var ErrMaxPeers = errors.New("max observers reached")

// Peer is one observer connection
// Frames are queued on sendCh and dropped when the observer falls behind
type Peer struct {
	ID       PeerID
	Addr     string
	LastSeen atomic.Int64 // UnixNano
	Dropped  atomic.Int64

	conn   *websocket.Conn
	config *Config

	sendCh chan []byte

	closeCh   chan struct{}
	closeOnce sync.Once
}

func newPeer(id PeerID, conn *websocket.Conn, cfg *Config) *Peer {
	p := &Peer{
		ID:      id,
		Addr:    conn.RemoteAddr().String(),
		conn:    conn,
		config:  cfg,
		sendCh:  make(chan []byte, cfg.SendQueueSize),
		closeCh: make(chan struct{}),
	}
	p.LastSeen.Store(time.Now().UnixNano())
	return p
}

// Send queues a frame; returns false if the peer is closed or its queue is full
func (p *Peer) Send(data []byte) bool {
	select {
	case <-p.closeCh:
		return false
	default:
	}

	select {
	case p.sendCh <- data:
		return true
	default:
		p.Dropped.Add(1)
		return false
	}
}

// Close sends a close frame and tears down the connection; safe to call repeatedly
func (p *Peer) Close() {
	p.closeOnce.Do(func() {
		close(p.closeCh)
		p.conn.WriteControl(websocket.CloseMessage,
			websocket.FormatCloseMessage(websocket.CloseGoingAway, ""),
			time.Now().Add(time.Second))
		p.conn.Close()
	})
}

// Done is closed once the peer shuts down
func (p *Peer) Done() <-chan struct{} {
	return p.closeCh
}

// readLoop discards inbound data; observers cannot influence the simulation
// Reading is still needed to process pongs and detect close
func (p *Peer) readLoop() {
	defer p.Close()

	p.conn.SetReadLimit(p.config.ReadLimit)
	p.conn.SetReadDeadline(time.Now().Add(p.config.PongTimeout))
	p.conn.SetPongHandler(func(string) error {
		p.LastSeen.Store(time.Now().UnixNano())
		return p.conn.SetReadDeadline(time.Now().Add(p.config.PongTimeout))
	})

	for {
		if _, _, err := p.conn.ReadMessage(); err != nil {
			return
		}
		p.LastSeen.Store(time.Now().UnixNano())
	}
}

// writeLoop sends queued frames and keepalive pings
func (p *Peer) writeLoop() {
	ticker := time.NewTicker(p.config.PingInterval)
	defer func() {
		ticker.Stop()
		p.Close()
	}()

	for {
		select {
		case <-p.closeCh:
			return
		case data := <-p.sendCh:
			p.conn.SetWriteDeadline(time.Now().Add(p.config.WriteTimeout))
			if err := p.conn.WriteMessage(websocket.BinaryMessage, data); err != nil {
				return
			}
		case <-ticker.C:
			p.conn.SetWriteDeadline(time.Now().Add(p.config.WriteTimeout))
			if err := p.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}

// PeerManager tracks observer connections
type PeerManager struct {
	mu       sync.RWMutex
	peers    map[PeerID]*Peer
	nextID   atomic.Uint32
	maxPeers int
	config   *Config
	wg       sync.WaitGroup

	onCountChange func(int)
}

// NewPeerManager creates a peer manager
func NewPeerManager(cfg *Config) *PeerManager {
	return &PeerManager{
		peers:    make(map[PeerID]*Peer),
		maxPeers: cfg.MaxPeers,
		config:   cfg,
	}
}

// SetCountHandler is called with the new observer count after every connect and disconnect
func (pm *PeerManager) SetCountHandler(fn func(int)) {
	pm.onCountChange = fn
}

// Add registers an upgraded connection and starts its pumps
func (pm *PeerManager) Add(conn *websocket.Conn) (PeerID, error) {
	pm.mu.Lock()
	if len(pm.peers) >= pm.maxPeers {
		pm.mu.Unlock()
		conn.WriteControl(websocket.CloseMessage,
			websocket.FormatCloseMessage(websocket.CloseTryAgainLater, ErrMaxPeers.Error()),
			time.Now().Add(pm.config.WriteTimeout))
		conn.Close()
		return 0, ErrMaxPeers
	}

	id := PeerID(pm.nextID.Add(1))
	peer := newPeer(id, conn, pm.config)
	pm.peers[id] = peer
	count := len(pm.peers)
	pm.mu.Unlock()

	pm.wg.Add(3)
	go func() { defer pm.wg.Done(); peer.readLoop() }()
	go func() { defer pm.wg.Done(); peer.writeLoop() }()
	go func() { defer pm.wg.Done(); pm.monitorPeer(peer) }()

	pm.notify(count)
	return id, nil
}

// monitorPeer removes the peer once it closes
func (pm *PeerManager) monitorPeer(peer *Peer) {
	<-peer.Done()

	pm.mu.Lock()
	delete(pm.peers, peer.ID)
	count := len(pm.peers)
	pm.mu.Unlock()

	pm.notify(count)
}

func (pm *PeerManager) notify(count int) {
	if pm.onCountChange != nil {
		pm.onCountChange(count)
	}
}

// Broadcast queues data on every peer and returns how many accepted it
func (pm *PeerManager) Broadcast(data []byte) int {
	pm.mu.RLock()
	defer pm.mu.RUnlock()

	sent := 0
	for _, peer := range pm.peers {
		if peer.Send(data) {
			sent++
		}
	}
	return sent
}

// PeerCount returns current connected peer count
func (pm *PeerManager) PeerCount() int {
	pm.mu.RLock()
	defer pm.mu.RUnlock()
	return len(pm.peers)
}

// Close disconnects all peers and waits for their pumps to exit
func (pm *PeerManager) Close() {
	pm.mu.RLock()
	for _, peer := range pm.peers {
		peer.Close()
	}
	pm.mu.RUnlock()
	pm.wg.Wait()
}
