package network

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"

	"github.com/lixenwraith/void-drift/config"
	"github.com/lixenwraith/void-drift/status"
)

func testConfig() *Config {
	cfg := DefaultConfig()
	cfg.Address = "127.0.0.1:0"
	cfg.MaxPeers = 2
	cfg.SendQueueSize = 2
	cfg.ShutdownTimeout = time.Second
	return cfg
}

// waitFor polls cond until it holds or the deadline passes
func waitFor(t *testing.T, what string, cond func() bool) {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		if cond() {
			return
		}
		time.Sleep(5 * time.Millisecond)
	}
	t.Fatalf("timed out waiting for %s", what)
}

func dial(t *testing.T, addr, path string) *websocket.Conn {
	t.Helper()
	conn, _, err := websocket.DefaultDialer.Dial("ws://"+addr+path, nil)
	if err != nil {
		t.Fatalf("dial: %v", err)
	}
	return conn
}

// TestServiceDisabledByDefault verifies an empty address never binds
func TestServiceDisabledByDefault(t *testing.T) {
	svc := NewService()
	if err := svc.Init(); err != nil {
		t.Fatal(err)
	}
	if err := svc.Start(); err != nil {
		t.Fatal(err)
	}
	if svc.IsRunning() || svc.Addr() != "" {
		t.Error("disabled observer should not serve")
	}
	w, _ := newObservedWorld(t)
	svc.PublishFrame(w)
	if err := svc.Stop(); err != nil {
		t.Fatal(err)
	}
}

// TestServiceStreamsFrames verifies a connected observer receives decodable frames
func TestServiceStreamsFrames(t *testing.T) {
	w, sched := newObservedWorld(t)

	svc := NewService()
	if err := svc.Init(testConfig()); err != nil {
		t.Fatal(err)
	}
	svc.Attach(w, sched)
	if err := svc.Start(); err != nil {
		t.Fatal(err)
	}
	defer svc.Stop()

	conn := dial(t, svc.Addr(), DefaultConfig().Path)
	defer conn.Close()

	observers := w.Resources.Status.Ints.Get(status.KeyObservers)
	waitFor(t, "observer registration", func() bool { return observers.Load() == 1 })

	sched.Tick(16 * time.Millisecond)
	svc.PublishFrame(w)

	conn.SetReadDeadline(time.Now().Add(2 * time.Second))
	kind, data, err := conn.ReadMessage()
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if kind != websocket.BinaryMessage {
		t.Errorf("message type %d, want binary", kind)
	}
	f, err := DecodeFrame(data)
	if err != nil {
		t.Fatal(err)
	}
	if f.Tick != 1 || f.State != "InPlay" || len(f.Entities) != 1 || f.Entities[0].Kind != "spaceship" {
		t.Errorf("frame = %+v", f)
	}

	conn.Close()
	waitFor(t, "observer removal", func() bool { return observers.Load() == 0 })
}

// TestObserverInputIgnored verifies client messages never reach the simulation
func TestObserverInputIgnored(t *testing.T) {
	w, sched := newObservedWorld(t)
	tr := NewTransport(testConfig())
	srv := httptest.NewServer(tr.Handler())
	defer srv.Close()
	defer tr.peers.Close()

	conn := dial(t, strings.TrimPrefix(srv.URL, "http://"), DefaultConfig().Path)
	defer conn.Close()
	waitFor(t, "peer", func() bool { return tr.PeerCount() == 1 })

	before := w.EntityCount()
	if err := conn.WriteMessage(websocket.TextMessage, []byte("fire")); err != nil {
		t.Fatal(err)
	}
	sched.Tick(16 * time.Millisecond)
	if w.EntityCount() != before {
		t.Error("observer message changed the world")
	}
	if tr.PeerCount() != 1 {
		t.Error("observer should stay connected after sending data")
	}
}

// TestMaxPeers verifies observers beyond the limit are refused
func TestMaxPeers(t *testing.T) {
	tr := NewTransport(testConfig())
	srv := httptest.NewServer(tr.Handler())
	defer srv.Close()
	defer tr.peers.Close()
	addr := strings.TrimPrefix(srv.URL, "http://")

	for i := 0; i < 2; i++ {
		c := dial(t, addr, DefaultConfig().Path)
		defer c.Close()
	}
	waitFor(t, "two peers", func() bool { return tr.PeerCount() == 2 })

	_, resp, err := websocket.DefaultDialer.Dial("ws://"+addr+DefaultConfig().Path, nil)
	if err == nil {
		t.Fatal("third observer should be refused")
	}
	if resp == nil || resp.StatusCode != http.StatusServiceUnavailable {
		t.Errorf("refusal response = %v, want 503", resp)
	}
}

// TestSlowObserverDropsFrames verifies a full queue drops instead of blocking
func TestSlowObserverDropsFrames(t *testing.T) {
	cfg := testConfig()
	peers := make(chan *Peer, 1)
	upgrader := websocket.Upgrader{}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			return
		}
		// No pumps: nothing drains the queue
		peers <- newPeer(1, conn, cfg)
	}))
	defer srv.Close()

	conn := dial(t, strings.TrimPrefix(srv.URL, "http://"), "/")
	defer conn.Close()
	p := <-peers
	defer p.Close()

	frame := []byte{1}
	if !p.Send(frame) || !p.Send(frame) {
		t.Fatal("queue should accept up to its capacity")
	}
	if p.Send(frame) {
		t.Error("send on a full queue should drop")
	}
	if p.Dropped.Load() != 1 {
		t.Errorf("dropped = %d, want 1", p.Dropped.Load())
	}

	p.Close()
	if p.Send(frame) {
		t.Error("send after close should fail")
	}
}

// TestConfigFromTuning verifies the tuning block enables the observer
func TestConfigFromTuning(t *testing.T) {
	if DefaultConfig().Enabled() {
		t.Error("default config should be disabled")
	}

	cfg := ConfigFromTuning(config.Observer{Addr: ":9000", SendBuffer: 3})
	if !cfg.Enabled() || cfg.Address != ":9000" || cfg.SendQueueSize != 3 {
		t.Errorf("config = %+v", cfg)
	}
	if cfg := ConfigFromTuning(config.Observer{}); cfg.Enabled() || cfg.SendQueueSize != DefaultConfig().SendQueueSize {
		t.Errorf("empty tuning should keep defaults, got %+v", cfg)
	}
}
