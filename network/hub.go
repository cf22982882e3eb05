package network

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"net"
	"net/http"
	"sync"
	"sync/atomic"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"github.com/lixenwraith/tank-pusher/config"
	"github.com/lixenwraith/tank-pusher/engine"
	"github.com/lixenwraith/tank-pusher/input"
	"github.com/lixenwraith/tank-pusher/status"
)

// Hub streams frames to websocket spectators and optionally accepts their key input
// OnFrame is called from the frame loop; handlers run on server goroutines
type Hub struct {
	cfg    *Config
	scene  config.Scene
	status *status.Registry
	held   *input.HeldKeys
	log    *log.Logger

	upgrader websocket.Upgrader

	mu    sync.RWMutex
	peers map[string]*Peer

	latest     atomic.Pointer[engine.Frame]
	spectators *atomic.Int64
	dropped    atomic.Uint64

	now func() time.Time
}

// NewHub creates a hub for sc; held may be nil when remote input is disabled
func NewHub(cfg *Config, sc config.Scene, reg *status.Registry, held *input.HeldKeys, logger *log.Logger) *Hub {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	if reg == nil {
		reg = status.NewRegistry()
	}
	return &Hub{
		cfg:    cfg,
		scene:  sc,
		status: reg,
		held:   held,
		log:    logger,
		upgrader: websocket.Upgrader{
			ReadBufferSize:   cfg.ReadBufferSize,
			WriteBufferSize:  cfg.WriteBufferSize,
			HandshakeTimeout: cfg.HandshakeTimeout,
			CheckOrigin:      func(r *http.Request) bool { return true }, // dev default
		},
		peers:      make(map[string]*Peer),
		spectators: reg.Ints.Get(status.MetricSpectators),
		now:        time.Now,
	}
}

// Router mounts the health, bootstrap and stream routes
func (h *Hub) Router() http.Handler {
	r := chi.NewRouter()
	r.Get("/healthz", h.handleHealth)
	r.Get("/scene", h.handleScene)
	r.Get("/ws", h.handleWS)
	return r
}

// ListenAndServe serves Router on the configured address until ctx is cancelled
func (h *Hub) ListenAndServe(ctx context.Context) error {
	ln, err := net.Listen("tcp", h.cfg.Address)
	if err != nil {
		return err
	}
	h.log.Printf("spectator server listening on %s", ln.Addr())

	srv := &http.Server{Handler: h.Router(), ReadHeaderTimeout: h.cfg.HandshakeTimeout}
	errCh := make(chan error, 1)
	go func() { errCh <- srv.Serve(ln) }()

	select {
	case <-ctx.Done():
		h.Close()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	case err := <-errCh:
		h.Close()
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	}
}

// OnFrame broadcasts f to every peer; peers with a full queue miss the frame
func (h *Hub) OnFrame(f engine.Frame) {
	h.latest.Store(&f)

	h.mu.RLock()
	defer h.mu.RUnlock()
	if len(h.peers) == 0 {
		return
	}

	b, err := json.Marshal(FrameMsg{Type: MsgFrame, Frame: f})
	if err != nil {
		h.log.Printf("encode frame %d: %v", f.Seq, err)
		return
	}
	for _, p := range h.peers {
		if !p.Send(b) {
			h.dropped.Add(1)
		}
	}
}

// Peers returns the number of connected spectators
func (h *Hub) Peers() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.peers)
}

// Dropped returns the number of frames skipped for slow peers
func (h *Hub) Dropped() uint64 {
	return h.dropped.Load()
}

// Close disconnects every peer
func (h *Hub) Close() {
	h.mu.RLock()
	peers := make([]*Peer, 0, len(h.peers))
	for _, p := range h.peers {
		peers = append(peers, p)
	}
	h.mu.RUnlock()

	for _, p := range peers {
		p.Close()
	}
}

func (h *Hub) handleHealth(rw http.ResponseWriter, r *http.Request) {
	rw.Header().Set("Content-Type", "text/plain; charset=utf-8")
	_, _ = rw.Write([]byte("ok\n"))
}

// handleScene serves the bootstrap document; ?metrics=move. narrows the status group
func (h *Hub) handleScene(rw http.ResponseWriter, r *http.Request) {
	resp := SceneResponse{
		ProtocolVersion: ProtocolVersion,
		Scene:           h.scene,
		Frame:           h.latest.Load(),
		Status:          h.status.Group(r.URL.Query().Get("metrics")),
	}
	rw.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(rw).Encode(resp)
}

func (h *Hub) handleWS(rw http.ResponseWriter, r *http.Request) {
	if h.cfg.MaxPeers > 0 && h.Peers() >= h.cfg.MaxPeers {
		http.Error(rw, "server busy", http.StatusServiceUnavailable)
		return
	}

	conn, err := h.upgrader.Upgrade(rw, r, nil)
	if err != nil {
		return
	}

	p := newPeer(uuid.NewString(), conn, h.cfg.SendQueueSize)
	defer p.Close()

	hello, err := json.Marshal(HelloMsg{
		Type:            MsgHello,
		ProtocolVersion: ProtocolVersion,
		PeerID:          p.ID,
		RemoteInput:     h.remoteInput(),
		Scene:           h.scene,
	})
	if err != nil {
		h.log.Printf("encode hello: %v", err)
		return
	}
	// Queued before registration so it precedes every frame
	p.Send(hello)

	h.addPeer(p)
	defer h.removePeer(p)

	writeErr := make(chan error, 1)
	go p.writeLoop(h.cfg.WriteTimeout, writeErr)

	h.readLoop(p)

	_ = conn.WriteControl(websocket.CloseMessage, websocket.FormatCloseMessage(websocket.CloseNormalClosure, "bye"), time.Now().Add(time.Second))
	p.Close()

	select {
	case err := <-writeErr:
		if err != nil {
			h.log.Printf("spectator %s write: %v", p.ID, err)
		}
	case <-time.After(500 * time.Millisecond):
	}
}

// readLoop handles client messages until the connection fails or closes
func (h *Hub) readLoop(p *Peer) {
	for {
		if h.cfg.ReadTimeout > 0 {
			_ = p.conn.SetReadDeadline(time.Now().Add(h.cfg.ReadTimeout))
		}
		_, msg, err := p.conn.ReadMessage()
		if err != nil {
			return
		}

		var env Envelope
		if err := json.Unmarshal(msg, &env); err != nil {
			continue
		}
		switch env.Type {
		case MsgKey:
			var km KeyMsg
			if err := json.Unmarshal(msg, &km); err != nil {
				continue
			}
			h.applyKey(p, km)
		}
	}
}

func (h *Hub) remoteInput() bool {
	return h.cfg.RemoteInput && h.held != nil
}

// applyKey holds keys under the peer's own source, so its key-up leaves the
// terminal player and other peers holding theirs
func (h *Hub) applyKey(p *Peer, km KeyMsg) {
	if !h.remoteInput() {
		return
	}
	k := input.NormalizeKey(km.Key)
	if k == "" {
		return
	}
	src := h.held.Source(p.ID)
	if km.Down {
		src.KeyDownFor(k, h.now(), h.cfg.KeyHoldWindow)
		return
	}
	src.KeyUp(k)
}

func (h *Hub) addPeer(p *Peer) {
	h.mu.Lock()
	h.peers[p.ID] = p
	n := len(h.peers)
	h.mu.Unlock()

	h.spectators.Store(int64(n))
	h.log.Printf("spectator %s connected from %s", p.ID, p.Addr)
}

// removePeer releases the peer's keys before it stops counting as connected
func (h *Hub) removePeer(p *Peer) {
	if h.held != nil {
		h.held.Source(p.ID).Release()
	}

	h.mu.Lock()
	delete(h.peers, p.ID)
	n := len(h.peers)
	h.mu.Unlock()

	h.spectators.Store(int64(n))
	h.log.Printf("spectator %s disconnected", p.ID)
}
