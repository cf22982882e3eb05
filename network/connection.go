package network

import (
	"sync"
	"time"

	"github.com/gorilla/websocket"
)

// Peer is one connected spectator
type Peer struct {
	ID   string
	Addr string

	conn *websocket.Conn

	// Send queue
	sendCh chan []byte

	// Lifecycle
	closeCh   chan struct{}
	closeOnce sync.Once
}

func newPeer(id string, conn *websocket.Conn, sendQueueSize int) *Peer {
	return &Peer{
		ID:      id,
		Addr:    conn.RemoteAddr().String(),
		conn:    conn,
		sendCh:  make(chan []byte, sendQueueSize),
		closeCh: make(chan struct{}),
	}
}

// Send queues a message for transmission
// Returns false if the peer is closed or its queue is full
func (p *Peer) Send(b []byte) bool {
	select {
	case <-p.closeCh:
		return false
	default:
	}

	select {
	case p.sendCh <- b:
		return true
	default:
		return false
	}
}

// Close stops the writer and closes the socket
func (p *Peer) Close() {
	p.closeOnce.Do(func() {
		close(p.closeCh)
		if p.conn != nil {
			p.conn.Close()
		}
	})
}

// writeLoop drains the send queue until the peer closes or a write fails
func (p *Peer) writeLoop(timeout time.Duration, done chan<- error) {
	for {
		select {
		case <-p.closeCh:
			done <- nil
			return
		case b := <-p.sendCh:
			_ = p.conn.SetWriteDeadline(time.Now().Add(timeout))
			if err := p.conn.WriteMessage(websocket.TextMessage, b); err != nil {
				done <- err
				return
			}
		}
	}
}
