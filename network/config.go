package network

import (
	"time"

	"github.com/lixenwraith/tank-pusher/parameter"
)

// Config holds spectator server configuration
type Config struct {
	// Address to bind
	Address string

	// Connection limits
	MaxPeers int

	// Timing
	ReadTimeout      time.Duration
	WriteTimeout     time.Duration
	HandshakeTimeout time.Duration

	// Buffer sizes
	ReadBufferSize  int
	WriteBufferSize int
	SendQueueSize   int

	// RemoteInput lets clients hold movement keys
	RemoteInput bool

	// KeyHoldWindow releases a remote key-down that never sees its key-up
	KeyHoldWindow time.Duration
}

// DefaultConfig returns loopback-friendly defaults with remote input disabled
func DefaultConfig() *Config {
	return &Config{
		Address:          "127.0.0.1:7777",
		MaxPeers:         16,
		ReadTimeout:      60 * time.Second,
		WriteTimeout:     5 * time.Second,
		HandshakeTimeout: 5 * time.Second,
		ReadBufferSize:   4 * 1024,
		WriteBufferSize:  64 * 1024,
		SendQueueSize:    64,
		KeyHoldWindow:    parameter.RemoteKeyHoldWindow,
	}
}
