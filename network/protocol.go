package network

import (
	"github.com/lixenwraith/tank-pusher/config"
	"github.com/lixenwraith/tank-pusher/engine"
)

// ProtocolVersion is bumped on any incompatible message change
const ProtocolVersion = 1

// MessageType identifies the semantic meaning of a message
type MessageType string

const (
	// Server to client
	MsgHello MessageType = "hello" // first message after upgrade
	MsgFrame MessageType = "frame" // one session step

	// Client to server
	MsgKey MessageType = "key" // key down or up, honored only with remote input
)

// Envelope is decoded first to route a client message by type
type Envelope struct {
	Type MessageType `json:"type"`
}

// HelloMsg greets a new spectator
type HelloMsg struct {
	Type            MessageType  `json:"type"`
	ProtocolVersion int          `json:"protocol_version"`
	PeerID          string       `json:"peer_id"`
	RemoteInput     bool         `json:"remote_input"`
	Scene           config.Scene `json:"scene"`
}

// FrameMsg carries one frame
type FrameMsg struct {
	Type  MessageType  `json:"type"`
	Frame engine.Frame `json:"frame"`
}

// KeyMsg presses or releases one key; names follow input.NormalizeKey
type KeyMsg struct {
	Type MessageType `json:"type"`
	Key  string      `json:"key"`
	Down bool        `json:"down"`
}

// SceneResponse is the bootstrap document served at /scene
type SceneResponse struct {
	ProtocolVersion int            `json:"protocol_version"`
	Scene           config.Scene   `json:"scene"`
	Frame           *engine.Frame  `json:"frame,omitempty"`
	Status          map[string]any `json:"status"`
}
