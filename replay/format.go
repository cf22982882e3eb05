// Package replay records sessions as zstd-compressed JSON lines and replays them
// headlessly. The first line is a Header; every following line is one Entry
package replay

import (
	"errors"
	"time"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/lixenwraith/tank-pusher/config"
	"github.com/lixenwraith/tank-pusher/engine"
	"github.com/lixenwraith/tank-pusher/input"
)

// FormatVersion is bumped on incompatible line layout changes
const FormatVersion = 1

var (
	ErrNoHeader   = errors.New("recording has no header")
	ErrBadVersion = errors.New("unsupported recording version")
	ErrDivergence = errors.New("replay diverged from recording")
)

// Header starts every recording
type Header struct {
	Version   int          `json:"version"`
	SessionID string       `json:"session_id"`
	Started   time.Time    `json:"started"`
	Scene     config.Scene `json:"scene"`
}

// Entry is one recorded frame: the inputs needed to re-step it plus the result to check against
type Entry struct {
	Seq      uint64       `json:"seq"`
	DT       int64        `json:"dt_ns"`
	Intent   input.Intent `json:"intent"`
	Position mgl64.Vec3   `json:"position"`
	Yaw      float64      `json:"yaw"`
	Outcome  string       `json:"outcome,omitempty"`
}

func entryFromFrame(f engine.Frame) Entry {
	return Entry{
		Seq:      f.Seq,
		DT:       int64(f.Delta),
		Intent:   f.Intent,
		Position: f.Position,
		Yaw:      f.Yaw,
		Outcome:  f.Outcome,
	}
}
