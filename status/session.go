package status

import "sync/atomic"

// Metric names published by a running session
const (
	MetricFrames      = "session.frames"
	MetricFPS         = "session.fps"
	MetricPaused      = "session.paused"
	MetricMoves       = "move.committed"
	MetricBlocked     = "move.blocked"
	MetricPushes      = "move.pushes"
	MetricOutcome     = "move.outcome"
	MetricAnimState   = "anim.state"
	MetricTransitions = "anim.transitions"
	MetricView        = "camera.view"
	MetricSpectators  = "net.spectators"
	MetricRecorded    = "replay.frames"
)

// SessionMetrics caches the pointers the frame loop writes every frame
type SessionMetrics struct {
	Frames      *atomic.Int64
	FPS         *AtomicFloat
	Paused      *atomic.Bool
	Moves       *atomic.Int64
	Blocked     *atomic.Int64
	Pushes      *atomic.Int64
	Outcome     *AtomicString
	AnimState   *AtomicString
	Transitions *atomic.Int64
	View        *AtomicString
}

// NewSessionMetrics registers the session metrics in r
func NewSessionMetrics(r *Registry) *SessionMetrics {
	return &SessionMetrics{
		Frames:      r.Ints.Get(MetricFrames),
		FPS:         r.Floats.Get(MetricFPS),
		Paused:      r.Bools.Get(MetricPaused),
		Moves:       r.Ints.Get(MetricMoves),
		Blocked:     r.Ints.Get(MetricBlocked),
		Pushes:      r.Ints.Get(MetricPushes),
		Outcome:     r.Strings.Get(MetricOutcome),
		AnimState:   r.Strings.Get(MetricAnimState),
		Transitions: r.Ints.Get(MetricTransitions),
		View:        r.Strings.Get(MetricView),
	}
}
