package replay

import (
	"errors"
	"fmt"
	"io"
	"math"
	"time"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/lixenwraith/tank-pusher/engine"
)

// positionTolerance absorbs float formatting round-trips through JSON
const positionTolerance = 1e-9

// Result summarizes a headless replay
type Result struct {
	SessionID string
	Frames    int
	Elapsed   time.Duration
	Position  mgl64.Vec3
	Yaw       float64
	Pushes    int
	Blocked   int
	Boxes     []engine.BoxState
}

// Run re-steps every entry of the recording at path against a fresh session
// Returns ErrDivergence when a stepped frame does not match its entry
func Run(path string) (Result, error) {
	r, err := Open(path)
	if err != nil {
		return Result{}, err
	}
	defer r.Close()

	s, err := engine.NewSession(r.Header.Scene, nil)
	if err != nil {
		return Result{}, fmt.Errorf("session: %w", err)
	}

	res := Result{SessionID: r.Header.SessionID}
	for {
		e, err := r.Next()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return res, err
		}

		f := s.Step(e.Intent, time.Duration(e.DT))
		if f.Seq != e.Seq || !near(f.Position, e.Position) || math.Abs(f.Yaw-e.Yaw) > positionTolerance || f.Outcome != e.Outcome {
			return res, fmt.Errorf("%w at frame %d: got %v yaw %v %q, recorded %v yaw %v %q",
				ErrDivergence, e.Seq, f.Position, f.Yaw, f.Outcome, e.Position, e.Yaw, e.Outcome)
		}

		res.Frames++
		switch {
		case f.Pushed():
			res.Pushes++
		case f.Blocked():
			res.Blocked++
		}
	}

	res.Elapsed = s.Elapsed()
	res.Position = s.Character.Position
	res.Yaw = s.Character.Yaw
	res.Boxes = s.BoxStates()
	return res, nil
}

func near(a, b mgl64.Vec3) bool {
	return a.ApproxEqualThreshold(b, positionTolerance)
}
