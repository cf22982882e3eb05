package engine

import (
	"fmt"
	"time"

	"github.com/lixenwraith/tank-pusher/animation"
	"github.com/lixenwraith/tank-pusher/camera"
	"github.com/lixenwraith/tank-pusher/component"
	"github.com/lixenwraith/tank-pusher/config"
	"github.com/lixenwraith/tank-pusher/input"
	"github.com/lixenwraith/tank-pusher/parameter"
	"github.com/lixenwraith/tank-pusher/physics"
	"github.com/lixenwraith/tank-pusher/scene"
	"github.com/lixenwraith/tank-pusher/status"
	"github.com/lixenwraith/tank-pusher/system"
	"github.com/lixenwraith/tank-pusher/vmath"
)

// Clips played by the character
var (
	IdleClip = animation.Clip{Name: "idle", Duration: parameter.IdleClipSeconds}
	RunClip  = animation.Clip{Name: "run", Duration: parameter.RunClipSeconds}
)

// Session owns one loaded world and advances it frame by frame
// Step must be called from a single goroutine
type Session struct {
	Scene     config.Scene
	Registry  *physics.Registry
	Character *component.CharacterState
	Body      *scene.Node
	Walls     []*scene.Node
	Boxes     []*scene.Node

	Movement  *system.MovementSystem
	Animation *system.AnimationSystem
	Mixer     *animation.ClipMixer
	Camera    *camera.Rig

	Status  *status.Registry
	metrics *status.SessionMetrics

	boxObstacles []*physics.Obstacle
	observers    []FrameObserver

	seq     uint64
	elapsed time.Duration
}

// NewSession builds the registry, character and animation state for sc
// Scenes whose geometry is not finite, has inverted boxes or spawns the
// character inside an obstacle are rejected
func NewSession(sc config.Scene, reg *status.Registry) (*Session, error) {
	if reg == nil {
		reg = status.NewRegistry()
	}
	s := &Session{
		Scene:    sc,
		Registry: physics.NewRegistry(),
		Mixer:    animation.NewMixer(),
		Camera:   camera.NewRig(camera.ThirdPerson),
		Status:   reg,
		metrics:  status.NewSessionMetrics(reg),
	}

	s.Registry.SetWorldBounds(vmath.NewAABB(sc.Bounds.Min.Vec3(), sc.Bounds.Max.Vec3()))

	for i, w := range sc.Walls {
		n := scene.NewNode(objectName(w.Name, "wall", i), scene.KindWall, w.Position.Vec3(), w.Size.Vec3(), w.Yaw)
		s.Walls = append(s.Walls, n)
		s.Registry.RegisterObstacle(n, physics.KindStatic)
	}
	for i, b := range sc.Boxes {
		n := scene.NewNode(objectName(b.Name, "box", i), scene.KindBox, b.Position.Vec3(), b.Size.Vec3(), b.Yaw)
		s.Boxes = append(s.Boxes, n)
		s.boxObstacles = append(s.boxObstacles, s.Registry.RegisterObstacle(n, physics.KindPushable))
	}
	if err := s.Registry.Validate(); err != nil {
		return nil, fmt.Errorf("scene %q: %w", sc.Name, err)
	}

	ch := sc.Character
	collider := component.NewCollider(ch.Collider[0], ch.Collider[1], ch.Collider[2])
	s.Character = component.NewCharacterState(ch.Position.Vec3(), ch.Yaw, collider)
	if err := s.Registry.CheckClear(collider.At(s.Character.Position)); err != nil {
		return nil, fmt.Errorf("scene %q: character spawn: %w", sc.Name, err)
	}
	s.Body = scene.NewNode("character", scene.KindCharacter, s.Character.Position, ch.Collider.Vec3(), ch.Yaw)

	s.Movement = system.NewMovementSystem(s.Registry, system.MovementTuning{
		MoveSpeed:          sc.Tuning.MoveSpeed,
		SprintSpeed:        sc.Tuning.SprintSpeed,
		RotationSpeed:      sc.Tuning.RotationSpeed,
		SprintPlaybackRate: sc.Tuning.SprintPlaybackRate,
	})

	anim, err := system.NewAnimationSystem(s.Mixer.ClipAction(IdleClip), s.Mixer.ClipAction(RunClip), sc.Tuning.CrossFadeSeconds)
	if err != nil {
		return nil, fmt.Errorf("animation: %w", err)
	}
	s.Animation = anim

	s.metrics.AnimState.Store(s.Animation.State().String())
	s.metrics.View.Store(s.Camera.Mode().String())
	return s, nil
}

func objectName(name, kind string, i int) string {
	if name != "" {
		return name
	}
	return fmt.Sprintf("%s-%d", kind, i+1)
}

// AddObserver registers o to receive every subsequent frame
func (s *Session) AddObserver(o FrameObserver) {
	s.observers = append(s.observers, o)
}

// SetView selects the camera mode
func (s *Session) SetView(m camera.Mode) {
	s.Camera.SetMode(m)
	s.metrics.View.Store(m.String())
}

// ToggleView switches the camera mode
func (s *Session) ToggleView() camera.Mode {
	m := s.Camera.Toggle()
	s.metrics.View.Store(m.String())
	return m
}

// SetPaused publishes the pause state
func (s *Session) SetPaused(paused bool) {
	s.metrics.Paused.Store(paused)
}

// Step runs one frame: controller, animation machine, mixer, scene sync, observers
func (s *Session) Step(in input.Intent, dt time.Duration) Frame {
	sec := dt.Seconds()
	s.seq++
	s.elapsed += dt

	res := s.Movement.Update(s.Character, in, sec)
	changed := s.Animation.Update(s.Character, res, dt)
	s.Mixer.Update(sec)

	s.Body.Position = s.Character.Position
	s.Body.Yaw = s.Character.Yaw

	f := Frame{
		Seq:          s.seq,
		Delta:        dt,
		DT:           sec,
		Elapsed:      s.elapsed.Seconds(),
		Intent:       in,
		Position:     s.Character.Position,
		Yaw:          s.Character.Yaw,
		Anim:         s.Character.Anim.String(),
		Transition:   changed,
		PlaybackRate: s.Mixer.ClipAction(RunClip).EffectiveTimeScale(),
		Weights:      s.Mixer.Weights(),
		Boxes:        s.BoxStates(),
		Camera:       s.Camera.Follow(s.Character),
	}
	if res.Attempted {
		f.Outcome = res.Outcome.Kind.String()
		if res.Outcome.Kind == physics.Blocked {
			f.Reason = res.Outcome.Reason.String()
		}
		if res.Outcome.Obstacle != nil {
			f.Obstacle = res.Outcome.Obstacle.ID
		}
	}

	s.publish(f, res)
	for _, o := range s.observers {
		o.OnFrame(f)
	}
	return f
}

func (s *Session) publish(f Frame, res system.MoveResult) {
	m := s.metrics
	m.Frames.Store(int64(f.Seq))
	if f.DT > 0 {
		m.FPS.Set(1 / f.DT)
	}
	if res.Attempted {
		m.Outcome.Store(f.Outcome)
		switch {
		case res.Pushed():
			m.Pushes.Add(1)
			m.Moves.Add(1)
		case res.Committed():
			m.Moves.Add(1)
		default:
			m.Blocked.Add(1)
		}
	}
	m.AnimState.Store(f.Anim)
	m.Transitions.Store(int64(s.Animation.Transitions()))
}

// BoxStates returns the current pushable positions in registration order
func (s *Session) BoxStates() []BoxState {
	out := make([]BoxState, len(s.Boxes))
	for i, n := range s.Boxes {
		out[i] = BoxState{ID: s.boxObstacles[i].ID, Name: n.Name, Position: n.Position}
	}
	return out
}

// Seq returns the number of frames stepped
func (s *Session) Seq() uint64 {
	return s.seq
}

// Elapsed returns the simulated time
func (s *Session) Elapsed() time.Duration {
	return s.elapsed
}
