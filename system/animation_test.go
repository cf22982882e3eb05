package system

import (
	"testing"
	"time"

	"github.com/lixenwraith/tank-pusher/animation"
	"github.com/lixenwraith/tank-pusher/component"
)

// recordingAction logs the collaborator calls the state machine makes
type recordingAction struct {
	name      string
	calls     []string
	enabled   bool
	timeScale float64
	fadedTo   animation.Action
}

func (a *recordingAction) Play() { a.calls = append(a.calls, "play") }
func (a *recordingAction) Stop() { a.calls = append(a.calls, "stop") }
func (a *recordingAction) CrossFadeTo(target animation.Action, _ float64, _ bool) {
	a.calls = append(a.calls, "crossfade")
	a.fadedTo = target
}
func (a *recordingAction) SetEnabled(enabled bool)         { a.enabled = enabled }
func (a *recordingAction) Enabled() bool                   { return a.enabled }
func (a *recordingAction) SetEffectiveTimeScale(s float64) { a.timeScale = s }
func (a *recordingAction) SetEffectiveWeight(float64)      {}
func (a *recordingAction) SetTimeScale(s float64)          { a.timeScale = s }
func (a *recordingAction) TimeScale() float64              { return a.timeScale }

func (a *recordingAction) count(call string) int {
	n := 0
	for _, c := range a.calls {
		if c == call {
			n++
		}
	}
	return n
}

const frame = 16 * time.Millisecond

func TestAnimationInitialIdlePlaysOnly(t *testing.T) {
	idle, run := &recordingAction{name: "idle"}, &recordingAction{name: "run"}
	s, err := NewAnimationSystem(idle, run, 0.2)
	if err != nil {
		t.Fatal(err)
	}
	if s.State() != component.AnimIdle {
		t.Errorf("initial state = %v", s.State())
	}
	if idle.count("play") != 1 || idle.count("crossfade") != 0 || len(run.calls) != 0 {
		t.Errorf("idle=%v run=%v", idle.calls, run.calls)
	}
}

func TestAnimationEdgeTriggered(t *testing.T) {
	idle, run := &recordingAction{name: "idle"}, &recordingAction{name: "run"}
	s, _ := NewAnimationSystem(idle, run, 0.2)
	c := &component.CharacterState{}

	held := MoveResult{Moving: true, PlaybackRate: 1}
	fired := 0
	for i := 0; i < 30; i++ {
		if s.Update(c, held, frame) {
			fired++
		}
	}
	if fired != 1 || c.Anim != component.AnimRunning {
		t.Fatalf("Idle->Running fired %d times, state %v", fired, c.Anim)
	}
	if run.count("play") != 1 || idle.count("crossfade") != 1 || idle.fadedTo != run {
		t.Errorf("idle=%v run=%v", idle.calls, run.calls)
	}

	fired = 0
	for i := 0; i < 30; i++ {
		if s.Update(c, MoveResult{}, frame) {
			fired++
		}
	}
	if fired != 1 || c.Anim != component.AnimIdle {
		t.Fatalf("Running->Idle fired %d times, state %v", fired, c.Anim)
	}
	if run.count("crossfade") != 1 || run.fadedTo != idle {
		t.Errorf("run=%v", run.calls)
	}
	if run.count("stop") != 0 {
		t.Error("previous action should not be stopped")
	}
	if s.Transitions() != 2 {
		t.Errorf("Transitions = %d, want 2", s.Transitions())
	}
}

func TestAnimationTurnOnlyRuns(t *testing.T) {
	idle, run := &recordingAction{}, &recordingAction{}
	s, _ := NewAnimationSystem(idle, run, 0.2)

	s.Update(nil, MoveResult{Moving: true}, frame)
	if s.State() != component.AnimRunning {
		t.Errorf("state = %v, want running", s.State())
	}
	if run.timeScale != 1 {
		t.Errorf("turn-only rate = %v, want 1", run.timeScale)
	}
}

func TestAnimationBackwardRateSurvivesEntry(t *testing.T) {
	idle, run := &recordingAction{}, &recordingAction{}
	s, _ := NewAnimationSystem(idle, run, 0.2)

	s.Update(nil, MoveResult{Moving: true, PlaybackRate: -1}, frame)
	if run.timeScale != -1 {
		t.Errorf("run time scale = %v, want -1", run.timeScale)
	}

	// Turn-only frames keep the last requested rate
	s.Update(nil, MoveResult{Moving: true}, frame)
	if run.timeScale != -1 {
		t.Errorf("run time scale = %v after turn-only frame, want -1", run.timeScale)
	}
}

func TestAnimationWithClipMixer(t *testing.T) {
	mixer := animation.NewMixer()
	idle := mixer.ClipAction(animation.Clip{Name: "idle", Duration: 2.4})
	run := mixer.ClipAction(animation.Clip{Name: "run", Duration: 0.8})
	s, err := NewAnimationSystem(idle, run, 0.2)
	if err != nil {
		t.Fatal(err)
	}

	if !idle.Running() || run.Running() {
		t.Fatalf("idle running=%v run running=%v", idle.Running(), run.Running())
	}

	s.Update(nil, MoveResult{Moving: true, PlaybackRate: 1.6}, frame)
	mixer.Update(0.1)
	w := mixer.Weights()
	if w["idle"] <= 0 || w["run"] <= 0 {
		t.Errorf("mid-blend weights = %v, want both contributing", w)
	}

	mixer.Update(0.2)
	w = mixer.Weights()
	if w["idle"] != 0 || w["run"] != 1 {
		t.Errorf("settled weights = %v, want run only", w)
	}
	if run.EffectiveTimeScale() != 1.6 {
		t.Errorf("run rate = %v, want 1.6", run.EffectiveTimeScale())
	}
}
