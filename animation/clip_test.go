package animation

import (
	"math"
	"testing"
)


func near(a, b float64) bool { return math.Abs(a-b) < 1e-6 }

func newPair() (*ClipMixer, *ClipAction, *ClipAction) {
	m := NewMixer()
	idle := m.ClipAction(Clip{Name: "idle", Duration: 2.4})
	run := m.ClipAction(Clip{Name: "run", Duration: 0.8})
	return m, idle, run
}

func TestClipActionIsCachedByName(t *testing.T) {
	m := NewMixer()
	a := m.ClipAction(Clip{Name: "idle", Duration: 1})
	b := m.ClipAction(Clip{Name: "idle", Duration: 1})
	if a != b {
		t.Error("same clip produced two actions")
	}
	if got := m.Names(); len(got) != 1 || got[0] != "idle" {
		t.Errorf("Names = %v", got)
	}
}

func TestCrossFadeBlendsWeights(t *testing.T) {
	m, idle, run := newPair()
	idle.Play()

	run.SetEnabled(true)
	run.SetEffectiveTimeScale(1)
	run.SetEffectiveWeight(1)
	run.Play()
	idle.CrossFadeTo(run, 0.2, false)

	if !near(run.EffectiveWeight(), 0) || !near(idle.EffectiveWeight(), 1) {
		t.Fatalf("start weights idle=%v run=%v", idle.EffectiveWeight(), run.EffectiveWeight())
	}

	m.Update(0.1)
	wi, wr := idle.EffectiveWeight(), run.EffectiveWeight()
	if !near(wi, 0.5) || !near(wr, 0.5) {
		t.Errorf("mid-blend weights idle=%v run=%v, want 0.5/0.5", wi, wr)
	}
	if !near(wi+wr, 1) {
		t.Errorf("weights sum to %v", wi+wr)
	}

	m.Update(0.15)
	if idle.Enabled() {
		t.Error("faded-out action should be disabled")
	}
	if !near(run.EffectiveWeight(), 1) || idle.EffectiveWeight() != 0 {
		t.Errorf("end weights idle=%v run=%v", idle.EffectiveWeight(), run.EffectiveWeight())
	}
	// Previous action is not stopped, only faded
	if !idle.Running() {
		t.Error("crossfade stopped the previous action")
	}
}

func TestCrossFadeWarpBendsTimeScales(t *testing.T) {
	m, idle, run := newPair()
	idle.Play()
	run.Play()
	idle.CrossFadeTo(run, 0.2, true)

	// idle is 3x longer than run
	if !near(run.EffectiveTimeScale(), 1.0/3) {
		t.Errorf("run start scale = %v, want 1/3", run.EffectiveTimeScale())
	}
	if !near(idle.EffectiveTimeScale(), 1) {
		t.Errorf("idle start scale = %v, want 1", idle.EffectiveTimeScale())
	}

	m.Update(0.1)
	if !near(run.EffectiveTimeScale(), (1.0/3+1)/2) {
		t.Errorf("run mid scale = %v", run.EffectiveTimeScale())
	}

	m.Update(0.2)
	if !near(run.TimeScale(), 1) {
		t.Errorf("run settled scale = %v, want 1", run.TimeScale())
	}
	if !near(idle.TimeScale(), 3) {
		t.Errorf("idle settled scale = %v, want 3", idle.TimeScale())
	}
}

func TestSetEffectiveCancelsRamps(t *testing.T) {
	m, idle, run := newPair()
	idle.Play()
	run.Play()
	idle.CrossFadeTo(run, 1, true)
	m.Update(0.5)

	run.SetEffectiveWeight(1)
	run.SetEffectiveTimeScale(1)
	if run.EffectiveWeight() != 1 || run.EffectiveTimeScale() != 1 {
		t.Errorf("weight=%v scale=%v, want 1/1", run.EffectiveWeight(), run.EffectiveTimeScale())
	}
}

func TestNegativeTimeScaleWrapsClipTime(t *testing.T) {
	m, _, run := newPair()
	run.Play()
	run.SetTimeScale(-1)

	m.Update(0.3)
	if !near(run.Time(), 0.5) {
		t.Errorf("time = %v, want 0.5 (0.8 - 0.3)", run.Time())
	}
}

func TestDisabledActionDoesNotAdvance(t *testing.T) {
	m, idle, _ := newPair()
	idle.Play()
	idle.SetEnabled(false)
	m.Update(1)
	if idle.Time() != 0 {
		t.Errorf("disabled action advanced to %v", idle.Time())
	}
	if w := m.Weights()["idle"]; w != 0 {
		t.Errorf("disabled weight = %v", w)
	}
}

func TestStopResets(t *testing.T) {
	m, idle, _ := newPair()
	idle.Play()
	m.Update(0.5)
	idle.Stop()
	if idle.Running() || idle.Time() != 0 {
		t.Errorf("after Stop running=%v time=%v", idle.Running(), idle.Time())
	}
}
