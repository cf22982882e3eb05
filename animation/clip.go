package animation

import (
	"math"
	"sort"
)

// ClipAction plays one clip inside a ClipMixer
type ClipAction struct {
	clip  Clip
	mixer *ClipMixer

	enabled   bool
	running   bool
	time      float64
	timeScale float64
	weight    float64

	fade *ramp // multiplies weight
	warp *ramp // multiplies timeScale
}

// ClipMixer owns clip actions and advances them on Update
type ClipMixer struct {
	time    float64
	actions map[string]*ClipAction
}

// NewMixer creates an empty mixer
func NewMixer() *ClipMixer {
	return &ClipMixer{actions: make(map[string]*ClipAction)}
}

// ClipAction returns the action for clip, creating it on first use
func (m *ClipMixer) ClipAction(clip Clip) *ClipAction {
	if a, ok := m.actions[clip.Name]; ok {
		return a
	}
	a := &ClipAction{
		clip:      clip,
		mixer:     m,
		enabled:   true,
		timeScale: 1,
		weight:    1,
	}
	m.actions[clip.Name] = a
	return a
}

// Time returns the accumulated mixer time in seconds
func (m *ClipMixer) Time() float64 {
	return m.time
}

// Update advances mixer time, settles finished fades and warps, and moves clip time
func (m *ClipMixer) Update(dt float64) {
	m.time += dt
	for _, a := range m.actions {
		a.settle(m.time)
		if !a.running || !a.enabled {
			continue
		}
		a.advance(dt * a.EffectiveTimeScale())
	}
}

// Weights returns the effective weight of every action keyed by clip name
func (m *ClipMixer) Weights() map[string]float64 {
	out := make(map[string]float64, len(m.actions))
	for name, a := range m.actions {
		out[name] = a.EffectiveWeight()
	}
	return out
}

// Names returns clip names in sorted order
func (m *ClipMixer) Names() []string {
	names := make([]string, 0, len(m.actions))
	for name := range m.actions {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func (a *ClipAction) Play() {
	a.running = true
}

func (a *ClipAction) Stop() {
	a.running = false
	a.time = 0
	a.fade = nil
	a.warp = nil
}

// Running reports whether Play was called without a later Stop
func (a *ClipAction) Running() bool {
	return a.running
}

func (a *ClipAction) SetEnabled(enabled bool) {
	a.enabled = enabled
}

func (a *ClipAction) Enabled() bool {
	return a.enabled
}

// SetEffectiveTimeScale sets the time scale and cancels any warp
func (a *ClipAction) SetEffectiveTimeScale(scale float64) {
	a.timeScale = scale
	a.warp = nil
}

// SetEffectiveWeight sets the weight and cancels any fade
func (a *ClipAction) SetEffectiveWeight(weight float64) {
	a.weight = weight
	a.fade = nil
}

// SetTimeScale sets the base time scale; a running warp keeps multiplying it
func (a *ClipAction) SetTimeScale(scale float64) {
	a.timeScale = scale
}

func (a *ClipAction) TimeScale() float64 {
	return a.timeScale
}

// Time returns the clip-local playback position
func (a *ClipAction) Time() float64 {
	return a.time
}

// EffectiveWeight is the blend contribution at the current mixer time
func (a *ClipAction) EffectiveWeight() float64 {
	if !a.enabled {
		return 0
	}
	if a.fade != nil {
		return a.weight * a.fade.at(a.mixer.time)
	}
	return a.weight
}

// EffectiveTimeScale is the playback rate at the current mixer time
func (a *ClipAction) EffectiveTimeScale() float64 {
	if a.warp != nil {
		return a.timeScale * a.warp.at(a.mixer.time)
	}
	return a.timeScale
}

// CrossFadeTo fades this action out and target in over duration
// With warp, both rates are bent so clip lengths line up during the blend
// Targets from other mixers implementations are ignored
func (a *ClipAction) CrossFadeTo(target Action, duration float64, warp bool) {
	in, ok := target.(*ClipAction)
	if !ok || in == a {
		return
	}

	a.scheduleFade(duration, 1, 0)
	in.scheduleFade(duration, 0, 1)

	if warp && a.clip.Duration > 0 && in.clip.Duration > 0 {
		inDur, outDur := in.clip.Duration, a.clip.Duration
		a.scheduleWarp(1, outDur/inDur, duration)
		in.scheduleWarp(inDur/outDur, 1, duration)
	}
}

func (a *ClipAction) scheduleFade(duration, from, to float64) {
	now := a.mixer.time
	a.fade = &ramp{start: now, end: now + duration, from: from, to: to}
}

func (a *ClipAction) scheduleWarp(startScale, endScale, duration float64) {
	if a.timeScale == 0 {
		return
	}
	now := a.mixer.time
	a.warp = &ramp{
		start: now,
		end:   now + duration,
		from:  startScale / a.timeScale,
		to:    endScale / a.timeScale,
	}
}

// settle folds finished ramps into the base values
// A fade that ends at zero disables the action
func (a *ClipAction) settle(now float64) {
	if a.fade != nil && now >= a.fade.end {
		final := a.fade.to
		a.fade = nil
		if final == 0 {
			a.enabled = false
		}
	}
	if a.warp != nil && now >= a.warp.end {
		a.timeScale *= a.warp.to
		a.warp = nil
	}
}

func (a *ClipAction) advance(dt float64) {
	a.time += dt
	if d := a.clip.Duration; d > 0 {
		a.time = math.Mod(a.time, d)
		if a.time < 0 {
			a.time += d
		}
	}
}
