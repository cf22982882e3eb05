// Package camera derives follow-camera poses from the character transform
// The rig only reads character state; nothing flows back into movement
package camera

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/lixenwraith/tank-pusher/component"
	"github.com/lixenwraith/tank-pusher/parameter"
	"github.com/lixenwraith/tank-pusher/vmath"
)

// Mode selects the follow behavior
type Mode uint8

const (
	ThirdPerson Mode = iota
	FirstPerson
)

func (m Mode) String() string {
	if m == FirstPerson {
		return "first-person"
	}
	return "third-person"
}

// ParseMode accepts "third", "first" and the String forms
func ParseMode(s string) (Mode, bool) {
	switch s {
	case "third", "third-person", "":
		return ThirdPerson, true
	case "first", "first-person":
		return FirstPerson, true
	}
	return ThirdPerson, false
}

// Pose is a camera transform plus the point it looks at
type Pose struct {
	Mode        Mode
	Position    mgl64.Vec3
	Orientation mgl64.Quat
	Target      mgl64.Vec3
}

// Forward returns the horizontal viewing direction
func (p Pose) Forward() mgl64.Vec3 {
	d := p.Target.Sub(p.Position)
	return vmath.SafeNormalize(mgl64.Vec3{d.X(), 0, d.Z()})
}

// Rig holds the camera mode and offsets
type Rig struct {
	mode Mode

	TargetHeight  float64
	OrbitHeight   float64
	OrbitDistance float64
	EyeOffset     mgl64.Vec3 // character space
}

// NewRig creates a rig with the parameter offsets
func NewRig(mode Mode) *Rig {
	return &Rig{
		mode:          mode,
		TargetHeight:  parameter.ThirdPersonTargetHeight,
		OrbitHeight:   parameter.ThirdPersonOrbitHeight,
		OrbitDistance: parameter.ThirdPersonOrbitDistance,
		EyeOffset:     mgl64.Vec3{0, parameter.FirstPersonEyeHeight, parameter.FirstPersonEyeAhead},
	}
}

func (r *Rig) Mode() Mode {
	return r.mode
}

func (r *Rig) SetMode(m Mode) {
	r.mode = m
}

// Toggle switches between third and first person and returns the new mode
func (r *Rig) Toggle() Mode {
	if r.mode == ThirdPerson {
		r.mode = FirstPerson
	} else {
		r.mode = ThirdPerson
	}
	return r.mode
}

// Follow computes the pose for the current mode
func (r *Rig) Follow(c *component.CharacterState) Pose {
	if c == nil {
		return Pose{Mode: r.mode, Orientation: mgl64.QuatIdent()}
	}
	if r.mode == FirstPerson {
		return r.firstPerson(c)
	}
	return r.thirdPerson(c)
}

// thirdPerson orbits a target at torso height; the camera offset is world-fixed
func (r *Rig) thirdPerson(c *component.CharacterState) Pose {
	target := c.Position.Add(mgl64.Vec3{0, r.TargetHeight, 0})
	pos := target.Add(mgl64.Vec3{0, r.OrbitHeight, r.OrbitDistance})
	return Pose{
		Mode:        ThirdPerson,
		Position:    pos,
		Orientation: mgl64.QuatLookAtV(pos, target, vmath.Up),
		Target:      target,
	}
}

// firstPerson places the eye in character space and looks along the facing
// Cameras look down local -Z, so the character rotation is turned half a circle
func (r *Rig) firstPerson(c *component.CharacterState) Pose {
	pos := c.Position.Add(vmath.RotateY(r.EyeOffset, c.Yaw))
	orient := c.Orientation().Mul(mgl64.QuatRotate(math.Pi, vmath.Up))
	return Pose{
		Mode:        FirstPerson,
		Position:    pos,
		Orientation: orient,
		Target:      pos.Add(c.Facing),
	}
}
