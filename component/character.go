package component

import (
	"github.com/go-gl/mathgl/mgl64"
	"github.com/lixenwraith/tank-pusher/vmath"
)

// AnimState is the character animation state
type AnimState uint8

const (
	AnimIdle AnimState = iota
	AnimRunning
)

func (s AnimState) String() string {
	if s == AnimRunning {
		return "running"
	}
	return "idle"
}

// Collider is the character collision box in local space
// Built once at spawn, its extents never change afterwards
type Collider struct {
	box vmath.AABB
}

// NewCollider creates a collider centered on the local origin in X/Z, rising from y=0
func NewCollider(width, height, depth float64) Collider {
	return Collider{box: vmath.GroundedAABB(mgl64.Vec3{}, mgl64.Vec3{width, height, depth})}
}

// Local returns the collider box in character space
func (c Collider) Local() vmath.AABB {
	return c.box
}

// At returns the collider box translated to a world position; orientation is ignored
func (c Collider) At(position mgl64.Vec3) vmath.AABB {
	return c.box.Translate(position)
}

// CharacterState is the per-session character record, mutated once per frame
type CharacterState struct {
	Position mgl64.Vec3
	Yaw      float64
	Facing   mgl64.Vec3
	Anim     AnimState
	Collider Collider
}

// NewCharacterState spawns a character at position facing yaw
func NewCharacterState(position mgl64.Vec3, yaw float64, collider Collider) *CharacterState {
	return &CharacterState{
		Position: position,
		Yaw:      yaw,
		Facing:   vmath.Forward(yaw),
		Anim:     AnimIdle,
		Collider: collider,
	}
}

// Orientation returns the yaw as a quaternion
func (c *CharacterState) Orientation() mgl64.Quat {
	return vmath.YawQuat(c.Yaw)
}

// Turn rotates the character in place and refreshes the facing vector
func (c *CharacterState) Turn(delta float64) {
	c.Yaw += delta
	c.Facing = vmath.Forward(c.Yaw)
}
