package physics

import (
	"github.com/go-gl/mathgl/mgl64"
	"github.com/lixenwraith/tank-pusher/vmath"
)

// Kind separates immovable walls from boxes the character can push
type Kind uint8

const (
	KindStatic Kind = iota
	KindPushable
)

func (k Kind) String() string {
	if k == KindPushable {
		return "pushable"
	}
	return "static"
}

// Mesh is the scene-graph view the registry needs to compute an obstacle box
type Mesh interface {
	WorldBox() vmath.AABB
}

// Movable is a mesh whose transform can be moved by a push
type Movable interface {
	Mesh
	WorldPosition() mgl64.Vec3
	Translate(d mgl64.Vec3)
}

// Obstacle is a registered collision box
// Static boxes never change; Pushable boxes change only via Registry.MoveObstacle
type Obstacle struct {
	ID   int
	Kind Kind
	Box  vmath.AABB

	// position of the obstacle origin; tracks handle when present
	position mgl64.Vec3
	handle   Movable
}

// Position returns the obstacle origin used for push direction and bounds checks
func (o *Obstacle) Position() mgl64.Vec3 {
	if o.handle != nil {
		return o.handle.WorldPosition()
	}
	return o.position
}
