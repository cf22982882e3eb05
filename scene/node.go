// Package scene holds the minimal scene-graph collaborator: named nodes with a
// ground-anchored box geometry, a world position and a yaw
package scene

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/lixenwraith/tank-pusher/vmath"
)

// NodeKind tags what a node represents for views and snapshots
type NodeKind uint8

const (
	KindCharacter NodeKind = iota
	KindWall
	KindBox
)

func (k NodeKind) String() string {
	switch k {
	case KindCharacter:
		return "character"
	case KindWall:
		return "wall"
	case KindBox:
		return "box"
	default:
		return "unknown"
	}
}

// Node is a scene object whose geometry is a box of Size, centered in X/Z on
// Position and rising from Position.Y
type Node struct {
	Name     string
	Kind     NodeKind
	Position mgl64.Vec3
	Yaw      float64
	Size     mgl64.Vec3
}

// NewNode creates a node at position with the given geometry size
func NewNode(name string, kind NodeKind, position, size mgl64.Vec3, yaw float64) *Node {
	return &Node{
		Name:     name,
		Kind:     kind,
		Position: position,
		Yaw:      yaw,
		Size:     size,
	}
}

// Orientation returns the node rotation as a quaternion
func (n *Node) Orientation() mgl64.Quat {
	return vmath.YawQuat(n.Yaw)
}

// WorldPosition returns the node origin in world space
func (n *Node) WorldPosition() mgl64.Vec3 {
	return n.Position
}

// Translate moves the node by d
func (n *Node) Translate(d mgl64.Vec3) {
	n.Position = n.Position.Add(d)
}

// WorldBox returns the axis-aligned box enclosing the node geometry at its current
// transform; rotated nodes get the enclosing box of their four rotated corners
func (n *Node) WorldBox() vmath.AABB {
	if n.Yaw == 0 {
		return vmath.GroundedAABB(n.Position, n.Size)
	}

	hx, hz := n.Size.X()/2, n.Size.Z()/2
	s, c := math.Sincos(n.Yaw)
	// Extents of a rotated rectangle projected back on the world axes
	ex := math.Abs(hx*c) + math.Abs(hz*s)
	ez := math.Abs(hx*s) + math.Abs(hz*c)
	return vmath.GroundedAABB(n.Position, mgl64.Vec3{2 * ex, n.Size.Y(), 2 * ez})
}
