package physics

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/lixenwraith/tank-pusher/vmath"
)

// Registry owns the world bounds and every registered obstacle
// Boxes are computed once at registration; pushable boxes are translated on move
type Registry struct {
	bounds    vmath.AABB
	hasBounds bool

	static   []*Obstacle
	pushable []*Obstacle
	nextID   int
}

// NewRegistry creates an empty registry without bounds
func NewRegistry() *Registry {
	return &Registry{
		static:   make([]*Obstacle, 0, 16),
		pushable: make([]*Obstacle, 0, 8),
		nextID:   1,
	}
}

// SetWorldBounds replaces the traversable region
func (r *Registry) SetWorldBounds(box vmath.AABB) {
	r.bounds = box
	r.hasBounds = true
}

// WorldBounds returns the bounds and whether they were set
func (r *Registry) WorldBounds() (vmath.AABB, bool) {
	return r.bounds, r.hasBounds
}

// Ready is false until the environment has provided world bounds
func (r *Registry) Ready() bool {
	return r.hasBounds
}

// RegisterObstacle computes the box of mesh at its current world transform and stores it
func (r *Registry) RegisterObstacle(mesh Mesh, kind Kind) *Obstacle {
	box := mesh.WorldBox()
	center := box.Center()

	o := &Obstacle{
		ID:       r.nextID,
		Kind:     kind,
		Box:      box,
		position: mgl64.Vec3{center.X(), box.Min.Y(), center.Z()},
	}
	if m, ok := mesh.(Movable); ok {
		o.handle = m
	}
	r.nextID++

	switch kind {
	case KindPushable:
		r.pushable = append(r.pushable, o)
	default:
		r.static = append(r.static, o)
	}
	return o
}

// IsInsideBounds reports whether p lies within the bounds on X and Z, inclusive
// Without bounds nothing is inside
func (r *Registry) IsInsideBounds(p mgl64.Vec3) bool {
	if !r.hasBounds {
		return false
	}
	return r.bounds.ContainsXZ(p)
}

// Static returns static obstacles in registration order
func (r *Registry) Static() []*Obstacle {
	return r.static
}

// Pushable returns pushable obstacles in registration order
func (r *Registry) Pushable() []*Obstacle {
	return r.pushable
}

// MoveObstacle translates a pushable obstacle and its scene transform by delta
// Static obstacles are never moved
func (r *Registry) MoveObstacle(o *Obstacle, delta mgl64.Vec3) bool {
	if o == nil || o.Kind != KindPushable {
		return false
	}
	o.Box = o.Box.Translate(delta)
	if o.handle != nil {
		o.handle.Translate(delta)
	} else {
		o.position = o.position.Add(delta)
	}
	return true
}

// Validate reports the first non-finite or inverted box in bounds or obstacles
func (r *Registry) Validate() error {
	if r.hasBounds {
		if err := checkBox(r.bounds); err != nil {
			return fmt.Errorf("world bounds: %w", err)
		}
	}
	for _, o := range r.static {
		if err := checkBox(o.Box); err != nil {
			return fmt.Errorf("static obstacle %d: %w", o.ID, err)
		}
	}
	for _, o := range r.pushable {
		if err := checkBox(o.Box); err != nil {
			return fmt.Errorf("pushable obstacle %d: %w", o.ID, err)
		}
	}
	return nil
}

// CheckClear fails with ErrOverlap when box touches any registered obstacle
// A character spawned like that is blocked on every move the resolver checks
func (r *Registry) CheckClear(box vmath.AABB) error {
	if o := firstHit(box, r.static); o != nil {
		return fmt.Errorf("%w: static obstacle %d", ErrOverlap, o.ID)
	}
	if o := firstHit(box, r.pushable); o != nil {
		return fmt.Errorf("%w: pushable obstacle %d", ErrOverlap, o.ID)
	}
	return nil
}

func checkBox(b vmath.AABB) error {
	if !b.IsFinite() {
		return ErrNonFiniteBox
	}
	if b.IsInverted() {
		return ErrInvertedBox
	}
	return nil
}
