package physics

import (
	"github.com/go-gl/mathgl/mgl64"
	"github.com/lixenwraith/tank-pusher/vmath"
)

// OutcomeKind classifies a movement attempt
type OutcomeKind uint8

const (
	Blocked OutcomeKind = iota
	FreeMove
	PushAndMove
)

func (k OutcomeKind) String() string {
	switch k {
	case FreeMove:
		return "free"
	case PushAndMove:
		return "push"
	default:
		return "blocked"
	}
}

// BlockReason records which check rejected a Blocked attempt
type BlockReason uint8

const (
	ReasonNone          BlockReason = iota
	ReasonBounds                    // candidate position left the world
	ReasonStatic                    // collider hit a wall
	ReasonPushDirection             // touched a box without facing it
	ReasonPushBounds                // box would leave the world
	ReasonPushStatic                // box would hit a wall
)

func (r BlockReason) String() string {
	switch r {
	case ReasonBounds:
		return "bounds"
	case ReasonStatic:
		return "wall"
	case ReasonPushDirection:
		return "push-direction"
	case ReasonPushBounds:
		return "push-bounds"
	case ReasonPushStatic:
		return "push-wall"
	default:
		return "none"
	}
}

// Outcome is the verdict for one movement attempt
// Obstacle is the wall or box involved, nil for bounds and free moves
type Outcome struct {
	Kind     OutcomeKind
	Reason   BlockReason
	Obstacle *Obstacle
}

// Query describes one movement attempt
type Query struct {
	Position mgl64.Vec3 // current character position
	Facing   mgl64.Vec3 // unit forward vector
	Delta    mgl64.Vec3 // proposed translation
	Collider vmath.AABB // character box in local space, translated by Position+Delta
}

// Resolver answers movement queries against a registry without mutating it
type Resolver struct {
	registry *Registry
}

// NewResolver creates a resolver over registry
func NewResolver(registry *Registry) *Resolver {
	return &Resolver{registry: registry}
}

// Resolve runs bounds, wall and push checks in that order
// Only the first pushable the candidate box touches is considered; chained pushes
// into other pushables are not evaluated
func (r *Resolver) Resolve(q Query) Outcome {
	reg := r.registry
	candidate := q.Position.Add(q.Delta)

	if !reg.IsInsideBounds(candidate) {
		return Outcome{Kind: Blocked, Reason: ReasonBounds}
	}

	box := q.Collider.Translate(candidate)

	if wall := firstHit(box, reg.static); wall != nil {
		return Outcome{Kind: Blocked, Reason: ReasonStatic, Obstacle: wall}
	}

	for _, o := range reg.pushable {
		if !box.Intersects(o.Box) {
			continue
		}

		// Facing away or sliding past: the box acts as a wall
		toObstacle := vmath.SafeNormalize(o.Position().Sub(q.Position))
		if toObstacle.Dot(q.Facing) <= 0 {
			return Outcome{Kind: Blocked, Reason: ReasonPushDirection, Obstacle: o}
		}

		if !reg.IsInsideBounds(o.Position().Add(q.Delta)) {
			return Outcome{Kind: Blocked, Reason: ReasonPushBounds, Obstacle: o}
		}
		if firstHit(o.Box.Translate(q.Delta), reg.static) != nil {
			return Outcome{Kind: Blocked, Reason: ReasonPushStatic, Obstacle: o}
		}
		return Outcome{Kind: PushAndMove, Obstacle: o}
	}

	return Outcome{Kind: FreeMove}
}

func firstHit(box vmath.AABB, obstacles []*Obstacle) *Obstacle {
	for _, o := range obstacles {
		if box.Intersects(o.Box) {
			return o
		}
	}
	return nil
}
