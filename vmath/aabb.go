package vmath

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// AABB is an axis-aligned bounding box in world space
type AABB struct {
	Min mgl64.Vec3
	Max mgl64.Vec3
}

// NewAABB builds a box from two corners in any order
func NewAABB(a, b mgl64.Vec3) AABB {
	return AABB{
		Min: mgl64.Vec3{math.Min(a[0], b[0]), math.Min(a[1], b[1]), math.Min(a[2], b[2])},
		Max: mgl64.Vec3{math.Max(a[0], b[0]), math.Max(a[1], b[1]), math.Max(a[2], b[2])},
	}
}

// GroundedAABB creates a box centered on origin in X/Z that rises from origin.Y by size.Y
// Used for characters and props whose local origin sits on the floor
func GroundedAABB(origin, size mgl64.Vec3) AABB {
	hx, hz := size.X()/2, size.Z()/2
	return AABB{
		Min: mgl64.Vec3{origin.X() - hx, origin.Y(), origin.Z() - hz},
		Max: mgl64.Vec3{origin.X() + hx, origin.Y() + size.Y(), origin.Z() + hz},
	}
}

// Translate returns the box moved by d, extents unchanged
func (a AABB) Translate(d mgl64.Vec3) AABB {
	return AABB{Min: a.Min.Add(d), Max: a.Max.Add(d)}
}

// Intersects reports overlap on all three axes, touching faces count
func (a AABB) Intersects(b AABB) bool {
	return a.Max.X() >= b.Min.X() && a.Min.X() <= b.Max.X() &&
		a.Max.Y() >= b.Min.Y() && a.Min.Y() <= b.Max.Y() &&
		a.Max.Z() >= b.Min.Z() && a.Min.Z() <= b.Max.Z()
}

// ContainsXZ reports whether p lies inside the box on the ground plane, inclusive, Y ignored
func (a AABB) ContainsXZ(p mgl64.Vec3) bool {
	return p.X() >= a.Min.X() && p.X() <= a.Max.X() &&
		p.Z() >= a.Min.Z() && p.Z() <= a.Max.Z()
}

// Center returns the box midpoint
func (a AABB) Center() mgl64.Vec3 {
	return a.Min.Add(a.Max).Mul(0.5)
}

// Size returns the full extents
func (a AABB) Size() mgl64.Vec3 {
	return a.Max.Sub(a.Min)
}

// IsFinite is false when any coordinate is NaN or infinite
func (a AABB) IsFinite() bool {
	for i := 0; i < 3; i++ {
		if !finite(a.Min[i]) || !finite(a.Max[i]) {
			return false
		}
	}
	return true
}

// IsInverted is true when Min exceeds Max on any axis
func (a AABB) IsInverted() bool {
	return a.Min.X() > a.Max.X() || a.Min.Y() > a.Max.Y() || a.Min.Z() > a.Max.Z()
}

func finite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}
