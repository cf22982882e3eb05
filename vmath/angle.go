package vmath

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Up is the world vertical axis, yaw rotates around it
var Up = mgl64.Vec3{0, 1, 0}

// Forward returns the unit facing vector for a yaw angle
// Yaw 0 faces +Z, yaw pi/2 faces +X (right-handed, Y up)
func Forward(yaw float64) mgl64.Vec3 {
	return mgl64.Vec3{math.Sin(yaw), 0, math.Cos(yaw)}
}

// YawQuat returns the orientation quaternion for a yaw angle
func YawQuat(yaw float64) mgl64.Quat {
	return mgl64.QuatRotate(yaw, Up)
}

// RotateY rotates v around the vertical axis by yaw
func RotateY(v mgl64.Vec3, yaw float64) mgl64.Vec3 {
	s, c := math.Sincos(yaw)
	return mgl64.Vec3{v.X()*c + v.Z()*s, v.Y(), -v.X()*s + v.Z()*c}
}

// WrapAngle folds an angle into (-pi, pi]
func WrapAngle(a float64) float64 {
	a = math.Mod(a, 2*math.Pi)
	if a <= -math.Pi {
		a += 2 * math.Pi
	} else if a > math.Pi {
		a -= 2 * math.Pi
	}
	return a
}

// SafeNormalize returns the unit vector of v, or zero when v has no length
func SafeNormalize(v mgl64.Vec3) mgl64.Vec3 {
	l := v.Len()
	if l == 0 {
		return mgl64.Vec3{}
	}
	return v.Mul(1 / l)
}

// PlanarNear reports whether a and b match on X/Z within eps
func PlanarNear(a, b mgl64.Vec3, eps float64) bool {
	return math.Abs(a.X()-b.X()) <= eps && math.Abs(a.Z()-b.Z()) <= eps
}
