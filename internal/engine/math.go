package engine

import (
	"math"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// Local axes. Objects face +Z.
var (
	WorldForward = rl.Vector3{X: 0, Y: 0, Z: 1}
	WorldUp      = rl.Vector3{X: 0, Y: 1, Z: 0}
	WorldRight   = rl.Vector3{X: 1, Y: 0, Z: 0}
)

// EulerDegrees builds a rotation from pitch/yaw/roll given in degrees.
func EulerDegrees(deg rl.Vector3) rl.Quaternion {
	return rl.QuaternionFromEuler(deg.X*rl.Deg2rad, deg.Y*rl.Deg2rad, deg.Z*rl.Deg2rad)
}

// ToEulerDegrees is the inverse of EulerDegrees.
func ToEulerDegrees(q rl.Quaternion) rl.Vector3 {
	return rl.Vector3Scale(rl.QuaternionToEuler(q), rl.Rad2deg)
}

// LookRotation returns the rotation that turns WorldForward onto dir.
func LookRotation(dir rl.Vector3) rl.Quaternion {
	if rl.Vector3Length(dir) == 0 {
		return rl.QuaternionIdentity()
	}
	dir = rl.Vector3Normalize(dir)
	// Shortest arc is undefined only for exactly opposite vectors.
	axis := rl.Vector3CrossProduct(WorldForward, dir)
	if rl.Vector3Length(axis) < 1e-6 && rl.Vector3DotProduct(WorldForward, dir) < 0 {
		return rl.QuaternionFromAxisAngle(WorldUp, math.Pi)
	}
	return rl.QuaternionFromVector3ToVector3(WorldForward, dir)
}

// RotateTowards turns from toward to by at most maxDegrees and returns the
// resulting unit vector. A zero target leaves from unchanged.
func RotateTowards(from, to rl.Vector3, maxDegrees float32) rl.Vector3 {
	from = rl.Vector3Normalize(from)
	if rl.Vector3Length(to) == 0 {
		return from
	}
	to = rl.Vector3Normalize(to)

	angle := AngleBetween(from, to) * rl.Deg2rad
	maxRad := maxDegrees * rl.Deg2rad
	if angle <= maxRad {
		return to
	}
	if maxRad <= 0 {
		return from
	}

	axis := rl.Vector3CrossProduct(from, to)
	if rl.Vector3Length(axis) < 1e-6 {
		axis = perpendicular(from)
	}
	q := rl.QuaternionFromAxisAngle(rl.Vector3Normalize(axis), maxRad)
	return rl.Vector3Normalize(rl.Vector3RotateByQuaternion(from, q))
}

// AngleBetween returns the unsigned angle between a and b in degrees.
func AngleBetween(a, b rl.Vector3) float32 {
	la, lb := rl.Vector3Length(a), rl.Vector3Length(b)
	if la == 0 || lb == 0 {
		return 0
	}
	dot := rl.Vector3DotProduct(a, b) / (la * lb)
	if dot > 1 {
		dot = 1
	} else if dot < -1 {
		dot = -1
	}
	return float32(math.Acos(float64(dot))) * rl.Rad2deg
}

func perpendicular(v rl.Vector3) rl.Vector3 {
	if math.Abs(float64(v.Y)) < 0.99 {
		return rl.Vector3CrossProduct(v, WorldUp)
	}
	return rl.Vector3CrossProduct(v, WorldRight)
}
