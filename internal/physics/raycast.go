package physics

import (
	"gunrange/internal/engine"
	"math"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// RayAABB intersects a ray with a box using the slab method. direction must
// be normalized. A ray starting inside the box reports the exit face.
func RayAABB(origin, direction rl.Vector3, box AABB, maxDistance float32) (engine.RaycastResult, bool) {
	o := [3]float32{origin.X, origin.Y, origin.Z}
	d := [3]float32{direction.X, direction.Y, direction.Z}
	lo := [3]float32{box.Min.X, box.Min.Y, box.Min.Z}
	hi := [3]float32{box.Max.X, box.Max.Y, box.Max.Z}

	tmin := float32(-math.MaxFloat32)
	tmax := float32(math.MaxFloat32)
	for axis := 0; axis < 3; axis++ {
		if d[axis] == 0 {
			if o[axis] < lo[axis] || o[axis] > hi[axis] {
				return engine.RaycastResult{}, false
			}
			continue
		}
		t1 := (lo[axis] - o[axis]) / d[axis]
		t2 := (hi[axis] - o[axis]) / d[axis]
		if t1 > t2 {
			t1, t2 = t2, t1
		}
		if t1 > tmin {
			tmin = t1
		}
		if t2 < tmax {
			tmax = t2
		}
		if tmin > tmax {
			return engine.RaycastResult{}, false
		}
	}

	t := tmin
	if t < 0 {
		t = tmax
	}
	if t < 0 || t > maxDistance {
		return engine.RaycastResult{}, false
	}

	point := rl.Vector3Add(origin, rl.Vector3Scale(direction, t))
	return engine.RaycastResult{Point: point, Normal: boxNormal(point, box), Distance: t}, true
}

// boxNormal picks the face the point lies closest to.
func boxNormal(p rl.Vector3, box AABB) rl.Vector3 {
	faces := []struct {
		dist   float32
		normal rl.Vector3
	}{
		{abs(p.X - box.Min.X), rl.Vector3{X: -1}},
		{abs(p.X - box.Max.X), rl.Vector3{X: 1}},
		{abs(p.Y - box.Min.Y), rl.Vector3{Y: -1}},
		{abs(p.Y - box.Max.Y), rl.Vector3{Y: 1}},
		{abs(p.Z - box.Min.Z), rl.Vector3{Z: -1}},
		{abs(p.Z - box.Max.Z), rl.Vector3{Z: 1}},
	}
	best := faces[0]
	for _, f := range faces[1:] {
		if f.dist < best.dist {
			best = f
		}
	}
	return best.normal
}

// RaySphere intersects a ray with a sphere. direction must be normalized.
func RaySphere(origin, direction, center rl.Vector3, radius, maxDistance float32) (engine.RaycastResult, bool) {
	oc := rl.Vector3Subtract(origin, center)
	b := rl.Vector3DotProduct(oc, direction)
	c := rl.Vector3DotProduct(oc, oc) - radius*radius

	discriminant := b*b - c
	if discriminant < 0 {
		return engine.RaycastResult{}, false
	}

	sq := float32(math.Sqrt(float64(discriminant)))
	t := -b - sq
	if t < 0 {
		t = -b + sq
	}
	if t < 0 || t > maxDistance {
		return engine.RaycastResult{}, false
	}

	point := rl.Vector3Add(origin, rl.Vector3Scale(direction, t))
	normal := rl.Vector3Normalize(rl.Vector3Subtract(point, center))

	return engine.RaycastResult{Point: point, Normal: normal, Distance: t}, true
}
