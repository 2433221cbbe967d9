package world

import (
	rl "github.com/gen2brain/raylib-go/raylib"
)

const (
	nearClip float32 = 0.1
	farClip  float32 = 1000.0
)

// Frustum is the six clip planes of a camera: left, right, bottom, top,
// near, far. Normals point inward.
type Frustum struct {
	planes [6]Plane
}

// Plane is ax + by + cz + d = 0 with (a, b, c) unit length.
type Plane struct {
	normal   rl.Vector3
	distance float32
}

// ExtractFrustum pulls the planes out of the camera's view-projection
// matrix (Gribb/Hartmann).
func ExtractFrustum(camera rl.Camera3D, aspect float32) Frustum {
	view := rl.MatrixLookAt(camera.Position, camera.Target, camera.Up)

	var proj rl.Matrix
	if camera.Projection == rl.CameraPerspective {
		proj = rl.MatrixPerspective(camera.Fovy*rl.Deg2rad, aspect, nearClip, farClip)
	} else {
		halfH := camera.Fovy / 2.0
		halfW := halfH * aspect
		proj = rl.MatrixOrtho(-halfW, halfW, -halfH, halfH, nearClip, farClip)
	}
	vp := rl.MatrixMultiply(view, proj)

	w := [4]float32{vp.M3, vp.M7, vp.M11, vp.M15}
	rows := [3][4]float32{
		{vp.M0, vp.M4, vp.M8, vp.M12},
		{vp.M1, vp.M5, vp.M9, vp.M13},
		{vp.M2, vp.M6, vp.M10, vp.M14},
	}

	var f Frustum
	for i, row := range rows {
		f.planes[2*i] = planeFrom(w, row, 1)
		f.planes[2*i+1] = planeFrom(w, row, -1)
	}
	return f
}

func planeFrom(w, row [4]float32, sign float32) Plane {
	p := Plane{
		normal: rl.Vector3{
			X: w[0] + sign*row[0],
			Y: w[1] + sign*row[1],
			Z: w[2] + sign*row[2],
		},
		distance: w[3] + sign*row[3],
	}
	length := rl.Vector3Length(p.normal)
	if length == 0 {
		return p
	}
	return Plane{normal: rl.Vector3Scale(p.normal, 1/length), distance: p.distance / length}
}

// ContainsSphere is false only when the sphere lies wholly behind a plane.
func (f *Frustum) ContainsSphere(center rl.Vector3, radius float32) bool {
	for _, p := range f.planes {
		if rl.Vector3DotProduct(p.normal, center)+p.distance < -radius {
			return false
		}
	}
	return true
}

func (f *Frustum) ContainsPoint(point rl.Vector3) bool {
	return f.ContainsSphere(point, 0)
}
