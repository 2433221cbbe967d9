package world

import (
	"gunrange/internal/components"
	"gunrange/internal/engine"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// Renderer draws the range as debug geometry: collider shells, bullet
// streaks and effect flashes. Everything outside the camera is culled.
type Renderer struct {
	FloorSize   float32
	StreakTime  float32 // seconds of travel drawn behind each bullet
	ShowBarrels bool

	frustum Frustum
	culled  int
}

func NewRenderer() *Renderer {
	return &Renderer{
		FloorSize:   60,
		StreakTime:  0.02,
		ShowBarrels: true,
	}
}

// Culled is how many objects the last Draw skipped.
func (r *Renderer) Culled() int {
	return r.culled
}

// Draw must be called between BeginMode3D and EndMode3D.
func (r *Renderer) Draw(camera rl.Camera3D, gameObjects []*engine.GameObject) {
	aspect := float32(rl.GetScreenWidth()) / float32(rl.GetScreenHeight())
	r.frustum = ExtractFrustum(camera, aspect)
	r.culled = 0

	rl.DrawGrid(int32(r.FloorSize), 1)

	for _, g := range gameObjects {
		if !g.Active || g.Destroyed() {
			continue
		}
		r.drawObject(g)
	}
}

func (r *Renderer) drawObject(g *engine.GameObject) {
	pos := g.WorldPosition()
	if !r.frustum.ContainsSphere(pos, boundingRadius(g)) {
		r.culled++
		return
	}

	for _, c := range g.Components() {
		switch comp := c.(type) {
		case *components.BoxCollider:
			size := comp.GetWorldSize()
			rl.DrawCubeV(comp.GetCenter(), size, layerColor(g.Layer))
			rl.DrawCubeWiresV(comp.GetCenter(), size, rl.DarkGray)
		case *components.SphereCollider:
			rl.DrawSphere(comp.GetCenter(), comp.GetWorldRadius(), layerColor(g.Layer))
		case *components.Bullet:
			r.drawBullet(pos, comp)
		case *components.ParticleEffect:
			if comp.Playing() {
				rl.DrawSphere(pos, comp.Size(), comp.CurrentColor())
			}
		case *components.Gun:
			r.drawGun(g, comp)
		}
	}
}

func (r *Renderer) drawBullet(pos rl.Vector3, b *components.Bullet) {
	if b.State() != components.BulletFired {
		return
	}
	tail := rl.Vector3Subtract(pos, rl.Vector3Scale(b.Velocity, r.StreakTime))
	rl.DrawLine3D(tail, pos, rl.Yellow)
	rl.DrawSphere(pos, 0.05, rl.Gold)
}

func (r *Renderer) drawGun(g *engine.GameObject, gun *components.Gun) {
	pos := g.WorldPosition()
	rl.DrawCube(pos, 0.6, 0.4, 0.6, rl.DarkGray)
	if !r.ShowBarrels {
		return
	}
	for _, mount := range gun.Mounts() {
		muzzle := mount.WorldPosition()
		rl.DrawLine3D(pos, muzzle, rl.Gray)
		tip := rl.Vector3Add(muzzle, rl.Vector3Scale(mount.Forward(), 0.5))
		color := rl.Gray
		if mount == gun.NextBarrel() {
			color = rl.Red
		}
		rl.DrawLine3D(muzzle, tip, color)
	}
	if gun.UseGimballedAiming {
		rl.DrawSphereWires(gun.TargetPosition, 0.2, 6, 6, rl.Red)
	}
}

// boundingRadius is a loose culling radius for g's visible parts.
func boundingRadius(g *engine.GameObject) float32 {
	radius := float32(1)
	for _, c := range g.Components() {
		switch comp := c.(type) {
		case *components.BoxCollider:
			radius = max(radius, rl.Vector3Length(comp.GetWorldSize())/2+rl.Vector3Length(comp.Offset))
		case *components.SphereCollider:
			radius = max(radius, comp.GetWorldRadius()+rl.Vector3Length(comp.Offset))
		}
	}
	return radius
}

func layerColor(l engine.Layer) rl.Color {
	switch l {
	case engine.LayerTarget:
		return rl.Maroon
	case engine.LayerEnvironment:
		return rl.LightGray
	}
	return rl.SkyBlue
}
