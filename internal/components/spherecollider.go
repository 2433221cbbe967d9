package components

import (
	"gunrange/internal/engine"
	"gunrange/internal/physics"

	rl "github.com/gen2brain/raylib-go/raylib"
)

type SphereCollider struct {
	engine.BaseComponent
	Radius float32
	Offset rl.Vector3
}

func NewSphereCollider(radius float32) *SphereCollider {
	return &SphereCollider{
		Radius: radius,
		Offset: rl.Vector3{},
	}
}

// GetCenter returns the world-space center of this collider
func (s *SphereCollider) GetCenter() rl.Vector3 {
	g := s.GetGameObject()
	return rl.Vector3Add(g.WorldPosition(), s.Offset)
}

// GetWorldRadius scales the radius by the largest world scale axis.
func (s *SphereCollider) GetWorldRadius() float32 {
	sc := s.GetGameObject().WorldScale()
	m := max(abs32(sc.X), abs32(sc.Y), abs32(sc.Z))
	return s.Radius * m
}

func (s *SphereCollider) Bounds() physics.AABB {
	r := s.GetWorldRadius()
	return physics.NewAABBFromCenter(s.GetCenter(), rl.Vector3{X: 2 * r, Y: 2 * r, Z: 2 * r})
}

func (s *SphereCollider) Raycast(origin, direction rl.Vector3, maxDistance float32) (engine.RaycastResult, bool) {
	return physics.RaySphere(origin, direction, s.GetCenter(), s.GetWorldRadius(), maxDistance)
}

func abs32(x float32) float32 {
	if x < 0 {
		return -x
	}
	return x
}
