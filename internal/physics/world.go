package physics

import (
	"gunrange/internal/engine"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// Collider is a component that rays can hit.
type Collider interface {
	engine.Component
	Raycast(origin, direction rl.Vector3, maxDistance float32) (engine.RaycastResult, bool)
	Bounds() AABB
}

// PhysicsWorld answers ray queries against registered colliders. It holds
// no dynamics: bullets integrate themselves.
type PhysicsWorld struct {
	colliders []Collider
}

func NewPhysicsWorld() *PhysicsWorld {
	return &PhysicsWorld{colliders: make([]Collider, 0)}
}

// AddObject registers every collider attached to g. Objects without
// colliders are ignored.
func (p *PhysicsWorld) AddObject(g *engine.GameObject) {
	for _, c := range g.Components() {
		if col, ok := c.(Collider); ok {
			p.colliders = append(p.colliders, col)
		}
	}
}

func (p *PhysicsWorld) RemoveObject(g *engine.GameObject) {
	kept := p.colliders[:0]
	for _, col := range p.colliders {
		if col.GetGameObject() != g {
			kept = append(kept, col)
		}
	}
	for i := len(kept); i < len(p.colliders); i++ {
		p.colliders[i] = nil
	}
	p.colliders = kept
}

func (p *PhysicsWorld) ColliderCount() int {
	return len(p.colliders)
}

// Raycast returns the closest hit within maxDistance among colliders whose
// owner is active, not destroyed, and on a layer in mask.
func (p *PhysicsWorld) Raycast(origin, direction rl.Vector3, maxDistance float32, mask engine.LayerMask) (engine.RaycastResult, bool) {
	if maxDistance <= 0 || rl.Vector3Length(direction) == 0 {
		return engine.RaycastResult{}, false
	}
	direction = rl.Vector3Normalize(direction)
	reach := segmentBounds(origin, rl.Vector3Add(origin, rl.Vector3Scale(direction, maxDistance)))

	var closest engine.RaycastResult
	closest.Distance = maxDistance
	hit := false

	for _, col := range p.colliders {
		owner := col.GetGameObject()
		if owner == nil || owner.Destroyed() || !owner.Active || !mask.Contains(owner.Layer) {
			continue
		}
		if !col.Bounds().Intersects(reach) {
			continue
		}
		info, ok := col.Raycast(origin, direction, maxDistance)
		if !ok || info.Distance > closest.Distance {
			continue
		}
		if hit && info.Distance == closest.Distance {
			continue
		}
		closest = info
		closest.GameObject = owner
		hit = true
	}

	return closest, hit
}

// segmentBounds is the box spanned by a ray segment.
func segmentBounds(a, b rl.Vector3) AABB {
	return AABB{
		Min: rl.Vector3{X: min(a.X, b.X), Y: min(a.Y, b.Y), Z: min(a.Z, b.Z)},
		Max: rl.Vector3{X: max(a.X, b.X), Y: max(a.Y, b.Y), Z: max(a.Z, b.Z)},
	}
}
