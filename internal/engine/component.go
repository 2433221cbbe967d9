package engine

import rl "github.com/gen2brain/raylib-go/raylib"

// Component is anything attached to a GameObject. Update runs once per
// variable-rate tick.
type Component interface {
	Start()
	Update(t Tick)
	SetGameObject(g *GameObject)
	GetGameObject() *GameObject
}

// FixedUpdater is implemented by components that also want the fixed-rate
// tick. The world calls FixedUpdate zero or more times per frame.
type FixedUpdater interface {
	FixedUpdate(t Tick)
}

// Playable is implemented by one-shot effects (particles, sounds).
type Playable interface {
	Play()
}

// VelocityProvider is implemented by components that move their object and
// can report its current world velocity. Guns inherit it into their shots.
type VelocityProvider interface {
	GetVelocity() rl.Vector3
}

// BaseComponent provides default implementation for Component interface
type BaseComponent struct {
	gameObject *GameObject
}

func (b *BaseComponent) Start() {}

func (b *BaseComponent) Update(t Tick) {}

func (b *BaseComponent) SetGameObject(g *GameObject) {
	b.gameObject = g
}

func (b *BaseComponent) GetGameObject() *GameObject {
	return b.gameObject
}

// World returns the world the owning object's scene is attached to, or nil
// when the component is detached.
func (b *BaseComponent) World() WorldAccess {
	if b.gameObject == nil || b.gameObject.Scene == nil {
		return nil
	}
	return b.gameObject.Scene.World
}

// PlayAll triggers every Playable component on g.
func PlayAll(g *GameObject) {
	if g == nil {
		return
	}
	for _, c := range g.components {
		if p, ok := c.(Playable); ok {
			p.Play()
		}
	}
}
