package world

import (
	"gunrange/internal/engine"
	"gunrange/internal/physics"
	"log"
	"math/rand"

	rl "github.com/gen2brain/raylib-go/raylib"
)

const (
	DefaultFixedDeltaTime = 1.0 / 50.0
	DefaultMaxFixedSteps  = 8
)

var DefaultGravity = rl.Vector3{X: 0, Y: -9.81, Z: 0}

// PrefabBuilder returns a fresh, unstarted object tree. The world places,
// spawns and starts it.
type PrefabBuilder func() *engine.GameObject

// World owns the scene and its collision set and hands out the services
// components reach through engine.WorldAccess.
type World struct {
	Scene   *engine.Scene
	Physics *physics.PhysicsWorld

	FixedDeltaTime float64
	MaxFixedSteps  int

	gravity     rl.Vector3
	rng         *rand.Rand
	prefabs     map[string]PrefabBuilder
	missing     map[string]bool
	time        float64
	fixedTime   float64
	accumulator float64
	started     bool
}

func New(seed int64) *World {
	w := &World{
		Scene:          engine.NewScene("Main"),
		Physics:        physics.NewPhysicsWorld(),
		FixedDeltaTime: DefaultFixedDeltaTime,
		MaxFixedSteps:  DefaultMaxFixedSteps,
		gravity:        DefaultGravity,
		rng:            rand.New(rand.NewSource(seed)),
		prefabs:        make(map[string]PrefabBuilder),
		missing:        make(map[string]bool),
	}
	w.Scene.World = w
	return w
}

// RegisterPrefab adds a named template. Registering a name twice panics.
func (w *World) RegisterPrefab(name string, build PrefabBuilder) {
	if _, exists := w.prefabs[name]; exists {
		panic("prefab " + name + " already registered")
	}
	w.prefabs[name] = build
}

func (w *World) HasPrefab(name string) bool {
	_, ok := w.prefabs[name]
	return ok
}

// AddObject places g and its children in the scene without starting them.
// Scene loading uses it so references resolve before any Start runs.
func (w *World) AddObject(g *engine.GameObject) {
	w.Scene.AddGameObject(g)
	w.Physics.AddObject(g)
	for _, child := range g.Children {
		w.AddObject(child)
	}
}

// Start runs Start on everything added so far. Objects spawned afterwards
// start as they are spawned.
func (w *World) Start() {
	w.started = true
	w.Scene.Start()
}

// Step advances the simulation by delta seconds: as many fixed steps as
// have accumulated (capped at MaxFixedSteps), then one variable update.
func (w *World) Step(delta float64) {
	if delta < 0 {
		delta = 0
	}
	if !w.started {
		w.Start()
	}

	w.accumulator += delta
	steps := 0
	for w.FixedDeltaTime > 0 && w.accumulator >= w.FixedDeltaTime {
		if steps == w.MaxFixedSteps {
			// Too far behind: drop the backlog rather than spiral. The fixed
			// clock skips ahead so it stays in step with Time.
			w.fixedTime += w.accumulator
			w.accumulator = 0
			break
		}
		w.fixedTime += w.FixedDeltaTime
		w.accumulator -= w.FixedDeltaTime
		w.Scene.FixedUpdate(engine.Tick{Time: w.fixedTime, Delta: w.FixedDeltaTime})
		steps++
	}

	w.time += delta
	w.Scene.Update(engine.Tick{Time: w.time, Delta: delta})
}

// Time is the variable-path clock.
func (w *World) Time() float64 {
	return w.time
}

func (w *World) SetGravity(g rl.Vector3) {
	w.gravity = g
}

// Reseed replaces the random source used for bullet deviation.
func (w *World) Reseed(seed int64) {
	w.rng = rand.New(rand.NewSource(seed))
}

// --- engine.WorldAccess ---

var _ engine.WorldAccess = (*World)(nil)

func (w *World) Raycast(origin, direction rl.Vector3, maxDistance float32, mask engine.LayerMask) (engine.RaycastResult, bool) {
	return w.Physics.Raycast(origin, direction, maxDistance, mask)
}

func (w *World) Instantiate(prefab string, position rl.Vector3, rotation rl.Quaternion) *engine.GameObject {
	build, ok := w.prefabs[prefab]
	if !ok {
		if !w.missing[prefab] {
			w.missing[prefab] = true
			log.Printf("World: unknown prefab %q", prefab)
		}
		return nil
	}
	g := build()
	if g == nil {
		return nil
	}
	g.Transform.Position = position
	g.Transform.Rotation = rotation
	w.SpawnObject(g)
	return g
}

// SpawnObject adds g and its children and starts them. They are visible to
// raycasts at once and first update on the next tick.
func (w *World) SpawnObject(g *engine.GameObject) {
	if g == nil {
		return
	}
	w.AddObject(g)
	startTree(g)
}

func startTree(g *engine.GameObject) {
	g.Start()
	for _, child := range g.Children {
		startTree(child)
	}
}

// Destroy removes g and its children from the scene and from ray queries.
func (w *World) Destroy(g *engine.GameObject) {
	if g == nil || g.Destroyed() {
		return
	}
	children := make([]*engine.GameObject, len(g.Children))
	copy(children, g.Children)
	for _, child := range children {
		w.Destroy(child)
	}

	g.MarkDestroyed()
	w.Physics.RemoveObject(g)
	w.Scene.RemoveGameObject(g)
	if g.Parent != nil {
		g.Parent.RemoveChild(g)
	}
}

func (w *World) Gravity() rl.Vector3 {
	return w.gravity
}

func (w *World) Rand() *rand.Rand {
	return w.rng
}
