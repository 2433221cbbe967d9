package world

import (
	"gunrange/internal/components"
	"gunrange/internal/engine"
	"testing"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type tickRecorder struct {
	engine.BaseComponent
	fixed    []engine.Tick
	variable []engine.Tick
}

func (r *tickRecorder) Update(t engine.Tick)      { r.variable = append(r.variable, t) }
func (r *tickRecorder) FixedUpdate(t engine.Tick) { r.fixed = append(r.fixed, t) }

func newRecorder(w *World) *tickRecorder {
	g := engine.NewGameObject("Recorder")
	rec := &tickRecorder{}
	g.AddComponent(rec)
	w.AddObject(g)
	return rec
}

func TestStepRunsFixedThenVariable(t *testing.T) {
	w := New(1)
	w.FixedDeltaTime = 0.25
	rec := newRecorder(w)

	w.Step(0.5)
	assert.Equal(t, []engine.Tick{{Time: 0.25, Delta: 0.25}, {Time: 0.5, Delta: 0.25}}, rec.fixed)
	assert.Equal(t, []engine.Tick{{Time: 0.5, Delta: 0.5}}, rec.variable)

	w.Step(0.125)
	assert.Len(t, rec.fixed, 2)
	w.Step(0.125)
	assert.Len(t, rec.fixed, 3)
	assert.Equal(t, 0.75, w.Time())
}

func TestStepCapsFixedSteps(t *testing.T) {
	w := New(1)
	w.FixedDeltaTime = 0.25
	w.MaxFixedSteps = 2
	rec := newRecorder(w)

	w.Step(2)
	assert.Len(t, rec.fixed, 2)

	// backlog was dropped
	w.Step(0)
	assert.Len(t, rec.fixed, 2)
	assert.Len(t, rec.variable, 2)

	// and the fixed clock caught up with the variable one
	w.Step(0.25)
	require.Len(t, rec.fixed, 3)
	assert.Equal(t, engine.Tick{Time: 2.25, Delta: 0.25}, rec.fixed[2])
	assert.Equal(t, 2.25, w.Time())
}

func TestInstantiate(t *testing.T) {
	w := New(1)
	built := 0
	w.RegisterPrefab("Marker", func() *engine.GameObject {
		built++
		g := engine.NewGameObject("Marker")
		g.AddComponent(components.NewSphereCollider(1))
		return g
	})

	pos := rl.Vector3{X: 1, Y: 2, Z: 3}
	g := w.Instantiate("Marker", pos, rl.QuaternionIdentity())
	require.NotNil(t, g)
	assert.Equal(t, pos, g.Transform.Position)
	assert.True(t, g.Started())
	assert.Same(t, g, w.Scene.FindByUID(g.UID))
	assert.Equal(t, 1, w.Physics.ColliderCount())

	// visible to rays immediately
	hit, ok := w.Raycast(rl.Vector3{X: 1, Y: 2}, engine.WorldForward, 10, engine.AllLayers)
	require.True(t, ok)
	assert.Same(t, g, hit.GameObject)

	assert.Nil(t, w.Instantiate("Nope", pos, rl.QuaternionIdentity()))
	assert.Equal(t, 1, built)

	assert.Panics(t, func() { w.RegisterPrefab("Marker", nil) })
}

func TestDestroyRemovesTree(t *testing.T) {
	w := New(1)
	parent := engine.NewGameObject("Parent")
	parent.AddComponent(components.NewBoxCollider(rl.Vector3{X: 1, Y: 1, Z: 1}))
	child := engine.NewGameObject("Child")
	child.AddComponent(components.NewSphereCollider(1))
	parent.AddChild(child)
	w.SpawnObject(parent)

	require.Len(t, w.Scene.GameObjects, 2)
	require.Equal(t, 2, w.Physics.ColliderCount())

	w.Destroy(parent)
	w.Destroy(parent)

	assert.True(t, parent.Destroyed())
	assert.True(t, child.Destroyed())
	assert.Empty(t, w.Scene.GameObjects)
	assert.Equal(t, 0, w.Physics.ColliderCount())
}

func TestRandIsSeeded(t *testing.T) {
	a, b := New(9), New(9)
	assert.Equal(t, a.Rand().Int63(), b.Rand().Int63())

	a.Reseed(3)
	b.Reseed(3)
	assert.Equal(t, a.Rand().Float32(), b.Rand().Float32())
}

func TestShotHitsWall(t *testing.T) {
	w := New(1)
	w.SetGravity(rl.Vector3{})

	w.RegisterPrefab("Bullet", func() *engine.GameObject {
		g := engine.NewGameObject("Bullet")
		g.Layer = engine.LayerProjectile
		b := components.NewBullet()
		b.HitMask = engine.MaskOf(engine.LayerEnvironment)
		b.ImpactEffect = "Impact"
		g.AddComponent(b)
		return g
	})
	w.RegisterPrefab("Impact", func() *engine.GameObject {
		g := engine.NewGameObject("Impact")
		p := components.NewParticleEffect()
		p.DestroyOnFinish = true
		g.AddComponent(p)
		return g
	})

	wall := engine.NewGameObject("Wall")
	wall.Layer = engine.LayerEnvironment
	wall.Transform.Position = rl.Vector3{Z: 20}
	wall.AddComponent(components.NewBoxCollider(rl.Vector3{X: 10, Y: 10, Z: 1}))
	w.AddObject(wall)

	turret := engine.NewGameObject("Turret")
	gun := components.NewGun()
	gun.BulletPrefab = "Bullet"
	gun.MuzzleVelocity = 100
	gun.Deviation = 0
	turret.AddComponent(gun)
	w.AddObject(turret)
	w.Start()

	var bullet *components.Bullet
	var hits []engine.RaycastResult
	gun.Fired.AddListener(func(g *engine.GameObject) {
		bullet = engine.GetComponent[*components.Bullet](g)
		bullet.Impacted.AddListener(func(r engine.RaycastResult) { hits = append(hits, r) })
	})

	gun.Fire(w.Time(), rl.Vector3{})
	require.NotNil(t, bullet)

	w.Step(0.125)
	assert.Equal(t, components.BulletFired, bullet.State())
	assert.InDelta(t, 12.5, bullet.GetGameObject().Transform.Position.Z, 1e-4)

	w.Step(0.125)
	assert.Equal(t, components.BulletImpacted, bullet.State())
	require.Len(t, hits, 1)
	assert.Same(t, wall, hits[0].GameObject)
	assert.InDelta(t, 19.5, hits[0].Point.Z, 1e-4)
	assert.Nil(t, w.Scene.FindByUID(bullet.GetGameObject().UID))

	impacts := w.Scene.FindByName("Impact")
	require.NotNil(t, impacts)
	assert.True(t, engine.GetComponent[*components.ParticleEffect](impacts).Playing())

	w.Step(1)
	assert.Nil(t, w.Scene.FindByName("Impact"))
}

func TestBulletExpiresInFlight(t *testing.T) {
	w := New(1)
	w.SetGravity(rl.Vector3{})
	w.RegisterPrefab("Bullet", func() *engine.GameObject {
		g := engine.NewGameObject("Bullet")
		b := components.NewBullet()
		b.TimeToLive = 0.5
		g.AddComponent(b)
		return g
	})
	g := w.Instantiate("Bullet", rl.Vector3{}, rl.QuaternionIdentity())
	b := engine.GetComponent[*components.Bullet](g)
	b.Fire(w.Time(), rl.Vector3{}, rl.QuaternionIdentity(), rl.Vector3{}, 10, 0)

	w.Step(0.25)
	assert.False(t, g.Destroyed())
	w.Step(0.25)
	assert.True(t, g.Destroyed())
	assert.Equal(t, components.BulletExpired, b.State())
}

func TestFixedBulletExpiresOnTimeAfterHitch(t *testing.T) {
	w := New(1)
	w.FixedDeltaTime = 0.25
	w.MaxFixedSteps = 2
	w.SetGravity(rl.Vector3{})
	w.RegisterPrefab("Bullet", func() *engine.GameObject {
		g := engine.NewGameObject("Bullet")
		b := components.NewBullet()
		b.TimeToLive = 1
		b.UseFixedUpdate = true
		g.AddComponent(b)
		return g
	})

	// a long frame that exceeds the fixed step cap
	w.Step(2)

	g := w.Instantiate("Bullet", rl.Vector3{}, rl.QuaternionIdentity())
	b := engine.GetComponent[*components.Bullet](g)
	b.Fire(w.Time(), rl.Vector3{}, rl.QuaternionIdentity(), rl.Vector3{}, 10, 0)

	for i := 0; i < 3; i++ {
		w.Step(0.25)
		require.False(t, g.Destroyed(), "destroyed early at %v", w.Time())
	}
	w.Step(0.25)
	assert.True(t, g.Destroyed())
	assert.Equal(t, components.BulletExpired, b.State())
	assert.Equal(t, 3.0, w.Time())
}
