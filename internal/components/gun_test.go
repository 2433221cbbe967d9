package components_test

import (
	"fmt"
	"gunrange/internal/components"
	"gunrange/internal/engine"
	"gunrange/internal/engine/mocks"
	"testing"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type shot struct {
	position rl.Vector3
	rotation rl.Quaternion
	obj      *engine.GameObject
}

// expectBullets makes Instantiate("Bullet") hand back fresh bullet objects
// and records where each one was requested.
func expectBullets(scene *engine.Scene, w *mocks.MockWorldAccess, shots *[]shot) *gomock.Call {
	return w.EXPECT().Instantiate("Bullet", gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ string, pos rl.Vector3, rot rl.Quaternion) *engine.GameObject {
			_, obj := spawnBullet(scene)
			obj.Transform.Position = pos
			obj.Transform.Rotation = rot
			*shots = append(*shots, shot{position: pos, rotation: rot, obj: obj})
			return obj
		})
}

func newTestGun(scene *engine.Scene, barrels ...rl.Vector3) (*components.Gun, *engine.GameObject) {
	owner := engine.NewGameObject("Gun")
	gun := components.NewGun()
	gun.BulletPrefab = "Bullet"
	gun.Deviation = 0
	owner.AddComponent(gun)
	scene.AddGameObject(owner)

	for i, pos := range barrels {
		barrel := engine.NewGameObject(fmt.Sprintf("Barrel%d", i))
		barrel.Transform.Position = pos
		owner.AddChild(barrel)
		scene.AddGameObject(barrel)
		gun.Barrels = append(gun.Barrels, engine.RefTo(barrel))
	}
	return gun, owner
}

func TestGunCooldown(t *testing.T) {
	scene, w := newTestScene(t)
	var shots []shot
	expectBullets(scene, w, &shots).Times(2)

	gun, _ := newTestGun(scene)
	gun.FireDelay = 0.2
	gun.Start()

	gun.Fire(0, rl.Vector3{})
	assert.Equal(t, 0.2, gun.Cooldown())
	assert.False(t, gun.ReadyToFire())

	gun.Update(engine.Tick{Time: 0.1, Delta: 0.1})
	gun.Fire(0.1, rl.Vector3{})
	assert.Len(t, shots, 1)

	gun.Update(engine.Tick{Time: 0.2, Delta: 0.1})
	assert.True(t, gun.ReadyToFire())
	gun.Fire(0.2, rl.Vector3{})
	assert.Len(t, shots, 2)
}

func TestGunCooldownClampsAtZero(t *testing.T) {
	scene, _ := newTestScene(t)
	gun, _ := newTestGun(scene)
	gun.Start()

	gun.Update(engine.Tick{Time: 1, Delta: 1})
	assert.Equal(t, 0.0, gun.Cooldown())
}

func TestGunAmmo(t *testing.T) {
	scene, w := newTestScene(t)
	var shots []shot
	expectBullets(scene, w, &shots).Times(4)

	gun, _ := newTestGun(scene)
	gun.UseAmmo = true
	gun.MaxAmmo = 3
	gun.FireDelay = 0
	reloads := 0
	gun.Reloaded.AddListener(func() { reloads++ })
	gun.Start()
	assert.Equal(t, 3, gun.Ammo())

	for i := 0; i < 5; i++ {
		gun.Fire(float64(i), rl.Vector3{})
	}
	assert.Len(t, shots, 3)
	assert.Equal(t, 0, gun.Ammo())
	assert.False(t, gun.HasAmmo())
	assert.False(t, gun.ReadyToFire())

	gun.ReloadAmmo()
	assert.Equal(t, 3, gun.Ammo())
	assert.Equal(t, 1, reloads)
	gun.Fire(6, rl.Vector3{})
	assert.Len(t, shots, 4)
}

func TestGunUnlimitedAmmo(t *testing.T) {
	scene, w := newTestScene(t)
	var shots []shot
	expectBullets(scene, w, &shots).Times(3)

	gun, _ := newTestGun(scene)
	gun.MaxAmmo = 1
	gun.FireDelay = 0
	gun.Start()

	for i := 0; i < 3; i++ {
		gun.Fire(float64(i), rl.Vector3{})
	}
	assert.True(t, gun.HasAmmo())
	assert.Equal(t, 1, gun.Ammo())
}

func TestGunSequentialBarrels(t *testing.T) {
	scene, w := newTestScene(t)
	var shots []shot
	expectBullets(scene, w, &shots).Times(4)

	left, mid, right := rl.Vector3{X: -1}, rl.Vector3{}, rl.Vector3{X: 1}
	gun, _ := newTestGun(scene, left, mid, right)
	gun.FireDelay = 0
	gun.UseAmmo = true
	gun.Start()
	require.Len(t, gun.Mounts(), 3)
	assert.Same(t, gun.Mounts()[0], gun.NextBarrel())

	for i := 0; i < 4; i++ {
		gun.Fire(float64(i), rl.Vector3{})
	}

	require.Len(t, shots, 4)
	assert.Equal(t, left, shots[0].position)
	assert.Equal(t, mid, shots[1].position)
	assert.Equal(t, right, shots[2].position)
	assert.Equal(t, left, shots[3].position)
	assert.Same(t, gun.Mounts()[1], gun.NextBarrel())
	assert.Equal(t, gun.MaxAmmo-4, gun.Ammo())
}

func TestGunSimultaneousBarrels(t *testing.T) {
	scene, w := newTestScene(t)
	var shots []shot
	expectBullets(scene, w, &shots).Times(3)

	gun, _ := newTestGun(scene, rl.Vector3{X: -1}, rl.Vector3{}, rl.Vector3{X: 1})
	gun.BarrelMode = components.BarrelsSimultaneous
	gun.UseAmmo = true
	gun.Start()

	gun.Fire(0, rl.Vector3{})

	assert.Len(t, shots, 3)
	assert.Equal(t, gun.MaxAmmo-1, gun.Ammo())
}

func TestGunFiresFromItselfWithoutBarrels(t *testing.T) {
	scene, w := newTestScene(t)
	var shots []shot
	expectBullets(scene, w, &shots).Times(1)

	gun, owner := newTestGun(scene)
	owner.Transform.Position = rl.Vector3{Y: 2}
	gun.MuzzleVelocity = 50
	gun.Start()

	var fired []*engine.GameObject
	gun.Fired.AddListener(func(g *engine.GameObject) { fired = append(fired, g) })

	gun.Fire(0, rl.Vector3{X: 1})

	require.Len(t, shots, 1)
	assert.Equal(t, rl.Vector3{Y: 2}, shots[0].position)
	assert.Equal(t, []*engine.GameObject{shots[0].obj}, fired)
	assert.Nil(t, gun.NextBarrel())

	b := engine.GetComponent[*components.Bullet](shots[0].obj)
	assert.Equal(t, components.BulletFired, b.State())
	assertVec(t, rl.Vector3{X: 1, Z: 50}, b.Velocity)
}

func TestGunSkipsMissingBarrels(t *testing.T) {
	scene, w := newTestScene(t)
	var shots []shot
	expectBullets(scene, w, &shots).Times(1)

	gun, _ := newTestGun(scene, rl.Vector3{X: 1})
	gun.Barrels = append(gun.Barrels, engine.RefTo(engine.NewGameObject("Elsewhere")))
	gun.Start()

	assert.Len(t, gun.Mounts(), 1)
	gun.Fire(0, rl.Vector3{})
	assert.Equal(t, rl.Vector3{X: 1}, shots[0].position)
}

func TestGunGimbalIsCapped(t *testing.T) {
	scene, w := newTestScene(t)
	var shots []shot
	expectBullets(scene, w, &shots).Times(2)

	gun, _ := newTestGun(scene)
	gun.GimbalRange = 2
	gun.FireDelay = 0
	gun.Start()
	assert.False(t, gun.UseGimballedAiming)

	gun.UseGimballedAiming = true
	gun.TargetPosition = rl.Vector3{X: 10, Z: 10}
	gun.Fire(0, rl.Vector3{})

	dir := rl.Vector3RotateByQuaternion(engine.WorldForward, shots[0].rotation)
	assert.InDelta(t, 2, engine.AngleBetween(engine.WorldForward, dir), 1e-2)
	assert.Greater(t, dir.X, float32(0))

	// inside the range the shot goes straight at the target
	gun.TargetPosition = rl.Vector3{X: 0.01, Z: 10}
	gun.Fire(1, rl.Vector3{})
	dir = rl.Vector3RotateByQuaternion(engine.WorldForward, shots[1].rotation)
	want := rl.Vector3Normalize(gun.TargetPosition)
	assertVec(t, want, dir)
}

func TestGunMuzzleEffects(t *testing.T) {
	scene, w := newTestScene(t)
	var shots []shot
	expectBullets(scene, w, &shots).Times(2)

	var flashes []*components.ParticleEffect
	w.EXPECT().Instantiate("MuzzleFlash", gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ string, pos rl.Vector3, rot rl.Quaternion) *engine.GameObject {
			fx := engine.NewGameObject("MuzzleFlash")
			fx.Transform.Position = pos
			fx.Transform.Rotation = rot
			p := components.NewParticleEffect()
			fx.AddComponent(p)
			flashes = append(flashes, p)
			return fx
		}).Times(2)

	gun, _ := newTestGun(scene, rl.Vector3{X: -1}, rl.Vector3{X: 1})
	gun.MuzzleEffectPrefab = "MuzzleFlash"
	gun.FireDelay = 0
	gun.Start()

	for _, mount := range gun.Mounts() {
		fx := gun.MuzzleEffect(mount)
		require.NotNil(t, fx)
		assert.Same(t, mount, fx.Parent)
		assert.Equal(t, mount.WorldPosition(), fx.WorldPosition())
	}

	gun.Fire(0, rl.Vector3{})
	gun.Fire(1, rl.Vector3{})

	require.Len(t, flashes, 2)
	assert.Equal(t, 1, flashes[0].PlayCount())
	assert.Equal(t, 1, flashes[1].PlayCount())
}

func TestGunMissingPrefab(t *testing.T) {
	scene, w := newTestScene(t)
	w.EXPECT().Instantiate("Bullet", gomock.Any(), gomock.Any()).Return(nil).Times(2)

	gun, _ := newTestGun(scene)
	gun.FireDelay = 0
	gun.UseAmmo = true
	gun.Start()

	gun.Fire(0, rl.Vector3{})
	gun.Fire(1, rl.Vector3{})

	assert.Equal(t, gun.MaxAmmo-2, gun.Ammo())
}

func TestGunPrefabWithoutBullet(t *testing.T) {
	scene, w := newTestScene(t)
	junk := engine.NewGameObject("NotABullet")
	w.EXPECT().Instantiate("Bullet", gomock.Any(), gomock.Any()).Return(junk)
	w.EXPECT().Destroy(junk)

	gun, _ := newTestGun(scene)
	gun.Start()

	fired := 0
	gun.Fired.AddListener(func(*engine.GameObject) { fired++ })
	gun.Fire(0, rl.Vector3{})

	assert.Equal(t, 0, fired)
}

func TestGunFireWithoutWorld(t *testing.T) {
	owner := engine.NewGameObject("Loose")
	gun := components.NewGun()
	owner.AddComponent(gun)
	gun.Start()

	gun.Fire(0, rl.Vector3{})
	assert.Equal(t, 0.0, gun.Cooldown())
}

func TestParseBarrelMode(t *testing.T) {
	m, err := components.ParseBarrelMode("simultaneous")
	require.NoError(t, err)
	assert.Equal(t, components.BarrelsSimultaneous, m)

	m, err = components.ParseBarrelMode("")
	require.NoError(t, err)
	assert.Equal(t, components.BarrelsSequential, m)

	_, err = components.ParseBarrelMode("gatling")
	assert.Error(t, err)
}
