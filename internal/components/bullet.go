package components

import (
	"gunrange/internal/engine"
	"log"
	"math/rand"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// BulletState is the lifecycle stage of a Bullet.
type BulletState int

const (
	BulletUnfired BulletState = iota
	BulletFired
	BulletExpired
	BulletImpacted
)

func (s BulletState) String() string {
	switch s {
	case BulletUnfired:
		return "unfired"
	case BulletFired:
		return "fired"
	case BulletExpired:
		return "expired"
	case BulletImpacted:
		return "impacted"
	}
	return "unknown"
}

// Bullet is a self-propelled projectile. Each step it sweeps a ray over the
// distance it is about to travel and stops at the first hit, so fast shots
// cannot tunnel through thin geometry. Targets that move into the path faster
// than the bullet itself can still be missed.
type Bullet struct {
	engine.BaseComponent

	TimeToLive      float64 // seconds
	HitMask         engine.LayerMask
	ImpactEffect    string // prefab name, empty for none
	GravityModifier float32
	AlignToVelocity bool
	UseFixedUpdate  bool
	Lookahead       float32 // sweep length as a multiple of this step's travel

	Velocity rl.Vector3

	// Impacted fires once when the sweep finds an obstruction.
	Impacted engine.EventWithArg[engine.RaycastResult]

	state     BulletState
	expiresAt float64
	removed   bool
}

func NewBullet() *Bullet {
	return &Bullet{
		TimeToLive:      5,
		HitMask:         engine.AllLayers,
		GravityModifier: 0,
		AlignToVelocity: true,
		Lookahead:       1,
	}
}

// Fire launches the bullet from position/rotation. The facing is perturbed
// by up to deviation degrees on the local pitch and yaw axes independently,
// then velocity = facing * muzzleVelocity + inherited. Firing twice is not
// guarded.
func (b *Bullet) Fire(now float64, position rl.Vector3, rotation rl.Quaternion, inherited rl.Vector3, muzzleVelocity, deviation float32) {
	g := b.GetGameObject()

	if deviation > 0 {
		pitch, yaw := SampleDeviation(b.rng(), deviation)
		rotation = rl.QuaternionMultiply(rotation, engine.EulerDegrees(rl.Vector3{X: pitch, Y: yaw}))
	}

	g.Transform.Position = position
	g.Transform.Rotation = rotation

	forward := rl.Vector3RotateByQuaternion(engine.WorldForward, rotation)
	b.Velocity = rl.Vector3Add(rl.Vector3Scale(forward, muzzleVelocity), inherited)
	b.expiresAt = now + b.TimeToLive
	b.state = BulletFired
}

// SampleDeviation draws a pitch and yaw offset, each uniform in
// [-maxDegrees, maxDegrees].
func SampleDeviation(rng *rand.Rand, maxDegrees float32) (pitch, yaw float32) {
	pitch = (rng.Float32()*2 - 1) * maxDegrees
	yaw = (rng.Float32()*2 - 1) * maxDegrees
	return pitch, yaw
}

func (b *Bullet) rng() *rand.Rand {
	if w := b.World(); w != nil {
		if r := w.Rand(); r != nil {
			return r
		}
	}
	log.Printf("Bullet: no world random source, using a fresh one")
	return rand.New(rand.NewSource(rand.Int63()))
}

func (b *Bullet) Update(t engine.Tick) {
	if !b.UseFixedUpdate {
		b.advance(t)
	}
}

func (b *Bullet) FixedUpdate(t engine.Tick) {
	if b.UseFixedUpdate {
		b.advance(t)
	}
}

func (b *Bullet) advance(t engine.Tick) {
	if b.state != BulletFired {
		return
	}
	g := b.GetGameObject()

	if t.Time >= b.expiresAt {
		b.DestroyBullet(g.Transform.Position, false)
		return
	}

	w := b.World()
	if w == nil {
		return
	}
	dt := float32(t.Delta)

	speed := rl.Vector3Length(b.Velocity)
	if sweep := speed * b.Lookahead * dt; sweep > 0 {
		dir := rl.Vector3Scale(b.Velocity, 1/speed)
		if hit, ok := w.Raycast(g.Transform.Position, dir, sweep, b.HitMask); ok {
			b.DestroyBullet(hit.Point, true)
			b.Impacted.Invoke(hit)
			return
		}
	}

	g.Transform.Position = rl.Vector3Add(g.Transform.Position, rl.Vector3Scale(b.Velocity, dt))
	// Gravity lands after the move: semi-implicit Euler.
	gravity := rl.Vector3Scale(w.Gravity(), b.GravityModifier*dt)
	b.Velocity = rl.Vector3Add(b.Velocity, gravity)

	if b.AlignToVelocity && rl.Vector3Length(b.Velocity) > 0 {
		g.Transform.Rotation = engine.LookRotation(b.Velocity)
	}
}

// DestroyBullet is the terminal transition. With fromImpact set and an
// impact effect configured it plays the effect at position first. The
// bullet is removed from the world either way.
func (b *Bullet) DestroyBullet(position rl.Vector3, fromImpact bool) {
	g := b.GetGameObject()
	if g == nil || b.removed || g.Destroyed() {
		return
	}
	b.removed = true
	if fromImpact {
		b.state = BulletImpacted
	} else {
		b.state = BulletExpired
	}
	g.Transform.Position = position

	w := b.World()
	if w == nil {
		g.MarkDestroyed()
		return
	}
	if fromImpact && b.ImpactEffect != "" {
		if fx := w.Instantiate(b.ImpactEffect, position, g.Transform.Rotation); fx != nil {
			engine.PlayAll(fx)
		}
	}
	w.Destroy(g)
}

func (b *Bullet) State() BulletState {
	return b.state
}

func (b *Bullet) Fired() bool {
	return b.state != BulletUnfired
}

func (b *Bullet) ExpiresAt() float64 {
	return b.expiresAt
}

func (b *Bullet) Destroyed() bool {
	return b.removed
}
