package components

import (
	"fmt"
	"gunrange/internal/engine"
	"log"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// BarrelMode selects how a multi-barrel gun spends a Fire call.
type BarrelMode int

const (
	// BarrelsSequential fires one barrel per call, round-robin.
	BarrelsSequential BarrelMode = iota
	// BarrelsSimultaneous fires every barrel on each call.
	BarrelsSimultaneous
)

func (m BarrelMode) String() string {
	if m == BarrelsSimultaneous {
		return "simultaneous"
	}
	return "sequential"
}

func ParseBarrelMode(s string) (BarrelMode, error) {
	switch s {
	case "", "sequential":
		return BarrelsSequential, nil
	case "simultaneous":
		return BarrelsSimultaneous, nil
	}
	return 0, fmt.Errorf("unknown barrel mode %q", s)
}

// Gun spawns bullets from its barrels. Cooldown is decremented by tick time,
// so the effective minimum fire delay is one tick; faster cadences need a
// higher tick rate or more barrels firing simultaneously.
type Gun struct {
	engine.BaseComponent

	FireDelay          float64 // seconds between shots
	GimbalRange        float32 // max aim correction per shot, degrees
	MuzzleVelocity     float32
	Deviation          float32 // max random spread per axis, degrees
	BarrelMode         BarrelMode
	Barrels            []engine.GameObjectRef
	BulletPrefab       string
	MuzzleEffectPrefab string
	UseAmmo            bool
	MaxAmmo            int

	// Set at runtime by whatever is aiming the gun.
	UseGimballedAiming bool
	TargetPosition     rl.Vector3

	// Fired is raised once per spawned bullet.
	Fired engine.EventWithArg[*engine.GameObject]
	// Reloaded is raised by ReloadAmmo.
	Reloaded engine.Event

	ammo          int
	cooldown      float64
	mounts        []*engine.GameObject
	sequence      barrelQueue
	muzzleEffects map[*engine.GameObject]*engine.GameObject
	warned        bool
}

func NewGun() *Gun {
	return &Gun{
		FireDelay:      0.2,
		GimbalRange:    2,
		MuzzleVelocity: 200,
		Deviation:      0.1,
		BarrelMode:     BarrelsSequential,
		MaxAmmo:        30,
	}
}

func (g *Gun) Start() {
	g.ammo = g.MaxAmmo
	g.cooldown = 0
	g.UseGimballedAiming = false
	g.muzzleEffects = make(map[*engine.GameObject]*engine.GameObject)

	owner := g.GetGameObject()
	g.mounts = g.mounts[:0]
	for _, ref := range g.Barrels {
		mount := ref.Get(owner.Scene)
		if mount == nil {
			log.Printf("Gun: %s: barrel %s not found, skipping", owner.Name, ref)
			continue
		}
		g.mounts = append(g.mounts, mount)
	}
	g.sequence = newBarrelQueue(g.mounts)

	w := g.World()
	if g.MuzzleEffectPrefab == "" || w == nil {
		return
	}
	for _, mount := range g.mounts {
		fx := w.Instantiate(g.MuzzleEffectPrefab, mount.WorldPosition(), mount.WorldRotation())
		if fx == nil {
			continue
		}
		mount.AddChild(fx)
		fx.Transform.Position = rl.Vector3{}
		fx.Transform.Rotation = rl.QuaternionIdentity()
		g.muzzleEffects[mount] = fx
	}
}

func (g *Gun) Update(t engine.Tick) {
	g.cooldown -= t.Delta
	if g.cooldown < 0 {
		g.cooldown = 0
	}
}

// HasAmmo is true when ammo is unlimited or at least one round is left.
func (g *Gun) HasAmmo() bool {
	return !g.UseAmmo || g.ammo > 0
}

func (g *Gun) ReadyToFire() bool {
	return g.cooldown <= 0 && g.HasAmmo()
}

func (g *Gun) ReloadAmmo() {
	g.ammo = g.MaxAmmo
	g.Reloaded.Invoke()
}

func (g *Gun) Ammo() int {
	return g.ammo
}

func (g *Gun) Cooldown() float64 {
	return g.cooldown
}

// Mounts returns the resolved barrel objects in configured order.
func (g *Gun) Mounts() []*engine.GameObject {
	return g.mounts
}

// NextBarrel is the barrel the next sequential shot will use, or nil when
// the gun fires from its own transform.
func (g *Gun) NextBarrel() *engine.GameObject {
	return g.sequence.peek()
}

// MuzzleEffect returns the effect attached to mount, if any.
func (g *Gun) MuzzleEffect(mount *engine.GameObject) *engine.GameObject {
	return g.muzzleEffects[mount]
}

// Fire shoots once if the gun is ready, otherwise does nothing. A call costs
// one round however many barrels fire.
func (g *Gun) Fire(now float64, inherited rl.Vector3) {
	if !g.ReadyToFire() {
		return
	}
	w := g.World()
	if w == nil {
		return
	}

	switch {
	case len(g.mounts) == 0:
		g.fireFrom(w, nil, now, inherited)
	case g.BarrelMode == BarrelsSequential:
		mount := g.sequence.pop()
		g.fireFrom(w, mount, now, inherited)
		g.sequence.push(mount)
	default:
		for _, mount := range g.mounts {
			g.fireFrom(w, mount, now, inherited)
		}
	}

	if g.UseAmmo {
		g.ammo--
	}
	g.cooldown = g.FireDelay
}

// fireFrom spawns one bullet at mount, or at the gun itself when mount is nil.
func (g *Gun) fireFrom(w engine.WorldAccess, mount *engine.GameObject, now float64, inherited rl.Vector3) {
	owner := g.GetGameObject()
	src := owner
	if mount != nil {
		src = mount
	}
	position := src.WorldPosition()
	rotation := src.WorldRotation()

	if g.UseGimballedAiming {
		toTarget := rl.Vector3Subtract(g.TargetPosition, position)
		aim := engine.RotateTowards(owner.Forward(), toTarget, g.GimbalRange)
		rotation = engine.LookRotation(aim)
	}

	if fx, ok := g.muzzleEffects[mount]; ok {
		engine.PlayAll(fx)
	}

	obj := w.Instantiate(g.BulletPrefab, position, rotation)
	if obj == nil {
		g.warnOnce("bullet prefab %q not found", g.BulletPrefab)
		return
	}
	bullet := engine.GetComponent[*Bullet](obj)
	if bullet == nil {
		g.warnOnce("prefab %q has no Bullet component", g.BulletPrefab)
		w.Destroy(obj)
		return
	}
	bullet.Fire(now, position, rotation, inherited, g.MuzzleVelocity, g.Deviation)
	g.Fired.Invoke(obj)
}

func (g *Gun) warnOnce(format string, args ...any) {
	if g.warned {
		return
	}
	g.warned = true
	log.Printf("Gun: %s: "+format, append([]any{g.GetGameObject().Name}, args...)...)
}
