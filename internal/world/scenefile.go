package world

import (
	"encoding/json"
	"fmt"
	"gunrange/internal/components"
	"gunrange/internal/engine"
	"log"
	"os"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/google/uuid"
)

// --- JSON types ---

type SceneFile struct {
	Settings SettingsDef `json:"settings"`
	Prefabs  []ObjectDef `json:"prefabs,omitempty"`
	Objects  []ObjectDef `json:"objects"`
}

type SettingsDef struct {
	Gravity        *[3]float32 `json:"gravity,omitempty"`
	FixedDeltaTime float64     `json:"fixedDeltaTime,omitempty"`
	MaxFixedSteps  int         `json:"maxFixedSteps,omitempty"`
	Seed           *int64      `json:"seed,omitempty"`
}

type ObjectDef struct {
	UID        string            `json:"uid,omitempty"`
	Name       string            `json:"name"`
	Tags       []string          `json:"tags,omitempty"`
	Layer      string            `json:"layer,omitempty"`
	Parent     string            `json:"parent,omitempty"`
	Position   [3]float32        `json:"position"`
	Rotation   [3]float32        `json:"rotation"` // Euler degrees
	Scale      [3]float32        `json:"scale"`
	Components []json.RawMessage `json:"components"`
}

type componentHeader struct {
	Type string `json:"type"`
}

type boxColliderDef struct {
	Type   string     `json:"type"`
	Size   [3]float32 `json:"size"`
	Offset [3]float32 `json:"offset,omitempty"`
}

type sphereColliderDef struct {
	Type   string     `json:"type"`
	Radius float32    `json:"radius"`
	Offset [3]float32 `json:"offset,omitempty"`
}

type bulletDef struct {
	Type            string   `json:"type"`
	TimeToLive      *float64 `json:"timeToLive,omitempty"`
	HitMask         []string `json:"hitMask,omitempty"`
	ImpactEffect    string   `json:"impactEffect,omitempty"`
	GravityModifier float32  `json:"gravityModifier,omitempty"`
	AlignToVelocity *bool    `json:"alignToVelocity,omitempty"`
	UseFixedUpdate  bool     `json:"useFixedUpdate,omitempty"`
	Lookahead       *float32 `json:"lookahead,omitempty"`
}

type gunDef struct {
	Type               string   `json:"type"`
	FireDelay          *float64 `json:"fireDelay,omitempty"`
	GimbalRange        *float32 `json:"gimbalRange,omitempty"`
	MuzzleVelocity     *float32 `json:"muzzleVelocity,omitempty"`
	Deviation          *float32 `json:"deviation,omitempty"`
	BarrelMode         string   `json:"barrelMode,omitempty"`
	Barrels            []string `json:"barrels,omitempty"`
	BulletPrefab       string   `json:"bulletPrefab"`
	MuzzleEffectPrefab string   `json:"muzzleEffectPrefab,omitempty"`
	UseAmmo            bool     `json:"useAmmo,omitempty"`
	MaxAmmo            *int     `json:"maxAmmo,omitempty"`
}

type particleEffectDef struct {
	Type            string  `json:"type"`
	Duration        float32 `json:"duration,omitempty"`
	StartSize       float32 `json:"startSize,omitempty"`
	EndSize         float32 `json:"endSize,omitempty"`
	Color           string  `json:"color,omitempty"`
	Ease            string  `json:"ease,omitempty"`
	DestroyOnFinish bool    `json:"destroyOnFinish,omitempty"`
}

type shotReportDef struct {
	Type        string  `json:"type"`
	Volume      float32 `json:"volume,omitempty"`
	MaxDistance float32 `json:"maxDistance,omitempty"`
	Length      float32 `json:"length,omitempty"`
}

type scriptDef struct {
	Type  string       `json:"type"`
	Name  string       `json:"name"`
	Props engine.Props `json:"props,omitempty"`
}

// --- Color mapping ---

var colorByName = map[string]rl.Color{
	"Red":       rl.Red,
	"Blue":      rl.Blue,
	"Green":     rl.Green,
	"Orange":    rl.Orange,
	"Yellow":    rl.Yellow,
	"Gold":      rl.Gold,
	"SkyBlue":   rl.SkyBlue,
	"White":     rl.White,
	"LightGray": rl.LightGray,
	"Gray":      rl.Gray,
	"Maroon":    rl.Maroon,
}

func lookupColor(name string) rl.Color {
	if c, ok := colorByName[name]; ok {
		return c
	}
	return rl.White
}

// --- Loading ---

// LoadScene reads a scene file, applies its settings, registers its prefabs
// and adds its objects. Objects are not started; call Start or Step.
func (w *World) LoadScene(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read scene: %w", err)
	}
	return w.LoadSceneData(data)
}

func (w *World) LoadSceneData(data []byte) error {
	var sf SceneFile
	if err := json.Unmarshal(data, &sf); err != nil {
		return fmt.Errorf("parse scene: %w", err)
	}

	w.applySettings(sf.Settings)

	for _, def := range sf.Prefabs {
		if def.Name == "" {
			return fmt.Errorf("prefab without name")
		}
		if _, err := buildObject(def); err != nil {
			return fmt.Errorf("prefab %s: %w", def.Name, err)
		}
		if w.HasPrefab(def.Name) {
			return fmt.Errorf("prefab %s: already registered", def.Name)
		}
		// Validated above, so later builds cannot fail.
		w.RegisterPrefab(def.Name, func() *engine.GameObject {
			g, _ := buildObject(def)
			return g
		})
	}

	objects := make([]*engine.GameObject, 0, len(sf.Objects))
	byUID := make(map[uuid.UUID]*engine.GameObject, len(sf.Objects))
	for _, def := range sf.Objects {
		g, err := buildObject(def)
		if err != nil {
			return fmt.Errorf("object %s: %w", def.Name, err)
		}
		if def.UID != "" {
			uid, err := uuid.Parse(def.UID)
			if err != nil {
				return fmt.Errorf("object %s: bad uid: %w", def.Name, err)
			}
			if _, dup := byUID[uid]; dup {
				return fmt.Errorf("object %s: duplicate uid %s", def.Name, uid)
			}
			g.UID = uid
		}
		byUID[g.UID] = g
		objects = append(objects, g)
	}

	for i, def := range sf.Objects {
		if def.Parent == "" {
			continue
		}
		uid, err := uuid.Parse(def.Parent)
		if err != nil {
			return fmt.Errorf("object %s: bad parent: %w", def.Name, err)
		}
		parent, ok := byUID[uid]
		if !ok {
			return fmt.Errorf("object %s: parent %s not in scene", def.Name, uid)
		}
		parent.AddChild(objects[i])
	}

	for _, g := range objects {
		w.Scene.AddGameObject(g)
		w.Physics.AddObject(g)
	}
	return nil
}

func (w *World) applySettings(s SettingsDef) {
	if s.Gravity != nil {
		w.gravity = vec3(*s.Gravity)
	}
	if s.FixedDeltaTime > 0 {
		w.FixedDeltaTime = s.FixedDeltaTime
	}
	if s.MaxFixedSteps > 0 {
		w.MaxFixedSteps = s.MaxFixedSteps
	}
	if s.Seed != nil {
		w.Reseed(*s.Seed)
	}
}

func buildObject(def ObjectDef) (*engine.GameObject, error) {
	g := engine.NewGameObject(def.Name)
	g.Tags = def.Tags
	if def.Layer != "" {
		layer, err := engine.ParseLayer(def.Layer)
		if err != nil {
			return nil, err
		}
		g.Layer = layer
	}
	g.Transform.Position = vec3(def.Position)
	g.Transform.Rotation = engine.EulerDegrees(vec3(def.Rotation))

	// Default scale to 1 if zero
	if def.Scale != [3]float32{} {
		g.Transform.Scale = vec3(def.Scale)
	}

	for _, raw := range def.Components {
		var header componentHeader
		if err := json.Unmarshal(raw, &header); err != nil {
			return nil, fmt.Errorf("component: %w", err)
		}

		var err error
		switch header.Type {
		case "BoxCollider":
			err = loadBoxCollider(g, raw)
		case "SphereCollider":
			err = loadSphereCollider(g, raw)
		case "Bullet":
			err = loadBullet(g, raw)
		case "Gun":
			err = loadGun(g, raw)
		case "ParticleEffect":
			err = loadParticleEffect(g, raw)
		case "ShotReport":
			err = loadShotReport(g, raw)
		case "Script":
			err = loadScript(g, raw)
		default:
			log.Printf("World: %s: skipping unknown component %q", def.Name, header.Type)
		}
		if err != nil {
			return nil, fmt.Errorf("%s: %w", header.Type, err)
		}
	}
	return g, nil
}

func loadBoxCollider(g *engine.GameObject, raw json.RawMessage) error {
	var def boxColliderDef
	if err := json.Unmarshal(raw, &def); err != nil {
		return err
	}
	col := components.NewBoxCollider(vec3(def.Size))
	col.Offset = vec3(def.Offset)
	g.AddComponent(col)
	return nil
}

func loadSphereCollider(g *engine.GameObject, raw json.RawMessage) error {
	var def sphereColliderDef
	if err := json.Unmarshal(raw, &def); err != nil {
		return err
	}
	col := components.NewSphereCollider(def.Radius)
	col.Offset = vec3(def.Offset)
	g.AddComponent(col)
	return nil
}

func loadBullet(g *engine.GameObject, raw json.RawMessage) error {
	var def bulletDef
	if err := json.Unmarshal(raw, &def); err != nil {
		return err
	}
	b := components.NewBullet()
	if def.TimeToLive != nil {
		b.TimeToLive = *def.TimeToLive
	}
	if def.HitMask != nil {
		mask, err := engine.ParseLayerMask(def.HitMask)
		if err != nil {
			return err
		}
		b.HitMask = mask
	}
	b.ImpactEffect = def.ImpactEffect
	b.GravityModifier = def.GravityModifier
	if def.AlignToVelocity != nil {
		b.AlignToVelocity = *def.AlignToVelocity
	}
	b.UseFixedUpdate = def.UseFixedUpdate
	if def.Lookahead != nil {
		if *def.Lookahead < 0 {
			return fmt.Errorf("negative lookahead %v", *def.Lookahead)
		}
		b.Lookahead = *def.Lookahead
	}
	g.AddComponent(b)
	return nil
}

func loadGun(g *engine.GameObject, raw json.RawMessage) error {
	var def gunDef
	if err := json.Unmarshal(raw, &def); err != nil {
		return err
	}
	gun := components.NewGun()
	if def.FireDelay != nil {
		gun.FireDelay = *def.FireDelay
	}
	if def.GimbalRange != nil {
		gun.GimbalRange = *def.GimbalRange
	}
	if def.MuzzleVelocity != nil {
		gun.MuzzleVelocity = *def.MuzzleVelocity
	}
	if def.Deviation != nil {
		gun.Deviation = *def.Deviation
	}
	mode, err := components.ParseBarrelMode(def.BarrelMode)
	if err != nil {
		return err
	}
	gun.BarrelMode = mode
	for _, s := range def.Barrels {
		ref, err := engine.ParseRef(s)
		if err != nil {
			return fmt.Errorf("barrel: %w", err)
		}
		gun.Barrels = append(gun.Barrels, ref)
	}
	gun.BulletPrefab = def.BulletPrefab
	gun.MuzzleEffectPrefab = def.MuzzleEffectPrefab
	gun.UseAmmo = def.UseAmmo
	if def.MaxAmmo != nil {
		if *def.MaxAmmo < 0 {
			return fmt.Errorf("negative maxAmmo %d", *def.MaxAmmo)
		}
		gun.MaxAmmo = *def.MaxAmmo
	}
	g.AddComponent(gun)
	return nil
}

func loadParticleEffect(g *engine.GameObject, raw json.RawMessage) error {
	var def particleEffectDef
	if err := json.Unmarshal(raw, &def); err != nil {
		return err
	}
	p := components.NewParticleEffect()
	if def.Duration > 0 {
		p.Duration = def.Duration
	}
	if def.StartSize > 0 {
		p.StartSize = def.StartSize
	}
	if def.EndSize > 0 {
		p.EndSize = def.EndSize
	}
	if def.Color != "" {
		p.Color = lookupColor(def.Color)
	}
	if def.Ease != "" {
		p.Ease = components.EaseByName(def.Ease)
	}
	p.DestroyOnFinish = def.DestroyOnFinish
	g.AddComponent(p)
	return nil
}

func loadShotReport(g *engine.GameObject, raw json.RawMessage) error {
	var def shotReportDef
	if err := json.Unmarshal(raw, &def); err != nil {
		return err
	}
	s := components.NewShotReport()
	if def.Volume > 0 {
		s.Volume = def.Volume
	}
	if def.MaxDistance > 0 {
		s.MaxDistance = def.MaxDistance
	}
	if def.Length > 0 {
		s.Length = def.Length
	}
	g.AddComponent(s)
	return nil
}

func loadScript(g *engine.GameObject, raw json.RawMessage) error {
	var def scriptDef
	if err := json.Unmarshal(raw, &def); err != nil {
		return err
	}
	comp := engine.CreateScript(def.Name, def.Props)
	if comp == nil {
		return fmt.Errorf("unknown script %q", def.Name)
	}
	g.AddComponent(comp)
	return nil
}

func vec3(v [3]float32) rl.Vector3 {
	return rl.Vector3{X: v[0], Y: v[1], Z: v[2]}
}
