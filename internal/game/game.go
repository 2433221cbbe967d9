package game

import (
	"fmt"
	"gunrange/internal/audio"
	"gunrange/internal/camera"
	"gunrange/internal/components"
	"gunrange/internal/engine"
	"gunrange/internal/input"
	"gunrange/internal/scripts"
	"gunrange/internal/world"
	"log"
	"time"

	rl "github.com/gen2brain/raylib-go/raylib"
)

const aimDistance = 500

type Game struct {
	World     *world.World
	Renderer  *world.Renderer
	Camera    *camera.OrbitCamera
	Tally     *Tally
	DebugMode bool

	triggers []*scripts.FireTrigger
	guns     []*components.Gun
	aimPoint rl.Vector3
	aimHit   bool
	hud      *HUD

	// Debug timing (ms)
	updateMs float64
	drawMs   float64
}

func New(seed int64) *Game {
	return &Game{
		World:    world.New(seed),
		Renderer: world.NewRenderer(),
		Camera:   camera.New(rl.Vector3{Y: 1, Z: 10}),
		Tally:    NewTally(),
		hud:      NewHUD(),
	}
}

// Run opens the window and plays scenePath until the window closes.
// seed overrides the scene's seed when non-zero.
func (g *Game) Run(scenePath string, seed int64) error {
	rl.SetConfigFlags(rl.FlagWindowHighdpi | rl.FlagMsaa4xHint)
	rl.InitWindow(1280, 720, "Gun Range")
	defer rl.CloseWindow()

	rl.SetTargetFPS(120)

	if err := audio.Init(); err != nil {
		log.Printf("Audio: %v (shots will be silent)", err)
	}

	// Triggers read the default source when the scene builds them.
	input.SetDefault(input.NewRaylib())

	if err := g.World.LoadScene(scenePath); err != nil {
		return err
	}
	if seed != 0 {
		g.World.Reseed(seed)
	}
	g.World.Start()
	g.collect()
	g.hud.Init()

	for !rl.WindowShouldClose() {
		g.Update()
		g.Draw()
	}
	return nil
}

// collect finds the triggers and guns the loop drives and scores.
func (g *Game) collect() {
	for _, obj := range g.World.Scene.GameObjects {
		for _, c := range obj.Components() {
			switch comp := c.(type) {
			case *scripts.FireTrigger:
				g.triggers = append(g.triggers, comp)
			case *components.Gun:
				g.guns = append(g.guns, comp)
				g.Tally.Watch(comp)
			}
		}
	}
	log.Printf("Game: %d guns, %d triggers", len(g.guns), len(g.triggers))
}

func (g *Game) Update() {
	updateStart := time.Now()
	deltaTime := rl.GetFrameTime()

	if !g.hud.Hovered() {
		g.Camera.Update()
		g.aim()
	}
	audio.SetListener(g.Camera.Position())

	g.World.Step(float64(deltaTime))
	g.Tally.Sweep()

	// Toggle debug mode
	if rl.IsKeyPressed(rl.KeyF1) {
		g.DebugMode = !g.DebugMode
	}

	g.updateMs = float64(time.Since(updateStart).Microseconds()) / 1000.0
}

// aim casts the mouse ray into the range and hands the hit point to every
// trigger. Off any collider it falls back to the ground plane.
func (g *Game) aim() {
	ray := rl.GetScreenToWorldRay(rl.GetMousePosition(), g.Camera.GetRaylibCamera())
	mask := engine.AllLayers &^ engine.LayerProjectile.Mask()

	if hit, ok := g.World.Raycast(ray.Position, ray.Direction, aimDistance, mask); ok {
		g.aimPoint, g.aimHit = hit.Point, true
	} else if ray.Direction.Y < 0 {
		t := -ray.Position.Y / ray.Direction.Y
		g.aimPoint, g.aimHit = rl.Vector3Add(ray.Position, rl.Vector3Scale(ray.Direction, t)), false
	} else {
		return
	}

	for _, trigger := range g.triggers {
		trigger.AimAt(g.aimPoint)
	}
}

func (g *Game) Draw() {
	cam := g.Camera.GetRaylibCamera()

	rl.BeginDrawing()
	rl.ClearBackground(rl.NewColor(20, 20, 30, 255))

	drawStart := time.Now()
	rl.BeginMode3D(cam)
	g.Renderer.Draw(cam, g.World.Scene.GameObjects)
	color := rl.Green
	if g.aimHit {
		color = rl.Red
	}
	rl.DrawSphereWires(g.aimPoint, 0.15, 6, 6, color)
	rl.EndMode3D()
	g.drawMs = float64(time.Since(drawStart).Microseconds()) / 1000.0

	g.DrawUI()
	rl.EndDrawing()
}

func (g *Game) DrawUI() {
	g.hud.Draw(g.guns, g.Tally)

	screenH := int32(rl.GetScreenHeight())
	rl.DrawText("LMB / Space fire, R reload, G gimbal, RMB drag orbit, wheel zoom", 10, screenH-30, 18, rl.LightGray)
	rl.DrawFPS(int32(rl.GetScreenWidth())-100, 10)

	if g.DebugMode {
		x := int32(rl.GetScreenWidth()) - 230
		rl.DrawText(fmt.Sprintf("Objects: %d", len(g.World.Scene.GameObjects)), x, 40, 16, rl.Yellow)
		rl.DrawText(fmt.Sprintf("Culled:  %d", g.Renderer.Culled()), x, 60, 16, rl.Yellow)
		rl.DrawText(fmt.Sprintf("Update:  %.2f ms", g.updateMs), x, 80, 16, rl.Green)
		rl.DrawText(fmt.Sprintf("Draw:    %.2f ms", g.drawMs), x, 100, 16, rl.Green)
		rl.DrawText(fmt.Sprintf("Total:   %.2f ms", g.updateMs+g.drawMs), x, 120, 16, rl.Lime)
	}
}
