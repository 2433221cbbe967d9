package game

import (
	"fmt"
	"gunrange/internal/components"
	"strings"

	gui "github.com/gen2brain/raylib-go/raygui"
	rl "github.com/gen2brain/raylib-go/raylib"
)

// Dark palette
var (
	colorBgDark        = rl.NewColor(18, 18, 24, 235)
	colorBgElement     = rl.NewColor(35, 35, 48, 255)
	colorBgHover       = rl.NewColor(50, 50, 68, 255)
	colorAccent        = rl.NewColor(108, 99, 255, 255)
	colorTextPrimary   = rl.NewColor(235, 235, 245, 255)
	colorTextSecondary = rl.NewColor(160, 160, 180, 255)
)

const (
	hudX       = 10
	hudY       = 10
	hudWidth   = 260
	gunBlockH  = 76
	tallyLineH = 18
)

// HUD is the raygui overlay: one block per gun (ammo bar, reload button,
// gimbal toggle) and the running shot tally.
type HUD struct {
	bounds rl.Rectangle
}

func NewHUD() *HUD {
	return &HUD{}
}

// Init sets the raygui style. Needs an open window.
func (h *HUD) Init() {
	gui.SetStyle(gui.DEFAULT, gui.BACKGROUND_COLOR, gui.NewColorPropertyValue(colorBgDark))
	gui.SetStyle(gui.DEFAULT, gui.BASE_COLOR_NORMAL, gui.NewColorPropertyValue(colorBgElement))
	gui.SetStyle(gui.DEFAULT, gui.BASE_COLOR_FOCUSED, gui.NewColorPropertyValue(colorBgHover))
	gui.SetStyle(gui.DEFAULT, gui.BASE_COLOR_PRESSED, gui.NewColorPropertyValue(colorAccent))

	gui.SetStyle(gui.DEFAULT, gui.TEXT_COLOR_NORMAL, gui.NewColorPropertyValue(colorTextSecondary))
	gui.SetStyle(gui.DEFAULT, gui.TEXT_COLOR_FOCUSED, gui.NewColorPropertyValue(colorTextPrimary))
	gui.SetStyle(gui.DEFAULT, gui.TEXT_COLOR_PRESSED, gui.NewColorPropertyValue(colorTextPrimary))

	gui.SetStyle(gui.DEFAULT, gui.BORDER_COLOR_NORMAL, gui.NewColorPropertyValue(rl.NewColor(50, 50, 65, 255)))
	gui.SetStyle(gui.DEFAULT, gui.BORDER_COLOR_FOCUSED, gui.NewColorPropertyValue(colorAccent))

	gui.SetStyle(gui.DEFAULT, gui.TEXT_SIZE, 15)
}

// Hovered reports whether the mouse is over the panel drawn last frame.
func (h *HUD) Hovered() bool {
	return rl.CheckCollisionPointRec(rl.GetMousePosition(), h.bounds)
}

func (h *HUD) Draw(guns []*components.Gun, tally *Tally) {
	summary := tally.String()
	lines := strings.Count(summary, "\n") + 1
	h.bounds = rl.Rectangle{
		X:      hudX,
		Y:      hudY,
		Width:  hudWidth,
		Height: float32(30 + len(guns)*gunBlockH + lines*tallyLineH + 10),
	}
	gui.Panel(h.bounds, "Range")

	y := h.bounds.Y + 30
	for _, gun := range guns {
		h.drawGun(gun, y)
		y += gunBlockH
	}

	for i, line := range strings.Split(summary, "\n") {
		gui.Label(rl.Rectangle{X: hudX + 8, Y: y + float32(i*tallyLineH), Width: hudWidth - 16, Height: tallyLineH}, line)
	}
}

func (h *HUD) drawGun(gun *components.Gun, y float32) {
	x := float32(hudX + 8)
	w := float32(hudWidth - 16)

	name := gun.GetGameObject().Name
	gui.Label(rl.Rectangle{X: x, Y: y, Width: w, Height: 18}, fmt.Sprintf("%s  (%s)", name, gun.BarrelMode))

	ammo := "unlimited"
	value := float32(1)
	if gun.UseAmmo {
		ammo = fmt.Sprintf("%d/%d", gun.Ammo(), gun.MaxAmmo)
		if gun.MaxAmmo > 0 {
			value = float32(gun.Ammo()) / float32(gun.MaxAmmo)
		}
	}
	gui.ProgressBar(rl.Rectangle{X: x + 40, Y: y + 22, Width: w - 110, Height: 16}, "Ammo", ammo, value, 0, 1)

	if gui.Button(rl.Rectangle{X: x, Y: y + 44, Width: 90, Height: 22}, "Reload") {
		gun.ReloadAmmo()
	}
	gun.UseGimballedAiming = gui.CheckBox(rl.Rectangle{X: x + 104, Y: y + 47, Width: 16, Height: 16}, "Gimbal", gun.UseGimballedAiming)

	if !gun.ReadyToFire() {
		rl.DrawCircle(int32(x+w-8), int32(y+52), 5, colorAccent)
	}
}
