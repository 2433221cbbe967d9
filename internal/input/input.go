// Package input supplies fire-trigger signals to harness scripts.
package input

import rl "github.com/gen2brain/raylib-go/raylib"

// Source is polled once per tick, FireHeld first.
type Source interface {
	FireHeld() bool
	ReloadPressed() bool
	ToggleGimbalPressed() bool
}

var defaultSource Source = None{}

// SetDefault installs the source scene-loaded triggers use.
func SetDefault(s Source) {
	if s == nil {
		s = None{}
	}
	defaultSource = s
}

func Default() Source {
	return defaultSource
}

// None never fires.
type None struct{}

func (None) FireHeld() bool            { return false }
func (None) ReloadPressed() bool       { return false }
func (None) ToggleGimbalPressed() bool { return false }

// Raylib reads the mouse and keyboard of the open window.
type Raylib struct {
	FireButton rl.MouseButton
	FireKey    int32
	ReloadKey  int32
	GimbalKey  int32
}

func NewRaylib() Raylib {
	return Raylib{
		FireButton: rl.MouseLeftButton,
		FireKey:    rl.KeySpace,
		ReloadKey:  rl.KeyR,
		GimbalKey:  rl.KeyG,
	}
}

func (r Raylib) FireHeld() bool {
	return rl.IsMouseButtonDown(r.FireButton) || rl.IsKeyDown(r.FireKey)
}

func (r Raylib) ReloadPressed() bool {
	return rl.IsKeyPressed(r.ReloadKey)
}

func (r Raylib) ToggleGimbalPressed() bool {
	return rl.IsKeyPressed(r.GimbalKey)
}

// Burst holds fire for On ticks then releases it for Off ticks, forever.
// Reload is pressed on the first tick of every release when ReloadOnRelease
// is set.
type Burst struct {
	On, Off         int
	ReloadOnRelease bool

	tick int
}

func (b *Burst) FireHeld() bool {
	period := b.On + b.Off
	if period <= 0 {
		return false
	}
	phase := b.tick % period
	b.tick++
	return phase < b.On
}

func (b *Burst) ReloadPressed() bool {
	period := b.On + b.Off
	if !b.ReloadOnRelease || period <= 0 || b.Off == 0 {
		return false
	}
	// FireHeld already advanced tick for this poll.
	return (b.tick-1)%period == b.On
}

func (b *Burst) ToggleGimbalPressed() bool { return false }
