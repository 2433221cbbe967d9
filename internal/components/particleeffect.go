package components

import (
	"gunrange/internal/engine"

	"github.com/gen2brain/raylib-go/easings"
	rl "github.com/gen2brain/raylib-go/raylib"
)

// EaseFunc follows the easings package signature: time, begin, change, duration.
type EaseFunc func(t, b, c, d float32) float32

var easeByName = map[string]EaseFunc{
	"linear":    easings.LinearNone,
	"quadOut":   easings.QuadOut,
	"cubicOut":  easings.CubicOut,
	"expoOut":   easings.ExpoOut,
	"sineInOut": easings.SineInOut,
}

// EaseByName looks up a named curve. Unknown names fall back to linear.
func EaseByName(name string) EaseFunc {
	if f, ok := easeByName[name]; ok {
		return f
	}
	return easings.LinearNone
}

// ParticleEffect is a flash that grows from StartSize to EndSize while
// fading out over Duration seconds. Muzzle flashes stay parented to their
// barrel and replay; impact effects set DestroyOnFinish.
type ParticleEffect struct {
	engine.BaseComponent

	Duration        float32
	StartSize       float32
	EndSize         float32
	Color           rl.Color
	Ease            EaseFunc
	DestroyOnFinish bool

	playing bool
	elapsed float32
	plays   int
}

func NewParticleEffect() *ParticleEffect {
	return &ParticleEffect{
		Duration:  0.1,
		StartSize: 0.2,
		EndSize:   0.6,
		Color:     rl.Orange,
		Ease:      easings.QuadOut,
	}
}

// Play restarts the effect from the beginning.
func (p *ParticleEffect) Play() {
	p.playing = true
	p.elapsed = 0
	p.plays++
}

func (p *ParticleEffect) Update(t engine.Tick) {
	if !p.playing {
		return
	}
	p.elapsed += float32(t.Delta)
	if p.elapsed < p.Duration {
		return
	}
	p.playing = false
	if !p.DestroyOnFinish {
		return
	}
	if w := p.World(); w != nil {
		w.Destroy(p.GetGameObject())
	}
}

func (p *ParticleEffect) Playing() bool {
	return p.playing
}

func (p *ParticleEffect) PlayCount() int {
	return p.plays
}

// Size is the current radius, zero when idle.
func (p *ParticleEffect) Size() float32 {
	if !p.playing {
		return 0
	}
	return p.ease()(p.elapsed, p.StartSize, p.EndSize-p.StartSize, p.Duration)
}

// CurrentColor is Color with alpha faded toward zero.
func (p *ParticleEffect) CurrentColor() rl.Color {
	c := p.Color
	if !p.playing {
		c.A = 0
		return c
	}
	alpha := p.ease()(p.elapsed, 1, -1, p.Duration)
	if alpha < 0 {
		alpha = 0
	} else if alpha > 1 {
		alpha = 1
	}
	c.A = uint8(float32(c.A) * alpha)
	return c
}

func (p *ParticleEffect) ease() EaseFunc {
	if p.Ease == nil {
		return easings.LinearNone
	}
	return p.Ease
}
