package components_test

import (
	"gunrange/internal/components"
	"gunrange/internal/engine"
	"testing"

	"github.com/gen2brain/raylib-go/easings"
	"github.com/stretchr/testify/assert"
)

func TestParticleEffectLifecycle(t *testing.T) {
	scene, w := newTestScene(t)
	fx := engine.NewGameObject("Impact")
	p := components.NewParticleEffect()
	p.Duration = 0.5
	p.Ease = easings.LinearNone
	p.DestroyOnFinish = true
	fx.AddComponent(p)
	scene.AddGameObject(fx)

	assert.Equal(t, float32(0), p.Size())
	assert.Equal(t, uint8(0), p.CurrentColor().A)

	p.Play()
	assert.True(t, p.Playing())
	assert.InDelta(t, p.StartSize, p.Size(), 1e-6)
	assert.Equal(t, p.Color.A, p.CurrentColor().A)

	p.Update(engine.Tick{Time: 0.25, Delta: 0.25})
	assert.InDelta(t, (p.StartSize+p.EndSize)/2, p.Size(), 1e-6)
	assert.InDelta(t, float64(p.Color.A)/2, float64(p.CurrentColor().A), 1)

	w.EXPECT().Destroy(fx)
	p.Update(engine.Tick{Time: 0.5, Delta: 0.25})
	assert.False(t, p.Playing())
}

func TestParticleEffectReplays(t *testing.T) {
	scene, _ := newTestScene(t)
	fx := engine.NewGameObject("MuzzleFlash")
	p := components.NewParticleEffect()
	fx.AddComponent(p)
	scene.AddGameObject(fx)

	p.Play()
	p.Update(engine.Tick{Time: 1, Delta: 1})
	assert.False(t, p.Playing())

	// kept alive: no Destroy expected on the mock
	engine.PlayAll(fx)
	assert.True(t, p.Playing())
	assert.Equal(t, 2, p.PlayCount())
}

func TestEaseByName(t *testing.T) {
	assert.InDelta(t, 0.5, components.EaseByName("linear")(1, 0, 1, 2), 1e-6)
	assert.InDelta(t, 0.75, components.EaseByName("quadOut")(1, 0, 1, 2), 1e-6)
	assert.InDelta(t, 0.5, components.EaseByName("nope")(1, 0, 1, 2), 1e-6)
}
