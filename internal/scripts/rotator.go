package scripts

import (
	"gunrange/internal/engine"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// Rotator is a simple script that spins an object around the Y axis.
type Rotator struct {
	engine.BaseComponent
	Speed float32 // degrees per second
}

func (r *Rotator) Update(t engine.Tick) {
	g := r.GetGameObject()
	if g == nil {
		return
	}
	step := rl.QuaternionFromAxisAngle(engine.WorldUp, r.Speed*float32(t.Delta)*rl.Deg2rad)
	g.Transform.Rotation = rl.QuaternionNormalize(rl.QuaternionMultiply(step, g.Transform.Rotation))
}

func init() {
	engine.RegisterScript("Rotator", rotatorFactory)
}

func rotatorFactory(props engine.Props) engine.Component {
	return &Rotator{Speed: props.Float32("speed", 90)}
}
