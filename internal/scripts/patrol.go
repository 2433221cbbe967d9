package scripts

import (
	"gunrange/internal/engine"
	"math"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// Patrol swings an object back and forth along Axis around the position it
// had at Start. It reports its velocity so guns mounted on it can hand it
// to their bullets.
type Patrol struct {
	engine.BaseComponent
	Axis      rl.Vector3
	Amplitude float32
	Speed     float32 // radians per second
	Phase     float32

	origin   rl.Vector3
	time     float32
	velocity rl.Vector3
}

func (p *Patrol) Start() {
	p.origin = p.GetGameObject().Transform.Position
	p.time = 0
	p.velocity = rl.Vector3{}
}

func (p *Patrol) Update(t engine.Tick) {
	g := p.GetGameObject()
	if g == nil {
		return
	}
	p.time += float32(t.Delta)

	axis := rl.Vector3Normalize(p.Axis)
	angle := float64(p.time*p.Speed + p.Phase)
	offset := float32(math.Sin(angle)) * p.Amplitude
	g.Transform.Position = rl.Vector3Add(p.origin, rl.Vector3Scale(axis, offset))
	p.velocity = rl.Vector3Scale(axis, float32(math.Cos(angle))*p.Amplitude*p.Speed)
}

// GetVelocity implements engine.VelocityProvider.
func (p *Patrol) GetVelocity() rl.Vector3 {
	return p.velocity
}

func init() {
	engine.RegisterScript("Patrol", patrolFactory)
}

func patrolFactory(props engine.Props) engine.Component {
	return &Patrol{
		Axis:      props.Vector3("axis", rl.Vector3{X: 1}),
		Amplitude: props.Float32("amplitude", 5),
		Speed:     props.Float32("speed", 1),
		Phase:     props.Float32("phase", 0),
	}
}
