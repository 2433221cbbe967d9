package scripts

import (
	"gunrange/internal/components"
	"gunrange/internal/engine"
	"gunrange/internal/input"
	"log"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// FireTrigger forwards an input signal to a set of guns. With no gun
// references it drives the guns on its own object.
type FireTrigger struct {
	engine.BaseComponent
	Guns  []engine.GameObjectRef
	Input input.Source

	guns []*components.Gun
}

func (f *FireTrigger) Start() {
	g := f.GetGameObject()
	f.guns = f.guns[:0]
	if len(f.Guns) == 0 {
		for _, c := range g.Components() {
			if gun, ok := c.(*components.Gun); ok {
				f.guns = append(f.guns, gun)
			}
		}
		return
	}
	for _, ref := range f.Guns {
		gun := engine.GetComponent[*components.Gun](ref.Get(g.Scene))
		if gun == nil {
			log.Printf("FireTrigger: %s: no gun at %s", g.Name, ref)
			continue
		}
		f.guns = append(f.guns, gun)
	}
}

func (f *FireTrigger) Update(t engine.Tick) {
	if f.Input == nil {
		return
	}
	fire := f.Input.FireHeld()
	reload := f.Input.ReloadPressed()
	toggle := f.Input.ToggleGimbalPressed()

	for _, gun := range f.guns {
		if reload {
			gun.ReloadAmmo()
		}
		if toggle {
			gun.UseGimballedAiming = !gun.UseGimballedAiming
		}
	}
	if !fire {
		return
	}
	inherited := f.inheritedVelocity()
	for _, gun := range f.guns {
		gun.Fire(t.Time, inherited)
	}
}

// AimAt points every driven gun's gimbal at target.
func (f *FireTrigger) AimAt(target rl.Vector3) {
	for _, gun := range f.guns {
		gun.TargetPosition = target
	}
}

func (f *FireTrigger) DrivenGuns() []*components.Gun {
	return f.guns
}

func (f *FireTrigger) inheritedVelocity() rl.Vector3 {
	if vp := engine.GetComponent[engine.VelocityProvider](f.GetGameObject()); vp != nil {
		return vp.GetVelocity()
	}
	return rl.Vector3{}
}

func init() {
	engine.RegisterScript("FireTrigger", fireTriggerFactory)
}

func fireTriggerFactory(props engine.Props) engine.Component {
	return &FireTrigger{
		Guns:  props.Refs("guns"),
		Input: input.Default(),
	}
}
