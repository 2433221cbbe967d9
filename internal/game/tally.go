package game

import (
	"fmt"
	"gunrange/internal/components"
	"gunrange/internal/engine"
	"sort"
	"strings"
)

// Tally scores the shots of the guns it watches.
type Tally struct {
	Fired   int
	Impacts int
	Expired int
	Reloads int
	Hits    map[string]int // impacts per struck object name

	live []*components.Bullet
}

func NewTally() *Tally {
	return &Tally{Hits: make(map[string]int)}
}

// Watch subscribes to gun's Fired and Reloaded events.
func (t *Tally) Watch(gun *components.Gun) {
	gun.Reloaded.AddListener(func() {
		t.Reloads++
	})
	gun.Fired.AddListener(func(g *engine.GameObject) {
		b := engine.GetComponent[*components.Bullet](g)
		if b == nil {
			return
		}
		t.Fired++
		t.live = append(t.live, b)
		b.Impacted.AddListener(func(hit engine.RaycastResult) {
			if hit.GameObject != nil {
				t.Hits[hit.GameObject.Name]++
			}
		})
	})
}

// Sweep folds finished bullets into the counters.
func (t *Tally) Sweep() {
	kept := t.live[:0]
	for _, b := range t.live {
		switch b.State() {
		case components.BulletImpacted:
			t.Impacts++
		case components.BulletExpired:
			t.Expired++
		default:
			kept = append(kept, b)
		}
	}
	for i := len(kept); i < len(t.live); i++ {
		t.live[i] = nil
	}
	t.live = kept
}

// InFlight is the number of bullets not yet finished at the last Sweep.
func (t *Tally) InFlight() int {
	return len(t.live)
}

func (t *Tally) String() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "fired %d  impacts %d  expired %d  in flight %d  reloads %d",
		t.Fired, t.Impacts, t.Expired, t.InFlight(), t.Reloads)

	names := make([]string, 0, len(t.Hits))
	for name := range t.Hits {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		fmt.Fprintf(&sb, "\n  %-16s %d", name, t.Hits[name])
	}
	return sb.String()
}
