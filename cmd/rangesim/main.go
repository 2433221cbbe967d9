// Headless range: loads a scene, holds the trigger in bursts and prints
// what the bullets did.
package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"gunrange/internal/components"
	"gunrange/internal/engine"
	"gunrange/internal/game"
	"gunrange/internal/input"
	_ "gunrange/internal/scripts"
	"gunrange/internal/world"
)

func main() {
	scene := flag.String("scene", "assets/scenes/range.json", "scene file to load")
	ticks := flag.Int("ticks", 600, "variable ticks to simulate")
	dt := flag.Float64("dt", 1.0/60.0, "seconds per tick")
	seed := flag.Int64("seed", 0, "deviation seed (0 keeps the scene's)")
	burst := flag.Int("burst", 30, "ticks the trigger is held per burst")
	pause := flag.Int("pause", 15, "ticks between bursts (reloads on release)")
	flag.Parse()

	if err := run(*scene, *ticks, *dt, *seed, *burst, *pause); err != nil {
		fmt.Fprintf(os.Stderr, "rangesim: %v\n", err)
		os.Exit(1)
	}
}

func run(scenePath string, ticks int, dt float64, seed int64, burst, pause int) error {
	input.SetDefault(&input.Burst{On: burst, Off: pause, ReloadOnRelease: true})

	w := world.New(1)
	if err := w.LoadScene(scenePath); err != nil {
		return err
	}
	if seed != 0 {
		w.Reseed(seed)
	}
	w.Start()

	tally := game.NewTally()
	guns := 0
	for _, obj := range w.Scene.GameObjects {
		if gun := engine.GetComponent[*components.Gun](obj); gun != nil {
			tally.Watch(gun)
			guns++
		}
	}

	start := time.Now()
	for i := 0; i < ticks; i++ {
		w.Step(dt)
		tally.Sweep()
	}
	elapsed := time.Since(start)

	fmt.Printf("%s: %d guns, %d ticks of %.4fs (%.2fs simulated) in %v\n",
		scenePath, guns, ticks, dt, w.Time(), elapsed)
	fmt.Println(tally)
	return nil
}
