package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gunrange/internal/game"
	_ "gunrange/internal/scripts"
)

func main() {
	scene := flag.String("scene", "assets/scenes/range.json", "scene file to load")
	seed := flag.Int64("seed", 0, "deviation seed (0 keeps the scene's)")
	flag.Parse()

	// Change working directory to executable location for deployed builds.
	// Skip this for "go run" which puts the binary in a temp directory.
	if execPath, err := os.Executable(); err == nil {
		execDir := filepath.Dir(execPath)
		if !strings.Contains(execDir, "go-build") {
			os.Chdir(execDir)
		}
	}

	g := game.New(*seed)
	if err := g.Run(*scene, *seed); err != nil {
		fmt.Fprintf(os.Stderr, "gunrange: %v\n", err)
		os.Exit(1)
	}
}
