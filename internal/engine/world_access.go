package engine

import (
	"math/rand"

	rl "github.com/gen2brain/raylib-go/raylib"
)

//go:generate go tool mockgen -destination=./mocks/world_access_mock.go -package=mocks . WorldAccess

// RaycastResult holds information about a raycast hit.
// Defined here to avoid circular imports with physics package.
type RaycastResult struct {
	GameObject *GameObject
	Point      rl.Vector3
	Normal     rl.Vector3
	Distance   float32
}

// WorldAccess provides components with access to world-level operations
// without creating circular import dependencies.
type WorldAccess interface {
	// Raycast returns the nearest hit within maxDistance among objects whose
	// layer is in mask.
	Raycast(origin, direction rl.Vector3, maxDistance float32, mask LayerMask) (RaycastResult, bool)
	// Instantiate builds the named prefab at the given pose, adds it to the
	// scene and starts it. Returns nil for unknown prefabs.
	Instantiate(prefab string, position rl.Vector3, rotation rl.Quaternion) *GameObject
	SpawnObject(g *GameObject)
	Destroy(g *GameObject)
	Gravity() rl.Vector3
	Rand() *rand.Rand
}
