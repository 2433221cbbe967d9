package engine

import "github.com/google/uuid"

type Scene struct {
	Name        string
	GameObjects []*GameObject
	World       WorldAccess
	byUID       map[uuid.UUID]*GameObject
}

func NewScene(name string) *Scene {
	return &Scene{
		Name:        name,
		GameObjects: make([]*GameObject, 0),
		byUID:       make(map[uuid.UUID]*GameObject),
	}
}

func (s *Scene) AddGameObject(g *GameObject) {
	g.Scene = s
	s.GameObjects = append(s.GameObjects, g)
	s.byUID[g.UID] = g
}

func (s *Scene) RemoveGameObject(g *GameObject) {
	for i, obj := range s.GameObjects {
		if obj == g {
			s.GameObjects = append(s.GameObjects[:i], s.GameObjects[i+1:]...)
			delete(s.byUID, g.UID)
			return
		}
	}
}

func (s *Scene) FindByUID(uid uuid.UUID) *GameObject {
	return s.byUID[uid]
}

func (s *Scene) FindByName(name string) *GameObject {
	for _, g := range s.GameObjects {
		if g.Name == name {
			return g
		}
	}
	return nil
}

func (s *Scene) FindByTag(tag string) []*GameObject {
	var result []*GameObject
	for _, g := range s.GameObjects {
		if g.HasTag(tag) {
			result = append(result, g)
		}
	}
	return result
}

func (s *Scene) Start() {
	for _, g := range s.snapshot() {
		g.Start()
	}
}

// Update ticks every object present when the call began. Objects spawned
// during the pass wait for the next tick.
func (s *Scene) Update(t Tick) {
	for _, g := range s.snapshot() {
		g.Update(t)
	}
}

func (s *Scene) FixedUpdate(t Tick) {
	for _, g := range s.snapshot() {
		g.FixedUpdate(t)
	}
}

func (s *Scene) snapshot() []*GameObject {
	objs := make([]*GameObject, len(s.GameObjects))
	copy(objs, s.GameObjects)
	return objs
}
