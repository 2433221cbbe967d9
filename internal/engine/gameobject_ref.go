package engine

import (
	"fmt"

	"github.com/google/uuid"
)

// GameObjectRef is a serializable reference to a GameObject by UID.
// Guns use it for their barrel mounts so scene files can point at objects
// that are loaded later.
type GameObjectRef struct {
	UID uuid.UUID // uuid.Nil = none
}

// RefTo returns a reference to g.
func RefTo(g *GameObject) GameObjectRef {
	var r GameObjectRef
	r.Set(g)
	return r
}

// ParseRef parses the textual UID form used in scene files.
func ParseRef(s string) (GameObjectRef, error) {
	uid, err := uuid.Parse(s)
	if err != nil {
		return GameObjectRef{}, fmt.Errorf("parse ref %q: %w", s, err)
	}
	return GameObjectRef{UID: uid}, nil
}

// Get resolves the reference in scene. Returns nil for empty references,
// missing objects and destroyed objects.
func (r GameObjectRef) Get(scene *Scene) *GameObject {
	if r.UID == uuid.Nil || scene == nil {
		return nil
	}
	g := scene.FindByUID(r.UID)
	if g == nil || g.Destroyed() {
		return nil
	}
	return g
}

// IsValid reports whether the reference points at something. It does not
// check that the object exists.
func (r GameObjectRef) IsValid() bool {
	return r.UID != uuid.Nil
}

func (r *GameObjectRef) Set(g *GameObject) {
	if g == nil {
		r.UID = uuid.Nil
	} else {
		r.UID = g.UID
	}
}

func (r *GameObjectRef) Clear() {
	r.UID = uuid.Nil
}

func (r GameObjectRef) String() string {
	return r.UID.String()
}
