package engine

import (
	"fmt"
	"sort"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// Props are the JSON properties of a script entry in a scene file.
type Props map[string]any

// ScriptFactory creates a Component from scene file props.
type ScriptFactory func(props Props) Component

var scriptRegistry = map[string]ScriptFactory{}

// RegisterScript registers a named script factory. Registering the same
// name twice panics.
func RegisterScript(name string, factory ScriptFactory) {
	if _, exists := scriptRegistry[name]; exists {
		panic(fmt.Sprintf("script %q already registered", name))
	}
	scriptRegistry[name] = factory
}

// CreateScript looks up a registered script by name and creates it with the given props.
func CreateScript(name string, props Props) Component {
	factory, ok := scriptRegistry[name]
	if !ok {
		return nil
	}
	if props == nil {
		props = Props{}
	}
	return factory(props)
}

// RegisteredScripts returns the registered script names in sorted order.
func RegisteredScripts() []string {
	names := make([]string, 0, len(scriptRegistry))
	for name := range scriptRegistry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func (p Props) Float(key string, fallback float64) float64 {
	if v, ok := p[key].(float64); ok {
		return v
	}
	return fallback
}

func (p Props) Float32(key string, fallback float32) float32 {
	if v, ok := p[key].(float64); ok {
		return float32(v)
	}
	return fallback
}

func (p Props) Bool(key string, fallback bool) bool {
	if v, ok := p[key].(bool); ok {
		return v
	}
	return fallback
}

func (p Props) String(key string, fallback string) string {
	if v, ok := p[key].(string); ok {
		return v
	}
	return fallback
}

// Strings reads a JSON array of strings, skipping non-string entries.
func (p Props) Strings(key string) []string {
	raw, ok := p[key].([]any)
	if !ok {
		return nil
	}
	out := make([]string, 0, len(raw))
	for _, v := range raw {
		if s, ok := v.(string); ok {
			out = append(out, s)
		}
	}
	return out
}

// Vector3 reads a three element JSON array.
func (p Props) Vector3(key string, fallback rl.Vector3) rl.Vector3 {
	raw, ok := p[key].([]any)
	if !ok || len(raw) != 3 {
		return fallback
	}
	var xyz [3]float32
	for i, v := range raw {
		f, ok := v.(float64)
		if !ok {
			return fallback
		}
		xyz[i] = float32(f)
	}
	return rl.Vector3{X: xyz[0], Y: xyz[1], Z: xyz[2]}
}

// Refs reads a list of object UIDs, dropping malformed entries.
func (p Props) Refs(key string) []GameObjectRef {
	var refs []GameObjectRef
	for _, s := range p.Strings(key) {
		if ref, err := ParseRef(s); err == nil {
			refs = append(refs, ref)
		}
	}
	return refs
}
