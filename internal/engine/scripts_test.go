package engine

import (
	"testing"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/stretchr/testify/assert"
)

// Mock script for testing
type MockScript struct {
	BaseComponent
	Speed  float32
	Health int
}

func mockFactory(props Props) Component {
	return &MockScript{
		Speed:  props.Float32("speed", 1),
		Health: int(props.Float("health", 10)),
	}
}

func TestRegisterScript(t *testing.T) {
	// Clear registry for clean test
	scriptRegistry = map[string]ScriptFactory{}

	RegisterScript("MockScript", mockFactory)

	if _, exists := scriptRegistry["MockScript"]; !exists {
		t.Error("Script not registered")
	}
}

func TestRegisterScriptDuplicate(t *testing.T) {
	scriptRegistry = map[string]ScriptFactory{}

	RegisterScript("Duplicate", mockFactory)

	defer func() {
		if r := recover(); r == nil {
			t.Error("Expected panic on duplicate registration")
		}
	}()

	RegisterScript("Duplicate", mockFactory)
}

func TestCreateScript(t *testing.T) {
	scriptRegistry = map[string]ScriptFactory{}
	RegisterScript("MockScript", mockFactory)

	component := CreateScript("MockScript", Props{
		"speed":  float64(10.5),
		"health": float64(100),
	})
	script, ok := component.(*MockScript)
	if !ok {
		t.Fatal("CreateScript didn't return MockScript")
	}
	if script.Speed != 10.5 {
		t.Errorf("Expected Speed 10.5, got %f", script.Speed)
	}
	if script.Health != 100 {
		t.Errorf("Expected Health 100, got %d", script.Health)
	}
}

func TestCreateScriptDefaults(t *testing.T) {
	scriptRegistry = map[string]ScriptFactory{}
	RegisterScript("MockScript", mockFactory)

	script := CreateScript("MockScript", nil).(*MockScript)

	assert.Equal(t, float32(1), script.Speed)
	assert.Equal(t, 10, script.Health)
}

func TestCreateScriptNotFound(t *testing.T) {
	scriptRegistry = map[string]ScriptFactory{}

	if CreateScript("DoesNotExist", nil) != nil {
		t.Error("CreateScript should return nil for non-existent script")
	}
}

func TestRegisteredScriptsSorted(t *testing.T) {
	scriptRegistry = map[string]ScriptFactory{}
	RegisterScript("ScriptC", mockFactory)
	RegisterScript("ScriptA", mockFactory)
	RegisterScript("ScriptB", mockFactory)

	assert.Equal(t, []string{"ScriptA", "ScriptB", "ScriptC"}, RegisteredScripts())
}

func TestPropsAccessors(t *testing.T) {
	target := NewGameObject("Target")
	p := Props{
		"rate":   float64(2.5),
		"on":     true,
		"name":   "gun",
		"list":   []any{"a", 3.0, "b"},
		"vec":    []any{1.0, 2.0, 3.0},
		"badVec": []any{1.0, "x", 3.0},
		"refs":   []any{target.UID.String(), "not-a-uuid"},
	}

	assert.Equal(t, 2.5, p.Float("rate", 0))
	assert.Equal(t, 7.0, p.Float("missing", 7))
	assert.True(t, p.Bool("on", false))
	assert.Equal(t, "gun", p.String("name", ""))
	assert.Equal(t, []string{"a", "b"}, p.Strings("list"))
	assert.Equal(t, rl.Vector3{X: 1, Y: 2, Z: 3}, p.Vector3("vec", rl.Vector3{}))
	assert.Equal(t, rl.Vector3{X: 9}, p.Vector3("badVec", rl.Vector3{X: 9}))

	refs := p.Refs("refs")
	if assert.Len(t, refs, 1) {
		assert.Equal(t, target.UID, refs[0].UID)
	}
}
