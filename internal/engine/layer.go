package engine

import "fmt"

// Layer is the collision category of a GameObject.
type Layer uint8

const (
	LayerDefault Layer = iota
	LayerProjectile
	LayerEnvironment
	LayerTarget
)

// LayerMask is a set of layers, one bit per layer.
type LayerMask uint32

const (
	NoLayers  LayerMask = 0
	AllLayers LayerMask = ^LayerMask(0)
)

var layerNames = map[string]Layer{
	"Default":     LayerDefault,
	"Projectile":  LayerProjectile,
	"Environment": LayerEnvironment,
	"Target":      LayerTarget,
}

func (l Layer) Mask() LayerMask {
	return 1 << LayerMask(l)
}

func (l Layer) String() string {
	for name, layer := range layerNames {
		if layer == l {
			return name
		}
	}
	return fmt.Sprintf("Layer%d", uint8(l))
}

// MaskOf builds a mask containing exactly the given layers.
func MaskOf(layers ...Layer) LayerMask {
	var m LayerMask
	for _, l := range layers {
		m |= l.Mask()
	}
	return m
}

func (m LayerMask) Contains(l Layer) bool {
	return m&l.Mask() != 0
}

// ParseLayer accepts a layer name or "LayerN" for unnamed layers.
func ParseLayer(name string) (Layer, error) {
	if l, ok := layerNames[name]; ok {
		return l, nil
	}
	var n uint8
	if _, err := fmt.Sscanf(name, "Layer%d", &n); err == nil && n < 32 {
		return Layer(n), nil
	}
	return 0, fmt.Errorf("unknown layer %q", name)
}

// ParseLayerMask turns a list of layer names into a mask. "Everything"
// selects all layers; an empty list selects none.
func ParseLayerMask(names []string) (LayerMask, error) {
	var m LayerMask
	for _, name := range names {
		if name == "Everything" {
			return AllLayers, nil
		}
		l, err := ParseLayer(name)
		if err != nil {
			return 0, err
		}
		m |= l.Mask()
	}
	return m, nil
}
