package animation

import (
	"fmt"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// Factory builds an animator from the loosely typed property map a scene file
// carries. Missing keys fall back to the factory's defaults.
type Factory func(props map[string]float64) Animator

var factories = map[string]Factory{}

// Register adds a named animator factory. Later registrations under the same
// name replace earlier ones.
func Register(kind string, factory Factory) {
	factories[kind] = factory
}

// New builds an animator by kind name.
func New(kind string, props map[string]float64) (Animator, error) {
	factory, exists := factories[kind]
	if !exists {
		return nil, fmt.Errorf("unknown animator kind %q", kind)
	}
	return factory(props), nil
}

func prop(props map[string]float64, key string, fallback float32) float32 {
	if v, ok := props[key]; ok {
		return float32(v)
	}
	return fallback
}

func init() {
	Register("spin", func(props map[string]float64) Animator {
		return &Spin{
			Axis: rl.Vector3{
				X: prop(props, "axis_x", 0),
				Y: prop(props, "axis_y", 0),
				Z: prop(props, "axis_z", 1),
			},
			Speed: prop(props, "speed", 90),
		}
	})
	Register("orbit", func(props map[string]float64) Animator {
		return &Orbit{
			Center: rl.Vector3{
				X: prop(props, "center_x", 0),
				Y: prop(props, "center_y", 0),
				Z: prop(props, "center_z", 0),
			},
			Radius: prop(props, "radius", 2),
			Speed:  prop(props, "speed", 1),
			Phase:  prop(props, "phase", 0),
		}
	})
	Register("bob", func(props map[string]float64) Animator {
		return &Bob{
			Origin: rl.Vector3{
				X: prop(props, "origin_x", 0),
				Y: prop(props, "origin_y", 0),
				Z: prop(props, "origin_z", 1),
			},
			Amplitude: prop(props, "amplitude", 0.5),
			Speed:     prop(props, "speed", 2),
			Phase:     prop(props, "phase", 0),
		}
	})
}
