// Package scenefile reads and writes the JSON scene format and instantiates
// the described objects into a live scene with physics and animation wired.
package scenefile

import (
	"encoding/json"
	"fmt"
	"os"

	rl "github.com/gen2brain/raylib-go/raylib"

	"vis3d/internal/animation"
	"vis3d/internal/collider"
	"vis3d/internal/engine"
	"vis3d/internal/geometry"
	"vis3d/internal/physics"
)

// --- JSON types ---

type SceneFile struct {
	Name    string      `json:"name,omitempty"`
	Gravity *[3]float32 `json:"gravity,omitempty"`
	Objects []ObjectDef `json:"objects"`
}

type ObjectDef struct {
	Name      string        `json:"name"`
	Position  [3]float32    `json:"position"`
	Rotation  [3]float32    `json:"rotation,omitempty"`
	Scale     [3]float32    `json:"scale,omitempty"`
	Shape     ShapeDef      `json:"shape"`
	Physics   *PhysicsDef   `json:"physics,omitempty"`
	Animators []AnimatorDef `json:"animators,omitempty"`
}

// ShapeDef names a primitive and its dimensions. Zero-valued dimensions fall
// back to per-kind defaults so hand-written files can stay short.
type ShapeDef struct {
	Kind        string  `json:"kind"`
	Size        float32 `json:"size,omitempty"`
	Radius      float32 `json:"radius,omitempty"`
	Height      float32 `json:"height,omitempty"`
	MajorRadius float32 `json:"majorRadius,omitempty"`
	MinorRadius float32 `json:"minorRadius,omitempty"`
	Resolution  int     `json:"resolution,omitempty"`
	Z           float32 `json:"z,omitempty"`
}

// PhysicsDef carries registration overrides. Absent fields keep the engine's
// defaults, so the pointer-ness must survive the JSON round trip.
type PhysicsDef struct {
	Enabled     *bool        `json:"enabled,omitempty"`
	Mass        *float32     `json:"mass,omitempty"`
	Velocity    *[3]float32  `json:"velocity,omitempty"`
	Static      *bool        `json:"static,omitempty"`
	Restitution *float32     `json:"restitution,omitempty"`
	Friction    *float32     `json:"friction,omitempty"`
	Collider    *ColliderDef `json:"collider,omitempty"`
}

type ColliderDef struct {
	Kind        *string  `json:"kind,omitempty"`
	Radius      *float32 `json:"radius,omitempty"`
	Height      *float32 `json:"height,omitempty"`
	MajorRadius *float32 `json:"majorRadius,omitempty"`
	MinorRadius *float32 `json:"minorRadius,omitempty"`
}

type AnimatorDef struct {
	Kind  string             `json:"kind"`
	Props map[string]float64 `json:"props,omitempty"`
}

// --- Loading and saving ---

func Load(path string) (*SceneFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read scene: %w", err)
	}
	var sf SceneFile
	if err := json.Unmarshal(data, &sf); err != nil {
		return nil, fmt.Errorf("parse scene: %w", err)
	}
	return &sf, nil
}

func Save(path string, sf *SceneFile) error {
	data, err := json.MarshalIndent(sf, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal scene: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("write scene: %w", err)
	}
	return nil
}

// --- Building ---

// Build instantiates every object definition into the scene, registers the
// ones carrying a physics block, and attaches their animators. The physics
// engine and animation manager may be nil when the caller only wants meshes.
func Build(sf *SceneFile, scene *engine.Scene, eng *physics.Engine, anims *animation.Manager) error {
	if eng != nil && sf.Gravity != nil {
		eng.SetGravity(vec3(*sf.Gravity))
	}

	for _, def := range sf.Objects {
		obj, err := buildObject(def)
		if err != nil {
			return fmt.Errorf("object %q: %w", def.Name, err)
		}
		if err := scene.Add(obj); err != nil {
			return err
		}

		if eng != nil && def.Physics != nil {
			if err := eng.RegisterObject(obj, physicsParams(def.Physics)); err != nil {
				return fmt.Errorf("object %q: %w", def.Name, err)
			}
		}
		if anims != nil {
			for _, adef := range def.Animators {
				a, err := animation.New(adef.Kind, adef.Props)
				if err != nil {
					return fmt.Errorf("object %q: %w", def.Name, err)
				}
				if err := anims.Attach(obj, a); err != nil {
					return fmt.Errorf("object %q: %w", def.Name, err)
				}
			}
		}
	}
	return nil
}

func buildObject(def ObjectDef) (*engine.Object, error) {
	vertices, faces, shape, err := buildMesh(def.Shape)
	if err != nil {
		return nil, err
	}

	obj := engine.NewObject(def.Name, vertices, faces)
	obj.Shape = shape
	obj.Transform.Position = vec3(def.Position)
	obj.Transform.Rotation = vec3(def.Rotation)
	if def.Scale == ([3]float32{}) {
		obj.Transform.Scale = rl.Vector3{X: 1, Y: 1, Z: 1}
	} else {
		obj.Transform.Scale = vec3(def.Scale)
	}
	return obj, nil
}

// buildMesh generates the primitive's triangle mesh and the matching analytic
// collider, centered at the origin; placement comes from the transform.
func buildMesh(def ShapeDef) ([]rl.Vector3, []geometry.Face, collider.Collider, error) {
	res := def.Resolution
	if res <= 0 {
		res = 16
	}
	origin := rl.Vector3{}

	switch def.Kind {
	case "cube":
		size := fallback(def.Size, 1)
		v, f := geometry.Cube(size, origin)
		half := size / 2
		return v, f, collider.Box(collider.AABB{
			Min: rl.Vector3{X: -half, Y: -half, Z: -half},
			Max: rl.Vector3{X: half, Y: half, Z: half},
		}), nil

	case "sphere":
		radius := fallback(def.Radius, 1)
		v, f := geometry.Sphere(radius, origin, res)
		return v, f, collider.Sphere(radius), nil

	case "cylinder":
		radius := fallback(def.Radius, 1)
		height := fallback(def.Height, 2)
		v, f := geometry.Cylinder(radius, height, origin, res)
		return v, f, collider.Cylinder(radius, height), nil

	case "cone":
		radius := fallback(def.Radius, 1)
		height := fallback(def.Height, 2)
		v, f := geometry.Cone(radius, height, origin, res)
		return v, f, collider.Cone(radius, height), nil

	case "torus":
		major := fallback(def.MajorRadius, 1)
		minor := fallback(def.MinorRadius, 0.3)
		v, f := geometry.Torus(major, minor, origin, res)
		return v, f, collider.Torus(major, minor), nil

	case "floor":
		size := fallback(def.Size, 10)
		v, f := geometry.Floor(size, def.Z)
		return v, f, collider.Collider{}, nil
	}
	return nil, nil, collider.Collider{}, fmt.Errorf("unknown shape kind %q", def.Kind)
}

func physicsParams(def *PhysicsDef) *physics.Params {
	params := &physics.Params{
		Enabled:     def.Enabled,
		Mass:        def.Mass,
		Static:      def.Static,
		Restitution: def.Restitution,
		Friction:    def.Friction,
	}
	if def.Velocity != nil {
		v := vec3(*def.Velocity)
		params.Velocity = &v
	}
	if def.Collider != nil {
		cp := &physics.ColliderParams{
			Radius:      def.Collider.Radius,
			Height:      def.Collider.Height,
			MajorRadius: def.Collider.MajorRadius,
			MinorRadius: def.Collider.MinorRadius,
		}
		if def.Collider.Kind != nil {
			t, err := parseColliderType(*def.Collider.Kind)
			if err == nil {
				cp.Type = &t
			}
		}
		params.Collider = cp
	}
	return params
}

func parseColliderType(kind string) (collider.Type, error) {
	switch kind {
	case "sphere":
		return collider.TypeSphere, nil
	case "box":
		return collider.TypeBox, nil
	case "cylinder":
		return collider.TypeCylinder, nil
	case "cone":
		return collider.TypeCone, nil
	case "torus":
		return collider.TypeTorus, nil
	}
	return collider.TypeNone, fmt.Errorf("unknown collider kind %q", kind)
}

func vec3(a [3]float32) rl.Vector3 {
	return rl.Vector3{X: a[0], Y: a[1], Z: a[2]}
}

func fallback(v, def float32) float32 {
	if v > 0 {
		return v
	}
	return def
}
