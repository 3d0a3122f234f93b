// gen-scene writes a starter scene file: a static floor plus the five
// primitives with a mix of static, dynamic and animated objects.
package main

import (
	"flag"
	"log"

	"vis3d/internal/scenefile"
)

func main() {
	out := flag.String("o", "scene.json", "output scene file path")
	flag.Parse()

	sf := demoScene()
	if err := scenefile.Save(*out, sf); err != nil {
		log.Fatalf("gen-scene: %v", err)
	}
	log.Printf("gen-scene: wrote %s (%d objects)", *out, len(sf.Objects))
}

func demoScene() *scenefile.SceneFile {
	return &scenefile.SceneFile{
		Name: "demo",
		Objects: []scenefile.ObjectDef{
			{
				Name:  "floor",
				Shape: scenefile.ShapeDef{Kind: "floor", Size: 20},
			},
			{
				Name:     "crate",
				Position: [3]float32{-3, 0, 0.5},
				Shape:    scenefile.ShapeDef{Kind: "cube", Size: 1},
				Physics:  &scenefile.PhysicsDef{Static: boolPtr(true)},
			},
			{
				Name:     "ball",
				Position: [3]float32{0, 0, 5},
				Shape:    scenefile.ShapeDef{Kind: "sphere", Radius: 0.5},
				Physics: &scenefile.PhysicsDef{
					Mass:        floatPtr(2),
					Restitution: floatPtr(0.7),
				},
			},
			{
				Name:     "drum",
				Position: [3]float32{3, 0, 1},
				Shape:    scenefile.ShapeDef{Kind: "cylinder", Radius: 0.6, Height: 2},
				Physics:  &scenefile.PhysicsDef{Static: boolPtr(true)},
			},
			{
				Name:     "spike",
				Position: [3]float32{0, 3, 1},
				Shape:    scenefile.ShapeDef{Kind: "cone", Radius: 0.8, Height: 2},
				Physics:  &scenefile.PhysicsDef{Static: boolPtr(true)},
			},
			{
				Name:     "ring",
				Position: [3]float32{0, -3, 2},
				Shape:    scenefile.ShapeDef{Kind: "torus", MajorRadius: 1, MinorRadius: 0.25},
				Animators: []scenefile.AnimatorDef{
					{Kind: "spin", Props: map[string]float64{"axis_z": 1, "speed": 45}},
					{Kind: "bob", Props: map[string]float64{"origin_y": -3, "origin_z": 2, "amplitude": 0.5}},
				},
			},
		},
	}
}

func floatPtr(v float32) *float32 { return &v }

func boolPtr(v bool) *bool { return &v }
