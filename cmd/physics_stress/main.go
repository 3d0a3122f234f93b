// Stress test for the O(n²) collision pass: random sphere fields at
// increasing object counts, timing one full simulation step.
package main

import (
	"fmt"
	"math/rand"
	"time"

	rl "github.com/gen2brain/raylib-go/raylib"

	"vis3d/internal/engine"
	"vis3d/internal/physics"
)

func main() {
	testCounts := []int{100, 250, 500, 1000, 2000}

	for _, count := range testCounts {
		stepTime := timeSphereField(count)
		budget := time.Second / 60
		verdict := "ok"
		if stepTime > budget {
			verdict = "over 60Hz budget"
		}
		fmt.Printf("%5d objects: %10v per step | %s\n",
			count, stepTime.Round(time.Microsecond), verdict)
	}
}

func timeSphereField(count int) time.Duration {
	rng := rand.New(rand.NewSource(42))
	eng := physics.New()
	eng.SetGravity(rl.Vector3{})

	// Spawn volume grows with count to keep contact density reasonable.
	spawnSize := float32(50) + float32(count)/100

	for i := 0; i < count; i++ {
		obj := engine.NewObject(fmt.Sprintf("sphere_%04d", i), nil, nil)
		obj.Transform.Position = rl.Vector3{
			X: rng.Float32()*spawnSize - spawnSize/2,
			Y: rng.Float32()*spawnSize - spawnSize/2,
			Z: rng.Float32()*spawnSize - spawnSize/2,
		}
		// Meshless objects default to a 0.5 bounding radius; scale gives
		// each sphere a random 0.5 to 1.0 world radius.
		s := 1 + rng.Float32()
		obj.Transform.Scale = rl.Vector3{X: s, Y: s, Z: s}

		if err := eng.RegisterObject(obj, nil); err != nil {
			panic(err)
		}
	}

	// Warm up
	eng.Step(1.0 / 60)

	const iterations = 10
	start := time.Now()
	for i := 0; i < iterations; i++ {
		eng.Step(1.0 / 60)
	}
	return time.Since(start) / iterations
}
