package physics

import (
	"testing"

	rl "github.com/gen2brain/raylib-go/raylib"
)

func TestRaycastClosestHit(t *testing.T) {
	e := New()
	ballAt(t, e, "low", rl.Vector3{}, nil)
	ballAt(t, e, "high", rl.Vector3{Z: 3}, nil)

	hit, ok := e.Raycast(rl.Vector3{Z: 10}, rl.Vector3{Z: -1}, 100)
	if !ok {
		t.Fatal("Expected a hit")
	}
	if hit.Name != "high" {
		t.Errorf("Expected the closer object, got %q", hit.Name)
	}
	if !near(hit.Distance, 6.5, 1e-3) {
		t.Errorf("Expected distance 6.5, got %f", hit.Distance)
	}
	if !near(hit.Point.Z, 3.5, 1e-3) {
		t.Errorf("Expected hit point at z=3.5, got %f", hit.Point.Z)
	}
}

func TestRaycastMaxDistance(t *testing.T) {
	e := New()
	ballAt(t, e, "far", rl.Vector3{}, nil)

	if _, ok := e.Raycast(rl.Vector3{Z: 10}, rl.Vector3{Z: -1}, 5); ok {
		t.Error("Expected no hit beyond maxDistance")
	}
}

func TestRaycastNormalizesDirection(t *testing.T) {
	e := New()
	ballAt(t, e, "ball", rl.Vector3{}, nil)

	hit, ok := e.Raycast(rl.Vector3{Z: 10}, rl.Vector3{Z: -7}, 100)
	if !ok {
		t.Fatal("Expected a hit")
	}
	if !near(hit.Distance, 9.5, 1e-3) {
		t.Errorf("Expected distance 9.5, got %f", hit.Distance)
	}
}

func TestRaycastZeroDirection(t *testing.T) {
	e := New()
	ballAt(t, e, "ball", rl.Vector3{}, nil)

	if _, ok := e.Raycast(rl.Vector3{Z: 10}, rl.Vector3{}, 100); ok {
		t.Error("Expected no hit for a zero direction")
	}
}

func TestRaycastEmptyEngine(t *testing.T) {
	e := New()
	if _, ok := e.Raycast(rl.Vector3{Z: 10}, rl.Vector3{Z: -1}, 100); ok {
		t.Error("Expected no hit with nothing registered")
	}
}
