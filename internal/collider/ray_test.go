package collider

import (
	"testing"

	"github.com/chewxy/math32"
	rl "github.com/gen2brain/raylib-go/raylib"
)

var (
	down  = rl.Vector3{Z: -1}
	west  = rl.Vector3{X: -1}
	origo = rl.Vector3{}
)

func near(a, b, tolerance float32) bool {
	return math32.Abs(a-b) <= tolerance
}

func TestRaySphereHit(t *testing.T) {
	dist, hit := RayIntersect(Sphere(1), origo, rl.Vector3{Z: 5}, down)
	if !hit {
		t.Fatal("Expected hit")
	}
	if !near(dist, 4, 1e-4) {
		t.Errorf("Expected distance 4, got %f", dist)
	}
}

func TestRaySphereMiss(t *testing.T) {
	if _, hit := RayIntersect(Sphere(1), origo, rl.Vector3{X: 5, Y: 5, Z: 5}, down); hit {
		t.Error("Expected miss")
	}
}

func TestRaySphereFromInside(t *testing.T) {
	dist, hit := RayIntersect(Sphere(1), origo, origo, down)
	if !hit {
		t.Fatal("Expected hit from inside")
	}
	if !near(dist, 1, 1e-4) {
		t.Errorf("Expected distance 1, got %f", dist)
	}
}

func TestRayBoxHit(t *testing.T) {
	box := Box(AABBFromCenter(origo, rl.Vector3{X: 1, Y: 1, Z: 1}))
	dist, hit := RayIntersect(box, origo, rl.Vector3{Z: 5}, down)
	if !hit {
		t.Fatal("Expected hit")
	}
	if !near(dist, 4.5, 1e-4) {
		t.Errorf("Expected distance 4.5, got %f", dist)
	}
}

func TestRayBoxAxisParallel(t *testing.T) {
	box := Box(AABBFromCenter(origo, rl.Vector3{X: 1, Y: 1, Z: 1}))

	// Parallel to Z inside the X/Y slabs.
	if _, hit := RayIntersect(box, origo, rl.Vector3{X: 0.4, Y: 0.4, Z: 5}, down); !hit {
		t.Error("Expected hit inside the slabs")
	}
	// Parallel to Z outside the X slab.
	if _, hit := RayIntersect(box, origo, rl.Vector3{X: 2, Z: 5}, down); hit {
		t.Error("Expected miss outside the slabs")
	}
}

func TestRayBoxTranslated(t *testing.T) {
	box := Box(AABBFromCenter(origo, rl.Vector3{X: 1, Y: 1, Z: 1}))
	center := rl.Vector3{X: 10}
	dist, hit := RayIntersect(box, center, rl.Vector3{X: 10, Z: 5}, down)
	if !hit {
		t.Fatal("Expected hit on translated box")
	}
	if !near(dist, 4.5, 1e-4) {
		t.Errorf("Expected distance 4.5, got %f", dist)
	}
}

func TestRayCylinderLateral(t *testing.T) {
	dist, hit := RayIntersect(Cylinder(1, 2), origo, rl.Vector3{X: 5}, west)
	if !hit {
		t.Fatal("Expected hit")
	}
	if !near(dist, 4, 1e-4) {
		t.Errorf("Expected distance 4, got %f", dist)
	}
}

func TestRayCylinderCap(t *testing.T) {
	dist, hit := RayIntersect(Cylinder(1, 2), origo, rl.Vector3{Z: 5}, down)
	if !hit {
		t.Fatal("Expected cap hit")
	}
	if !near(dist, 4, 1e-4) {
		t.Errorf("Expected distance 4, got %f", dist)
	}
}

func TestRayCylinderMissAboveRim(t *testing.T) {
	if _, hit := RayIntersect(Cylinder(1, 2), origo, rl.Vector3{X: 5, Z: 5}, down); hit {
		t.Error("Expected miss outside the cap disk")
	}
}

func TestRayConeLateral(t *testing.T) {
	// At z=0 the cone's cross-section radius is half the base radius, so the
	// ray from x=5 enters at x=0.5.
	dist, hit := RayIntersect(Cone(1, 2), origo, rl.Vector3{X: 5}, west)
	if !hit {
		t.Fatal("Expected hit")
	}
	if !near(dist, 4.5, 1e-4) {
		t.Errorf("Expected distance 4.5, got %f", dist)
	}
}

func TestRayConeApex(t *testing.T) {
	dist, hit := RayIntersect(Cone(1, 2), origo, rl.Vector3{Z: 5}, down)
	if !hit {
		t.Fatal("Expected apex hit")
	}
	if !near(dist, 4, 1e-4) {
		t.Errorf("Expected distance 4, got %f", dist)
	}
}

func TestRayConeMiss(t *testing.T) {
	if _, hit := RayIntersect(Cone(1, 2), origo, rl.Vector3{X: 5, Z: 5}, down); hit {
		t.Error("Expected miss")
	}
}

func TestRayTorusTopDown(t *testing.T) {
	dist, hit := RayIntersect(Torus(2, 0.5), origo, rl.Vector3{X: 2, Z: 5}, down)
	if !hit {
		t.Fatal("Expected tube hit")
	}
	if !near(dist, 4.5, 1e-4) {
		t.Errorf("Expected distance 4.5, got %f", dist)
	}
}

func TestRayTorusEdgeOn(t *testing.T) {
	dist, hit := RayIntersect(Torus(2, 0.5), origo, rl.Vector3{X: 5}, west)
	if !hit {
		t.Fatal("Expected edge-on tube hit")
	}
	if !near(dist, 2.5, 1e-4) {
		t.Errorf("Expected distance 2.5, got %f", dist)
	}
}

func TestRayTorusThroughHole(t *testing.T) {
	if _, hit := RayIntersect(Torus(2, 0.5), origo, rl.Vector3{Z: 5}, down); hit {
		t.Error("Expected the ray through the hole to miss")
	}
}

func TestRayZeroDirection(t *testing.T) {
	if _, hit := RayIntersect(Sphere(1), origo, rl.Vector3{Z: 5}, rl.Vector3{}); hit {
		t.Error("Expected no hit for a zero direction")
	}
}

func TestRayNoneCollider(t *testing.T) {
	if _, hit := RayIntersect(Collider{}, origo, rl.Vector3{Z: 5}, down); hit {
		t.Error("Expected no hit for TypeNone")
	}
}
