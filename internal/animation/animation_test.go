package animation

import (
	"testing"

	"github.com/chewxy/math32"
	rl "github.com/gen2brain/raylib-go/raylib"

	"vis3d/internal/engine"
)

func near(a, b, tolerance float32) bool {
	return math32.Abs(a-b) <= tolerance
}

func TestSpinWraps(t *testing.T) {
	obj := engine.NewObject("ring", nil, nil)
	spin := &Spin{Axis: rl.Vector3{Z: 1}, Speed: 90}

	for i := 0; i < 5; i++ {
		spin.Update(obj, 1)
	}

	// 450 degrees wraps to 90.
	if !near(obj.Transform.Rotation.Z, 90, 1e-3) {
		t.Errorf("Expected rotation 90, got %f", obj.Transform.Rotation.Z)
	}
	if obj.Transform.Position != (rl.Vector3{}) {
		t.Errorf("Spin should not move the object, got %v", obj.Transform.Position)
	}
	if spin.DrivesPosition() {
		t.Error("Spin must not report driving the position")
	}
}

func TestOrbitKeepsHeight(t *testing.T) {
	obj := engine.NewObject("moon", nil, nil)
	obj.Transform.Position = rl.Vector3{Z: 7}
	orbit := &Orbit{Radius: 2, Speed: math32.Pi}

	orbit.Update(obj, 1)

	if !near(obj.Transform.Position.X, -2, 1e-3) {
		t.Errorf("Expected x=-2 after half a turn, got %f", obj.Transform.Position.X)
	}
	if !near(obj.Transform.Position.Y, 0, 1e-3) {
		t.Errorf("Expected y=0 after half a turn, got %f", obj.Transform.Position.Y)
	}
	if obj.Transform.Position.Z != 7 {
		t.Errorf("Orbit should keep the height, got %f", obj.Transform.Position.Z)
	}
}

func TestBobOscillates(t *testing.T) {
	obj := engine.NewObject("buoy", nil, nil)
	bob := &Bob{Origin: rl.Vector3{Z: 1}, Amplitude: 0.5, Speed: math32.Pi / 2}

	bob.Update(obj, 1)
	if !near(obj.Transform.Position.Z, 1.5, 1e-3) {
		t.Errorf("Expected z=1.5 at the crest, got %f", obj.Transform.Position.Z)
	}

	bob.Update(obj, 2)
	if !near(obj.Transform.Position.Z, 0.5, 1e-3) {
		t.Errorf("Expected z=0.5 at the trough, got %f", obj.Transform.Position.Z)
	}
}

func TestManagerAttachConflict(t *testing.T) {
	m := NewManager()
	obj := engine.NewObject("ball", nil, nil)
	if err := obj.ClaimDriver(engine.DriverPhysics); err != nil {
		t.Fatalf("Claim failed: %v", err)
	}

	if err := m.Attach(obj, &Orbit{Radius: 1, Speed: 1}); err == nil {
		t.Error("Expected conflict attaching an orbit to a physics-driven object")
	}
	// Rotation-only animators are fine alongside physics.
	if err := m.Attach(obj, &Spin{Axis: rl.Vector3{Z: 1}, Speed: 90}); err != nil {
		t.Errorf("Spin attach should succeed: %v", err)
	}
}

func TestManagerDetach(t *testing.T) {
	m := NewManager()
	obj := engine.NewObject("moon", nil, nil)

	if err := m.Attach(obj, &Orbit{Radius: 1, Speed: 1}); err != nil {
		t.Fatalf("Attach failed: %v", err)
	}
	if obj.Driver() != engine.DriverScript {
		t.Errorf("Expected script driver after attach, got %s", obj.Driver())
	}
	if m.Count() != 1 {
		t.Errorf("Expected 1 animated object, got %d", m.Count())
	}

	m.Detach("moon")
	if obj.Driver() != engine.DriverNone {
		t.Errorf("Expected driver released after detach, got %s", obj.Driver())
	}
	if m.Count() != 0 {
		t.Errorf("Expected 0 animated objects, got %d", m.Count())
	}

	m.Detach("moon")
}

func TestManagerUpdateRunsAllAnimators(t *testing.T) {
	m := NewManager()
	obj := engine.NewObject("ring", nil, nil)

	if err := m.Attach(obj, &Spin{Axis: rl.Vector3{Z: 1}, Speed: 90}); err != nil {
		t.Fatalf("Attach failed: %v", err)
	}
	if err := m.Attach(obj, &Bob{Origin: rl.Vector3{Z: 1}, Amplitude: 0.5, Speed: math32.Pi / 2}); err != nil {
		t.Fatalf("Attach failed: %v", err)
	}

	m.Update(1)

	if !near(obj.Transform.Rotation.Z, 90, 1e-3) {
		t.Errorf("Expected spin applied, rotation %f", obj.Transform.Rotation.Z)
	}
	if !near(obj.Transform.Position.Z, 1.5, 1e-3) {
		t.Errorf("Expected bob applied, z %f", obj.Transform.Position.Z)
	}
}

func TestRegistryDefaults(t *testing.T) {
	a, err := New("spin", nil)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	spin, ok := a.(*Spin)
	if !ok {
		t.Fatalf("Expected *Spin, got %T", a)
	}
	if spin.Speed != 90 || spin.Axis.Z != 1 {
		t.Errorf("Unexpected defaults: speed %f axis %v", spin.Speed, spin.Axis)
	}
}

func TestRegistryProps(t *testing.T) {
	a, err := New("orbit", map[string]float64{"radius": 3, "speed": 0.5})
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	orbit := a.(*Orbit)
	if orbit.Radius != 3 || orbit.Speed != 0.5 {
		t.Errorf("Props not applied: radius %f speed %f", orbit.Radius, orbit.Speed)
	}
}

func TestRegistryUnknownKind(t *testing.T) {
	if _, err := New("warp", nil); err == nil {
		t.Error("Expected error for an unknown animator kind")
	}
}
