package engine

import (
	"fmt"

	rl "github.com/gen2brain/raylib-go/raylib"

	"vis3d/internal/collider"
	"vis3d/internal/geometry"
)

// Driver names the single subsystem allowed to write an object's position.
// Exactly one owner per object prevents the physics tick and the animation
// tick from fighting over the same transform in one frame.
type Driver int

const (
	DriverNone Driver = iota
	DriverPhysics
	DriverScript
)

func (d Driver) String() string {
	switch d {
	case DriverPhysics:
		return "physics"
	case DriverScript:
		return "script"
	}
	return "none"
}

type Transform struct {
	Position rl.Vector3
	Rotation rl.Vector3 // Euler angles in degrees
	Scale    rl.Vector3
}

// Object is a simulatable scene entity: a triangle mesh it owns, a transform,
// and an analytic collider shape. Bounding queries are cached and invalidated
// when the mesh is replaced.
type Object struct {
	Name      string
	Transform Transform

	// Shape is the unscaled analytic collider. TypeNone means "derive a
	// bounding sphere from the mesh" at registration time.
	Shape collider.Collider

	vertices []rl.Vector3
	faces    []geometry.Face

	driver Driver

	boundingRadius float32
	localBounds    collider.AABB
	geometryDirty  bool
}

func NewObject(name string, vertices []rl.Vector3, faces []geometry.Face) *Object {
	return &Object{
		Name: name,
		Transform: Transform{
			Scale: rl.Vector3{X: 1, Y: 1, Z: 1},
		},
		vertices:      vertices,
		faces:         faces,
		geometryDirty: true,
	}
}

func (o *Object) Vertices() []rl.Vector3 {
	return o.vertices
}

func (o *Object) Faces() []geometry.Face {
	return o.faces
}

// SetMesh replaces the geometry and invalidates the cached bounds.
func (o *Object) SetMesh(vertices []rl.Vector3, faces []geometry.Face) {
	o.vertices = vertices
	o.faces = faces
	o.geometryDirty = true
}

func (o *Object) refreshCache() {
	if !o.geometryDirty {
		return
	}
	o.boundingRadius = geometry.BoundingRadius(o.vertices)
	o.localBounds = geometry.Bounds(o.vertices)
	o.geometryDirty = false
}

// BoundingRadius returns the cached mesh bounding-sphere radius.
func (o *Object) BoundingRadius() float32 {
	o.refreshCache()
	return o.boundingRadius
}

// Bounds returns the cached local-space AABB of the mesh.
func (o *Object) Bounds() collider.AABB {
	o.refreshCache()
	return o.localBounds
}

// WorldBounds returns the mesh AABB scaled and translated by the current
// transform. Rotation is not applied; the box stays axis-aligned.
func (o *Object) WorldBounds() collider.AABB {
	return o.Bounds().Scale(o.Transform.Scale).Translate(o.Transform.Position)
}

// CollisionData returns the analytic collider adjusted for the current scale.
// Objects without an explicit shape fall back to a bounding sphere.
func (o *Object) CollisionData() collider.Collider {
	if o.Shape.Type == collider.TypeNone {
		return collider.Sphere(o.BoundingRadius()).Scaled(o.Transform.Scale)
	}
	return o.Shape.Scaled(o.Transform.Scale)
}

// RayIntersect tests a ray against the object's collider at its current
// world position. The direction must be unit length.
func (o *Object) RayIntersect(origin, direction rl.Vector3) (float32, bool) {
	return collider.RayIntersect(o.CollisionData(), o.Transform.Position, origin, direction)
}

func (o *Object) Driver() Driver {
	return o.driver
}

// ClaimDriver marks the object as owned by one position-writing subsystem.
// Claiming an object already owned by a different subsystem is an error.
func (o *Object) ClaimDriver(d Driver) error {
	if o.driver != DriverNone && o.driver != d {
		return fmt.Errorf("object %q is %s-driven, cannot claim for %s", o.Name, o.driver, d)
	}
	o.driver = d
	return nil
}

// ReleaseDriver clears ownership if held by the given subsystem.
func (o *Object) ReleaseDriver(d Driver) {
	if o.driver == d {
		o.driver = DriverNone
	}
}
