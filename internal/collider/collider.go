package collider

import rl "github.com/gen2brain/raylib-go/raylib"

// DefaultBoundingRadius is the fallback for objects with no geometry.
const DefaultBoundingRadius = 0.5

// Type identifies the analytic shape used for collision and ray tests.
// It is distinct from the render mesh, which may be arbitrarily tessellated.
type Type int

const (
	TypeNone Type = iota
	TypeSphere
	TypeBox
	TypeCylinder
	TypeCone
	TypeTorus
)

func (t Type) String() string {
	switch t {
	case TypeNone:
		return "none"
	case TypeSphere:
		return "sphere"
	case TypeBox:
		return "box"
	case TypeCylinder:
		return "cylinder"
	case TypeCone:
		return "cone"
	case TypeTorus:
		return "torus"
	}
	return "unknown"
}

// Collider is a tagged union over the five analytic shapes. Only the fields
// relevant to Type are meaningful; the rest stay zero. All shapes are
// axis-aligned in local space with the cylinder/cone/torus axis along Z.
type Collider struct {
	Type        Type
	Radius      float32 // sphere, cylinder, cone
	Bounds      AABB    // box, in local space around the origin
	Height      float32 // cylinder, cone
	MajorRadius float32 // torus ring radius
	MinorRadius float32 // torus tube radius
}

func Sphere(radius float32) Collider {
	return Collider{Type: TypeSphere, Radius: radius}
}

func Box(bounds AABB) Collider {
	return Collider{Type: TypeBox, Bounds: bounds}
}

func Cylinder(radius, height float32) Collider {
	return Collider{Type: TypeCylinder, Radius: radius, Height: height}
}

func Cone(radius, height float32) Collider {
	return Collider{Type: TypeCone, Radius: radius, Height: height}
}

func Torus(majorRadius, minorRadius float32) Collider {
	return Collider{Type: TypeTorus, MajorRadius: majorRadius, MinorRadius: minorRadius}
}

func maxXY(s rl.Vector3) float32 {
	if s.X > s.Y {
		return s.X
	}
	return s.Y
}

func maxComponent(s rl.Vector3) float32 {
	m := s.X
	if s.Y > m {
		m = s.Y
	}
	if s.Z > m {
		m = s.Z
	}
	return m
}

// Scaled returns the collider adjusted for a non-uniform object scale, using
// the axis-appropriate component per shape: spheres take the largest scale
// component, boxes scale per axis, cylinders and cones scale their radius by
// the larger of X/Y and their height by Z, tori scale the ring by the larger
// of X/Y and the tube by the largest component.
func (c Collider) Scaled(scale rl.Vector3) Collider {
	out := c
	switch c.Type {
	case TypeSphere:
		out.Radius = c.Radius * maxComponent(scale)
	case TypeBox:
		out.Bounds = c.Bounds.Scale(scale)
	case TypeCylinder, TypeCone:
		out.Radius = c.Radius * maxXY(scale)
		out.Height = c.Height * scale.Z
	case TypeTorus:
		out.MajorRadius = c.MajorRadius * maxXY(scale)
		out.MinorRadius = c.MinorRadius * maxComponent(scale)
	}
	return out
}
