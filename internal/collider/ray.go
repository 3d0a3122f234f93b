package collider

import (
	"github.com/chewxy/math32"
	rl "github.com/gen2brain/raylib-go/raylib"
)

// epsilon guards near-zero denominators and degenerate directions so the
// routines return "no hit" instead of propagating NaN/Inf.
const epsilon = 1e-6

// RayIntersect tests a ray against a collider positioned at center and
// returns the distance to the nearest hit. The direction is expected to be
// unit length; callers normalize. Shapes are axis-aligned (rotation is not
// part of the collider model).
func RayIntersect(c Collider, center, origin, direction rl.Vector3) (float32, bool) {
	if rl.Vector3LengthSqr(direction) < epsilon {
		return 0, false
	}
	switch c.Type {
	case TypeSphere:
		return raySphere(center, c.Radius, origin, direction)
	case TypeBox:
		return rayBox(c.Bounds.Translate(center), origin, direction)
	case TypeCylinder:
		return rayCylinder(center, c.Radius, c.Height, origin, direction)
	case TypeCone:
		return rayCone(center, c.Radius, c.Height, origin, direction)
	case TypeTorus:
		return rayTorus(center, c.MajorRadius, c.MinorRadius, origin, direction)
	}
	return 0, false
}

func raySphere(center rl.Vector3, radius float32, origin, direction rl.Vector3) (float32, bool) {
	oc := rl.Vector3Subtract(origin, center)
	a := rl.Vector3DotProduct(direction, direction)
	if a < epsilon {
		return 0, false
	}
	b := 2 * rl.Vector3DotProduct(oc, direction)
	c := rl.Vector3DotProduct(oc, oc) - radius*radius

	discriminant := b*b - 4*a*c
	if discriminant < 0 {
		return 0, false
	}

	sqrtD := math32.Sqrt(discriminant)
	t := (-b - sqrtD) / (2 * a)
	if t <= 0 {
		t = (-b + sqrtD) / (2 * a)
	}
	if t <= 0 {
		return 0, false
	}
	return t, true
}

// rayBox is the slab method. Axis-parallel direction components get a signed
// near-zero substitute so the inverse stays finite; the resulting interval is
// effectively infinite on that axis, which is the correct degenerate answer.
func rayBox(bounds AABB, origin, direction rl.Vector3) (float32, bool) {
	inv := func(d float32) float32 {
		if math32.Abs(d) < epsilon {
			if d < 0 {
				return -1 / epsilon
			}
			return 1 / epsilon
		}
		return 1 / d
	}

	ix, iy, iz := inv(direction.X), inv(direction.Y), inv(direction.Z)

	tx1 := (bounds.Min.X - origin.X) * ix
	tx2 := (bounds.Max.X - origin.X) * ix
	ty1 := (bounds.Min.Y - origin.Y) * iy
	ty2 := (bounds.Max.Y - origin.Y) * iy
	tz1 := (bounds.Min.Z - origin.Z) * iz
	tz2 := (bounds.Max.Z - origin.Z) * iz

	tEnter := math32.Max(math32.Max(math32.Min(tx1, tx2), math32.Min(ty1, ty2)), math32.Min(tz1, tz2))
	tExit := math32.Min(math32.Min(math32.Max(tx1, tx2), math32.Max(ty1, ty2)), math32.Max(tz1, tz2))

	if tEnter > tExit || tExit <= 0 {
		return 0, false
	}
	if tEnter > 0 {
		return tEnter, true
	}
	return tExit, true
}

// rayCylinder tests the lateral surface (axis along local Z) and both caps.
func rayCylinder(center rl.Vector3, radius, height float32, origin, direction rl.Vector3) (float32, bool) {
	l := rl.Vector3Subtract(origin, center)
	half := height / 2

	best := float32(0)
	found := false
	consider := func(t float32) {
		if t > 0 && (!found || t < best) {
			best = t
			found = true
		}
	}

	a := direction.X*direction.X + direction.Y*direction.Y
	if a >= epsilon {
		b := 2 * (l.X*direction.X + l.Y*direction.Y)
		c := l.X*l.X + l.Y*l.Y - radius*radius
		discriminant := b*b - 4*a*c
		if discriminant >= 0 {
			sqrtD := math32.Sqrt(discriminant)
			for _, t := range [2]float32{(-b - sqrtD) / (2 * a), (-b + sqrtD) / (2 * a)} {
				z := l.Z + t*direction.Z
				if t > 0 && z >= -half && z <= half {
					consider(t)
				}
			}
		}
	}

	// Caps: disks of the cylinder radius at z = ±height/2.
	if math32.Abs(direction.Z) >= epsilon {
		for _, zCap := range [2]float32{half, -half} {
			t := (zCap - l.Z) / direction.Z
			if t <= 0 {
				continue
			}
			px := l.X + t*direction.X
			py := l.Y + t*direction.Y
			if px*px+py*py <= radius*radius {
				consider(t)
			}
		}
	}

	return best, found
}

// rayCone tests the lateral surface of a cone with its apex at +height/2 and
// base at -height/2 along local Z, plus the base disk. The lateral quadratic
// comes from the similar-triangle radius-to-height ratio.
func rayCone(center rl.Vector3, radius, height float32, origin, direction rl.Vector3) (float32, bool) {
	if height < epsilon {
		return 0, false
	}
	l := rl.Vector3Subtract(origin, center)
	half := height / 2
	k := radius / height

	best := float32(0)
	found := false
	consider := func(t float32) {
		if t > 0 && (!found || t < best) {
			best = t
			found = true
		}
	}
	lateral := func(t float32) {
		z := l.Z + t*direction.Z
		if z >= -half && z <= half {
			consider(t)
		}
	}

	// Surface: x² + y² = k²(half - z)².
	m := half - l.Z
	a := direction.X*direction.X + direction.Y*direction.Y - k*k*direction.Z*direction.Z
	b := 2*(l.X*direction.X+l.Y*direction.Y) + 2*k*k*direction.Z*m
	c := l.X*l.X + l.Y*l.Y - k*k*m*m

	if math32.Abs(a) < epsilon {
		// Degenerate: the ray runs along the cone's slope.
		if math32.Abs(b) >= epsilon {
			lateral(-c / b)
		}
	} else {
		discriminant := b*b - 4*a*c
		if discriminant >= 0 {
			sqrtD := math32.Sqrt(discriminant)
			lateral((-b - sqrtD) / (2 * a))
			lateral((-b + sqrtD) / (2 * a))
		}
	}

	// Base disk at z = -height/2.
	if math32.Abs(direction.Z) >= epsilon {
		t := (-half - l.Z) / direction.Z
		if t > 0 {
			px := l.X + t*direction.X
			py := l.Y + t*direction.Y
			if px*px+py*py <= radius*radius {
				consider(t)
			}
		}
	}

	return best, found
}

// rayTorus approximates the quartic torus intersection: project the ray's
// closest approach to the torus center onto the XY plane, snap to the nearest
// point on the major-radius ring, and intersect a sphere of the minor radius
// centered there. A single iteration, deliberately lossy near grazing angles;
// good enough for picking.
func rayTorus(center rl.Vector3, majorRadius, minorRadius float32, origin, direction rl.Vector3) (float32, bool) {
	toCenter := rl.Vector3Subtract(center, origin)
	tClosest := rl.Vector3DotProduct(toCenter, direction)
	closest := rl.Vector3Add(origin, rl.Vector3Scale(direction, tClosest))

	local := rl.Vector3Subtract(closest, center)
	planar := math32.Sqrt(local.X*local.X + local.Y*local.Y)

	var ring rl.Vector3
	if planar < epsilon {
		// Closest approach sits on the torus axis. Pick the ring point on the
		// near side of the ray's planar travel; a ray parallel to the axis
		// goes straight through the hole.
		dp := math32.Sqrt(direction.X*direction.X + direction.Y*direction.Y)
		if dp < epsilon {
			return 0, false
		}
		ring = rl.Vector3{
			X: -direction.X / dp * majorRadius,
			Y: -direction.Y / dp * majorRadius,
		}
	} else {
		ring = rl.Vector3{
			X: local.X / planar * majorRadius,
			Y: local.Y / planar * majorRadius,
		}
	}
	return raySphere(rl.Vector3Add(center, ring), minorRadius, origin, direction)
}
