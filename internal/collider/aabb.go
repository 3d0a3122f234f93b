package collider

import rl "github.com/gen2brain/raylib-go/raylib"

// AABB is an axis-aligned bounding box in either local or world space,
// depending on where it came from.
type AABB struct {
	Min rl.Vector3
	Max rl.Vector3
}

// AABBFromCenter creates an AABB from a center point and full size dimensions.
func AABBFromCenter(center, size rl.Vector3) AABB {
	half := rl.Vector3{X: size.X / 2, Y: size.Y / 2, Z: size.Z / 2}
	return AABB{
		Min: rl.Vector3Subtract(center, half),
		Max: rl.Vector3Add(center, half),
	}
}

// AABBFromVertices computes the bounds of a vertex set. An empty set yields
// a box of the default bounding radius around the origin, mirroring the
// bounding-radius fallback for empty geometry.
func AABBFromVertices(vertices []rl.Vector3) AABB {
	if len(vertices) == 0 {
		half := rl.Vector3{X: DefaultBoundingRadius, Y: DefaultBoundingRadius, Z: DefaultBoundingRadius}
		return AABB{Min: rl.Vector3Negate(half), Max: half}
	}
	box := AABB{Min: vertices[0], Max: vertices[0]}
	for _, v := range vertices[1:] {
		if v.X < box.Min.X {
			box.Min.X = v.X
		}
		if v.Y < box.Min.Y {
			box.Min.Y = v.Y
		}
		if v.Z < box.Min.Z {
			box.Min.Z = v.Z
		}
		if v.X > box.Max.X {
			box.Max.X = v.X
		}
		if v.Y > box.Max.Y {
			box.Max.Y = v.Y
		}
		if v.Z > box.Max.Z {
			box.Max.Z = v.Z
		}
	}
	return box
}

func (a AABB) Intersects(b AABB) bool {
	return a.Min.X <= b.Max.X && a.Max.X >= b.Min.X &&
		a.Min.Y <= b.Max.Y && a.Max.Y >= b.Min.Y &&
		a.Min.Z <= b.Max.Z && a.Max.Z >= b.Min.Z
}

func (a AABB) Center() rl.Vector3 {
	return rl.Vector3Scale(rl.Vector3Add(a.Min, a.Max), 0.5)
}

func (a AABB) Size() rl.Vector3 {
	return rl.Vector3Subtract(a.Max, a.Min)
}

// Translate shifts the box by an offset, e.g. local bounds to world bounds.
func (a AABB) Translate(offset rl.Vector3) AABB {
	return AABB{
		Min: rl.Vector3Add(a.Min, offset),
		Max: rl.Vector3Add(a.Max, offset),
	}
}

// Scale multiplies both corners per axis. Negative scale components flip the
// corresponding min/max, so the result is re-normalized.
func (a AABB) Scale(s rl.Vector3) AABB {
	lo := rl.Vector3{X: a.Min.X * s.X, Y: a.Min.Y * s.Y, Z: a.Min.Z * s.Z}
	hi := rl.Vector3{X: a.Max.X * s.X, Y: a.Max.Y * s.Y, Z: a.Max.Z * s.Z}
	if lo.X > hi.X {
		lo.X, hi.X = hi.X, lo.X
	}
	if lo.Y > hi.Y {
		lo.Y, hi.Y = hi.Y, lo.Y
	}
	if lo.Z > hi.Z {
		lo.Z, hi.Z = hi.Z, lo.Z
	}
	return AABB{Min: lo, Max: hi}
}
