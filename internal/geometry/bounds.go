package geometry

import (
	"github.com/chewxy/math32"
	rl "github.com/gen2brain/raylib-go/raylib"

	"vis3d/internal/collider"
)

// BoundingRadius returns the maximum distance from the vertex centroid to any
// vertex, the radius of the bounding sphere used for collision checks. Empty
// geometry gets a safe default instead of an error.
func BoundingRadius(vertices []rl.Vector3) float32 {
	if len(vertices) == 0 {
		return collider.DefaultBoundingRadius
	}

	var centroid rl.Vector3
	for _, v := range vertices {
		centroid = rl.Vector3Add(centroid, v)
	}
	centroid = rl.Vector3Scale(centroid, 1/float32(len(vertices)))

	var maxSqr float32
	for _, v := range vertices {
		d := rl.Vector3Subtract(v, centroid)
		if sqr := rl.Vector3DotProduct(d, d); sqr > maxSqr {
			maxSqr = sqr
		}
	}
	return math32.Sqrt(maxSqr)
}

// Bounds returns the local-space AABB of a vertex set.
func Bounds(vertices []rl.Vector3) collider.AABB {
	return collider.AABBFromVertices(vertices)
}
