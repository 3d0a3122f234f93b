// Package geometry generates triangle meshes for the editor's primitive
// shapes and answers bounding queries over vertex sets. Generators are pure
// and deterministic; invalid sizes produce degenerate geometry rather than
// errors, the caller gets exactly what it asked for.
package geometry

import (
	"github.com/chewxy/math32"
	rl "github.com/gen2brain/raylib-go/raylib"
)

// Face indexes three vertices forming one triangle.
type Face [3]int32

// Cube returns the 8 corners and 12 triangles of an axis-aligned cube.
func Cube(size float32, center rl.Vector3) ([]rl.Vector3, []Face) {
	h := size / 2
	vertices := []rl.Vector3{
		{X: center.X - h, Y: center.Y - h, Z: center.Z - h},
		{X: center.X + h, Y: center.Y - h, Z: center.Z - h},
		{X: center.X + h, Y: center.Y + h, Z: center.Z - h},
		{X: center.X - h, Y: center.Y + h, Z: center.Z - h},
		{X: center.X - h, Y: center.Y - h, Z: center.Z + h},
		{X: center.X + h, Y: center.Y - h, Z: center.Z + h},
		{X: center.X + h, Y: center.Y + h, Z: center.Z + h},
		{X: center.X - h, Y: center.Y + h, Z: center.Z + h},
	}
	faces := []Face{
		{0, 1, 2}, {0, 2, 3}, // bottom
		{4, 5, 6}, {4, 6, 7}, // top
		{0, 1, 5}, {0, 5, 4}, // front
		{2, 3, 7}, {2, 7, 6}, // back
		{0, 3, 7}, {0, 7, 4}, // left
		{1, 2, 6}, {1, 6, 5}, // right
	}
	return vertices, faces
}

// linstep returns the i-th of n values evenly spaced over [0, span],
// endpoints included.
func linstep(span float32, i, n int) float32 {
	if n < 2 {
		return 0
	}
	return span * float32(i) / float32(n-1)
}

// Sphere returns a latitude/longitude tessellation with resolution² vertices.
// Every vertex lies at distance radius from center.
func Sphere(radius float32, center rl.Vector3, resolution int) ([]rl.Vector3, []Face) {
	if resolution < 1 {
		resolution = 1
	}
	vertices := make([]rl.Vector3, 0, resolution*resolution)
	for i := 0; i < resolution; i++ {
		theta := linstep(2*math32.Pi, i, resolution)
		for j := 0; j < resolution; j++ {
			phi := linstep(math32.Pi, j, resolution)
			vertices = append(vertices, rl.Vector3{
				X: center.X + radius*math32.Sin(phi)*math32.Cos(theta),
				Y: center.Y + radius*math32.Sin(phi)*math32.Sin(theta),
				Z: center.Z + radius*math32.Cos(phi),
			})
		}
	}

	var faces []Face
	for i := 0; i < resolution-1; i++ {
		for j := 0; j < resolution-1; j++ {
			p1 := int32(i*resolution + j)
			p2 := int32(i*resolution + j + 1)
			p3 := int32((i+1)*resolution + j)
			p4 := int32((i+1)*resolution + j + 1)
			faces = append(faces, Face{p1, p2, p4}, Face{p1, p4, p3})
		}
	}
	return vertices, faces
}

// Cylinder returns a cylinder along local Z: resolution vertices per rim plus
// the two cap centers, with lateral quads and cap fans.
func Cylinder(radius, height float32, center rl.Vector3, resolution int) ([]rl.Vector3, []Face) {
	if resolution < 1 {
		resolution = 1
	}
	half := height / 2
	vertices := make([]rl.Vector3, 0, 2*resolution+2)
	for i := 0; i < resolution; i++ {
		theta := linstep(2*math32.Pi, i, resolution)
		vertices = append(vertices, rl.Vector3{
			X: center.X + radius*math32.Cos(theta),
			Y: center.Y + radius*math32.Sin(theta),
			Z: center.Z + half,
		})
	}
	for i := 0; i < resolution; i++ {
		theta := linstep(2*math32.Pi, i, resolution)
		vertices = append(vertices, rl.Vector3{
			X: center.X + radius*math32.Cos(theta),
			Y: center.Y + radius*math32.Sin(theta),
			Z: center.Z - half,
		})
	}
	topCenter := int32(2 * resolution)
	bottomCenter := int32(2*resolution + 1)
	vertices = append(vertices,
		rl.Vector3{X: center.X, Y: center.Y, Z: center.Z + half},
		rl.Vector3{X: center.X, Y: center.Y, Z: center.Z - half},
	)

	n := int32(resolution)
	var faces []Face
	// Lateral surface.
	for i := int32(0); i < n-1; i++ {
		faces = append(faces, Face{i, i + 1, i + n + 1}, Face{i, i + n + 1, i + n})
	}
	faces = append(faces, Face{n - 1, 0, n}, Face{n - 1, n, 2*n - 1})
	// Top cap.
	for i := int32(0); i < n-1; i++ {
		faces = append(faces, Face{i, i + 1, topCenter})
	}
	faces = append(faces, Face{n - 1, 0, topCenter})
	// Bottom cap.
	for i := int32(0); i < n-1; i++ {
		faces = append(faces, Face{i + n, bottomCenter, i + n + 1})
	}
	faces = append(faces, Face{2*n - 1, bottomCenter, n})

	return vertices, faces
}

// Cone returns a cone along local Z with the apex at +height/2 and the base
// ring at -height/2: resolution base vertices plus apex and base center.
func Cone(radius, height float32, center rl.Vector3, resolution int) ([]rl.Vector3, []Face) {
	if resolution < 1 {
		resolution = 1
	}
	half := height / 2
	vertices := make([]rl.Vector3, 0, resolution+2)
	for i := 0; i < resolution; i++ {
		theta := linstep(2*math32.Pi, i, resolution)
		vertices = append(vertices, rl.Vector3{
			X: center.X + radius*math32.Cos(theta),
			Y: center.Y + radius*math32.Sin(theta),
			Z: center.Z - half,
		})
	}
	apex := int32(resolution)
	base := int32(resolution + 1)
	vertices = append(vertices,
		rl.Vector3{X: center.X, Y: center.Y, Z: center.Z + half},
		rl.Vector3{X: center.X, Y: center.Y, Z: center.Z - half},
	)

	n := int32(resolution)
	var faces []Face
	for i := int32(0); i < n-1; i++ {
		faces = append(faces, Face{i, i + 1, apex})
	}
	faces = append(faces, Face{n - 1, 0, apex})
	for i := int32(0); i < n-1; i++ {
		faces = append(faces, Face{i, base, i + 1})
	}
	faces = append(faces, Face{n - 1, base, 0})

	return vertices, faces
}

// Torus returns a ring in the XY plane: a resolution×resolution grid over the
// two angular parameters, with seam-closing faces in both directions.
func Torus(majorRadius, minorRadius float32, center rl.Vector3, resolution int) ([]rl.Vector3, []Face) {
	if resolution < 1 {
		resolution = 1
	}
	vertices := make([]rl.Vector3, 0, resolution*resolution)
	for i := 0; i < resolution; i++ {
		u := linstep(2*math32.Pi, i, resolution)
		for j := 0; j < resolution; j++ {
			v := linstep(2*math32.Pi, j, resolution)
			r := majorRadius + minorRadius*math32.Cos(v)
			vertices = append(vertices, rl.Vector3{
				X: center.X + r*math32.Cos(u),
				Y: center.Y + r*math32.Sin(u),
				Z: center.Z + minorRadius*math32.Sin(v),
			})
		}
	}

	n := resolution
	var faces []Face
	quad := func(p1, p2, p3, p4 int) {
		faces = append(faces,
			Face{int32(p1), int32(p2), int32(p4)},
			Face{int32(p1), int32(p4), int32(p3)},
		)
	}
	for i := 0; i < n-1; i++ {
		for j := 0; j < n-1; j++ {
			quad(i*n+j, i*n+j+1, (i+1)*n+j, (i+1)*n+j+1)
		}
	}
	// Close the tube seam.
	for i := 0; i < n-1; i++ {
		quad(i*n+(n-1), i*n, (i+1)*n+(n-1), (i+1)*n)
	}
	// Close the ring seam.
	for j := 0; j < n-1; j++ {
		quad((n-1)*n+j, (n-1)*n+j+1, j, j+1)
	}

	return vertices, faces
}

// Floor returns a square ground quad of half-side size at height z.
func Floor(size, z float32) ([]rl.Vector3, []Face) {
	vertices := []rl.Vector3{
		{X: -size, Y: -size, Z: z},
		{X: size, Y: -size, Z: z},
		{X: size, Y: size, Z: z},
		{X: -size, Y: size, Z: z},
	}
	faces := []Face{{0, 1, 2}, {0, 2, 3}}
	return vertices, faces
}
