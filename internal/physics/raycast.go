package physics

import (
	rl "github.com/gen2brain/raylib-go/raylib"
)

// RaycastHit describes the closest entity struck by a ray.
type RaycastHit struct {
	Name     string
	Point    rl.Vector3
	Distance float32
}

// Raycast tests the ray against every registered entity's collider and
// returns the closest hit within maxDistance. Disabled entities are still
// hit-testable; picking should work even on frozen objects.
func (e *Engine) Raycast(origin, direction rl.Vector3, maxDistance float32) (RaycastHit, bool) {
	if rl.Vector3LengthSqr(direction) == 0 {
		return RaycastHit{}, false
	}
	direction = rl.Vector3Normalize(direction)

	best := RaycastHit{Distance: maxDistance}
	found := false

	for _, name := range e.sortedNames() {
		obj := e.objects[name]
		dist, hit := obj.RayIntersect(origin, direction)
		if !hit || dist > best.Distance {
			continue
		}
		best = RaycastHit{
			Name:     name,
			Point:    rl.Vector3Add(origin, rl.Vector3Scale(direction, dist)),
			Distance: dist,
		}
		found = true
	}
	return best, found
}
