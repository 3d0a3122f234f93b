// Package physics advances the scene's rigid-body-like simulation: per-tick
// integration with friction and gravity, O(n²) pairwise collision detection
// over bounding spheres, and impulse response with positional correction.
// Deliberately small-scale: no torque, no broad phase, no constraint solver.
package physics

import (
	"log"
	"sort"
	"time"

	rl "github.com/gen2brain/raylib-go/raylib"

	"vis3d/internal/collider"
	"vis3d/internal/engine"
)

const (
	// MaxDeltaTime caps the wall-clock delta so a stalled tick cannot blow
	// up the integration.
	MaxDeltaTime = 0.1
	// VelocityThreshold is the speed below which velocity snaps to zero,
	// stopping perpetual jitter.
	VelocityThreshold = 0.01
	// gravityAccel is the μ·g friction model's g.
	gravityAccel = 9.81
	// penetrationSlack ignores overlaps below 1% of the radius sum, a dead
	// zone against near-contact jitter.
	penetrationSlack = 0.01
	// restitutionBoost amplifies the combined restitution to compensate for
	// energy lost in the approximate integrator. Tuning, not physics.
	restitutionBoost = 1.2
)

// ColliderUpdate is emitted once per registered entity per tick. A nil
// Collider means "hide any debug collider visualization for this entity".
type ColliderUpdate struct {
	Name     string
	Collider *collider.Collider
	Center   rl.Vector3
}

// PositionUpdate is emitted for each dynamic entity after integration.
type PositionUpdate struct {
	Name     string
	Position rl.Vector3
}

// Engine owns one physics parameter record per registered entity and holds
// non-owning references to the scene's objects by name. All methods must be
// called from the tick thread; the engine has no internal concurrency.
type Engine struct {
	ColliderUpdated engine.Event[ColliderUpdate]
	PositionUpdated engine.Event[PositionUpdate]

	gravity rl.Vector3
	objects map[string]*engine.Object
	records map[string]*Record

	lastUpdate  time.Time
	lastLogTime time.Time
}

func New() *Engine {
	return &Engine{
		gravity:    rl.Vector3{Z: -9.81},
		objects:    make(map[string]*engine.Object),
		records:    make(map[string]*Record),
		lastUpdate: time.Now(),
	}
}

// RegisterObject creates a physics record for the object. Defaults derive
// from the object's geometry (bounding sphere, world AABB) and its own
// collision data, then the caller's params merge on top field by field.
// Dynamic registration claims the position-driver tag and fails if the
// object is script-driven.
func (e *Engine) RegisterObject(obj *engine.Object, params *Params) error {
	rec := &Record{
		Enabled:      true,
		Mass:         1,
		Acceleration: e.gravity,
		Restitution:  0.5,
		Friction:     0.3,
		Collider:     collider.Sphere(obj.BoundingRadius()),
		Bounds:       obj.WorldBounds(),
	}
	if obj.Shape.Type != collider.TypeNone {
		rec.Collider = obj.CollisionData()
	}
	rec.apply(params)

	if rec.Enabled && !rec.Static {
		if err := obj.ClaimDriver(engine.DriverPhysics); err != nil {
			return err
		}
	}

	if old, exists := e.objects[obj.Name]; exists && old != obj {
		old.ReleaseDriver(engine.DriverPhysics)
	}
	e.objects[obj.Name] = obj
	e.records[obj.Name] = rec

	log.Printf("physics: registered %q (%s collider, static=%v)", obj.Name, rec.Collider.Type, rec.Static)
	e.emitCollider(obj.Name)
	return nil
}

// UnregisterObject removes the entity and its record. Unknown names are a
// no-op, so double-unregister is safe.
func (e *Engine) UnregisterObject(name string) {
	if obj, exists := e.objects[name]; exists {
		obj.ReleaseDriver(engine.DriverPhysics)
	}
	delete(e.objects, name)
	delete(e.records, name)
}

// GetParams returns the live record for an entity, or nil when unregistered.
// Callers must treat nil as "physics disabled for this entity".
func (e *Engine) GetParams(name string) *Record {
	return e.records[name]
}

// SetParams merges the present fields into an entity's record. Unknown names
// are a no-op. Transitions between static and dynamic adjust the driver tag;
// a conflict with the animation subsystem is an error.
func (e *Engine) SetParams(name string, params Params) error {
	rec, exists := e.records[name]
	if !exists {
		return nil
	}
	rec.apply(&params)

	obj := e.objects[name]
	if rec.Enabled && !rec.Static {
		return obj.ClaimDriver(engine.DriverPhysics)
	}
	obj.ReleaseDriver(engine.DriverPhysics)
	return nil
}

// IsEnabled reports whether the entity is registered with physics enabled.
func (e *Engine) IsEnabled(name string) bool {
	rec, exists := e.records[name]
	return exists && rec.Enabled
}

// Gravity returns the current default acceleration for new registrations.
func (e *Engine) Gravity() rl.Vector3 {
	return e.gravity
}

// SetGravity rewrites the acceleration of every currently registered
// non-static entity. Entities registered afterward pick up the new default;
// nothing is re-applied retroactively beyond that.
func (e *Engine) SetGravity(gravity rl.Vector3) {
	e.gravity = gravity
	for _, rec := range e.records {
		if !rec.Static {
			rec.Acceleration = gravity
		}
	}
}

// ObjectCount returns the number of registered entities.
func (e *Engine) ObjectCount() int {
	return len(e.records)
}

// Update advances the simulation by the elapsed wall-clock time, clamped to
// MaxDeltaTime. Call on a fixed external cadence (~60 Hz).
func (e *Engine) Update() {
	now := time.Now()
	dt := float32(now.Sub(e.lastUpdate).Seconds())
	e.lastUpdate = now
	e.Step(dt)
}

// Step advances the simulation by dt seconds: bounds refresh, integration of
// dynamic entities, the pairwise collision pass, then one collider event per
// registered entity (disabled ones emit a clear).
func (e *Engine) Step(dt float32) {
	if dt > MaxDeltaTime {
		dt = MaxDeltaTime
	}
	if dt < 0 {
		dt = 0
	}

	names := e.sortedNames()

	for _, name := range names {
		rec := e.records[name]
		if !rec.Enabled {
			continue
		}
		rec.Bounds = e.objects[name].WorldBounds()
	}

	for _, name := range names {
		rec := e.records[name]
		if !rec.Enabled || rec.Static {
			continue
		}
		e.integrate(e.objects[name], rec, dt)
	}

	for i := 0; i < len(names); i++ {
		for j := i + 1; j < len(names); j++ {
			e.resolvePair(names[i], names[j])
		}
	}

	for _, name := range names {
		e.emitCollider(name)
	}
}

func (e *Engine) sortedNames() []string {
	names := make([]string, 0, len(e.records))
	for name := range e.records {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// integrate applies friction and acceleration to the velocity, snaps small
// velocities to zero, steps the position, and clamps at the ground plane.
func (e *Engine) integrate(obj *engine.Object, rec *Record, dt float32) {
	vel := rec.Velocity

	speed := rl.Vector3Length(vel)
	if speed > 0 && rec.Friction > 0 {
		decel := rec.Friction * gravityAccel / rec.Mass
		// Limit the friction window so deceleration cannot overshoot zero
		// speed within the sub-step.
		frictionDT := dt
		if limit := speed / decel; limit < frictionDT {
			frictionDT = limit
		}
		vel = rl.Vector3Add(vel, rl.Vector3Scale(vel, -decel*frictionDT/speed))
	}

	vel = rl.Vector3Add(vel, rl.Vector3Scale(rec.Acceleration, dt))

	if rl.Vector3Length(vel) < VelocityThreshold {
		vel = rl.Vector3{}
	}

	pos := rl.Vector3Add(obj.Transform.Position, rl.Vector3Scale(vel, dt))

	// Ground plane at z=0: clamp and reflect the vertical component.
	if pos.Z < 0 {
		pos.Z = 0
		vel.Z = -vel.Z * rec.Restitution
	}

	obj.Transform.Position = pos
	rec.Velocity = vel
	e.PositionUpdated.Invoke(PositionUpdate{Name: obj.Name, Position: pos})
}

// collisionRadius is the world-space bounding-sphere radius used by the
// pairwise test.
func collisionRadius(obj *engine.Object) float32 {
	s := obj.Transform.Scale
	m := s.X
	if s.Y > m {
		m = s.Y
	}
	if s.Z > m {
		m = s.Z
	}
	return obj.BoundingRadius() * m
}

// resolvePair tests one unordered pair and, on contact, applies positional
// correction split by inverse-mass ratio followed by a restitution-scaled
// impulse. Static entities absorb no correction and receive no impulse.
func (e *Engine) resolvePair(nameA, nameB string) {
	recA, recB := e.records[nameA], e.records[nameB]
	if !recA.Enabled || !recB.Enabled {
		return
	}
	if recA.Static && recB.Static {
		return
	}

	objA, objB := e.objects[nameA], e.objects[nameB]
	posA, posB := objA.Transform.Position, objB.Transform.Position

	delta := rl.Vector3Subtract(posB, posA)
	dist := rl.Vector3Length(delta)
	sumRadii := collisionRadius(objA) + collisionRadius(objB)

	penetration := sumRadii - dist
	if penetration < penetrationSlack*sumRadii {
		return
	}
	if dist < 1e-4 {
		// Coincident centers leave the normal undefined.
		return
	}
	normal := rl.Vector3Scale(delta, 1/dist)

	var ratioA, ratioB float32
	switch {
	case recA.Static:
		ratioA, ratioB = 0, 1
	case recB.Static:
		ratioA, ratioB = 1, 0
	default:
		total := recA.Mass + recB.Mass
		ratioA = recB.Mass / total
		ratioB = recA.Mass / total
	}

	if !recA.Static {
		objA.Transform.Position = rl.Vector3Subtract(posA, rl.Vector3Scale(normal, penetration*ratioA))
	}
	if !recB.Static {
		objB.Transform.Position = rl.Vector3Add(posB, rl.Vector3Scale(normal, penetration*ratioB))
	}

	relVel := rl.Vector3Subtract(recB.Velocity, recA.Velocity)
	velAlongNormal := rl.Vector3DotProduct(relVel, normal)
	if velAlongNormal > 0 {
		// Already separating.
		return
	}

	restitution := recA.Restitution
	if recB.Restitution < restitution {
		restitution = recB.Restitution
	}
	restitution *= restitutionBoost

	// For resting overlaps (zero approach speed) use the penetration depth
	// as a minimum effective approach speed, so overlapping pairs always
	// push apart instead of sitting interlocked.
	approach := -velAlongNormal
	if approach < penetration {
		approach = penetration
	}

	j := (1 + restitution) * approach
	switch {
	case recA.Static:
		j *= recB.Mass
	case recB.Static:
		j *= recA.Mass
	default:
		j /= 1/recA.Mass + 1/recB.Mass
	}

	if !recA.Static {
		recA.Velocity = rl.Vector3Subtract(recA.Velocity, rl.Vector3Scale(normal, j/recA.Mass))
	}
	if !recB.Static {
		recB.Velocity = rl.Vector3Add(recB.Velocity, rl.Vector3Scale(normal, j/recB.Mass))
	}

	if time.Since(e.lastLogTime) >= time.Second {
		e.lastLogTime = time.Now()
		log.Printf("physics: contact %s <-> %s penetration=%.4f", nameA, nameB, penetration)
	}
}

// emitCollider publishes the entity's current collider descriptor, or a
// clear signal for disabled entities, so the visualization stays in sync.
func (e *Engine) emitCollider(name string) {
	rec, exists := e.records[name]
	if !exists {
		return
	}
	if !rec.Enabled {
		e.ColliderUpdated.Invoke(ColliderUpdate{Name: name})
		return
	}
	obj := e.objects[name]
	desc := rec.Collider
	if obj.Shape.Type != collider.TypeNone {
		// Track the object's live scale rather than the registration-time
		// snapshot.
		desc = obj.CollisionData()
	}
	e.ColliderUpdated.Invoke(ColliderUpdate{Name: name, Collider: &desc, Center: obj.Transform.Position})
}
