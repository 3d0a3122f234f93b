package physics

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"vis3d/internal/collider"
)

// Record holds the engine-owned physics state for one registered entity.
// A record exists iff the entity is registered; Enabled=false records are
// retained but skipped by integration and collision.
type Record struct {
	Enabled      bool
	Mass         float32
	Velocity     rl.Vector3
	Acceleration rl.Vector3
	Static       bool
	Restitution  float32 // 0 = fully inelastic, 1 = fully elastic
	Friction     float32
	Collider     collider.Collider
	Bounds       collider.AABB // world-space AABB, refreshed every tick
}

// Params is a partial Record: nil fields leave the current value untouched.
// Used both for registration overrides and for later edits, so defaults
// survive a partial update.
type Params struct {
	Enabled      *bool
	Mass         *float32
	Velocity     *rl.Vector3
	Acceleration *rl.Vector3
	Static       *bool
	Restitution  *float32
	Friction     *float32
	Collider     *ColliderParams
}

// ColliderParams overrides individual collider descriptor fields, preserving
// whatever the defaults or the object's own collision data filled in.
type ColliderParams struct {
	Type        *collider.Type
	Radius      *float32
	Bounds      *collider.AABB
	Height      *float32
	MajorRadius *float32
	MinorRadius *float32
}

// apply merges the present fields of p into the record, last write wins.
func (r *Record) apply(p *Params) {
	if p == nil {
		return
	}
	if p.Enabled != nil {
		r.Enabled = *p.Enabled
	}
	if p.Mass != nil && *p.Mass > 0 {
		r.Mass = *p.Mass
	}
	if p.Velocity != nil {
		r.Velocity = *p.Velocity
	}
	if p.Acceleration != nil {
		r.Acceleration = *p.Acceleration
	}
	if p.Static != nil {
		r.Static = *p.Static
	}
	if p.Restitution != nil {
		r.Restitution = clamp01(*p.Restitution)
	}
	if p.Friction != nil && *p.Friction >= 0 {
		r.Friction = *p.Friction
	}
	if p.Collider != nil {
		p.Collider.applyTo(&r.Collider)
	}
}

func (cp *ColliderParams) applyTo(c *collider.Collider) {
	if cp.Type != nil {
		c.Type = *cp.Type
	}
	if cp.Radius != nil {
		c.Radius = *cp.Radius
	}
	if cp.Bounds != nil {
		c.Bounds = *cp.Bounds
	}
	if cp.Height != nil {
		c.Height = *cp.Height
	}
	if cp.MajorRadius != nil {
		c.MajorRadius = *cp.MajorRadius
	}
	if cp.MinorRadius != nil {
		c.MinorRadius = *cp.MinorRadius
	}
}

func clamp01(v float32) float32 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// Float, Vec and Bool are pointer helpers for building Params literals.
func Float(v float32) *float32 { return &v }

func Vec(x, y, z float32) *rl.Vector3 { return &rl.Vector3{X: x, Y: y, Z: z} }

func Bool(v bool) *bool { return &v }
