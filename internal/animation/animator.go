// Package animation drives scripted object motion: small parametric animators
// attached to scene objects and stepped once per tick by a Manager. Animators
// that write positions claim the object's driver tag so they can never fight
// the physics integration over the same transform.
package animation

import (
	"github.com/chewxy/math32"
	rl "github.com/gen2brain/raylib-go/raylib"

	"vis3d/internal/engine"
)

// Animator advances one object by dt seconds. DrivesPosition reports whether
// the animator writes Transform.Position; only those need driver ownership.
type Animator interface {
	Update(obj *engine.Object, dt float32)
	DrivesPosition() bool
}

// Spin rotates an object around one Euler axis at a constant rate, degrees
// per second. It never touches the position, so it can coexist with physics.
type Spin struct {
	Axis  rl.Vector3 // weight per Euler axis, usually a unit basis vector
	Speed float32
}

func (s *Spin) DrivesPosition() bool { return false }

func (s *Spin) Update(obj *engine.Object, dt float32) {
	rot := &obj.Transform.Rotation
	rot.X = wrapDegrees(rot.X + s.Axis.X*s.Speed*dt)
	rot.Y = wrapDegrees(rot.Y + s.Axis.Y*s.Speed*dt)
	rot.Z = wrapDegrees(rot.Z + s.Axis.Z*s.Speed*dt)
}

func wrapDegrees(deg float32) float32 {
	for deg > 360 {
		deg -= 360
	}
	for deg < -360 {
		deg += 360
	}
	return deg
}

// Orbit moves an object on a circle in the XY plane around Center, at the
// object's current height. Speed is in radians per second.
type Orbit struct {
	Center rl.Vector3
	Radius float32
	Speed  float32
	Phase  float32

	time float32
}

func (o *Orbit) DrivesPosition() bool { return true }

func (o *Orbit) Update(obj *engine.Object, dt float32) {
	o.time += dt
	t := o.time*o.Speed + o.Phase
	obj.Transform.Position = rl.Vector3{
		X: o.Center.X + math32.Cos(t)*o.Radius,
		Y: o.Center.Y + math32.Sin(t)*o.Radius,
		Z: obj.Transform.Position.Z,
	}
}

// Bob oscillates an object vertically around Origin with a sine wave.
type Bob struct {
	Origin    rl.Vector3
	Amplitude float32
	Speed     float32
	Phase     float32

	time float32
}

func (b *Bob) DrivesPosition() bool { return true }

func (b *Bob) Update(obj *engine.Object, dt float32) {
	b.time += dt
	obj.Transform.Position = rl.Vector3{
		X: b.Origin.X,
		Y: b.Origin.Y,
		Z: b.Origin.Z + math32.Sin(b.time*b.Speed+b.Phase)*b.Amplitude,
	}
}
