package sim

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

const (
	// SurfaceRadius is the fixed distance between the world center and the
	// avatar for the whole process lifetime.
	SurfaceRadius = 20.0

	// AngularStep is the per-tick angular delta applied by each held
	// directional action, in radians.
	AngularStep = 0.02

	// PoleEpsilon keeps the polar angle away from 0 and π, where the
	// azimuth direction degenerates.
	PoleEpsilon = 0.05
)

// SurfaceAgent is the avatar pinned to a fixed-radius shell around the
// world center. The angular pair (Theta, Phi) is the authoritative state;
// Position is a cached projection recomputed from it every tick.
type SurfaceAgent struct {
	Theta  float64 // polar angle from +Y, clamped to [PoleEpsilon, π-PoleEpsilon]
	Phi    float64 // azimuth around +Y, wrapped to [0, 2π)
	Radius float64

	Position mgl64.Vec3
}

// NewSurfaceAgent places the avatar on the equator at azimuth zero.
func NewSurfaceAgent(center mgl64.Vec3) SurfaceAgent {
	a := SurfaceAgent{
		Theta:  math.Pi / 2,
		Phi:    0,
		Radius: SurfaceRadius,
	}
	a.project(center)
	return a
}

// Advance applies one tick of directional input and reprojects the
// Cartesian position. Reprojection happens even on idle ticks so the
// position is always re-derived from the angular pair.
func (a *SurfaceAgent) Advance(in *InputState, center mgl64.Vec3, step float64) {
	if in.Pressed(Forward) {
		a.Theta += step
	}
	if in.Pressed(Back) {
		a.Theta -= step
	}
	if in.Pressed(Right) {
		a.Phi += step
	}
	if in.Pressed(Left) {
		a.Phi -= step
	}

	// Motion halts at the poles rather than crossing them.
	a.Theta = clamp(a.Theta, PoleEpsilon, math.Pi-PoleEpsilon)
	a.Phi = wrapAngle(a.Phi)

	a.project(center)
}

// project derives the Cartesian position from the angular pair (y-up
// convention), then rescales it back onto the shell to absorb
// floating-point drift. A zero-length offset is left untouched.
func (a *SurfaceAgent) project(center mgl64.Vec3) {
	sinT, cosT := math.Sin(a.Theta), math.Cos(a.Theta)
	sinP, cosP := math.Sin(a.Phi), math.Cos(a.Phi)

	offset := mgl64.Vec3{
		a.Radius * sinT * sinP,
		a.Radius * cosT,
		a.Radius * sinT * cosP,
	}
	if l := offset.Len(); l != 0 {
		offset = offset.Mul(a.Radius / l)
	}
	a.Position = center.Add(offset)
}

// Yaw is the avatar's rotation about the vertical axis.
func (a *SurfaceAgent) Yaw() float64 { return a.Phi }

// Pitch is the avatar's tilt, applied after yaw from a reset basis.
func (a *SurfaceAgent) Pitch() float64 { return a.Theta }

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// wrapAngle maps an angle into [0, 2π), including angles driven negative.
func wrapAngle(v float64) float64 {
	v = math.Mod(v, 2*math.Pi)
	if v < 0 {
		v += 2 * math.Pi
	}
	return v
}
