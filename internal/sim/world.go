// Package sim holds the surface-walk model: an avatar constrained to a
// sphere around a fixed center and a camera that follows it. The package
// has no rendering dependency; the frame loop owns one World and calls
// Step once per displayed frame.
package sim

import "github.com/go-gl/mathgl/mgl64"

// World is the whole per-tick simulation state.
type World struct {
	Center mgl64.Vec3
	Agent  SurfaceAgent
	Camera CameraRig
}

func NewWorld() *World {
	w := &World{}
	w.Agent = NewSurfaceAgent(w.Center)
	w.Camera = NewCameraRig()
	w.Camera.Follow(NewInputState(), &w.Agent, w.Center)
	return w
}

// Step runs one tick: locomotion first, then the camera follow, so the
// camera always sees the position produced this tick.
func (w *World) Step(in *InputState) {
	w.Agent.Advance(in, w.Center, AngularStep)
	w.Camera.Follow(in, &w.Agent, w.Center)
}
