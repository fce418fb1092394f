package sim

import "github.com/go-gl/mathgl/mgl64"

const (
	ZoomStep    = 0.25
	MinZoom     = 4.0
	MaxZoom     = 60.0
	DefaultZoom = 14.0
)

// CameraRig is the follow camera. Zoom is the only independent state;
// Position and LookTarget are re-derived from the agent every tick so
// that center, agent and camera stay collinear, in that order.
type CameraRig struct {
	Zoom       float64
	Position   mgl64.Vec3
	LookTarget mgl64.Vec3
}

func NewCameraRig() CameraRig {
	return CameraRig{Zoom: DefaultZoom}
}

// Follow applies one tick of zoom input and places the camera on the ray
// from the center through the agent, beyond the agent, looking at the
// agent. If the agent sits exactly on the center the pose is left
// unchanged for this tick instead of normalizing a zero vector.
func (c *CameraRig) Follow(in *InputState, agent *SurfaceAgent, center mgl64.Vec3) {
	if in.Pressed(ZoomIn) {
		c.Zoom -= ZoomStep
	}
	if in.Pressed(ZoomOut) {
		c.Zoom += ZoomStep
	}
	c.Zoom = clamp(c.Zoom, MinZoom, MaxZoom)

	dir := agent.Position.Sub(center)
	if dir.Len() == 0 {
		return
	}
	c.Position = center.Add(dir.Normalize().Mul(agent.Radius + c.Zoom))
	c.LookTarget = agent.Position
}
