package sim

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
)

func TestZoomStaysClamped(t *testing.T) {
	tests := []struct {
		name   string
		action Action
		ticks  int
		want   float64
	}{
		{"zoom in pins at minimum", ZoomIn, 500, MinZoom},
		{"zoom out pins at maximum", ZoomOut, 500, MaxZoom},
	}

	center := mgl64.Vec3{}
	agent := NewSurfaceAgent(center)

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cam := NewCameraRig()
			in := pressOnly(tt.action)
			for i := 0; i < tt.ticks; i++ {
				cam.Follow(in, &agent, center)
				if cam.Zoom < MinZoom || cam.Zoom > MaxZoom {
					t.Fatalf("tick %d: zoom %v outside [%v, %v]", i, cam.Zoom, MinZoom, MaxZoom)
				}
			}
			if cam.Zoom != tt.want {
				t.Errorf("zoom = %v, want %v", cam.Zoom, tt.want)
			}

			// One more tick past the bound must be a no-op on zoom.
			cam.Follow(in, &agent, center)
			if cam.Zoom != tt.want {
				t.Errorf("zoom moved past bound to %v, want %v", cam.Zoom, tt.want)
			}
		})
	}
}

func TestCameraCollinearWithCenterAndAgent(t *testing.T) {
	tests := []struct {
		name       string
		theta, phi float64
	}{
		{"equator front", math.Pi / 2, 0},
		{"equator side", math.Pi / 2, math.Pi / 3},
		{"near top pole", PoleEpsilon, 1.2},
		{"near bottom pole", math.Pi - PoleEpsilon, 4.5},
	}

	center := mgl64.Vec3{-2, 5, 0.5}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			agent := NewSurfaceAgent(center)
			agent.Theta, agent.Phi = tt.theta, tt.phi
			agent.Advance(NewInputState(), center, AngularStep)

			cam := NewCameraRig()
			cam.Follow(NewInputState(), &agent, center)

			toAgent := agent.Position.Sub(center)
			toCam := cam.Position.Sub(center)

			cross := toAgent.Cross(toCam)
			if cross.Len() > 1e-9 {
				t.Errorf("cross product = %v, want zero vector", cross)
			}

			// Ordering: center, agent, camera along the same ray.
			if toCam.Len() <= toAgent.Len() {
				t.Errorf("camera distance %v not beyond agent distance %v", toCam.Len(), toAgent.Len())
			}
			wantDist := agent.Radius + cam.Zoom
			if math.Abs(toCam.Len()-wantDist) > 1e-9 {
				t.Errorf("camera distance = %v, want %v", toCam.Len(), wantDist)
			}

			if cam.LookTarget != agent.Position {
				t.Errorf("look target = %v, want agent position %v", cam.LookTarget, agent.Position)
			}
		})
	}
}

func TestDegenerateAgentLeavesPoseUnchanged(t *testing.T) {
	center := mgl64.Vec3{1, 1, 1}
	agent := NewSurfaceAgent(center)
	cam := NewCameraRig()
	cam.Follow(NewInputState(), &agent, center)
	wantPos, wantTarget := cam.Position, cam.LookTarget

	agent.Position = center // zero-length direction
	cam.Follow(pressOnly(ZoomOut), &agent, center)

	if cam.Position != wantPos || cam.LookTarget != wantTarget {
		t.Errorf("pose changed on degenerate tick: pos %v target %v, want %v %v",
			cam.Position, cam.LookTarget, wantPos, wantTarget)
	}
	if cam.Zoom != DefaultZoom+ZoomStep {
		t.Errorf("zoom = %v, want %v (zoom input still applies)", cam.Zoom, DefaultZoom+ZoomStep)
	}
}
