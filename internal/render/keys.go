package render

import (
	"github.com/go-gl/glfw/v3.3/glfw"

	"planetwalk/internal/sim"
)

// bindings maps physical keys to the model's logical actions. Arrow keys
// mirror WASD; zoom sits on Q/E.
var bindings = map[glfw.Key]sim.Action{
	glfw.KeyW:     sim.Forward,
	glfw.KeyS:     sim.Back,
	glfw.KeyA:     sim.Left,
	glfw.KeyD:     sim.Right,
	glfw.KeyUp:    sim.Forward,
	glfw.KeyDown:  sim.Back,
	glfw.KeyLeft:  sim.Left,
	glfw.KeyRight: sim.Right,
	glfw.KeyQ:     sim.ZoomIn,
	glfw.KeyE:     sim.ZoomOut,
	glfw.KeySpace: sim.Jump,
}
