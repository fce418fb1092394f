// Package render is the OpenGL adapter: it owns the window, the shader
// program and the GPU meshes, translates key events into model actions,
// and pushes the poses computed by the sim package to the screen. It is
// the only package that touches rendering-library types.
package render

import (
	"fmt"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/go-gl/mathgl/mgl64"

	"planetwalk/internal/geometry"
	"planetwalk/internal/sim"
)

const (
	fovDegrees = 45.0
	nearPlane  = 0.1
	farPlane   = 500.0

	planetRings    = 24
	planetSegments = 32

	avatarSize = 1.5
)

var (
	planetColour = mgl32.Vec4{0.2, 0.8, 0.4, 1}
	avatarColour = mgl32.Vec4{1, 1, 0, 1}
	starColour   = mgl32.Vec4{1, 1, 1, 1}
	guideColour  = mgl32.Vec4{1, 0.3, 0.2, 1}
)

// Config selects window and star-field parameters.
type Config struct {
	Width    int
	Height   int
	Title    string
	Stars    int
	StarSeed int64
}

// Renderer draws the scene and feeds window input back into the model's
// InputState. Create with New, release with Terminate.
type Renderer struct {
	window *glfw.Window

	program      uint32
	mvpUniform   int32
	colorUniform int32

	planet mesh
	avatar mesh
	stars  mesh
	guide  mesh

	width, height int
	proj          mgl32.Mat4

	showGuide bool
}

// New initializes GLFW and OpenGL, compiles the shader pair, uploads the
// scene meshes and wires input/resize callbacks to the given InputState.
// The caller must have locked the OS thread.
func New(cfg Config, input *sim.InputState) (*Renderer, error) {
	if err := glfw.Init(); err != nil {
		return nil, fmt.Errorf("failed to initialize glfw: %v", err)
	}

	glfw.WindowHint(glfw.Resizable, glfw.True)
	glfw.WindowHint(glfw.ContextVersionMajor, 4)
	glfw.WindowHint(glfw.ContextVersionMinor, 1)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)

	window, err := glfw.CreateWindow(cfg.Width, cfg.Height, cfg.Title, nil, nil)
	if err != nil {
		glfw.Terminate()
		return nil, fmt.Errorf("failed to create window: %v", err)
	}
	window.MakeContextCurrent()

	if err := gl.Init(); err != nil {
		glfw.Terminate()
		return nil, fmt.Errorf("failed to initialize OpenGL: %v", err)
	}

	version := gl.GoStr(gl.GetString(gl.VERSION))
	fmt.Println("OpenGL version", version)

	program, err := newProgram(vertexShaderSource, fragmentShaderSource)
	if err != nil {
		glfw.Terminate()
		return nil, err
	}
	gl.UseProgram(program)

	r := &Renderer{
		window:       window,
		program:      program,
		mvpUniform:   gl.GetUniformLocation(program, gl.Str("mvp\x00")),
		colorUniform: gl.GetUniformLocation(program, gl.Str("colour\x00")),
		width:        cfg.Width,
		height:       cfg.Height,
	}

	vertAttrib := uint32(gl.GetAttribLocation(program, gl.Str("vp\x00")))

	planetVerts, planetIdx := geometry.WireSphere(float32(sim.SurfaceRadius), planetRings, planetSegments)
	r.planet = uploadMesh(planetVerts, planetIdx, gl.LINES, vertAttrib)

	cubeVerts, cubeIdx := geometry.WireCube()
	r.avatar = uploadMesh(cubeVerts, cubeIdx, gl.LINES, vertAttrib)

	r.stars = uploadMesh(geometry.StarField(cfg.Stars, geometry.StarShellMin, geometry.StarShellMax, cfg.StarSeed), nil, gl.POINTS, vertAttrib)
	r.guide = uploadMesh(geometry.GuideLine(float32(sim.SurfaceRadius+sim.MaxZoom)), nil, gl.LINES, vertAttrib)

	gl.Enable(gl.DEPTH_TEST)
	gl.DepthFunc(gl.LESS)
	gl.PointSize(2)
	gl.ClearColor(0.02, 0.02, 0.06, 1.0)

	r.onResize(cfg.Width, cfg.Height)

	window.SetSizeCallback(func(w *glfw.Window, width, height int) {
		r.onResize(width, height)
	})
	window.SetKeyCallback(func(w *glfw.Window, key glfw.Key, scancode int, action glfw.Action, mods glfw.ModifierKey) {
		r.onKey(input, key, action)
	})

	return r, nil
}

func (r *Renderer) onResize(width, height int) {
	if height == 0 {
		height = 1
	}
	r.width, r.height = width, height
	gl.Viewport(0, 0, int32(width), int32(height))
	aspect := float32(width) / float32(height)
	r.proj = mgl32.Perspective(mgl32.DegToRad(fovDegrees), aspect, nearPlane, farPlane)
}

func (r *Renderer) onKey(input *sim.InputState, key glfw.Key, action glfw.Action) {
	switch action {
	case glfw.Press:
		switch key {
		case glfw.KeyEscape:
			r.window.SetShouldClose(true)
			return
		case glfw.KeyX:
			r.showGuide = !r.showGuide
			return
		}
		if act, ok := bindings[key]; ok {
			input.Set(act, true)
		}
	case glfw.Release:
		if act, ok := bindings[key]; ok {
			input.Set(act, false)
		}
	}
}

// Draw renders one frame of the given world state and swaps buffers.
func (r *Renderer) Draw(w *sim.World) {
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)
	gl.UseProgram(r.program)

	view := mgl32.LookAtV(vec32(w.Camera.Position), vec32(w.Camera.LookTarget), mgl32.Vec3{0, 1, 0})
	vp := r.proj.Mul4(view)

	center := mgl32.Translate3D(vec32(w.Center).Elem())
	r.drawMesh(&r.planet, vp, center, planetColour)
	r.drawMesh(&r.stars, vp, center, starColour)

	// Avatar orientation is rebuilt from identity every frame: yaw about
	// +Y, then pitch about +X.
	orient := mgl32.HomogRotate3D(float32(w.Agent.Yaw()), mgl32.Vec3{0, 1, 0}).
		Mul4(mgl32.HomogRotate3D(float32(w.Agent.Pitch()), mgl32.Vec3{1, 0, 0}))

	avatarModel := mgl32.Translate3D(vec32(w.Agent.Position).Elem()).
		Mul4(orient).
		Mul4(mgl32.Scale3D(avatarSize, avatarSize, avatarSize))
	r.drawMesh(&r.avatar, vp, avatarModel, avatarColour)

	if r.showGuide {
		r.drawMesh(&r.guide, vp, center.Mul4(orient), guideColour)
	}

	r.window.SwapBuffers()
}

func (r *Renderer) drawMesh(m *mesh, vp, model mgl32.Mat4, colour mgl32.Vec4) {
	mvp := vp.Mul4(model)
	gl.UniformMatrix4fv(r.mvpUniform, 1, false, &mvp[0])
	gl.Uniform4fv(r.colorUniform, 1, &colour[0])
	m.draw()
}

// ShouldClose reports whether the window has been asked to close.
func (r *Renderer) ShouldClose() bool {
	return r.window.ShouldClose()
}

// PollEvents pumps window events, firing the input callbacks.
func (r *Renderer) PollEvents() {
	glfw.PollEvents()
}

// SetTitle updates the window title.
func (r *Renderer) SetTitle(title string) {
	r.window.SetTitle(title)
}

// Terminate releases GL objects and tears the window down.
func (r *Renderer) Terminate() {
	r.planet.release()
	r.avatar.release()
	r.stars.release()
	r.guide.release()
	gl.DeleteProgram(r.program)
	r.window.Destroy()
	glfw.Terminate()
}

func vec32(v mgl64.Vec3) mgl32.Vec3 {
	return mgl32.Vec3{float32(v.X()), float32(v.Y()), float32(v.Z())}
}
