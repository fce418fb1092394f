// Package preview renders one frame of the scene to an image without a
// GL context. It mirrors the follow-camera view with a software
// perspective projection, which keeps the scene composition verifiable
// headlessly (and makes the -snapshot flag work on machines without a
// display).
package preview

import (
	"image"
	"image/color"
	"math"

	"planetwalk/internal/geometry"
	"planetwalk/internal/sim"
)

// nearClip rejects points at or behind the viewer before projection.
const nearClip = 1.0

var (
	background   = color.RGBA{5, 5, 15, 255}
	planetColour = color.RGBA{51, 204, 102, 255}
	avatarColour = color.RGBA{255, 255, 0, 255}
	starColour   = color.RGBA{220, 220, 220, 255}
)

// Options selects image and star-field parameters.
type Options struct {
	Width    int
	Height   int
	Stars    int
	StarSeed int64
}

// Vec3 is the software-projection vertex type.
type Vec3 struct {
	X, Y, Z float64
}

// RotateX rotates the vector around the X axis
func (v Vec3) RotateX(angle float64) Vec3 {
	cos := math.Cos(angle)
	sin := math.Sin(angle)
	return Vec3{
		X: v.X,
		Y: v.Y*cos - v.Z*sin,
		Z: v.Y*sin + v.Z*cos,
	}
}

// RotateY rotates the vector around the Y axis
func (v Vec3) RotateY(angle float64) Vec3 {
	cos := math.Cos(angle)
	sin := math.Sin(angle)
	return Vec3{
		X: v.X*cos + v.Z*sin,
		Y: v.Y,
		Z: -v.X*sin + v.Z*cos,
	}
}

// Project projects the 3D point to 2D screen coordinates.
// fov: field of view factor (e.g., 200-400)
// viewerDistance: distance from camera to object center
func (v Vec3) Project(width, height int, fov, viewerDistance float64) (x, y int) {
	factor := fov / (viewerDistance + v.Z)
	x = int(v.X*factor) + width/2
	y = int(v.Y*factor) + height/2
	return x, y
}

// DrawLine draws a line on the image from (x1, y1) to (x2, y2)
func DrawLine(img *image.RGBA, x1, y1, x2, y2 int, col color.RGBA) {
	dx := float64(x2 - x1)
	dy := float64(y2 - y1)
	steps := math.Max(math.Abs(dx), math.Abs(dy))
	if steps == 0 {
		setPixel(img, x1, y1, col)
		return
	}

	xInc := dx / steps
	yInc := dy / steps

	x := float64(x1)
	y := float64(y1)

	for i := 0; i <= int(steps); i++ {
		setPixel(img, int(x), int(y), col)
		x += xInc
		y += yInc
	}
}

func setPixel(img *image.RGBA, x, y int, col color.RGBA) {
	if x < 0 || x >= img.Bounds().Dx() || y < 0 || y >= img.Bounds().Dy() {
		return
	}
	offset := img.PixOffset(x, y)
	img.Pix[offset] = col.R
	img.Pix[offset+1] = col.G
	img.Pix[offset+2] = col.B
	img.Pix[offset+3] = col.A
}

// Render draws the star field, the planet wireframe and the avatar cube
// as seen by the follow camera, back to front (no depth buffer).
func Render(w *sim.World, opts Options) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, opts.Width, opts.Height))
	for x := 0; x < opts.Width; x++ {
		for y := 0; y < opts.Height; y++ {
			setPixel(img, x, y, background)
		}
	}

	viewerDistance := w.Agent.Radius + w.Camera.Zoom
	fov := float64(opts.Height)
	yaw, pitch := w.Agent.Yaw(), w.Agent.Pitch()

	// World-to-view: undo the avatar's yaw/pitch so its radial direction
	// lands on +Y, then tip +Y onto the view axis. The avatar ends up at
	// depth Zoom in front of the viewer, centered on screen.
	view := func(p Vec3) Vec3 {
		return p.RotateY(-yaw).RotateX(-pitch).RotateX(-math.Pi / 2)
	}

	stars := geometry.StarField(opts.Stars, geometry.StarShellMin, geometry.StarShellMax, opts.StarSeed)
	for i := 0; i < len(stars); i += 3 {
		p := view(Vec3{float64(stars[i]), float64(stars[i+1]), float64(stars[i+2])})
		if viewerDistance+p.Z < nearClip {
			continue
		}
		x, y := p.Project(opts.Width, opts.Height, fov, viewerDistance)
		setPixel(img, x, y, starColour)
	}

	planetVerts, planetIdx := geometry.WireSphere(float32(w.Agent.Radius), 24, 32)
	drawWire(img, planetVerts, planetIdx, view, opts, fov, viewerDistance, planetColour)

	cubeVerts, cubeIdx := geometry.WireCube()
	const avatarSize = 1.5
	orient := func(p Vec3) Vec3 {
		local := Vec3{p.X * avatarSize, p.Y * avatarSize, p.Z * avatarSize}.
			RotateX(pitch).RotateY(yaw)
		agent := w.Agent.Position.Sub(w.Center)
		return view(Vec3{local.X + agent.X(), local.Y + agent.Y(), local.Z + agent.Z()})
	}
	drawWire(img, cubeVerts, cubeIdx, orient, opts, fov, viewerDistance, avatarColour)

	return img
}

// drawWire projects index pairs and draws the surviving segments; a
// segment with an endpoint behind the near clip is skipped whole.
func drawWire(img *image.RGBA, verts []float32, idx []uint32, transform func(Vec3) Vec3, opts Options, fov, viewerDistance float64, col color.RGBA) {
	for i := 0; i+1 < len(idx); i += 2 {
		a := transform(vertexAt(verts, idx[i]))
		b := transform(vertexAt(verts, idx[i+1]))
		if viewerDistance+a.Z < nearClip || viewerDistance+b.Z < nearClip {
			continue
		}
		ax, ay := a.Project(opts.Width, opts.Height, fov, viewerDistance)
		bx, by := b.Project(opts.Width, opts.Height, fov, viewerDistance)
		DrawLine(img, ax, ay, bx, by, col)
	}
}

func vertexAt(verts []float32, i uint32) Vec3 {
	return Vec3{float64(verts[i*3]), float64(verts[i*3+1]), float64(verts[i*3+2])}
}
