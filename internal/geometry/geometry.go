// Package geometry builds the vertex and index data for every renderable
// in the scene. Builders are pure; uploading to the GPU (or projecting to
// an image) is the caller's concern.
package geometry

import (
	"math"
	"math/rand"
)

// WireSphere generates a latitude/longitude wireframe: positions for
// (rings+1)*(segments+1) grid points and LINES indices connecting each
// point to its ring and segment neighbors.
func WireSphere(radius float32, rings, segments int) ([]float32, []uint32) {
	if rings <= 0 {
		rings = 16
	}
	if segments <= 0 {
		segments = 24
	}

	var vertices []float32
	for ring := 0; ring <= rings; ring++ {
		theta := float64(ring) * math.Pi / float64(rings)
		sinTheta := float32(math.Sin(theta))
		cosTheta := float32(math.Cos(theta))

		for seg := 0; seg <= segments; seg++ {
			phi := float64(seg) * 2 * math.Pi / float64(segments)
			sinPhi := float32(math.Sin(phi))
			cosPhi := float32(math.Cos(phi))

			x := sinTheta * sinPhi
			y := cosTheta
			z := sinTheta * cosPhi
			vertices = append(vertices, x*radius, y*radius, z*radius)
		}
	}

	var indices []uint32
	stride := uint32(segments + 1)
	for ring := 0; ring < rings; ring++ {
		for seg := 0; seg < segments; seg++ {
			current := uint32(ring)*stride + uint32(seg)
			indices = append(indices, current, current+1)      // along the ring
			indices = append(indices, current, current+stride) // toward the next ring
		}
	}

	return vertices, indices
}

// Cube vertices and wireframe edge indices for a unit cube centered on
// the origin.
var (
	cubeVertices = []float32{
		// Front face
		-0.5, -0.5, 0.5,
		0.5, -0.5, 0.5,
		0.5, 0.5, 0.5,
		-0.5, 0.5, 0.5,
		// Back face
		-0.5, -0.5, -0.5,
		0.5, -0.5, -0.5,
		0.5, 0.5, -0.5,
		-0.5, 0.5, -0.5,
	}

	cubeIndices = []uint32{
		0, 1, 1, 2, 2, 3, 3, 0, // Front face
		4, 5, 5, 6, 6, 7, 7, 4, // Back face
		0, 4, 1, 5, 2, 6, 3, 7, // Connecting lines
	}
)

// WireCube returns copies of the unit wireframe cube data so callers can
// upload or transform it freely.
func WireCube() ([]float32, []uint32) {
	v := make([]float32, len(cubeVertices))
	copy(v, cubeVertices)
	i := make([]uint32, len(cubeIndices))
	copy(i, cubeIndices)
	return v, i
}

// Star shell bounds, shared by the GL and preview paths.
const (
	StarShellMin float32 = 120
	StarShellMax float32 = 240
)

// StarField scatters n points on directions uniform over the sphere, at
// distances uniform in [minRadius, maxRadius]. The same seed always
// produces the same sky.
func StarField(n int, minRadius, maxRadius float32, seed int64) []float32 {
	rng := rand.New(rand.NewSource(seed))
	points := make([]float32, 0, n*3)

	for i := 0; i < n; i++ {
		cosTheta := 2*rng.Float64() - 1
		sinTheta := math.Sqrt(1 - cosTheta*cosTheta)
		phi := 2 * math.Pi * rng.Float64()

		r := minRadius + rng.Float32()*(maxRadius-minRadius)
		points = append(points,
			r*float32(sinTheta*math.Sin(phi)),
			r*float32(cosTheta),
			r*float32(sinTheta*math.Cos(phi)),
		)
	}
	return points
}

// GuideLine is a segment from the origin along +Y; posed with the
// avatar's yaw/pitch it visualizes the center-agent-camera ray.
func GuideLine(length float32) []float32 {
	return []float32{0, 0, 0, 0, length, 0}
}
