package render

import "github.com/go-gl/gl/v4.1-core/gl"

// mesh is a VAO/VBO pair (plus an optional element buffer) with the draw
// mode it was built for.
type mesh struct {
	vao   uint32
	vbo   uint32
	ebo   uint32
	count int32
	mode  uint32
}

// uploadMesh registers vertex data with the GPU. When indices is nil the
// mesh is drawn with DrawArrays over the raw vertices instead.
func uploadMesh(vertices []float32, indices []uint32, mode uint32, vertAttrib uint32) mesh {
	m := mesh{mode: mode}

	gl.GenVertexArrays(1, &m.vao)
	gl.BindVertexArray(m.vao)

	gl.GenBuffers(1, &m.vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, m.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(vertices)*4, gl.Ptr(vertices), gl.STATIC_DRAW)

	if indices != nil {
		gl.GenBuffers(1, &m.ebo)
		gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, m.ebo)
		gl.BufferData(gl.ELEMENT_ARRAY_BUFFER, len(indices)*4, gl.Ptr(indices), gl.STATIC_DRAW)
		m.count = int32(len(indices))
	} else {
		m.count = int32(len(vertices) / 3)
	}

	gl.EnableVertexAttribArray(vertAttrib)
	gl.VertexAttribPointer(vertAttrib, 3, gl.FLOAT, false, 0, gl.PtrOffset(0))

	return m
}

func (m *mesh) draw() {
	gl.BindVertexArray(m.vao)
	if m.ebo != 0 {
		gl.DrawElements(m.mode, m.count, gl.UNSIGNED_INT, gl.PtrOffset(0))
	} else {
		gl.DrawArrays(m.mode, 0, m.count)
	}
}

func (m *mesh) release() {
	gl.DeleteVertexArrays(1, &m.vao)
	gl.DeleteBuffers(1, &m.vbo)
	if m.ebo != 0 {
		gl.DeleteBuffers(1, &m.ebo)
	}
}
