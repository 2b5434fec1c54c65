package graphics

import (
	"github.com/go-gl/gl/v4.1-core/gl"
)

// QuadVertexCount is the number of vertices in the triangle-strip quad.
const QuadVertexCount = 4

// QuadVertices is a unit square in the XY plane, laid out as a triangle
// strip: (1,1), (-1,1), (1,-1), (-1,-1). Two floats per vertex.
var QuadVertices = []float32{
	1, 1,
	-1, 1,
	1, -1,
	-1, -1,
}

// QuadColors holds one fixed RGBA color per corner, index-aligned with
// QuadVertices: white, red, green, blue.
var QuadColors = []float32{
	1, 1, 1, 1,
	1, 0, 0, 1,
	0, 1, 0, 1,
	0, 0, 1, 1,
}

// QuadMesh owns the GPU-resident quad buffers. Both buffers are uploaded
// once with the static-draw hint and never mutated; their lifetime is the
// lifetime of the rendering context unless Dispose is called.
type QuadMesh struct {
	vao         uint32
	positionVBO uint32
	colorVBO    uint32
}

// NewQuadMesh uploads the quad geometry. positionAttrib receives two floats
// per vertex, tightly packed and not normalized. When colorAttrib is
// non-negative the color buffer is uploaded as well and bound to it with
// four floats per vertex.
func NewQuadMesh(positionAttrib uint32, colorAttrib int32) *QuadMesh {
	m := &QuadMesh{}

	gl.GenVertexArrays(1, &m.vao)
	gl.BindVertexArray(m.vao)

	gl.GenBuffers(1, &m.positionVBO)
	gl.BindBuffer(gl.ARRAY_BUFFER, m.positionVBO)
	gl.BufferData(gl.ARRAY_BUFFER, len(QuadVertices)*4, gl.Ptr(QuadVertices), gl.STATIC_DRAW)
	gl.EnableVertexAttribArray(positionAttrib)
	gl.VertexAttribPointerWithOffset(positionAttrib, 2, gl.FLOAT, false, 0, 0)

	if colorAttrib >= 0 {
		gl.GenBuffers(1, &m.colorVBO)
		gl.BindBuffer(gl.ARRAY_BUFFER, m.colorVBO)
		gl.BufferData(gl.ARRAY_BUFFER, len(QuadColors)*4, gl.Ptr(QuadColors), gl.STATIC_DRAW)
		gl.EnableVertexAttribArray(uint32(colorAttrib))
		gl.VertexAttribPointerWithOffset(uint32(colorAttrib), 4, gl.FLOAT, false, 0, 0)
	}

	// unbind to reduce accidental state changes
	gl.BindBuffer(gl.ARRAY_BUFFER, 0)
	gl.BindVertexArray(0)

	return m
}

// Bind makes the quad's vertex array current.
func (m *QuadMesh) Bind() {
	gl.BindVertexArray(m.vao)
}

// VertexCount returns the draw count for the triangle strip.
func (m *QuadMesh) VertexCount() int32 {
	return QuadVertexCount
}

// Dispose releases the buffers and the vertex array.
func (m *QuadMesh) Dispose() {
	if m.colorVBO != 0 {
		gl.DeleteBuffers(1, &m.colorVBO)
	}
	if m.positionVBO != 0 {
		gl.DeleteBuffers(1, &m.positionVBO)
	}
	if m.vao != 0 {
		gl.DeleteVertexArrays(1, &m.vao)
	}
	m.vao, m.positionVBO, m.colorVBO = 0, 0, 0
}
