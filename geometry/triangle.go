package geometry

import "github.com/go-gl/gl/v3.3-core/gl"

// TriangleVertices is the one static mesh: three vertices of three float32
// position components each, already in clip space.
var TriangleVertices = []float32{
	-0.5, -0.5, 0.0,
	0.5, -0.5, 0.0,
	0.0, 0.5, 0.0,
}

const (
	componentsPerVertex = 3
	floatSize           = 4
)

// VertexCount returns the number of vertices in TriangleVertices.
func VertexCount() int32 {
	return int32(len(TriangleVertices) / componentsPerVertex)
}

// SizeBytes is the byte size of a vertex slice as uploaded to the GPU.
func SizeBytes(vertices []float32) int {
	return len(vertices) * floatSize
}

// Mesh owns the vertex array and vertex buffer for one immutable mesh.
type Mesh struct {
	vao         uint32
	vbo         uint32
	vertexCount int32
}

// NewMesh uploads vertices (3 position floats each) into a fresh VAO/VBO
// pair. The data is static; the buffer is never written again.
func NewMesh(vertices []float32) *Mesh {
	m := &Mesh{vertexCount: int32(len(vertices) / componentsPerVertex)}
	gl.GenVertexArrays(1, &m.vao)
	gl.GenBuffers(1, &m.vbo)
	gl.BindVertexArray(m.vao)
	gl.BindBuffer(gl.ARRAY_BUFFER, m.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, SizeBytes(vertices), gl.Ptr(vertices), gl.STATIC_DRAW)
	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointer(0, componentsPerVertex, gl.FLOAT, false, componentsPerVertex*floatSize, gl.PtrOffset(0))
	// The attribute pointer recorded the VBO binding in the VAO; safe to unbind.
	gl.BindBuffer(gl.ARRAY_BUFFER, 0)
	gl.BindVertexArray(0)
	return m
}

// Draw binds the vertex array and issues one triangle-list draw call.
func (m *Mesh) Draw() {
	gl.BindVertexArray(m.vao)
	gl.DrawArrays(gl.TRIANGLES, 0, m.vertexCount)
}

// Destroy releases the vertex array, then the vertex buffer.
func (m *Mesh) Destroy() {
	gl.DeleteVertexArrays(1, &m.vao)
	gl.DeleteBuffers(1, &m.vbo)
	m.vao = 0
	m.vbo = 0
}
