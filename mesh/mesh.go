// Package mesh uploads the fixed cat geometry and draws it.
package mesh

import (
	"fmt"

	"github.com/go-gl/gl/v3.3-core/gl"
)

// Mesh defines the GPU buffers holding the cat geometry.
type Mesh struct {
	vao   uint32
	vbo   uint32
	ebo   uint32
	count int32
}

// New uploads Vertices and Indices into new buffers.
// This happens once; the buffers are never written again.
// It requires a current OpenGL context.
func New() (*Mesh, error) {
	if err := Validate(Vertices[:], Indices[:]); err != nil {
		return nil, err
	}

	var m Mesh
	m.count = drawCount(Indices[:])

	gl.GenVertexArrays(1, &m.vao)
	gl.BindVertexArray(m.vao)

	gl.GenBuffers(1, &m.vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, m.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(Vertices)*4, gl.Ptr(&Vertices[0]), gl.STATIC_DRAW)

	gl.GenBuffers(1, &m.ebo)
	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, m.ebo)
	gl.BufferData(gl.ELEMENT_ARRAY_BUFFER, len(Indices)*4, gl.Ptr(&Indices[0]), gl.STATIC_DRAW)

	gl.VertexAttribPointer(0, 3, gl.FLOAT, false, vertexStride, gl.PtrOffset(0))
	gl.EnableVertexAttribArray(0)

	// The VAO keeps its attribute binding; the element buffer must stay bound to it.
	gl.BindBuffer(gl.ARRAY_BUFFER, 0)
	gl.BindVertexArray(0)
	return &m, nil
}

// Draw issues a single indexed draw of the whole mesh.
func (m *Mesh) Draw() {
	gl.BindVertexArray(m.vao)
	gl.DrawElements(gl.TRIANGLES, m.count, gl.UNSIGNED_INT, gl.PtrOffset(0))
}

// Delete releases the buffers.
func (m *Mesh) Delete() {
	if m.vao == 0 {
		return
	}
	gl.DeleteVertexArrays(1, &m.vao)
	gl.DeleteBuffers(1, &m.vbo)
	gl.DeleteBuffers(1, &m.ebo)
	m.vao, m.vbo, m.ebo = 0, 0, 0
}

// drawCount returns the number of indices a draw of the given triangle list issues.
func drawCount(indices []uint32) int32 {
	return int32(len(indices))
}

// Validate checks that indices form whole triangles over the given
// x, y, z vertex data.
func Validate(vertices []float32, indices []uint32) error {
	if len(vertices)%3 != 0 {
		return fmt.Errorf("vertex data length %d is not a multiple of 3", len(vertices))
	}

	if len(indices)%3 != 0 {
		return fmt.Errorf("index count %d is not a multiple of 3", len(indices))
	}

	n := uint32(len(vertices) / 3)
	for i, idx := range indices {
		if idx >= n {
			return fmt.Errorf("index %d at position %d is out of range [0, %d)", idx, i, n)
		}
	}

	return nil
}
