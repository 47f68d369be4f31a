package graphics

import "github.com/go-gl/gl/v4.1-core/gl"

// quadVertices is a unit quad centred on the origin: x, y, u, v.
// v runs downwards so image row 0 lands at the top.
var quadVertices = []float32{
	-0.5, -0.5, 0, 1,
	0.5, -0.5, 1, 1,
	0.5, 0.5, 1, 0,
	-0.5, -0.5, 0, 1,
	0.5, 0.5, 1, 0,
	-0.5, 0.5, 0, 0,
}

// Quad is a textured unit quad.
type Quad struct {
	vao, vbo uint32
}

// NewQuad uploads the quad geometry. Attribute 0 is position, 1 is UV.
func NewQuad() *Quad {
	q := &Quad{}
	gl.GenVertexArrays(1, &q.vao)
	gl.BindVertexArray(q.vao)

	gl.GenBuffers(1, &q.vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, q.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(quadVertices)*4, gl.Ptr(quadVertices), gl.STATIC_DRAW)

	stride := int32(4 * 4)
	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointer(0, 2, gl.FLOAT, false, stride, gl.PtrOffset(0))
	gl.EnableVertexAttribArray(1)
	gl.VertexAttribPointer(1, 2, gl.FLOAT, false, stride, gl.PtrOffset(2*4))

	gl.BindVertexArray(0)
	return q
}

// Draw binds texture to unit 0 and draws the quad.
func (q *Quad) Draw(texture uint32) {
	gl.ActiveTexture(gl.TEXTURE0)
	gl.BindTexture(gl.TEXTURE_2D, texture)
	gl.BindVertexArray(q.vao)
	gl.DrawArrays(gl.TRIANGLES, 0, int32(len(quadVertices)/4))
	gl.BindVertexArray(0)
}

// Delete releases the GL buffers.
func (q *Quad) Delete() {
	gl.DeleteBuffers(1, &q.vbo)
	gl.DeleteVertexArrays(1, &q.vao)
}
