package openglhelper

import (
	"github.com/go-gl/gl/v4.6-core/gl"
	"github.com/go-gl/mathgl/mgl32"
)

// floatsPerVertex is position (3) followed by normal (3)
const floatsPerVertex = 6

// Mesh is an indexed triangle mesh on the GPU
type Mesh struct {
	vao        *VertexArrayObject
	vbo        *BufferObject
	ebo        *BufferObject
	indexCount int32
}

// NewMesh uploads interleaved position/normal vertices and their indices
func NewMesh(vertices []float32, indices []uint32) *Mesh {
	vao := NewVAO()
	vao.Bind()

	vbo := NewVBO(vertices, StaticDraw)
	ebo := NewEBO(indices, StaticDraw)

	stride := int32(floatsPerVertex * 4)
	vao.SetVertexAttribPointer(0, 3, gl.FLOAT, false, stride, 0)
	vao.SetVertexAttribPointer(1, 3, gl.FLOAT, false, stride, 3*4)

	vao.Unbind()

	return &Mesh{
		vao:        vao,
		vbo:        vbo,
		ebo:        ebo,
		indexCount: int32(len(indices)),
	}
}

// Draw renders the mesh with whatever shader is bound
func (m *Mesh) Draw() {
	m.vao.Bind()
	gl.DrawElements(gl.TRIANGLES, m.indexCount, gl.UNSIGNED_INT, nil)
	m.vao.Unbind()
}

// Delete releases all resources
func (m *Mesh) Delete() {
	m.vao.Delete()
	m.vbo.Delete()
	m.ebo.Delete()
}

// NewCube creates a unit cube centred on the origin
func NewCube() *Mesh {
	vertices, indices := cubeGeometry()
	return NewMesh(vertices, indices)
}

// cubeGeometry builds four vertices per face so each face gets a flat normal.
// Faces wind counter-clockwise seen from outside.
func cubeGeometry() ([]float32, []uint32) {
	normals := []mgl32.Vec3{
		{1, 0, 0}, {-1, 0, 0},
		{0, 1, 0}, {0, -1, 0},
		{0, 0, 1}, {0, 0, -1},
	}

	vertices := make([]float32, 0, len(normals)*4*floatsPerVertex)
	indices := make([]uint32, 0, len(normals)*6)

	for face, n := range normals {
		// u and v span the face so that u x v == n
		u := mgl32.Vec3{n.Y(), n.Z(), n.X()}
		v := n.Cross(u)

		corners := [4][2]float32{{-1, -1}, {1, -1}, {1, 1}, {-1, 1}}
		for _, c := range corners {
			p := n.Mul(0.5).Add(u.Mul(c[0] * 0.5)).Add(v.Mul(c[1] * 0.5))
			vertices = append(vertices, p.X(), p.Y(), p.Z(), n.X(), n.Y(), n.Z())
		}

		base := uint32(face * 4)
		indices = append(indices, base, base+1, base+2, base+2, base+3, base)
	}

	return vertices, indices
}
