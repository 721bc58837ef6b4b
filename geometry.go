package glshape

import (
	"fmt"
	"unsafe"

	"github.com/go-gl/mathgl/mgl32"
)

// VertexLayout describes how buffer bytes map onto one shader input.
type VertexLayout struct {
	Location   uint32
	Components int32 // float components per vertex
	Stride     int32 // bytes between consecutive vertices
	Offset     uintptr
}

// PositionLayout matches `layout (location = 0) in vec3 aPos`.
var PositionLayout = VertexLayout{
	Location:   0,
	Components: 3,
	Stride:     int32(unsafe.Sizeof(mgl32.Vec3{})),
	Offset:     0,
}

// Geometry is immutable shape data uploaded once at startup.
type Geometry struct {
	Name     string
	Vertices []mgl32.Vec3
	Indices  []uint32 // optional, triangle winding
}

// Indexed reports whether the geometry is drawn through an element buffer.
func (g Geometry) Indexed() bool {
	return len(g.Indices) > 0
}

// VertexBytes is the size of the vertex buffer upload.
func (g Geometry) VertexBytes() int {
	return len(g.Vertices) * int(unsafe.Sizeof(mgl32.Vec3{}))
}

// IndexBytes is the size of the element buffer upload.
func (g Geometry) IndexBytes() int {
	return len(g.Indices) * int(unsafe.Sizeof(uint32(0)))
}

// DrawCount is the number of elements one draw call covers: the index count
// for indexed geometry, the vertex count otherwise.
func (g Geometry) DrawCount() int32 {
	if g.Indexed() {
		return int32(len(g.Indices))
	}
	return int32(len(g.Vertices))
}

// Validate checks that the geometry has vertices and that every index
// refers to one of them.
func (g Geometry) Validate() error {
	if len(g.Vertices) == 0 {
		return fmt.Errorf("%w: no vertices", ErrInvalidGeometry)
	}
	for i, idx := range g.Indices {
		if int(idx) >= len(g.Vertices) {
			return fmt.Errorf("%w: index %d at position %d out of range (%d vertices)",
				ErrInvalidGeometry, idx, i, len(g.Vertices))
		}
	}
	return nil
}

// Triangle returns a single non-indexed triangle.
func Triangle() Geometry {
	return Geometry{
		Name: "triangle",
		Vertices: []mgl32.Vec3{
			{-0.5, -0.5, 0.0},
			{0.5, -0.5, 0.0},
			{0.0, 0.5, 0.0},
		},
	}
}

// TwinQuads returns two rectangles side by side, drawn from 12 indices.
func TwinQuads() Geometry {
	return Geometry{
		Name: "twin_quads",
		Vertices: []mgl32.Vec3{
			{0.85, 0.5, 0.0},   // 0 top right
			{0.85, -0.5, 0.0},  // 1 bottom right
			{0.25, -0.5, 0.0},  // 2 bottom left
			{0.25, 0.5, 0.0},   // 3 top left
			{-0.85, -0.5, 0.0}, // 4
			{-0.85, 0.5, 0.0},  // 5
			{-0.25, 0.5, 0.0},  // 6
			{-0.25, -0.5, 0.0}, // 7
		},
		Indices: []uint32{
			0, 1, 3,
			1, 2, 3,
			4, 5, 7,
			5, 6, 7,
		},
	}
}

// Presets returns every built-in geometry.
func Presets() []Geometry {
	return []Geometry{Triangle(), TwinQuads()}
}

// Mesh owns the GPU objects created from a Geometry.
type Mesh struct {
	device  Device
	vao     VertexArrayHandle
	vbo     BufferHandle
	ebo     BufferHandle
	count   int32
	indexed bool
}

// UploadGeometry creates a vertex array, a vertex buffer and, for indexed
// geometry, an element buffer, uploads g with a static draw hint and
// declares PositionLayout.
func UploadGeometry(d Device, g Geometry) (*Mesh, error) {
	if err := g.Validate(); err != nil {
		return nil, err
	}

	m := &Mesh{device: d, count: g.DrawCount(), indexed: g.Indexed()}

	// Create VAO
	m.vao = d.GenVertexArray()
	if m.vao == 0 {
		return nil, fmt.Errorf("vertex array: %w", ErrBufferCreation)
	}
	d.BindVertexArray(m.vao)

	// Create VBO
	m.vbo = d.GenBuffer()
	if m.vbo == 0 {
		d.BindVertexArray(0)
		m.Delete()
		return nil, fmt.Errorf("vertex buffer: %w", ErrBufferCreation)
	}
	d.BindBuffer(ArrayBuffer, m.vbo)
	d.BufferData(ArrayBuffer, g.VertexBytes(), g.Vertices, StaticDraw)

	// Create EBO
	if m.indexed {
		m.ebo = d.GenBuffer()
		if m.ebo == 0 {
			d.BindVertexArray(0)
			m.Delete()
			return nil, fmt.Errorf("element buffer: %w", ErrBufferCreation)
		}
		d.BindBuffer(ElementArrayBuffer, m.ebo)
		d.BufferData(ElementArrayBuffer, g.IndexBytes(), g.Indices, StaticDraw)
	}

	d.VertexAttribPointer(PositionLayout)
	d.EnableVertexAttribArray(PositionLayout.Location)

	// The element buffer binding is part of the VAO, so only the array buffer
	// is unbound here.
	d.BindBuffer(ArrayBuffer, 0)
	d.BindVertexArray(0)

	return m, nil
}

// Count returns the number of elements drawn per frame.
func (m *Mesh) Count() int32 { return m.count }

// Indexed reports whether Draw uses the element buffer.
func (m *Mesh) Indexed() bool { return m.indexed }

// Draw binds the vertex array and issues the single draw call.
func (m *Mesh) Draw() {
	m.device.BindVertexArray(m.vao)
	if m.indexed {
		m.device.DrawElements(Triangles, m.count)
	} else {
		m.device.DrawArrays(Triangles, 0, m.count)
	}
}

// Delete releases the vertex array and its buffers. Subsequent calls do
// nothing.
func (m *Mesh) Delete() {
	if m == nil {
		return
	}
	if m.vao != 0 {
		m.device.DeleteVertexArray(m.vao)
		m.vao = 0
	}
	if m.vbo != 0 {
		m.device.DeleteBuffer(m.vbo)
		m.vbo = 0
	}
	if m.ebo != 0 {
		m.device.DeleteBuffer(m.ebo)
		m.ebo = 0
	}
}
