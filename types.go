package glshape

import "github.com/go-gl/mathgl/mgl32"

// ShaderHandle names a compiled but unlinked shader stage.
type ShaderHandle uint32

// ProgramHandle names a linked shader program.
type ProgramHandle uint32

// BufferHandle names a GPU data buffer.
type BufferHandle uint32

// VertexArrayHandle names a vertex array object.
type VertexArrayHandle uint32

// Stage is a programmable pipeline stage.
type Stage int

const (
	StageVertex Stage = iota
	StageFragment
)

func (s Stage) String() string {
	switch s {
	case StageVertex:
		return "vertex"
	case StageFragment:
		return "fragment"
	default:
		return "unknown"
	}
}

// BufferTarget is the binding point a buffer is attached to.
type BufferTarget int

const (
	ArrayBuffer BufferTarget = iota
	ElementArrayBuffer
)

// Usage is the data store usage hint passed with a buffer upload.
type Usage int

const (
	StaticDraw Usage = iota
	StreamDraw
)

// Primitive is the topology used by a draw call.
type Primitive int

const (
	Triangles Primitive = iota
)

// Profile selects the OpenGL context profile.
type Profile int

const (
	CoreProfile Profile = iota
	CompatProfile
	AnyProfile
)

// Viewport is a framebuffer rectangle in pixels.
type Viewport struct {
	X, Y          int32
	Width, Height int32
}

// Color is a linear RGBA color.
type Color = mgl32.Vec4

