// Package opengl implements the glshape Device with OpenGL 4.1 core and the
// Platform with GLFW 3.3.
package opengl

import (
	"strings"

	"github.com/go-gl/gl/v4.1-core/gl"

	"github.com/go-theft-auto/glshape"
)

// Device issues glshape draw and resource calls through go-gl.
type Device struct{}

var _ glshape.Device = (*Device)(nil)

// NewDevice creates a GL device. Call Init once a context is current.
func NewDevice() *Device {
	return &Device{}
}

func (d *Device) Init() error {
	return gl.Init()
}

func (d *Device) Version() string {
	v := gl.GetString(gl.VERSION)
	if v == nil {
		return ""
	}
	return gl.GoStr(v)
}

func (d *Device) Viewport(v glshape.Viewport) {
	gl.Viewport(v.X, v.Y, v.Width, v.Height)
}

func (d *Device) ClearColor(c glshape.Color) {
	gl.ClearColor(c[0], c[1], c[2], c[3])
}

func (d *Device) Clear() {
	gl.Clear(gl.COLOR_BUFFER_BIT)
}

func (d *Device) PolygonMode(wireframe bool) {
	if wireframe {
		gl.PolygonMode(gl.FRONT_AND_BACK, gl.LINE)
	} else {
		gl.PolygonMode(gl.FRONT_AND_BACK, gl.FILL)
	}
}

func (d *Device) CreateShader(stage glshape.Stage) glshape.ShaderHandle {
	switch stage {
	case glshape.StageVertex:
		return glshape.ShaderHandle(gl.CreateShader(gl.VERTEX_SHADER))
	case glshape.StageFragment:
		return glshape.ShaderHandle(gl.CreateShader(gl.FRAGMENT_SHADER))
	default:
		return 0
	}
}

func (d *Device) CompileShader(shader glshape.ShaderHandle, source string) {
	csource, free := gl.Strs(terminate(source))
	gl.ShaderSource(uint32(shader), 1, csource, nil)
	free()
	gl.CompileShader(uint32(shader))
}

func (d *Device) ShaderCompiled(shader glshape.ShaderHandle) bool {
	var status int32
	gl.GetShaderiv(uint32(shader), gl.COMPILE_STATUS, &status)
	return status != gl.FALSE
}

func (d *Device) ShaderInfoLog(shader glshape.ShaderHandle, maxLen int) string {
	var logLength int32
	gl.GetShaderiv(uint32(shader), gl.INFO_LOG_LENGTH, &logLength)
	logLength = clampLog(logLength, maxLen)
	if logLength == 0 {
		return ""
	}
	log := make([]byte, logLength)
	var written int32
	gl.GetShaderInfoLog(uint32(shader), logLength, &written, &log[0])
	return string(log[:written])
}

func (d *Device) DeleteShader(shader glshape.ShaderHandle) {
	gl.DeleteShader(uint32(shader))
}

func (d *Device) CreateProgram() glshape.ProgramHandle {
	return glshape.ProgramHandle(gl.CreateProgram())
}

func (d *Device) AttachShader(program glshape.ProgramHandle, shader glshape.ShaderHandle) {
	gl.AttachShader(uint32(program), uint32(shader))
}

func (d *Device) LinkProgram(program glshape.ProgramHandle) {
	gl.LinkProgram(uint32(program))
}

func (d *Device) ProgramLinked(program glshape.ProgramHandle) bool {
	var status int32
	gl.GetProgramiv(uint32(program), gl.LINK_STATUS, &status)
	return status != gl.FALSE
}

func (d *Device) ProgramInfoLog(program glshape.ProgramHandle, maxLen int) string {
	var logLength int32
	gl.GetProgramiv(uint32(program), gl.INFO_LOG_LENGTH, &logLength)
	logLength = clampLog(logLength, maxLen)
	if logLength == 0 {
		return ""
	}
	log := make([]byte, logLength)
	var written int32
	gl.GetProgramInfoLog(uint32(program), logLength, &written, &log[0])
	return string(log[:written])
}

func (d *Device) UseProgram(program glshape.ProgramHandle) {
	gl.UseProgram(uint32(program))
}

func (d *Device) DeleteProgram(program glshape.ProgramHandle) {
	gl.DeleteProgram(uint32(program))
}

func (d *Device) GenVertexArray() glshape.VertexArrayHandle {
	var vao uint32
	gl.GenVertexArrays(1, &vao)
	return glshape.VertexArrayHandle(vao)
}

func (d *Device) BindVertexArray(vao glshape.VertexArrayHandle) {
	gl.BindVertexArray(uint32(vao))
}

func (d *Device) DeleteVertexArray(vao glshape.VertexArrayHandle) {
	id := uint32(vao)
	gl.DeleteVertexArrays(1, &id)
}

func (d *Device) GenBuffer() glshape.BufferHandle {
	var buf uint32
	gl.GenBuffers(1, &buf)
	return glshape.BufferHandle(buf)
}

func (d *Device) BindBuffer(target glshape.BufferTarget, buffer glshape.BufferHandle) {
	gl.BindBuffer(bufferTarget(target), uint32(buffer))
}

func (d *Device) BufferData(target glshape.BufferTarget, size int, data any, usage glshape.Usage) {
	gl.BufferData(bufferTarget(target), size, gl.Ptr(data), bufferUsage(usage))
}

func (d *Device) DeleteBuffer(buffer glshape.BufferHandle) {
	id := uint32(buffer)
	gl.DeleteBuffers(1, &id)
}

func (d *Device) VertexAttribPointer(layout glshape.VertexLayout) {
	gl.VertexAttribPointerWithOffset(layout.Location, layout.Components, gl.FLOAT, false, layout.Stride, layout.Offset)
}

func (d *Device) EnableVertexAttribArray(index uint32) {
	gl.EnableVertexAttribArray(index)
}

func (d *Device) DrawArrays(mode glshape.Primitive, first, count int32) {
	gl.DrawArrays(primitive(mode), first, count)
}

func (d *Device) DrawElements(mode glshape.Primitive, count int32) {
	gl.DrawElementsWithOffset(primitive(mode), count, gl.UNSIGNED_INT, 0)
}

func (d *Device) ReadPixels(v glshape.Viewport, pixels []byte) {
	gl.ReadPixels(v.X, v.Y, v.Width, v.Height, gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(pixels))
}

// terminate appends the NUL gl.Strs requires.
func terminate(source string) string {
	if strings.HasSuffix(source, "\x00") {
		return source
	}
	return source + "\x00"
}

func clampLog(length int32, maxLen int) int32 {
	if length < 0 {
		return 0
	}
	if int(length) > maxLen {
		return int32(maxLen)
	}
	return length
}

func bufferTarget(t glshape.BufferTarget) uint32 {
	if t == glshape.ElementArrayBuffer {
		return gl.ELEMENT_ARRAY_BUFFER
	}
	return gl.ARRAY_BUFFER
}

func bufferUsage(u glshape.Usage) uint32 {
	if u == glshape.StreamDraw {
		return gl.STREAM_DRAW
	}
	return gl.STATIC_DRAW
}

func primitive(glshape.Primitive) uint32 {
	return gl.TRIANGLES
}
