package glshape

import "fmt"

// InfoLogSize bounds the compile and link logs fetched from the device.
const InfoLogSize = 512

// ShaderPolicy decides what the Context does when the program fails to build.
type ShaderPolicy int

const (
	// ShaderStrict fails Open with a *ShaderBuildError.
	ShaderStrict ShaderPolicy = iota
	// ShaderLenient logs the failure and keeps running with program 0,
	// which draws nothing.
	ShaderLenient
)

// ShaderSources holds the source of both pipeline stages.
type ShaderSources struct {
	Vertex   string
	Fragment string
}

// Vertex shader source
const vertexShaderSource = `
#version 410 core
layout (location = 0) in vec3 aPos;

void main() {
    gl_Position = vec4(aPos.x, aPos.y, aPos.z, 1.0);
}
`

// Fragment shader source
const fragmentShaderSource = `
#version 410 core
out vec4 FragColor;

void main() {
    FragColor = vec4(0.5, 0.2, 1.0, 1.0);
}
`

// DefaultShaderSources returns the built-in position passthrough and
// solid color shaders.
func DefaultShaderSources() ShaderSources {
	return ShaderSources{Vertex: vertexShaderSource, Fragment: fragmentShaderSource}
}

// Program owns a linked shader program.
type Program struct {
	device Device
	handle ProgramHandle
}

// Handle returns the program handle, 0 once deleted.
func (p *Program) Handle() ProgramHandle {
	if p == nil {
		return 0
	}
	return p.handle
}

// Delete releases the program. Subsequent calls do nothing.
func (p *Program) Delete() {
	if p == nil || p.handle == 0 {
		return
	}
	p.device.DeleteProgram(p.handle)
	p.handle = 0
}

// CompileStage compiles source for the given stage. On failure the stage is
// deleted and a *ShaderCompileError carrying the device log is returned.
func CompileStage(d Device, stage Stage, source string) (ShaderHandle, error) {
	shader := d.CreateShader(stage)
	if shader == 0 {
		return 0, fmt.Errorf("%s shader: %w", stage, ErrBufferCreation)
	}
	d.CompileShader(shader, source)

	if !d.ShaderCompiled(shader) {
		log := d.ShaderInfoLog(shader, InfoLogSize)
		d.DeleteShader(shader)
		return 0, &ShaderCompileError{Stage: stage, Log: log}
	}
	return shader, nil
}

// LinkProgram links the two stages into a program. Both stages are deleted
// whether or not linking succeeds; a linked program retains them.
func LinkProgram(d Device, vertex, fragment ShaderHandle) (*Program, error) {
	program := d.CreateProgram()
	if program == 0 {
		d.DeleteShader(vertex)
		d.DeleteShader(fragment)
		return nil, fmt.Errorf("program: %w", ErrBufferCreation)
	}
	d.AttachShader(program, vertex)
	d.AttachShader(program, fragment)
	d.LinkProgram(program)

	if !d.ProgramLinked(program) {
		log := d.ProgramInfoLog(program, InfoLogSize)
		d.DeleteProgram(program)
		d.DeleteShader(vertex)
		d.DeleteShader(fragment)
		return nil, &ShaderLinkError{Log: log}
	}

	// Cleanup shaders (they're linked into the program now)
	d.DeleteShader(vertex)
	d.DeleteShader(fragment)

	return &Program{device: d, handle: program}, nil
}

// BuildProgram compiles both stages and links them. Any failure is returned
// as a *ShaderBuildError.
func BuildProgram(d Device, src ShaderSources) (*Program, error) {
	vertex, err := CompileStage(d, StageVertex, src.Vertex)
	if err != nil {
		return nil, &ShaderBuildError{Err: err}
	}

	fragment, err := CompileStage(d, StageFragment, src.Fragment)
	if err != nil {
		d.DeleteShader(vertex)
		return nil, &ShaderBuildError{Err: err}
	}

	program, err := LinkProgram(d, vertex, fragment)
	if err != nil {
		return nil, &ShaderBuildError{Err: err}
	}
	return program, nil
}
