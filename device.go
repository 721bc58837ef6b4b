package glshape

// Device is the subset of the OpenGL API the shape renderer issues.
// All methods must be called on the thread that owns the current context.
type Device interface {
	// Init loads GL function pointers. The context must be current.
	Init() error
	// Version returns the GL_VERSION string, or "" if unavailable.
	Version() string

	Viewport(v Viewport)
	ClearColor(c Color)
	Clear()
	PolygonMode(wireframe bool)

	CreateShader(stage Stage) ShaderHandle
	CompileShader(shader ShaderHandle, source string)
	ShaderCompiled(shader ShaderHandle) bool
	// ShaderInfoLog returns at most maxLen bytes of the compile log.
	ShaderInfoLog(shader ShaderHandle, maxLen int) string
	DeleteShader(shader ShaderHandle)

	CreateProgram() ProgramHandle
	AttachShader(program ProgramHandle, shader ShaderHandle)
	LinkProgram(program ProgramHandle)
	ProgramLinked(program ProgramHandle) bool
	// ProgramInfoLog returns at most maxLen bytes of the link log.
	ProgramInfoLog(program ProgramHandle, maxLen int) string
	UseProgram(program ProgramHandle)
	DeleteProgram(program ProgramHandle)

	GenVertexArray() VertexArrayHandle
	BindVertexArray(vao VertexArrayHandle)
	DeleteVertexArray(vao VertexArrayHandle)

	GenBuffer() BufferHandle
	BindBuffer(target BufferTarget, buffer BufferHandle)
	// BufferData uploads size bytes starting at the first element of data,
	// which must be a slice.
	BufferData(target BufferTarget, size int, data any, usage Usage)
	DeleteBuffer(buffer BufferHandle)

	VertexAttribPointer(layout VertexLayout)
	EnableVertexAttribArray(index uint32)

	DrawArrays(mode Primitive, first, count int32)
	// DrawElements draws count uint32 indices from the bound element buffer.
	DrawElements(mode Primitive, count int32)

	// ReadPixels reads RGBA bytes from the bound framebuffer into pixels.
	ReadPixels(v Viewport, pixels []byte)
}

// Platform is the process-wide windowing backend.
type Platform interface {
	Init() error
	Terminate()
	CreateWindow(cfg WindowConfig) (Window, error)
	// SwapInterval sets the number of screen updates to wait before swapping.
	// The context must be current.
	SwapInterval(interval int)
	// PollEvents dispatches pending window events, invoking callbacks
	// synchronously on the calling thread.
	PollEvents()
}

// WindowConfig carries the window and context hints used at creation.
type WindowConfig struct {
	Width, Height int
	Title         string
	ContextMajor  int
	ContextMinor  int
	Profile       Profile
	ForwardCompat bool
	Visible       bool
}

// Window is a native window owning a GL context.
type Window interface {
	MakeContextCurrent()
	SetTitle(title string)
	FramebufferSize() (width, height int)
	SetFramebufferSizeCallback(fn func(width, height int))
	KeyPressed(key Key) bool
	ShouldClose() bool
	SetShouldClose(value bool)
	SwapBuffers()
	Destroy()
}
