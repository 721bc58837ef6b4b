package opengl

import (
	"github.com/go-gl/glfw/v3.3/glfw"

	"github.com/go-theft-auto/glshape"
)

// Platform adapts the process-wide GLFW library to glshape.Platform.
// GLFW must be used from the main thread; lock it in an init function.
type Platform struct{}

var _ glshape.Platform = (*Platform)(nil)

// NewPlatform creates a GLFW platform.
func NewPlatform() *Platform {
	return &Platform{}
}

func (p *Platform) Init() error {
	return glfw.Init()
}

func (p *Platform) Terminate() {
	glfw.Terminate()
}

// CreateWindow applies the context hints in cfg and creates the window.
func (p *Platform) CreateWindow(cfg glshape.WindowConfig) (glshape.Window, error) {
	glfw.DefaultWindowHints()
	for _, h := range windowHints(cfg) {
		glfw.WindowHint(h.hint, h.value)
	}

	window, err := glfw.CreateWindow(cfg.Width, cfg.Height, cfg.Title, nil, nil)
	if err != nil {
		return nil, err
	}
	return &Window{window: window}, nil
}

func (p *Platform) SwapInterval(interval int) {
	glfw.SwapInterval(interval)
}

func (p *Platform) PollEvents() {
	glfw.PollEvents()
}

type windowHint struct {
	hint  glfw.Hint
	value int
}

// windowHints translates a glshape.WindowConfig into GLFW hints.
func windowHints(cfg glshape.WindowConfig) []windowHint {
	return []windowHint{
		{glfw.ContextVersionMajor, cfg.ContextMajor},
		{glfw.ContextVersionMinor, cfg.ContextMinor},
		{glfw.OpenGLProfile, glfwProfile(cfg.Profile)},
		// Required on macOS for any 3.2+ core context.
		{glfw.OpenGLForwardCompatible, glfwBool(cfg.ForwardCompat)},
		{glfw.Visible, glfwBool(cfg.Visible)},
	}
}

func glfwProfile(p glshape.Profile) int {
	switch p {
	case glshape.CoreProfile:
		return glfw.OpenGLCoreProfile
	case glshape.CompatProfile:
		return glfw.OpenGLCompatProfile
	default:
		return glfw.OpenGLAnyProfile
	}
}

func glfwBool(v bool) int {
	if v {
		return glfw.True
	}
	return glfw.False
}

// Window adapts *glfw.Window to glshape.Window.
type Window struct {
	window *glfw.Window
}

var _ glshape.Window = (*Window)(nil)

// GLFW returns the underlying window.
func (w *Window) GLFW() *glfw.Window {
	return w.window
}

func (w *Window) MakeContextCurrent() {
	w.window.MakeContextCurrent()
}

func (w *Window) SetTitle(title string) {
	w.window.SetTitle(title)
}

func (w *Window) FramebufferSize() (int, int) {
	return w.window.GetFramebufferSize()
}

// SetFramebufferSizeCallback registers fn to run inside PollEvents whenever
// the framebuffer is resized.
func (w *Window) SetFramebufferSizeCallback(fn func(width, height int)) {
	w.window.SetFramebufferSizeCallback(func(_ *glfw.Window, width, height int) {
		fn(width, height)
	})
}

func (w *Window) KeyPressed(key glshape.Key) bool {
	k, ok := glfwKey(key)
	if !ok {
		return false
	}
	return w.window.GetKey(k) == glfw.Press
}

func (w *Window) ShouldClose() bool {
	return w.window.ShouldClose()
}

func (w *Window) SetShouldClose(value bool) {
	w.window.SetShouldClose(value)
}

func (w *Window) SwapBuffers() {
	w.window.SwapBuffers()
}

func (w *Window) Destroy() {
	w.window.Destroy()
}

// glfwKey maps glshape keys to GLFW keys.
func glfwKey(key glshape.Key) (glfw.Key, bool) {
	switch key {
	case glshape.KeyEscape:
		return glfw.KeyEscape, true
	default:
		return glfw.KeyUnknown, false
	}
}
