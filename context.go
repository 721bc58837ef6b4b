package glshape

import (
	"errors"
	"fmt"

	log "github.com/sirupsen/logrus"
)

// Context owns the window, its GL context and every GPU object created for
// the shape. It must be used from the thread that called Open.
type Context struct {
	cfg      Config
	platform Platform
	device   Device
	window   Window
	log      log.FieldLogger

	program  *Program
	mesh     *Mesh
	viewport Viewport
	state    State

	platformUp bool
}

// Open starts the windowing backend, creates the window and context, builds
// the shader program and uploads the geometry. On error every resource
// acquired so far has been released.
func Open(platform Platform, device Device, opts ...Option) (*Context, error) {
	cfg := DefaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.Logger == nil {
		cfg.Logger = log.StandardLogger()
	}

	c := &Context{
		cfg:      cfg,
		platform: platform,
		device:   device,
		log:      cfg.Logger,
	}

	if err := platform.Init(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInit, err)
	}
	c.platformUp = true

	window, err := platform.CreateWindow(cfg.windowConfig())
	if err != nil || window == nil {
		c.release()
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrWindowCreation, err)
		}
		return nil, ErrWindowCreation
	}
	c.window = window

	if err := c.setup(); err != nil {
		c.release()
		return nil, err
	}
	return c, nil
}

func (c *Context) setup() error {
	c.window.MakeContextCurrent()
	c.platform.SwapInterval(c.cfg.SwapInterval)

	if err := c.device.Init(); err != nil {
		return fmt.Errorf("%w: %w", ErrContextLoad, err)
	}

	version := c.device.Version()
	if version != "" {
		c.log.Infof("Using OpenGL %s", version)
	}
	if c.cfg.Title == "" {
		if version == "" {
			return ErrTitleQuery
		}
		c.cfg.Title = "OpenGL " + version
		c.window.SetTitle(c.cfg.Title)
	}

	// Framebuffer size differs from window size on HiDPI displays.
	width, height := c.window.FramebufferSize()
	c.log.WithFields(log.Fields{"width": width, "height": height}).Info("framebuffer size")
	c.resize(width, height)
	c.window.SetFramebufferSizeCallback(c.resize)

	program, err := BuildProgram(c.device, c.cfg.Shaders)
	if err != nil {
		if c.cfg.ShaderPolicy == ShaderStrict {
			return err
		}
		c.logShaderError(err)
	}
	c.program = program

	mesh, err := UploadGeometry(c.device, c.cfg.Geometry)
	if err != nil {
		return fmt.Errorf("upload %s: %w", c.cfg.Geometry.Name, err)
	}
	c.mesh = mesh

	if c.cfg.Wireframe {
		c.device.PolygonMode(true)
	}

	c.state = StateRunning
	return nil
}

func (c *Context) logShaderError(err error) {
	var compileErr *ShaderCompileError
	var linkErr *ShaderLinkError
	switch {
	case errors.As(err, &compileErr):
		c.log.WithField("stage", compileErr.Stage.String()).Errorf("shader compilation failed\n%s", compileErr.Log)
	case errors.As(err, &linkErr):
		c.log.WithField("stage", "link").Errorf("shader program creation failed\n%s", linkErr.Log)
	default:
		c.log.Error(err)
	}
}

// resize is the framebuffer size callback.
func (c *Context) resize(width, height int) {
	c.viewport = Viewport{X: 0, Y: 0, Width: int32(width), Height: int32(height)}
	c.device.Viewport(c.viewport)
}

// Title returns the current window title.
func (c *Context) Title() string { return c.cfg.Title }

// Viewport returns the viewport last applied to the device.
func (c *Context) Viewport() Viewport { return c.viewport }

// State returns the render loop state.
func (c *Context) State() State { return c.state }

// Program returns the linked program, nil if the build failed under
// ShaderLenient.
func (c *Context) Program() *Program { return c.program }

// Mesh returns the uploaded geometry.
func (c *Context) Mesh() *Mesh { return c.mesh }

// Close releases the program, the mesh, the window and the backend, in that
// order. It is safe to call more than once.
func (c *Context) Close() {
	if c.state == StateTerminated {
		return
	}
	c.release()
	c.state = StateTerminated
	c.log.Info("Terminated OpenGL Context")
}

func (c *Context) release() {
	c.program.Delete()
	c.program = nil
	c.mesh.Delete()
	c.mesh = nil

	if c.window != nil {
		c.window.Destroy()
		c.window = nil
	}
	if c.platformUp {
		c.platform.Terminate()
		c.platformUp = false
	}
}
