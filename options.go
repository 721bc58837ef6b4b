package glshape

import (
	"github.com/go-gl/mathgl/mgl32"
	log "github.com/sirupsen/logrus"
)

// Window size used for every context.
const (
	WindowWidth  = 800
	WindowHeight = 600
)

// Config holds everything Open needs. Build it with DefaultConfig and Options.
type Config struct {
	// Title is the window title. Empty means "OpenGL <version>".
	Title         string
	ContextMajor  int
	ContextMinor  int
	Profile       Profile
	ForwardCompat bool
	Visible       bool
	SwapInterval  int
	ClearColor    Color
	Wireframe     bool
	Geometry      Geometry
	Shaders       ShaderSources
	ShaderPolicy  ShaderPolicy
	Logger        log.FieldLogger
}

// DefaultConfig returns a visible 4.1 core forward-compatible context with
// vsync, the twin quads and the built-in shaders.
func DefaultConfig() Config {
	return Config{
		ContextMajor:  4,
		ContextMinor:  1,
		Profile:       CoreProfile,
		ForwardCompat: true,
		Visible:       true,
		SwapInterval:  1,
		ClearColor:    mgl32.Vec4{0, 0, 0, 1},
		Geometry:      TwinQuads(),
		Shaders:       DefaultShaderSources(),
		ShaderPolicy:  ShaderStrict,
		Logger:        log.StandardLogger(),
	}
}

func (c Config) windowConfig() WindowConfig {
	return WindowConfig{
		Width:         WindowWidth,
		Height:        WindowHeight,
		Title:         c.Title,
		ContextMajor:  c.ContextMajor,
		ContextMinor:  c.ContextMinor,
		Profile:       c.Profile,
		ForwardCompat: c.ForwardCompat,
		Visible:       c.Visible,
	}
}

// Option configures a Context.
type Option func(*Config)

// WithTitle sets the window title.
func WithTitle(title string) Option {
	return func(c *Config) { c.Title = title }
}

// WithContextVersion requests a GL context version.
func WithContextVersion(major, minor int) Option {
	return func(c *Config) {
		c.ContextMajor = major
		c.ContextMinor = minor
	}
}

// WithProfile selects the context profile and forward compatibility.
func WithProfile(profile Profile, forwardCompat bool) Option {
	return func(c *Config) {
		c.Profile = profile
		c.ForwardCompat = forwardCompat
	}
}

// WithHidden creates the window invisible, for offscreen captures.
func WithHidden() Option {
	return func(c *Config) { c.Visible = false }
}

// WithSwapInterval sets the swap interval; 0 disables vsync.
func WithSwapInterval(interval int) Option {
	return func(c *Config) { c.SwapInterval = interval }
}

// WithClearColor sets the background color.
func WithClearColor(color Color) Option {
	return func(c *Config) { c.ClearColor = color }
}

// WithWireframe draws polygon outlines instead of filled triangles.
func WithWireframe() Option {
	return func(c *Config) { c.Wireframe = true }
}

// WithGeometry sets the shape uploaded at startup.
func WithGeometry(g Geometry) Option {
	return func(c *Config) { c.Geometry = g }
}

// WithShaderSources replaces the built-in shaders.
func WithShaderSources(src ShaderSources) Option {
	return func(c *Config) { c.Shaders = src }
}

// WithShaderPolicy sets how a failed program build is handled.
func WithShaderPolicy(policy ShaderPolicy) Option {
	return func(c *Config) { c.ShaderPolicy = policy }
}

// WithLogger sets the diagnostics logger.
func WithLogger(logger log.FieldLogger) Option {
	return func(c *Config) { c.Logger = logger }
}
