package glshape

// State is the render loop state.
type State int

const (
	StateRunning State = iota
	StateClosing
	StateTerminated
)

func (s State) String() string {
	switch s {
	case StateRunning:
		return "running"
	case StateClosing:
		return "closing"
	case StateTerminated:
		return "terminated"
	default:
		return "unknown"
	}
}

// Step runs one frame: poll escape, clear, draw the shape, present, and
// dispatch window events. The state moves to StateClosing once the window
// reports it should close. Step does nothing unless the state is
// StateRunning.
func (c *Context) Step() State {
	if c.state != StateRunning {
		return c.state
	}
	if c.window.ShouldClose() {
		c.state = StateClosing
		return c.state
	}

	processInput(c.window)

	c.drawFrame()

	c.window.SwapBuffers()
	c.platform.PollEvents()

	if c.window.ShouldClose() {
		c.state = StateClosing
	}
	return c.state
}

func (c *Context) drawFrame() {
	c.device.ClearColor(c.cfg.ClearColor)
	c.device.Clear()

	c.device.UseProgram(c.program.Handle())
	c.mesh.Draw()
}

// Run steps frames until the window closes, then releases every resource.
// Teardown runs even if a frame panics.
func (c *Context) Run() error {
	if c.state == StateTerminated {
		return ErrContextClosed
	}
	defer c.Close()

	for c.Step() == StateRunning {
	}
	return nil
}
