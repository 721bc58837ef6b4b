package glshape_test

import (
	"fmt"
	"strings"
	"testing"

	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/require"

	"github.com/go-theft-auto/glshape"
)

// recorder keeps the order of every backend call across device, platform
// and window.
type recorder struct {
	calls []string
}

func (r *recorder) add(format string, args ...any) {
	r.calls = append(r.calls, fmt.Sprintf(format, args...))
}

// index returns the position of the first call starting with prefix, or -1.
func (r *recorder) index(prefix string) int {
	for i, c := range r.calls {
		if strings.HasPrefix(c, prefix) {
			return i
		}
	}
	return -1
}

// lastIndex returns the position of the last call starting with prefix, or -1.
func (r *recorder) lastIndex(prefix string) int {
	for i := len(r.calls) - 1; i >= 0; i-- {
		if strings.HasPrefix(r.calls[i], prefix) {
			return i
		}
	}
	return -1
}

// count returns the number of calls starting with prefix.
func (r *recorder) count(prefix string) int {
	n := 0
	for _, c := range r.calls {
		if strings.HasPrefix(c, prefix) {
			n++
		}
	}
	return n
}

type drawCall struct {
	indexed bool
	count   int32
}

// fakeDevice is a Device that hands out handles and records what it is asked
// to do.
type fakeDevice struct {
	rec  *recorder
	next uint32

	live        map[string]bool
	doubleFrees []string
	stages      map[glshape.ShaderHandle]glshape.Stage

	initErr         error
	version         string
	failCompile     map[glshape.Stage]bool
	failLink        bool
	infoLog         string
	logLimits       []int
	zeroVertexArray bool
	zeroBuffer      bool

	uploads    map[glshape.BufferTarget]int
	layouts    []glshape.VertexLayout
	viewports  []glshape.Viewport
	draws      []drawCall
	programs   []glshape.ProgramHandle
	wireframe  bool
	clearColor glshape.Color
	fill       func(v glshape.Viewport, pixels []byte)
}

func newFakeDevice(rec *recorder) *fakeDevice {
	return &fakeDevice{
		rec:         rec,
		version:     "4.1 Fake",
		live:        make(map[string]bool),
		stages:      make(map[glshape.ShaderHandle]glshape.Stage),
		failCompile: make(map[glshape.Stage]bool),
		uploads:     make(map[glshape.BufferTarget]int),
	}
}

func (d *fakeDevice) alloc(kind string) uint32 {
	d.next++
	d.live[fmt.Sprintf("%s:%d", kind, d.next)] = true
	return d.next
}

func (d *fakeDevice) free(kind string, id uint32) {
	key := fmt.Sprintf("%s:%d", kind, id)
	if !d.live[key] {
		d.doubleFrees = append(d.doubleFrees, key)
		return
	}
	delete(d.live, key)
}

func (d *fakeDevice) liveObjects() []string {
	var out []string
	for k := range d.live {
		out = append(out, k)
	}
	return out
}

func (d *fakeDevice) truncate(maxLen int) string {
	d.logLimits = append(d.logLimits, maxLen)
	if len(d.infoLog) > maxLen {
		return d.infoLog[:maxLen]
	}
	return d.infoLog
}

func (d *fakeDevice) Init() error {
	d.rec.add("Init")
	return d.initErr
}

func (d *fakeDevice) Version() string { return d.version }

func (d *fakeDevice) Viewport(v glshape.Viewport) {
	d.rec.add("Viewport %d %d %d %d", v.X, v.Y, v.Width, v.Height)
	d.viewports = append(d.viewports, v)
}

func (d *fakeDevice) ClearColor(c glshape.Color) { d.clearColor = c }

func (d *fakeDevice) Clear() { d.rec.add("Clear") }

func (d *fakeDevice) PolygonMode(wireframe bool) { d.wireframe = wireframe }

func (d *fakeDevice) CreateShader(stage glshape.Stage) glshape.ShaderHandle {
	h := glshape.ShaderHandle(d.alloc("shader"))
	d.stages[h] = stage
	d.rec.add("CreateShader %s", stage)
	return h
}

func (d *fakeDevice) CompileShader(shader glshape.ShaderHandle, source string) {
	d.rec.add("CompileShader %d", shader)
}

func (d *fakeDevice) ShaderCompiled(shader glshape.ShaderHandle) bool {
	return !d.failCompile[d.stages[shader]]
}

func (d *fakeDevice) ShaderInfoLog(shader glshape.ShaderHandle, maxLen int) string {
	return d.truncate(maxLen)
}

func (d *fakeDevice) DeleteShader(shader glshape.ShaderHandle) {
	d.rec.add("DeleteShader %d", shader)
	d.free("shader", uint32(shader))
}

func (d *fakeDevice) CreateProgram() glshape.ProgramHandle {
	d.rec.add("CreateProgram")
	return glshape.ProgramHandle(d.alloc("program"))
}

func (d *fakeDevice) AttachShader(program glshape.ProgramHandle, shader glshape.ShaderHandle) {
	d.rec.add("AttachShader %d %d", program, shader)
}

func (d *fakeDevice) LinkProgram(program glshape.ProgramHandle) {
	d.rec.add("LinkProgram %d", program)
}

func (d *fakeDevice) ProgramLinked(program glshape.ProgramHandle) bool { return !d.failLink }

func (d *fakeDevice) ProgramInfoLog(program glshape.ProgramHandle, maxLen int) string {
	return d.truncate(maxLen)
}

func (d *fakeDevice) UseProgram(program glshape.ProgramHandle) {
	d.rec.add("UseProgram %d", program)
	d.programs = append(d.programs, program)
}

func (d *fakeDevice) DeleteProgram(program glshape.ProgramHandle) {
	d.rec.add("DeleteProgram %d", program)
	d.free("program", uint32(program))
}

func (d *fakeDevice) GenVertexArray() glshape.VertexArrayHandle {
	if d.zeroVertexArray {
		return 0
	}
	return glshape.VertexArrayHandle(d.alloc("vao"))
}

func (d *fakeDevice) BindVertexArray(vao glshape.VertexArrayHandle) {
	d.rec.add("BindVertexArray %d", vao)
}

func (d *fakeDevice) DeleteVertexArray(vao glshape.VertexArrayHandle) {
	d.rec.add("DeleteVertexArray %d", vao)
	d.free("vao", uint32(vao))
}

func (d *fakeDevice) GenBuffer() glshape.BufferHandle {
	if d.zeroBuffer {
		return 0
	}
	return glshape.BufferHandle(d.alloc("buffer"))
}

func (d *fakeDevice) BindBuffer(target glshape.BufferTarget, buffer glshape.BufferHandle) {
	d.rec.add("BindBuffer %d %d", target, buffer)
}

func (d *fakeDevice) BufferData(target glshape.BufferTarget, size int, data any, usage glshape.Usage) {
	d.rec.add("BufferData %d %d %d", target, size, usage)
	d.uploads[target] = size
}

func (d *fakeDevice) DeleteBuffer(buffer glshape.BufferHandle) {
	d.rec.add("DeleteBuffer %d", buffer)
	d.free("buffer", uint32(buffer))
}

func (d *fakeDevice) VertexAttribPointer(layout glshape.VertexLayout) {
	d.layouts = append(d.layouts, layout)
}

func (d *fakeDevice) EnableVertexAttribArray(index uint32) {
	d.rec.add("EnableVertexAttribArray %d", index)
}

func (d *fakeDevice) DrawArrays(mode glshape.Primitive, first, count int32) {
	d.rec.add("DrawArrays %d", count)
	d.draws = append(d.draws, drawCall{count: count})
}

func (d *fakeDevice) DrawElements(mode glshape.Primitive, count int32) {
	d.rec.add("DrawElements %d", count)
	d.draws = append(d.draws, drawCall{indexed: true, count: count})
}

func (d *fakeDevice) ReadPixels(v glshape.Viewport, pixels []byte) {
	if d.fill != nil {
		d.fill(v, pixels)
	}
}

// fakeWindow is a Window whose input and close state are set by the test.
type fakeWindow struct {
	rec *recorder

	title             string
	fbWidth, fbHeight int
	resize            func(width, height int)
	escape            bool
	shouldClose       bool
	current           bool
	swaps             int
	destroys          int
	onSwap            func()
}

// Resize changes the framebuffer size and fires the callback the way GLFW
// does from inside PollEvents.
func (w *fakeWindow) Resize(width, height int) {
	w.fbWidth, w.fbHeight = width, height
	if w.resize != nil {
		w.resize(width, height)
	}
}

func (w *fakeWindow) MakeContextCurrent() { w.current = true }

func (w *fakeWindow) SetTitle(title string) { w.title = title }

func (w *fakeWindow) FramebufferSize() (int, int) { return w.fbWidth, w.fbHeight }

func (w *fakeWindow) SetFramebufferSizeCallback(fn func(width, height int)) { w.resize = fn }

func (w *fakeWindow) KeyPressed(key glshape.Key) bool {
	return key == glshape.KeyEscape && w.escape
}

func (w *fakeWindow) ShouldClose() bool { return w.shouldClose }

func (w *fakeWindow) SetShouldClose(value bool) {
	w.rec.add("SetShouldClose %t", value)
	w.shouldClose = value
}

func (w *fakeWindow) SwapBuffers() {
	w.rec.add("SwapBuffers")
	w.swaps++
	if w.onSwap != nil {
		w.onSwap()
	}
}

func (w *fakeWindow) Destroy() {
	w.rec.add("Destroy")
	w.destroys++
}

// fakePlatform hands out a single fakeWindow and runs queued events on
// PollEvents.
type fakePlatform struct {
	rec *recorder

	initErr   error
	createErr error
	nilWindow bool
	window    *fakeWindow
	windowCfg glshape.WindowConfig

	swapInterval int
	events       []func()
	inits        int
	terminates   int
}

func (p *fakePlatform) Init() error {
	p.rec.add("PlatformInit")
	p.inits++
	return p.initErr
}

func (p *fakePlatform) Terminate() {
	p.rec.add("Terminate")
	p.terminates++
}

func (p *fakePlatform) CreateWindow(cfg glshape.WindowConfig) (glshape.Window, error) {
	p.rec.add("CreateWindow")
	p.windowCfg = cfg
	if p.createErr != nil {
		return nil, p.createErr
	}
	if p.nilWindow {
		return nil, nil
	}
	p.window.title = cfg.Title
	return p.window, nil
}

func (p *fakePlatform) SwapInterval(interval int) { p.swapInterval = interval }

func (p *fakePlatform) PollEvents() {
	p.rec.add("PollEvents")
	events := p.events
	p.events = nil
	for _, ev := range events {
		ev()
	}
}

// queue schedules fn to run during the next PollEvents.
func (p *fakePlatform) queue(fn func()) {
	p.events = append(p.events, fn)
}

func newFakes() (*fakePlatform, *fakeDevice, *recorder) {
	rec := &recorder{}
	window := &fakeWindow{rec: rec, fbWidth: glshape.WindowWidth, fbHeight: glshape.WindowHeight}
	return &fakePlatform{rec: rec, window: window}, newFakeDevice(rec), rec
}

// openFake opens a Context on fakes with a test logger.
func openFake(t *testing.T, p *fakePlatform, d *fakeDevice, opts ...glshape.Option) (*glshape.Context, *test.Hook) {
	t.Helper()
	logger, hook := test.NewNullLogger()
	all := append([]glshape.Option{glshape.WithLogger(logger)}, opts...)
	ctx, err := glshape.Open(p, d, all...)
	require.NoError(t, err)
	return ctx, hook
}
