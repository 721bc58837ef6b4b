// Example opens an 800x600 window and draws two purple rectangles until
// escape is pressed or the window is closed.
//
// Prerequisites:
//
//	Install devbox: https://www.jetify.com/devbox
//	devbox shell              # enter the dev environment (provides Go + OpenGL/X11 headers)
//	go run ./example/         # run this example
//
// The window title is left empty so it becomes "OpenGL <version>" once the
// context is up.
package main

import (
	"fmt"
	"os"
	"runtime"

	"github.com/go-theft-auto/glshape"
	"github.com/go-theft-auto/glshape/backend/opengl"
)

func init() {
	// GLFW must run on the main thread.
	runtime.LockOSThread()
}

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func run() error {
	ctx, err := glshape.Open(opengl.NewPlatform(), opengl.NewDevice(),
		glshape.WithGeometry(glshape.TwinQuads()),
	)
	if err != nil {
		return err
	}
	return ctx.Run()
}
