/*
Package glshape draws one static shape in a window through the OpenGL 4.1
core pipeline.

# Overview

A Context owns a GLFW window, its GL context, one linked shader program and
one uploaded mesh. Open creates all of them in order and Run drives the frame
loop until the user presses escape or closes the window, then releases
everything in reverse: program, vertex array and buffers, window, backend.

The GL and windowing calls go through the Device and Platform interfaces.
The backend/opengl package implements both with go-gl.

# Quick Start

	func init() {
	    // GLFW must run on the main thread.
	    runtime.LockOSThread()
	}

	func main() {
	    ctx, err := glshape.Open(opengl.NewPlatform(), opengl.NewDevice(),
	        glshape.WithGeometry(glshape.TwinQuads()))
	    if err != nil {
	        fmt.Fprintln(os.Stderr, "Error:", err)
	        os.Exit(1)
	    }
	    _ = ctx.Run()
	}

# Shaders

BuildProgram compiles the vertex and fragment stages and links them. Each
step checks its status and, on failure, returns the device's info log (at
most InfoLogSize bytes) in a *ShaderCompileError or *ShaderLinkError wrapped
in a *ShaderBuildError. Under the default ShaderStrict policy Open fails;
under ShaderLenient the error is logged and frames are drawn with program 0.

# Geometry

A Geometry is a list of mgl32.Vec3 positions with optional uint32 indices.
UploadGeometry validates the indices, uploads both arrays with a static draw
hint and declares PositionLayout (location 0, three floats, tightly packed).
Indexed geometry is drawn with one DrawElements call over len(Indices)
elements, non-indexed geometry with DrawArrays over len(Vertices).

# Frame Loop

Each Step polls escape, clears, binds the program and vertex array, draws,
swaps buffers and polls events. The framebuffer size callback runs inside
PollEvents and updates the viewport before the next frame.

	Running --(escape or window close)--> Closing --(Close)--> Terminated
*/
package glshape
