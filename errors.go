package glshape

import (
	"errors"
	"fmt"
)

var (
	// ErrInit is returned when the windowing backend fails to start.
	ErrInit = errors.New("windowing backend init failed")
	// ErrWindowCreation is returned when no native window could be created.
	ErrWindowCreation = errors.New("failed to create window")
	// ErrContextLoad is returned when GL functions could not be loaded.
	ErrContextLoad = errors.New("failed to load OpenGL functions")
	// ErrTitleQuery is returned when the GL version string is needed for the
	// window title but is unavailable.
	ErrTitleQuery = errors.New("failed to retrieve OpenGL version")
	// ErrInvalidGeometry is returned for empty geometry or out of range indices.
	ErrInvalidGeometry = errors.New("invalid geometry")
	// ErrBufferCreation is returned when the device hands back a zero handle.
	ErrBufferCreation = errors.New("failed to create GPU object")
	// ErrContextClosed is returned by operations on a closed Context.
	ErrContextClosed = errors.New("context closed")
)

// ShaderCompileError reports a stage that failed to compile.
type ShaderCompileError struct {
	Stage Stage
	Log   string
}

func (e *ShaderCompileError) Error() string {
	return fmt.Sprintf("%s shader compilation failed: %s", e.Stage, e.Log)
}

// ShaderLinkError reports a program that failed to link.
type ShaderLinkError struct {
	Log string
}

func (e *ShaderLinkError) Error() string {
	return fmt.Sprintf("shader program linking failed: %s", e.Log)
}

// ShaderBuildError wraps the compile or link failure that stopped a program
// from being built.
type ShaderBuildError struct {
	Err error
}

func (e *ShaderBuildError) Error() string {
	return "failed to create shader: " + e.Err.Error()
}

func (e *ShaderBuildError) Unwrap() error { return e.Err }
