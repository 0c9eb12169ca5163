// Package window opens a GLFW window with a current OpenGL ES 3.0 context
// and exposes glfw.GetProcAddress as a gles lookup.
package window

import (
	"fmt"
	"runtime"
	"unsafe"

	"github.com/go-gl/glfw/v3.3/glfw"

	"github.com/spaghettifunk/gles3/internal/core"
)

func init() {
	// GLFW event handling must run on the main OS thread
	runtime.LockOSThread()
}

type Config struct {
	Title   string
	Width   int
	Height  int
	Visible bool
	// EGL asks GLFW to create the context through EGL instead of the
	// native API (GLX, WGL, NSGL).
	EGL bool
}

type Window struct {
	*glfw.Window
}

// Open initializes GLFW, creates the window and makes its context current
// on the calling thread.
func Open(config Config) (*Window, error) {
	if err := glfw.Init(); err != nil {
		return nil, fmt.Errorf("failed to initialize glfw: %w", err)
	}

	glfw.WindowHint(glfw.Visible, boolHint(config.Visible))
	glfw.WindowHint(glfw.Resizable, glfw.False)
	glfw.WindowHint(glfw.ClientAPI, glfw.OpenGLESAPI)
	glfw.WindowHint(glfw.ContextVersionMajor, 3)
	glfw.WindowHint(glfw.ContextVersionMinor, 0)
	if config.EGL {
		glfw.WindowHint(glfw.ContextCreationAPI, glfw.EGLContextAPI)
	}

	w, err := glfw.CreateWindow(config.Width, config.Height, config.Title, nil, nil)
	if err != nil {
		glfw.Terminate()
		return nil, fmt.Errorf("failed to create window: %w", err)
	}
	w.MakeContextCurrent()
	w.SetFramebufferSizeCallback(framebufferSizeCallback)

	core.LogDebug("window %q %dx%d opened", config.Title, config.Width, config.Height)
	return &Window{Window: w}, nil
}

// Lookup implements gles.LookupFunc. The window's context must be current.
func (w *Window) Lookup(name string) unsafe.Pointer {
	return glfw.GetProcAddress(name)
}

func (w *Window) Close() {
	w.Destroy()
	glfw.Terminate()
}

func boolHint(b bool) int {
	if b {
		return glfw.True
	}
	return glfw.False
}

func framebufferSizeCallback(w *glfw.Window, width, height int) {
	core.LogDebug("framebuffer resized to %dx%d", width, height)
}
