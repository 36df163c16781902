package glfw

import (
	"fmt"
	"github.com/go-gl/gl/v3.3-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/ignite-laboratories/core"
	"github.com/ignite-laboratories/core/std"
	"time"
)

func init() {
	GLVersion.Major = 3
	GLVersion.Minor = 3
	GLVersion.Core = true
}

var GLVersion struct {
	Major int
	Minor int
	Core  bool
}

// Window is a GLFW window with a current OpenGL context.
type Window struct {
	Handle *glfw.Window

	// OnKey receives every key press.
	OnKey func(key glfw.Key)

	closed bool
}

// Open initializes GLFW and creates a window. It must be called from the locked main thread.
func Open(title string, size std.XY[int]) (*Window, error) {
	if err := glfw.Init(); err != nil {
		return nil, fmt.Errorf("GLFW could not initialize! GLFW Error: %w", err)
	}
	core.Verbosef(ModuleName, "GLFW initialized\n")

	glfw.WindowHint(glfw.ContextVersionMajor, GLVersion.Major)
	glfw.WindowHint(glfw.ContextVersionMinor, GLVersion.Minor)
	if GLVersion.Core {
		glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
		glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)
	} else {
		glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLAnyProfile)
	}
	glfw.WindowHint(glfw.Resizable, glfw.False)

	handle, err := glfw.CreateWindow(size.X, size.Y, title, nil, nil)
	if err != nil {
		glfw.Terminate()
		return nil, fmt.Errorf("Window could not be created! GLFW Error: %w", err)
	}

	w := &Window{Handle: handle}
	handle.SetKeyCallback(w.key)
	handle.MakeContextCurrent()
	glfw.SwapInterval(1)

	if err := gl.Init(); err != nil {
		w.Close()
		return nil, fmt.Errorf("Unable to initialize OpenGL! %w", err)
	}

	core.Verbosef(ModuleName, "window initialized with %s\n", gl.GoStr(gl.GetString(gl.VERSION)))
	return w, nil
}

func (w *Window) key(_ *glfw.Window, key glfw.Key, _ int, action glfw.Action, _ glfw.ModifierKey) {
	if action == glfw.Press && w.OnKey != nil {
		w.OnKey(key)
	}
}

// Loop draws and swaps a frame per iteration until the window is asked to close.
func (w *Window) Loop(draw func()) {
	for !w.Handle.ShouldClose() {
		glfw.PollEvents()

		if draw != nil {
			draw()
		}
		w.Handle.SwapBuffers()

		// VSync normally paces this; without it there's no reason to exceed 1kHz
		time.Sleep(time.Millisecond)
	}
	core.Verbosef(ModuleName, "window loop stopped\n")
}

// Close destroys the window and terminates GLFW.
func (w *Window) Close() {
	if w.closed {
		return
	}
	w.closed = true

	w.Handle.Destroy()
	glfw.Terminate()
	core.Verbosef(ModuleName, "window cleaned up\n")
}
