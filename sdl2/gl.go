package sdl2

import (
	"fmt"
	"github.com/go-gl/gl/v3.3-core/gl"
	"github.com/ignite-laboratories/core"
	"github.com/veandco/go-sdl2/sdl"
)

func init() {
	GLVersion.Major = 3
	GLVersion.Minor = 3
	GLVersion.Core = true
}

// GLVersion is the OpenGL context version requested for GL sessions.
var GLVersion struct {
	Major int
	Minor int
	Core  bool
}

func setGLAttributes() {
	sdl.GLSetAttribute(sdl.GL_CONTEXT_MAJOR_VERSION, GLVersion.Major)
	sdl.GLSetAttribute(sdl.GL_CONTEXT_MINOR_VERSION, GLVersion.Minor)
	if GLVersion.Core {
		sdl.GLSetAttribute(sdl.GL_CONTEXT_PROFILE_MASK, sdl.GL_CONTEXT_PROFILE_CORE)
	} else {
		sdl.GLSetAttribute(sdl.GL_CONTEXT_PROFILE_MASK, sdl.GL_CONTEXT_PROFILE_COMPATIBILITY)
	}
	sdl.GLSetAttribute(sdl.GL_DOUBLEBUFFER, 1)
	sdl.GLSetAttribute(sdl.GL_DEPTH_SIZE, 24)
}

// GLContext creates the window's OpenGL context, enables vsync and loads the GL entry points.
// The session must have been opened with Options.GL.
func (s *Session) GLContext() error {
	if !s.options.GL {
		return fmt.Errorf("OpenGL context could not be created! window was opened without OpenGL")
	}

	context, err := s.Window.GLCreateContext()
	if err != nil {
		return fmt.Errorf("OpenGL context could not be created! SDL Error: %w", err)
	}
	s.glContext = context

	if err := sdl.GLSetSwapInterval(1); err != nil {
		core.Verbosef(ModuleName, "unable to set VSync: %v\n", err)
	}

	if err := gl.Init(); err != nil {
		return fmt.Errorf("Unable to initialize OpenGL! %w", err)
	}

	core.Verbosef(ModuleName, "[%d] initialized with %s\n", s.WindowID, gl.GoStr(gl.GetString(gl.VERSION)))
	return nil
}

// Swap shows the frame rendered into the GL context.
func (s *Session) Swap() {
	s.Window.GLSwap()
}
