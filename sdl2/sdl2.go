package sdl2

import (
	"fmt"
	"github.com/ignite-laboratories/core"
	"github.com/ignite-laboratories/lazyfoo"
	"github.com/veandco/go-sdl2/img"
	"github.com/veandco/go-sdl2/sdl"
)

// Options selects which optional pieces Open brings up alongside the window.
type Options struct {
	// Renderer creates a hardware renderer for the window, falling back to a software one.
	Renderer bool
	// Image initializes SDL_image with PNG support.
	Image bool
	// Controllers initializes the game controller subsystem.
	Controllers bool
	// GL creates the window with an OpenGL context flag. See GLContext.
	GL bool
	// LinearFiltering asks for linear texture filtering when scaling.
	LinearFiltering bool
}

// Session owns everything a lesson acquired from SDL.
type Session struct {
	Window   *sdl.Window
	Renderer *sdl.Renderer
	WindowID uint32

	options   Options
	glContext sdl.GLContext
	closed    bool
}

// Open initializes SDL and creates the lesson window. Errors carry the message a lesson reports.
func Open(options Options) (*Session, error) {
	flags := uint32(sdl.INIT_VIDEO)
	if options.Controllers {
		flags |= sdl.INIT_JOYSTICK | sdl.INIT_GAMECONTROLLER
	}

	if err := sdl.Init(flags); err != nil {
		return nil, fmt.Errorf("SDL could not initialize! SDL_Error: %w", err)
	}
	core.Verbosef(ModuleName, "SDL initialized\n")

	s := &Session{options: options}

	if options.LinearFiltering {
		if !sdl.SetHint(sdl.HINT_RENDER_SCALE_QUALITY, "1") {
			lazyfoo.Println("Warning: Linear texture filtering not enabled!")
		}
	}

	if options.GL {
		setGLAttributes()
	}

	windowFlags := uint32(sdl.WINDOW_SHOWN)
	if options.GL {
		windowFlags |= sdl.WINDOW_OPENGL
	}

	window, err := sdl.CreateWindow(
		lazyfoo.Title,
		sdl.WINDOWPOS_UNDEFINED, sdl.WINDOWPOS_UNDEFINED,
		int32(lazyfoo.ScreenSize.X), int32(lazyfoo.ScreenSize.Y),
		windowFlags,
	)
	if err != nil {
		s.Close()
		return nil, fmt.Errorf("Window could not be created! SDL_Error: %w", err)
	}
	s.Window = window
	s.WindowID, _ = window.GetID()
	core.Verbosef(ModuleName, "window [%d] created\n", s.WindowID)

	if options.Renderer {
		renderer, err := createRenderer(window)
		if err != nil {
			s.Close()
			return nil, fmt.Errorf("Renderer could not be created! SDL Error: %w", err)
		}
		s.Renderer = renderer
	}

	if options.Image {
		if err := img.Init(img.INIT_PNG); err != nil {
			s.options.Image = false
			s.Close()
			return nil, fmt.Errorf("SDL_image could not initialize! SDL_image Error: %w", err)
		}
	}

	return s, nil
}

// createRenderer prefers an accelerated renderer and settles for software rendering when no GPU
// backend is available.
func createRenderer(window *sdl.Window) (*sdl.Renderer, error) {
	renderer, err := sdl.CreateRenderer(window, -1, sdl.RENDERER_ACCELERATED)
	if err == nil {
		return renderer, nil
	}
	core.Verbosef(ModuleName, "accelerated renderer unavailable (%v), trying software\n", err)

	renderer, softErr := sdl.CreateRenderer(window, -1, sdl.RENDERER_SOFTWARE)
	if softErr != nil {
		return nil, err
	}
	return renderer, nil
}

// Close releases the session's resources in reverse order of acquisition.
func (s *Session) Close() {
	if s.closed {
		return
	}
	s.closed = true

	if s.glContext != nil {
		sdl.GLDeleteContext(s.glContext)
		s.glContext = nil
	}
	if s.options.Image {
		img.Quit()
	}
	if s.Renderer != nil {
		_ = s.Renderer.Destroy()
		s.Renderer = nil
	}
	if s.Window != nil {
		_ = s.Window.Destroy()
		s.Window = nil
		core.Verbosef(ModuleName, "window [%d] cleaned up\n", s.WindowID)
	}
	sdl.Quit()
}
