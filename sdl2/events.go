package sdl2

import (
	"github.com/ignite-laboratories/core"
	"github.com/ignite-laboratories/lazyfoo"
	"github.com/veandco/go-sdl2/sdl"
	"time"
)

// IsQuit reports whether the event asks the application to terminate.
func IsQuit(event sdl.Event) bool {
	_, ok := event.(*sdl.QuitEvent)
	return ok
}

// KeyDown returns the key pressed by a key-down event.
func KeyDown(event sdl.Event) (sdl.Keycode, bool) {
	if e, ok := event.(*sdl.KeyboardEvent); ok && e.Type == sdl.KEYDOWN {
		return e.Keysym.Sym, true
	}
	return 0, false
}

// ButtonDown returns the button pressed by a controller button-down event.
func ButtonDown(event sdl.Event) (sdl.GameControllerButton, bool) {
	if e, ok := event.(*sdl.ControllerButtonEvent); ok && e.Type == sdl.CONTROLLERBUTTONDOWN {
		return sdl.GameControllerButton(e.Button), true
	}
	return 0, false
}

// Loop polls one event per iteration until a quit event arrives. Every other event is passed to handle,
// after which draw renders the frame. A draw failure is reported and ends the loop.
func (s *Session) Loop(handle func(sdl.Event), draw func() error) {
	Cycle(sdl.PollEvent, handle, draw)
	core.Verbosef(ModuleName, "window [%d] loop stopped\n", s.WindowID)
}

// Cycle is the event loop behind Loop, parameterized over the event source.
func Cycle(poll func() sdl.Event, handle func(sdl.Event), draw func() error) {
	for {
		event := poll()
		if event == nil {
			// Nothing to react to, so there's nothing new to draw
			time.Sleep(time.Millisecond)
			continue
		}

		if IsQuit(event) {
			return
		}

		if handle != nil {
			handle(event)
		}

		if draw != nil {
			if err := draw(); err != nil {
				lazyfoo.Println(err)
				return
			}
		}
	}
}
