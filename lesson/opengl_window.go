package lesson

import (
	"github.com/ignite-laboratories/lazyfoo"
	"github.com/ignite-laboratories/lazyfoo/sdl2"
	"github.com/veandco/go-sdl2/sdl"
)

func init() {
	lazyfoo.Register(lazyfoo.Lesson{
		Number:  10,
		Name:    "opengl_window",
		Summary: "clear an SDL OpenGL context to the color picked with R, G or B",
		Run:     OpenGLWindow,
	})
}

// OpenGLWindow renders through an OpenGL context created by SDL, clearing to red, green or blue on R, G
// or B and to white on any other key.
func OpenGLWindow() {
	s, ok := open(sdl2.Options{GL: true})
	if !ok {
		return
	}
	defer s.Close()

	if err := s.GLContext(); err != nil {
		fail(err, failedInit)
		return
	}

	colors := clearColors[sdl.Keycode](sdl.K_r, sdl.K_g, sdl.K_b)
	current := colors.Default()

	draw := func() error {
		clearTo(current)
		s.Swap()
		return nil
	}
	if err := draw(); err != nil {
		fail(err, "")
		return
	}

	s.Loop(func(event sdl.Event) {
		current = keyPressed(colors, current, event)
	}, draw)
}
