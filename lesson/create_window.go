package lesson

import (
	"github.com/ignite-laboratories/lazyfoo"
	"github.com/ignite-laboratories/lazyfoo/sdl2"
)

func init() {
	lazyfoo.Register(lazyfoo.Lesson{
		Number:  1,
		Name:    "create_window",
		Summary: "open a window and paint its surface white",
		Run:     CreateWindow,
	})
}

// CreateWindow opens a window, fills it white and waits for it to be closed.
func CreateWindow() {
	s, ok := open(sdl2.Options{})
	if !ok {
		return
	}
	defer s.Close()

	if err := s.Fill(0xFF, 0xFF, 0xFF); err != nil {
		fail(err, "")
		return
	}

	s.Loop(nil, nil)
}
