package lesson

import (
	"github.com/ignite-laboratories/lazyfoo"
	"github.com/ignite-laboratories/lazyfoo/sdl2"
)

const exitImage = "imgs/event_driven/x.bmp"

func init() {
	lazyfoo.Register(lazyfoo.Lesson{
		Number:  3,
		Name:    "event_driven",
		Summary: "redraw on every event until the user quits",
		Run:     EventDriven,
	})
}

// EventDriven redraws its image after every polled event and stops when the user closes the window.
func EventDriven() {
	s, ok := open(sdl2.Options{})
	if !ok {
		return
	}
	defer s.Close()

	x, err := sdl2.LoadBMP(lazyfoo.Asset(exitImage))
	if err != nil {
		fail(err, failedMedia)
		return
	}
	defer x.Free()

	draw := func() error {
		return s.Present(x, false)
	}
	if err := draw(); err != nil {
		fail(err, "")
		return
	}

	s.Loop(nil, draw)
}
