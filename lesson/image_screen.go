package lesson

import (
	"github.com/ignite-laboratories/lazyfoo"
	"github.com/ignite-laboratories/lazyfoo/sdl2"
)

const helloWorldImage = "imgs/image_screen/hello_world.bmp"

func init() {
	lazyfoo.Register(lazyfoo.Lesson{
		Number:  2,
		Name:    "image_screen",
		Summary: "blit a bitmap onto the window surface",
		Run:     ImageScreen,
	})
}

// ImageScreen shows a single bitmap until the window is closed.
func ImageScreen() {
	s, ok := open(sdl2.Options{})
	if !ok {
		return
	}
	defer s.Close()

	hello, err := sdl2.LoadBMP(lazyfoo.Asset(helloWorldImage))
	if err != nil {
		fail(err, failedMedia)
		return
	}
	defer hello.Free()

	if err := s.Present(hello, false); err != nil {
		fail(err, "")
		return
	}

	s.Loop(nil, nil)
}
