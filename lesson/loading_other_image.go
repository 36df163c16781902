package lesson

import (
	"fmt"
	"github.com/ignite-laboratories/lazyfoo"
	"github.com/ignite-laboratories/lazyfoo/sdl2"
)

const loadedImage = "imgs/loading_other_image/loaded.png"

func init() {
	lazyfoo.Register(lazyfoo.Lesson{
		Number:  6,
		Name:    "loading_other_image",
		Summary: "load a PNG through SDL_image",
		Run:     LoadingOtherImage,
	})
}

// LoadingOtherImage shows a PNG decoded by SDL_image, stretched over the window.
func LoadingOtherImage() {
	s, ok := open(sdl2.Options{Image: true})
	if !ok {
		return
	}
	defer s.Close()

	stretched, err := loadStretched(s, loadedImage, sdl2.LoadImage)
	if err != nil {
		fail(fmt.Errorf("%w\nFailed to load PNG image!", err), failedMedia)
		return
	}
	defer stretched.Free()

	s.Loop(nil, func() error {
		return s.Present(stretched, true)
	})
}
