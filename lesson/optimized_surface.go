package lesson

import (
	"fmt"
	"github.com/ignite-laboratories/lazyfoo"
	"github.com/ignite-laboratories/lazyfoo/sdl2"
	"github.com/veandco/go-sdl2/sdl"
)

const stretchImage = "imgs/optimized_surface/stretch.bmp"

func init() {
	lazyfoo.Register(lazyfoo.Lesson{
		Number:  5,
		Name:    "optimized_surface",
		Summary: "convert a bitmap to the screen format and stretch it over the window",
		Run:     OptimizedSurface,
	})
}

// OptimizedSurface converts a bitmap to the window's pixel format once and blits it scaled every frame.
func OptimizedSurface() {
	s, ok := open(sdl2.Options{})
	if !ok {
		return
	}
	defer s.Close()

	stretched, err := loadStretched(s, stretchImage, sdl2.LoadBMP)
	if err != nil {
		fail(fmt.Errorf("%w\nFailed to load stretching image!", err), failedMedia)
		return
	}
	defer stretched.Free()

	s.Loop(nil, func() error {
		return s.Present(stretched, true)
	})
}

// loadStretched decodes an image with load and converts it to the format of the window surface.
func loadStretched(s *sdl2.Session, path string, load func(string) (*sdl.Surface, error)) (*sdl.Surface, error) {
	screen, err := s.Surface()
	if err != nil {
		return nil, err
	}

	full := lazyfoo.Asset(path)
	loaded, err := load(full)
	if err != nil {
		return nil, err
	}
	return sdl2.Optimize(full, loaded, screen.Format)
}
