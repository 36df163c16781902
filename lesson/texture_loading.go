package lesson

import (
	"fmt"
	"github.com/ignite-laboratories/lazyfoo"
	"github.com/ignite-laboratories/lazyfoo/sdl2"
)

const textureImage = "imgs/texture_loading/texture.png"

func init() {
	lazyfoo.Register(lazyfoo.Lesson{
		Number:  7,
		Name:    "texture_loading",
		Summary: "render a PNG texture with the hardware renderer",
		Run:     TextureLoading,
	})
}

// TextureLoading copies a texture over the whole renderer every frame.
func TextureLoading() {
	s, ok := open(sdl2.Options{Renderer: true, Image: true, LinearFiltering: true})
	if !ok {
		return
	}
	defer s.Close()

	if err := s.Renderer.SetDrawColor(0xFF, 0xFF, 0xFF, 0xFF); err != nil {
		fail(err, failedInit)
		return
	}

	texture, err := sdl2.LoadTexture(s.Renderer, lazyfoo.Asset(textureImage))
	if err != nil {
		fail(fmt.Errorf("%w\nFailed to load PNG image!", err), failedMedia)
		return
	}
	defer texture.Destroy()

	s.Loop(nil, func() error {
		if err := s.Renderer.Clear(); err != nil {
			return err
		}
		if err := s.Renderer.Copy(texture, nil, nil); err != nil {
			return err
		}
		s.Renderer.Present()
		return nil
	})
}
