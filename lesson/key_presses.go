package lesson

import (
	"fmt"
	"github.com/ignite-laboratories/lazyfoo"
	"github.com/ignite-laboratories/lazyfoo/media"
	"github.com/ignite-laboratories/lazyfoo/sdl2"
	"github.com/veandco/go-sdl2/sdl"
)

const keyPressDefaultImage = "imgs/key_presses/press.bmp"

// keyPressImages binds each arrow key to its bitmap. Every other key shows the default image.
var keyPressImages = []struct {
	key  sdl.Keycode
	name string
	path string
}{
	{sdl.K_UP, "up", "imgs/key_presses/up.bmp"},
	{sdl.K_DOWN, "down", "imgs/key_presses/down.bmp"},
	{sdl.K_LEFT, "left", "imgs/key_presses/left.bmp"},
	{sdl.K_RIGHT, "right", "imgs/key_presses/right.bmp"},
}

func init() {
	lazyfoo.Register(lazyfoo.Lesson{
		Number:  4,
		Name:    "key_presses",
		Summary: "switch images with the arrow keys",
		Run:     KeyPresses,
	})
}

// KeyPresses shows a different image for each arrow key, and the default image for any other key.
func KeyPresses() {
	s, ok := open(sdl2.Options{})
	if !ok {
		return
	}
	defer s.Close()

	images, err := loadKeyPressImages()
	if err != nil {
		fail(err, failedMedia)
		return
	}
	defer images.Close()

	current := images.Default()
	s.Loop(func(event sdl.Event) {
		current = keyPressed(images, current, event)
	}, func() error {
		return s.Present(current, false)
	})
}

func loadKeyPressImages() (*media.Table[sdl.Keycode, *sdl.Surface], error) {
	press, err := sdl2.LoadBMP(lazyfoo.Asset(keyPressDefaultImage))
	if err != nil {
		return nil, fmt.Errorf("%w\nFailed to load default image!", err)
	}

	images := media.NewTable[sdl.Keycode](press, sdl2.FreeSurface)
	for _, binding := range keyPressImages {
		surface, err := sdl2.LoadBMP(lazyfoo.Asset(binding.path))
		if err != nil {
			images.Close()
			return nil, fmt.Errorf("%w\nFailed to load %s image!", err, binding.name)
		}
		images.Put(binding.key, surface)
	}
	return images, nil
}

// keyPressed selects the image for a key-down event. Other events keep the current image.
func keyPressed[V comparable](images *media.Table[sdl.Keycode, V], current V, event sdl.Event) V {
	if key, ok := sdl2.KeyDown(event); ok {
		return images.Get(key)
	}
	return current
}
