package lesson

import (
	"fmt"
	"github.com/ignite-laboratories/lazyfoo"
	"github.com/ignite-laboratories/lazyfoo/media"
	"github.com/ignite-laboratories/lazyfoo/sdl2"
	"github.com/veandco/go-sdl2/sdl"
)

const (
	gamepadDefaultImage = "imgs/gamepads_and_joysticks/press.bmp"
	controllerMapping   = "controller_mapping.txt"
)

// gamepadImages binds each face button to its bitmap. Every other button shows the default image.
var gamepadImages = []struct {
	button sdl.GameControllerButton
	name   string
	path   string
}{
	{sdl.CONTROLLER_BUTTON_A, "A", "imgs/gamepads_and_joysticks/A.bmp"},
	{sdl.CONTROLLER_BUTTON_B, "B", "imgs/gamepads_and_joysticks/B.bmp"},
	{sdl.CONTROLLER_BUTTON_X, "X", "imgs/gamepads_and_joysticks/X.bmp"},
	{sdl.CONTROLLER_BUTTON_Y, "Y", "imgs/gamepads_and_joysticks/Y.bmp"},
}

func init() {
	lazyfoo.Register(lazyfoo.Lesson{
		Number:  9,
		Name:    "gamepads_and_joysticks",
		Summary: "switch images with the controller face buttons",
		Run:     GamepadsAndJoysticks,
	})
}

// GamepadsAndJoysticks shows the image of the last face button pressed on the first attached controller.
// Any other button, or any key, brings back the default image.
func GamepadsAndJoysticks() {
	s, ok := open(sdl2.Options{Controllers: true, LinearFiltering: true})
	if !ok {
		return
	}
	defer s.Close()

	images, err := loadGamepadImages()
	if err != nil {
		fail(err, failedMedia)
		return
	}
	defer images.Close()

	controller, err := sdl2.OpenController(lazyfoo.Asset(controllerMapping))
	if err != nil {
		fail(err, "")
		return
	}
	defer controller.Close()

	current := images.Default()
	s.Loop(func(event sdl.Event) {
		current = buttonPressed(images, current, event)
	}, func() error {
		return s.Present(current, false)
	})
}

func loadGamepadImages() (*media.Table[sdl.GameControllerButton, *sdl.Surface], error) {
	press, err := sdl2.LoadBMP(lazyfoo.Asset(gamepadDefaultImage))
	if err != nil {
		return nil, fmt.Errorf("%w\nFailed to load default image!", err)
	}

	images := media.NewTable[sdl.GameControllerButton](press, sdl2.FreeSurface)
	for _, binding := range gamepadImages {
		surface, err := sdl2.LoadBMP(lazyfoo.Asset(binding.path))
		if err != nil {
			images.Close()
			return nil, fmt.Errorf("%w\nFailed to load %s image!", err, binding.name)
		}
		images.Put(binding.button, surface)
	}
	return images, nil
}

// buttonPressed selects the image for a controller button-down event. A key-down resets to the default
// image and other events keep the current one.
func buttonPressed[V comparable](images *media.Table[sdl.GameControllerButton, V], current V, event sdl.Event) V {
	if button, ok := sdl2.ButtonDown(event); ok {
		return images.Get(button)
	}
	if _, ok := sdl2.KeyDown(event); ok {
		return images.Default()
	}
	return current
}
