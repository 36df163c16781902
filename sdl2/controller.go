package sdl2

import (
	"errors"
	"fmt"
	"github.com/ignite-laboratories/core"
	"github.com/veandco/go-sdl2/sdl"
)

// ErrNoJoysticks is returned when no joystick is attached.
var ErrNoJoysticks = errors.New("Warning: No joysticks connected!")

var errUnknown = errors.New("unknown error")

// sdlError returns SDL's last error, or a fixed one when SDL left its error string empty.
func sdlError() error {
	if err := sdl.GetError(); err != nil {
		return err
	}
	return errUnknown
}

// OpenController loads the controller mappings bundled at mappingPath and opens the first attached
// controller.
func OpenController(mappingPath string) (*sdl.GameController, error) {
	rw := sdl.RWFromFile(mappingPath, "rb")
	if rw == nil {
		return nil, fmt.Errorf("Unable to open controller mappings %s! SDL Error: %w", mappingPath, sdlError())
	}

	added := sdl.GameControllerAddMappingsFromRW(rw, true)
	if added < 0 {
		return nil, fmt.Errorf("Unable to load controller mappings %s! SDL Error: %w", mappingPath, sdlError())
	}
	core.Verbosef(ModuleName, "loaded %d controller mappings\n", added)

	if sdl.NumJoysticks() < 1 {
		return nil, ErrNoJoysticks
	}

	controller := sdl.GameControllerOpen(0)
	if controller == nil {
		return nil, fmt.Errorf("Unable to open game controller! SDL Error: %w", sdlError())
	}
	core.Verbosef(ModuleName, "opened controller %q\n", controller.Name())
	return controller, nil
}
