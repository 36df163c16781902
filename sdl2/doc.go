// Package sdl2 opens the SDL2 window, renderer, image and controller subsystems the lessons are built on,
// and runs their polling event loop.
package sdl2

import (
	"github.com/ignite-laboratories/core"
	"github.com/ignite-laboratories/lazyfoo"
)

var ModuleName = "sdl2"

func init() {
	lazyfoo.Report()
	core.SubmoduleReport(lazyfoo.ModuleName, ModuleName)
}

func Report() {}
