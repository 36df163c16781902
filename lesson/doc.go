// Package lesson contains the runnable SDL2 lessons. Importing it registers every lesson with the
// lazyfoo registry.
//
// Each lesson is a zero-argument function following the same skeleton: open SDL, load a fixed set of
// images, then poll events and render until the window is closed. Any failure is printed to
// lazyfoo.Console and the lesson returns.
package lesson

import (
	"github.com/ignite-laboratories/core"
	"github.com/ignite-laboratories/lazyfoo"
)

var ModuleName = "lesson"

func init() {
	lazyfoo.Report()
	core.SubmoduleReport(lazyfoo.ModuleName, ModuleName)
}

func Report() {}
