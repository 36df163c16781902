// Package lazyfoo is a collection of small SDL2 lessons, each one a runnable demonstration of a single
// windowing or rendering concept.
//
// Lessons register themselves with Register and are looked up by name or number through Lookup.
package lazyfoo

import (
	"github.com/ignite-laboratories/core"
)

var ModuleName = "lazyfoo"

func init() {
	core.ModuleReport(ModuleName)
}

func Report() {}
