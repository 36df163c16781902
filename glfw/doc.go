// Package glfw opens an OpenGL window through GLFW for the lessons that render with GL directly.
package glfw

import (
	"github.com/ignite-laboratories/core"
	"github.com/ignite-laboratories/lazyfoo"
)

var ModuleName = "glfw"

func init() {
	lazyfoo.Report()
	core.SubmoduleReport(lazyfoo.ModuleName, ModuleName)
}

func Report() {}
