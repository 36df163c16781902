// Package layout computes the shapes drawn by the geometry lesson from the screen size.
package layout

import (
	"github.com/ignite-laboratories/core"
	"github.com/ignite-laboratories/lazyfoo"
)

var ModuleName = "layout"

func init() {
	lazyfoo.Report()
	core.SubmoduleReport(lazyfoo.ModuleName, ModuleName)
}

func Report() {}
