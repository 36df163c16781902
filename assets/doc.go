// Package assets renders the images and controller mapping file the lessons load from disk.
//
// Every image is a flat colored card with a label painted in the middle, which is enough to tell the
// lessons' states apart on screen.
package assets

import (
	"github.com/ignite-laboratories/core"
	"github.com/ignite-laboratories/lazyfoo"
)

var ModuleName = "assets"

func init() {
	lazyfoo.Report()
	core.SubmoduleReport(lazyfoo.ModuleName, ModuleName)
}

func Report() {}
