// Package media holds the fixed input-symbol to image tables the lessons load at startup.
package media

import (
	"github.com/ignite-laboratories/core"
	"github.com/ignite-laboratories/lazyfoo"
)

var ModuleName = "media"

func init() {
	lazyfoo.Report()
	core.SubmoduleReport(lazyfoo.ModuleName, ModuleName)
}

func Report() {}
