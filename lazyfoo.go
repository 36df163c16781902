package lazyfoo

import (
	"fmt"
	"github.com/ignite-laboratories/core/std"
	"io"
	"os"
	"path/filepath"
)

// ScreenSize sets the window size every lesson opens with.
//
// If not overridden, it defaults to 640x480px
var ScreenSize = std.XY[int]{
	X: 640,
	Y: 480,
}

// Title is the caption of every lesson window.
var Title = "SDL Tutorial"

// AssetRoot is the directory the imgs/ tree and the controller mapping are resolved against.
var AssetRoot = "."

// Console receives every message a lesson reports.
var Console io.Writer = os.Stdout

// Asset resolves a relative asset path against AssetRoot.
func Asset(parts ...string) string {
	return filepath.Join(append([]string{AssetRoot}, parts...)...)
}

func Println(a ...any) {
	fmt.Fprintln(Console, a...)
}

func Printf(format string, a ...any) {
	fmt.Fprintf(Console, format, a...)
}
