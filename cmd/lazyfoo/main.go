package main

import (
	"flag"
	"fmt"
	"github.com/ignite-laboratories/core"
	"github.com/ignite-laboratories/lazyfoo"
	_ "github.com/ignite-laboratories/lazyfoo/lesson"
	"os"
	"runtime"
)

// SDL and GLFW both need their windows and events handled on the main OS thread.
func init() {
	runtime.LockOSThread()
}

func main() {
	assets := flag.String("assets", lazyfoo.AssetRoot, "directory holding imgs/ and controller_mapping.txt")
	list := flag.Bool("list", false, "list the available lessons")
	flag.Usage = usage
	flag.Parse()

	if *list {
		printLessons()
		return
	}

	if flag.NArg() != 1 {
		usage()
		os.Exit(2)
	}

	lesson, ok := lazyfoo.Lookup(flag.Arg(0))
	if !ok {
		core.Fatalf(lazyfoo.ModuleName, "unknown lesson %q, run with -list to see them\n", flag.Arg(0))
	}

	lazyfoo.AssetRoot = *assets
	core.Verbosef(lazyfoo.ModuleName, "running lesson %02d %s\n", lesson.Number, lesson.Name)
	lesson.Run()
}

func usage() {
	fmt.Fprintf(flag.CommandLine.Output(), "usage: lazyfoo [-assets dir] <lesson name or number>\n       lazyfoo -list\n\n")
	flag.PrintDefaults()
}

func printLessons() {
	for _, l := range lazyfoo.Lessons() {
		fmt.Printf("%2d  %-24s %s\n", l.Number, l.Name, l.Summary)
	}
}
