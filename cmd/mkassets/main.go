// Command mkassets writes the images and controller mapping file the lessons load.
//
// Usage:
//
//	mkassets [output dir]
//
// The output directory defaults to the current directory.
package main

import (
	"fmt"
	"github.com/ignite-laboratories/lazyfoo/assets"
	"os"
)

func main() {
	outputPath := "."
	if len(os.Args) == 2 {
		outputPath = os.Args[1]
	} else if len(os.Args) > 2 {
		fmt.Fprintln(os.Stderr, "must give at most one parameter: the output directory")
		os.Exit(2)
	}

	check(assets.Generate(outputPath))
	fmt.Printf("wrote %d images and %s to %s\n", len(assets.Manifest()), assets.MappingPath, outputPath)
}

func check(err error) {
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
