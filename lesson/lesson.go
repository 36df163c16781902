package lesson

import (
	"github.com/ignite-laboratories/lazyfoo"
	"github.com/ignite-laboratories/lazyfoo/sdl2"
)

// Messages printed after the specific failure, naming the step that failed.
const (
	failedInit  = "Failed to initialize!"
	failedMedia = "Failed to load media!"
)

// fail reports err followed by the summary of the step it interrupted.
func fail(err error, summary string) {
	if err != nil {
		lazyfoo.Println(err)
	}
	if summary != "" {
		lazyfoo.Println(summary)
	}
}

// open brings up SDL for a lesson, reporting any failure.
func open(options sdl2.Options) (*sdl2.Session, bool) {
	s, err := sdl2.Open(options)
	if err != nil {
		fail(err, failedInit)
		return nil, false
	}
	return s, true
}
