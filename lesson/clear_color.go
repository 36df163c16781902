package lesson

import (
	"github.com/go-gl/gl/v3.3-core/gl"
	"github.com/ignite-laboratories/lazyfoo/media"
	"github.com/kamstrup/intmap"
)

type rgba [4]float32

var (
	white = rgba{1, 1, 1, 1}
	red   = rgba{1, 0, 0, 1}
	green = rgba{0, 1, 0, 1}
	blue  = rgba{0, 0, 1, 1}
)

// clearColors binds three keys to red, green and blue. Every other key clears to white.
func clearColors[K intmap.IntKey](r, g, b K) *media.Table[K, rgba] {
	colors := media.NewTable[K](white, nil)
	colors.Put(r, red)
	colors.Put(g, green)
	colors.Put(b, blue)
	return colors
}

func clearTo(c rgba) {
	gl.ClearColor(c[0], c[1], c[2], c[3])
	gl.Clear(gl.COLOR_BUFFER_BIT)
}
