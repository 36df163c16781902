package lesson

import (
	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/ignite-laboratories/lazyfoo"
	lazyglfw "github.com/ignite-laboratories/lazyfoo/glfw"
)

func init() {
	lazyfoo.Register(lazyfoo.Lesson{
		Number:  11,
		Name:    "glfw_window",
		Summary: "the OpenGL clear-color lesson driven through GLFW",
		Run:     GLFWWindow,
	})
}

// GLFWWindow opens its window with GLFW instead of SDL and clears to the color picked with R, G or B.
func GLFWWindow() {
	w, err := lazyglfw.Open(lazyfoo.Title, lazyfoo.ScreenSize)
	if err != nil {
		fail(err, failedInit)
		return
	}
	defer w.Close()

	colors := clearColors[glfw.Key](glfw.KeyR, glfw.KeyG, glfw.KeyB)
	current := colors.Default()
	w.OnKey = func(key glfw.Key) {
		current = colors.Get(key)
	}

	w.Loop(func() {
		clearTo(current)
	})
}
