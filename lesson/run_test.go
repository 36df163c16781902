package lesson

import (
	"github.com/ignite-laboratories/core/std"
	"github.com/ignite-laboratories/lazyfoo/layout"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/veandco/go-sdl2/sdl"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// runUntilQuit queues events followed by a quit on SDL's dummy video driver, then runs the lesson.
// SDL stays initialized across the lesson's own Init, so the queue survives until it polls.
func runUntilQuit(t *testing.T, run func(), events ...sdl.Event) {
	t.Helper()
	t.Setenv("SDL_VIDEODRIVER", "dummy")

	require.NoError(t, sdl.Init(sdl.INIT_VIDEO))
	defer sdl.Quit()

	for _, event := range append(events, &sdl.QuitEvent{Type: sdl.QUIT}) {
		_, err := sdl.PushEvent(event)
		require.NoError(t, err)
	}

	run()
}

func TestLessonsRunUntilQuit(t *testing.T) {
	tests := []struct {
		name   string
		run    func()
		events []sdl.Event
	}{
		{"create_window", CreateWindow, nil},
		{"image_screen", ImageScreen, nil},
		{"event_driven", EventDriven, []sdl.Event{keyDown(sdl.K_a)}},
		{"key_presses", KeyPresses, []sdl.Event{keyDown(sdl.K_UP), keyDown(sdl.K_SPACE)}},
		{"optimized_surface", OptimizedSurface, []sdl.Event{keyDown(sdl.K_a)}},
		{"loading_other_image", LoadingOtherImage, []sdl.Event{keyDown(sdl.K_a)}},
		{"texture_loading", TextureLoading, []sdl.Event{keyDown(sdl.K_a)}},
		{"geometry_rendering", GeometryRendering, []sdl.Event{keyDown(sdl.K_a)}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			withAssets(t)
			console := captureConsole(t)

			runUntilQuit(t, tt.run, tt.events...)
			assert.Empty(t, console.String())
		})
	}
}

func TestLessonReportsMissingMedia(t *testing.T) {
	root := withAssets(t)
	console := captureConsole(t)
	hello := filepath.Join(root, "imgs", "image_screen", "hello_world.bmp")
	require.NoError(t, os.Remove(hello))

	runUntilQuit(t, ImageScreen)

	out := console.String()
	assert.Contains(t, out, "Unable to load image "+hello+"! SDL Error: ")
	assert.True(t, strings.HasSuffix(out, "\n"+failedMedia+"\n"), out)
}

func TestGamepadLessonWithoutJoysticks(t *testing.T) {
	withAssets(t)
	console := captureConsole(t)

	require.NoError(t, sdl.InitSubSystem(sdl.INIT_JOYSTICK))
	joysticks := sdl.NumJoysticks()
	sdl.QuitSubSystem(sdl.INIT_JOYSTICK)
	if joysticks > 0 {
		t.Skip("a joystick is attached")
	}

	runUntilQuit(t, GamepadsAndJoysticks)
	assert.Equal(t, "Warning: No joysticks connected!\n", console.String())
}

func TestDrawScene(t *testing.T) {
	surface, err := sdl.CreateRGBSurfaceWithFormat(0, 640, 480, 32, sdl.PIXELFORMAT_RGBA32)
	require.NoError(t, err)
	defer surface.Free()

	renderer, err := sdl.CreateSoftwareRenderer(surface)
	require.NoError(t, err)
	defer renderer.Destroy()

	require.NoError(t, drawScene(renderer, layout.Figure(std.XY[int]{X: 640, Y: 480})))

	tests := []struct {
		name    string
		x, y    int
		r, g, b uint32
	}{
		{"background", 10, 10, 0xFF, 0xFF, 0xFF},
		{"filled quad", 200, 200, 0xFF, 0x00, 0x00},
		{"outline", 106, 200, 0x00, 0xFF, 0x00},
		{"divider", 50, 240, 0x00, 0x00, 0xFF},
		{"dot", 320, 4, 0xFF, 0xFF, 0x00},
		{"between dots", 320, 2, 0xFF, 0xFF, 0xFF},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, g, b, _ := surface.At(tt.x, tt.y).RGBA()
			assert.Equal(t, [3]uint32{tt.r, tt.g, tt.b}, [3]uint32{r >> 8, g >> 8, b >> 8})
		})
	}
}
