package sdl2_test

import (
	"github.com/ignite-laboratories/lazyfoo/assets"
	"github.com/ignite-laboratories/lazyfoo/sdl2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/veandco/go-sdl2/sdl"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// open brings up a session on SDL's dummy video driver, which needs no display.
func open(t *testing.T, options sdl2.Options) *sdl2.Session {
	t.Helper()
	t.Setenv("SDL_VIDEODRIVER", "dummy")

	s, err := sdl2.Open(options)
	require.NoError(t, err)
	t.Cleanup(s.Close)
	return s
}

func generated(t *testing.T) string {
	t.Helper()
	root := t.TempDir()
	require.NoError(t, assets.Generate(root))
	return root
}

func TestWindowOpensAndCloses(t *testing.T) {
	s := open(t, sdl2.Options{})
	require.NotNil(t, s.Window)
	assert.Nil(t, s.Renderer)

	w, h := s.Window.GetSize()
	assert.Equal(t, int32(640), w)
	assert.Equal(t, int32(480), h)

	require.NoError(t, s.Fill(0xFF, 0xFF, 0xFF))

	s.Close()
	assert.Nil(t, s.Window)
	assert.NotPanics(t, s.Close)
}

func TestPresentSurface(t *testing.T) {
	root := generated(t)
	s := open(t, sdl2.Options{})

	image, err := sdl2.LoadBMP(filepath.Join(root, "imgs", "image_screen", "hello_world.bmp"))
	require.NoError(t, err)
	defer image.Free()

	assert.NoError(t, s.Present(image, false))
	assert.NoError(t, s.Present(image, true))
}

func TestOptimizeMatchesScreenFormat(t *testing.T) {
	root := generated(t)
	s := open(t, sdl2.Options{})

	screen, err := s.Surface()
	require.NoError(t, err)

	path := filepath.Join(root, "imgs", "optimized_surface", "stretch.bmp")
	loaded, err := sdl2.LoadBMP(path)
	require.NoError(t, err)

	optimized, err := sdl2.Optimize(path, loaded, screen.Format)
	require.NoError(t, err)
	defer optimized.Free()

	assert.Equal(t, screen.Format.Format, optimized.Format.Format)
	assert.Equal(t, int32(640), optimized.W)
	assert.Equal(t, int32(480), optimized.H)
}

func TestRendererFallsBackToSoftware(t *testing.T) {
	// The dummy driver offers no accelerated renderer
	s := open(t, sdl2.Options{Renderer: true})
	require.NotNil(t, s.Renderer)

	info, err := s.Renderer.GetInfo()
	require.NoError(t, err)
	assert.NotZero(t, info.Flags&sdl.RENDERER_SOFTWARE)

	require.NoError(t, s.Renderer.SetDrawColor(0xFF, 0xFF, 0xFF, 0xFF))
	require.NoError(t, s.Renderer.Clear())
	s.Renderer.Present()

	s.Close()
	assert.Nil(t, s.Renderer)
	assert.NotPanics(t, s.Close)
}

func TestLoadTexture(t *testing.T) {
	root := generated(t)
	s := open(t, sdl2.Options{Renderer: true, Image: true})

	texture, err := sdl2.LoadTexture(s.Renderer, filepath.Join(root, "imgs", "texture_loading", "texture.png"))
	require.NoError(t, err)
	defer texture.Destroy()

	_, _, w, h, err := texture.Query()
	require.NoError(t, err)
	assert.Equal(t, int32(640), w)
	assert.Equal(t, int32(480), h)
}

func TestLoadFailures(t *testing.T) {
	_, err := sdl2.LoadBMP("missing.bmp")
	require.Error(t, err)
	assert.True(t, strings.HasPrefix(err.Error(), "Unable to load image missing.bmp! SDL Error: "), err.Error())

	s := open(t, sdl2.Options{Renderer: true, Image: true})

	_, err = sdl2.LoadImage("missing.png")
	require.Error(t, err)
	assert.True(t, strings.HasPrefix(err.Error(), "Unable to load image missing.png! SDL Error: "), err.Error())

	_, err = sdl2.LoadTexture(s.Renderer, "missing.png")
	require.Error(t, err)
	assert.True(t, strings.HasPrefix(err.Error(), "Unable to load image missing.png! SDL Error: "), err.Error())
}

func TestOpenControllerWithoutJoysticks(t *testing.T) {
	root := generated(t)
	open(t, sdl2.Options{Controllers: true})
	if sdl.NumJoysticks() > 0 {
		t.Skip("a joystick is attached")
	}

	_, err := sdl2.OpenController(filepath.Join(root, assets.MappingPath))
	assert.ErrorIs(t, err, sdl2.ErrNoJoysticks)
	assert.Equal(t, "Warning: No joysticks connected!", err.Error())
}

func TestOpenControllerWithoutMappings(t *testing.T) {
	open(t, sdl2.Options{Controllers: true})

	missing := filepath.Join(t.TempDir(), assets.MappingPath)
	_, err := os.Stat(missing)
	require.True(t, os.IsNotExist(err))

	_, err = sdl2.OpenController(missing)
	require.Error(t, err)
	assert.True(t, strings.HasPrefix(err.Error(), "Unable to open controller mappings "+missing+"! SDL Error: "), err.Error())
	assert.NotContains(t, err.Error(), "%!w")
}
