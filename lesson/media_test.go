package lesson

import (
	"bytes"
	"github.com/ignite-laboratories/lazyfoo"
	"github.com/ignite-laboratories/lazyfoo/assets"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/veandco/go-sdl2/sdl"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// withAssets generates the asset tree into a temporary directory and points the lessons at it.
func withAssets(t *testing.T) string {
	t.Helper()
	root := t.TempDir()
	require.NoError(t, assets.Generate(root))

	old := lazyfoo.AssetRoot
	lazyfoo.AssetRoot = root
	t.Cleanup(func() { lazyfoo.AssetRoot = old })
	return root
}

// captureConsole collects everything the lessons report.
func captureConsole(t *testing.T) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	old := lazyfoo.Console
	lazyfoo.Console = &buf
	t.Cleanup(func() { lazyfoo.Console = old })
	return &buf
}

func TestLoadKeyPressImages(t *testing.T) {
	withAssets(t)

	images, err := loadKeyPressImages()
	require.NoError(t, err)
	defer images.Close()

	assert.Equal(t, 4, images.Len())
	assert.NotNil(t, images.Default())
	for _, binding := range keyPressImages {
		assert.True(t, images.Has(binding.key), binding.name)
		assert.NotEqual(t, images.Default(), images.Get(binding.key), binding.name)
	}
	assert.Equal(t, images.Default(), images.Get(sdl.K_SPACE))
}

func TestLoadKeyPressImagesMissingArrow(t *testing.T) {
	root := withAssets(t)
	up := filepath.Join(root, "imgs", "key_presses", "up.bmp")
	require.NoError(t, os.Remove(up))

	images, err := loadKeyPressImages()
	require.Error(t, err)
	assert.Nil(t, images)

	msg := err.Error()
	assert.True(t, strings.HasPrefix(msg, "Unable to load image "+up+"! SDL Error: "), msg)
	assert.True(t, strings.HasSuffix(msg, "\nFailed to load up image!"), msg)
}

func TestLoadKeyPressImagesMissingDefault(t *testing.T) {
	root := withAssets(t)
	require.NoError(t, os.Remove(filepath.Join(root, "imgs", "key_presses", "press.bmp")))

	_, err := loadKeyPressImages()
	require.Error(t, err)
	assert.True(t, strings.HasSuffix(err.Error(), "\nFailed to load default image!"), err.Error())
}

func TestLoadGamepadImages(t *testing.T) {
	withAssets(t)

	images, err := loadGamepadImages()
	require.NoError(t, err)
	defer images.Close()

	assert.Equal(t, 4, images.Len())
	for _, binding := range gamepadImages {
		assert.NotEqual(t, images.Default(), images.Get(binding.button), binding.name)
	}
	assert.Equal(t, images.Default(), images.Get(sdl.CONTROLLER_BUTTON_START))
}

func TestLoadGamepadImagesMissingButton(t *testing.T) {
	root := withAssets(t)
	b := filepath.Join(root, "imgs", "gamepads_and_joysticks", "B.bmp")
	require.NoError(t, os.Remove(b))

	_, err := loadGamepadImages()
	require.Error(t, err)

	msg := err.Error()
	assert.True(t, strings.HasPrefix(msg, "Unable to load image "+b+"! SDL Error: "), msg)
	assert.True(t, strings.HasSuffix(msg, "\nFailed to load B image!"), msg)
}
