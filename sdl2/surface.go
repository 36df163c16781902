package sdl2

import (
	"fmt"
	"github.com/ignite-laboratories/lazyfoo"
	"github.com/veandco/go-sdl2/img"
	"github.com/veandco/go-sdl2/sdl"
)

// LoadBMP decodes a bitmap into a surface.
func LoadBMP(path string) (*sdl.Surface, error) {
	surface, err := sdl.LoadBMP(path)
	if err != nil {
		return nil, fmt.Errorf("Unable to load image %s! SDL Error: %w", path, err)
	}
	return surface, nil
}

// LoadImage decodes any format SDL_image was initialized for.
func LoadImage(path string) (*sdl.Surface, error) {
	surface, err := img.Load(path)
	if err != nil {
		return nil, fmt.Errorf("Unable to load image %s! SDL Error: %w", path, err)
	}
	return surface, nil
}

// Optimize converts a loaded surface to the given pixel format so blitting it needs no conversion.
// The loaded surface is freed either way.
func Optimize(path string, loaded *sdl.Surface, format *sdl.PixelFormat) (*sdl.Surface, error) {
	defer loaded.Free()

	optimized, err := loaded.Convert(format, 0)
	if err != nil {
		return nil, fmt.Errorf("Unable to optimize image %s! SDL Error: %w", path, err)
	}
	return optimized, nil
}

// LoadTexture decodes an image and uploads it to the renderer.
func LoadTexture(renderer *sdl.Renderer, path string) (*sdl.Texture, error) {
	loaded, err := LoadImage(path)
	if err != nil {
		return nil, err
	}
	defer loaded.Free()

	texture, err := renderer.CreateTextureFromSurface(loaded)
	if err != nil {
		return nil, fmt.Errorf("Unable to create texture from %s! SDL Error: %w", path, err)
	}
	return texture, nil
}

// Surface returns the window's current backing surface.
func (s *Session) Surface() (*sdl.Surface, error) {
	surface, err := s.Window.GetSurface()
	if err != nil {
		return nil, fmt.Errorf("Unable to get window surface! SDL Error: %w", err)
	}
	return surface, nil
}

// Fill paints the whole window surface with one color and shows it.
func (s *Session) Fill(r, g, b uint8) error {
	screen, err := s.Surface()
	if err != nil {
		return err
	}
	if err := screen.FillRect(nil, sdl.MapRGB(screen.Format, r, g, b)); err != nil {
		return fmt.Errorf("Unable to fill window surface! SDL Error: %w", err)
	}
	return s.update()
}

// Present blits an image onto the window surface and shows it. When stretch is set the image is scaled to
// cover the whole window.
func (s *Session) Present(image *sdl.Surface, stretch bool) error {
	screen, err := s.Surface()
	if err != nil {
		return err
	}

	if stretch {
		target := sdl.Rect{
			W: int32(lazyfoo.ScreenSize.X),
			H: int32(lazyfoo.ScreenSize.Y),
		}
		err = image.BlitScaled(nil, screen, &target)
	} else {
		err = image.Blit(nil, screen, nil)
	}
	if err != nil {
		return fmt.Errorf("Unable to blit image! SDL Error: %w", err)
	}
	return s.update()
}

func (s *Session) update() error {
	if err := s.Window.UpdateSurface(); err != nil {
		return fmt.Errorf("Unable to update window surface! SDL Error: %w", err)
	}
	return nil
}

// FreeSurface releases a surface. It is shaped for use as a media table release function.
func FreeSurface(surface *sdl.Surface) {
	if surface != nil {
		surface.Free()
	}
}
