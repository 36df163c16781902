package assets

import (
	"image/color"
)

// Format is the file encoding of an asset image.
type Format int

const (
	BMP Format = iota
	PNG
)

func (f Format) String() string {
	switch f {
	case BMP:
		return "bmp"
	case PNG:
		return "png"
	default:
		return "unknown"
	}
}

// Spec describes one generated image.
type Spec struct {
	// Path is relative to the asset root and always uses forward slashes.
	Path       string
	Label      string
	Background color.RGBA
	Format     Format
}

// Width and Height of every generated image.
const (
	Width  = 640
	Height = 480
)

// MappingPath is where the controller mapping file is written, relative to the asset root.
const MappingPath = "controller_mapping.txt"

var (
	slate   = color.RGBA{R: 0x2e, G: 0x34, B: 0x40, A: 0xff}
	teal    = color.RGBA{R: 0x1f, G: 0x7a, B: 0x8c, A: 0xff}
	amber   = color.RGBA{R: 0xc9, G: 0x82, B: 0x1b, A: 0xff}
	plum    = color.RGBA{R: 0x6d, G: 0x3b, B: 0x7a, A: 0xff}
	moss    = color.RGBA{R: 0x4c, G: 0x7a, B: 0x34, A: 0xff}
	crimson = color.RGBA{R: 0xa3, G: 0x2a, B: 0x2a, A: 0xff}
	navy    = color.RGBA{R: 0x1d, G: 0x35, B: 0x7a, A: 0xff}
)

// Manifest lists every image the lessons load.
func Manifest() []Spec {
	return []Spec{
		{"imgs/image_screen/hello_world.bmp", "Hello World!", slate, BMP},
		{"imgs/event_driven/x.bmp", "Close the window", crimson, BMP},

		{"imgs/key_presses/press.bmp", "Press an arrow key", slate, BMP},
		{"imgs/key_presses/up.bmp", "UP", teal, BMP},
		{"imgs/key_presses/down.bmp", "DOWN", amber, BMP},
		{"imgs/key_presses/left.bmp", "LEFT", plum, BMP},
		{"imgs/key_presses/right.bmp", "RIGHT", moss, BMP},

		{"imgs/optimized_surface/stretch.bmp", "Stretched", navy, BMP},
		{"imgs/loading_other_image/loaded.png", "Loaded from PNG", teal, PNG},
		{"imgs/texture_loading/texture.png", "Texture", amber, PNG},

		{"imgs/gamepads_and_joysticks/press.bmp", "Press A, B, X or Y", slate, BMP},
		{"imgs/gamepads_and_joysticks/A.bmp", "A", moss, BMP},
		{"imgs/gamepads_and_joysticks/B.bmp", "B", crimson, BMP},
		{"imgs/gamepads_and_joysticks/X.bmp", "X", navy, BMP},
		{"imgs/gamepads_and_joysticks/Y.bmp", "Y", amber, BMP},
	}
}

// Mappings is the SDL game controller database bundled with the gamepad lesson.
const Mappings = `# SDL_GameControllerDB entries for common controllers
030000005e0400008e02000014010000,Xbox 360 Controller,a:b0,b:b1,back:b6,dpdown:h0.4,dpleft:h0.8,dpright:h0.2,dpup:h0.1,guide:b8,leftshoulder:b4,leftstick:b9,lefttrigger:a2,leftx:a0,lefty:a1,rightshoulder:b5,rightstick:b10,righttrigger:a5,rightx:a3,righty:a4,start:b7,x:b2,y:b3,platform:Linux,
030000005e040000ea02000001030000,Xbox One Wireless Controller,a:b0,b:b1,back:b6,dpdown:h0.4,dpleft:h0.8,dpright:h0.2,dpup:h0.1,guide:b8,leftshoulder:b4,leftstick:b9,lefttrigger:a2,leftx:a0,lefty:a1,rightshoulder:b5,rightstick:b10,righttrigger:a5,rightx:a3,righty:a4,start:b7,x:b2,y:b3,platform:Linux,
030000004c050000cc09000011010000,PS4 Controller,a:b0,b:b1,back:b8,dpdown:h0.4,dpleft:h0.8,dpright:h0.2,dpup:h0.1,guide:b10,leftshoulder:b4,leftstick:b11,lefttrigger:a2,leftx:a0,lefty:a1,rightshoulder:b5,rightstick:b12,righttrigger:a5,rightx:a3,righty:a4,start:b9,x:b3,y:b2,platform:Linux,
030000005e0400008e02000000000000,Xbox 360 Controller,a:b0,b:b1,back:b6,dpdown:h0.4,dpleft:h0.8,dpright:h0.2,dpup:h0.1,guide:b10,leftshoulder:b4,leftstick:b8,lefttrigger:a2,leftx:a0,lefty:a1,rightshoulder:b5,rightstick:b9,righttrigger:a5,rightx:a3,righty:a4,start:b7,x:b2,y:b3,platform:Mac OS X,
03000000de280000ff11000000000000,Steam Virtual Gamepad,a:b0,b:b1,back:b6,dpdown:h0.4,dpleft:h0.8,dpright:h0.2,dpup:h0.1,leftshoulder:b4,leftstick:b8,lefttrigger:+a2,leftx:a0,lefty:a1,rightshoulder:b5,rightstick:b9,righttrigger:-a2,rightx:a3,righty:a4,start:b7,x:b2,y:b3,platform:Windows,
`
