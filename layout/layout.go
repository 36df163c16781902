package layout

import "github.com/ignite-laboratories/core/std"

type Rect struct {
	X, Y int
	W, H int
}

// Line is a segment between two points.
type Line struct {
	From std.XY[int]
	To   std.XY[int]
}

// DotSpacing is the vertical distance between the points of the dotted line.
const DotSpacing = 4

// Scene is everything the geometry lesson draws in one frame.
type Scene struct {
	Fill    Rect
	Outline Rect
	Divider Line
	Dots    []std.XY[int]
}

// Figure lays out a centered filled quad, a larger outlined quad, a horizontal line across the middle
// and a vertical dotted line down the middle.
func Figure(size std.XY[int]) Scene {
	w, h := size.X, size.Y

	s := Scene{
		Fill:    Rect{X: w / 4, Y: h / 4, W: w / 2, H: h / 2},
		Outline: Rect{X: w / 6, Y: h / 6, W: w * 2 / 3, H: h * 2 / 3},
		Divider: Line{
			From: std.XY[int]{X: 0, Y: h / 2},
			To:   std.XY[int]{X: w, Y: h / 2},
		},
	}

	if h > 0 {
		s.Dots = make([]std.XY[int], 0, (h+DotSpacing-1)/DotSpacing)
	}
	for y := 0; y < h; y += DotSpacing {
		s.Dots = append(s.Dots, std.XY[int]{X: w / 2, Y: y})
	}
	return s
}
