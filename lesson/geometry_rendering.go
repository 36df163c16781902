package lesson

import (
	"github.com/ignite-laboratories/lazyfoo"
	"github.com/ignite-laboratories/lazyfoo/layout"
	"github.com/ignite-laboratories/lazyfoo/sdl2"
	"github.com/veandco/go-sdl2/sdl"
)

func init() {
	lazyfoo.Register(lazyfoo.Lesson{
		Number:  8,
		Name:    "geometry_rendering",
		Summary: "draw rectangles, lines and points with the renderer",
		Run:     GeometryRendering,
	})
}

// GeometryRendering draws a filled quad, an outlined quad, a line and a dotted line every frame.
func GeometryRendering() {
	s, ok := open(sdl2.Options{Renderer: true, LinearFiltering: true})
	if !ok {
		return
	}
	defer s.Close()

	scene := layout.Figure(lazyfoo.ScreenSize)
	s.Loop(nil, func() error {
		return drawScene(s.Renderer, scene)
	})
}

func drawScene(r *sdl.Renderer, scene layout.Scene) error {
	if err := r.SetDrawColor(0xFF, 0xFF, 0xFF, 0xFF); err != nil {
		return err
	}
	if err := r.Clear(); err != nil {
		return err
	}

	fill := rect(scene.Fill)
	if err := r.SetDrawColor(0xFF, 0x00, 0x00, 0xFF); err != nil {
		return err
	}
	if err := r.FillRect(&fill); err != nil {
		return err
	}

	outline := rect(scene.Outline)
	if err := r.SetDrawColor(0x00, 0xFF, 0x00, 0xFF); err != nil {
		return err
	}
	if err := r.DrawRect(&outline); err != nil {
		return err
	}

	if err := r.SetDrawColor(0x00, 0x00, 0xFF, 0xFF); err != nil {
		return err
	}
	line := scene.Divider
	if err := r.DrawLine(int32(line.From.X), int32(line.From.Y), int32(line.To.X), int32(line.To.Y)); err != nil {
		return err
	}

	if err := r.SetDrawColor(0xFF, 0xFF, 0x00, 0xFF); err != nil {
		return err
	}
	for _, p := range scene.Dots {
		if err := r.DrawPoint(int32(p.X), int32(p.Y)); err != nil {
			return err
		}
	}

	r.Present()
	return nil
}

func rect(r layout.Rect) sdl.Rect {
	return sdl.Rect{X: int32(r.X), Y: int32(r.Y), W: int32(r.W), H: int32(r.H)}
}
