package assets

import (
	"fmt"
	"golang.org/x/image/bmp"
	"golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
	"image"
	"image/color"
	"image/png"
	"io"
	"os"
	"path/filepath"
)

// labelScale enlarges basicfont's 7x13 glyphs to something readable at 640x480.
const labelScale = 4

// Generate writes every manifest image and the controller mapping file under root.
func Generate(root string) error {
	for _, spec := range Manifest() {
		if err := write(filepath.Join(root, filepath.FromSlash(spec.Path)), func(w io.Writer) error {
			return Encode(w, spec)
		}); err != nil {
			return err
		}
	}

	return write(filepath.Join(root, MappingPath), func(w io.Writer) error {
		_, err := io.WriteString(w, Mappings)
		return err
	})
}

func write(path string, encode func(io.Writer) error) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("creating directory for %s: %w", path, err)
	}

	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating %s: %w", path, err)
	}

	if err := encode(file); err != nil {
		file.Close()
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return file.Close()
}

// Encode renders the spec's image and encodes it in the spec's format.
func Encode(w io.Writer, spec Spec) error {
	img := Render(spec)
	switch spec.Format {
	case BMP:
		return bmp.Encode(w, img)
	case PNG:
		return png.Encode(w, img)
	default:
		return fmt.Errorf("unsupported format %v", spec.Format)
	}
}

// Render paints the spec's card: the background color with the label centered in white.
func Render(spec Spec) *image.RGBA {
	card := image.NewRGBA(image.Rect(0, 0, Width, Height))
	draw.Draw(card, card.Bounds(), image.NewUniform(spec.Background), image.Point{}, draw.Src)

	if spec.Label == "" {
		return card
	}

	face := basicfont.Face7x13
	advance := font.MeasureString(face, spec.Label).Ceil()
	metrics := face.Metrics()
	height := (metrics.Ascent + metrics.Descent).Ceil()

	label := image.NewRGBA(image.Rect(0, 0, advance, height))
	drawer := &font.Drawer{
		Dst:  label,
		Src:  image.NewUniform(color.White),
		Face: face,
		Dot:  fixed.Point26_6{X: 0, Y: metrics.Ascent},
	}
	drawer.DrawString(spec.Label)

	scaled := image.Rect(0, 0, advance*labelScale, height*labelScale)
	if scaled.Dx() > Width {
		scaled.Max.X = Width
	}
	target := scaled.Add(image.Pt((Width-scaled.Dx())/2, (Height-scaled.Dy())/2))
	draw.NearestNeighbor.Scale(card, target, label, label.Bounds(), draw.Over, nil)

	return card
}
